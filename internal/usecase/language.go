package usecase

import "wikoo-core/internal/domain/entity"

var chatTones = entity.NewLanguageTable(map[string]string{
	"en": "English (warm, caring, professional tone — like a supportive counselor)",
	"ta": "spoken Tamil — use caring, respectful words like நண்பா, சரி, கொஞ்சம் — speak like a trusted advisor",
	"hi": "spoken Hindi — use caring words like भाई, ठीक है, अच्छा — speak like a trusted counselor",
})

var reportTones = entity.NewLanguageTable(map[string]string{
	"en": "English (warm, caring, professional tone — like a trusted counselor)",
	"ta": "spoken Tamil — use caring, respectful words — write like a trusted advisor",
	"hi": "spoken Hindi — use caring words — write like a trusted counselor",
})

var chatFallbacks = entity.NewLanguageTable(map[string]string{
	"en": "I'm here for you.",
	"ta": "நான் உங்களுக்காக இருக்கேன்.",
	"hi": "मैं आपके लिए यहाँ हूँ.",
})

var reportFallbacks = entity.NewLanguageTable(map[string]string{
	"en": "I'm having a little trouble writing the report, but I'm still here for you.",
	"ta": "அறிக்கை எழுதுவதில் சிறு சிரமம் உள்ளது, ஆனால் நான் உங்களுடன் இருக்கிறேன்.",
	"hi": "रिपोर्ट लिखने में थोड़ी दिक्कत है, लेकिन मैं आपके साथ हूँ.",
})

// ResolveTone returns the tone descriptor for lang on the given endpoint.
// Unknown codes, including "" and differently cased codes, get the English one.
func ResolveTone(kind entity.Endpoint, lang string) string {
	if kind == entity.EndpointReport {
		return reportTones.Lookup(lang)
	}
	return chatTones.Lookup(lang)
}

// Fallback returns the fixed reassurance sentence served when a completion
// fails.
func Fallback(kind entity.Endpoint, lang string) string {
	if kind == entity.EndpointReport {
		return reportFallbacks.Lookup(lang)
	}
	return chatFallbacks.Lookup(lang)
}

// SupportedLanguage reports whether lang has its own entry rather than the
// English default.
func SupportedLanguage(lang string) bool {
	return chatTones.Supports(lang)
}
