package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"wikoo-core/internal/domain/entity"
)

func TestResolveTone_UnknownCodesMatchEnglish(t *testing.T) {
	for _, kind := range []entity.Endpoint{entity.EndpointChat, entity.EndpointReport} {
		english := ResolveTone(kind, "en")
		assert.NotEmpty(t, english)
		for _, code := range []string{"fr", "", "EN", "xx", "Ta"} {
			assert.Equal(t, english, ResolveTone(kind, code), "kind %s code %q", kind, code)
		}
	}
}

func TestResolveTone_SupportedCodes(t *testing.T) {
	assert.Contains(t, ResolveTone(entity.EndpointChat, "ta"), "spoken Tamil")
	assert.Contains(t, ResolveTone(entity.EndpointChat, "hi"), "spoken Hindi")
	assert.Contains(t, ResolveTone(entity.EndpointChat, "en"), "supportive counselor")
	assert.Contains(t, ResolveTone(entity.EndpointReport, "en"), "trusted counselor")
	assert.Contains(t, ResolveTone(entity.EndpointReport, "ta"), "write like a trusted advisor")
}

func TestFallback(t *testing.T) {
	tests := []struct {
		kind entity.Endpoint
		lang string
		want string
	}{
		{entity.EndpointChat, "en", "I'm here for you."},
		{entity.EndpointChat, "ta", "நான் உங்களுக்காக இருக்கேன்."},
		{entity.EndpointChat, "hi", "मैं आपके लिए यहाँ हूँ."},
		{entity.EndpointChat, "xx", "I'm here for you."},
		{entity.EndpointChat, "", "I'm here for you."},
		{entity.EndpointReport, "en", "I'm having a little trouble writing the report, but I'm still here for you."},
		{entity.EndpointReport, "ta", "அறிக்கை எழுதுவதில் சிறு சிரமம் உள்ளது, ஆனால் நான் உங்களுடன் இருக்கிறேன்."},
		{entity.EndpointReport, "hi", "रिपोर्ट लिखने में थोड़ी दिक्कत है, लेकिन मैं आपके साथ हूँ."},
		{entity.EndpointReport, "fr", "I'm having a little trouble writing the report, but I'm still here for you."},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Fallback(tt.kind, tt.lang), "kind %s lang %q", tt.kind, tt.lang)
	}
}

func TestSupportedLanguage(t *testing.T) {
	assert.True(t, SupportedLanguage("hi"))
	assert.False(t, SupportedLanguage("HI"))
}
