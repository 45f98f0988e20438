package usecase

import (
	"fmt"
	"strings"

	"wikoo-core/internal/domain/entity"
)

const chatSystemTemplate = `You are Wikoo — a compassionate mental wellness companion.
Always respond ONLY in %s.
Use warm, supportive, professional language.
Be empathetic and encouraging.
Keep responses short and meaningful (2-4 sentences).
Use emojis sparingly.`

const reportHeaderTemplate = `You are Wikoo — a compassionate mental wellness companion.

Write the ENTIRE report in %s only.

User shared:
"%s"
`

const reportInstructions = `
Create a caring wellness report:
- Begin with empathy and understanding
- Include a "Self-Care Suggestions" list with 6–8 gentle activities
- End with encouragement and hope

Use warm, supportive language.
Keep tone professional yet caring.
Use emojis sparingly.
Length: 300–400 words.`

// ComposeChat builds a system message from the fixed companion template and
// the tone, followed by the user's message verbatim. Request content never
// enters the system message.
func ComposeChat(tone, message string) entity.PromptPlan {
	return entity.PromptPlan{Messages: []entity.Message{
		{Role: entity.RoleSystem, Content: fmt.Sprintf(chatSystemTemplate, tone)},
		{Role: entity.RoleUser, Content: message},
	}}
}

// ComposeReport builds a single user message carrying the report instructions
// with the chat context quoted verbatim.
func ComposeReport(tone string, req entity.ReportRequest) entity.PromptPlan {
	var b strings.Builder
	fmt.Fprintf(&b, reportHeaderTemplate, tone, req.ChatContext)
	if date := strings.TrimSpace(req.Date); date != "" {
		fmt.Fprintf(&b, "Conversation date: %s\n", date)
	}
	b.WriteString(reportInstructions)

	return entity.PromptPlan{Messages: []entity.Message{
		{Role: entity.RoleUser, Content: b.String()},
	}}
}
