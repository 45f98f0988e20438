package usecase

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wikoo-core/internal/domain/entity"
)

func TestComposeChat(t *testing.T) {
	tone := ResolveTone(entity.EndpointChat, "ta")
	message := "I feel anxious 😟 \"today\" %s {{.}}"

	plan := ComposeChat(tone, message)

	require.Len(t, plan.Messages, 2)
	assert.Equal(t, entity.RoleSystem, plan.Messages[0].Role)
	assert.Equal(t, entity.RoleUser, plan.Messages[1].Role)
	assert.Equal(t, message, plan.Messages[1].Content)

	system := plan.Messages[0].Content
	assert.Contains(t, system, "Wikoo")
	assert.Contains(t, system, "Always respond ONLY in "+tone+".")
	assert.Contains(t, system, "2-4 sentences")
	assert.Contains(t, system, "emojis sparingly")
	assert.NotContains(t, system, "anxious")
}

func TestComposeChat_EmptyMessage(t *testing.T) {
	plan := ComposeChat(ResolveTone(entity.EndpointChat, "en"), "")

	require.Len(t, plan.Messages, 2)
	assert.Equal(t, "", plan.Messages[1].Content)
	assert.NotEmpty(t, plan.Messages[0].Content)
}

func TestComposeReport(t *testing.T) {
	tone := ResolveTone(entity.EndpointReport, "hi")
	chatContext := "I couldn't sleep.\n\nWork is 100% overwhelming 😞"

	plan := ComposeReport(tone, entity.ReportRequest{ChatContext: chatContext, Lang: "hi"})

	require.Len(t, plan.Messages, 1)
	msg := plan.Messages[0]
	assert.Equal(t, entity.RoleUser, msg.Role)
	assert.Contains(t, msg.Content, "Write the ENTIRE report in "+tone+" only.")
	assert.Contains(t, msg.Content, "\""+chatContext+"\"")
	assert.Contains(t, msg.Content, "\"Self-Care Suggestions\" list with 6–8 gentle activities")
	assert.Contains(t, msg.Content, "Length: 300–400 words.")
	assert.NotContains(t, msg.Content, "Conversation date")
}

func TestComposeReport_WithDate(t *testing.T) {
	plan := ComposeReport(ResolveTone(entity.EndpointReport, "en"), entity.ReportRequest{
		ChatContext: "ok",
		Date:        "19/10/2026",
	})

	content := plan.Messages[0].Content
	assert.Contains(t, content, "Conversation date: 19/10/2026\n")
	assert.Less(t, strings.Index(content, "\"ok\""), strings.Index(content, "Conversation date"))
}

func TestComposeReport_Deterministic(t *testing.T) {
	req := entity.ReportRequest{ChatContext: "same", Date: "today", Lang: "ta"}
	tone := ResolveTone(entity.EndpointReport, req.Lang)

	assert.Equal(t, ComposeReport(tone, req), ComposeReport(tone, req))
}
