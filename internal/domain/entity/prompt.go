package entity

// Role tags a message in a prompt plan.
type Role string

const (
	RoleSystem Role = "system"
	RoleUser   Role = "user"
)

type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// PromptPlan is the ordered message sequence sent to the completion service.
// It is built per request and never reused.
type PromptPlan struct {
	Messages []Message `json:"messages"`
}

// System joins the content of all system messages, in order.
func (p PromptPlan) System() string {
	var out string
	for _, m := range p.Messages {
		if m.Role != RoleSystem {
			continue
		}
		if out != "" {
			out += "\n"
		}
		out += m.Content
	}
	return out
}

// Turns returns the non-system messages, in order.
func (p PromptPlan) Turns() []Message {
	turns := make([]Message, 0, len(p.Messages))
	for _, m := range p.Messages {
		if m.Role != RoleSystem {
			turns = append(turns, m)
		}
	}
	return turns
}

// CompletionParams fixes the model and generation settings for one call.
type CompletionParams struct {
	Model       string  `json:"model"`
	Temperature float32 `json:"temperature"`
	MaxTokens   int32   `json:"max_tokens"`
}

// Completion is the raw answer of a completion client.
type Completion struct {
	Text       string `json:"text"`
	Model      string `json:"model"`
	TokenCount int    `json:"token_count"`
}
