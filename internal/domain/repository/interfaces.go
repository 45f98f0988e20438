package repository

import (
	"context"

	"wikoo-core/internal/domain/entity"
)

// CompletionClient performs one call against the generative-language service.
type CompletionClient interface {
	Complete(ctx context.Context, plan entity.PromptPlan, params entity.CompletionParams) (*entity.Completion, error)
}

type UsageLimiter interface {
	CheckLimit(ctx context.Context, clientID string) (bool, error)
	Increment(ctx context.Context, clientID string, tokens int) error
}

type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}
