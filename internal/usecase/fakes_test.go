package usecase

import (
	"context"
	"sync"

	"wikoo-core/internal/domain/entity"
)

type fakeCompletionClient struct {
	mu     sync.Mutex
	text   string
	tokens int
	err    error
	panics bool
	calls  []fakeCall
}

type fakeCall struct {
	plan        entity.PromptPlan
	params      entity.CompletionParams
	hasDeadline bool
}

func (f *fakeCompletionClient) Complete(ctx context.Context, plan entity.PromptPlan, params entity.CompletionParams) (*entity.Completion, error) {
	f.mu.Lock()
	_, hasDeadline := ctx.Deadline()
	f.calls = append(f.calls, fakeCall{plan: plan, params: params, hasDeadline: hasDeadline})
	f.mu.Unlock()

	if f.panics {
		panic("boom")
	}
	if f.err != nil {
		return nil, f.err
	}
	return &entity.Completion{Text: f.text, Model: params.Model, TokenCount: f.tokens}, nil
}

func (f *fakeCompletionClient) lastCall() fakeCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[len(f.calls)-1]
}

func (f *fakeCompletionClient) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

type fakeLimiter struct {
	mu       sync.Mutex
	allowed  bool
	checkErr error
	usage    map[string]int
}

func newFakeLimiter(allowed bool) *fakeLimiter {
	return &fakeLimiter{allowed: allowed, usage: map[string]int{}}
}

func (f *fakeLimiter) CheckLimit(ctx context.Context, clientID string) (bool, error) {
	if f.checkErr != nil {
		return false, f.checkErr
	}
	return f.allowed, nil
}

func (f *fakeLimiter) Increment(ctx context.Context, clientID string, tokens int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.usage[clientID] += tokens
	return nil
}

func (f *fakeLimiter) usageOf(clientID string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.usage[clientID]
}

type fakeMailer struct {
	err  error
	sent []sentMail
}

type sentMail struct {
	to, subject, body string
}

func (f *fakeMailer) Send(ctx context.Context, to, subject, body string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}
