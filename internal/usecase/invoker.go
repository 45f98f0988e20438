package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"wikoo-core/internal/domain/entity"
	"wikoo-core/internal/domain/repository"
	"wikoo-core/internal/logger"
)

const usageUpdateTimeout = 5 * time.Second

// Invoker makes exactly one completion call per Invoke and folds every way it
// can go wrong into a failed CompletionResult.
type Invoker struct {
	client  repository.CompletionClient
	limiter repository.UsageLimiter
	timeout time.Duration
	logger  logger.Interface
}

// NewInvoker builds an Invoker. limiter may be nil. A non-positive timeout
// leaves the request context as the only bound.
func NewInvoker(client repository.CompletionClient, limiter repository.UsageLimiter, timeout time.Duration, log logger.Interface) *Invoker {
	return &Invoker{
		client:  client,
		limiter: limiter,
		timeout: timeout,
		logger:  log.Named("invoker"),
	}
}

func (i *Invoker) Invoke(ctx context.Context, clientID string, plan entity.PromptPlan, params entity.CompletionParams) (result entity.CompletionResult) {
	if i.limiter != nil {
		allowed, err := i.limiter.CheckLimit(ctx, clientID)
		if err != nil {
			// Fail open.
			i.logger.Warn("usage limiter check failed", "client_id", clientID, "error", err)
		} else if !allowed {
			return entity.CompletionFailed(entity.ErrUsageLimitExceeded)
		}
	}

	if i.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, i.timeout)
		defer cancel()
	}

	defer func() {
		if r := recover(); r != nil {
			result = entity.CompletionFailed(fmt.Errorf("%w: client panic: %v", entity.ErrCompletionFailed, r))
		}
	}()

	start := time.Now()
	resp, err := i.client.Complete(ctx, plan, params)
	if err != nil {
		return entity.CompletionFailed(fmt.Errorf("%w: %w", entity.ErrCompletionFailed, err))
	}
	if resp == nil {
		return entity.CompletionFailed(entity.ErrEmptyCompletion)
	}

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return entity.CompletionFailed(entity.ErrEmptyCompletion)
	}

	i.logger.Debug("completion served",
		"model", params.Model,
		"tokens", resp.TokenCount,
		"latency_ms", time.Since(start).Milliseconds(),
	)

	if i.limiter != nil && resp.TokenCount > 0 {
		go i.recordUsage(clientID, resp.TokenCount)
	}

	return entity.CompletionSucceeded(text)
}

// recordUsage runs detached from the request, which may be gone by now.
func (i *Invoker) recordUsage(clientID string, tokens int) {
	ctx, cancel := context.WithTimeout(context.Background(), usageUpdateTimeout)
	defer cancel()
	if err := i.limiter.Increment(ctx, clientID, tokens); err != nil {
		i.logger.Warn("failed to record token usage", "client_id", clientID, "error", err)
	}
}
