package usecase

import (
	"context"

	"wikoo-core/internal/domain/entity"
	"wikoo-core/internal/logger"
)

const defaultTemperature float32 = 0.7

// ChatParams returns the generation settings for the chat endpoint.
func ChatParams(model string) entity.CompletionParams {
	return entity.CompletionParams{Model: model, Temperature: defaultTemperature, MaxTokens: 300}
}

// ReportParams returns the generation settings for the report endpoint.
func ReportParams(model string) entity.CompletionParams {
	return entity.CompletionParams{Model: model, Temperature: defaultTemperature, MaxTokens: 1200}
}

// Orchestrator runs resolve, compose and invoke for both endpoints and swaps
// in the localized fallback when the completion fails. Its methods never fail.
type Orchestrator struct {
	invoker      *Invoker
	chatParams   entity.CompletionParams
	reportParams entity.CompletionParams
	logger       logger.Interface
}

func NewOrchestrator(invoker *Invoker, chatModel, reportModel string, log logger.Interface) *Orchestrator {
	return &Orchestrator{
		invoker:      invoker,
		chatParams:   ChatParams(chatModel),
		reportParams: ReportParams(reportModel),
		logger:       log.Named("orchestrator"),
	}
}

func (u *Orchestrator) Chat(ctx context.Context, req entity.ChatRequest) entity.ChatResponse {
	tone := ResolveTone(entity.EndpointChat, req.Lang)
	plan := ComposeChat(tone, req.Message)

	res := u.invoker.Invoke(ctx, req.ClientID, plan, u.chatParams)
	if text, ok := res.Text(); ok {
		return entity.ChatResponse{Reply: text}
	}

	u.logger.Warn("chat completion failed, serving fallback", "lang", req.Lang, "error", res.Err())
	return entity.ChatResponse{Reply: Fallback(entity.EndpointChat, req.Lang)}
}

func (u *Orchestrator) Report(ctx context.Context, req entity.ReportRequest) entity.ReportResponse {
	tone := ResolveTone(entity.EndpointReport, req.Lang)
	plan := ComposeReport(tone, req)

	res := u.invoker.Invoke(ctx, req.ClientID, plan, u.reportParams)
	if text, ok := res.Text(); ok {
		return entity.ReportResponse{Report: text}
	}

	u.logger.Warn("report completion failed, serving fallback", "lang", req.Lang, "error", res.Err())
	return entity.ReportResponse{Report: Fallback(entity.EndpointReport, req.Lang)}
}
