package entity

import "errors"

var (
	ErrCompletionFailed    = errors.New("completion failed")
	ErrEmptyCompletion     = errors.New("completion returned no text")
	ErrNoCandidates        = errors.New("completion returned no candidates")
	ErrUsageLimitExceeded  = errors.New("usage limit exceeded: too many tokens used")
	ErrServiceUnavailable  = errors.New("completion service is not configured")
	ErrMailerNotConfigured = errors.New("mailer is not configured")
	ErrNoRecipient         = errors.New("reminder has no recipient")
	ErrInvalidRequest      = errors.New("invalid request parameters")
)
