package entity

// CompletionResult is either a success carrying non-empty text or a failure
// carrying its cause. The cause is for logs only and never reaches callers.
type CompletionResult struct {
	text string
	err  error
}

func CompletionSucceeded(text string) CompletionResult {
	return CompletionResult{text: text}
}

func CompletionFailed(err error) CompletionResult {
	if err == nil {
		err = ErrCompletionFailed
	}
	return CompletionResult{err: err}
}

// Text returns the completion text and true on success.
func (r CompletionResult) Text() (string, bool) {
	if r.err != nil {
		return "", false
	}
	return r.text, true
}

func (r CompletionResult) Err() error {
	return r.err
}
