package service

import "context"

// CompletionService is the generative-text backend behind the interviewer.
// One long-lived client is built at startup and injected wherever prompts
// are sent; implementations must be safe for reuse across sessions.
type CompletionService interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
