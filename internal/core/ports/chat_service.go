package ports

import "context"

// ChatService proxies a citizen question to an external chat-completion
// provider. Calls carry a bounded timeout, are never retried, and every
// downstream failure maps to domain.ErrAIUnavailable.
type ChatService interface {
	Complete(ctx context.Context, userMessage string) (string, error)
}
