package llm

import (
	"context"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one prior conversation turn supplied to the delegate as
// context.
type Message struct {
	Role    string
	Content string
}

// ChatClient generates a reply to query given a fixed system instruction and
// the ordered conversation history. The returned text is opaque to callers:
// it is passed through, never verified.
type ChatClient interface {
	Chat(ctx context.Context, system string, history []Message, query string) (string, error)
}
