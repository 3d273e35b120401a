// Package llm abstracts the chat model behind a narrow interface so services
// can be tested against stubs.
package llm

import "context"

// ChatTurn is one prior turn of the conversation, role "user" or "assistant".
type ChatTurn struct {
	Role    string
	Content string
}

// ChatGenerator produces a coach reply for a new message given the system
// prompt and the conversation so far.
type ChatGenerator interface {
	GenerateReply(ctx context.Context, systemPrompt string, history []ChatTurn, message string) (string, error)
}

// Closer is implemented by generators holding network resources.
type Closer interface {
	Close() error
}
