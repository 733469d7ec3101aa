// Package completion wraps a chat-completion provider behind a minimal
// contract: an ordered list of role-tagged messages in, the first
// candidate's text out.
package completion

import (
	"context"
	"errors"
)

// ErrEmptyResponse is returned when the provider responds without any choices.
var ErrEmptyResponse = errors.New("completion returned no choices")

// Role tags the author of a chat message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is the unit exchanged with the upstream provider.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// System builds a system message.
func System(content string) Message {
	return Message{Role: RoleSystem, Content: content}
}

// User builds a user message.
func User(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// Client submits a conversation and returns the first choice's content verbatim.
type Client interface {
	Complete(ctx context.Context, messages []Message) (string, error)
}

// ClientFunc adapts an ordinary function to the Client interface.
type ClientFunc func(ctx context.Context, messages []Message) (string, error)

func (f ClientFunc) Complete(ctx context.Context, messages []Message) (string, error) {
	return f(ctx, messages)
}
