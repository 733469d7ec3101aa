package prompts

import "context"

// System defines the public contract for prompt domain operations.
type System interface {
	Handler(maxBodySize int64) *Handler

	Generate(ctx context.Context, cmd GenerateCommand) (*Result, error)
	Revise(ctx context.Context, cmd ReviseCommand) (*Result, error)
}
