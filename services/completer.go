package services

import (
	"context"

	"github/itish2003/notes-optimizer/models"
)

// Completer is the capability the optimizer needs from an LLM provider: one
// chat completion, returning the text of the first choice.
type Completer interface {
	Complete(ctx context.Context, req models.CompletionRequest) (string, error)
}

// CompleterFunc adapts a plain function to the Completer interface.
type CompleterFunc func(ctx context.Context, req models.CompletionRequest) (string, error)

func (f CompleterFunc) Complete(ctx context.Context, req models.CompletionRequest) (string, error) {
	return f(ctx, req)
}
