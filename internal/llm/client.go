package llm

import (
	"context"
)

// ChatClient sends a single user prompt and returns the model's reply text.
type ChatClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
