package port

import "context"

// ContentGenerator submits a prompt to a generative model and returns its raw text
// output. Implementations must ask the provider for a JSON response type.
type ContentGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
