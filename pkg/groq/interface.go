package groq

import "context"

// IGroq defines the interface for the Groq chat completions API.
// Implementations are safe for concurrent use.
type IGroq interface {
	ChatCompletion(ctx context.Context, req ChatRequest) (*ChatResponse, error)
}
