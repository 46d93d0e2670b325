package ollama

import "context"

// IOllama defines the interface for a local Ollama-compatible LLM endpoint.
type IOllama interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Model() string
}
