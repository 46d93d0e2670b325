package anthropic

import "context"

// IAnthropic defines the interface for the Anthropic messages client.
type IAnthropic interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Model() string
}
