package anthropic

const (
	// DefaultBaseURL is the default Anthropic API endpoint.
	DefaultBaseURL = "https://api.anthropic.com/v1"

	// DefaultModel is the default model to use.
	DefaultModel = "claude-3-5-haiku-latest"

	// APIVersion is the required anthropic-version header value.
	APIVersion = "2023-06-01"

	// DefaultMaxTokens is used when the request does not set a limit;
	// the messages API requires max_tokens.
	DefaultMaxTokens = 2048
)
