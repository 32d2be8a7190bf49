package llm

import "context"

// Request contains text-generation parameters.
type Request struct {
	Prompt      string
	System      string
	Temperature float32
	MaxTokens   int
}

// Response contains a generation result.
type Response struct {
	Text       string
	Model      string
	TokensUsed int
	LatencyMs  int64
}

// Provider defines the interface for text-generation providers.
type Provider interface {
	// Name returns the provider identifier
	Name() string

	// DefaultModel returns the default model
	DefaultModel() string

	// IsConfigured checks if provider has valid credentials
	IsConfigured() bool

	// Generate produces a completion for the request
	Generate(ctx context.Context, req Request, model string) (*Response, error)
}
