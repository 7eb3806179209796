package llm

import "context"

// Provider defines the interface for text-generation backends. A provider is
// constructed once per process and reused across requests; implementations
// must be safe for sequential reuse.
type Provider interface {
	Name() string
	Generate(ctx context.Context, req Request) (*Response, error)
}

// Request holds a single-shot generation request.
type Request struct {
	SystemPrompt string
	Prompt       string
	MaxTokens    int
	Temperature  float64
}

// Response holds the generated text.
type Response struct {
	Text         string
	Usage        Usage
	FinishReason string
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
}
