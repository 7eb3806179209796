package narrative

import (
	"context"

	"github.com/dwhitmore/finlens/internal/core"
	"github.com/dwhitmore/finlens/internal/llm"
	"go.uber.org/zap"
)

// maxNarrativeTokens bounds the generated analysis length.
const maxNarrativeTokens = 900

// Generator wraps the process-wide LLM provider handle. It is constructed
// once and reused across requests; no state accumulates between calls.
type Generator struct {
	provider llm.Provider
	logger   *zap.Logger
}

// NewGenerator creates a generator around the given provider.
func NewGenerator(provider llm.Provider, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{provider: provider, logger: logger}
}

// Generate produces the investment narrative for a fully assembled prompt.
// Failures are classified so the pipeline can degrade the narrative section
// instead of dropping the whole report.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, llm.Usage, error) {
	resp, err := g.provider.Generate(ctx, llm.Request{
		Prompt:      prompt,
		MaxTokens:   maxNarrativeTokens,
		Temperature: 0.7,
	})
	if err != nil {
		if ctx.Err() != nil {
			return "", llm.Usage{}, core.WrapError(core.ErrLLMTimeout, err)
		}
		return "", llm.Usage{}, core.WrapError(core.ErrLLMFailed, err)
	}

	g.logger.Debug("narrative generated",
		zap.String("provider", g.provider.Name()),
		zap.Int("input_tokens", resp.Usage.InputTokens),
		zap.Int("output_tokens", resp.Usage.OutputTokens),
	)

	return resp.Text, resp.Usage, nil
}
