// internal/llm/factory/factory.go
package factory

import (
	"fmt"

	"github.com/dwhitmore/finlens/internal/config"
	"github.com/dwhitmore/finlens/internal/llm"
	"github.com/dwhitmore/finlens/internal/llm/claude"
	"github.com/dwhitmore/finlens/internal/llm/ollama"
	"github.com/dwhitmore/finlens/internal/llm/openai"
)

// New creates an LLM provider based on configuration. The returned provider
// is the process-wide generation handle; callers construct it once and pass
// it into the pipeline.
func New(cfg config.LLMConfig) (llm.Provider, error) {
	switch cfg.Provider {
	case "claude":
		return claude.New(cfg.Claude.APIKey, cfg.Claude.Model)
	case "openai":
		return openai.New(cfg.OpenAI.APIKey, cfg.OpenAI.Model)
	case "", "ollama":
		return ollama.New(cfg.Ollama.Endpoint, cfg.Ollama.Model)
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s", cfg.Provider)
	}
}
