package llm

import (
	"context"
	"log"

	"github.com/mohammad-safakhou/newsmind/config"
	"github.com/mohammad-safakhou/newsmind/internal/llm/groq"
	"github.com/mohammad-safakhou/newsmind/internal/llm/huggingface"
	"github.com/mohammad-safakhou/newsmind/internal/telemetry"
)

// Sentinel is returned when no generation backend produced text. It is
// still run through answer post-formatting downstream.
const Sentinel = "No generation backend is available. Set a Groq or Hugging Face API key to enable answers."

// Provider is the interface every text generation backend implements.
type Provider interface {
	Name() string
	Generate(ctx context.Context, prompt string, maxTokens int, temperature float64) (string, error)
}

// Chain tries providers in priority order and returns the first usable
// text. All failures are logged and swallowed; when every provider fails
// or none is configured, the sentinel message is returned.
type Chain struct {
	providers []Provider
	telemetry *telemetry.Telemetry
	logger    *log.Logger
}

func NewChain(providers []Provider, tele *telemetry.Telemetry) *Chain {
	return &Chain{
		providers: providers,
		telemetry: tele,
		logger:    log.New(log.Writer(), "[LLM] ", log.LstdFlags),
	}
}

// NewChainFromConfig builds the generation chain from configuration.
// Providers without a credential are not constructed at all.
func NewChainFromConfig(cfg config.LLMConfig, tele *telemetry.Telemetry) *Chain {
	var providers []Provider
	if cfg.GroqAPIKey != "" {
		providers = append(providers, groq.New(cfg.GroqAPIKey, cfg.GroqModel, cfg.Timeout))
	}
	if cfg.HFAPIKey != "" {
		providers = append(providers, huggingface.New(cfg.HFAPIKey, cfg.HFModel, cfg.Timeout))
	}
	return NewChain(providers, tele)
}

func (c *Chain) Generate(ctx context.Context, prompt string, maxTokens int, temperature float64) string {
	for _, p := range c.providers {
		c.logger.Printf("trying %s (tokens=%d temp=%.2f)", p.Name(), maxTokens, temperature)
		text, err := p.Generate(ctx, prompt, maxTokens, temperature)
		c.telemetry.RecordGeneration(p.Name(), err)
		if err != nil {
			c.logger.Printf("%s generation error: %v", p.Name(), err)
			continue
		}
		return text
	}
	return Sentinel
}
