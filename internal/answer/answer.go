package answer

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/mohammad-safakhou/newsmind/config"
	"github.com/mohammad-safakhou/newsmind/internal/search/model"
)

const promptTemplate = `You are a precise, neutral news analyst. Use only the articles to answer the user's question.

FORMAT STRICTLY:
- Line 1: A short HEADLINE in Title Case (max 12 words). No punctuation at the end.
- Lines 2-7: 5-6 compact points. Each line begins with ONE UPPERCASE LABEL and " • " then the fact.
  Examples of labels: RESULT, TURNOUT, KEY STATES, TIMELINE, CERTIFICATION, RECOUNT, MARKETS, REACTION, CONTEXT, OUTLOOK
- Each point must be 18-22 words, factual, and dated when possible (e.g., "On Nov 6, ...").
- No extra blank lines, no emojis, no markdown, no tables, no speculation.

TONE:
- Clear, newsroom style. Resolve conflicts by noting timing or source differences.

Question:
%s

Articles:
%s

Now write the final answer only following the exact format and length.`

// Generator produces text for a prompt, falling back across its configured
// backends internally. It never fails; a sentinel string stands in when no
// backend is usable.
type Generator interface {
	Generate(ctx context.Context, prompt string, maxTokens int, temperature float64) string
}

// Synthesizer turns a question plus aggregated articles into the final
// formatted answer. Callers must reject empty questions before calling
// Synthesize.
type Synthesizer struct {
	generator   Generator
	cfg         config.AnswerConfig
	maxTokens   int
	temperature float64
	logger      *log.Logger
}

func NewSynthesizer(generator Generator, answerCfg config.AnswerConfig, llmCfg config.LLMConfig) *Synthesizer {
	return &Synthesizer{
		generator:   generator,
		cfg:         answerCfg.Normalize(),
		maxTokens:   llmCfg.MaxTokens,
		temperature: llmCfg.Temperature,
		logger:      log.New(log.Writer(), "[ANSWER] ", log.LstdFlags),
	}
}

// Synthesize builds the prompt, runs the generation chain and post-formats
// the result. With no articles the generation still runs with an empty
// context block.
func (s *Synthesizer) Synthesize(ctx context.Context, question string, articles []model.Article) string {
	prompt := fmt.Sprintf(promptTemplate, question, s.buildContext(articles))
	raw := s.generator.Generate(ctx, prompt, s.maxTokens, s.temperature)
	return PostFormat(raw, s.cfg.MinLines, s.cfg.FillerLine)
}

func (s *Synthesizer) buildContext(articles []model.Article) string {
	blocks := make([]string, 0, len(articles))
	for _, a := range articles {
		snippet := a.Snippet
		if len(snippet) > s.cfg.MaxCharsPerSource {
			snippet = snippet[:s.cfg.MaxCharsPerSource]
		}
		blocks = append(blocks, a.Title+"\n"+snippet)
	}
	return strings.Join(blocks, "\n\n")
}
