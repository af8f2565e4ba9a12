package server

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/mohammad-safakhou/newsmind/internal/search/model"
	"github.com/mohammad-safakhou/newsmind/internal/telemetry"
)

// Aggregator collects articles for a question.
type Aggregator interface {
	Aggregate(ctx context.Context, query string, limit int) []model.Article
}

// Synthesizer produces the formatted answer for a question and its articles.
type Synthesizer interface {
	Synthesize(ctx context.Context, question string, articles []model.Article) string
}

// AskHandler wires the aggregation and synthesis pipeline to POST /ask.
type AskHandler struct {
	Aggregator  Aggregator
	Synthesizer Synthesizer
	Telemetry   *telemetry.Telemetry
	MaxResults  int

	logger *log.Logger
}

func (h *AskHandler) Register(e *echo.Echo) {
	h.logger = log.New(log.Writer(), "[ASK] ", log.LstdFlags)
	e.POST("/ask", h.Ask)
}

// Ask always replies 200 with a best-effort payload. Provider failures are
// absorbed upstream; only the empty-question case short-circuits here.
func (h *AskHandler) Ask(c echo.Context) error {
	start := time.Now()
	reqID := uuid.NewString()[:8]

	var req AskRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Printf("[%s] bad request body: %v", reqID, err)
	}
	question := strings.TrimSpace(req.Question)
	h.logger.Printf("[%s] question: %q", reqID, question)

	if question == "" {
		h.Telemetry.RecordAsk("empty_question", time.Since(start))
		return c.JSON(http.StatusOK, AskResponse{Answer: EmptyQuestionAnswer, Sources: []model.Article{}})
	}

	ctx := c.Request().Context()
	sources := h.Aggregator.Aggregate(ctx, question, h.MaxResults)
	answer := h.Synthesizer.Synthesize(ctx, question, sources)

	outcome := "ok"
	if len(sources) == 0 {
		outcome = "no_sources"
	}
	h.Telemetry.RecordAsk(outcome, time.Since(start))

	if sources == nil {
		sources = []model.Article{}
	}
	return c.JSON(http.StatusOK, AskResponse{Answer: answer, Sources: sources})
}
