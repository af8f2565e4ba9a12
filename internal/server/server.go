package server

import (
	"embed"
	"fmt"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/mohammad-safakhou/newsmind/config"
	"github.com/mohammad-safakhou/newsmind/internal/answer"
	"github.com/mohammad-safakhou/newsmind/internal/llm"
	"github.com/mohammad-safakhou/newsmind/internal/search"
	"github.com/mohammad-safakhou/newsmind/internal/telemetry"
)

//go:embed static
var staticFS embed.FS

// Run builds the pipeline from configuration and serves HTTP until the
// listener fails.
func Run(cfg *config.Config) error {
	tele := telemetry.New()
	aggregator := search.NewAggregatorFromConfig(cfg.Search, tele)
	chain := llm.NewChainFromConfig(cfg.LLM, tele)
	synthesizer := answer.NewSynthesizer(chain, cfg.Answer, cfg.LLM)

	e := newEcho(cfg, tele, &AskHandler{
		Aggregator:  aggregator,
		Synthesizer: synthesizer,
		Telemetry:   tele,
		MaxResults:  cfg.Search.MaxResults,
	})

	logger := log.New(log.Writer(), "[HTTP] ", log.LstdFlags)
	logger.Printf("listening on %s", cfg.Server.Address)
	return e.Start(cfg.Server.Address)
}

func newEcho(cfg *config.Config, tele *telemetry.Telemetry, ask *AskHandler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	baseLogger := log.New(log.Writer(), "[HTTP] ", log.LstdFlags)
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		code := http.StatusInternalServerError
		msg := err.Error()
		if he, ok := err.(*echo.HTTPError); ok {
			code = he.Code
			if he.Message != nil {
				msg = fmt.Sprint(he.Message)
			}
		}
		req := c.Request()
		baseLogger.Printf("%d %s %s from %s: %v", code, req.Method, req.URL.Path, c.RealIP(), err)
		if !c.Response().Committed {
			_ = c.JSON(code, map[string]interface{}{"error": msg})
		}
	}
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Content-Type"},
	}))

	e.GET("/healthz", func(c echo.Context) error { return c.String(200, "ok") })
	if cfg.Telemetry.Enabled {
		e.GET("/metrics", echo.WrapHandler(tele.Handler()))
	}

	ask.Register(e)

	// frontend bundle with index fallback for SPA routes
	e.Use(middleware.StaticWithConfig(middleware.StaticConfig{
		Root:       "static",
		Filesystem: http.FS(staticFS),
		HTML5:      true,
	}))

	return e
}
