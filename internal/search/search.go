package search

import (
	"context"
	"log"

	"github.com/mohammad-safakhou/newsmind/config"
	"github.com/mohammad-safakhou/newsmind/internal/httpclient"
	"github.com/mohammad-safakhou/newsmind/internal/search/model"
	"github.com/mohammad-safakhou/newsmind/internal/search/newsapi"
	"github.com/mohammad-safakhou/newsmind/internal/search/newsdata"
	"github.com/mohammad-safakhou/newsmind/internal/search/searx"
	"github.com/mohammad-safakhou/newsmind/internal/search/serper"
	"github.com/mohammad-safakhou/newsmind/internal/telemetry"
)

// Provider is the interface every news search backend implements.
type Provider interface {
	Name() string
	Search(ctx context.Context, query string, limit int) ([]model.Article, error)
}

// Aggregator queries providers in priority order with a merge-to-fill
// policy: each subsequent provider is asked only for the shortfall left by
// the ones before it. Results are deduplicated by query-stripped URL with
// first-seen order winning, then truncated to the requested limit.
type Aggregator struct {
	providers []Provider
	telemetry *telemetry.Telemetry
	logger    *log.Logger
}

func NewAggregator(providers []Provider, tele *telemetry.Telemetry) *Aggregator {
	return &Aggregator{
		providers: providers,
		telemetry: tele,
		logger:    log.New(log.Writer(), "[SEARCH] ", log.LstdFlags),
	}
}

// NewAggregatorFromConfig builds the provider chain from configuration.
// Providers without a credential are not constructed at all.
func NewAggregatorFromConfig(cfg config.SearchConfig, tele *telemetry.Telemetry) *Aggregator {
	httpc := httpclient.New(cfg.Timeout)
	var providers []Provider
	if cfg.SerperAPIKey != "" {
		providers = append(providers, serper.New(cfg.SerperAPIKey, httpc))
	}
	if cfg.NewsAPIKey != "" {
		providers = append(providers, newsapi.New(cfg.NewsAPIKey, httpc))
	}
	if cfg.NewsDataAPIKey != "" {
		providers = append(providers, newsdata.New(cfg.NewsDataAPIKey, httpc))
	}
	if cfg.SearxURL != "" {
		providers = append(providers, searx.New(cfg.SearxURL, httpc))
	}
	return NewAggregator(providers, tele)
}

// Aggregate returns up to limit deduplicated articles. It never fails: any
// provider error counts as zero results from that provider and the chain
// moves on.
func (a *Aggregator) Aggregate(ctx context.Context, query string, limit int) []model.Article {
	if limit <= 0 {
		return nil
	}

	seen := make(map[string]bool)
	var out []model.Article
	for _, p := range a.providers {
		need := limit - len(out)
		if need <= 0 {
			break
		}
		articles, err := p.Search(ctx, query, need)
		a.telemetry.RecordSearch(p.Name(), len(articles), err)
		if err != nil {
			a.logger.Printf("%s error: %v", p.Name(), err)
			continue
		}
		for _, art := range articles {
			key := model.CanonicalURL(art.Link)
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, art)
			if len(out) >= limit {
				break
			}
		}
	}

	a.logger.Printf("returning %d items (requested %d)", len(out), limit)
	return out
}
