package search

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/mohammad-safakhou/newsmind/internal/search/model"
	"github.com/mohammad-safakhou/newsmind/internal/telemetry"
)

type fakeProvider struct {
	name     string
	articles []model.Article
	err      error
	calls    []int
}

func (f *fakeProvider) Name() string { return f.name }

func (f *fakeProvider) Search(_ context.Context, _ string, limit int) ([]model.Article, error) {
	f.calls = append(f.calls, limit)
	if f.err != nil {
		return nil, f.err
	}
	if len(f.articles) > limit {
		return f.articles[:limit], nil
	}
	return f.articles, nil
}

func art(link string) model.Article {
	return model.Article{Title: "t", Link: link, Snippet: "s"}
}

func TestAggregateMergeToFill(t *testing.T) {
	primary := &fakeProvider{name: "a", articles: []model.Article{art("https://ex.com/1"), art("https://ex.com/2")}}
	secondary := &fakeProvider{name: "b", articles: []model.Article{art("https://ex.com/3"), art("https://ex.com/4"), art("https://ex.com/5")}}
	agg := NewAggregator([]Provider{primary, secondary}, telemetry.New())

	out := agg.Aggregate(context.Background(), "q", 5)
	if len(out) != 5 {
		t.Fatalf("expected 5 articles, got %d", len(out))
	}
	if len(secondary.calls) != 1 || secondary.calls[0] != 3 {
		t.Fatalf("expected secondary to be asked for the shortfall of 3, got %v", secondary.calls)
	}
	if out[0].Link != "https://ex.com/1" || out[4].Link != "https://ex.com/5" {
		t.Fatalf("unexpected ordering: %v", out)
	}
}

func TestAggregateStopsWhenFilled(t *testing.T) {
	primary := &fakeProvider{name: "a", articles: []model.Article{art("https://ex.com/1"), art("https://ex.com/2")}}
	secondary := &fakeProvider{name: "b", articles: []model.Article{art("https://ex.com/3")}}
	agg := NewAggregator([]Provider{primary, secondary}, telemetry.New())

	out := agg.Aggregate(context.Background(), "q", 2)
	if len(out) != 2 {
		t.Fatalf("expected 2 articles, got %d", len(out))
	}
	if len(secondary.calls) != 0 {
		t.Fatalf("secondary should not be queried when primary fills the limit")
	}
}

func TestAggregateDeduplicatesByCanonicalURL(t *testing.T) {
	primary := &fakeProvider{name: "a", articles: []model.Article{
		{Title: "first", Link: "https://ex.com/a?utm=1", Snippet: "s1"},
	}}
	secondary := &fakeProvider{name: "b", articles: []model.Article{
		{Title: "second", Link: "https://ex.com/a?utm=2", Snippet: "s2"},
		{Title: "third", Link: "https://ex.com/b", Snippet: "s3"},
	}}
	agg := NewAggregator([]Provider{primary, secondary}, telemetry.New())

	out := agg.Aggregate(context.Background(), "q", 5)
	if len(out) != 2 {
		t.Fatalf("expected 2 articles after dedupe, got %d", len(out))
	}
	if out[0].Title != "first" {
		t.Fatalf("expected first-seen article to win, got %q", out[0].Title)
	}
}

func TestAggregateSwallowsProviderErrors(t *testing.T) {
	broken := &fakeProvider{name: "a", err: errors.New("connection refused")}
	working := &fakeProvider{name: "b", articles: []model.Article{art("https://ex.com/1")}}
	agg := NewAggregator([]Provider{broken, working}, telemetry.New())

	out := agg.Aggregate(context.Background(), "q", 5)
	if len(out) != 1 {
		t.Fatalf("expected 1 article from working provider, got %d", len(out))
	}
}

func TestAggregateAllProvidersFail(t *testing.T) {
	agg := NewAggregator([]Provider{
		&fakeProvider{name: "a", err: errors.New("boom")},
		&fakeProvider{name: "b", err: errors.New("boom")},
	}, telemetry.New())

	out := agg.Aggregate(context.Background(), "q", 5)
	if len(out) != 0 {
		t.Fatalf("expected empty result, got %d", len(out))
	}
}

func TestAggregateNoProviders(t *testing.T) {
	agg := NewAggregator(nil, telemetry.New())
	if out := agg.Aggregate(context.Background(), "q", 5); len(out) != 0 {
		t.Fatalf("expected empty result with no providers, got %d", len(out))
	}
}

func TestAggregateIdempotent(t *testing.T) {
	providers := []Provider{
		&fakeProvider{name: "a", articles: []model.Article{art("https://ex.com/1"), art("https://ex.com/2")}},
		&fakeProvider{name: "b", articles: []model.Article{art("https://ex.com/2"), art("https://ex.com/3")}},
	}
	agg := NewAggregator(providers, telemetry.New())

	first := agg.Aggregate(context.Background(), "q", 5)
	second := agg.Aggregate(context.Background(), "q", 5)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical output on repeated calls:\n%v\n%v", first, second)
	}
}

func TestAggregateSkipsEmptyLinks(t *testing.T) {
	agg := NewAggregator([]Provider{
		&fakeProvider{name: "a", articles: []model.Article{{Title: "no link"}, art("https://ex.com/1")}},
	}, telemetry.New())

	out := agg.Aggregate(context.Background(), "q", 5)
	if len(out) != 1 || out[0].Link != "https://ex.com/1" {
		t.Fatalf("expected linkless articles to be dropped, got %v", out)
	}
}
