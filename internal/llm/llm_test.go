package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/mohammad-safakhou/newsmind/internal/telemetry"
)

type fakeProvider struct {
	name  string
	text  string
	err   error
	calls int
}

func (f *fakeProvider) Name() string { return f.name }

func (f *fakeProvider) Generate(_ context.Context, _ string, _ int, _ float64) (string, error) {
	f.calls++
	return f.text, f.err
}

func TestChainUsesPrimary(t *testing.T) {
	primary := &fakeProvider{name: "groq", text: "primary answer"}
	secondary := &fakeProvider{name: "huggingface", text: "secondary answer"}
	chain := NewChain([]Provider{primary, secondary}, telemetry.New())

	got := chain.Generate(context.Background(), "prompt", 320, 0.4)
	if got != "primary answer" {
		t.Fatalf("expected primary answer, got %q", got)
	}
	if secondary.calls != 0 {
		t.Fatalf("secondary should not be attempted when primary succeeds")
	}
}

func TestChainFallsThroughOnFailure(t *testing.T) {
	primary := &fakeProvider{name: "groq", err: errors.New("500 internal server error")}
	secondary := &fakeProvider{name: "huggingface", text: "secondary answer"}
	chain := NewChain([]Provider{primary, secondary}, telemetry.New())

	got := chain.Generate(context.Background(), "prompt", 320, 0.4)
	if got != "secondary answer" {
		t.Fatalf("expected fallback to secondary, got %q", got)
	}
	if primary.calls != 1 {
		t.Fatalf("expected exactly one primary attempt, got %d", primary.calls)
	}
}

func TestChainAllProvidersFail(t *testing.T) {
	chain := NewChain([]Provider{
		&fakeProvider{name: "groq", err: errors.New("boom")},
		&fakeProvider{name: "huggingface", err: errors.New("boom")},
	}, telemetry.New())

	if got := chain.Generate(context.Background(), "prompt", 320, 0.4); got != Sentinel {
		t.Fatalf("expected sentinel, got %q", got)
	}
}

func TestChainNoProviders(t *testing.T) {
	chain := NewChain(nil, telemetry.New())
	if got := chain.Generate(context.Background(), "prompt", 320, 0.4); got != Sentinel {
		t.Fatalf("expected sentinel with no providers, got %q", got)
	}
}
