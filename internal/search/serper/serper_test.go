package serper

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mohammad-safakhou/newsmind/internal/httpclient"
)

func TestSearchNormalizesItems(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if got := r.Header.Get("X-API-KEY"); got != "test-key" {
			t.Errorf("expected api key header, got %q", got)
		}
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode request body: %v", err)
		}
		if body["q"] != "elections" {
			t.Errorf("expected query in body, got %v", body["q"])
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"news":[
			{"title":"A","link":"https://ex.com/a","snippet":"sa","date":"1 hour ago","source":"Reuters"},
			{"title":"B","link":"https://ex.com/b"}
		]}`))
	}))
	defer srv.Close()

	c := New("test-key", httpclient.New(time.Second))
	c.endpoint = srv.URL

	out, err := c.Search(context.Background(), "elections", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 articles, got %d", len(out))
	}
	if out[0].Title != "A" || out[0].Source != "Reuters" || out[0].Date != "1 hour ago" {
		t.Fatalf("unexpected first article: %+v", out[0])
	}
	if out[1].Snippet != "" || out[1].Source != "" {
		t.Fatalf("missing fields should normalize to empty strings: %+v", out[1])
	}
}

func TestSearchRespectsLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"news":[
			{"title":"A","link":"https://ex.com/a"},
			{"title":"B","link":"https://ex.com/b"},
			{"title":"C","link":"https://ex.com/c"}
		]}`))
	}))
	defer srv.Close()

	c := New("k", httpclient.New(time.Second))
	c.endpoint = srv.URL

	out, err := c.Search(context.Background(), "q", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected limit to cap results at 2, got %d", len(out))
	}
}

func TestSearchServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := New("k", httpclient.New(time.Second))
	c.endpoint = srv.URL

	if _, err := c.Search(context.Background(), "q", 5); err == nil {
		t.Fatalf("expected error on non-2xx status")
	}
}

func TestSearchMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>not json</html>`))
	}))
	defer srv.Close()

	c := New("k", httpclient.New(time.Second))
	c.endpoint = srv.URL

	if _, err := c.Search(context.Background(), "q", 5); err == nil {
		t.Fatalf("expected error on malformed body")
	}
}
