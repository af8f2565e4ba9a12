package searx

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/mohammad-safakhou/newsmind/internal/httpclient"
	"github.com/mohammad-safakhou/newsmind/internal/search/model"
)

// Client searches a self-hosted SearxNG instance. Unlike the hosted
// providers it is gated behind a base URL rather than an API key.
type Client struct {
	baseURL string
	http    *httpclient.Client
}

func New(baseURL string, http *httpclient.Client) *Client {
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: http}
}

func (c *Client) Name() string { return "searx" }

func (c *Client) Search(ctx context.Context, query string, limit int) ([]model.Article, error) {
	var resp struct {
		Results []struct {
			Title         string `json:"title"`
			URL           string `json:"url"`
			Content       string `json:"content"`
			PublishedDate string `json:"publishedDate"`
			Engine        string `json:"engine"`
		} `json:"results"`
	}
	params := url.Values{}
	params.Add("q", query)
	params.Add("format", "json")
	params.Add("categories", "news")
	reqURL := fmt.Sprintf("%s/search?%s", c.baseURL, params.Encode())
	if err := c.http.DoJSON(ctx, "GET", reqURL, nil, nil, &resp); err != nil {
		return nil, err
	}

	var out []model.Article
	for i, r := range resp.Results {
		if i >= limit {
			break
		}
		out = append(out, model.Article{
			Title:   r.Title,
			Link:    r.URL,
			Snippet: r.Content,
			Source:  r.Engine,
			Date:    r.PublishedDate,
		})
	}
	return out, nil
}
