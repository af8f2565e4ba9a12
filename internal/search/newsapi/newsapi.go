package newsapi

import (
	"context"
	"fmt"
	"net/url"

	"github.com/mohammad-safakhou/newsmind/internal/httpclient"
	"github.com/mohammad-safakhou/newsmind/internal/search/model"
)

const defaultEndpoint = "https://newsapi.org/v2/everything"

// Client searches newsapi.org.
type Client struct {
	apiKey   string
	endpoint string
	http     *httpclient.Client
}

func New(apiKey string, http *httpclient.Client) *Client {
	return &Client{apiKey: apiKey, endpoint: defaultEndpoint, http: http}
}

func (c *Client) Name() string { return "newsapi" }

func (c *Client) Search(ctx context.Context, query string, limit int) ([]model.Article, error) {
	var resp struct {
		Articles []struct {
			Title       string `json:"title"`
			URL         string `json:"url"`
			Description string `json:"description"`
			PublishedAt string `json:"publishedAt"`
			Source      struct {
				Name string `json:"name"`
			} `json:"source"`
		} `json:"articles"`
	}
	params := url.Values{}
	params.Add("q", query)
	params.Add("sortBy", "publishedAt")
	params.Add("pageSize", fmt.Sprintf("%d", limit))
	reqURL := fmt.Sprintf("%s?%s", c.endpoint, params.Encode())
	headers := map[string]string{"X-Api-Key": c.apiKey}
	if err := c.http.DoJSON(ctx, "GET", reqURL, headers, nil, &resp); err != nil {
		return nil, err
	}

	var out []model.Article
	for i, a := range resp.Articles {
		if i >= limit {
			break
		}
		out = append(out, model.Article{
			Title:   a.Title,
			Link:    a.URL,
			Snippet: a.Description,
			Source:  a.Source.Name,
			Date:    a.PublishedAt,
		})
	}
	return out, nil
}
