package serper

import (
	"context"

	"github.com/mohammad-safakhou/newsmind/internal/httpclient"
	"github.com/mohammad-safakhou/newsmind/internal/search/model"
)

const defaultEndpoint = "https://google.serper.dev/news"

// Client searches Google News through serper.dev.
type Client struct {
	apiKey   string
	endpoint string
	http     *httpclient.Client
}

func New(apiKey string, http *httpclient.Client) *Client {
	return &Client{apiKey: apiKey, endpoint: defaultEndpoint, http: http}
}

func (c *Client) Name() string { return "serper" }

func (c *Client) Search(ctx context.Context, query string, limit int) ([]model.Article, error) {
	// https://serper.dev/ docs
	var resp struct {
		News []struct {
			Title   string `json:"title"`
			Link    string `json:"link"`
			Snippet string `json:"snippet"`
			Date    string `json:"date"`
			Source  string `json:"source"`
		} `json:"news"`
	}
	headers := map[string]string{"X-API-KEY": c.apiKey}
	body := map[string]any{"q": query, "num": limit}
	if err := c.http.DoJSON(ctx, "POST", c.endpoint, headers, body, &resp); err != nil {
		return nil, err
	}

	var out []model.Article
	for i, item := range resp.News {
		if i >= limit {
			break
		}
		out = append(out, model.Article{
			Title:   item.Title,
			Link:    item.Link,
			Snippet: item.Snippet,
			Source:  item.Source,
			Date:    item.Date,
		})
	}
	return out, nil
}
