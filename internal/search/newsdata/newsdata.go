package newsdata

import (
	"context"
	"fmt"
	"net/url"

	"github.com/mohammad-safakhou/newsmind/internal/httpclient"
	"github.com/mohammad-safakhou/newsmind/internal/search/model"
)

const defaultEndpoint = "https://newsdata.io/api/1/news"

// Client searches newsdata.io.
type Client struct {
	apiKey   string
	endpoint string
	http     *httpclient.Client
}

func New(apiKey string, http *httpclient.Client) *Client {
	return &Client{apiKey: apiKey, endpoint: defaultEndpoint, http: http}
}

func (c *Client) Name() string { return "newsdata" }

func (c *Client) Search(ctx context.Context, query string, limit int) ([]model.Article, error) {
	var resp struct {
		Results []struct {
			Title       string `json:"title"`
			Link        string `json:"link"`
			Description string `json:"description"`
			PubDate     string `json:"pubDate"`
			SourceID    string `json:"source_id"`
		} `json:"results"`
	}
	params := url.Values{}
	params.Add("apikey", c.apiKey)
	params.Add("q", query)
	reqURL := fmt.Sprintf("%s?%s", c.endpoint, params.Encode())
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
			Link:    r.Link,
			Snippet: r.Description,
			Source:  r.SourceID,
			Date:    r.PubDate,
		})
	}
	return out, nil
}
