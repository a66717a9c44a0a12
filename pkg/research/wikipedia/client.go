package wikipedia

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Summary is the trimmed-down Wikipedia page summary the service consumes.
type Summary struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Extract     string `json:"extract"`
	PageURL     string `json:"pageUrl"`
}

// Client fetches page summaries from the Wikipedia REST API.
type Client struct {
	BaseURL string
	httpDo  *http.Client
}

func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = "https://en.wikipedia.org/api/rest_v1"
	}
	return &Client{
		BaseURL: baseURL,
		httpDo: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type summaryResponse struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Extract     string `json:"extract"`
	ContentURLs struct {
		Desktop struct {
			Page string `json:"page"`
		} `json:"desktop"`
	} `json:"content_urls"`
}

// PageSummary fetches the summary for a page title.
func (c *Client) PageSummary(ctx context.Context, title string) (Summary, error) {
	endpoint := fmt.Sprintf("%s/page/summary/%s", c.BaseURL, url.PathEscape(title))
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Summary{}, err
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpDo.Do(httpReq)
	if err != nil {
		return Summary{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Summary{}, fmt.Errorf("wikipedia http %d for %q", resp.StatusCode, title)
	}
	var out summaryResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Summary{}, err
	}
	return Summary{
		Title:       out.Title,
		Description: out.Description,
		Extract:     out.Extract,
		PageURL:     out.ContentURLs.Desktop.Page,
	}, nil
}
