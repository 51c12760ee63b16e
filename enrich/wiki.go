package enrich

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"resty.dev/v3"
)

// DefaultWikiBaseURL is the English Wikipedia host serving both the
// MediaWiki action API and the REST summary endpoint.
const DefaultWikiBaseURL = "https://en.wikipedia.org"

// WikiClient resolves a free-text query to an encyclopedia page and
// fetches its summary extract.
type WikiClient struct {
	client *resty.Client
}

func NewWikiClient(baseURL string) *WikiClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(5 * time.Second).
		SetHeader("User-Agent", "cratenotes/1.0 (+https://github.com/cratenotes/cratenotes)")
	return &WikiClient{client: client}
}

func (c *WikiClient) Close() error {
	return c.client.Close()
}

type wikiSearchResponse struct {
	Query struct {
		Search []struct {
			Title string `json:"title"`
		} `json:"search"`
	} `json:"query"`
}

type wikiSummaryResponse struct {
	Extract string `json:"extract"`
}

// Summarize finds the page best matching query and returns its summary
// extract. A query matching no page is an error: the caller's fallback
// text is better than an empty summary.
func (c *WikiClient) Summarize(ctx context.Context, query string) (string, error) {
	res, err := c.client.R().
		WithContext(ctx).
		SetQueryParams(map[string]string{
			"action":   "query",
			"list":     "search",
			"srsearch": query,
			"srlimit":  "1",
			"format":   "json",
		}).
		SetResult(&wikiSearchResponse{}).
		Get("/w/api.php")
	if err != nil {
		return "", err
	}
	if res.IsError() {
		return "", fmt.Errorf("wiki search: unexpected status %d", res.StatusCode())
	}

	hits := res.Result().(*wikiSearchResponse).Query.Search
	if len(hits) == 0 {
		return "", fmt.Errorf("wiki search: no page matches %q", query)
	}

	res, err = c.client.R().
		WithContext(ctx).
		SetResult(&wikiSummaryResponse{}).
		Get("/api/rest_v1/page/summary/" + url.PathEscape(hits[0].Title))
	if err != nil {
		return "", err
	}
	if res.IsError() {
		return "", fmt.Errorf("wiki summary: unexpected status %d", res.StatusCode())
	}
	return res.Result().(*wikiSummaryResponse).Extract, nil
}
