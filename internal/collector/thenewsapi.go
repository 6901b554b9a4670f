package collector

import (
	"fmt"
	"log"
	"net/url"
)

const (
	theNewsAPIBaseURL = "https://api.thenewsapi.com/v1/news/top"
	theNewsAPILimit   = 20
)

// TheNewsAPIFetcher pulls tech top stories from thenewsapi.com.
type TheNewsAPIFetcher struct {
	APIKey  string
	Limit   int
	BaseURL string // test override
}

func (f *TheNewsAPIFetcher) Name() string {
	return "thenewsapi"
}

type theNewsAPIResponse struct {
	Data []struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		URL         string `json:"url"`
		Source      string `json:"source"`
		PublishedAt string `json:"published_at"`
	} `json:"data"`
}

func (f *TheNewsAPIFetcher) Fetch() ([]NewsItem, error) {
	if f.APIKey == "" {
		log.Println("thenewsapi: no API key, skipping")
		return nil, nil
	}

	base := f.BaseURL
	if base == "" {
		base = theNewsAPIBaseURL
	}
	limit := f.Limit
	if limit <= 0 {
		limit = theNewsAPILimit
	}

	params := url.Values{}
	params.Set("api_token", f.APIKey)
	params.Set("categories", "tech")
	params.Set("language", "en")
	params.Set("limit", fmt.Sprintf("%d", limit))

	var resp theNewsAPIResponse
	if err := fetchJSON(newHTTPClient(), base+"?"+params.Encode(), nil, &resp); err != nil {
		return nil, fmt.Errorf("thenewsapi: %w", err)
	}

	items := make([]NewsItem, 0, len(resp.Data))
	for _, a := range resp.Data {
		if a.Title == "" {
			continue
		}
		source := a.Source
		if source == "" {
			source = "TheNewsAPI"
		}
		items = append(items, normalize(a.Title, a.Description, a.URL, source, a.PublishedAt))
	}
	return items, nil
}
