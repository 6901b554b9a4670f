package collector

import (
	"fmt"
	"log"
	"net/url"
)

const (
	mediastackBaseURL = "http://api.mediastack.com/v1/news"
	mediastackLimit   = 20
)

// MediastackFetcher pulls technology news from api.mediastack.com.
type MediastackFetcher struct {
	APIKey  string
	Limit   int
	BaseURL string // test override
}

func (f *MediastackFetcher) Name() string {
	return "mediastack"
}

type mediastackResponse struct {
	Data []struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		URL         string `json:"url"`
		Source      string `json:"source"`
		PublishedAt string `json:"published_at"`
	} `json:"data"`
}

func (f *MediastackFetcher) Fetch() ([]NewsItem, error) {
	if f.APIKey == "" {
		log.Println("mediastack: no API key, skipping")
		return nil, nil
	}

	base := f.BaseURL
	if base == "" {
		base = mediastackBaseURL
	}
	limit := f.Limit
	if limit <= 0 {
		limit = mediastackLimit
	}

	params := url.Values{}
	params.Set("access_key", f.APIKey)
	params.Set("categories", "technology")
	params.Set("languages", "en")
	params.Set("limit", fmt.Sprintf("%d", limit))

	var resp mediastackResponse
	if err := fetchJSON(newHTTPClient(), base+"?"+params.Encode(), nil, &resp); err != nil {
		return nil, fmt.Errorf("mediastack: %w", err)
	}

	items := make([]NewsItem, 0, len(resp.Data))
	for _, a := range resp.Data {
		if a.Title == "" {
			continue
		}
		source := a.Source
		if source == "" {
			source = "Mediastack"
		}
		items = append(items, normalize(a.Title, a.Description, a.URL, source, a.PublishedAt))
	}
	return items, nil
}
