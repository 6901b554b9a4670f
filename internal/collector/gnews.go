package collector

import (
	"fmt"
	"log"
	"net/url"
)

const (
	gnewsBaseURL  = "https://gnews.io/api/v4/top-headlines"
	gnewsMaxItems = 20
)

// GNewsFetcher pulls technology top headlines from gnews.io.
type GNewsFetcher struct {
	APIKey   string
	MaxItems int
	BaseURL  string // test override
}

func (f *GNewsFetcher) Name() string {
	return "gnews"
}

type gnewsResponse struct {
	Articles []struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		URL         string `json:"url"`
		PublishedAt string `json:"publishedAt"`
		Source      struct {
			Name string `json:"name"`
		} `json:"source"`
	} `json:"articles"`
}

func (f *GNewsFetcher) Fetch() ([]NewsItem, error) {
	if f.APIKey == "" {
		log.Println("gnews: no API key, skipping")
		return nil, nil
	}

	base := f.BaseURL
	if base == "" {
		base = gnewsBaseURL
	}
	maxItems := f.MaxItems
	if maxItems <= 0 {
		maxItems = gnewsMaxItems
	}

	params := url.Values{}
	params.Set("topic", "technology")
	params.Set("lang", "en")
	params.Set("max", fmt.Sprintf("%d", maxItems))
	params.Set("token", f.APIKey)

	var resp gnewsResponse
	if err := fetchJSON(newHTTPClient(), base+"?"+params.Encode(), nil, &resp); err != nil {
		return nil, fmt.Errorf("gnews: %w", err)
	}

	items := make([]NewsItem, 0, len(resp.Articles))
	for _, a := range resp.Articles {
		if a.Title == "" {
			continue
		}
		source := a.Source.Name
		if source == "" {
			source = "GNews"
		}
		items = append(items, normalize(a.Title, a.Description, a.URL, source, a.PublishedAt))
	}
	return items, nil
}
