package collector

import (
	"fmt"
	"log"
	"net/url"
)

const (
	newsAPIBaseURL  = "https://newsapi.org/v2/top-headlines"
	newsAPIPageSize = 20
)

// NewsAPIFetcher pulls technology top headlines from newsapi.org.
type NewsAPIFetcher struct {
	APIKey   string
	PageSize int
	BaseURL  string // test override
}

func (f *NewsAPIFetcher) Name() string {
	return "newsapi"
}

type newsAPIResponse struct {
	Status   string `json:"status"`
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

func (f *NewsAPIFetcher) Fetch() ([]NewsItem, error) {
	if f.APIKey == "" {
		log.Println("newsapi: no API key, skipping")
		return nil, nil
	}

	base := f.BaseURL
	if base == "" {
		base = newsAPIBaseURL
	}
	pageSize := f.PageSize
	if pageSize <= 0 {
		pageSize = newsAPIPageSize
	}

	params := url.Values{}
	params.Set("category", "technology")
	params.Set("language", "en")
	params.Set("pageSize", fmt.Sprintf("%d", pageSize))
	params.Set("apiKey", f.APIKey)

	var resp newsAPIResponse
	if err := fetchJSON(newHTTPClient(), base+"?"+params.Encode(), nil, &resp); err != nil {
		return nil, fmt.Errorf("newsapi: %w", err)
	}
	if resp.Status != "ok" {
		return nil, fmt.Errorf("newsapi: status %q", resp.Status)
	}

	items := make([]NewsItem, 0, len(resp.Articles))
	for _, a := range resp.Articles {
		if a.Title == "" {
			continue
		}
		source := a.Source.Name
		if source == "" {
			source = "NewsAPI"
		}
		items = append(items, normalize(a.Title, a.Description, a.URL, source, a.PublishedAt))
	}
	return items, nil
}
