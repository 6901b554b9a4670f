package collector

import (
	"fmt"
	"log"
	"net/url"
)

const newsDataBaseURL = "https://newsdata.io/api/1/news"

// NewsDataFetcher pulls technology news from newsdata.io.
type NewsDataFetcher struct {
	APIKey  string
	BaseURL string // test override
}

func (f *NewsDataFetcher) Name() string {
	return "newsdata"
}

type newsDataResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Link        string `json:"link"`
		SourceID    string `json:"source_id"`
		PubDate     string `json:"pubDate"`
	} `json:"results"`
}

func (f *NewsDataFetcher) Fetch() ([]NewsItem, error) {
	if f.APIKey == "" {
		log.Println("newsdata: no API key, skipping")
		return nil, nil
	}

	base := f.BaseURL
	if base == "" {
		base = newsDataBaseURL
	}

	params := url.Values{}
	params.Set("apikey", f.APIKey)
	params.Set("category", "technology")
	params.Set("language", "en")

	var resp newsDataResponse
	if err := fetchJSON(newHTTPClient(), base+"?"+params.Encode(), nil, &resp); err != nil {
		return nil, fmt.Errorf("newsdata: %w", err)
	}
	if resp.Status != "success" {
		return nil, fmt.Errorf("newsdata: status %q", resp.Status)
	}

	items := make([]NewsItem, 0, len(resp.Results))
	for _, a := range resp.Results {
		if a.Title == "" {
			continue
		}
		source := a.SourceID
		if source == "" {
			source = "NewsData"
		}
		items = append(items, normalize(a.Title, a.Description, a.Link, source, a.PubDate))
	}
	return items, nil
}
