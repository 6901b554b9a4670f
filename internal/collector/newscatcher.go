package collector

import (
	"fmt"
	"log"
	"net/url"
)

const newscatcherBaseURL = "https://api.newscatcherapi.com/v2/latest_headlines"

// NewscatcherFetcher pulls tech headlines from newscatcherapi.com.
type NewscatcherFetcher struct {
	APIKey  string
	BaseURL string // test override
}

func (f *NewscatcherFetcher) Name() string {
	return "newscatcher"
}

type newscatcherResponse struct {
	Status   string `json:"status"`
	Articles []struct {
		Title         string `json:"title"`
		Summary       string `json:"summary"`
		Link          string `json:"link"`
		CleanURL      string `json:"clean_url"`
		PublishedDate string `json:"published_date"`
	} `json:"articles"`
}

func (f *NewscatcherFetcher) Fetch() ([]NewsItem, error) {
	if f.APIKey == "" {
		log.Println("newscatcher: no API key, skipping")
		return nil, nil
	}

	base := f.BaseURL
	if base == "" {
		base = newscatcherBaseURL
	}

	params := url.Values{}
	params.Set("topic", "tech")
	params.Set("lang", "en")

	header := map[string]string{"x-api-key": f.APIKey}

	var resp newscatcherResponse
	if err := fetchJSON(newHTTPClient(), base+"?"+params.Encode(), header, &resp); err != nil {
		return nil, fmt.Errorf("newscatcher: %w", err)
	}
	if resp.Status != "ok" {
		return nil, fmt.Errorf("newscatcher: status %q", resp.Status)
	}

	items := make([]NewsItem, 0, len(resp.Articles))
	for _, a := range resp.Articles {
		if a.Title == "" {
			continue
		}
		source := a.CleanURL
		if source == "" {
			source = "Newscatcher"
		}
		items = append(items, normalize(a.Title, a.Summary, a.Link, source, a.PublishedDate))
	}
	return items, nil
}
