package collector

import (
	"fmt"
	"log"
	"net/url"
)

const nytBaseURL = "https://api.nytimes.com/svc/topstories/v2/technology.json"

// NYTimesFetcher pulls the technology top stories from the NYT API.
type NYTimesFetcher struct {
	APIKey  string
	BaseURL string // test override
}

func (f *NYTimesFetcher) Name() string {
	return "nytimes"
}

type nytResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Title         string `json:"title"`
		Abstract      string `json:"abstract"`
		URL           string `json:"url"`
		PublishedDate string `json:"published_date"`
	} `json:"results"`
}

func (f *NYTimesFetcher) Fetch() ([]NewsItem, error) {
	if f.APIKey == "" {
		log.Println("nytimes: no API key, skipping")
		return nil, nil
	}

	base := f.BaseURL
	if base == "" {
		base = nytBaseURL
	}

	params := url.Values{}
	params.Set("api-key", f.APIKey)

	var resp nytResponse
	if err := fetchJSON(newHTTPClient(), base+"?"+params.Encode(), nil, &resp); err != nil {
		return nil, fmt.Errorf("nytimes: %w", err)
	}
	if resp.Status != "OK" {
		return nil, fmt.Errorf("nytimes: status %q", resp.Status)
	}

	items := make([]NewsItem, 0, len(resp.Results))
	for _, r := range resp.Results {
		if r.Title == "" {
			continue
		}
		items = append(items, normalize(r.Title, r.Abstract, r.URL, "New York Times", r.PublishedDate))
	}
	return items, nil
}
