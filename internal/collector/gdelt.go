package collector

import (
	"fmt"
	"log"
	"net/url"
)

const (
	gdeltBaseURL    = "https://api.gdeltproject.org/api/v2/doc/doc"
	gdeltMaxRecords = 20
)

// GDELTFetcher queries the keyless GDELT 2.0 doc API for technology
// articles.
type GDELTFetcher struct {
	MaxRecords int
	BaseURL    string // test override
}

func (f *GDELTFetcher) Name() string {
	return "gdelt"
}

type gdeltResponse struct {
	Articles []struct {
		Title    string `json:"title"`
		URL      string `json:"url"`
		Domain   string `json:"domain"`
		SeenDate string `json:"seendate"`
	} `json:"articles"`
}

func (f *GDELTFetcher) Fetch() ([]NewsItem, error) {
	log.Println("fetch GDELT...")

	base := f.BaseURL
	if base == "" {
		base = gdeltBaseURL
	}
	maxRecords := f.MaxRecords
	if maxRecords <= 0 {
		maxRecords = gdeltMaxRecords
	}

	params := url.Values{}
	params.Set("query", "technology sourcelang:english")
	params.Set("mode", "artlist")
	params.Set("format", "json")
	params.Set("maxrecords", fmt.Sprintf("%d", maxRecords))

	var resp gdeltResponse
	if err := fetchJSON(newHTTPClient(), base+"?"+params.Encode(), nil, &resp); err != nil {
		return nil, fmt.Errorf("gdelt: %w", err)
	}

	items := make([]NewsItem, 0, len(resp.Articles))
	for _, a := range resp.Articles {
		if a.Title == "" {
			continue
		}
		source := a.Domain
		if source == "" {
			source = "GDELT"
		}
		// GDELT has no article summary in artlist mode.
		items = append(items, normalize(a.Title, "", a.URL, source, a.SeenDate))
	}
	return items, nil
}
