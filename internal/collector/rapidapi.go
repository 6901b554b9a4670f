package collector

import (
	"fmt"
	"log"
	"net/url"
)

const rapidAPILimit = 20

// RapidAPIFetcher queries a RapidAPI-hosted realtime news search endpoint.
// The host is part of the subscription, so both key and host come from
// configuration.
type RapidAPIFetcher struct {
	APIKey  string
	APIHost string
	Limit   int
	BaseURL string // test override
}

func (f *RapidAPIFetcher) Name() string {
	return "rapidapi"
}

type rapidAPIResponse struct {
	Data []struct {
		Title       string `json:"title"`
		Snippet     string `json:"snippet"`
		Link        string `json:"link"`
		SourceName  string `json:"source_name"`
		PublishedAt string `json:"published_datetime_utc"`
	} `json:"data"`
}

func (f *RapidAPIFetcher) Fetch() ([]NewsItem, error) {
	if f.APIKey == "" || f.APIHost == "" {
		log.Println("rapidapi: no API key/host, skipping")
		return nil, nil
	}

	base := f.BaseURL
	if base == "" {
		base = "https://" + f.APIHost + "/search"
	}
	limit := f.Limit
	if limit <= 0 {
		limit = rapidAPILimit
	}

	params := url.Values{}
	params.Set("query", "technology")
	params.Set("lang", "en")
	params.Set("limit", fmt.Sprintf("%d", limit))

	header := map[string]string{
		"X-RapidAPI-Key":  f.APIKey,
		"X-RapidAPI-Host": f.APIHost,
	}

	var resp rapidAPIResponse
	if err := fetchJSON(newHTTPClient(), base+"?"+params.Encode(), header, &resp); err != nil {
		return nil, fmt.Errorf("rapidapi: %w", err)
	}

	items := make([]NewsItem, 0, len(resp.Data))
	for _, a := range resp.Data {
		if a.Title == "" {
			continue
		}
		source := a.SourceName
		if source == "" {
			source = "RapidAPI"
		}
		items = append(items, normalize(a.Title, a.Snippet, a.Link, source, a.PublishedAt))
	}
	return items, nil
}
