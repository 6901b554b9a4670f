package collector

import (
	"fmt"
	"log"
	"net/url"
)

const webzBaseURL = "https://api.webz.io/newsApiLite"

// WebzFetcher pulls technology posts from the Webz.io lite news API.
type WebzFetcher struct {
	APIKey  string
	BaseURL string // test override
}

func (f *WebzFetcher) Name() string {
	return "webz"
}

type webzResponse struct {
	Posts []struct {
		Title     string `json:"title"`
		Text      string `json:"text"`
		URL       string `json:"url"`
		Published string `json:"published"`
		Thread    struct {
			SiteFull string `json:"site_full"`
		} `json:"thread"`
	} `json:"posts"`
}

func (f *WebzFetcher) Fetch() ([]NewsItem, error) {
	if f.APIKey == "" {
		log.Println("webz: no API key, skipping")
		return nil, nil
	}

	base := f.BaseURL
	if base == "" {
		base = webzBaseURL
	}

	params := url.Values{}
	params.Set("token", f.APIKey)
	params.Set("q", "technology")

	var resp webzResponse
	if err := fetchJSON(newHTTPClient(), base+"?"+params.Encode(), nil, &resp); err != nil {
		return nil, fmt.Errorf("webz: %w", err)
	}

	items := make([]NewsItem, 0, len(resp.Posts))
	for _, p := range resp.Posts {
		if p.Title == "" {
			continue
		}
		source := p.Thread.SiteFull
		if source == "" {
			source = "Webz"
		}
		items = append(items, normalize(p.Title, p.Text, p.URL, source, p.Published))
	}
	return items, nil
}
