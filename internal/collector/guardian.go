package collector

import (
	"fmt"
	"log"
	"net/url"
)

const (
	guardianBaseURL  = "https://content.guardianapis.com/search"
	guardianPageSize = 20
)

// GuardianFetcher pulls the technology section from the Guardian content API.
type GuardianFetcher struct {
	APIKey   string
	PageSize int
	BaseURL  string // test override
}

func (f *GuardianFetcher) Name() string {
	return "guardian"
}

type guardianResponse struct {
	Response struct {
		Status  string `json:"status"`
		Results []struct {
			WebTitle           string `json:"webTitle"`
			WebURL             string `json:"webUrl"`
			WebPublicationDate string `json:"webPublicationDate"`
			Fields             struct {
				TrailText string `json:"trailText"`
			} `json:"fields"`
		} `json:"results"`
	} `json:"response"`
}

func (f *GuardianFetcher) Fetch() ([]NewsItem, error) {
	if f.APIKey == "" {
		log.Println("guardian: no API key, skipping")
		return nil, nil
	}

	base := f.BaseURL
	if base == "" {
		base = guardianBaseURL
	}
	pageSize := f.PageSize
	if pageSize <= 0 {
		pageSize = guardianPageSize
	}

	params := url.Values{}
	params.Set("section", "technology")
	params.Set("show-fields", "trailText")
	params.Set("page-size", fmt.Sprintf("%d", pageSize))
	params.Set("api-key", f.APIKey)

	var resp guardianResponse
	if err := fetchJSON(newHTTPClient(), base+"?"+params.Encode(), nil, &resp); err != nil {
		return nil, fmt.Errorf("guardian: %w", err)
	}
	if resp.Response.Status != "ok" {
		return nil, fmt.Errorf("guardian: status %q", resp.Response.Status)
	}

	items := make([]NewsItem, 0, len(resp.Response.Results))
	for _, r := range resp.Response.Results {
		if r.WebTitle == "" {
			continue
		}
		items = append(items, normalize(r.WebTitle, r.Fields.TrailText, r.WebURL, "The Guardian", r.WebPublicationDate))
	}
	return items, nil
}
