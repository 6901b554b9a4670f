package collector

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGDELTFetcherParsesArtlist(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"articles": [
				{"title": "Cloud platform news", "url": "http://g/1", "domain": "example.org", "seendate": "20260101T000000Z"}
			]
		}`))
	}))
	defer srv.Close()

	f := &GDELTFetcher{BaseURL: srv.URL}
	items, err := f.Fetch()
	if err != nil {
		t.Fatalf("Fetch error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	it := items[0]
	if it.Source != "example.org" {
		t.Fatalf("source = %q, want domain", it.Source)
	}
	// artlist mode has no summary; description falls back to title.
	if it.Description != it.Title {
		t.Fatalf("description should fall back to title: %+v", it)
	}
}

func TestCommonCrawlFetcherAlwaysEmpty(t *testing.T) {
	f := &CommonCrawlFetcher{}
	items, err := f.Fetch()
	if err != nil || len(items) != 0 {
		t.Fatalf("placeholder fetcher must return empty and nil: %v %v", items, err)
	}
}
