package collector

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewsAPIFetcherParsesArticles(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("apiKey") != "k" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(`{
			"status": "ok",
			"articles": [
				{"title": "Big API launch", "description": "desc", "url": "http://x/1",
				 "publishedAt": "2026-01-01T00:00:00Z", "source": {"name": "Example"}},
				{"title": "", "url": "http://x/skip"}
			]
		}`))
	}))
	defer srv.Close()

	f := &NewsAPIFetcher{APIKey: "k", BaseURL: srv.URL}
	items, err := f.Fetch()
	if err != nil {
		t.Fatalf("Fetch error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1 (empty titles skipped)", len(items))
	}
	it := items[0]
	if it.Title != "Big API launch" || it.Source != "Example" || it.Link != "http://x/1" {
		t.Fatalf("unexpected item: %+v", it)
	}
}

func TestNewsAPIFetcherSkipsWithoutKey(t *testing.T) {
	f := &NewsAPIFetcher{}
	items, err := f.Fetch()
	if err != nil {
		t.Fatalf("missing key must not be an error: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("missing key should yield no items, got %d", len(items))
	}
}

func TestNewsAPIFetcherReturnsErrorOnBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	f := &NewsAPIFetcher{APIKey: "k", BaseURL: srv.URL}
	if _, err := f.Fetch(); err == nil {
		t.Fatalf("expected error for non-200 status")
	}
}
