package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Code4Bharat1/rfid/internal/collector"
)

func TestCacheStoreSaveThenLoad(t *testing.T) {
	s := NewCacheStore(filepath.Join(t.TempDir(), "cache.json"))
	in := NewsCache{
		Generated: 1700000000,
		Items: []collector.NewsItem{
			{Title: "AI headline", Link: "http://x/1", Source: "Test", Published: "now"},
		},
	}
	if err := s.Save(in); err != nil {
		t.Fatalf("Save: %v", err)
	}

	out, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if out.Generated != in.Generated {
		t.Fatalf("Generated = %d, want %d", out.Generated, in.Generated)
	}
	if len(out.Items) != 1 || out.Items[0].Title != "AI headline" {
		t.Fatalf("items did not round-trip: %+v", out.Items)
	}
}

func TestCacheStoreLoadFailures(t *testing.T) {
	s := NewCacheStore(filepath.Join(t.TempDir(), "cache.json"))
	if _, err := s.Load(); err == nil {
		t.Fatalf("missing cache file should be an error for the caller to handle")
	}

	if err := os.WriteFile(s.Path, []byte("{broken"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := s.Load(); err == nil {
		t.Fatalf("corrupt cache file should be an error")
	}
}

func TestCacheStoreSaveReplacesWholeFile(t *testing.T) {
	s := NewCacheStore(filepath.Join(t.TempDir(), "cache.json"))
	first := NewsCache{Generated: 1, Items: []collector.NewsItem{{Title: "old AI"}, {Title: "old ML"}}}
	if err := s.Save(first); err != nil {
		t.Fatalf("Save: %v", err)
	}
	second := NewsCache{Generated: 2, Items: []collector.NewsItem{{Title: "new AI"}}}
	if err := s.Save(second); err != nil {
		t.Fatalf("Save: %v", err)
	}

	out, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if out.Generated != 2 || len(out.Items) != 1 {
		t.Fatalf("old snapshot leaked into new one: %+v", out)
	}
}
