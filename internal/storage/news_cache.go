package storage

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Code4Bharat1/rfid/internal/collector"
)

// NewsCache is the single persisted snapshot of the latest aggregation
// cycle. It is replaced wholesale on every cycle.
type NewsCache struct {
	Generated int64                `json:"generated"`
	Items     []collector.NewsItem `json:"items"`
}

// CacheStore reads and replaces the news cache file.
type CacheStore struct {
	Path string
}

func NewCacheStore(path string) *CacheStore {
	return &CacheStore{Path: path}
}

func (s *CacheStore) Load() (NewsCache, error) {
	var cache NewsCache
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return cache, fmt.Errorf("read news cache: %w", err)
	}
	if err := json.Unmarshal(data, &cache); err != nil {
		return cache, fmt.Errorf("parse news cache: %w", err)
	}
	return cache, nil
}

func (s *CacheStore) Save(cache NewsCache) error {
	data, err := json.MarshalIndent(cache, "", "  ")
	if err != nil {
		return fmt.Errorf("encode news cache: %w", err)
	}
	if err := os.WriteFile(s.Path, data, 0o644); err != nil {
		return fmt.Errorf("write news cache: %w", err)
	}
	return nil
}
