package aggregator

import (
	"log"
	"time"

	"github.com/Code4Bharat1/rfid/internal/collector"
	"github.com/Code4Bharat1/rfid/internal/config"
	"github.com/Code4Bharat1/rfid/internal/processor"
	"github.com/Code4Bharat1/rfid/internal/storage"
)

const defaultMaxItems = 120

// PlaceholderTitle is shown while no source has produced a usable
// headline yet.
const PlaceholderTitle = "Waiting for tech news..."

// Aggregator runs one collection cycle: every fetcher in order, merge,
// filter, dedupe, cap, persist. A fetcher error or panic costs only
// that fetcher's contribution.
type Aggregator struct {
	Fetchers []collector.Fetcher
	Cache    *storage.CacheStore
	ErrLog   *storage.ErrorLog
	MaxItems int
	Now      func() time.Time
}

func New(fetchers []collector.Fetcher, cache *storage.CacheStore, errLog *storage.ErrorLog, maxItems int) *Aggregator {
	if maxItems <= 0 {
		maxItems = defaultMaxItems
	}
	return &Aggregator{
		Fetchers: fetchers,
		Cache:    cache,
		ErrLog:   errLog,
		MaxItems: maxItems,
		Now:      time.Now,
	}
}

// DefaultFetchers returns the source list in cycle order: RSS first,
// then the API sources, the keyless GDELT feed, and the placeholder.
func DefaultFetchers(cfg *config.Config) []collector.Fetcher {
	return []collector.Fetcher{
		&collector.RSSFetcher{},
		&collector.NewsAPIFetcher{APIKey: cfg.NewsAPIKey},
		&collector.GNewsFetcher{APIKey: cfg.GNewsKey},
		&collector.GuardianFetcher{APIKey: cfg.GuardianKey},
		&collector.MediastackFetcher{APIKey: cfg.MediastackKey},
		&collector.NewsDataFetcher{APIKey: cfg.NewsDataKey},
		&collector.NewscatcherFetcher{APIKey: cfg.NewscatcherKey},
		&collector.NYTimesFetcher{APIKey: cfg.NYTimesKey},
		&collector.RapidAPIFetcher{APIKey: cfg.RapidAPIKey, APIHost: cfg.RapidAPIHost},
		&collector.TheNewsAPIFetcher{APIKey: cfg.TheNewsAPIKey},
		&collector.WebzFetcher{APIKey: cfg.WebzKey},
		&collector.GDELTFetcher{},
		&collector.CommonCrawlFetcher{},
	}
}

// Run executes one full cycle and returns the freshly built cache.
// The cache file is only overwritten after the new snapshot is built,
// so a bad cycle never clobbers the previous one.
func (a *Aggregator) Run() storage.NewsCache {
	candidates := make([]collector.NewsItem, 0, 256)
	for _, f := range a.Fetchers {
		items := a.fetchOne(f)
		if len(items) > 0 {
			log.Printf("%s: %d candidates", f.Name(), len(items))
		}
		candidates = append(candidates, items...)
	}

	items := processor.FilterDedupe(candidates, a.MaxItems)
	if len(items) == 0 {
		items = []collector.NewsItem{{Title: PlaceholderTitle, Source: "System"}}
	}

	cache := storage.NewsCache{
		Generated: a.now().Unix(),
		Items:     items,
	}
	if a.Cache != nil {
		if err := a.Cache.Save(cache); err != nil {
			log.Printf("aggregator: %v", err)
			a.ErrLog.Logf("Cache write error: %v", err)
		}
	}

	log.Printf("collect cycle done, %d headlines cached", len(items))
	return cache
}

// fetchOne isolates a single fetcher: errors and panics are logged and
// turned into an empty contribution.
func (a *Aggregator) fetchOne(f collector.Fetcher) (items []collector.NewsItem) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("fetch %s panic: %v", f.Name(), r)
			a.ErrLog.Logf("%s fetch panic: %v", f.Name(), r)
			items = nil
		}
	}()

	items, err := f.Fetch()
	if err != nil {
		log.Printf("fetch %s error: %v", f.Name(), err)
		a.ErrLog.Logf("%s fetch error: %v", f.Name(), err)
		return nil
	}
	return items
}

func (a *Aggregator) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}
