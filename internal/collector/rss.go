package collector

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/mmcdole/gofeed"
)

// DefaultFeeds is the primary headline source set.
var DefaultFeeds = []string{
	"https://openai.com/blog/rss",
	"https://github.blog/changelog/feed/",
	"https://feeds.feedburner.com/PythonInsider",
	"https://feed.infoq.com/ai-ml/",
	"https://hnrss.org/frontpage?q=ai+OR+framework+OR+release+OR+open+source",
	"https://arxiv.org/rss/cs.AI",
	"https://venturebeat.com/category/ai/feed/",
	"https://www.theverge.com/rss/index.xml",
	"https://www.zdnet.com/news/rss.xml",
	"https://www.techradar.com/rss",
}

const rssLimitPerFeed = 6

// RSSFetcher pulls headlines from a list of feeds. A failing feed is
// logged and skipped; the remaining feeds still contribute.
type RSSFetcher struct {
	Feeds        []string
	LimitPerFeed int
	Client       *http.Client // test override
}

func (r *RSSFetcher) Name() string {
	return "rss"
}

func (r *RSSFetcher) Fetch() ([]NewsItem, error) {
	feeds := r.Feeds
	if len(feeds) == 0 {
		feeds = DefaultFeeds
	}
	limit := r.LimitPerFeed
	if limit <= 0 {
		limit = rssLimitPerFeed
	}

	log.Printf("fetch RSS (%d feeds)...", len(feeds))

	parser := gofeed.NewParser()
	parser.UserAgent = userAgent
	// gofeed's default client has no timeout; a single hung feed
	// would stall the whole sequential refresh cycle.
	parser.Client = r.Client
	if parser.Client == nil {
		parser.Client = newHTTPClient()
	}

	items := make([]NewsItem, 0, len(feeds)*limit)
	for _, url := range feeds {
		feed, err := parser.ParseURL(url)
		if err != nil {
			log.Printf("rss: fetch %s: %v", url, err)
			continue
		}

		source := strings.TrimSpace(feed.Title)
		if source == "" {
			source = url
		}

		entries := feed.Items
		if len(entries) > limit {
			entries = entries[:limit]
		}
		for _, e := range entries {
			published := e.Published
			if published == "" {
				published = e.Updated
			}
			it := normalize(e.Title, e.Description, e.Link, source, published)
			// Tag the title with its feed so mixed-feed rotation stays readable.
			it.Title = fmt.Sprintf("[%s] %s", source, it.Title)
			items = append(items, it)
		}
	}
	return items, nil
}
