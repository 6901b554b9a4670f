package collector

// NewsItem is one normalized headline, ready for the cache file.
// Published keeps whatever timestamp string the source handed us;
// the idle page only displays it, so no parsing happens here.
type NewsItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
	Source      string `json:"source"`
	Published   string `json:"published"`
}

// Fetcher abstracts a single news source.
// Fetch returns normalized candidates; the aggregator treats any
// error as an empty list, so one source never takes the others down.
type Fetcher interface {
	Name() string
	Fetch() ([]NewsItem, error)
}
