package processor

import (
	"testing"

	"github.com/Code4Bharat1/rfid/internal/collector"
)

func TestFilterDedupeKeepsOnlyKeywordMatches(t *testing.T) {
	in := []collector.NewsItem{
		{Title: "Apple releases new API", Link: "http://x.com/api"},
		{Title: "Lunch menu today", Link: "http://x.com/lunch"},
	}
	out := FilterDedupe(in, 10)
	if len(out) != 1 {
		t.Fatalf("got %d items, want 1", len(out))
	}
	if out[0].Title != "Apple releases new API" {
		t.Fatalf("wrong survivor: %q", out[0].Title)
	}
}

func TestFilterDedupeEmptyWhenNoKeywords(t *testing.T) {
	in := []collector.NewsItem{
		{Title: "Weather tomorrow"},
		{Title: "Local football results"},
	}
	if out := FilterDedupe(in, 10); len(out) != 0 {
		t.Fatalf("non-tech titles should all be dropped, got %d", len(out))
	}
}

func TestFilterDedupeDropsDuplicateLinks(t *testing.T) {
	in := []collector.NewsItem{
		{Title: "AI model ships", Link: "http://x.com/a"},
		{Title: "Different AI title same link", Link: "http://x.com/a"},
	}
	out := FilterDedupe(in, 10)
	if len(out) != 1 {
		t.Fatalf("shared link should survive once, got %d items", len(out))
	}
}

func TestFilterDedupeDropsDuplicateTitlesAndEmptyTitles(t *testing.T) {
	in := []collector.NewsItem{
		{Title: "Security patch released", Link: "http://a"},
		{Title: "Security patch released", Link: "http://b"},
		{Title: "", Link: "http://c"},
	}
	out := FilterDedupe(in, 10)
	if len(out) != 1 {
		t.Fatalf("got %d items, want 1", len(out))
	}
}

func TestFilterDedupeNeverEmitsDuplicates(t *testing.T) {
	// Shuffled order must not break the uniqueness guarantees.
	in := make([]collector.NewsItem, 0, 60)
	for i := 0; i < 20; i++ {
		in = append(in,
			collector.NewsItem{Title: "AI story one", Link: "http://dup/1"},
			collector.NewsItem{Title: "AI story two", Link: "http://dup/2"},
			collector.NewsItem{Title: "AI story three", Link: ""},
		)
	}
	out := FilterDedupe(in, 100)

	titles := make(map[string]int)
	links := make(map[string]int)
	for _, it := range out {
		titles[it.Title]++
		if it.Link != "" {
			links[it.Link]++
		}
	}
	for title, n := range titles {
		if n > 1 {
			t.Fatalf("title %q emitted %d times", title, n)
		}
	}
	for link, n := range links {
		if n > 1 {
			t.Fatalf("link %q emitted %d times", link, n)
		}
	}
}

func TestFilterDedupeRespectsCap(t *testing.T) {
	in := make([]collector.NewsItem, 0, 30)
	for i := 0; i < 30; i++ {
		in = append(in, collector.NewsItem{
			Title: "AI headline " + string(rune('A'+i)),
		})
	}
	if out := FilterDedupe(in, 5); len(out) != 5 {
		t.Fatalf("cap not applied, got %d items", len(out))
	}
}

func TestMatchesKeywordCaseInsensitive(t *testing.T) {
	if !MatchesKeyword("huge open source milestone") {
		t.Fatalf("lower-case 'open source' should match")
	}
	if MatchesKeyword("gardening tips for spring") {
		t.Fatalf("non-tech title should not match")
	}
}
