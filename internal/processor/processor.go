package processor

import (
	"math/rand"
	"strings"

	"github.com/Code4Bharat1/rfid/internal/collector"
)

// AllowedKeywords gates which headlines reach the idle ticker. A title
// must contain at least one of these, case-insensitively.
var AllowedKeywords = []string{
	"AI", "Machine", "ML", "GPT", "Llama", "Claude",
	"Python", "JavaScript", "Rust", "Go", "TypeScript", "Framework",
	"Release", "Launch", "Tool", "Open Source", "API", "SDK",
	"Cloud", "Data", "Security", "Technology", "Industry",
}

// MatchesKeyword reports whether the title contains any allowed keyword.
func MatchesKeyword(title string) bool {
	lower := strings.ToLower(title)
	for _, k := range AllowedKeywords {
		if strings.Contains(lower, strings.ToLower(k)) {
			return true
		}
	}
	return false
}

// FilterDedupe merges candidates into at most max tech headlines.
// The input is shuffled first so that when the cap bites, no single
// source dominates the ticker. Items with an already-seen title or
// non-empty link are dropped.
func FilterDedupe(items []collector.NewsItem, max int) []collector.NewsItem {
	shuffled := make([]collector.NewsItem, len(items))
	copy(shuffled, items)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	out := make([]collector.NewsItem, 0, len(shuffled))
	seenTitles := make(map[string]struct{})
	seenLinks := make(map[string]struct{})

	for _, it := range shuffled {
		if max > 0 && len(out) >= max {
			break
		}
		title := strings.TrimSpace(it.Title)
		if title == "" {
			continue
		}
		if !MatchesKeyword(title) {
			continue
		}
		if _, ok := seenTitles[title]; ok {
			continue
		}
		if it.Link != "" {
			if _, ok := seenLinks[it.Link]; ok {
				continue
			}
		}
		seenTitles[title] = struct{}{}
		if it.Link != "" {
			seenLinks[it.Link] = struct{}{}
		}
		out = append(out, it)
	}
	return out
}
