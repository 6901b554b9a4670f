package collector

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// maxDescriptionWords caps how much text the idle ticker shows per headline.
const maxDescriptionWords = 45

// normalize builds a NewsItem from raw per-source fields. Missing fields
// become empty strings; a missing description falls back to the title.
func normalize(title, description, link, source, published string) NewsItem {
	title = strings.TrimSpace(title)
	description = truncateWords(cleanText(description), maxDescriptionWords)
	if description == "" {
		description = title
	}
	return NewsItem{
		Title:       title,
		Description: description,
		Link:        strings.TrimSpace(link),
		Source:      strings.TrimSpace(source),
		Published:   strings.TrimSpace(published),
	}
}

// cleanText strips HTML tags and collapses all whitespace runs to single
// spaces. Feed summaries routinely arrive as HTML fragments.
func cleanText(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if strings.ContainsAny(s, "<>") {
		if doc, err := goquery.NewDocumentFromReader(strings.NewReader(s)); err == nil {
			s = doc.Text()
		}
	}
	return strings.Join(strings.Fields(s), " ")
}

// truncateWords keeps the first limit whitespace-delimited words and marks
// the cut with an ellipsis.
func truncateWords(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	words := strings.Fields(s)
	if len(words) <= limit {
		return s
	}
	return strings.Join(words[:limit], " ") + "..."
}
