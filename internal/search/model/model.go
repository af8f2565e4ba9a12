package model

import "strings"

// Article is the normalized representation of one news item regardless of
// which provider returned it. Optional fields stay empty when a provider
// does not supply them.
type Article struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
	Source  string `json:"source,omitempty"`
	Date    string `json:"date,omitempty"`
}

// CanonicalURL strips the query string and fragment from a link. It is the
// deduplication key: the same story shared with different tracking params
// collapses to one entry.
func CanonicalURL(link string) string {
	if i := strings.IndexAny(link, "?#"); i >= 0 {
		return link[:i]
	}
	return link
}
