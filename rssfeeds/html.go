package rssfeeds

import (
	"html"
	"strings"
)

// StripHTML removes markup from a feed summary, collapsing whitespace
// between tags to single spaces and unescaping entities.
func StripHTML(s string) string {
	var b strings.Builder
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
			b.WriteRune(' ')
		case !inTag:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(html.UnescapeString(b.String())), " ")
}
