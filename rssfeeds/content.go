package rssfeeds

import (
	"fmt"
	"strings"
	"time"

	readability "github.com/go-shiori/go-readability"

	"newsrec/types"
)

const extractorTimeout = 30 * time.Second

// FetchFullContent fetches and extracts the readable text of an article
// page for the detail panel. On extraction failure the caller keeps the
// feed summary.
func FetchFullContent(article *types.Article) (string, error) {
	if article.Link == "" {
		return "", fmt.Errorf("article link is empty")
	}

	extracted, err := readability.FromURL(article.Link, extractorTimeout)
	if err != nil {
		return "", fmt.Errorf("readability extraction failed: %w", err)
	}

	text := strings.TrimSpace(extracted.TextContent)
	if text == "" {
		return article.Content, nil
	}
	return text, nil
}
