package rssfeeds

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"newsrec/config"
	"newsrec/types"
)

// FeedParser abstracts gofeed so ingestion can be tested without the
// network.
type FeedParser interface {
	ParseURLWithContext(feedURL string, ctx context.Context) (*gofeed.Feed, error)
}

// Ingestor fetches the feeds of a category and turns them into a
// deduplicated corpus. A source failing is never fatal to the batch.
type Ingestor struct {
	parser      FeedParser
	feeds       map[string][]string
	fallbackURL string
	perFeed     int
}

// NewIngestor creates an Ingestor over the configured category feeds.
func NewIngestor() *Ingestor {
	return NewIngestorWithParser(gofeed.NewParser())
}

// NewIngestorWithParser creates an Ingestor using the given parser.
func NewIngestorWithParser(parser FeedParser) *Ingestor {
	return &Ingestor{
		parser:      parser,
		feeds:       config.CategoryFeeds,
		fallbackURL: config.FallbackSearchURL,
		perFeed:     config.EntriesPerFeed,
	}
}

// Ingest fetches every feed of a category sequentially and returns the
// corpus plus per-source notices. If every source fails or is empty, a
// single fallback search feed for the category name replaces the batch.
func (in *Ingestor) Ingest(ctx context.Context, category string) (*types.Corpus, []error) {
	var (
		articles []types.Article
		notices  []error
		fetched  int
	)

	for _, feedURL := range in.feeds[category] {
		entries, err := in.fetchFeed(ctx, feedURL, in.perFeed)
		if err != nil {
			log.Printf("rssfeeds: %s: %v", feedURL, err)
			notices = append(notices, fmt.Errorf("fetching %s: %w", feedURL, err))
			continue
		}
		if len(entries) == 0 {
			continue
		}
		fetched++
		articles = append(articles, entries...)
	}

	if fetched == 0 {
		fallback, err := in.fetchFallback(ctx, category)
		if err != nil {
			notices = append(notices, fmt.Errorf("fallback search for %q: %w", category, err))
			return &types.Corpus{Category: category, FetchedAt: time.Now()}, notices
		}
		// Fallback replaces the batch; the primary pass yielded nothing
		// to dedup against.
		return &types.Corpus{Category: category, Articles: fallback, FetchedAt: time.Now()}, notices
	}

	return &types.Corpus{
		Category:  category,
		Articles:  dedupByTitle(articles),
		FetchedAt: time.Now(),
	}, notices
}

func (in *Ingestor) fetchFeed(ctx context.Context, feedURL string, limit int) ([]types.Article, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, config.FeedFetchTimeout)
	defer cancel()

	feed, err := in.parser.ParseURLWithContext(feedURL, fetchCtx)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	source := strings.TrimSpace(feed.Title)
	if source == "" {
		source = types.UnknownSource
	}

	count := len(feed.Items)
	if limit > 0 && count > limit {
		count = limit
	}

	articles := make([]types.Article, 0, count)
	for i := 0; i < count; i++ {
		articles = append(articles, entryToArticle(feed.Items[i], source))
	}
	return articles, nil
}

// fetchFallback issues one query against the aggregating search feed
// for the category name. Entries are taken as-is, without dedup.
func (in *Ingestor) fetchFallback(ctx context.Context, category string) ([]types.Article, error) {
	searchURL := fmt.Sprintf(in.fallbackURL, url.QueryEscape(category))
	return in.fetchFeed(ctx, searchURL, 0)
}

func entryToArticle(item *gofeed.Item, source string) types.Article {
	summary := item.Description
	if summary == "" {
		summary = item.Content
	}
	return types.Article{
		Title:   strings.TrimSpace(item.Title),
		Content: StripHTML(summary),
		Link:    item.Link,
		Source:  source,
	}
}

// dedupByTitle keeps the first occurrence of each exact title.
func dedupByTitle(articles []types.Article) []types.Article {
	seen := make(map[string]bool, len(articles))
	out := make([]types.Article, 0, len(articles))
	for _, a := range articles {
		if seen[a.Title] {
			continue
		}
		seen[a.Title] = true
		out = append(out, a)
	}
	return out
}
