// Package cache holds the most recent corpus per category for a bounded
// time window, so repeated UI interactions don't re-fetch the feeds.
package cache

import (
	"context"
	"log"
	"sync"
	"time"

	"newsrec/types"
)

// FetchFunc produces a fresh corpus for a category. It never fails;
// degraded results come back as an empty corpus plus notices.
type FetchFunc func(ctx context.Context, category string) (*types.Corpus, []error)

// CorpusCache keeps at most one corpus per category, valid for a fixed
// TTL. There is no single-flight: two concurrent misses for the same
// category both fetch, and the worst case is redundant network I/O.
type CorpusCache struct {
	mu      sync.Mutex
	entries map[string]*types.Corpus
	ttl     time.Duration
	fetch   FetchFunc
	now     func() time.Time
}

// New creates a CorpusCache over the given fetcher.
func New(ttl time.Duration, fetch FetchFunc) *CorpusCache {
	return &CorpusCache{
		entries: make(map[string]*types.Corpus),
		ttl:     ttl,
		fetch:   fetch,
		now:     time.Now,
	}
}

// GetOrFetch returns the cached corpus for a category if it is within
// TTL, otherwise fetches a fresh one and replaces the entry.
func (c *CorpusCache) GetOrFetch(ctx context.Context, category string) (*types.Corpus, []error) {
	c.mu.Lock()
	if cached, ok := c.entries[category]; ok && c.now().Sub(cached.FetchedAt) < c.ttl {
		c.mu.Unlock()
		return cached, nil
	}
	c.mu.Unlock()

	// Fetch outside the lock so one slow category doesn't stall others.
	corpus, notices := c.fetch(ctx, category)

	c.mu.Lock()
	c.entries[category] = corpus
	c.mu.Unlock()
	return corpus, notices
}

// Invalidate drops the cached corpus for a category, if any.
func (c *CorpusCache) Invalidate(category string) {
	c.mu.Lock()
	delete(c.entries, category)
	c.mu.Unlock()
}

// Warm pre-fetches every listed category. Used by the optional cron
// warmer in the server; failures are logged and skipped.
func (c *CorpusCache) Warm(ctx context.Context, categories []string) {
	for _, category := range categories {
		corpus, notices := c.GetOrFetch(ctx, category)
		if len(notices) > 0 {
			log.Printf("cache: warming %q: %d source notice(s)", category, len(notices))
		}
		log.Printf("cache: warmed %q with %d article(s)", category, len(corpus.Articles))
	}
}
