package rssfeeds

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mmcdole/gofeed"

	"newsrec/types"
)

type fakeParser struct {
	feeds map[string]*gofeed.Feed
	errs  map[string]error
	calls []string
}

func (p *fakeParser) ParseURLWithContext(feedURL string, _ context.Context) (*gofeed.Feed, error) {
	p.calls = append(p.calls, feedURL)
	if err, ok := p.errs[feedURL]; ok {
		return nil, err
	}
	if feed, ok := p.feeds[feedURL]; ok {
		return feed, nil
	}
	return nil, fmt.Errorf("no feed registered for %s", feedURL)
}

func newTestIngestor(parser FeedParser, feeds map[string][]string) *Ingestor {
	return &Ingestor{
		parser:      parser,
		feeds:       feeds,
		fallbackURL: "https://search.example.com/rss?q=%s",
		perFeed:     10,
	}
}

func feedWith(title string, items ...*gofeed.Item) *gofeed.Feed {
	return &gofeed.Feed{Title: title, Items: items}
}

func item(title, link, desc string) *gofeed.Item {
	return &gofeed.Item{Title: title, Link: link, Description: desc}
}

func TestIngestDedupAndMapping(t *testing.T) {
	parser := &fakeParser{feeds: map[string]*gofeed.Feed{
		"https://a.example.com/rss": feedWith("Feed A",
			item("Shared Story", "https://a.example.com/1", "from A"),
			item("Only In A", "https://a.example.com/2", "second"),
		),
		"https://b.example.com/rss": feedWith("",
			item("Shared Story", "https://b.example.com/1", "from B"),
			item("Only In B", "https://b.example.com/2", "fourth"),
		),
	}}
	in := newTestIngestor(parser, map[string][]string{
		"World": {"https://a.example.com/rss", "https://b.example.com/rss"},
	})

	corpus, notices := in.Ingest(context.Background(), "World")
	if len(notices) != 0 {
		t.Fatalf("unexpected notices: %v", notices)
	}

	want := []types.Article{
		{Title: "Shared Story", Content: "from A", Link: "https://a.example.com/1", Source: "Feed A"},
		{Title: "Only In A", Content: "second", Link: "https://a.example.com/2", Source: "Feed A"},
		{Title: "Only In B", Content: "fourth", Link: "https://b.example.com/2", Source: types.UnknownSource},
	}
	if diff := cmp.Diff(want, corpus.Articles); diff != "" {
		t.Errorf("articles mismatch (-want +got):\n%s", diff)
	}
}

func TestIngestPerFeedLimit(t *testing.T) {
	items := make([]*gofeed.Item, 0, 12)
	for i := 0; i < 12; i++ {
		items = append(items, item(fmt.Sprintf("Story %d", i), fmt.Sprintf("https://a.example.com/%d", i), "x"))
	}
	parser := &fakeParser{feeds: map[string]*gofeed.Feed{
		"https://a.example.com/rss": feedWith("Feed A", items...),
	}}
	in := newTestIngestor(parser, map[string][]string{"World": {"https://a.example.com/rss"}})

	corpus, _ := in.Ingest(context.Background(), "World")
	if len(corpus.Articles) != 10 {
		t.Errorf("expected 10 articles, got %d", len(corpus.Articles))
	}
}

func TestIngestSourceFailureIsNotFatal(t *testing.T) {
	parser := &fakeParser{
		feeds: map[string]*gofeed.Feed{
			"https://ok.example.com/rss": feedWith("OK Feed",
				item("Survivor", "https://ok.example.com/1", "still here")),
		},
		errs: map[string]error{
			"https://down.example.com/rss": io.ErrUnexpectedEOF,
		},
	}
	in := newTestIngestor(parser, map[string][]string{
		"World": {"https://down.example.com/rss", "https://ok.example.com/rss"},
	})

	corpus, notices := in.Ingest(context.Background(), "World")
	if len(corpus.Articles) != 1 || corpus.Articles[0].Title != "Survivor" {
		t.Fatalf("expected the surviving article, got %+v", corpus.Articles)
	}
	if len(notices) != 1 {
		t.Errorf("expected 1 notice, got %d", len(notices))
	}
	// A partial batch must not trigger the fallback search.
	for _, call := range parser.calls {
		if strings.Contains(call, "search.example.com") {
			t.Errorf("fallback search should not run when a source succeeded")
		}
	}
}

func TestIngestFallbackWhenAllSourcesFail(t *testing.T) {
	parser := &fakeParser{
		feeds: map[string]*gofeed.Feed{
			"https://search.example.com/rss?q=World+News": feedWith("Search",
				item("Fallback Story", "https://search.example.com/1", "rescued")),
		},
		errs: map[string]error{
			"https://a.example.com/rss": io.ErrUnexpectedEOF,
			"https://b.example.com/rss": io.ErrUnexpectedEOF,
		},
	}
	in := newTestIngestor(parser, map[string][]string{
		"World News": {"https://a.example.com/rss", "https://b.example.com/rss"},
	})

	corpus, notices := in.Ingest(context.Background(), "World News")
	if len(corpus.Articles) != 1 || corpus.Articles[0].Title != "Fallback Story" {
		t.Fatalf("expected the fallback article, got %+v", corpus.Articles)
	}
	// Per-source failures are still surfaced alongside the fallback.
	if len(notices) != 2 {
		t.Errorf("expected 2 notices, got %d", len(notices))
	}
}

func TestIngestEverythingFails(t *testing.T) {
	parser := &fakeParser{errs: map[string]error{
		"https://a.example.com/rss":              io.ErrUnexpectedEOF,
		"https://search.example.com/rss?q=World": io.ErrUnexpectedEOF,
	}}
	in := newTestIngestor(parser, map[string][]string{"World": {"https://a.example.com/rss"}})

	corpus, notices := in.Ingest(context.Background(), "World")
	if len(corpus.Articles) != 0 {
		t.Errorf("expected an empty corpus, got %d articles", len(corpus.Articles))
	}
	if len(notices) != 2 {
		t.Errorf("expected 2 notices, got %d", len(notices))
	}
}

func TestEntryMappingFromFixture(t *testing.T) {
	data, err := os.ReadFile("testdata/sample.xml")
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	feed, err := gofeed.NewParser().ParseString(string(data))
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}

	first := entryToArticle(feed.Items[0], feed.Title)
	want := types.Article{
		Title:   "Summit Ends With Joint Statement",
		Content: "Leaders agreed on a joint statement. Talks continue next month.",
		Link:    "https://worldwire.example.com/summit",
		Source:  "World Wire",
	}
	if diff := cmp.Diff(want, first); diff != "" {
		t.Errorf("article mismatch (-want +got):\n%s", diff)
	}

	second := entryToArticle(feed.Items[1], feed.Title)
	if second.Title != "Floods Displace Thousands" {
		t.Errorf("title should be trimmed, got %q", second.Title)
	}

	fourth := entryToArticle(feed.Items[3], feed.Title)
	if !strings.Contains(fourth.Content, "the & symbol") {
		t.Errorf("entities should be unescaped, got %q", fourth.Content)
	}
}

func TestDedupKeepsFirstOccurrence(t *testing.T) {
	in := []types.Article{
		{Title: "A", Link: "first"},
		{Title: "B", Link: "second"},
		{Title: "A", Link: "third"},
	}
	out := dedupByTitle(in)
	if len(out) != 2 {
		t.Fatalf("expected 2 articles, got %d", len(out))
	}
	if out[0].Link != "first" {
		t.Errorf("dedup should keep the first occurrence, got %q", out[0].Link)
	}
}
