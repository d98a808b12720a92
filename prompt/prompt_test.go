package prompt

import (
	"fmt"
	"strings"
	"testing"

	"newsrec/config"
	"newsrec/types"
)

func TestBuildRecommendationEmbedsEverything(t *testing.T) {
	corpus := []types.Article{
		{Title: "First Story", Link: "https://example.com/1", Source: "Feed A"},
		{Title: "Second Story", Link: "https://example.com/2", Source: "Feed B"},
		{Title: "Third Story", Link: "https://example.com/3", Source: "Feed C"},
	}

	p := BuildRecommendation("Reference Title", "Reference body text.", corpus)

	if got := strings.Count(p, "Reference Title"); got != 1 {
		t.Errorf("reference title should appear exactly once, got %d", got)
	}
	if !strings.Contains(p, "Reference body text.") {
		t.Errorf("reference content missing from prompt")
	}
	for _, a := range corpus {
		record := fmt.Sprintf("TITLE: %s\nLINK: %s\nSOURCE: %s", a.Title, a.Link, a.Source)
		if !strings.Contains(p, record) {
			t.Errorf("corpus article %q missing from prompt", a.Title)
		}
	}
	if !strings.Contains(p, "Return ONLY raw JSON") {
		t.Errorf("output constraints missing from prompt")
	}
}

func TestBuildRecommendationSampleBound(t *testing.T) {
	corpus := make([]types.Article, 0, config.PromptSampleSize*2)
	for i := 0; i < config.PromptSampleSize*2; i++ {
		corpus = append(corpus, types.Article{
			Title:  fmt.Sprintf("Story %d", i),
			Link:   fmt.Sprintf("https://example.com/%d", i),
			Source: "Feed",
		})
	}

	p := BuildRecommendation("Ref", "body", corpus)

	if got := strings.Count(p, "ID: "); got != config.PromptSampleSize {
		t.Errorf("expected %d sampled records, got %d", config.PromptSampleSize, got)
	}
}

func TestBuildRecommendationSmallCorpusKeepsOrder(t *testing.T) {
	corpus := []types.Article{
		{Title: "Alpha", Link: "https://example.com/a", Source: "Feed"},
		{Title: "Beta", Link: "https://example.com/b", Source: "Feed"},
	}

	p := BuildRecommendation("Ref", "body", corpus)

	if strings.Index(p, "Alpha") > strings.Index(p, "Beta") {
		t.Errorf("a corpus within the sample bound should keep its order")
	}
}

func TestBuildKeywordsTruncatesContent(t *testing.T) {
	long := strings.Repeat("x", config.KeywordContentLimit) + "OVERFLOW"

	p := BuildKeywords("Some Title", long)

	if strings.Contains(p, "OVERFLOW") {
		t.Errorf("content past the limit should be trimmed")
	}
	if !strings.Contains(p, "Some Title") {
		t.Errorf("title missing from keyword prompt")
	}
	if !strings.Contains(p, strings.Repeat("x", config.KeywordContentLimit)) {
		t.Errorf("content up to the limit should be kept")
	}
}

func TestTruncateRuneSafe(t *testing.T) {
	s := strings.Repeat("é", 10)
	got := truncate(s, 4)
	if got != strings.Repeat("é", 4) {
		t.Errorf("truncate should cut on rune boundaries, got %q", got)
	}
	if truncate("short", 10) != "short" {
		t.Errorf("truncate should leave short strings unchanged")
	}
}
