package types

import "time"

// UnknownSource is used when a feed does not expose its own title.
const UnknownSource = "Unknown Source"

// Article represents a single feed entry after HTML cleanup.
// Title is the dedup key within one ingestion batch.
type Article struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	Link        string `json:"link"`
	Source      string `json:"source"`
	FullContent string `json:"full_content,omitempty"`
}

// Corpus is the deduplicated article set for one category from one
// ingestion pass. It is superseded, never merged, on re-fetch.
type Corpus struct {
	Category  string    `json:"category"`
	Articles  []Article `json:"articles"`
	FetchedAt time.Time `json:"fetched_at"`
}

// FindByTitle returns the first article with the given title, or nil.
func (c *Corpus) FindByTitle(title string) *Article {
	for i := range c.Articles {
		if c.Articles[i].Title == title {
			return &c.Articles[i]
		}
	}
	return nil
}
