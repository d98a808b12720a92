package tui

import (
	"newsrec/recommender"
	"newsrec/types"
)

// Messages for the tea program

// CategoriesMsg is sent when the category list arrives
type CategoriesMsg struct {
	Categories []string
	Err        error
}

// CorpusMsg is sent when a category's articles arrive
type CorpusMsg struct {
	Corpus  *types.Corpus
	Notices []string
	Err     error
}

// ContentMsg is sent when the full article text arrives
type ContentMsg struct {
	Title   string
	Content string
	Err     error
}

// RecommendMsg is sent when the recommendation pipeline finishes
type RecommendMsg struct {
	Result   *recommender.Result
	Uses     int
	NeedsKey bool
	Err      error
}

// KeysSavedMsg is sent after submitting session API keys
type KeysSavedMsg struct {
	Err error
}
