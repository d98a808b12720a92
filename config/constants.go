package config

import "time"

// Ingestion Constants
const (
	// EntriesPerFeed limits how many entries are taken from each source.
	EntriesPerFeed = 10

	// CorpusTTL is how long a fetched corpus stays valid per category.
	CorpusTTL = time.Hour

	// FeedFetchTimeout bounds a single feed fetch.
	FeedFetchTimeout = 30 * time.Second
)

// Recommendation Constants
const (
	// PromptSampleSize caps how many corpus articles are embedded in the
	// recommendation prompt to stay inside the model context window.
	PromptSampleSize = 30

	// MaxRecommendations is the number of similar articles requested.
	MaxRecommendations = 5

	// KeywordContentLimit is how much reference content the keyword
	// prompt sees.
	KeywordContentLimit = 500

	// MinResponseTime pads responses faster than this up to the floor,
	// purely for perceived responsiveness.
	MinResponseTime = 1500 * time.Millisecond
)

// Video Constants
const (
	// MinVideoResults stops keyword iteration once reached.
	MinVideoResults = 3

	// VideosPerKeyword is the per-keyword result count requested from
	// the search API.
	VideosPerKeyword = 3

	// VideoPlaceholderThumbnail backs the no-API-key fallback result.
	VideoPlaceholderThumbnail = "https://via.placeholder.com/320x180/E5E7EB/6B7280?text=Video"
)

// Session Constants
const (
	// FreeUses is how many recommendation runs a session gets before a
	// user-supplied model key is required.
	FreeUses = 2
)
