package types

// Recommendation is a title/link pair the model returned as similar to
// the reference article. It lives only for the request that produced it.
type Recommendation struct {
	Title string `json:"title"`
	Link  string `json:"link"`
}

// VideoResult is a single video search hit (or the synthesized
// search-link fallback when no API key is configured).
type VideoResult struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Thumbnail   string `json:"thumbnail"`
	Link        string `json:"link"`
	VideoID     string `json:"video_id,omitempty"`
}
