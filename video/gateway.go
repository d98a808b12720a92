// Package video looks up related videos for a keyword. With an API key
// it queries the YouTube Data API; without one it degrades to a single
// synthesized search-link result, which always succeeds.
package video

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	youtube "google.golang.org/api/youtube/v3"

	"newsrec/config"
	"newsrec/types"
)

const (
	watchURLPattern  = "https://www.youtube.com/watch?v=%s"
	searchURLPattern = "https://www.youtube.com/results?search_query=%s"
)

type searchFunc func(ctx context.Context, apiKey, keyword string, maxResults int64) ([]types.VideoResult, error)

// Gateway issues keyword searches against the video API.
type Gateway struct {
	apiKey string
	search searchFunc
}

// NewGateway creates a Gateway. apiKey may be empty, which selects the
// degraded-but-always-succeeds placeholder path.
func NewGateway(apiKey string) *Gateway {
	return &Gateway{apiKey: apiKey, search: youtubeSearch}
}

// GetVideos returns up to maxResults videos for a keyword. An API
// failure on the authenticated path degrades to the same placeholder
// result as the unauthenticated path rather than returning nothing.
func (g *Gateway) GetVideos(ctx context.Context, keyword string, maxResults int) []types.VideoResult {
	if g.apiKey == "" {
		return []types.VideoResult{placeholderResult(keyword)}
	}

	results, err := g.search(ctx, g.apiKey, keyword, int64(maxResults))
	if err != nil {
		log.Printf("video: search for %q failed: %v", keyword, err)
		return []types.VideoResult{placeholderResult(keyword)}
	}
	return results
}

// placeholderResult points at the public search results page for the
// keyword, with a static thumbnail.
func placeholderResult(keyword string) types.VideoResult {
	return types.VideoResult{
		Title:       fmt.Sprintf("Videos about %q", keyword),
		Description: "Browse video search results for this topic.",
		Thumbnail:   config.VideoPlaceholderThumbnail,
		Link:        fmt.Sprintf(searchURLPattern, url.QueryEscape(keyword)),
	}
}

func youtubeSearch(ctx context.Context, apiKey, keyword string, maxResults int64) ([]types.VideoResult, error) {
	svc, err := youtube.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("creating youtube client: %w", err)
	}

	resp, err := svc.Search.List([]string{"snippet"}).
		Q(keyword).
		Type("video").
		MaxResults(maxResults).
		RelevanceLanguage("en").
		Context(ctx).
		Do()
	if err != nil {
		var gerr *googleapi.Error
		if errors.As(err, &gerr) {
			return nil, fmt.Errorf("youtube search HTTP %d: %w", gerr.Code, err)
		}
		return nil, fmt.Errorf("youtube search: %w", err)
	}

	results := make([]types.VideoResult, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Id == nil || item.Id.VideoId == "" || item.Snippet == nil {
			continue
		}
		results = append(results, types.VideoResult{
			Title:       item.Snippet.Title,
			Description: item.Snippet.Description,
			Thumbnail:   bestThumbnail(item.Snippet.Thumbnails),
			Link:        fmt.Sprintf(watchURLPattern, item.Id.VideoId),
			VideoID:     item.Id.VideoId,
		})
	}
	return results, nil
}

// bestThumbnail prefers the medium resolution, then default, then the
// static placeholder.
func bestThumbnail(thumbnails *youtube.ThumbnailDetails) string {
	if thumbnails == nil {
		return config.VideoPlaceholderThumbnail
	}
	if thumbnails.Medium != nil && thumbnails.Medium.Url != "" {
		return thumbnails.Medium.Url
	}
	if thumbnails.Default != nil && thumbnails.Default.Url != "" {
		return thumbnails.Default.Url
	}
	return config.VideoPlaceholderThumbnail
}
