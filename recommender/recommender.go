// Package recommender runs the end-to-end pipeline for one user
// request: cached corpus -> prompt -> model -> extraction, then the
// keyword/video leg. Every failure degrades to an empty or reduced
// result plus a notice; nothing here is fatal.
package recommender

import (
	"context"
	"fmt"
	"log"
	"time"

	"newsrec/cache"
	"newsrec/config"
	"newsrec/extract"
	"newsrec/llm"
	"newsrec/prompt"
	"newsrec/session"
	"newsrec/types"
	"newsrec/video"
)

// VideoSearcher is the slice of the video gateway the pipeline needs.
type VideoSearcher interface {
	GetVideos(ctx context.Context, keyword string, maxResults int) []types.VideoResult
}

// Result is everything one recommendation run produced. It is not
// retained past the request that built it.
type Result struct {
	Reference       *types.Article         `json:"reference"`
	Recommendations []types.Recommendation `json:"recommendations"`
	Videos          []types.VideoResult    `json:"videos"`
	Notices         []string               `json:"notices,omitempty"`
}

// Recommender wires the pipeline stages together.
type Recommender struct {
	cfg          config.Config
	cache        *cache.CorpusCache
	newCompleter func(provider, apiKey, model string) (llm.Completer, error)
	newGateway   func(apiKey string) VideoSearcher
	sleep        func(time.Duration)
}

// New creates a Recommender over the given corpus cache.
func New(cfg config.Config, corpusCache *cache.CorpusCache) *Recommender {
	return &Recommender{
		cfg:          cfg,
		cache:        corpusCache,
		newCompleter: llm.New,
		newGateway:   func(apiKey string) VideoSearcher { return video.NewGateway(apiKey) },
		sleep:        time.Sleep,
	}
}

// Recommend runs the whole pipeline for the article the session
// selected. The session's own keys, when present, take precedence over
// the server configuration.
func (r *Recommender) Recommend(ctx context.Context, sess session.Session, category, selectedTitle string) *Result {
	result := &Result{}

	corpus, fetchNotices := r.cache.GetOrFetch(ctx, category)
	for _, n := range fetchNotices {
		result.Notices = append(result.Notices, n.Error())
	}

	ref := corpus.FindByTitle(selectedTitle)
	if ref == nil {
		result.Notices = append(result.Notices, fmt.Sprintf("article %q not found in the %s corpus", selectedTitle, category))
		return result
	}
	result.Reference = ref

	modelKey := sess.ModelKey
	if modelKey == "" {
		modelKey = r.cfg.ModelAPIKey
	}
	completer, err := r.newCompleter(r.cfg.ModelProvider, modelKey, r.cfg.ModelName)
	if err != nil {
		result.Notices = append(result.Notices, err.Error())
		return result
	}

	start := time.Now()
	result.Recommendations = r.recommendArticles(ctx, completer, ref, corpus.Articles, result)

	// Pad fast responses up to the floor, purely for perceived
	// responsiveness.
	if elapsed := time.Since(start); elapsed < config.MinResponseTime {
		r.sleep(config.MinResponseTime - elapsed)
	}

	videoKey := sess.VideoKey
	if videoKey == "" {
		videoKey = r.cfg.VideoAPIKey
	}
	result.Videos = r.findVideos(ctx, completer, r.newGateway(videoKey), ref, result)

	return result
}

func (r *Recommender) recommendArticles(ctx context.Context, completer llm.Completer, ref *types.Article, corpus []types.Article, result *Result) []types.Recommendation {
	raw, err := completer.Complete(ctx, prompt.BuildRecommendation(ref.Title, ref.Content, corpus))
	if err != nil {
		result.Notices = append(result.Notices, fmt.Sprintf("recommendation request failed: %v", err))
		return nil
	}
	if raw == "" {
		result.Notices = append(result.Notices, "the model returned no usable content")
		return nil
	}

	recs, err := extract.Recommendations(raw, ref.Title)
	if err != nil {
		result.Notices = append(result.Notices, fmt.Sprintf("could not parse recommendations: %v", err))
		return nil
	}
	return recs
}

// findVideos derives search keywords from the reference article and
// accumulates gateway results until at least MinVideoResults are
// collected or keywords run out. Keyword extraction failing falls back
// to searching the reference title itself.
func (r *Recommender) findVideos(ctx context.Context, completer llm.Completer, gateway VideoSearcher, ref *types.Article, result *Result) []types.VideoResult {
	keywords := r.extractKeywords(ctx, completer, ref)

	var videos []types.VideoResult
	for _, keyword := range keywords {
		videos = append(videos, gateway.GetVideos(ctx, keyword, config.VideosPerKeyword)...)
		if len(videos) >= config.MinVideoResults {
			break
		}
	}
	return videos
}

func (r *Recommender) extractKeywords(ctx context.Context, completer llm.Completer, ref *types.Article) []string {
	raw, err := completer.Complete(ctx, prompt.BuildKeywords(ref.Title, ref.Content))
	if err != nil {
		log.Printf("recommender: keyword request failed, falling back to title: %v", err)
		return []string{ref.Title}
	}

	keywords, err := extract.Keywords(raw)
	if err != nil || len(keywords) == 0 {
		log.Printf("recommender: keyword extraction failed, falling back to title: %v", err)
		return []string{ref.Title}
	}
	return keywords
}
