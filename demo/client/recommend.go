package client

import (
	"context"
	"fmt"
	"net/http"

	"newsrec/recommender"
)

// Recommend runs the recommendation pipeline for the selected article.
// Returns ErrNeedsAPIKey when the server requires a session key first.
func (c *Client) Recommend(ctx context.Context, category, title string) (*recommender.Result, int, error) {
	payload := map[string]string{"category": category, "title": title}
	var out struct {
		Result      *recommender.Result `json:"result"`
		Uses        int                 `json:"uses"`
		Error       string              `json:"error"`
		NeedsAPIKey bool                `json:"needs_api_key"`
	}
	status, err := c.doJSON(ctx, http.MethodPost, "/api/recommend", payload, &out)
	if err != nil {
		return nil, 0, err
	}
	if status == http.StatusPaymentRequired || out.NeedsAPIKey {
		return nil, 0, ErrNeedsAPIKey
	}
	if status != http.StatusOK {
		return nil, 0, fmt.Errorf("server returned %d: %s", status, out.Error)
	}
	return out.Result, out.Uses, nil
}

// SubmitKeys stores user-supplied API keys on the current session.
func (c *Client) SubmitKeys(ctx context.Context, modelKey, videoKey string) error {
	payload := map[string]string{"model_key": modelKey, "video_key": videoKey}
	var out struct {
		Error string `json:"error"`
	}
	status, err := c.doJSON(ctx, http.MethodPost, "/api/session/keys", payload, &out)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("server returned %d: %s", status, out.Error)
	}
	return nil
}
