package client

import (
	"context"
	"fmt"
	"net/http"

	"newsrec/types"
)

// Categories lists the configured news categories in display order.
func (c *Client) Categories(ctx context.Context) ([]string, error) {
	var out struct {
		Categories []string `json:"categories"`
	}
	status, err := c.doJSON(ctx, http.MethodGet, "/api/categories", nil, &out)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("server returned %d", status)
	}
	return out.Categories, nil
}

// News fetches the corpus for a category plus any source notices.
func (c *Client) News(ctx context.Context, category string) (*types.Corpus, []string, error) {
	var out struct {
		Corpus  *types.Corpus `json:"corpus"`
		Notices []string      `json:"notices"`
	}
	status, err := c.doJSON(ctx, http.MethodGet, "/api/news/"+category, nil, &out)
	if err != nil {
		return nil, nil, err
	}
	if status != http.StatusOK {
		return nil, nil, fmt.Errorf("server returned %d", status)
	}
	return out.Corpus, out.Notices, nil
}

// ArticleContent fetches the full readable text for the detail panel.
func (c *Client) ArticleContent(ctx context.Context, category, title string) (string, error) {
	payload := map[string]string{"category": category, "title": title}
	var out struct {
		Content string `json:"content"`
		Error   string `json:"error"`
	}
	status, err := c.doJSON(ctx, http.MethodPost, "/api/article/content", payload, &out)
	if err != nil {
		return "", err
	}
	if status != http.StatusOK {
		return "", fmt.Errorf("server returned %d: %s", status, out.Error)
	}
	return out.Content, nil
}
