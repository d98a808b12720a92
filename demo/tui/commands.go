package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"newsrec/demo/client"
)

// loadCategories fetches the category list from the API
func loadCategories(c *client.Client) tea.Cmd {
	return func() tea.Msg {
		categories, err := c.Categories(context.Background())
		return CategoriesMsg{Categories: categories, Err: err}
	}
}

// loadNews fetches (or re-fetches through the server cache) a category
func loadNews(c *client.Client, category string) tea.Cmd {
	return func() tea.Msg {
		corpus, notices, err := c.News(context.Background(), category)
		return CorpusMsg{Corpus: corpus, Notices: notices, Err: err}
	}
}

// loadContent fetches the full article text for the detail panel
func loadContent(c *client.Client, category, title string) tea.Cmd {
	return func() tea.Msg {
		content, err := c.ArticleContent(context.Background(), category, title)
		return ContentMsg{Title: title, Content: content, Err: err}
	}
}

// runRecommend triggers the recommendation pipeline
func runRecommend(c *client.Client, category, title string) tea.Cmd {
	return func() tea.Msg {
		result, uses, err := c.Recommend(context.Background(), category, title)
		if errors.Is(err, client.ErrNeedsAPIKey) {
			return RecommendMsg{NeedsKey: true}
		}
		return RecommendMsg{Result: result, Uses: uses, Err: err}
	}
}

// submitKeys stores the entered API key on the session
func submitKeys(c *client.Client, modelKey string) tea.Cmd {
	return func() tea.Msg {
		err := c.SubmitKeys(context.Background(), modelKey, "")
		return KeysSavedMsg{Err: err}
	}
}
