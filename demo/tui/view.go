package tui

import (
	"fmt"
	"strings"
)

const contentPreviewLimit = 500

// View implements tea.Model interface
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("📰 AI News Recommender"))
	b.WriteString("\n\n")

	if m.Err != nil {
		b.WriteString(ErrorStyle.Render("❌ " + m.Err.Error()))
		b.WriteString("\n\n")
	}

	switch m.State {
	case StateCategories:
		b.WriteString(m.viewCategories())
	case StateLoadingNews:
		b.WriteString(m.Spinner.View() + InfoStyle.Render(fmt.Sprintf(" Fetching %s news...", m.Category)))
	case StateArticles:
		b.WriteString(m.viewArticles())
	case StateRunning:
		b.WriteString(m.Spinner.View() + InfoStyle.Render(" AI is finding similar articles..."))
	case StateResults:
		b.WriteString(m.viewResults())
	case StateKeyEntry:
		b.WriteString(m.viewKeyEntry())
	}

	b.WriteString("\n\n")
	b.WriteString(InfoStyle.Render(m.helpText()))
	return b.String()
}

func (m Model) viewCategories() string {
	var b strings.Builder
	b.WriteString(InfoStyle.Render("Choose a news category:"))
	b.WriteString("\n\n")
	for i, category := range m.Categories {
		if i == m.CategoryCursor {
			b.WriteString(SelectedStyle.Render("> " + category))
		} else {
			b.WriteString("  " + category)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) viewArticles() string {
	var b strings.Builder
	b.WriteString(StatusStyle.Render(fmt.Sprintf("✅ Found %d articles in the %s category", len(m.Articles), m.Category)))
	b.WriteString("\n")
	for _, notice := range m.Notices {
		b.WriteString(InfoStyle.Render("⚠️  " + notice))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i, article := range m.Articles {
		if i == m.ArticleCursor {
			b.WriteString(SelectedStyle.Render("> " + article.Title))
		} else {
			b.WriteString("  " + article.Title)
		}
		b.WriteString("\n")
		if i == m.ArticleCursor && m.Expanded {
			b.WriteString(BoxStyle.Render(m.detailPanel()))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// detailPanel shows the highlighted article, preferring the extracted
// full text when it has arrived.
func (m Model) detailPanel() string {
	article := m.selectedArticle()
	if article == nil {
		return ""
	}

	content := article.Content
	if full, ok := m.FullContent[article.Title]; ok && full != "" {
		content = full
	}
	if runes := []rune(content); len(runes) > contentPreviewLimit {
		content = string(runes[:contentPreviewLimit]) + "..."
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Source: %s\n\n", article.Source))
	b.WriteString(content)
	b.WriteString("\n\n")
	b.WriteString(article.Link)
	return b.String()
}

func (m Model) viewResults() string {
	var b strings.Builder

	tabs := []string{"🔍 Similar Articles", "🎬 Related Videos"}
	for i, tab := range tabs {
		if Tab(i) == m.ActiveTab {
			b.WriteString(ActiveTabStyle.Render(tab))
		} else {
			b.WriteString(TabStyle.Render(tab))
		}
	}
	b.WriteString("\n\n")

	if m.Result == nil {
		b.WriteString(InfoStyle.Render("No results."))
		return b.String()
	}

	for _, notice := range m.Result.Notices {
		b.WriteString(InfoStyle.Render("⚠️  " + notice))
		b.WriteString("\n")
	}

	switch m.ActiveTab {
	case TabArticles:
		if len(m.Result.Recommendations) == 0 {
			b.WriteString(InfoStyle.Render("Could not find similar articles. Try selecting a different article."))
			break
		}
		for i, rec := range m.Result.Recommendations {
			b.WriteString(fmt.Sprintf("%d. %s\n", i+1, rec.Title))
			b.WriteString(InfoStyle.Render("   " + rec.Link))
			b.WriteString("\n")
		}
	case TabVideos:
		if len(m.Result.Videos) == 0 {
			b.WriteString(InfoStyle.Render("No related videos found."))
			break
		}
		for i, v := range m.Result.Videos {
			b.WriteString(fmt.Sprintf("%d. %s\n", i+1, v.Title))
			b.WriteString(InfoStyle.Render("   " + v.Link))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(InfoStyle.Render(fmt.Sprintf("Recommendation runs this session: %d", m.Uses)))
	return b.String()
}

func (m Model) viewKeyEntry() string {
	var b strings.Builder
	b.WriteString(InfoStyle.Render("Free usage limit reached. Enter your model API key to continue:"))
	b.WriteString("\n\n")
	b.WriteString(m.KeyInput.View())
	return b.String()
}

func (m Model) helpText() string {
	switch m.State {
	case StateCategories:
		return "↑/↓ move | enter select | q quit"
	case StateArticles:
		return "↑/↓ move | enter details | r recommend | b back | q quit"
	case StateResults:
		return "tab switch view | b back | q quit"
	case StateKeyEntry:
		return "enter submit | esc cancel"
	default:
		return "q quit"
	}
}
