package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model interface
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case CategoriesMsg:
		return m.handleCategories(msg)
	case CorpusMsg:
		return m.handleCorpus(msg)
	case ContentMsg:
		return m.handleContent(msg)
	case RecommendMsg:
		return m.handleRecommend(msg)
	case KeysSavedMsg:
		return m.handleKeysSaved(msg)
	default:
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd
	}
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Key entry screen owns the keyboard except for escape.
	if m.State == StateKeyEntry {
		switch msg.String() {
		case "esc":
			m.State = StateArticles
			return m, nil
		case "enter":
			key := m.KeyInput.Value()
			if key == "" {
				return m, nil
			}
			m.State = StateRunning
			return m, submitKeys(m.Client, key)
		default:
			var cmd tea.Cmd
			m.KeyInput, cmd = m.KeyInput.Update(msg)
			return m, cmd
		}
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "up", "k":
		switch m.State {
		case StateCategories:
			if m.CategoryCursor > 0 {
				m.CategoryCursor--
			}
		case StateArticles:
			if m.ArticleCursor > 0 {
				m.ArticleCursor--
				m.Expanded = false
			}
		}

	case "down", "j":
		switch m.State {
		case StateCategories:
			if m.CategoryCursor < len(m.Categories)-1 {
				m.CategoryCursor++
			}
		case StateArticles:
			if m.ArticleCursor < len(m.Articles)-1 {
				m.ArticleCursor++
				m.Expanded = false
			}
		}

	case "enter":
		switch m.State {
		case StateCategories:
			if len(m.Categories) == 0 {
				return m, nil
			}
			m.Category = m.Categories[m.CategoryCursor]
			m.State = StateLoadingNews
			return m, loadNews(m.Client, m.Category)
		case StateArticles:
			// Toggle the detail panel, fetching full text on first open.
			article := m.selectedArticle()
			if article == nil {
				return m, nil
			}
			m.Expanded = !m.Expanded
			if m.Expanded {
				if _, ok := m.FullContent[article.Title]; !ok {
					return m, loadContent(m.Client, m.Category, article.Title)
				}
			}
		}

	case "r":
		if m.State == StateArticles {
			article := m.selectedArticle()
			if article == nil {
				return m, nil
			}
			m.State = StateRunning
			m.Err = nil
			return m, runRecommend(m.Client, m.Category, article.Title)
		}

	case "tab":
		if m.State == StateResults {
			if m.ActiveTab == TabArticles {
				m.ActiveTab = TabVideos
			} else {
				m.ActiveTab = TabArticles
			}
		}

	case "b", "esc":
		switch m.State {
		case StateArticles:
			m.State = StateCategories
			m.Expanded = false
		case StateResults:
			m.State = StateArticles
			m.ActiveTab = TabArticles
		}
	}

	return m, nil
}

func (m Model) handleCategories(msg CategoriesMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.Err = msg.Err
		return m, nil
	}
	m.Categories = msg.Categories
	m.Err = nil
	return m, nil
}

func (m Model) handleCorpus(msg CorpusMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.Err = msg.Err
		m.State = StateCategories
		return m, nil
	}
	m.Articles = msg.Corpus.Articles
	m.Notices = msg.Notices
	m.ArticleCursor = 0
	m.Expanded = false
	m.Err = nil
	m.State = StateArticles
	return m, nil
}

func (m Model) handleContent(msg ContentMsg) (tea.Model, tea.Cmd) {
	if msg.Err == nil {
		m.FullContent[msg.Title] = msg.Content
	}
	return m, nil
}

func (m Model) handleRecommend(msg RecommendMsg) (tea.Model, tea.Cmd) {
	if msg.NeedsKey {
		m.State = StateKeyEntry
		m.KeyInput.Focus()
		return m, nil
	}
	if msg.Err != nil {
		m.Err = msg.Err
		m.State = StateArticles
		return m, nil
	}
	m.Result = msg.Result
	m.Uses = msg.Uses
	m.ActiveTab = TabArticles
	m.Err = nil
	m.State = StateResults
	return m, nil
}

func (m Model) handleKeysSaved(msg KeysSavedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.Err = msg.Err
		m.State = StateKeyEntry
		return m, nil
	}
	// Key accepted, retry the run that was gated.
	article := m.selectedArticle()
	if article == nil {
		m.State = StateArticles
		return m, nil
	}
	return m, runRecommend(m.Client, m.Category, article.Title)
}
