package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"newsrec/demo/client"
	"newsrec/recommender"
	"newsrec/types"
)

// State represents the screen the client is on
type State string

const (
	StateCategories  State = "categories"
	StateLoadingNews State = "loading_news"
	StateArticles    State = "articles"
	StateRunning     State = "running"
	StateResults     State = "results"
	StateKeyEntry    State = "key_entry"
)

// Tab selects which result list is visible
type Tab int

const (
	TabArticles Tab = iota
	TabVideos
)

// Model represents the TUI client state (thin client over the API)
type Model struct {
	Client *client.Client

	State    State
	Category string

	Categories     []string
	CategoryCursor int

	Articles      []types.Article
	ArticleCursor int
	Expanded      bool
	FullContent   map[string]string

	Result    *recommender.Result
	Uses      int
	ActiveTab Tab

	Notices []string
	Err     error

	Spinner  spinner.Model
	KeyInput textinput.Model
}

// NewModel creates a new TUI model
func NewModel(apiURL string) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(colorPrimary))

	ti := textinput.New()
	ti.Placeholder = "model API key"
	ti.EchoMode = textinput.EchoPassword
	ti.CharLimit = 128

	return Model{
		Client:      client.NewClient(apiURL),
		State:       StateCategories,
		FullContent: make(map[string]string),
		Spinner:     s,
		KeyInput:    ti,
	}
}

// Init implements tea.Model interface
func (m Model) Init() tea.Cmd {
	return tea.Batch(loadCategories(m.Client), m.Spinner.Tick)
}

// selectedArticle returns the highlighted article, or nil.
func (m Model) selectedArticle() *types.Article {
	if m.ArticleCursor < 0 || m.ArticleCursor >= len(m.Articles) {
		return nil
	}
	return &m.Articles[m.ArticleCursor]
}
