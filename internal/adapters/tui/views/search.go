package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"vaultsearch/internal/adapters/tui/styles"
	"vaultsearch/internal/application"
	"vaultsearch/internal/application/commands"
)

// SearchKeyMap defines key bindings for the search view
type SearchKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Focus key.Binding
	Open  key.Binding
	Copy  key.Binding
	Edit  key.Binding
	Back  key.Binding
	Quit  key.Binding
}

var SearchKeys = SearchKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up", "ctrl+p"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down", "ctrl+n"),
		key.WithHelp("j/↓", "down"),
	),
	Focus: key.NewBinding(
		key.WithKeys("tab", "/"),
		key.WithHelp("tab", "edit query"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open in Obsidian"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy link"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
}

// SearchModel searches the selected vault
type SearchModel struct {
	ViewState
	deps            Deps
	input           textinput.Model
	results         []application.SearchResult
	pager           *Paginator
	browsing        bool // focus is on the result list rather than the input
	copyToClipboard func(string) error
}

// NewSearchModel creates a new search view model
func NewSearchModel(deps Deps) *SearchModel {
	input := textinput.New()
	input.Placeholder = "Search titles and content..."
	input.Focus()

	return &SearchModel{
		deps:            deps,
		input:           input,
		pager:           NewPaginator(10),
		copyToClipboard: clipboard.WriteAll,
	}
}

// Init initializes the search view
func (m *SearchModel) Init() tea.Cmd {
	return textinput.Blink
}

// Reset clears the query and results
func (m *SearchModel) Reset() {
	m.input.SetValue("")
	m.input.Focus()
	m.results = nil
	m.pager.SetTotal(0)
	m.browsing = false
	m.ClearMessage()
}

// Results returns the results currently shown
func (m *SearchModel) Results() []application.SearchResult {
	return m.results
}

type searchResultsMsg struct {
	query   string
	results []application.SearchResult
}

type openedMsg struct {
	title string
	err   error
}

func (m *SearchModel) search(query string) tea.Cmd {
	return func() tea.Msg {
		results, err := commands.NewSearchCommand(m.deps.Store, m.deps.Links, query).Execute(context.Background())
		if err != nil {
			return errMsg{err}
		}
		return searchResultsMsg{query: query, results: results}
	}
}

func (m *SearchModel) open(result application.SearchResult) tea.Cmd {
	return func() tea.Msg {
		return openedMsg{title: result.Title, err: m.deps.Opener.OpenURI(result.URI)}
	}
}

// Update handles messages for the search view
func (m *SearchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		m.pager.SetPageSize(m.pageSize(12) / 2)
		return m, nil

	case searchResultsMsg:
		// Drop results for a query the user has already changed
		if msg.query != m.input.Value() {
			return m, nil
		}
		m.results = msg.results
		m.pager.SetTotal(len(msg.results))
		return m, nil

	case openedMsg:
		if msg.err != nil {
			m.SetMessage("open failed: "+msg.err.Error(), true)
		} else {
			m.SetMessage("Opened "+msg.title, false)
		}
		return m, nil

	case errMsg:
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, SearchKeys.Quit) {
			return m, tea.Quit
		}
		if key.Matches(msg, SearchKeys.Back) {
			return m, func() tea.Msg { return SwitchToPickerMsg{} }
		}
		if m.browsing {
			return m.handleResultKey(msg)
		}
		return m.handleInputKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *SearchModel) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter, tea.KeyTab, tea.KeyDown:
		if len(m.results) > 0 {
			m.browsing = true
			m.input.Blur()
		}
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	query := m.input.Value()
	if query == before {
		return m, cmd
	}
	m.ClearMessage()
	if strings.TrimSpace(query) == "" {
		m.results = nil
		m.pager.SetTotal(0)
		return m, cmd
	}
	return m, tea.Batch(cmd, m.search(query))
}

func (m *SearchModel) handleResultKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, SearchKeys.Up):
		if !m.pager.CursorUp() {
			m.browsing = false
			return m, m.input.Focus()
		}

	case key.Matches(msg, SearchKeys.Down):
		m.pager.CursorDown()

	case key.Matches(msg, SearchKeys.Focus):
		m.browsing = false
		return m, m.input.Focus()

	case key.Matches(msg, SearchKeys.Open):
		if result, ok := m.current(); ok {
			return m, m.open(result)
		}

	case key.Matches(msg, SearchKeys.Copy):
		if result, ok := m.current(); ok {
			if err := m.copyToClipboard(result.URI); err != nil {
				m.SetMessage("copy failed: "+err.Error(), true)
			} else {
				m.SetMessage("Copied link to "+result.Title, false)
			}
		}

	case key.Matches(msg, SearchKeys.Edit):
		if result, ok := m.current(); ok {
			return m, func() tea.Msg { return OpenEditorMsg{Path: result.AbsPath} }
		}
	}

	return m, nil
}

func (m *SearchModel) current() (application.SearchResult, bool) {
	i := m.pager.Cursor()
	if i < 0 || i >= len(m.results) {
		return application.SearchResult{}, false
	}
	return m.results[i], true
}

// View renders the search view
func (m *SearchModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Search"))
	b.WriteString("\n")
	if vault := m.deps.Store.Current().VaultRoot(); vault != "" {
		b.WriteString(styles.Subtitle.Render(vault))
	} else {
		b.WriteString(styles.ErrorMsg.Render("No vault selected: press esc and choose one"))
	}
	b.WriteString("\n\n")

	b.WriteString(styles.InputFocused.Render(m.input.View()))
	b.WriteString("\n\n")

	switch {
	case m.pager.Total() > 0:
		b.WriteString(styles.Subtitle.Render(fmt.Sprintf("%d results", m.pager.Total())))
		b.WriteString("\n\n")

		start, end := m.pager.VisibleRange()
		for i := start; i < end; i++ {
			b.WriteString(m.renderResult(m.results[i], m.browsing && i == m.pager.Cursor()))
		}
		if more := m.pager.Total() - end; more > 0 {
			b.WriteString(styles.MutedText.Render(fmt.Sprintf("... and %d more", more)))
			b.WriteString("\n")
		}
	case strings.TrimSpace(m.input.Value()) != "":
		b.WriteString(styles.MutedText.Render("No results found"))
		b.WriteString("\n")
	default:
		b.WriteString(styles.MutedText.Render("Type to search"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if msg := m.renderMessage(); msg != "" {
		b.WriteString(msg)
		b.WriteString("\n\n")
	}

	if m.browsing {
		b.WriteString(helpBar(
			"j/k", "move",
			"enter", "open in Obsidian",
			"y", "copy link",
			"e", "edit",
			"tab", "query",
			"esc", "back",
		))
	} else {
		b.WriteString(helpBar(
			"enter/tab", "results",
			"esc", "back",
			"ctrl+c", "quit",
		))
	}

	return styles.App.Render(b.String())
}

func (m *SearchModel) renderResult(result application.SearchResult, selected bool) string {
	title := result.Title
	if selected {
		title = styles.Selected.Render(title)
	}
	return title + "\n" + styles.ResultPath.Render(result.RelPath) + "\n"
}
