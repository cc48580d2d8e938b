package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"vaultsearch/internal/adapters/tui/styles"
	"vaultsearch/internal/application"
	"vaultsearch/internal/application/commands"
)

// PickerKeyMap defines key bindings for the directory picker
type PickerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Enter  key.Binding
	Back   key.Binding
	Select key.Binding
	Search key.Binding
	Help   key.Binding
	Quit   key.Binding
}

var PickerKeys = PickerKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter", "l", "right"),
		key.WithHelp("enter", "open"),
	),
	Back: key.NewBinding(
		key.WithKeys("backspace", "h", "left"),
		key.WithHelp("backspace", "parent"),
	),
	Select: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "use as vault"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// pickerRow is a selectable line of the picker
type pickerRow struct {
	name  string
	path  string
	isDir bool
}

// PickerModel browses directories below the browse root and selects a vault
type PickerModel struct {
	ViewState
	deps     Deps
	listing  *application.Listing
	rows     []pickerRow
	pager    *Paginator
	indexing bool
}

// NewPickerModel creates a new picker model
func NewPickerModel(deps Deps) *PickerModel {
	return &PickerModel{
		deps:  deps,
		pager: NewPaginator(10),
	}
}

// Init lists the browse root
func (m *PickerModel) Init() tea.Cmd {
	return m.load("")
}

// Path returns the directory being shown
func (m *PickerModel) Path() string {
	if m.listing == nil {
		return ""
	}
	return m.listing.Path
}

func (m *PickerModel) load(path string) tea.Cmd {
	return func() tea.Msg {
		cmd := commands.NewListDirectoryCommand(m.deps.Guard, m.deps.Lister, path)
		listing, err := cmd.Execute(context.Background())
		if err != nil {
			return errMsg{err}
		}
		return listingLoadedMsg{listing}
	}
}

func (m *PickerModel) selectVault(path string) tea.Cmd {
	return func() tea.Msg {
		cmd := commands.NewSelectVaultCommand(m.deps.Guard, m.deps.Crawler, m.deps.Store, path)
		res, err := cmd.Execute(context.Background())
		if err != nil {
			return errMsg{err}
		}
		return VaultSelectedMsg{Vault: res.Vault, Count: res.Count}
	}
}

// Update handles messages for the picker
func (m *PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		m.pager.SetPageSize(m.pageSize(10))
		return m, nil

	case listingLoadedMsg:
		m.setListing(msg.listing)
		return m, nil

	case VaultSelectedMsg:
		m.indexing = false
		m.SetMessage(fmt.Sprintf("Indexed %d notes from %s", msg.Count, msg.Vault), false)
		return m, nil

	case errMsg:
		m.indexing = false
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case tea.KeyMsg:
		if m.indexing {
			return m, nil
		}
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *PickerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, PickerKeys.Quit):
		return m, tea.Quit

	case key.Matches(msg, PickerKeys.Up):
		m.pager.CursorUp()

	case key.Matches(msg, PickerKeys.Down):
		m.pager.CursorDown()

	case key.Matches(msg, PickerKeys.Enter):
		if row, ok := m.current(); ok && row.isDir {
			m.ClearMessage()
			return m, m.load(row.path)
		}

	case key.Matches(msg, PickerKeys.Back):
		if m.listing != nil && m.listing.Parent != "" {
			m.ClearMessage()
			return m, m.load(m.listing.Parent)
		}

	case key.Matches(msg, PickerKeys.Select):
		if m.listing != nil {
			m.indexing = true
			m.SetMessage("Indexing "+m.listing.Path+"...", false)
			return m, m.selectVault(m.listing.Path)
		}

	case key.Matches(msg, PickerKeys.Search):
		return m, func() tea.Msg { return SwitchToSearchMsg{} }

	case key.Matches(msg, PickerKeys.Help):
		return m, func() tea.Msg { return SwitchToHelpMsg{} }
	}

	return m, nil
}

func (m *PickerModel) setListing(listing *application.Listing) {
	m.listing = listing
	m.rows = m.rows[:0]
	if listing.Parent != "" {
		m.rows = append(m.rows, pickerRow{name: "..", path: listing.Parent, isDir: true})
	}
	for _, d := range listing.Dirs {
		m.rows = append(m.rows, pickerRow{name: d.Name, path: d.Path, isDir: true})
	}
	for _, f := range listing.Files {
		m.rows = append(m.rows, pickerRow{name: f.Name, path: f.Path})
	}
	m.pager.SetTotal(len(m.rows))
}

func (m *PickerModel) current() (pickerRow, bool) {
	i := m.pager.Cursor()
	if i < 0 || i >= len(m.rows) {
		return pickerRow{}, false
	}
	return m.rows[i], true
}

// View renders the picker
func (m *PickerModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Choose a vault"))
	b.WriteString("\n")

	if m.listing == nil {
		b.WriteString(styles.MutedText.Render("Loading..."))
		b.WriteString("\n\n")
		b.WriteString(m.renderMessage())
		return styles.App.Render(b.String())
	}

	labels := make([]string, 0, len(m.listing.Breadcrumb))
	for _, c := range m.listing.Breadcrumb {
		labels = append(labels, c.Label)
	}
	b.WriteString(styles.Breadcrumb.Render(strings.Join(labels, " / ")))
	b.WriteString("\n\n")

	if len(m.rows) == 0 {
		b.WriteString(styles.MutedText.Render("(empty)"))
		b.WriteString("\n")
	}

	start, end := m.pager.VisibleRange()
	for i := start; i < end; i++ {
		b.WriteString(m.renderRow(m.rows[i], i == m.pager.Cursor()))
		b.WriteString("\n")
	}
	if end < len(m.rows) {
		b.WriteString(styles.MutedText.Render(fmt.Sprintf("... %d more", len(m.rows)-end)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if msg := m.renderMessage(); msg != "" {
		b.WriteString(msg)
		b.WriteString("\n\n")
	}

	b.WriteString(helpBar(
		"j/k", "move",
		"enter", "open",
		"backspace", "parent",
		"s", "use as vault",
		"/", "search",
		"q", "quit",
	))

	return styles.App.Render(b.String())
}

func (m *PickerModel) renderRow(row pickerRow, selected bool) string {
	text := row.name
	if row.isDir {
		text += "/"
	}

	switch {
	case selected:
		return styles.Selected.Render(text)
	case row.isDir:
		return styles.Dir.Render(text)
	default:
		return styles.File.Render(text)
	}
}
