package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"vaultsearch/internal/adapters/tui/styles"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/?", "close"),
	),
}

type helpSection struct {
	title    string
	bindings []key.Binding
}

// helpSections is built from the live key maps so the help never drifts from them
func helpSections() []helpSection {
	return []helpSection{
		{"Picker", []key.Binding{
			PickerKeys.Up, PickerKeys.Down, PickerKeys.Enter, PickerKeys.Back,
			PickerKeys.Select, PickerKeys.Search, PickerKeys.Help, PickerKeys.Quit,
		}},
		{"Search", []key.Binding{
			SearchKeys.Up, SearchKeys.Down, SearchKeys.Focus, SearchKeys.Open,
			SearchKeys.Copy, SearchKeys.Edit, SearchKeys.Back, SearchKeys.Quit,
		}},
	}
}

// HelpModel lists the key bindings of every view
type HelpModel struct {
	ViewState
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)

	case tea.KeyMsg:
		if key.Matches(msg, HelpKeys.Close) {
			return m, func() tea.Msg { return SwitchToPickerMsg{} }
		}
	}
	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("vaultsearch"))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render("Typing in the search box always edits the query; tab moves to the results."))
	b.WriteString("\n\n")

	for _, section := range helpSections() {
		b.WriteString(styles.InputLabel.Render(section.title))
		b.WriteString("\n")
		for _, binding := range section.bindings {
			h := binding.Help()
			b.WriteString(helpLine(h.Key, h.Desc))
		}
		b.WriteString("\n")
	}

	h := HelpKeys.Close.Help()
	b.WriteString(helpBar(h.Key, h.Desc))
	return styles.App.Render(b.String())
}
