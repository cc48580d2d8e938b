package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"vaultsearch/internal/adapters/tui/views"
	"vaultsearch/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewPicker ViewState = iota
	ViewSearch
	ViewHelp
)

// App is the main TUI application model
type App struct {
	editor ports.EditorOpener

	state  ViewState
	picker *views.PickerModel
	search *views.SearchModel
	help   *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application. The editor may be nil.
func NewApp(deps views.Deps, ed ports.EditorOpener) *App {
	return &App{
		editor: ed,
		state:  ViewPicker,
		picker: views.NewPickerModel(deps),
		search: views.NewSearchModel(deps),
		help:   views.NewHelpModel(),
	}
}

// State returns the active view
func (a *App) State() ViewState {
	return a.state
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.picker.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.picker.Update(msg)
		a.search.Update(msg)
		a.help.Update(msg)
		return a, nil

	// View switching messages
	case views.SwitchToPickerMsg:
		a.state = ViewPicker
		return a, nil

	case views.SwitchToSearchMsg:
		a.state = ViewSearch
		return a, a.search.Init()

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.VaultSelectedMsg:
		// Let the picker record the result, then move on to searching
		a.picker.Update(msg)
		a.search.Reset()
		a.state = ViewSearch
		return a, a.search.Init()

	case views.OpenEditorMsg:
		return a, a.openEditor(msg.Path)

	case editorFinishedMsg:
		if msg.err != nil {
			a.search.SetMessage("editor: "+msg.err.Error(), true)
		}
		return a, nil
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewPicker:
		_, cmd = a.picker.Update(msg)
	case ViewSearch:
		_, cmd = a.search.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

type editorFinishedMsg struct{ err error }

func (a *App) openEditor(path string) tea.Cmd {
	if a.editor == nil {
		return nil
	}

	cmd, err := a.editor.Command(path)
	if err != nil {
		return func() tea.Msg {
			return editorFinishedMsg{err: err}
		}
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{err: err}
	})
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewSearch:
		return a.search.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.picker.View()
	}
}
