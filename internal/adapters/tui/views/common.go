package views

import (
	"strings"

	"vaultsearch/internal/adapters/tui/styles"
	"vaultsearch/internal/application"
	"vaultsearch/internal/ports"
)

// Deps are the collaborators shared by the views
type Deps struct {
	Guard   ports.PathGuard
	Lister  ports.DirectoryLister
	Crawler ports.VaultCrawler
	Store   ports.IndexStore
	Links   ports.LinkBuilder
	Opener  ports.URIOpener
}

// ViewState contains common state shared by all view models.
// Embed this struct in view models to get width/height and message handling.
type ViewState struct {
	Width      int
	Height     int
	Message    string
	MessageErr bool
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetMessage sets a message to display in the view
func (s *ViewState) SetMessage(msg string, isErr bool) {
	s.Message = msg
	s.MessageErr = isErr
}

// ClearMessage clears the current message
func (s *ViewState) ClearMessage() {
	s.Message = ""
	s.MessageErr = false
}

// renderMessage renders the current message, if any
func (s *ViewState) renderMessage() string {
	if s.Message == "" {
		return ""
	}
	if s.MessageErr {
		return styles.ErrorMsg.Render(s.Message)
	}
	return styles.Success.Render(s.Message)
}

// pageSize returns how many list rows fit, keeping room for headers and help
func (s *ViewState) pageSize(reserved int) int {
	if s.Height-reserved < 5 {
		return 5
	}
	return s.Height - reserved
}

// View switching messages

// SwitchToPickerMsg returns to the directory picker
type SwitchToPickerMsg struct{}

// SwitchToSearchMsg opens the search view
type SwitchToSearchMsg struct{}

// SwitchToHelpMsg opens the help view
type SwitchToHelpMsg struct{}

// VaultSelectedMsg reports a finished vault selection
type VaultSelectedMsg struct {
	Vault string
	Count int
}

// OpenEditorMsg asks the app to open a note in $EDITOR
type OpenEditorMsg struct {
	Path string
}

// errMsg carries a failed background command
type errMsg struct {
	err error
}

// listingLoadedMsg carries a directory listing
type listingLoadedMsg struct {
	listing *application.Listing
}

func helpLine(key, desc string) string {
	return "  " + styles.HelpKey.Render(padRight(key, 16)) + styles.HelpDesc.Render(desc) + "\n"
}

func helpBar(pairs ...string) string {
	var parts []string
	for i := 0; i+1 < len(pairs); i += 2 {
		parts = append(parts, styles.HelpKey.Render(pairs[i])+" "+styles.HelpDesc.Render(pairs[i+1]))
	}
	return strings.Join(parts, "  ")
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}
