package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"vaultsearch/internal/ports"
)

// fallbackEditors are tried in order when nothing is configured
var fallbackEditors = []string{"nvim", "vim", "vi", "nano"}

// Opener implements ports.EditorOpener
type Opener struct {
	editor   string
	getenv   func(string) string
	lookPath func(string) (string, error)
}

// Ensure Opener implements ports.EditorOpener
var _ ports.EditorOpener = (*Opener)(nil)

// NewOpener creates an editor opener. A non-empty editor overrides $VISUAL and the fallbacks.
func NewOpener(editor string) *Opener {
	return &Opener{
		editor:   strings.TrimSpace(editor),
		getenv:   os.Getenv,
		lookPath: exec.LookPath,
	}
}

// OpenFile opens a file in the user's preferred editor
func (o *Opener) OpenFile(path string) error {
	cmd, err := o.Command(path)
	if err != nil {
		return err
	}
	return cmd.Run()
}

// Command returns an exec.Cmd for opening a file in the editor.
// Used with bubbletea's ExecProcess to suspend the TUI while editing.
func (o *Opener) Command(path string) (*exec.Cmd, error) {
	editor := o.findEditor()
	if editor == "" {
		return nil, fmt.Errorf("no editor found: set $EDITOR environment variable")
	}

	// Editors like "code --wait" carry their own arguments
	fields := strings.Fields(editor)
	args := append(fields[1:], path)

	cmd := exec.Command(fields[0], args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd, nil
}

// findEditor returns the editor to use
func (o *Opener) findEditor() string {
	if o.editor != "" {
		return o.editor
	}
	if editor := strings.TrimSpace(o.getenv("EDITOR")); editor != "" {
		return editor
	}
	if visual := strings.TrimSpace(o.getenv("VISUAL")); visual != "" {
		return visual
	}

	for _, editor := range fallbackEditors {
		if path, err := o.lookPath(editor); err == nil {
			return path
		}
	}

	return ""
}
