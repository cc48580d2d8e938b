package ports

import "os/exec"

// EditorOpener opens a note file in a text editor when Obsidian is unavailable
type EditorOpener interface {
	// OpenFile opens the note and waits for the editor to exit
	OpenFile(path string) error

	// Command returns an exec.Cmd for the editor, for use with bubbletea's ExecProcess
	Command(path string) (*exec.Cmd, error)
}
