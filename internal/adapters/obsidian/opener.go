package obsidian

import (
	"fmt"
	"os/exec"
	"runtime"

	"vaultsearch/internal/ports"
)

// Opener implements ports.URIOpener using the OS URI handler
type Opener struct {
	command func(name string, args ...string) *exec.Cmd
}

// Ensure Opener implements ports.URIOpener
var _ ports.URIOpener = (*Opener)(nil)

// NewOpener creates a new opener for obsidian:// URIs
func NewOpener() *Opener {
	return &Opener{command: exec.Command}
}

// OpenURI hands uri to the platform opener and waits for it to return
func (o *Opener) OpenURI(uri string) error {
	cmd, err := o.Command(uri)
	if err != nil {
		return err
	}
	return cmd.Run()
}

// Command returns the exec.Cmd that opens uri on this platform
func (o *Opener) Command(uri string) (*exec.Cmd, error) {
	switch runtime.GOOS {
	case "darwin":
		return o.command("open", uri), nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return o.command("xdg-open", uri), nil
	case "windows":
		return o.command("cmd", "/c", "start", "", uri), nil
	default:
		return nil, fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}
