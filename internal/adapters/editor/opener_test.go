package editor

import (
	"errors"
	"slices"
	"testing"
)

func newTestOpener(editor string, env map[string]string, installed ...string) *Opener {
	o := NewOpener(editor)
	o.getenv = func(key string) string { return env[key] }
	o.lookPath = func(name string) (string, error) {
		if slices.Contains(installed, name) {
			return "/usr/bin/" + name, nil
		}
		return "", errors.New("not found")
	}
	return o
}

func TestCommand(t *testing.T) {
	tests := []struct {
		name      string
		editor    string
		env       map[string]string
		installed []string
		wantArgs  []string
		wantErr   bool
	}{
		{
			name:     "configured editor wins",
			editor:   "hx",
			env:      map[string]string{"EDITOR": "vim"},
			wantArgs: []string{"hx", "/v/a.md"},
		},
		{
			name:     "editor env",
			env:      map[string]string{"EDITOR": "vim", "VISUAL": "code"},
			wantArgs: []string{"vim", "/v/a.md"},
		},
		{
			name:     "visual env",
			env:      map[string]string{"VISUAL": "emacs"},
			wantArgs: []string{"emacs", "/v/a.md"},
		},
		{
			name:     "editor with arguments",
			editor:   "code --wait",
			wantArgs: []string{"code", "--wait", "/v/a.md"},
		},
		{
			name:      "fallback lookup",
			installed: []string{"vi", "nano"},
			wantArgs:  []string{"/usr/bin/vi", "/v/a.md"},
		},
		{
			name:    "nothing available",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := newTestOpener(tt.editor, tt.env, tt.installed...)

			cmd, err := o.Command("/v/a.md")
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !slices.Equal(cmd.Args, tt.wantArgs) {
				t.Errorf("expected args %v, got %v", tt.wantArgs, cmd.Args)
			}
		})
	}
}
