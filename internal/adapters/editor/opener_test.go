package editor

import (
	"errors"
	"reflect"
	"testing"
)

func fakeOpener(env map[string]string, onPath ...string) *Opener {
	return &Opener{
		getenv: func(k string) string { return env[k] },
		lookPath: func(name string) (string, error) {
			for _, p := range onPath {
				if p == name {
					return "/usr/bin/" + name, nil
				}
			}
			return "", errors.New("not found")
		},
	}
}

func TestOpener_Command(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		onPath   []string
		wantArgs []string
		wantErr  bool
	}{
		{
			name:     "editor env",
			env:      map[string]string{"EDITOR": "hx", "VISUAL": "code"},
			wantArgs: []string{"hx", "/tmp/config.toml"},
		},
		{
			name:     "editor with flags",
			env:      map[string]string{"EDITOR": "code --wait"},
			wantArgs: []string{"code", "--wait", "/tmp/config.toml"},
		},
		{
			name:     "visual fallback",
			env:      map[string]string{"EDITOR": "  ", "VISUAL": "emacs"},
			wantArgs: []string{"emacs", "/tmp/config.toml"},
		},
		{
			name:     "path fallback",
			env:      map[string]string{},
			onPath:   []string{"nano", "vi"},
			wantArgs: []string{"/usr/bin/vi", "/tmp/config.toml"},
		},
		{
			name:    "nothing found",
			env:     map[string]string{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := fakeOpener(tt.env, tt.onPath...).Command("/tmp/config.toml")
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Command: %v", err)
			}
			if !reflect.DeepEqual(cmd.Args, tt.wantArgs) {
				t.Errorf("args = %v, want %v", cmd.Args, tt.wantArgs)
			}
		})
	}
}
