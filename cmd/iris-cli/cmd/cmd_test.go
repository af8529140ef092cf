package cmd

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"iris/internal/config"
)

func TestSplitComputeArgs(t *testing.T) {
	tests := []struct {
		name                   string
		args                   []string
		wantBody, wantS, wantE string
	}{
		{
			name:     "quoted times",
			args:     []string{"mars", "2024-01-01 00:00:00", "2024-01-02 00:00:00"},
			wantBody: "mars", wantS: "2024-01-01 00:00:00", wantE: "2024-01-02 00:00:00",
		},
		{
			name:     "unquoted times",
			args:     []string{"Venus", "2024-03-01", "12:00:00", "2024-03-01", "18:00:00"},
			wantBody: "Venus", wantS: "2024-03-01 12:00:00", wantE: "2024-03-01 18:00:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := computeArgs(computeCmd, tt.args); err != nil {
				t.Fatalf("computeArgs: %v", err)
			}
			body, start, end := splitComputeArgs(tt.args)
			if body != tt.wantBody || start != tt.wantS || end != tt.wantE {
				t.Errorf("got (%q, %q, %q)", body, start, end)
			}
		})
	}
}

func TestComputeArgs_WrongCount(t *testing.T) {
	for _, n := range []int{0, 1, 2, 4, 6} {
		if err := computeArgs(computeCmd, make([]string, n)); err == nil {
			t.Errorf("expected error for %d args", n)
		}
	}
}

func TestChangedFlags(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String(config.FlagLogLevel, "info", "")
	fs.Int(config.FlagCacheSize, 10, "")
	fs.Bool(config.FlagHistory, true, "")

	if err := fs.Parse([]string{"--log-level=debug", "--history=false"}); err != nil {
		t.Fatalf("parse: %v", err)
	}

	changed := changedFlags(fs)
	if !changed[config.FlagLogLevel] || !changed[config.FlagHistory] {
		t.Errorf("missing changed flags: %v", changed)
	}
	if changed[config.FlagCacheSize] {
		t.Error("cache-size was not set")
	}
}

func TestReloadLogLevel(t *testing.T) {
	prev := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(prev) })
	t.Setenv("IRIS_LOG_LEVEL", "")
	logger = zerolog.Nop()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	reloadLogLevel(config.FileConfig{LogLevel: "debug"}, map[string]bool{})
	if zerolog.GlobalLevel() != zerolog.DebugLevel {
		t.Errorf("level = %v, want debug", zerolog.GlobalLevel())
	}

	// pinned by a flag
	reloadLogLevel(config.FileConfig{LogLevel: "error"}, map[string]bool{config.FlagLogLevel: true})
	if zerolog.GlobalLevel() != zerolog.DebugLevel {
		t.Errorf("flag should pin the level, got %v", zerolog.GlobalLevel())
	}

	// invalid values are ignored
	reloadLogLevel(config.FileConfig{LogLevel: "loud"}, map[string]bool{})
	if zerolog.GlobalLevel() != zerolog.DebugLevel {
		t.Errorf("invalid level applied: %v", zerolog.GlobalLevel())
	}
}

func TestRootCommand_Bodies(t *testing.T) {
	dir := t.TempDir()
	rootCmd.SetArgs([]string{
		"bodies",
		"--config", filepath.Join(dir, "absent.toml"),
		"--history-path", filepath.Join(dir, "history.db"),
	})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if components == nil || components.History == nil {
		t.Error("expected components to be built")
	}
}

type recordingEditor struct {
	opened []string
}

func (e *recordingEditor) OpenFile(path string) error {
	e.opened = append(e.opened, path)
	return nil
}

func (e *recordingEditor) Command(path string) (*exec.Cmd, error) {
	return nil, errors.New("not supported")
}

func TestConfigEdit_CreatesFileWithoutOpeningHistory(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "iris", "config.toml")
	historyFile := filepath.Join(dir, "data", "history.db")

	ed := &recordingEditor{}
	prev := fileEditor
	fileEditor = ed
	t.Cleanup(func() { fileEditor = prev })

	rootCmd.SetArgs([]string{"config", "edit", "--config", cfgFile, "--history-path", historyFile})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}

	if len(ed.opened) != 1 || ed.opened[0] != cfgFile {
		t.Errorf("expected editor to open %s, got %v", cfgFile, ed.opened)
	}
	fc, err := config.LoadFileConfig(cfgFile)
	if err != nil {
		t.Fatalf("created config unreadable: %v", err)
	}
	if fc.HistoryPath != historyFile {
		t.Errorf("expected history_path %s in new file, got %q", historyFile, fc.HistoryPath)
	}
	if components != nil {
		t.Error("config commands must not build components")
	}
	if _, err := os.Stat(historyFile); !os.IsNotExist(err) {
		t.Errorf("history database was created: %v", err)
	}
}

func TestNeedsComponents(t *testing.T) {
	tests := []struct {
		cmd  *cobra.Command
		want bool
	}{
		{computeCmd, true},
		{configCmd, false},
		{configShowCmd, false},
		{configEditCmd, false},
		{configPathCmd, false},
	}
	for _, tt := range tests {
		if got := needsComponents(tt.cmd); got != tt.want {
			t.Errorf("needsComponents(%s) = %v, want %v", tt.cmd.Name(), got, tt.want)
		}
	}
}
