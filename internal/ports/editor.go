package ports

import "os/exec"

// FileEditor opens files in the user's external editor
type FileEditor interface {
	// OpenFile opens path and blocks until the editor exits
	OpenFile(path string) error

	// Command returns the editor process without starting it
	Command(path string) (*exec.Cmd, error)
}
