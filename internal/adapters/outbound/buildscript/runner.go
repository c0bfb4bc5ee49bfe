// Package buildscript launches the project's own build scripts.
package buildscript

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Runner implements domain.ScriptRunner. The script runs in its own
// directory with the given streams attached; its exit status is not
// inspected.
type Runner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// New creates a Runner attached to the process streams.
func New() *Runner {
	return &Runner{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// Command builds the interpreter invocation for script.
func Command(script string) *exec.Cmd {
	switch strings.ToLower(filepath.Ext(script)) {
	case ".ps1":
		return exec.Command("powershell", "-NoProfile", "-ExecutionPolicy", "Bypass", "-File", script)
	case ".bat", ".cmd":
		return exec.Command("cmd", "/C", script)
	default:
		return exec.Command(script)
	}
}

// Run starts script and waits for it. Only a failure to start is an error.
func (r *Runner) Run(script string) error {
	cmd := Command(script)
	cmd.Dir = filepath.Dir(script)
	cmd.Stdin, cmd.Stdout, cmd.Stderr = r.Stdin, r.Stdout, r.Stderr

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting %s: %w", filepath.Base(script), err)
	}
	var exitErr *exec.ExitError
	if err := cmd.Wait(); err != nil && !errors.As(err, &exitErr) {
		return fmt.Errorf("running %s: %w", filepath.Base(script), err)
	}
	return nil
}
