package application_test

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/abdidvp/appatch/internal/adapters/outbound/textfile"
	"github.com/abdidvp/appatch/internal/domain"
)

const fixtureDir = "../../testdata/selaco"

// copyFixture copies the pre-patch source tree into a fresh temp dir and
// returns its root.
func copyFixture(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	err := filepath.WalkDir(fixtureDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(fixtureDir, p)
		if err != nil {
			return err
		}
		dst := filepath.Join(root, rel)
		if d.IsDir() {
			return os.MkdirAll(dst, 0o755)
		}
		data, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		return os.WriteFile(dst, data, 0o644)
	})
	require.NoError(t, err)
	return root
}

// snapshot returns every file under root keyed by slash path.
func snapshot(t *testing.T, root string) map[string]string {
	t.Helper()
	files := map[string]string{}
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		rel, _ := filepath.Rel(root, p)
		files[filepath.ToSlash(rel)] = string(data)
		return nil
	})
	require.NoError(t, err)
	return files
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

type logLine struct {
	Level domain.Level
	Msg   string
}

// recordingLogger keeps every line for assertions.
type recordingLogger struct {
	lines []logLine
}

func (l *recordingLogger) Log(level domain.Level, format string, args ...any) {
	l.lines = append(l.lines, logLine{Level: level, Msg: fmt.Sprintf(format, args...)})
}

func (l *recordingLogger) contains(level domain.Level, substr string) bool {
	for _, ln := range l.lines {
		if ln.Level == level && strings.Contains(ln.Msg, substr) {
			return true
		}
	}
	return false
}

type mockPrompter struct {
	mock.Mock
}

func (m *mockPrompter) Confirm(question string) (bool, error) {
	args := m.Called(question)
	return args.Bool(0), args.Error(1)
}

type mockRunner struct {
	mock.Mock
}

func (m *mockRunner) Run(script string) error {
	return m.Called(script).Error(0)
}

// panicStore panics when reading a path ending in target.
type panicStore struct {
	*textfile.Store
	target string
}

func (s panicStore) Read(path string) (string, error) {
	if strings.HasSuffix(filepath.ToSlash(path), s.target) {
		panic("simulated read failure")
	}
	return s.Store.Read(path)
}

// denyStore refuses writes to a path ending in target.
type denyStore struct {
	*textfile.Store
	target string
}

func (s denyStore) Write(path, content string) error {
	if strings.HasSuffix(filepath.ToSlash(path), s.target) {
		return &fs.PathError{Op: "open", Path: path, Err: fs.ErrPermission}
	}
	return s.Store.Write(path, content)
}
