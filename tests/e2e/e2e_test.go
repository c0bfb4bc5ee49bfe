package e2e_test

import (
	"encoding/json"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/abdidvp/appatch/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var binaryPath string

func TestMain(m *testing.M) {
	// Build binary before running tests
	dir, err := os.MkdirTemp("", "appatch-e2e")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	binaryPath = filepath.Join(dir, "appatch")
	cmd := exec.Command("go", "build", "-o", binaryPath, "../../cmd/appatch")
	if out, err := cmd.CombinedOutput(); err != nil {
		panic("build failed: " + string(out))
	}

	os.Exit(m.Run())
}

// selacoTree copies the pre-patch fixture to a temp dir.
func selacoTree(t *testing.T) string {
	t.Helper()
	src, err := filepath.Abs("../../testdata/selaco")
	require.NoError(t, err)
	root := t.TempDir()
	err = filepath.WalkDir(src, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, _ := filepath.Rel(src, p)
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

func run(t *testing.T, dir, stdin string, args ...string) (string, int) {
	t.Helper()
	cmd := exec.Command(binaryPath, args...)
	cmd.Dir = dir
	cmd.Stdin = strings.NewReader(stdin)
	out, err := cmd.CombinedOutput()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
	}
	return string(out), exitCode
}

func readTree(t *testing.T, root string) map[string]string {
	t.Helper()
	files := map[string]string{}
	require.NoError(t, filepath.WalkDir(filepath.Join(root, "src"), func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		files[p] = string(data)
		return nil
	}))
	return files
}

// --- Patch Tests ---

func TestE2E_Patch(t *testing.T) {
	root := selacoTree(t)
	out, code := run(t, root, "n\n")
	assert.Equal(t, 0, code, out)
	assert.Contains(t, out, "Archipelago Auto-Patcher")
	assert.Contains(t, out, "Fixes applied:")
	assert.Contains(t, out, "Updated CMakeLists.txt")
	assert.FileExists(t, filepath.Join(root, "src", "archipelago", "core", "ap_network_impl.cpp"))
}

func TestE2E_PatchTwiceIsStable(t *testing.T) {
	root := selacoTree(t)
	_, code := run(t, root, "n\n")
	require.Equal(t, 0, code)
	first := readTree(t, root)

	out, code := run(t, root, "n\n")
	assert.Equal(t, 0, code, out)
	assert.Equal(t, first, readTree(t, root))
}

func TestE2E_NotSelacoRoot(t *testing.T) {
	out, code := run(t, t.TempDir(), "")
	assert.Equal(t, 1, code, "should exit 1 outside a Selaco tree")
	assert.Contains(t, out, "Cannot find src/archipelago directory!")
}

func TestE2E_VerificationFailureExits1(t *testing.T) {
	root := selacoTree(t)
	require.NoError(t, os.RemoveAll(filepath.Join(root, "src", "archipelago", "core")))
	_, code := run(t, root, "")
	assert.Equal(t, 1, code)
}

// --- Subcommand Tests ---

func TestE2E_Verify(t *testing.T) {
	root := selacoTree(t)
	_, code := run(t, root, "", "verify")
	assert.Equal(t, 1, code)

	run(t, root, "n\n")
	out, code := run(t, root, "", "verify")
	assert.Equal(t, 0, code, out)
}

func TestE2E_History(t *testing.T) {
	root := selacoTree(t)
	run(t, root, "n\n")
	run(t, root, "n\n")

	out, code := run(t, root, "", "history", "--json")
	require.Equal(t, 0, code, out)

	var entries []domain.RunEntry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, domain.StateDone, entries[1].State)
	assert.Zero(t, entries[1].Fixes)
}

func TestE2E_Rules(t *testing.T) {
	out, code := run(t, t.TempDir(), "", "rules", "--yaml")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "target: core/ap_network.cpp")
}

func TestE2E_Version(t *testing.T) {
	out, code := run(t, t.TempDir(), "", "version")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "appatch")
}
