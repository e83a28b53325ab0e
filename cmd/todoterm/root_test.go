package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandeepkv93/todoterm/internal/config"
	"github.com/sandeepkv93/todoterm/internal/model"
	"github.com/sandeepkv93/todoterm/internal/storage"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return runApp(t, &app{}, args...)
}

func runApp(t *testing.T, a *app, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := a.execute(args, &out, &out)
	return out.String(), err
}

// scriptedApp drives the interactive program from keystrokes instead of a tty.
func scriptedApp(keys string) *app {
	return &app{programOptions: []tea.ProgramOption{
		tea.WithInput(strings.NewReader(keys)),
		tea.WithOutput(io.Discard),
	}}
}

func isolateEnv(t *testing.T) string {
	t.Helper()
	t.Chdir(t.TempDir())
	for _, name := range []string{"TODOTERM_FILE", "TODOTERM_BACKEND", "TODOTERM_DEBUG", "TODOTERM_LOG_FILE"} {
		t.Setenv(name, "")
	}
	return filepath.Join(t.TempDir(), "todo.txt")
}

func TestAddThenListPlain(t *testing.T) {
	path := isolateEnv(t)

	out, err := runCLI(t, "--file", path, "add", "Buy", "milk")
	require.NoError(t, err)
	assert.Equal(t, "added: Buy milk\n", out)

	out, err = runCLI(t, "--file", path, "add", "call at 10:30")
	require.NoError(t, err)
	assert.Contains(t, out, "call at 10:30")

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "TODO:Buy milk\nTODO:call at 10:30\n", string(raw))

	out, err = runCLI(t, "--file", path, "list", "--plain")
	require.NoError(t, err)
	assert.Equal(t, "[ ] Buy milk\n[ ] call at 10:30\n", out)
}

func TestListFiltersByCategory(t *testing.T) {
	path := isolateEnv(t)
	require.NoError(t, os.WriteFile(path, []byte("TODO:a\nDONE:b\nTODO:c\n"), 0o644))

	out, err := runCLI(t, "--file", path, "list", "--plain", "--category", "done")
	require.NoError(t, err)
	assert.Equal(t, "[x] b\n", out)

	out, err = runCLI(t, "--file", path, "list", "--plain", "--category", "todo")
	require.NoError(t, err)
	assert.Equal(t, "[ ] a\n[ ] c\n", out)

	_, err = runCLI(t, "--file", path, "list", "--category", "someday")
	assert.Error(t, err)
}

func TestListMarkdownMentionsItems(t *testing.T) {
	path := isolateEnv(t)
	require.NoError(t, os.WriteFile(path, []byte("TODO:groceries\n"), 0o644))

	out, err := runCLI(t, "--file", path, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "groceries")
}

func TestCorruptFileFailsCommand(t *testing.T) {
	path := isolateEnv(t)
	require.NoError(t, os.WriteFile(path, []byte("todo:bad\n"), 0o644))

	_, err := runCLI(t, "--file", path, "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid item state")
}

func TestAddWithSQLiteBackend(t *testing.T) {
	isolateEnv(t)
	path := filepath.Join(t.TempDir(), "todo.db")

	_, err := runCLI(t, "--backend", "sqlite", "--file", path, "add", "from sqlite")
	require.NoError(t, err)

	out, err := runCLI(t, "--backend", "sqlite", "--file", path, "list", "--plain")
	require.NoError(t, err)
	assert.Equal(t, "[ ] from sqlite\n", out)
}

func TestInteractiveToggleThenQuitSaves(t *testing.T) {
	path := isolateEnv(t)
	require.NoError(t, os.WriteFile(path, []byte("TODO:a\nDONE:b\n"), 0o644))

	_, err := runApp(t, scriptedApp("\rq"), "--file", path)
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "DONE:a\nDONE:b\n", string(raw))
}

func TestInteractiveInsertThenCtrlCSaves(t *testing.T) {
	path := isolateEnv(t)

	// the q after i is swallowed by insert mode
	_, err := runApp(t, scriptedApp("iquick note\r\x03"), "--file", path)
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "TODO:uick note\n", string(raw))
}

func TestAfterRunSkipsSaveOnPanic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todo.txt")
	require.NoError(t, os.WriteFile(path, []byte("TODO:a\n"), 0o644))
	a := &app{cfg: config.RuntimeConfig{File: path}}
	backend := &storage.FileBackend{Path: path}
	list := model.NewList([]model.Item{{Text: "a", Completed: true}})

	panicked := fmt.Errorf("%w: %w", tea.ErrProgramKilled, tea.ErrProgramPanic)
	err := a.afterRun(t.Context(), backend, list, panicked)
	require.ErrorIs(t, err, tea.ErrProgramPanic)
	raw, _ := os.ReadFile(path)
	assert.Equal(t, "TODO:a\n", string(raw))

	err = a.afterRun(t.Context(), backend, list, tea.ErrProgramKilled)
	require.ErrorIs(t, err, tea.ErrProgramKilled)
	raw, _ = os.ReadFile(path)
	assert.Equal(t, "DONE:a\n", string(raw))
}

func TestSQLiteBackendWithoutFileUsesDatabasePath(t *testing.T) {
	isolateEnv(t)
	home := t.TempDir()
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".todoterm")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "todo.txt"), []byte("TODO:text list\n"), 0o644))

	_, err := runCLI(t, "--backend", "sqlite", "add", "in the db")
	require.NoError(t, err)

	out, err := runCLI(t, "--backend", "sqlite", "list", "--plain")
	require.NoError(t, err)
	assert.Equal(t, "[ ] in the db\n", out)
	assert.FileExists(t, filepath.Join(dir, "todo.db"))
}

func TestDebugLogClosedWhenCommandFails(t *testing.T) {
	path := isolateEnv(t)
	require.NoError(t, os.WriteFile(path, []byte("todo:bad\n"), 0o644))
	logPath := filepath.Join(t.TempDir(), "debug.log")

	a := &app{}
	_, err := runApp(t, a, "--file", path, "--debug", "--log-file", logPath, "list")
	require.Error(t, err)
	assert.Nil(t, a.logFile)
	assert.FileExists(t, logPath)
}
