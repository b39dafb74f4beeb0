package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/colonyops/tick/internal/core/config"
	"github.com/colonyops/tick/internal/core/task"
	"github.com/colonyops/tick/internal/core/task/tasktest"
	"github.com/colonyops/tick/internal/tick"
)

type harness struct {
	flags *Flags
	app   *tick.App
}

func newHarness(t *testing.T, backend string) *harness {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.DataDir = t.TempDir()
	cfg.Storage.Backend = backend

	app, err := tick.Open(&cfg, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })
	app.Clock = tasktest.NewClock(time.Date(2026, 1, 2, 9, 30, 0, 0, time.UTC)).Now

	orig := stdinIsTerminal
	stdinIsTerminal = func() bool { return false }
	t.Cleanup(func() { stdinIsTerminal = orig })

	return &harness{
		flags: &Flags{Config: &cfg, ConfigPath: filepath.Join(cfg.DataDir, "config.yaml"), DataDir: cfg.DataDir},
		app:   app,
	}
}

func (h *harness) run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	root := RegisterAll(&cli.Command{Name: "tick", Writer: &buf}, h.flags, h.app)

	err := root.Run(context.Background(), append([]string{"tick"}, args...))
	return buf.String(), err
}

func (h *harness) tasks(t *testing.T) []task.Task {
	t.Helper()
	tasks, _ := h.app.Slot.Load(context.Background())
	return tasks
}

func TestAdd(t *testing.T) {
	h := newHarness(t, config.BackendMemory)

	out, err := h.run(t, "add", "Buy", "milk")
	require.NoError(t, err)

	var got task.Task
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "Buy milk", got.Text)
	assert.False(t, got.Done)
	assert.NotZero(t, got.ID)
	assert.NotEmpty(t, got.Time)

	stored := h.tasks(t)
	require.Len(t, stored, 1)
	assert.Equal(t, got, stored[0])
}

func TestAdd_BlankIsSilent(t *testing.T) {
	h := newHarness(t, config.BackendMemory)

	out, err := h.run(t, "add", "   ")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Empty(t, h.tasks(t))

	out, err = h.run(t, "add")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestLs(t *testing.T) {
	h := newHarness(t, config.BackendSQLite)

	for i := range 7 {
		_, err := h.run(t, "add", fmt.Sprintf("task %d", i+1))
		require.NoError(t, err)
	}

	out, err := h.run(t, "ls")
	require.NoError(t, err)
	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "task 7")
	assert.Contains(t, out, "task 3")
	assert.NotContains(t, out, "task 2")
	assert.Contains(t, out, "Page 1 of 2")

	out, err = h.run(t, "ls", "--page", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "task 2")
	assert.Contains(t, out, "task 1")
	assert.NotContains(t, out, "task 3")
	assert.Contains(t, out, "Page 2 of 2")

	out, err = h.run(t, "ls", "--page", "99")
	require.NoError(t, err)
	assert.Contains(t, out, "Page 2 of 2", "page is clamped")
}

func TestLs_Empty(t *testing.T) {
	h := newHarness(t, config.BackendMemory)

	out, err := h.run(t, "ls")
	require.NoError(t, err)
	assert.Equal(t, "No tasks available.\n", out)

	out, err = h.run(t, "ls", "--json")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestLs_JSON(t *testing.T) {
	h := newHarness(t, config.BackendJSON)

	_, err := h.run(t, "add", "first")
	require.NoError(t, err)
	_, err = h.run(t, "add", "second")
	require.NoError(t, err)

	out, err := h.run(t, "ls", "--json")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)

	var newest task.Task
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &newest))
	assert.Equal(t, "second", newest.Text)
}

func TestToggle(t *testing.T) {
	h := newHarness(t, config.BackendMemory)

	_, err := h.run(t, "add", "Walk dog")
	require.NoError(t, err)
	id := h.tasks(t)[0].ID

	out, err := h.run(t, "toggle", fmt.Sprint(id))
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("%d Done\n", id), out)
	assert.True(t, h.tasks(t)[0].Done)

	out, err = h.run(t, "toggle", fmt.Sprint(id))
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("%d Pending\n", id), out)
}

func TestToggle_UnknownIDIsSilent(t *testing.T) {
	h := newHarness(t, config.BackendMemory)

	_, err := h.run(t, "add", "Walk dog")
	require.NoError(t, err)
	before := h.tasks(t)

	out, err := h.run(t, "toggle", "12345")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Equal(t, before, h.tasks(t))
}

func TestRm(t *testing.T) {
	h := newHarness(t, config.BackendMemory)

	_, err := h.run(t, "add", "one")
	require.NoError(t, err)
	_, err = h.run(t, "add", "two")
	require.NoError(t, err)
	id := h.tasks(t)[0].ID

	out, err := h.run(t, "rm", fmt.Sprint(id))
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("%d deleted\n", id), out)

	remaining := h.tasks(t)
	require.Len(t, remaining, 1)
	assert.Equal(t, "one", remaining[0].Text)

	out, err = h.run(t, "rm", fmt.Sprint(id))
	require.NoError(t, err)
	assert.Empty(t, out, "second delete is a no-op")
}

func TestTaskIDArguments(t *testing.T) {
	h := newHarness(t, config.BackendMemory)

	for _, args := range [][]string{
		{"toggle"},
		{"toggle", "abc"},
		{"rm"},
		{"rm", "1.5"},
	} {
		_, err := h.run(t, args...)
		require.Error(t, err, "args %v", args)
		assert.Contains(t, err.Error(), "usage:")
	}
}

func TestConfigShow(t *testing.T) {
	h := newHarness(t, config.BackendMemory)

	out, err := h.run(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "# data dir: "+h.flags.Config.DataDir)

	var got config.Config
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, config.BackendMemory, got.Storage.Backend)
	assert.Equal(t, task.DefaultSlotKey, got.Storage.Key)
	assert.NotContains(t, out, "# schema:")
}

func TestConfigShow_SchemaVersion(t *testing.T) {
	h := newHarness(t, config.BackendSQLite)

	out, err := h.run(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "# schema: version 2")
}

func TestDefaultPaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	t.Setenv("XDG_DATA_HOME", "/data")

	assert.Equal(t, "/cfg/tick/config.yaml", DefaultConfigPath())
	assert.Equal(t, "/data/tick", DefaultDataDir())
	assert.Equal(t, "/data/tick/tick.log", DefaultLogFile(DefaultDataDir()))
}

func TestMarkdown(t *testing.T) {
	flags := &Flags{}
	root := RegisterAll(&cli.Command{
		Name:        "tick",
		Usage:       RootUsage,
		UsageText:   RootUsageText,
		Description: RootDescription,
		Flags:       flags.CLIFlags(),
	}, flags, &tick.App{})

	md, err := Markdown(root)
	require.NoError(t, err)

	for _, want := range []string{"add", "ls", "toggle", "rm", "config", "--storage", "--data-dir"} {
		assert.Contains(t, md, want)
	}
}
