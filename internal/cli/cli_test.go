package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tgienger/todo/internal/models"
	"github.com/tgienger/todo/internal/storage"
	"github.com/tgienger/todo/internal/store"
)

type harness struct {
	slot  *storage.MemorySlot
	clock time.Time
	ids   int
}

func newHarness() *harness {
	return &harness{
		slot:  storage.NewMemorySlot(nil),
		clock: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

// open loads a fresh store over the shared slot, like a new process would
func (h *harness) open(string) (*Session, error) {
	st := store.Open(h.slot, nil,
		store.WithClock(func() time.Time {
			h.clock = h.clock.Add(time.Minute)
			return h.clock
		}),
		store.WithIDFunc(func() string {
			h.ids++
			return fmt.Sprintf("%08d-task", h.ids)
		}),
	)
	return NewSession(st, nil), nil
}

func (h *harness) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand(Options{Version: "1.2.3", Commit: "abc", Date: "today", Open: h.open})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func (h *harness) mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := h.run(t, args...)
	require.NoError(t, err)
	return out
}

func (h *harness) stored(t *testing.T) []models.Task {
	t.Helper()
	tasks, _, err := store.Decode(h.slot.Data())
	require.NoError(t, err)
	return tasks
}

func TestAdd(t *testing.T) {
	h := newHarness()

	out := h.mustRun(t, "add", "Buy", "milk", "-d", "2 litres", "-p", "high")
	assert.Equal(t, "Added 00000001 Buy milk\n", out)

	tasks := h.stored(t)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Buy milk", tasks[0].Title)
	assert.Equal(t, "2 litres", tasks[0].Description)
	assert.Equal(t, models.PriorityHigh, tasks[0].Priority)
}

func TestAdd_Validation(t *testing.T) {
	h := newHarness()

	_, err := h.run(t, "add", "   ")
	assert.ErrorIs(t, err, store.ErrEmptyTitle)

	_, err = h.run(t, "add", "x", "-p", "urgent")
	assert.ErrorIs(t, err, models.ErrUnknownPriority)

	assert.Nil(t, h.slot.Data())
}

func TestList(t *testing.T) {
	h := newHarness()

	assert.Equal(t, "No tasks yet\nAdd a task to get started\n", h.mustRun(t, "list"))

	h.mustRun(t, "add", "Buy milk")
	h.mustRun(t, "add", "Call mom", "-d", "about sunday")
	h.mustRun(t, "toggle", "00000001")

	out := h.mustRun(t, "list")
	assert.Equal(t, strings.Join([]string{
		"[ ] 00000002  medium  Call mom",
		"    about sunday",
		"[x] 00000001  medium  Buy milk",
		"1 active task remaining",
		"",
	}, "\n"), out)

	out = h.mustRun(t, "ls", "-f", "completed")
	assert.Contains(t, out, "Buy milk")
	assert.NotContains(t, out, "Call mom")

	out = h.mustRun(t, "list", "-s", "SUNDAY")
	assert.Contains(t, out, "Call mom")
	assert.NotContains(t, out, "Buy milk")

	out = h.mustRun(t, "list", "-s", "nothing")
	assert.True(t, strings.HasPrefix(out, "No tasks found\n"))

	_, err := h.run(t, "list", "-f", "done")
	assert.ErrorIs(t, err, models.ErrUnknownFilter)
}

func TestToggle(t *testing.T) {
	h := newHarness()
	h.mustRun(t, "add", "Water plants")

	assert.Equal(t, "00000001 Water plants is now completed\n", h.mustRun(t, "toggle", "00000001-task"))
	assert.Equal(t, "00000001 Water plants is now active\n", h.mustRun(t, "done", "0000000"))

	_, err := h.run(t, "toggle", "ffff")
	assert.ErrorIs(t, err, errTaskNotFound)
}

func TestResolveID_Ambiguous(t *testing.T) {
	h := newHarness()
	h.mustRun(t, "add", "one")
	h.mustRun(t, "add", "two")

	_, err := h.run(t, "rm", "0000")
	assert.ErrorIs(t, err, errAmbiguousID)
	assert.Len(t, h.stored(t), 2)
}

func TestEdit(t *testing.T) {
	h := newHarness()
	h.mustRun(t, "add", "Old title", "-d", "keep me")

	out := h.mustRun(t, "edit", "00000001", "--title", "  New title ", "-p", "low")
	assert.Equal(t, "Updated 00000001 New title\n", out)

	tasks := h.stored(t)
	require.Len(t, tasks, 1)
	assert.Equal(t, "New title", tasks[0].Title)
	assert.Equal(t, "keep me", tasks[0].Description)
	assert.Equal(t, models.PriorityLow, tasks[0].Priority)
	assert.True(t, tasks[0].UpdatedAt.After(tasks[0].CreatedAt))

	_, err := h.run(t, "edit", "00000001")
	assert.ErrorContains(t, err, "nothing to change")

	_, err = h.run(t, "edit", "00000001", "-t", " ")
	assert.ErrorIs(t, err, store.ErrEmptyTitle)
	assert.Equal(t, "New title", h.stored(t)[0].Title)
}

func TestRemove(t *testing.T) {
	h := newHarness()
	h.mustRun(t, "add", "a")
	h.mustRun(t, "add", "b")

	assert.Equal(t, "Deleted 00000001 a\n", h.mustRun(t, "rm", "00000001"))

	tasks := h.stored(t)
	require.Len(t, tasks, 1)
	assert.Equal(t, "b", tasks[0].Title)

	_, err := h.run(t, "delete", "00000001")
	assert.ErrorIs(t, err, errTaskNotFound)
}

func TestClearAndStats(t *testing.T) {
	h := newHarness()
	for i := 1; i <= 5; i++ {
		h.mustRun(t, "add", fmt.Sprintf("task %d", i))
	}
	for i := 1; i <= 3; i++ {
		h.mustRun(t, "toggle", fmt.Sprintf("%08d", i))
	}

	assert.Equal(t, "total: 5  active: 2  completed: 3\n2 active tasks remaining\n", h.mustRun(t, "stats"))
	assert.Equal(t, "Cleared 3 completed tasks\n", h.mustRun(t, "clear"))
	assert.Equal(t, "Cleared 0 completed tasks\n", h.mustRun(t, "clear"))
	assert.Len(t, h.stored(t), 2)
}

func TestExportImport(t *testing.T) {
	h := newHarness()
	h.mustRun(t, "add", "first")
	h.mustRun(t, "add", "second", "-p", "high")

	exported := h.mustRun(t, "export")
	assert.Equal(t, string(h.slot.Data())+"\n", exported)

	other := newHarness()
	path := filepath.Join(t.TempDir(), "todos.json")
	require.NoError(t, os.WriteFile(path, []byte(exported), 0644))

	assert.Equal(t, "Imported 2 tasks (skipped 0)\n", other.mustRun(t, "import", path))
	assert.Equal(t, exported, other.mustRun(t, "export"))
}

func TestImport_Stdin(t *testing.T) {
	h := newHarness()
	cmd := NewRootCommand(Options{Open: h.open})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetIn(strings.NewReader(`[{"id":"x","title":"from stdin","createdAt":"2026-03-01T09:00:00Z","updatedAt":"2026-03-01T09:00:00Z"},{"id":"","title":"bad"}]`))
	cmd.SetArgs([]string{"import", "-"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "Imported 1 tasks (skipped 1)\n", out.String())

	tasks := h.stored(t)
	require.Len(t, tasks, 1)
	assert.Equal(t, models.PriorityMedium, tasks[0].Priority)
}

func TestImport_Corrupt(t *testing.T) {
	h := newHarness()
	h.mustRun(t, "add", "keep")

	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte(`{nope`), 0644))

	_, err := h.run(t, "import", path)
	assert.Error(t, err)
	assert.Len(t, h.stored(t), 1)
}

func TestVersion(t *testing.T) {
	h := newHarness()
	assert.Equal(t, "todo 1.2.3 (commit: abc, built: today)\n", h.mustRun(t, "version"))
}
