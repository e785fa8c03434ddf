package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tgienger/todo/internal/models"
	"github.com/tgienger/todo/internal/storage"
	"github.com/tgienger/todo/internal/store"
	"github.com/tgienger/todo/internal/ui/views"
)

type mapSettings map[string]string

func (m mapSettings) GetSetting(key string) (string, error) { return m[key], nil }

func (m mapSettings) SetSetting(key, value string) error {
	m[key] = value
	return nil
}

func TestInit_RestoresLastFilter(t *testing.T) {
	st := store.New(storage.NewMemorySlot(nil), nil)
	done, err := st.Add(models.TaskInput{Title: "done"})
	require.NoError(t, err)
	_, err = st.Add(models.TaskInput{Title: "open"})
	require.NoError(t, err)
	st.Toggle(done.ID)

	app := NewApp(st, mapSettings{views.SettingLastFilter: "completed"})
	cmd := app.Init()
	require.NotNil(t, cmd)
	app.Update(cmd())

	assert.Equal(t, models.FilterCompleted, app.TaskList().Filter())
	require.Len(t, app.TaskList().Tasks(), 1)
	assert.Equal(t, "done", app.TaskList().Tasks()[0].Title)
}

func TestInit_IgnoresUnknownFilter(t *testing.T) {
	st := store.New(storage.NewMemorySlot(nil), nil)

	app := NewApp(st, mapSettings{views.SettingLastFilter: "someday"})
	app.Update(app.Init()())

	assert.Equal(t, models.FilterAll, app.TaskList().Filter())
}

func TestUpdate_TracksWindowSize(t *testing.T) {
	app := NewApp(store.New(storage.NewMemorySlot(nil), nil), nil)
	app.Update(app.Init()())

	app.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	assert.Equal(t, 80, app.width)
	assert.Equal(t, 24, app.height)
	assert.Contains(t, app.View(), "No tasks yet")
}
