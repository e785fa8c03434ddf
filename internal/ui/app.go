package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tgienger/todo/internal/models"
	"github.com/tgienger/todo/internal/store"
	"github.com/tgienger/todo/internal/ui/views"
)

type App struct {
	store    *store.Store
	settings views.Settings
	taskList *views.TaskListView
	width    int
	height   int
}

// Creates a new application. settings may be nil.
func NewApp(st *store.Store, settings views.Settings) *App {
	return &App{
		store:    st,
		settings: settings,
		taskList: views.NewTaskListView(st, settings),
	}
}

func (a *App) Init() tea.Cmd {
	// Restore the last used filter
	if a.settings != nil {
		last, err := a.settings.GetSetting(views.SettingLastFilter)
		if err == nil && last != "" {
			if f, err := models.ParseFilter(last); err == nil {
				a.taskList.SetFilter(f)
			}
		}
	}

	return a.taskList.Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		a.width = msg.Width
		a.height = msg.Height
	}

	_, cmd := a.taskList.Update(msg)
	return a, cmd
}

func (a *App) View() string {
	return a.taskList.View()
}

// TaskList exposes the task list view
func (a *App) TaskList() *views.TaskListView {
	return a.taskList
}
