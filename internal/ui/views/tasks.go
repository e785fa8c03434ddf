package views

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tgienger/todo/internal/models"
	"github.com/tgienger/todo/internal/query"
	"github.com/tgienger/todo/internal/store"
	"github.com/tgienger/todo/internal/ui/keys"
	"github.com/tgienger/todo/internal/ui/styles"
)

// clamp returns val clamped between minVal and maxVal
func clamp(val, minVal, maxVal int) int {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

// FocusArea represents which part of the UI has focus
type FocusArea int

const (
	FocusSearchInput FocusArea = iota
	FocusFilterButton
	FocusTaskList
)

const focusAreas = 3

// Edit form fields, in tab order
const (
	fieldTitle = iota
	fieldDesc
	fieldPriority
	fieldSave
	formFields
)

// Settings stores UI preferences between runs
type Settings interface {
	GetSetting(key string) (string, error)
	SetSetting(key, value string) error
}

// SettingLastFilter remembers the filter the user last picked
const SettingLastFilter = "last_filter"

// TaskListView shows the task list with its search and filter bar
type TaskListView struct {
	store    *store.Store
	settings Settings
	tasks    []models.Task // current projection
	counts   models.Stats  // per-filter counts for the current search
	stats    models.Stats
	styles   *styles.Styles
	keys     keys.KeyMap

	width  int
	height int

	// UI state
	focus       FocusArea
	cursor      int
	scrollY     int
	searchInput textinput.Model
	filter      models.Filter
	status      string // one-shot message shown in the footer

	// Task creation/editing
	editing      bool
	editingNew   bool
	editID       string
	editTitle    textinput.Model
	editDesc     textarea.Model
	editPriority models.Priority
	editFocusIdx int
	editErr      string // field-level validation message for the title

	// Delete confirmation
	confirmingDelete bool
	deleteTargetID   string
	deleteTargetName string

	// Clear completed confirmation
	confirmingClear bool

	// Help popup (shown with ?)
	showHelpPopup bool
}

// NewTaskListView creates a new task list view. settings may be nil.
func NewTaskListView(st *store.Store, settings Settings) *TaskListView {
	s := styles.NewStyles()

	search := textinput.New()
	search.Placeholder = "Search tasks..."
	search.CharLimit = 100

	editTitle := textinput.New()
	editTitle.Placeholder = "Task title"
	editTitle.CharLimit = 200

	editDesc := textarea.New()
	editDesc.Placeholder = "Description (optional)"
	editDesc.CharLimit = 1000
	editDesc.SetWidth(50)
	editDesc.SetHeight(3)
	editDesc.ShowLineNumbers = false

	return &TaskListView{
		store:        st,
		settings:     settings,
		styles:       s,
		keys:         keys.DefaultKeyMap(),
		focus:        FocusTaskList,
		filter:       models.FilterAll,
		searchInput:  search,
		editTitle:    editTitle,
		editDesc:     editDesc,
		editPriority: models.DefaultPriority,
	}
}

// Init initializes the view
func (v *TaskListView) Init() tea.Cmd {
	return loadTasks(v.store, v.currentQuery())
}

type tasksLoadedMsg struct {
	tasks  []models.Task
	counts models.Stats
	stats  models.Stats
}

func (v *TaskListView) currentQuery() query.Query {
	return query.Query{Search: v.searchInput.Value(), Filter: v.filter}
}

// loadTasks reads the store with a query captured when the command is built
func loadTasks(st *store.Store, q query.Query) tea.Cmd {
	return func() tea.Msg {
		all := st.Tasks()
		return tasksLoadedMsg{
			tasks:  query.Project(all, q),
			counts: query.Counts(all, q.Search),
			stats:  st.Stats(),
		}
	}
}

// refresh recomputes the projection right after a store mutation
func (v *TaskListView) refresh() {
	all := v.store.Tasks()
	v.applyLoaded(tasksLoadedMsg{
		tasks:  query.Project(all, v.currentQuery()),
		counts: query.Counts(all, v.searchInput.Value()),
		stats:  v.store.Stats(),
	})
}

func (v *TaskListView) applyLoaded(msg tasksLoadedMsg) {
	v.tasks = msg.tasks
	v.counts = msg.counts
	v.stats = msg.stats
	if v.cursor >= len(v.tasks) {
		v.cursor = max(0, len(v.tasks)-1)
	}
	v.ensureVisible()
}

// SetFilter changes the filter without persisting it
func (v *TaskListView) SetFilter(f models.Filter) {
	v.filter = f
	v.cursor = 0
	v.scrollY = 0
}

// Filter returns the active filter
func (v *TaskListView) Filter() models.Filter {
	return v.filter
}

// Tasks returns the tasks currently displayed
func (v *TaskListView) Tasks() []models.Task {
	return v.tasks
}

func (v *TaskListView) selected() (models.Task, bool) {
	if v.cursor < 0 || v.cursor >= len(v.tasks) {
		return models.Task{}, false
	}
	return v.tasks[v.cursor], true
}

// Update handles messages
func (v *TaskListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		// Update textarea width dynamically based on content width
		contentWidth := styles.ContentWidth(v.width)
		v.editDesc.SetWidth(clamp(contentWidth-10, 20, 50))
		v.ensureVisible()
		return v, nil

	case tasksLoadedMsg:
		v.applyLoaded(msg)
		return v, nil

	case tea.KeyMsg:
		// Handle help popup first - any key closes it
		if v.showHelpPopup {
			v.showHelpPopup = false
			return v, nil
		}

		if v.confirmingDelete {
			return v.updateConfirmDelete(msg)
		}

		if v.confirmingClear {
			return v.updateConfirmClear(msg)
		}

		if v.editing {
			return v.updateEditing(msg)
		}

		return v.updateNormal(msg)
	}

	return v, nil
}

func (v *TaskListView) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Handle search input typing first - don't process hotkeys while typing
	if v.focus == FocusSearchInput {
		switch {
		case key.Matches(msg, v.keys.Back), key.Matches(msg, v.keys.Enter), key.Matches(msg, v.keys.Tab):
			v.searchInput.Blur()
			v.focus = FocusTaskList
			return v, nil
		default:
			var cmd tea.Cmd
			v.searchInput, cmd = v.searchInput.Update(msg)
			v.cursor = 0
			v.scrollY = 0
			v.refresh()
			return v, cmd
		}
	}

	v.status = ""

	switch {
	case key.Matches(msg, v.keys.Quit):
		return v, tea.Quit

	case key.Matches(msg, v.keys.Back):
		// Esc clears an active search before anything else
		if v.searchInput.Value() != "" {
			v.searchInput.Reset()
			v.refresh()
		}
		v.focus = FocusTaskList
		return v, nil

	case key.Matches(msg, v.keys.Tab):
		v.cycleFocus(1)
		return v, nil

	case key.Matches(msg, v.keys.ShiftTab):
		v.cycleFocus(-1)
		return v, nil

	case key.Matches(msg, v.keys.Up):
		if v.focus == FocusTaskList && v.cursor > 0 {
			v.cursor--
			v.ensureVisible()
		}
		return v, nil

	case key.Matches(msg, v.keys.Down):
		if v.focus == FocusTaskList && v.cursor < len(v.tasks)-1 {
			v.cursor++
			v.ensureVisible()
		}
		return v, nil

	case key.Matches(msg, v.keys.Enter):
		switch v.focus {
		case FocusFilterButton:
			v.cycleFilter()
		case FocusTaskList:
			if t, ok := v.selected(); ok {
				v.startEditTask(t)
				return v, textinput.Blink
			}
		}
		return v, nil

	case key.Matches(msg, v.keys.Toggle):
		if t, ok := v.selected(); ok && v.focus == FocusTaskList {
			v.store.Toggle(t.ID)
			v.refresh()
		}
		return v, nil

	case key.Matches(msg, v.keys.Edit):
		if t, ok := v.selected(); ok && v.focus == FocusTaskList {
			v.startEditTask(t)
			return v, textinput.Blink
		}
		return v, nil

	case key.Matches(msg, v.keys.New):
		v.startNewTask()
		return v, textinput.Blink

	case key.Matches(msg, v.keys.Delete):
		if t, ok := v.selected(); ok && v.focus == FocusTaskList {
			v.confirmingDelete = true
			v.deleteTargetID = t.ID
			v.deleteTargetName = t.Title
		}
		return v, nil

	case key.Matches(msg, v.keys.Search):
		v.focus = FocusSearchInput
		v.searchInput.Focus()
		return v, textinput.Blink

	case key.Matches(msg, v.keys.Filter):
		v.cycleFilter()
		return v, nil

	case key.Matches(msg, v.keys.ClearCompleted):
		if v.stats.Completed == 0 {
			v.status = "No completed tasks to clear"
			return v, nil
		}
		v.confirmingClear = true
		return v, nil

	case key.Matches(msg, v.keys.Help):
		v.showHelpPopup = true
		return v, nil
	}

	return v, nil
}

func (v *TaskListView) cycleFilter() {
	v.SetFilter(v.filter.Next())
	if v.settings != nil {
		v.settings.SetSetting(SettingLastFilter, string(v.filter))
	}
	v.refresh()
}

func (v *TaskListView) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		v.store.Delete(v.deleteTargetID)
		v.confirmingDelete = false
		v.refresh()
		return v, nil
	case "n", "N", "esc":
		v.confirmingDelete = false
		return v, nil
	}
	return v, nil
}

func (v *TaskListView) updateConfirmClear(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		n := v.store.ClearCompleted()
		v.confirmingClear = false
		v.status = fmt.Sprintf("Cleared %d completed %s", n, plural(n, "task", "tasks"))
		v.refresh()
		return v, nil
	case "n", "N", "esc":
		v.confirmingClear = false
		return v, nil
	}
	return v, nil
}

func (v *TaskListView) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Back):
		v.editing = false
		v.editErr = ""
		return v, nil

	case key.Matches(msg, v.keys.Save):
		return v, v.saveTask()

	case key.Matches(msg, v.keys.Tab):
		v.editFocusIdx = (v.editFocusIdx + 1) % formFields
		v.updateEditFocus()
		return v, nil

	case key.Matches(msg, v.keys.ShiftTab):
		v.editFocusIdx = (v.editFocusIdx + formFields - 1) % formFields
		v.updateEditFocus()
		return v, nil

	case key.Matches(msg, v.keys.Enter):
		// Enter on title or priority moves to next field
		if v.editFocusIdx == fieldTitle || v.editFocusIdx == fieldPriority {
			v.editFocusIdx++
			v.updateEditFocus()
			return v, nil
		}
		if v.editFocusIdx == fieldSave {
			return v, v.saveTask()
		}
		// The description textarea takes enter as a newline

	case v.editFocusIdx == fieldPriority && key.Matches(msg, v.keys.Left):
		v.editPriority = shiftPriority(v.editPriority, -1)
		return v, nil

	case v.editFocusIdx == fieldPriority && key.Matches(msg, v.keys.Right):
		v.editPriority = shiftPriority(v.editPriority, 1)
		return v, nil
	}

	var cmd tea.Cmd
	switch v.editFocusIdx {
	case fieldTitle:
		v.editTitle, cmd = v.editTitle.Update(msg)
		if strings.TrimSpace(v.editTitle.Value()) != "" {
			v.editErr = ""
		}
	case fieldDesc:
		v.editDesc, cmd = v.editDesc.Update(msg)
	}
	return v, cmd
}

func shiftPriority(p models.Priority, dir int) models.Priority {
	i := clamp(p.Rank()+dir, 0, len(models.Priorities)-1)
	return models.Priorities[i]
}

func (v *TaskListView) cycleFocus(dir int) {
	v.searchInput.Blur()

	v.focus = FocusArea((int(v.focus) + dir + focusAreas) % focusAreas)

	if v.focus == FocusSearchInput {
		v.searchInput.Focus()
	}
}

// visibleItems is how many tasks fit; each item is 2 lines + 1 margin
func (v *TaskListView) visibleItems() int {
	availableHeight := max(v.height-12, 3)
	return max(availableHeight/3, 1)
}

func (v *TaskListView) ensureVisible() {
	visible := v.visibleItems()
	if v.cursor < v.scrollY {
		v.scrollY = v.cursor
	} else if v.cursor >= v.scrollY+visible {
		v.scrollY = v.cursor - visible + 1
	}
}

func (v *TaskListView) startNewTask() {
	v.editing = true
	v.editingNew = true
	v.editID = ""
	v.editErr = ""
	v.editFocusIdx = fieldTitle
	v.editTitle.Reset()
	v.editDesc.Reset()
	v.editPriority = models.DefaultPriority
	v.updateEditFocus()
}

func (v *TaskListView) startEditTask(task models.Task) {
	v.editing = true
	v.editingNew = false
	v.editID = task.ID
	v.editErr = ""
	v.editFocusIdx = fieldTitle
	v.editTitle.SetValue(task.Title)
	v.editDesc.SetValue(task.Description)
	v.editPriority = task.Priority
	v.updateEditFocus()
}

func (v *TaskListView) updateEditFocus() {
	v.editTitle.Blur()
	v.editDesc.Blur()

	switch v.editFocusIdx {
	case fieldTitle:
		v.editTitle.Focus()
	case fieldDesc:
		v.editDesc.Focus()
	}
}

func (v *TaskListView) saveTask() tea.Cmd {
	title := v.editTitle.Value()
	desc := v.editDesc.Value()
	priority := v.editPriority

	var (
		savedID string
		err     error
	)
	if v.editingNew {
		var task models.Task
		task, err = v.store.Add(models.TaskInput{Title: title, Description: desc, Priority: priority})
		savedID = task.ID
	} else {
		_, err = v.store.Update(v.editID, models.TaskPatch{
			Title:       &title,
			Description: &desc,
			Priority:    &priority,
		})
		savedID = v.editID
	}
	if err != nil {
		v.editErr = formError(err)
		v.editFocusIdx = fieldTitle
		v.updateEditFocus()
		return textinput.Blink
	}

	v.editing = false
	v.editErr = ""
	v.refresh()
	// Keep the saved task under the cursor when the filter still shows it
	for i, t := range v.tasks {
		if t.ID == savedID {
			v.cursor = i
			v.ensureVisible()
			break
		}
	}
	return nil
}

func formError(err error) string {
	switch {
	case errors.Is(err, store.ErrEmptyTitle):
		return "Title is required"
	case errors.Is(err, store.ErrInvalidPriority):
		return "Pick a priority"
	default:
		return err.Error()
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// View renders the view
func (v *TaskListView) View() string {
	if v.showHelpPopup {
		return v.renderHelpPopup()
	}

	if v.confirmingDelete {
		return v.renderDeleteConfirm()
	}

	if v.confirmingClear {
		return v.renderClearConfirm()
	}

	if v.editing {
		return v.renderEditForm()
	}

	var b strings.Builder

	// Header with search and filter
	b.WriteString(v.renderHeader())
	b.WriteString("\n\n")

	// Task list
	b.WriteString(v.renderTaskList())

	// Stats and help
	b.WriteString("\n")
	b.WriteString(v.renderFooter())
	b.WriteString("\n")
	b.WriteString(v.renderHelp())

	return styles.CenterView(b.String(), v.width, v.height)
}

func (v *TaskListView) renderHeader() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)
	isNarrow := contentWidth < 60

	// Search input - dynamic width
	searchStyle := s.Input
	if v.focus == FocusSearchInput {
		searchStyle = s.InputFocused
	}
	searchWidth := clamp(contentWidth-8, 10, 30)
	searchBox := searchStyle.Width(searchWidth).Render(v.searchInput.View())

	// Filter button with the count for the active filter
	filterStyle := s.Button
	if v.focus == FocusFilterButton {
		filterStyle = s.ButtonFocused
	}
	filterLabel := fmt.Sprintf("%s (%d)", v.filter.Label(), v.counts.Count(v.filter))
	if !isNarrow {
		filterLabel = "Show: " + filterLabel
	}
	filterBtn := filterStyle.Render(filterLabel + " ▸")

	title := s.Title.Render("Todo")
	if v.store.Degraded() {
		title = lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", s.Warning.Render("not saved"))
	}

	var header string
	if isNarrow {
		header = lipgloss.JoinVertical(lipgloss.Left, searchBox, filterBtn)
	} else {
		header = lipgloss.JoinHorizontal(lipgloss.Center, searchBox, "  ", filterBtn)
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, header)
}

func (v *TaskListView) renderTaskList() string {
	s := v.styles

	if len(v.tasks) == 0 {
		if strings.TrimSpace(v.searchInput.Value()) != "" {
			return lipgloss.JoinVertical(lipgloss.Left,
				s.Title.Render("No tasks found"),
				s.TitleMuted.Render("Try a different search term."),
			)
		}
		return lipgloss.JoinVertical(lipgloss.Left,
			s.Title.Render("No tasks yet"),
			s.TitleMuted.Render("Press 'n' to add your first task."),
		)
	}

	var items []string
	endIdx := min(v.scrollY+v.visibleItems(), len(v.tasks))

	for i := v.scrollY; i < endIdx; i++ {
		task := v.tasks[i]
		items = append(items, v.renderTaskItem(task, i == v.cursor && v.focus == FocusTaskList))
	}

	return lipgloss.JoinVertical(lipgloss.Left, items...)
}

func (v *TaskListView) renderTaskItem(task models.Task, selected bool) string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)
	width := max(contentWidth-4, 20)

	checkbox := "[ ]"
	titleText := s.TaskTitle.Render(task.Title)
	if task.Completed {
		checkbox = "[x]"
		titleText = s.TaskDone.Render(task.Title)
	}
	titleLine := checkbox + " " + titleText + "  " + s.Badge(task.Priority)

	// Detail line: description, then timestamps
	meta := "created " + task.CreatedAt.Local().Format("Jan 2 15:04")
	if task.Edited() {
		meta += " · edited " + task.UpdatedAt.Local().Format("Jan 2 15:04")
	}
	detail := s.TaskMeta.Render(meta)
	if task.Description != "" {
		desc := firstLine(task.Description)
		detail = s.TaskDesc.Render(desc) + "  " + detail
	}

	var itemStyle lipgloss.Style
	if selected {
		itemStyle = s.ListSelected.Width(width)
	} else {
		itemStyle = s.ListItem.Width(width)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		itemStyle.Render(titleLine),
		itemStyle.Render("    "+detail),
	) + "\n"
}

func firstLine(text string) string {
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		return text[:i] + " …"
	}
	return text
}

func (v *TaskListView) renderFooter() string {
	s := v.styles
	line := s.StatusBar.Render(v.stats.Summary())
	if v.status != "" {
		line += s.HelpKey.Render(" · " + v.status)
	}
	return line
}

func (v *TaskListView) renderEditForm() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	formTitle := "New Task"
	if !v.editingNew {
		formTitle = "Edit Task"
	}

	titleStyle := s.Input
	descStyle := s.Input
	priorityStyle := s.Input
	btnStyle := s.Button

	switch v.editFocusIdx {
	case fieldTitle:
		titleStyle = s.InputFocused
	case fieldDesc:
		descStyle = s.InputFocused
	case fieldPriority:
		priorityStyle = s.InputFocused
	case fieldSave:
		btnStyle = s.ButtonFocused
	}

	// Dynamic input width based on content width
	inputWidth := clamp(contentWidth-6, 20, 50)

	titleErr := ""
	if v.editErr != "" {
		titleErr = s.FieldError.Render(v.editErr)
	}

	btnLabel := " Add "
	if !v.editingNew {
		btnLabel = " Update "
	}

	form := lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render(formTitle),
		"",
		"Title:",
		titleStyle.Width(inputWidth).Render(v.editTitle.View()),
		titleErr,
		"Description:",
		descStyle.Render(v.editDesc.View()),
		"",
		"Priority:",
		priorityStyle.Width(inputWidth).Render(v.renderPrioritySelector()),
		"",
		btnStyle.Render(btnLabel),
		"",
		s.TitleMuted.Render("Tab: next • ←→: priority • Ctrl+S: save • Esc: cancel"),
	)

	// Center within content width, then center that in terminal
	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		form,
	)
	return styles.CenterView(centered, v.width, v.height)
}

func (v *TaskListView) renderPrioritySelector() string {
	s := v.styles
	var opts []string
	for _, p := range models.Priorities {
		if p == v.editPriority {
			opts = append(opts, s.Badge(p))
		} else {
			opts = append(opts, s.TitleMuted.Render(" "+p.Label()+" "))
		}
	}
	return strings.Join(opts, " ")
}

func (v *TaskListView) renderHelp() string {
	contentWidth := styles.ContentWidth(v.width)
	// At narrow widths, show hint to press ? for help
	if contentWidth > 0 && contentWidth < 50 {
		return v.styles.Help.Render(v.styles.HelpKey.Render("?") + " help")
	}

	return v.styles.Help.Render(
		fmt.Sprintf("%s toggle • %s edit • %s new • %s del • %s search • %s filter • %s clear done • %s quit",
			v.styles.HelpKey.Render("space"),
			v.styles.HelpKey.Render("e"),
			v.styles.HelpKey.Render("n"),
			v.styles.HelpKey.Render("d"),
			v.styles.HelpKey.Render("/"),
			v.styles.HelpKey.Render("f"),
			v.styles.HelpKey.Render("C"),
			v.styles.HelpKey.Render("q"),
		),
	)
}

func (v *TaskListView) renderHelpPopup() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	helpItems := []string{
		s.HelpKey.Render("space") + "  toggle complete",
		s.HelpKey.Render("↵/e") + "    edit task",
		s.HelpKey.Render("n") + "      new task",
		s.HelpKey.Render("d") + "      delete task",
		s.HelpKey.Render("/") + "      search",
		s.HelpKey.Render("f") + "      cycle filter (all/active/completed)",
		s.HelpKey.Render("C") + "      clear completed",
		s.HelpKey.Render("esc") + "    clear search",
		s.HelpKey.Render("q") + "      quit",
		"",
		s.TitleMuted.Render("Press any key to close"),
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		append([]string{s.Title.Render("Keyboard Shortcuts"), ""}, helpItems...)...,
	)

	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		s.FilterBar.Render(content),
	)
	return styles.CenterView(centered, v.width, v.height)
}

func (v *TaskListView) renderDeleteConfirm() string {
	return v.renderConfirm("Delete Task?",
		fmt.Sprintf("Are you sure you want to delete %q?", v.deleteTargetName))
}

func (v *TaskListView) renderClearConfirm() string {
	n := v.stats.Completed
	return v.renderConfirm("Clear Completed?",
		fmt.Sprintf("This deletes %d completed %s.", n, plural(n, "task", "tasks")))
}

func (v *TaskListView) renderConfirm(title, question string) string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	content := lipgloss.JoinVertical(lipgloss.Center,
		s.Title.Foreground(styles.Current.Error).Render(title),
		"",
		s.TitleMuted.Render(question),
		"",
		lipgloss.JoinHorizontal(lipgloss.Center,
			s.ButtonPrimary.Render(" Y - Yes "),
			"  ",
			s.Button.Render(" N - No "),
		),
	)

	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		content,
	)
	return styles.CenterView(centered, v.width, v.height)
}
