// Package query derives read-only views of the task list for display.
package query

import (
	"sort"
	"strings"

	"github.com/tgienger/todo/internal/models"
)

// Query selects and orders tasks
type Query struct {
	Search string
	Filter models.Filter
}

// Project returns the tasks matching q, newest first. Tasks created at the
// same instant keep their insertion order. The input is not modified.
func Project(tasks []models.Task, q Query) []models.Task {
	term := strings.ToLower(strings.TrimSpace(q.Search))

	out := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if term != "" && !matches(t, term) {
			continue
		}
		if !keep(t, q.Filter) {
			continue
		}
		out = append(out, t)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// Counts returns how many tasks each filter would show for the search term
func Counts(tasks []models.Task, search string) models.Stats {
	term := strings.ToLower(strings.TrimSpace(search))

	var st models.Stats
	for _, t := range tasks {
		if term != "" && !matches(t, term) {
			continue
		}
		st.Total++
		if t.Completed {
			st.Completed++
		}
	}
	st.Active = st.Total - st.Completed
	return st
}

func matches(t models.Task, term string) bool {
	return strings.Contains(strings.ToLower(t.Title), term) ||
		strings.Contains(strings.ToLower(t.Description), term)
}

func keep(t models.Task, f models.Filter) bool {
	switch f {
	case models.FilterActive:
		return !t.Completed
	case models.FilterCompleted:
		return t.Completed
	default:
		return true
	}
}
