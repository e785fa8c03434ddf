package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrUnknownPriority = errors.New("unknown priority")
	ErrUnknownFilter   = errors.New("unknown filter")
)

// Priority is the importance of a task
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// DefaultPriority is used when a task is created without one
const DefaultPriority = PriorityMedium

// Priorities lists every priority from lowest to highest
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// ParsePriority parses a priority name, case-insensitively
func ParsePriority(s string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownPriority, s)
	}
	return p, nil
}

// Valid reports whether p is one of the known priorities
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Label returns the display name of the priority
func (p Priority) Label() string {
	switch p {
	case PriorityLow:
		return "Low"
	case PriorityHigh:
		return "High"
	default:
		return "Medium"
	}
}

// Rank orders priorities: low=0, medium=1, high=2
func (p Priority) Rank() int {
	for i, v := range Priorities {
		if v == p {
			return i
		}
	}
	return 1
}

// Filter selects tasks by completion state
type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

// Filters lists the filters in the order the UI cycles through them
var Filters = []Filter{FilterAll, FilterActive, FilterCompleted}

// ParseFilter parses a filter name; an empty string means all
func ParseFilter(s string) (Filter, error) {
	f := Filter(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case "":
		return FilterAll, nil
	case FilterAll, FilterActive, FilterCompleted:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFilter, s)
}

// Next returns the filter after f
func (f Filter) Next() Filter {
	for i, v := range Filters {
		if v == f {
			return Filters[(i+1)%len(Filters)]
		}
	}
	return FilterAll
}

// Label returns the display name of the filter
func (f Filter) Label() string {
	switch f {
	case FilterActive:
		return "Active"
	case FilterCompleted:
		return "Completed"
	default:
		return "All"
	}
}

// Task represents a single task
type Task struct {
	ID          string
	Title       string
	Description string
	Completed   bool
	Priority    Priority
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Edited reports whether the task changed after it was created
func (t Task) Edited() bool {
	return !t.UpdatedAt.Equal(t.CreatedAt)
}

// TaskInput holds the fields a caller supplies when creating a task
type TaskInput struct {
	Title       string
	Description string
	Priority    Priority // empty means DefaultPriority
}

// TaskPatch is a partial update; nil fields are left unchanged
type TaskPatch struct {
	Title       *string
	Description *string
	Completed   *bool
	Priority    *Priority
}

// Empty reports whether the patch changes nothing
func (p TaskPatch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.Completed == nil && p.Priority == nil
}

// Stats holds task counts
type Stats struct {
	Total     int
	Active    int
	Completed int
}

// Summary returns the status line shown under the filter bar
func (s Stats) Summary() string {
	switch {
	case s.Active == 1:
		return "1 active task remaining"
	case s.Active > 0:
		return fmt.Sprintf("%d active tasks remaining", s.Active)
	case s.Total > 0:
		return "All tasks completed!"
	default:
		return "Add a task to get started"
	}
}

// Count returns the number of tasks the filter selects
func (s Stats) Count(f Filter) int {
	switch f {
	case FilterActive:
		return s.Active
	case FilterCompleted:
		return s.Completed
	default:
		return s.Total
	}
}
