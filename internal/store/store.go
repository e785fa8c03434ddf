// Package store owns the canonical task list. Every mutation is written
// through to a durable Slot before it returns.
package store

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tgienger/todo/internal/models"
)

var (
	ErrEmptyTitle      = errors.New("title is required")
	ErrInvalidPriority = errors.New("invalid priority")
)

// Slot is the durable location holding the encoded task list.
// Read returns nil data and a nil error when nothing has been stored yet.
type Slot interface {
	Read() ([]byte, error)
	Write(data []byte) error
	Name() string
}

// Option configures a Store
type Option func(*Store)

// WithClock replaces time.Now
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDFunc replaces the UUID generator
func WithIDFunc(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// Store holds the task list in insertion order
type Store struct {
	mu       sync.Mutex
	slot     Slot
	log      *zap.Logger
	now      func() time.Time
	newID    func() string
	tasks    []models.Task
	degraded bool
}

// New creates an empty store backed by slot
func New(slot Slot, log *zap.Logger, opts ...Option) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Store{
		slot:  slot,
		log:   log,
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open creates a store and loads it from slot
func Open(slot Slot, log *zap.Logger, opts ...Option) *Store {
	s := New(slot, log, opts...)
	s.Load()
	return s
}

// Load replaces the in-memory list with the slot contents and returns the
// number of tasks loaded. A missing or unreadable record yields an empty list.
func (s *Store) Load() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks = nil
	data, err := s.slot.Read()
	if err != nil {
		s.log.Warn("failed to read tasks, starting empty", zap.String("slot", s.slot.Name()), zap.Error(err))
		return 0
	}
	if len(data) == 0 {
		return 0
	}

	tasks, skipped, err := Decode(data)
	if err != nil {
		s.log.Warn("stored tasks are corrupt, starting empty", zap.String("slot", s.slot.Name()), zap.Error(err))
		return 0
	}
	if skipped > 0 {
		s.log.Warn("skipped invalid task records", zap.String("slot", s.slot.Name()), zap.Int("skipped", skipped))
	}
	s.tasks = tasks
	return len(tasks)
}

// Add validates input and appends a new task
func (s *Store) Add(in models.TaskInput) (models.Task, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return models.Task{}, ErrEmptyTitle
	}
	priority := in.Priority
	if priority == "" {
		priority = models.DefaultPriority
	}
	if !priority.Valid() {
		return models.Task{}, fmt.Errorf("%w: %q", ErrInvalidPriority, in.Priority)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().UTC()
	t := models.Task{
		ID:          s.newID(),
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		Priority:    priority,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.tasks = append(s.tasks, t)
	s.persist()
	return t, nil
}

// Update merges patch into the task with the given id. It returns nil and no
// error when the id is unknown.
func (s *Store) Update(id string, patch models.TaskPatch) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, nil
	}
	t, err := applyPatch(s.tasks[i], patch)
	if err != nil {
		return nil, err
	}
	t.UpdatedAt = s.touch(t.UpdatedAt)
	s.tasks[i] = t
	s.persist()
	return &t, nil
}

// Toggle flips the completed flag. It returns nil when the id is unknown.
func (s *Store) Toggle(id string) *models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil
	}
	t := s.tasks[i]
	t.Completed = !t.Completed
	t.UpdatedAt = s.touch(t.UpdatedAt)
	s.tasks[i] = t
	s.persist()
	return &t
}

// Delete removes the task with the given id and reports whether it existed
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.tasks = append(s.tasks[:i:i], s.tasks[i+1:]...)
	s.persist()
	return true
}

// ClearCompleted removes every completed task and returns how many were removed
func (s *Store) ClearCompleted() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make([]models.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if !t.Completed {
			kept = append(kept, t)
		}
	}
	removed := len(s.tasks) - len(kept)
	s.tasks = kept
	s.persist()
	return removed
}

// Replace swaps the whole list, used when importing an exported slot value.
// Tasks that cannot be stored are dropped; it returns how many.
func (s *Store) Replace(tasks []models.Task) int {
	kept, dropped := normalize(tasks)
	if dropped > 0 {
		s.log.Warn("dropped invalid tasks on replace", zap.Int("dropped", dropped))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks = kept
	s.persist()
	return dropped
}

// Stats counts tasks by completion state
func (s *Store) Stats() models.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := models.Stats{Total: len(s.tasks)}
	for _, t := range s.tasks {
		if t.Completed {
			st.Completed++
		}
	}
	st.Active = st.Total - st.Completed
	return st
}

// Tasks returns a copy of the list in insertion order
func (s *Store) Tasks() []models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]models.Task(nil), s.tasks...)
}

// Get returns the task with the given id
func (s *Store) Get(id string) (models.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(id); i >= 0 {
		return s.tasks[i], true
	}
	return models.Task{}, false
}

// Degraded reports whether the most recent write to the slot failed
func (s *Store) Degraded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.degraded
}

func (s *Store) indexOf(id string) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// touch returns the new updatedAt, always after prev
func (s *Store) touch(prev time.Time) time.Time {
	now := s.now().UTC()
	if !now.After(prev) {
		now = prev.Add(time.Nanosecond)
	}
	return now
}

// persist writes the full list to the slot. Failures are logged and the
// in-memory list stays authoritative.
func (s *Store) persist() {
	data, err := Encode(s.tasks)
	if err == nil {
		err = s.slot.Write(data)
	}
	if err != nil {
		s.degraded = true
		s.log.Warn("failed to save tasks", zap.String("slot", s.slot.Name()), zap.Int("tasks", len(s.tasks)), zap.Error(err))
		return
	}
	s.degraded = false
}

func applyPatch(t models.Task, p models.TaskPatch) (models.Task, error) {
	if p.Title != nil {
		title := strings.TrimSpace(*p.Title)
		if title == "" {
			return t, ErrEmptyTitle
		}
		t.Title = title
	}
	if p.Description != nil {
		t.Description = strings.TrimSpace(*p.Description)
	}
	if p.Priority != nil {
		if !p.Priority.Valid() {
			return t, fmt.Errorf("%w: %q", ErrInvalidPriority, *p.Priority)
		}
		t.Priority = *p.Priority
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
	return t, nil
}
