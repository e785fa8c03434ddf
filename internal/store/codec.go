package store

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/tgienger/todo/internal/models"
)

// record is the persisted form of a task
type record struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Completed   bool            `json:"completed"`
	Priority    models.Priority `json:"priority,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// Encode serializes tasks as a JSON array with UTC RFC 3339 timestamps
func Encode(tasks []models.Task) ([]byte, error) {
	records := make([]record, 0, len(tasks))
	for _, t := range tasks {
		records = append(records, record{
			ID:          t.ID,
			Title:       t.Title,
			Description: t.Description,
			Completed:   t.Completed,
			Priority:    t.Priority,
			CreatedAt:   t.CreatedAt.UTC(),
			UpdatedAt:   t.UpdatedAt.UTC(),
		})
	}
	data, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("encode tasks: %w", err)
	}
	return data, nil
}

// Decode parses an encoded task array.
//
// Records that cannot be stored (malformed fields, missing id, blank title,
// repeated id) are skipped and counted; the rest are normalized. Only input
// that is not a JSON array at all is an error.
func Decode(data []byte) ([]models.Task, int, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, 0, fmt.Errorf("decode tasks: %w", err)
	}

	tasks := make([]models.Task, 0, len(raw))
	skipped := 0
	for _, msg := range raw {
		var r record
		if err := json.Unmarshal(msg, &r); err != nil {
			skipped++
			continue
		}
		tasks = append(tasks, models.Task{
			ID:          r.ID,
			Title:       r.Title,
			Description: r.Description,
			Completed:   r.Completed,
			Priority:    r.Priority,
			CreatedAt:   r.CreatedAt,
			UpdatedAt:   r.UpdatedAt,
		})
	}

	tasks, dropped := normalize(tasks)
	return tasks, skipped + dropped, nil
}

// normalize drops tasks without an id, with a blank title or with an id seen
// earlier, and returns how many it dropped. Kept tasks get trimmed text, a
// valid priority (medium when unknown) and an updatedAt no earlier than
// createdAt.
func normalize(in []models.Task) ([]models.Task, int) {
	out := make([]models.Task, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	dropped := 0
	for _, t := range in {
		t.Title = strings.TrimSpace(t.Title)
		if t.ID == "" || t.Title == "" {
			dropped++
			continue
		}
		if _, dup := seen[t.ID]; dup {
			dropped++
			continue
		}
		seen[t.ID] = struct{}{}

		t.Description = strings.TrimSpace(t.Description)
		if !t.Priority.Valid() {
			t.Priority = models.DefaultPriority
		}
		if t.UpdatedAt.Before(t.CreatedAt) {
			t.UpdatedAt = t.CreatedAt
		}
		out = append(out, t)
	}
	return out, dropped
}
