package db

import (
	"database/sql"
	"fmt"
)

// ReadSlot returns the value stored under key, or nil if there is none
func (db *DB) ReadSlot(key string) ([]byte, error) {
	var value []byte
	err := db.QueryRow("SELECT value FROM slots WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read slot %s: %w", key, err)
	}
	return value, nil
}

// WriteSlot replaces the value stored under key
func (db *DB) WriteSlot(key string, value []byte) error {
	_, err := db.Exec(`
		INSERT INTO slots (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value)
	if err != nil {
		return fmt.Errorf("write slot %s: %w", key, err)
	}
	return nil
}

// Slot is a single key of the slots table, usable as the task store's
// durable slot
type Slot struct {
	db  *DB
	key string
}

// Slot returns the slot stored under key
func (db *DB) Slot(key string) *Slot {
	return &Slot{db: db, key: key}
}

func (s *Slot) Read() ([]byte, error) {
	return s.db.ReadSlot(s.key)
}

func (s *Slot) Write(data []byte) error {
	return s.db.WriteSlot(s.key, data)
}

func (s *Slot) Name() string {
	return "sqlite:" + s.key
}
