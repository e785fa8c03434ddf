package storage

import "sync"

// MemorySlot keeps the encoded task list in process memory
type MemorySlot struct {
	mu     sync.Mutex
	data   []byte
	writes int

	// ReadErr and WriteErr, when set, are returned instead of touching data
	ReadErr  error
	WriteErr error
}

// NewMemorySlot returns a slot pre-filled with data (nil means empty)
func NewMemorySlot(data []byte) *MemorySlot {
	return &MemorySlot{data: clone(data)}
}

func (m *MemorySlot) Read() ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ReadErr != nil {
		return nil, m.ReadErr
	}
	return clone(m.data), nil
}

func (m *MemorySlot) Write(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.data = clone(data)
	m.writes++
	return nil
}

func (m *MemorySlot) Name() string {
	return "memory"
}

// Data returns the last successfully written value
func (m *MemorySlot) Data() []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return clone(m.data)
}

// Writes returns the number of successful writes
func (m *MemorySlot) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

func clone(b []byte) []byte {
	if b == nil {
		return nil
	}
	return append([]byte(nil), b...)
}
