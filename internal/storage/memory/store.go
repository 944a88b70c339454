package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/tiwariParth/todo/internal/models"
	"github.com/tiwariParth/todo/internal/storage"
)

// MemoryStore implements storage.Storage in memory. It keeps the encoded
// document rather than the decoded slice so callers observe the same
// empty/non-empty distinction as with a real file.
type MemoryStore struct {
	mu     sync.RWMutex
	exists bool
	data   []byte
}

var _ storage.Storage = (*MemoryStore)(nil)

// NewMemoryStore creates a store with no database.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// NewMemoryStoreWith creates a store that already holds tasks.
func NewMemoryStoreWith(tasks ...models.Task) *MemoryStore {
	m := &MemoryStore{exists: true}
	if len(tasks) > 0 {
		data, err := json.Marshal(models.TaskList(tasks))
		if err != nil {
			panic(err)
		}
		m.data = data
	}
	return m
}

// Exists reports whether EnsureExists or Save has created the database.
func (m *MemoryStore) Exists() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.exists
}

// EnsureExists marks the database as created.
func (m *MemoryStore) EnsureExists(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.exists = true
	return nil
}

// ReadRaw returns a copy of the stored document.
func (m *MemoryStore) ReadRaw(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.exists {
		return nil, fmt.Errorf("failed to read database: not created")
	}
	return append([]byte(nil), m.data...), nil
}

// Load decodes the stored document.
func (m *MemoryStore) Load(ctx context.Context) (models.TaskList, error) {
	data, err := m.ReadRaw(ctx)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return models.TaskList{}, nil
	}

	var tasks models.TaskList
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("%w: %v", storage.ErrCorrupt, err)
	}
	return tasks, nil
}

// Save replaces the stored document.
func (m *MemoryStore) Save(ctx context.Context, list models.TaskList) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if list == nil {
		list = models.TaskList{}
	}

	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("failed to encode tasks: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.exists = true
	m.data = data
	return nil
}

// SetRaw replaces the stored document with data, bypassing encoding.
func (m *MemoryStore) SetRaw(data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.exists = true
	m.data = append([]byte(nil), data...)
}
