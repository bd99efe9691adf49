package records

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"sirms/backend/internal/shared"
)

// Store persists student records keyed by normalized id. Implementations hand
// out copies; mutating a returned record has no effect until it is Put back.
type Store interface {
	// Get returns the record or an error wrapping shared.ErrNotFound.
	Get(ctx context.Context, id string) (*shared.Student, error)
	// Put inserts or replaces the record.
	Put(ctx context.Context, student *shared.Student) error
	// Delete removes the record or returns an error wrapping shared.ErrNotFound.
	Delete(ctx context.Context, id string) error
	// List returns every record ordered by id.
	List(ctx context.Context) ([]*shared.Student, error)
}

// MemoryStore is a process-local Store. Contents are lost on restart.
type MemoryStore struct {
	mu       sync.RWMutex
	students map[string]*shared.Student
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{students: make(map[string]*shared.Student)}
}

func (m *MemoryStore) Get(_ context.Context, id string) (*shared.Student, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.students[id]
	if !ok {
		return nil, fmt.Errorf("student %s: %w", id, shared.ErrNotFound)
	}
	return s.Clone(), nil
}

func (m *MemoryStore) Put(_ context.Context, student *shared.Student) error {
	if student == nil || student.ID == "" {
		return fmt.Errorf("put student without id: %w", shared.ErrInvalidInput)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.students[student.ID] = student.Clone()
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.students[id]; !ok {
		return fmt.Errorf("student %s: %w", id, shared.ErrNotFound)
	}
	delete(m.students, id)
	return nil
}

func (m *MemoryStore) List(_ context.Context) ([]*shared.Student, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*shared.Student, 0, len(m.students))
	for _, s := range m.students {
		out = append(out, s.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
