package store

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"hetvrp/internal/customer"
)

// Memory is the store used when no database is configured. Instances live
// as long as the process.
type Memory struct {
	mu    sync.Mutex
	byID  map[string]memInstance
	order []string // insertion order
}

type memInstance struct {
	Summary
	body []byte
}

func NewMemory() *Memory {
	return &Memory{byID: map[string]memInstance{}}
}

func (m *Memory) SaveInstance(ctx context.Context, name string, cs *customer.Set) (string, error) {
	body, err := encodeSet(cs)
	if err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	id := uuid.New().String()
	m.byID[id] = memInstance{
		Summary: Summary{ID: id, Name: name, CreatedAt: time.Now().UTC(), Size: cs.Size()},
		body:    body,
	}
	m.order = append(m.order, id)
	return id, nil
}

func (m *Memory) LoadInstance(ctx context.Context, id string) (Instance, error) {
	m.mu.Lock()
	in, ok := m.byID[id]
	m.mu.Unlock()
	if !ok {
		return Instance{}, fmt.Errorf("load instance %s: %w", id, ErrNotFound)
	}
	cs, err := decodeSet(in.body)
	if err != nil {
		return Instance{}, err
	}
	return Instance{Summary: in.Summary, Customers: cs}, nil
}

func (m *Memory) ListInstances(ctx context.Context) ([]Summary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Summary, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.byID[id].Summary)
	}
	return out, nil
}

func (m *Memory) DeleteInstance(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[id]; !ok {
		return fmt.Errorf("delete instance %s: %w", id, ErrNotFound)
	}
	delete(m.byID, id)
	m.order = slices.DeleteFunc(m.order, func(s string) bool { return s == id })
	return nil
}

func (m *Memory) Close() error { return nil }
