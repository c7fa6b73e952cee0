package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/pthm-cable/kennel/save"
)

type memoryEntry struct {
	data      []byte
	updatedAt time.Time
}

// Memory is an in-process slot store. Contents are lost on exit.
type Memory struct {
	mu    sync.RWMutex
	slots map[save.SlotID]memoryEntry
	now   func() time.Time
}

// NewMemory creates an empty memory store.
func NewMemory() *Memory {
	return &Memory{slots: make(map[save.SlotID]memoryEntry), now: time.Now}
}

// ReadSlot returns a copy of the slot's bytes.
func (m *Memory) ReadSlot(ctx context.Context, id save.SlotID) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.slots[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(e.data))
	copy(out, e.data)
	return out, nil
}

// WriteSlot replaces the slot's bytes.
func (m *Memory) WriteSlot(ctx context.Context, id save.SlotID, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateID(id); err != nil {
		return err
	}
	stored := make([]byte, len(data))
	copy(stored, data)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.slots[id] = memoryEntry{data: stored, updatedAt: m.now()}
	return nil
}

// DeleteSlot removes a slot. Deleting an absent slot is not an error.
func (m *Memory) DeleteSlot(ctx context.Context, id save.SlotID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.slots, id)
	return nil
}

// List returns every stored slot ordered by id.
func (m *Memory) List(ctx context.Context) ([]Info, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	infos := make([]Info, 0, len(m.slots))
	for id, e := range m.slots {
		infos = append(infos, Info{ID: id, UpdatedAt: e.updatedAt, Size: len(e.data)})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].ID < infos[j].ID })
	return infos, nil
}

// Close is a no-op.
func (m *Memory) Close() error { return nil }
