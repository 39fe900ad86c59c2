package models

import (
	"fmt"
	"sync"

	"github.com/ghuser/gourmet/services/restaurant/domain"
)

// TablePool hands out at most maxSize tables at a time, reusing freed ones.
// It owns every Table it creates for the lifetime of the process; callers hold
// a temporary lease and must give it back with Release.
//
// Acquire and Release are safe for concurrent use; exactly one caller
// observes a successful Acquire for a given table. Acquire never blocks:
// an exhausted pool fails immediately with ErrNoTablesAvailable and the
// caller decides whether to wait, queue, or reject.
type TablePool struct {
	mu      sync.Mutex
	free    []*Table       // FIFO by release order
	owned   map[int]*Table // every table this pool ever created, by ID
	maxSize int
	nextID  int
}

// NewTablePool creates a pool pre-filled with size tables of the given
// capacity, with IDs assigned sequentially from 1.
func NewTablePool(size, capacity int) (*TablePool, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: pool size must be positive, got %d", domain.ErrInvalidArgument, size)
	}
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: table capacity must be positive, got %d", domain.ErrInvalidArgument, capacity)
	}

	p := &TablePool{
		free:    make([]*Table, 0, size),
		owned:   make(map[int]*Table, size),
		maxSize: size,
	}
	for i := 0; i < size; i++ {
		p.nextID++
		t := newTable(p.nextID, capacity)
		p.owned[t.id] = t
		p.free = append(p.free, t)
	}
	return p, nil
}

// Acquire removes and returns one free table, marking it occupied.
// Returns ErrNoTablesAvailable when no free table remains.
func (p *TablePool) Acquire() (*Table, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.free) == 0 {
		return nil, domain.ErrNoTablesAvailable
	}

	t := p.free[0]
	p.free = p.free[1:]
	t.occupied = true
	return t, nil
}

// Release marks the table free and returns it to the free set. It reports
// whether the table was actually requeued: a nil table, a table this pool
// never created, a table that is already free, or a free set at the
// configured ceiling all result in false. The no-op is deliberately
// non-fatal; callers may log the false return for diagnostics.
//
// The occupied flag is cleared before requeueing, so a caller retaining a
// stale reference observes the state change.
func (p *TablePool) Release(t *Table) bool {
	if t == nil {
		return false
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.owned[t.id] != t {
		return false
	}
	if !t.occupied {
		// Double release: the table is already queued.
		return false
	}
	if len(p.free) >= p.maxSize {
		return false
	}

	t.occupied = false
	p.free = append(p.free, t)
	return true
}

// Resize changes the maximum number of free tables Release will accept.
// It does not create or evict tables; only the ceiling moves.
func (p *TablePool) Resize(newMax int) error {
	if newMax <= 0 {
		return fmt.Errorf("%w: max pool size must be positive, got %d", domain.ErrInvalidArgument, newMax)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.maxSize = newMax
	return nil
}

// MaxSize returns the current release ceiling.
func (p *TablePool) MaxSize() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.maxSize
}

// Available returns the number of tables currently free.
func (p *TablePool) Available() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.free)
}
