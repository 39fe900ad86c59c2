package models

import "fmt"

// Table is a reusable unit of seating capacity. Tables are created by the
// TablePool at construction time and live for the lifetime of the pool;
// the occupied flag flips only through pool operations.
type Table struct {
	id       int
	capacity int
	occupied bool
}

func newTable(id, capacity int) *Table {
	return &Table{id: id, capacity: capacity}
}

// ID returns the table's unique identity. IDs are assigned at creation and
// never reused.
func (t *Table) ID() int {
	return t.id
}

// Capacity returns the number of seats at the table.
func (t *Table) Capacity() int {
	return t.capacity
}

// Occupied reports whether the table is currently leased out.
func (t *Table) Occupied() bool {
	return t.occupied
}

// String returns a short human-readable description for logs and the demo.
func (t *Table) String() string {
	return fmt.Sprintf("table %d (seats %d, occupied=%t)", t.id, t.capacity, t.occupied)
}
