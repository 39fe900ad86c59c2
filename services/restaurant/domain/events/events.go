package events

import (
	"time"

	"github.com/google/uuid"
)

// Topics published on the in-process event bus.
const (
	TopicOrderPlaced   = "restaurant.order.placed"
	TopicTableAcquired = "restaurant.table.acquired"
	TopicTableReleased = "restaurant.table.released"
)

// OrderPlacedEvent is published after an order is finalized and saved.
type OrderPlacedEvent struct {
	EventID    uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int       `json:"version"`  // Schema version; increment on breaking changes
	OrderID    int       `json:"order_id"`
	Kind       string    `json:"kind"`
	TableID    *int      `json:"table_id,omitempty"`
	Address    *string   `json:"address,omitempty"`
	ItemCount  int       `json:"item_count"`
	Total      float64   `json:"total"`
	OccurredAt time.Time `json:"occurred_at"`
}

// TableAcquiredEvent is published when a table is leased from the pool.
type TableAcquiredEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	TableID    int       `json:"table_id"`
	Capacity   int       `json:"capacity"`
	OccurredAt time.Time `json:"occurred_at"`
}

// TableReleasedEvent is published when a lease is handed back. Requeued is
// false when the pool refused the table (unrecognized, already free, or over
// the ceiling); a diagnostic signal, not an error.
type TableReleasedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	TableID    int       `json:"table_id"`
	Requeued   bool      `json:"requeued"`
	OccurredAt time.Time `json:"occurred_at"`
}
