// Package memory holds in-memory implementations of the restaurant
// repositories. State lives for the process lifetime only.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/ghuser/gourmet/services/restaurant/domain"
	"github.com/ghuser/gourmet/services/restaurant/domain/models"
)

// OrderRepository is a mutex-guarded map of finalized orders keyed by ID.
type OrderRepository struct {
	mu     sync.RWMutex
	orders map[int]*models.Order
}

// NewOrderRepository returns an empty in-memory order registry.
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{orders: make(map[int]*models.Order)}
}

// Save stores a finalized order, replacing any previous entry with the same ID.
func (r *OrderRepository) Save(_ context.Context, order *models.Order) error {
	if order == nil {
		return fmt.Errorf("%w: order must not be nil", domain.ErrInvalidArgument)
	}
	if order.ID() <= 0 {
		return fmt.Errorf("%w: order must be finalized before saving", domain.ErrInvalidArgument)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[order.ID()] = order
	return nil
}

// GetByID returns the order with the given ID, or ErrOrderNotFound.
func (r *OrderRepository) GetByID(_ context.Context, id int) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, fmt.Errorf("%w: #%d", domain.ErrOrderNotFound, id)
	}
	return order, nil
}

// List returns all stored orders in ascending ID order.
func (r *OrderRepository) List(_ context.Context) ([]*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Order, 0, len(r.orders))
	for _, order := range r.orders {
		out = append(out, order)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out, nil
}
