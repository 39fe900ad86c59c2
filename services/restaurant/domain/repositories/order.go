package repositories

import (
	"context"

	"github.com/ghuser/gourmet/services/restaurant/domain/models"
)

// OrderRepository is the registry of active orders. The domain layer owns
// this interface; infrastructure implements it. The only implementation is
// in-memory; orders live for the process lifetime, nothing is durable.
type OrderRepository interface {
	// Save stores a finalized order. Saving an order without an assigned ID
	// is a caller bug and fails with ErrInvalidArgument.
	Save(ctx context.Context, order *models.Order) error

	// GetByID returns the order with the given ID, or ErrOrderNotFound.
	GetByID(ctx context.Context, id int) (*models.Order, error)

	// List returns all stored orders in ascending ID order.
	List(ctx context.Context) ([]*models.Order, error)
}
