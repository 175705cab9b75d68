package ports

import (
	"context"

	"servis/internal/core/domain/model/kernel"
	"servis/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are always read back with their customer and device projection
// joined in, the shape the coordinator and the working set need.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the order's mutable intake fields: customer reference,
	// problem description and due date. The status is not touched here.
	Update(ctx context.Context, aggregate *order.Order) error

	// UpdateStatus persists only a status change for the given order.
	UpdateStatus(ctx context.Context, id kernel.UUID, status order.Status) error

	// Get retrieves one order with its customer and device joined in.
	// Returns an error wrapping errs.ErrObjectNotFound when the id is unknown.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll retrieves every order, newest first by creation time, with
	// customer and device joined in. This is the working-set refetch.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// Delete removes the order row. Customer and device rows stay.
	Delete(ctx context.Context, id kernel.UUID) error
}
