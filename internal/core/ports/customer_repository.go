package ports

import (
	"context"

	"servis/internal/core/domain/model/customer"
)

// CustomerRepository defines the persistence contract for customers.
// Customers are looked up by their phone number on intake; this core never
// deletes them.
type CustomerRepository interface {
	// Add persists a new customer.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Update persists changes to an existing customer (a rename).
	Update(ctx context.Context, aggregate *customer.Customer) error

	// GetByPhone retrieves the customer with exactly this phone number.
	// Returns an error wrapping errs.ErrObjectNotFound when no such
	// customer exists.
	GetByPhone(ctx context.Context, phone string) (*customer.Customer, error)
}
