// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"servis/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CustomerRepoFactory provides access to the customer repository within a transaction.
	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	// DeviceRepoFactory provides access to the device repository within a transaction.
	DeviceRepoFactory interface {
		DeviceRepository() ports.DeviceRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used when commands only touch the order aggregate, such as a status
	// transition or a deletion.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// IntakeUoW manages transactions that span the order, customer and device
	// aggregates. Intake and amendment create or update all three together.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   customerRepo := uow.CustomerRepository()
	//   deviceRepo := uow.DeviceRepository()
	//   orderRepo := uow.OrderRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	IntakeUoW interface {
		TxManager
		OrderRepoFactory
		CustomerRepoFactory
		DeviceRepoFactory
	}

	// IntakeUoWFactory creates new unit of work instances for intake operations.
	IntakeUoWFactory interface {
		Create() IntakeUoW
	}
)
