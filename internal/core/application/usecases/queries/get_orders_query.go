// Package queries contains read-only operations in the CQRS architecture.
// Query handlers bypass the domain model and read projections straight from
// the database, shaped for the HTTP layer.
package queries

import (
	"errors"
	"strings"
	"time"

	"servis/internal/core/domain/model/kernel"
	"servis/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves service orders with their customer and device
// details, newest first. An optional search term narrows the result to
// orders whose customer, device or problem description matches it.
//
// Example:
//
//	query := NewGetOrdersQuery("ana")
//	handler := NewGetOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
type GetOrdersQuery struct {
	search string

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query for the order list. An empty search term
// means no filtering.
func NewGetOrdersQuery(search string) GetOrdersQuery {
	return GetOrdersQuery{
		search: strings.TrimSpace(search),
		guard:  guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersQueryIsNotConstructed if validation fails.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Search returns the normalized search term, possibly empty.
func (q GetOrdersQuery) Search() string {
	return q.search
}

// GetOrdersCustomerResponse is the customer part of an order row.
type GetOrdersCustomerResponse struct {
	Name  string
	Phone string
}

// GetOrdersDeviceResponse is the device part of an order row.
type GetOrdersDeviceResponse struct {
	Brand string
	Model string
	IMEI  string
}

// GetOrdersQueryResponse is one order row as the HTTP layer presents it.
// ShortID is the tail of the order id, the form printed on receipts and
// referenced in messages.
type GetOrdersQueryResponse struct {
	ID        kernel.UUID
	ShortID   string
	CreatedAt time.Time
	Status    string
	Problem   string
	DueDate   *time.Time
	Customer  GetOrdersCustomerResponse
	Device    GetOrdersDeviceResponse
}
