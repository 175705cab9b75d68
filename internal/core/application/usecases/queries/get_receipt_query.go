package queries

import (
	"errors"

	"servis/internal/core/domain/model/kernel"
	"servis/internal/pkg/guard"
)

var ErrGetReceiptQueryIsNotConstructed = errors.New(
	"GetReceiptQuery must be created via NewGetReceiptQuery constructor",
)

// GetReceiptQuery renders the printable pickup receipt for one order.
type GetReceiptQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetReceiptQuery creates a query for an order's receipt.
func NewGetReceiptQuery(orderID kernel.UUID) (GetReceiptQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetReceiptQuery{}, err
	}

	return GetReceiptQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetReceiptQueryIsNotConstructed if validation fails.
func (q GetReceiptQuery) Validate() error {
	return q.guard.Validate(ErrGetReceiptQueryIsNotConstructed)
}

// OrderID returns the identifier of the order the receipt is for.
func (q GetReceiptQuery) OrderID() kernel.UUID {
	return q.orderID
}
