// Package customer contains the Customer entity: the person whose device is
// in for repair, identified in practice by their phone number.
package customer

import (
	"errors"

	"servis/internal/core/domain/model/kernel"
	"servis/internal/pkg/errs"
)

// ErrCustomerIsNotConstructed is returned when a Customer instance was not
// created through NewCustomer or RestoreCustomer.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer or RestoreCustomer")

// Customer is the owner of one or more service orders.
//
// Invariants:
//   - Must have a valid unique identifier
//   - Name and phone must be non-empty
//
// The phone number is stored free-form exactly as the operator typed it;
// normalization to digits happens only at the messaging boundary.
// Customers are created on the first order for a new phone number, renamed in
// place when a known phone number is reused, and never deleted by this core.
type Customer struct {
	id    kernel.UUID
	name  string
	phone string

	isConstructed bool
}

// NewCustomer creates a validated Customer.
func NewCustomer(id kernel.UUID, name, phone string) (*Customer, error) {
	c := &Customer{isConstructed: true}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setPhone(phone),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCustomer reconstructs a Customer from persistence.
// It applies the same validation as NewCustomer.
func RestoreCustomer(id kernel.UUID, name, phone string) (*Customer, error) {
	return NewCustomer(id, name, phone)
}

// Validate ensures the Customer was created through a constructor.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Name returns the customer's display name.
func (c *Customer) Name() string {
	return c.name
}

// Phone returns the customer's phone number as entered.
func (c *Customer) Phone() string {
	return c.phone
}

// Rename changes the display name. Used when a returning phone number shows
// up under a different name on a new intake.
func (c *Customer) Rename(name string) error {
	return c.setName(name)
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *Customer) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	c.phone = phone
	return nil
}
