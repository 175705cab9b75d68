// Package customerrepo provides data transfer objects and mapping functions for customer persistence.
// This package implements the repository pattern for the customer domain aggregate, handling
// the conversion between domain entities and database representations.
package customerrepo

import (
	"github.com/google/uuid"

	"servis/internal/core/domain/model/customer"
	"servis/internal/core/domain/model/kernel"
)

// CustomerDTO represents the database structure for persisting customers.
// The phone number is unique: it is the natural key intake resolves
// customers by.
type CustomerDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string    `gorm:"type:varchar(255);not null"`
	Phone string    `gorm:"type:varchar(32);not null;uniqueIndex"`
}

// TableName specifies the database table name for customer entities.
// Overrides GORM's default naming convention to use "customers".
func (CustomerDTO) TableName() string {
	return "customers"
}

// FromDomain converts a customer domain aggregate to its database
// representation. Exported because the order repository embeds customer
// rows when reading the joined projection.
func FromDomain(cust *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:    cust.ID().Bytes(),
		Name:  cust.Name(),
		Phone: cust.Phone(),
	}
}

// ToDomain converts a database DTO to a customer domain aggregate.
func ToDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(id, dto.Name, dto.Phone)
}
