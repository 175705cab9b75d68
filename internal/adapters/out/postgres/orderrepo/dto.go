// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"github.com/google/uuid"

	"servis/internal/adapters/out/postgres/customerrepo"
	"servis/internal/adapters/out/postgres/devicerepo"
	"servis/internal/core/domain/model/kernel"
	"servis/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Orders reference their customer and device by foreign key; reads preload
// both so the domain aggregate can be restored in one query.
type OrderDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CreatedAt  time.Time  `gorm:"not null;index"`
	Status     string     `gorm:"type:varchar(64);not null;index"`
	Problem    string     `gorm:"type:text;not null"`
	DueDate    *time.Time
	CustomerID uuid.UUID  `gorm:"type:uuid;not null;index"`
	DeviceID   uuid.UUID  `gorm:"type:uuid;not null;index"`

	Customer customerrepo.CustomerDTO `gorm:"foreignKey:CustomerID"`
	Device   devicerepo.DeviceDTO     `gorm:"foreignKey:DeviceID"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
// Associations are left empty: customer and device rows are owned by their
// own repositories.
func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:         o.ID().Bytes(),
		CreatedAt:  o.CreatedAt(),
		Status:     o.Status().String(),
		Problem:    o.Problem(),
		DueDate:    o.DueDate(),
		CustomerID: o.Customer().ID().Bytes(),
		DeviceID:   o.Device().ID().Bytes(),
	}
}

// toDomain converts a database DTO with preloaded customer and device rows
// to an order domain aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	cust, err := customerrepo.ToDomain(dto.Customer)
	if err != nil {
		return nil, err
	}

	dev, err := devicerepo.ToDomain(dto.Device)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, dto.CreatedAt, order.Status(dto.Status), dto.Problem, dto.DueDate, cust, dev)
}
