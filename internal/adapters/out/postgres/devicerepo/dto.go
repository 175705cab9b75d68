// Package devicerepo provides data transfer objects and mapping functions for device persistence.
package devicerepo

import (
	"github.com/google/uuid"

	"servis/internal/core/domain/model/device"
	"servis/internal/core/domain/model/kernel"
)

// DeviceDTO represents the database structure for persisting devices.
// The IMEI is stored as an empty string when unknown.
type DeviceDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Brand string    `gorm:"type:varchar(255);not null"`
	Model string    `gorm:"type:varchar(255);not null"`
	IMEI  string    `gorm:"column:imei;type:varchar(32);not null;default:''"`
}

// TableName specifies the database table name for device entities.
// Overrides GORM's default naming convention to use "devices".
func (DeviceDTO) TableName() string {
	return "devices"
}

// FromDomain converts a device domain aggregate to its database
// representation. Exported because the order repository embeds device rows
// when reading the joined projection.
func FromDomain(dev *device.Device) DeviceDTO {
	return DeviceDTO{
		ID:    dev.ID().Bytes(),
		Brand: dev.Brand(),
		Model: dev.Model(),
		IMEI:  dev.IMEI(),
	}
}

// ToDomain converts a database DTO to a device domain aggregate.
func ToDomain(dto DeviceDTO) (*device.Device, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return device.RestoreDevice(id, dto.Brand, dto.Model, dto.IMEI)
}
