package ports

import (
	"context"

	"servis/internal/core/domain/model/device"
)

// DeviceRepository defines the persistence contract for devices.
// A device belongs to the order that created it and is edited in place.
type DeviceRepository interface {
	// Add persists a new device.
	Add(ctx context.Context, aggregate *device.Device) error

	// Update persists changes to an existing device.
	Update(ctx context.Context, aggregate *device.Device) error
}
