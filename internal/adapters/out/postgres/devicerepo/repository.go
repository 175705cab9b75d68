package devicerepo

import (
	"context"

	"gorm.io/gorm"

	"servis/internal/core/domain/model/device"
	"servis/internal/core/domain/model/kernel"
)

// GormDeviceRepository implements DeviceRepository using GORM.
type GormDeviceRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDeviceRepository creates a new GORM device repository.
func NewGormDeviceRepository(db *gorm.DB, tracker aggregateTracker) *GormDeviceRepository {
	return &GormDeviceRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new device to the database.
func (r *GormDeviceRepository) Add(ctx context.Context, aggregate *device.Device) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := FromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing device to the database. The IMEI column is
// written even when empty so an amendment can clear it.
func (r *GormDeviceRepository) Update(ctx context.Context, aggregate *device.Device) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := FromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&DeviceDTO{}).
		Where("id = ?", dto.ID).
		Select("brand", "model", "imei").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}
