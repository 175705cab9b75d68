package templaterepo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"servis/internal/core/domain/model/template"
)

// GormTemplateRepository implements TemplateRepository using GORM.
// Template rows are keyed by status, so saving the configuration is a
// batch upsert.
type GormTemplateRepository struct {
	db *gorm.DB
}

// NewGormTemplateRepository creates a new GORM template repository.
func NewGormTemplateRepository(db *gorm.DB) *GormTemplateRepository {
	return &GormTemplateRepository{db: db}
}

// List returns every persisted template row ordered by status.
func (r *GormTemplateRepository) List(ctx context.Context) ([]template.Entry, error) {
	var dtos []TemplateDTO
	if err := r.db.WithContext(ctx).Order("status").Find(&dtos).Error; err != nil {
		return nil, err
	}

	entries := make([]template.Entry, 0, len(dtos))
	for _, dto := range dtos {
		entries = append(entries, toEntry(dto))
	}

	return entries, nil
}

// Upsert inserts or replaces rows keyed by status.
func (r *GormTemplateRepository) Upsert(ctx context.Context, entries []template.Entry) error {
	if len(entries) == 0 {
		return nil
	}

	dtos := make([]TemplateDTO, 0, len(entries))
	for _, e := range entries {
		dtos = append(dtos, fromEntry(e))
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "status"}},
		DoUpdates: clause.AssignmentColumns([]string{"message"}),
	}).Create(&dtos).Error
}
