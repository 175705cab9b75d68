// Package templaterepo provides persistence for notification template rows.
package templaterepo

import "servis/internal/core/domain/model/template"

// TemplateDTO represents one row of the wa_templates table: a status key and
// the message bound to it. The reserved company row uses the same shape.
type TemplateDTO struct {
	Status  string `gorm:"type:varchar(64);primaryKey"`
	Message string `gorm:"type:text;not null"`
}

// TableName specifies the database table name for template rows.
func (TemplateDTO) TableName() string {
	return "wa_templates"
}

func fromEntry(e template.Entry) TemplateDTO {
	return TemplateDTO{Status: e.Status, Message: e.Message}
}

func toEntry(dto TemplateDTO) template.Entry {
	return template.Entry{Status: dto.Status, Message: dto.Message}
}
