package ports

import (
	"context"

	"servis/internal/core/domain/model/template"
)

// TemplateRepository defines the persistence contract for the notification
// template rows. An empty backing table is a valid state: the built-in
// defaults apply and are seeded back once at startup.
type TemplateRepository interface {
	// List returns every persisted template row, including the reserved
	// company row when present. An empty slice means nothing was persisted.
	List(ctx context.Context) ([]template.Entry, error)

	// Upsert inserts or replaces rows keyed by status.
	Upsert(ctx context.Context, entries []template.Entry) error
}
