package commands

import (
	"context"

	"go.uber.org/zap"

	"servis/internal/core/application/session"
	"servis/internal/core/ports"
)

// LoadTemplatesCommandHandler resolves the template configuration at
// startup. Persisted rows win over the built-in defaults; when the table is
// empty the defaults are seeded into it so later edits have rows to update.
type LoadTemplatesCommandHandler struct {
	repo      ports.TemplateRepository
	templates *session.TemplateConfig
	logger    *zap.Logger
}

// NewLoadTemplatesCommandHandler creates a handler for template resolution.
func NewLoadTemplatesCommandHandler(
	repo ports.TemplateRepository,
	templates *session.TemplateConfig,
	logger *zap.Logger,
) LoadTemplatesCommandHandler {
	return LoadTemplatesCommandHandler{
		repo:      repo,
		templates: templates,
		logger:    logger,
	}
}

// Handle loads persisted rows into the session, seeding the defaults when
// nothing was persisted yet.
func (h LoadTemplatesCommandHandler) Handle(ctx context.Context, command LoadTemplatesCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	rows, err := h.repo.List(ctx)
	if err != nil {
		return err
	}

	if len(rows) == 0 {
		defaults := h.templates.Entries()
		if err = h.repo.Upsert(ctx, defaults); err != nil {
			return err
		}
		h.logger.Info("seeded default notification templates",
			zap.Int("entries", len(defaults)))
		return nil
	}

	h.templates.Apply(rows)
	h.logger.Info("loaded notification templates",
		zap.Int("entries", len(rows)))

	return nil
}
