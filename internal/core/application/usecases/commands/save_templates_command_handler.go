package commands

import (
	"context"

	"go.uber.org/zap"

	"servis/internal/core/application/session"
	"servis/internal/core/ports"
)

// SaveTemplatesCommandHandler persists an edited template configuration and
// applies it to the running session, so the next dispatch uses the new
// wording without a restart.
type SaveTemplatesCommandHandler struct {
	repo      ports.TemplateRepository
	templates *session.TemplateConfig
	logger    *zap.Logger
}

// NewSaveTemplatesCommandHandler creates a handler for template edits.
func NewSaveTemplatesCommandHandler(
	repo ports.TemplateRepository,
	templates *session.TemplateConfig,
	logger *zap.Logger,
) SaveTemplatesCommandHandler {
	return SaveTemplatesCommandHandler{
		repo:      repo,
		templates: templates,
		logger:    logger,
	}
}

// Handle persists the configuration first; the session only picks it up
// once the store has accepted it.
func (h SaveTemplatesCommandHandler) Handle(ctx context.Context, command SaveTemplatesCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	entries := command.Entries()
	if err := h.repo.Upsert(ctx, entries); err != nil {
		return err
	}

	h.templates.Apply(entries)
	h.logger.Info("notification templates updated",
		zap.Int("entries", len(entries)),
		zap.String("company", command.Company()))

	return nil
}
