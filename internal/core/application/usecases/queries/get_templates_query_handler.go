package queries

import (
	"context"

	"servis/internal/core/application/session"
	"servis/internal/core/domain/model/template"
)

// GetTemplatesQueryHandler reads the template configuration from the
// session. The session already holds the merge of defaults and persisted
// rows, so this handler never touches the database.
type GetTemplatesQueryHandler struct {
	templates *session.TemplateConfig
}

// NewGetTemplatesQueryHandler creates a handler for template configuration reads.
func NewGetTemplatesQueryHandler(templates *session.TemplateConfig) GetTemplatesQueryHandler {
	return GetTemplatesQueryHandler{templates: templates}
}

// Handle returns the resolved configuration.
func (h GetTemplatesQueryHandler) Handle(
	_ context.Context,
	query GetTemplatesQuery,
) (GetTemplatesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetTemplatesQueryResponse{}, err
	}

	resp := GetTemplatesQueryResponse{
		Company:  h.templates.Company(),
		Messages: make(map[string]string),
	}
	for _, entry := range h.templates.Entries() {
		if entry.Status == template.CompanyKey {
			continue
		}
		resp.Messages[entry.Status] = entry.Message
	}

	return resp, nil
}
