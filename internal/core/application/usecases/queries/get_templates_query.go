package queries

import (
	"errors"

	"servis/internal/pkg/guard"
)

var ErrGetTemplatesQueryIsNotConstructed = errors.New(
	"GetTemplatesQuery must be created via NewGetTemplatesQuery constructor",
)

// GetTemplatesQuery retrieves the resolved notification template
// configuration: every status message merged over the built-in defaults,
// plus the company name.
type GetTemplatesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetTemplatesQuery creates a parameterless query for the template
// configuration.
func NewGetTemplatesQuery() GetTemplatesQuery {
	return GetTemplatesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetTemplatesQueryIsNotConstructed if validation fails.
func (q GetTemplatesQuery) Validate() error {
	return q.guard.Validate(ErrGetTemplatesQueryIsNotConstructed)
}

// GetTemplatesQueryResponse is the template configuration as the settings
// form consumes it.
type GetTemplatesQueryResponse struct {
	Company  string
	Messages map[string]string
}
