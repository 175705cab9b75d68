package commands

import (
	"errors"

	"servis/internal/pkg/guard"
)

var ErrLoadTemplatesCommandIsNotConstructed = errors.New(
	"LoadTemplatesCommand must be created via NewLoadTemplatesCommand constructor",
)

// LoadTemplatesCommand triggers the startup template resolution: persisted
// rows are overlaid onto the built-in defaults, and an empty table gets the
// defaults seeded back.
type LoadTemplatesCommand struct {
	guard guard.ConstructorGuard
}

// NewLoadTemplatesCommand creates a parameterless command to resolve the
// session template configuration.
func NewLoadTemplatesCommand() LoadTemplatesCommand {
	return LoadTemplatesCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrLoadTemplatesCommandIsNotConstructed if validation fails.
func (c *LoadTemplatesCommand) Validate() error {
	return c.guard.Validate(ErrLoadTemplatesCommandIsNotConstructed)
}
