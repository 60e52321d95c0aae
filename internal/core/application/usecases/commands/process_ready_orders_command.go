package commands

import (
	"errors"

	"shipsync/internal/pkg/guard"
)

var ErrProcessReadyOrdersCommandIsNotConstructed = errors.New(
	"ProcessReadyOrdersCommand must be created via NewProcessReadyOrdersCommand constructor",
)

// ProcessReadyOrdersCommand triggers one processing sweep over every
// order in Ready for Processing. Parameterless; the sweep runs after
// ingestion, after an approval, and when auto-processing is switched on.
type ProcessReadyOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewProcessReadyOrdersCommand creates a command to run one sweep.
func NewProcessReadyOrdersCommand() ProcessReadyOrdersCommand {
	return ProcessReadyOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrProcessReadyOrdersCommandIsNotConstructed if validation fails.
func (c *ProcessReadyOrdersCommand) Validate() error {
	return c.guard.Validate(ErrProcessReadyOrdersCommandIsNotConstructed)
}
