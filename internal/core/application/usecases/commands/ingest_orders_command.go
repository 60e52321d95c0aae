package commands

import (
	"errors"

	"shipsync/internal/pkg/guard"
)

var ErrIngestOrdersCommandIsNotConstructed = errors.New(
	"IngestOrdersCommand must be created via NewIngestOrdersCommand constructor",
)

// IngestOrdersCommand triggers one synchronization pass: fetch the
// platform's awaiting-shipment orders and insert the ones not yet in the
// ledger. This is a parameterless command triggered by the poll job and
// by the fetch-now endpoint.
type IngestOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewIngestOrdersCommand creates a command to run one ingestion pass.
func NewIngestOrdersCommand() IngestOrdersCommand {
	return IngestOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrIngestOrdersCommandIsNotConstructed if validation fails.
func (c *IngestOrdersCommand) Validate() error {
	return c.guard.Validate(ErrIngestOrdersCommandIsNotConstructed)
}
