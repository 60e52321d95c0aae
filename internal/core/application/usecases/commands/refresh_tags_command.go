package commands

import (
	"errors"

	"shipsync/internal/pkg/guard"
)

var ErrRefreshTagsCommandIsNotConstructed = errors.New(
	"RefreshTagsCommand must be created via NewRefreshTagsCommand constructor",
)

// RefreshTagsCommand triggers a wholesale refresh of the cached platform
// tag vocabulary. Parameterless; triggered hourly by the catalog job and
// on demand through the admin endpoint.
type RefreshTagsCommand struct {
	guard guard.ConstructorGuard
}

// NewRefreshTagsCommand creates a command to refresh the tag cache.
func NewRefreshTagsCommand() RefreshTagsCommand {
	return RefreshTagsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrRefreshTagsCommandIsNotConstructed if validation fails.
func (c *RefreshTagsCommand) Validate() error {
	return c.guard.Validate(ErrRefreshTagsCommandIsNotConstructed)
}
