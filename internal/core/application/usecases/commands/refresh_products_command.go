package commands

import (
	"errors"

	"shipsync/internal/pkg/guard"
)

var ErrRefreshProductsCommandIsNotConstructed = errors.New(
	"RefreshProductsCommand must be created via NewRefreshProductsCommand constructor",
)

// RefreshProductsCommand triggers a paginated refresh of the cached
// product catalog. Parameterless; triggered hourly by the catalog job
// and on demand through the admin endpoint.
type RefreshProductsCommand struct {
	guard guard.ConstructorGuard
}

// NewRefreshProductsCommand creates a command to refresh the catalog.
func NewRefreshProductsCommand() RefreshProductsCommand {
	return RefreshProductsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrRefreshProductsCommandIsNotConstructed if validation fails.
func (c *RefreshProductsCommand) Validate() error {
	return c.guard.Validate(ErrRefreshProductsCommandIsNotConstructed)
}
