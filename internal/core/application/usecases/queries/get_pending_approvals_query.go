package queries

import (
	"errors"

	"shipsync/internal/pkg/guard"
)

var ErrGetPendingApprovalsQueryIsNotConstructed = errors.New(
	"GetPendingApprovalsQuery must be created via NewGetPendingApprovalsQuery constructor",
)

// GetPendingApprovalsQuery retrieves the orders waiting in either
// approval queue, the operator's work list.
type GetPendingApprovalsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPendingApprovalsQuery creates a query for the approval queues.
func NewGetPendingApprovalsQuery() GetPendingApprovalsQuery {
	return GetPendingApprovalsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetPendingApprovalsQueryIsNotConstructed if validation fails.
func (q GetPendingApprovalsQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingApprovalsQueryIsNotConstructed)
}
