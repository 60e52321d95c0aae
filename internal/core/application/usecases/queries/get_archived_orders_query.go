package queries

import (
	"errors"
	"time"

	"shipsync/internal/pkg/guard"
)

var ErrGetArchivedOrdersQueryIsNotConstructed = errors.New(
	"GetArchivedOrdersQuery must be created via NewGetArchivedOrdersQuery constructor",
)

// GetArchivedOrdersQuery retrieves processed orders from the archive,
// most recently archived first.
type GetArchivedOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetArchivedOrdersQuery creates a query for the archive listing.
func NewGetArchivedOrdersQuery() GetArchivedOrdersQuery {
	return GetArchivedOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetArchivedOrdersQueryIsNotConstructed if validation fails.
func (q GetArchivedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetArchivedOrdersQueryIsNotConstructed)
}

// ArchivedOrderResponse is one archive row: the order snapshot plus the
// time it was archived.
type ArchivedOrderResponse struct {
	OrderResponse
	ArchivedAt time.Time `json:"archivedAt"`
}
