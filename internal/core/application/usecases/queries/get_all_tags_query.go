package queries

import (
	"errors"

	"shipsync/internal/pkg/guard"
)

var ErrGetAllTagsQueryIsNotConstructed = errors.New(
	"GetAllTagsQuery must be created via NewGetAllTagsQuery constructor",
)

// GetAllTagsQuery retrieves the cached tag vocabulary for the admin
// endpoint.
type GetAllTagsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllTagsQuery creates a query for the tag vocabulary.
func NewGetAllTagsQuery() GetAllTagsQuery {
	return GetAllTagsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllTagsQueryIsNotConstructed if validation fails.
func (q GetAllTagsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllTagsQueryIsNotConstructed)
}

// TagResponse is one cached tag.
type TagResponse struct {
	TagID int64  `json:"tagId"`
	Name  string `json:"name"`
}
