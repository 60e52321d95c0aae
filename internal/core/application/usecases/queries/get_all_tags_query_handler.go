package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAllTagsQueryHandler serves the cached tag vocabulary.
type GetAllTagsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllTagsQueryHandler creates a handler for the tag listing.
// Requires a GORM database connection for query execution.
func NewGetAllTagsQueryHandler(db *gorm.DB) GetAllTagsQueryHandler {
	return GetAllTagsQueryHandler{db: db}
}

// Handle executes the query and returns the vocabulary sorted by name.
func (h GetAllTagsQueryHandler) Handle(ctx context.Context, query GetAllTagsQuery) ([]TagResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tags := make([]TagResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			tag_id,
			name
		FROM tags
		ORDER BY name, tag_id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var tag TagResponse
		if err = rows.Scan(&tag.TagID, &tag.Name); err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return tags, nil
}
