package queries

import (
	"context"
	"log/slog"

	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler serves the dashboard's live order listing,
// newest first.
type GetAllOrdersQueryHandler struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewGetAllOrdersQueryHandler creates a handler for the live order
// listing. Requires a GORM database connection for query execution.
func NewGetAllOrdersQueryHandler(db *gorm.DB, logger *slog.Logger) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db, logger: logger.With("component", "orders-query")}
}

// Handle executes the query and returns every live order.
func (h GetAllOrdersQueryHandler) Handle(ctx context.Context, query GetAllOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		ORDER BY created_at DESC, id DESC
	`).Rows()
	if err != nil {
		return nil, err
	}

	return collectOrderRows(rows, h.logger)
}
