package queries

import (
	"context"
	"log/slog"

	"gorm.io/gorm"

	"shipsync/internal/pkg/errs"
)

// GetOrderQueryHandler serves a single live order detail.
type GetOrderQueryHandler struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewGetOrderQueryHandler creates a handler for single order lookups.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB, logger *slog.Logger) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db, logger: logger.With("component", "order-query")}
}

// Handle executes the lookup. Returns errs.ObjectNotFoundError when no
// live order matches the id.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE id = ?
	`, query.OrderID()).Rows()
	if err != nil {
		return OrderResponse{}, err
	}

	orders, err := collectOrderRows(rows, h.logger)
	if err != nil {
		return OrderResponse{}, err
	}
	if len(orders) == 0 {
		return OrderResponse{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}
	return orders[0], nil
}
