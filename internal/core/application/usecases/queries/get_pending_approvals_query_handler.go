package queries

import (
	"context"
	"log/slog"

	"gorm.io/gorm"

	"shipsync/internal/core/domain/model/order"
)

// GetPendingApprovalsQueryHandler serves the approval work list: orders
// in Pending Approval or Pending Pallet Processing, oldest first so the
// longest-waiting orders surface on top.
type GetPendingApprovalsQueryHandler struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewGetPendingApprovalsQueryHandler creates a handler for the approval
// work list. Requires a GORM database connection for query execution.
func NewGetPendingApprovalsQueryHandler(db *gorm.DB, logger *slog.Logger) GetPendingApprovalsQueryHandler {
	return GetPendingApprovalsQueryHandler{db: db, logger: logger.With("component", "approvals-query")}
}

// Handle executes the query and returns the pending orders.
func (h GetPendingApprovalsQueryHandler) Handle(
	ctx context.Context,
	query GetPendingApprovalsQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE status IN (?, ?)
		ORDER BY created_at, id
	`, order.PendingApproval.String(), order.PendingPalletProcessing.String()).Rows()
	if err != nil {
		return nil, err
	}

	return collectOrderRows(rows, h.logger)
}
