package queries

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"shipsync/internal/core/domain/model/order"
)

// GetArchivedOrdersQueryHandler serves the archive listing.
type GetArchivedOrdersQueryHandler struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewGetArchivedOrdersQueryHandler creates a handler for the archive
// listing. Requires a GORM database connection for query execution.
func NewGetArchivedOrdersQueryHandler(db *gorm.DB, logger *slog.Logger) GetArchivedOrdersQueryHandler {
	return GetArchivedOrdersQueryHandler{db: db, logger: logger.With("component", "archive-query")}
}

// Handle executes the query and returns archived orders, most recently
// archived first.
func (h GetArchivedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetArchivedOrdersQuery,
) ([]ArchivedOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`,
			archived_at
		FROM archived_orders
		ORDER BY archived_at DESC, id DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	archived := make([]ArchivedOrderResponse, 0)
	for rows.Next() {
		var resp ArchivedOrderResponse
		if err = scanArchivedRow(rows, &resp, h.logger); err != nil {
			return nil, err
		}
		archived = append(archived, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return archived, nil
}

// scanArchivedRow mirrors scanOrderRow with the trailing archived_at
// column. Kept in this file because only the archive listing uses it.
func scanArchivedRow(rows *sql.Rows, resp *ArchivedOrderResponse, logger *slog.Logger) error {
	var (
		total      string
		items      []byte
		tagIDs     []byte
		labelURLs  []byte
		archivedAt time.Time
	)

	if err := rows.Scan(
		&resp.ID,
		&resp.OrderNumber,
		&resp.Status,
		&resp.ERPReference,
		&resp.CustomerEmail,
		&resp.ShipTo.Name,
		&resp.ShipTo.City,
		&resp.ShipTo.State,
		&resp.ShipTo.PostalCode,
		&resp.ShipTo.Country,
		&resp.OrderDate,
		&total,
		&resp.RequestedService,
		&items,
		&tagIDs,
		&labelURLs,
		&resp.CreatedAt,
		&archivedAt,
	); err != nil {
		return err
	}

	resp.Total = parseTotal(total, resp.ID, logger)
	resp.Items = decodeJSONColumn[[]order.Item](items, "items", resp.ID, logger)
	resp.TagIDs = decodeJSONColumn[[]int64](tagIDs, "tag_ids", resp.ID, logger)
	resp.LabelURLs = decodeJSONColumn[[]string](labelURLs, "label_urls", resp.ID, logger)
	resp.ArchivedAt = archivedAt
	return nil
}
