// Package queries contains read-only operations for the dashboard and
// admin endpoints. Queries bypass the aggregate layer and read projection
// rows straight from the database, following the CQRS split used by the
// command side.
package queries

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"shipsync/internal/core/domain/model/order"
)

// ShipToResponse is the destination snapshot of an order row.
type ShipToResponse struct {
	Name       string `json:"name"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// OrderResponse is one live order row as served to the dashboard.
type OrderResponse struct {
	ID               int64           `json:"id"`
	OrderNumber      string          `json:"orderNumber"`
	Status           string          `json:"status"`
	ERPReference     string          `json:"erpReference,omitempty"`
	CustomerEmail    string          `json:"customerEmail"`
	ShipTo           ShipToResponse  `json:"shipTo"`
	OrderDate        time.Time       `json:"orderDate"`
	Total            decimal.Decimal `json:"total"`
	RequestedService string          `json:"requestedService,omitempty"`
	Items            []order.Item    `json:"items"`
	TagIDs           []int64         `json:"tagIds"`
	LabelURLs        []string        `json:"labelUrls"`
	CreatedAt        time.Time       `json:"createdAt"`
}

// orderColumns is the select list every order query shares. The order
// must match scanOrderRow.
const orderColumns = `
	id,
	order_number,
	status,
	erp_reference,
	customer_email,
	ship_name,
	ship_city,
	ship_state,
	ship_postal_code,
	ship_country,
	order_date,
	total,
	requested_service,
	items,
	tag_ids,
	label_urls,
	created_at
`

// scanOrderRow scans one row of orderColumns. JSON blob columns that fail
// to decode are logged and served empty; one corrupted blob must not take
// the whole listing down.
func scanOrderRow(rows *sql.Rows, logger *slog.Logger) (OrderResponse, error) {
	var (
		resp      OrderResponse
		total     string
		items     []byte
		tagIDs    []byte
		labelURLs []byte
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
	); err != nil {
		return OrderResponse{}, err
	}

	resp.Total = parseTotal(total, resp.ID, logger)

	resp.Items = decodeJSONColumn[[]order.Item](items, "items", resp.ID, logger)
	resp.TagIDs = decodeJSONColumn[[]int64](tagIDs, "tag_ids", resp.ID, logger)
	resp.LabelURLs = decodeJSONColumn[[]string](labelURLs, "label_urls", resp.ID, logger)
	return resp, nil
}

func parseTotal(total string, orderID int64, logger *slog.Logger) decimal.Decimal {
	parsed, err := decimal.NewFromString(total)
	if err != nil {
		logger.Warn("unparsable order total, serving zero", "orderId", orderID, "total", total)
		return decimal.Zero
	}
	return parsed
}

func decodeJSONColumn[T any](data []byte, column string, orderID int64, logger *slog.Logger) T {
	var value T
	if len(data) == 0 {
		return value
	}
	if err := json.Unmarshal(data, &value); err != nil {
		logger.Warn("corrupted JSON column, serving empty",
			"orderId", orderID, "column", column, "error", err)
		var zero T
		return zero
	}
	return value
}

func collectOrderRows(rows *sql.Rows, logger *slog.Logger) ([]OrderResponse, error) {
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	for rows.Next() {
		resp, err := scanOrderRow(rows, logger)
		if err != nil {
			return nil, err
		}
		orders = append(orders, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return orders, nil
}
