// Package orderrepo persists live order aggregates. Scalar order fields
// map to columns; the item list, tag ids and label URLs are stored as
// JSON blobs, decoded back with warn-and-default so one corrupted blob
// cannot block the workflow.
package orderrepo

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"shipsync/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting live orders.
// The primary key is the platform-assigned order id; the insert-or-ignore
// dedup in AddIfAbsent relies on it.
type OrderDTO struct {
	ID               int64           `gorm:"primaryKey"`
	OrderNumber      string          `gorm:"index"`
	Status           string          `gorm:"index"`
	ERPReference     string          `gorm:"column:erp_reference"`
	CustomerEmail    string          `gorm:"column:customer_email"`
	ShipTo           ShipToDTO       `gorm:"embedded;embeddedPrefix:ship_"`
	OrderDate        time.Time       `gorm:"column:order_date"`
	Total            decimal.Decimal `gorm:"type:numeric(14,2)"`
	RequestedService string          `gorm:"column:requested_service"`
	Items            []byte          `gorm:"type:jsonb"`
	TagIDs           []byte          `gorm:"column:tag_ids;type:jsonb"`
	LabelURLs        []byte          `gorm:"column:label_urls;type:jsonb"`
	CreatedAt        time.Time       `gorm:"column:created_at"`
}

// TableName specifies the database table name for live orders.
func (OrderDTO) TableName() string {
	return "orders"
}

// ShipToDTO is the embedded destination snapshot within the order table.
type ShipToDTO struct {
	Name       string
	City       string
	State      string
	PostalCode string
	Country    string
}

// FromDomain converts an order aggregate to its database representation.
// Exported because the archive repository persists the same shape.
func FromDomain(aggregate *order.Order) (OrderDTO, error) {
	items, err := json.Marshal(aggregate.Items())
	if err != nil {
		return OrderDTO{}, err
	}
	tagIDs, err := json.Marshal(aggregate.TagIDs())
	if err != nil {
		return OrderDTO{}, err
	}
	labelURLs, err := json.Marshal(aggregate.LabelURLs())
	if err != nil {
		return OrderDTO{}, err
	}

	shipTo := aggregate.ShipTo()
	return OrderDTO{
		ID:            aggregate.ID(),
		OrderNumber:   aggregate.OrderNumber(),
		Status:        aggregate.Status().String(),
		ERPReference:  aggregate.ERPReference(),
		CustomerEmail: aggregate.CustomerEmail(),
		ShipTo: ShipToDTO{
			Name:       shipTo.Name,
			City:       shipTo.City,
			State:      shipTo.State,
			PostalCode: shipTo.PostalCode,
			Country:    shipTo.Country,
		},
		OrderDate:        aggregate.OrderDate(),
		Total:            aggregate.Total(),
		RequestedService: aggregate.RequestedService(),
		Items:            items,
		TagIDs:           tagIDs,
		LabelURLs:        labelURLs,
		CreatedAt:        aggregate.CreatedAt(),
	}, nil
}

// ToDomain converts a database row back to an order aggregate. A status
// name that no longer resolves fails the restore; corrupted JSON blobs
// are logged and restored empty.
func ToDomain(dto OrderDTO, logger *slog.Logger) (*order.Order, error) {
	status, err := order.StatusFromName(dto.Status)
	if err != nil {
		return nil, err
	}

	details := order.Details{
		CustomerEmail: dto.CustomerEmail,
		ShipTo: order.ShipTo{
			Name:       dto.ShipTo.Name,
			City:       dto.ShipTo.City,
			State:      dto.ShipTo.State,
			PostalCode: dto.ShipTo.PostalCode,
			Country:    dto.ShipTo.Country,
		},
		OrderDate:        dto.OrderDate,
		Total:            dto.Total,
		RequestedService: dto.RequestedService,
		Items:            decodeBlob[[]order.Item](dto.Items, "items", dto.ID, logger),
		TagIDs:           decodeBlob[[]int64](dto.TagIDs, "tag_ids", dto.ID, logger),
	}

	return order.RestoreOrder(
		dto.ID,
		dto.OrderNumber,
		status,
		details,
		dto.ERPReference,
		decodeBlob[[]string](dto.LabelURLs, "label_urls", dto.ID, logger),
		dto.CreatedAt,
	)
}

func decodeBlob[T any](data []byte, column string, orderID int64, logger *slog.Logger) T {
	var value T
	if len(data) == 0 {
		return value
	}
	if err := json.Unmarshal(data, &value); err != nil {
		logger.Warn("corrupted JSON column, restoring empty",
			"orderId", orderID, "column", column, "error", err)
		var zero T
		return zero
	}
	return value
}
