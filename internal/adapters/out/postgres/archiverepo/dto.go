// Package archiverepo persists processed order snapshots. Archive rows
// share the live order column layout plus the archival timestamp; they
// are written once and never updated.
package archiverepo

import (
	"time"

	"shipsync/internal/adapters/out/postgres/orderrepo"
	"shipsync/internal/core/domain/model/order"
)

// ArchivedOrderDTO represents the database structure for archived orders.
type ArchivedOrderDTO struct {
	orderrepo.OrderDTO `gorm:"embedded"`

	ArchivedAt time.Time `gorm:"column:archived_at;index"`
}

// TableName specifies the database table name for archived orders.
func (ArchivedOrderDTO) TableName() string {
	return "archived_orders"
}

func fromDomain(aggregate *order.Order, archivedAt time.Time) (ArchivedOrderDTO, error) {
	dto, err := orderrepo.FromDomain(aggregate)
	if err != nil {
		return ArchivedOrderDTO{}, err
	}

	return ArchivedOrderDTO{
		OrderDTO:   dto,
		ArchivedAt: archivedAt,
	}, nil
}
