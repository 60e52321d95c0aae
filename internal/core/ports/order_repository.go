// Package ports defines the contracts between the application core and
// infrastructure: repositories, the unit of work, and the external
// platform, carrier and ERP collaborators. Adapters implement these
// interfaces; use cases depend only on them.
package ports

import (
	"context"

	"shipsync/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for live order
// aggregates. Live orders are keyed by their platform identifier; a
// processed order leaves this store for the archive.
type OrderRepository interface {
	// AddIfAbsent persists a newly ingested order unless a live order
	// with the same platform identifier already exists. Reports whether
	// the order was actually inserted, so ingestion can count new rows
	// without a prior existence check.
	AddIfAbsent(ctx context.Context, aggregate *order.Order) (bool, error)

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its platform identifier.
	// Returns errs.ObjectNotFoundError when no live order matches.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// GetAll retrieves every live order, newest first.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetAllInStatus retrieves all live orders in the given status,
	// oldest first so the processing sweep drains fairly.
	GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error)

	// Delete removes a live order without archiving it.
	// Returns errs.ObjectNotFoundError when no live order matches.
	Delete(ctx context.Context, id int64) error
}

// ArchiveRepository defines the persistence contract for processed
// orders. Archive rows are immutable snapshots written in the same
// transaction that deletes the live row.
type ArchiveRepository interface {
	// Add writes the archive snapshot of a processed order.
	Add(ctx context.Context, aggregate *order.Order) error
}
