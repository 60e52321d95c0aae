package ports

import (
	"context"

	"shipsync/internal/core/domain/model/order"
	"shipsync/internal/core/domain/model/platform"
)

// SalesOrderSubmitter posts a processed order into the ERP as a sales
// order. The processing pipeline treats the ERP as a strategy: the
// default deployment runs a simulated submitter, and the Dynamics 365
// adapter slots in behind the same contract when enabled.
type SalesOrderSubmitter interface {
	// Submit creates the sales order and returns the ERP reference for
	// the created document. The remote detail supplements the stored
	// aggregate with fields the snapshot does not carry.
	Submit(ctx context.Context, aggregate *order.Order, remote *platform.Order) (string, error)
}
