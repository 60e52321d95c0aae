package ports

import (
	"context"

	"shipsync/internal/core/domain/model/platform"
	"shipsync/internal/core/domain/model/shipment"
)

// PlatformClient is the contract with the shipping platform: the order
// feed, the tag and product reference data, and label creation.
//
// Implementations return errs.ExternalCallError for upstream failures so
// use cases can classify them without knowing transport details.
type PlatformClient interface {
	// FetchAwaitingShipment retrieves the orders currently awaiting
	// shipment, the ingestion feed.
	FetchAwaitingShipment(ctx context.Context) ([]platform.Order, error)

	// FetchOrder retrieves one order's authoritative detail by platform
	// identifier. Used at label time; the stored snapshot may be stale.
	FetchOrder(ctx context.Context, id int64) (*platform.Order, error)

	// FetchTags retrieves the account's tag vocabulary.
	FetchTags(ctx context.Context) ([]platform.Tag, error)

	// FetchProducts retrieves one page of the product catalog. Pages are
	// 1-based; the returned page reports the total page count.
	FetchProducts(ctx context.Context, page int) (*platform.ProductPage, error)

	// CreateLabel purchases a shipping label for the given request and
	// returns the download URLs found in the response, deduplicated and
	// in response order.
	CreateLabel(ctx context.Context, request shipment.LabelRequest) ([]string, error)
}
