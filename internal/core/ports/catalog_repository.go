package ports

import (
	"context"

	"shipsync/internal/core/domain/model/platform"
	"shipsync/internal/core/domain/model/product"
)

// TagRepository defines the persistence contract for the cached platform
// tag vocabulary. The cache is replaced wholesale on each refresh; tag
// classification reads it instead of calling the platform per order.
type TagRepository interface {
	// ReplaceAll swaps the cached vocabulary for the given set.
	ReplaceAll(ctx context.Context, tags []platform.Tag) error

	// GetAll retrieves the cached vocabulary.
	GetAll(ctx context.Context) ([]platform.Tag, error)
}

// ProductRepository defines the persistence contract for the cached
// product catalog and its unit-of-measure lookup.
type ProductRepository interface {
	// Upsert inserts or updates the given catalog entries by product id
	// and replaces each entry's alias set. The refresh walks the
	// platform catalog page by page, so Upsert is additive across calls.
	Upsert(ctx context.Context, products []*product.Product) error

	// GetAll retrieves the cached catalog.
	GetAll(ctx context.Context) ([]*product.Product, error)

	// UOMForSKU resolves the ERP unit of measure configured for a SKU.
	// Returns the empty string, not an error, when none is configured.
	UOMForSKU(ctx context.Context, sku string) (string, error)
}
