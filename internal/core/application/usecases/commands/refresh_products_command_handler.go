package commands

import (
	"context"
	"log/slog"

	"shipsync/internal/core/domain/model/product"
	"shipsync/internal/core/ports"
)

// maxCatalogPages bounds the refresh loop against an upstream that keeps
// reporting more pages than it serves.
const maxCatalogPages = 500

// RefreshProductsCommandHandler walks the platform's product catalog page
// by page and upserts each page in its own transaction. Records without a
// product id or SKU are unusable as reference data and are skipped with a
// warning. A mid-walk failure keeps the pages already committed.
type RefreshProductsCommandHandler struct {
	uowFactory ProductUoWFactory
	client     ports.PlatformClient
	logger     *slog.Logger
}

// NewRefreshProductsCommandHandler creates a handler for catalog
// refreshes.
func NewRefreshProductsCommandHandler(
	uowFactory ProductUoWFactory,
	client ports.PlatformClient,
	logger *slog.Logger,
) RefreshProductsCommandHandler {
	return RefreshProductsCommandHandler{
		uowFactory: uowFactory,
		client:     client,
		logger:     logger.With("component", "refresh-products"),
	}
}

// Handle runs one catalog refresh and returns the number of upserted
// products.
func (h *RefreshProductsCommandHandler) Handle(ctx context.Context, cmd RefreshProductsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	upserted := 0
	skipped := 0

	for page := 1; page <= maxCatalogPages; page++ {
		fetched, err := h.client.FetchProducts(ctx, page)
		if err != nil {
			return upserted, err
		}
		if fetched == nil || len(fetched.Products) == 0 {
			break
		}

		mapped := make([]*product.Product, 0, len(fetched.Products))
		for _, record := range fetched.Products {
			entry, ok := product.FromPlatform(record)
			if !ok {
				h.logger.Warn("skipping catalog record without id or sku",
					"productId", record.ProductID, "sku", record.SKU)
				skipped++
				continue
			}
			mapped = append(mapped, entry)
		}

		if err = h.upsertPage(ctx, mapped); err != nil {
			return upserted, err
		}
		upserted += len(mapped)

		if page >= fetched.Pages {
			break
		}
	}

	h.logger.Info("product catalog refreshed", "upserted", upserted, "skipped", skipped)
	return upserted, nil
}

func (h *RefreshProductsCommandHandler) upsertPage(ctx context.Context, entries []*product.Product) error {
	if len(entries) == 0 {
		return nil
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.ProductRepository().Upsert(ctx, entries); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
