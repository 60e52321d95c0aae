package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"shipsync/internal/core/application/usecases/commands"
)

// CatalogRefreshJob keeps the cached tag vocabulary and product catalog
// in sync with the platform. Stale reference data only degrades
// classification and package sizing, so an hourly refresh is enough.
type CatalogRefreshJob struct {
	refreshTagsHandler     commands.RefreshTagsCommandHandler
	refreshProductsHandler commands.RefreshProductsCommandHandler
	cron                   *cron.Cron
	logger                 *slog.Logger
}

// NewCatalogRefreshJob creates the hourly catalog refresh job.
func NewCatalogRefreshJob(
	refreshTagsHandler commands.RefreshTagsCommandHandler,
	refreshProductsHandler commands.RefreshProductsCommandHandler,
	logger *slog.Logger,
) *CatalogRefreshJob {
	return &CatalogRefreshJob{
		refreshTagsHandler:     refreshTagsHandler,
		refreshProductsHandler: refreshProductsHandler,
		cron:                   cron.New(cron.WithSeconds()),
		logger:                 logger.With("component", "catalog_refresh_job"),
	}
}

// Start schedules the refresh at the top of every hour. A tag refresh
// failure does not block the product refresh; the two caches are
// independent.
func (j *CatalogRefreshJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", func() {
		ctx := context.Background()

		tags, err := j.refreshTagsHandler.Handle(ctx, commands.NewRefreshTagsCommand())
		if err != nil {
			j.logger.ErrorContext(ctx, "Tag refresh failed", "error", err)
		} else {
			j.logger.InfoContext(ctx, "Tag refresh complete", "tags", tags)
		}

		products, err := j.refreshProductsHandler.Handle(ctx, commands.NewRefreshProductsCommand())
		if err != nil {
			j.logger.ErrorContext(ctx, "Product refresh failed", "error", err)
		} else {
			j.logger.InfoContext(ctx, "Product refresh complete", "products", products)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Catalog refresh job started (running hourly)")
	return nil
}

// Stop stops the catalog refresh job.
func (j *CatalogRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Catalog refresh job stopped")
}
