package jobs

import (
	"fmt"
	"log/slog"

	"shipsync/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderPollJob      *OrderPollJob
	catalogRefreshJob *CatalogRefreshJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	ingestHandler commands.IngestOrdersCommandHandler,
	sweepHandler commands.ProcessReadyOrdersCommandHandler,
	refreshTagsHandler commands.RefreshTagsCommandHandler,
	refreshProductsHandler commands.RefreshProductsCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		orderPollJob:      NewOrderPollJob(ingestHandler, sweepHandler, logger),
		catalogRefreshJob: NewCatalogRefreshJob(refreshTagsHandler, refreshProductsHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderPollJob.Start(); err != nil {
		return fmt.Errorf("failed to start order poll job: %w", err)
	}

	if err := jm.catalogRefreshJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.orderPollJob.Stop()
		return fmt.Errorf("failed to start catalog refresh job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.orderPollJob.Stop()
	jm.catalogRefreshJob.Stop()
}
