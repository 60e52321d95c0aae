package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"shipsync/internal/core/application/usecases/commands"
)

// OrderPollJob ingests new platform orders on a fixed schedule and then
// sweeps the ready queue, so approved orders get labeled without an
// operator touching the dashboard.
type OrderPollJob struct {
	ingestHandler commands.IngestOrdersCommandHandler
	sweepHandler  commands.ProcessReadyOrdersCommandHandler
	cron          *cron.Cron
	logger        *slog.Logger
}

// NewOrderPollJob creates the order polling job. The poll runs every two
// minutes, matching the upstream feed's refresh cadence.
func NewOrderPollJob(
	ingestHandler commands.IngestOrdersCommandHandler,
	sweepHandler commands.ProcessReadyOrdersCommandHandler,
	logger *slog.Logger,
) *OrderPollJob {
	return &OrderPollJob{
		ingestHandler: ingestHandler,
		sweepHandler:  sweepHandler,
		cron:          cron.New(cron.WithSeconds()),
		logger:        logger.With("component", "order_poll_job"),
	}
}

// Start schedules the poll every two minutes.
func (j *OrderPollJob) Start() error {
	_, err := j.cron.AddFunc("0 */2 * * * *", func() {
		ctx := context.Background()

		ingested, err := j.ingestHandler.Handle(ctx, commands.NewIngestOrdersCommand())
		if err != nil {
			j.logger.ErrorContext(ctx, "Order ingestion poll failed", "error", err)
			return
		}
		if ingested > 0 {
			j.logger.InfoContext(ctx, "Order ingestion poll complete", "ingested", ingested)
		}

		if err := j.sweepHandler.Handle(ctx, commands.NewProcessReadyOrdersCommand()); err != nil {
			j.logger.ErrorContext(ctx, "Ready order sweep failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order poll job started (running every 2 minutes)")
	return nil
}

// Stop stops the order poll job.
func (j *OrderPollJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order poll job stopped")
}
