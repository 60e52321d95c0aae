package commands

import (
	"context"
	"log/slog"

	"shipsync/internal/core/application/settings"
	"shipsync/internal/core/domain/model/order"
)

// ProcessReadyOrdersCommandHandler runs the processing sweep. The sweep
// is gated on the runtime auto-processing setting and handles orders
// strictly sequentially; the upstream label API is rate limited.
//
// One failed order is logged and skipped; the sweep always moves on to
// the rest of the queue.
type ProcessReadyOrdersCommandHandler struct {
	uowFactory     OrderUoWFactory
	processHandler ProcessOrderCommandHandler
	settings       *settings.Settings
	logger         *slog.Logger
}

// NewProcessReadyOrdersCommandHandler creates a handler for the
// processing sweep.
func NewProcessReadyOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	processHandler ProcessOrderCommandHandler,
	runtimeSettings *settings.Settings,
	logger *slog.Logger,
) ProcessReadyOrdersCommandHandler {
	return ProcessReadyOrdersCommandHandler{
		uowFactory:     uowFactory,
		processHandler: processHandler,
		settings:       runtimeSettings,
		logger:         logger.With("component", "process-sweep"),
	}
}

// Handle runs one sweep. Returns nil when auto-processing is disabled;
// per-order failures are logged, not returned, so the trigger sites
// (ingestion, approval, the settings toggle) never fail on sweep errors.
func (h *ProcessReadyOrdersCommandHandler) Handle(ctx context.Context, cmd ProcessReadyOrdersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !h.settings.AutoProcessing() {
		return nil
	}

	ready, err := h.listReady(ctx)
	if err != nil {
		return err
	}
	if len(ready) == 0 {
		return nil
	}

	failed := 0
	for _, id := range ready {
		processCmd, cmdErr := NewProcessOrderCommand(id, false)
		if cmdErr != nil {
			h.logger.Error("skipping unprocessable order id", "orderId", id, "error", cmdErr)
			failed++
			continue
		}

		if processErr := h.processHandler.Handle(ctx, processCmd); processErr != nil {
			h.logger.Error("sweep item failed", "orderId", id, "error", processErr)
			failed++
		}
	}

	h.logger.Info("sweep complete", "ready", len(ready), "failed", failed)
	return nil
}

// listReady snapshots the ids of the current Ready for Processing queue.
// Ids, not aggregates: each processing run loads its order inside its own
// transaction.
func (h *ProcessReadyOrdersCommandHandler) listReady(ctx context.Context) ([]int64, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregates, err := uow.OrderRepository().GetAllInStatus(ctx, order.ReadyForProcessing)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(aggregates))
	for _, aggregate := range aggregates {
		ids = append(ids, aggregate.ID())
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return ids, nil
}
