package commands

import (
	"context"
	"log/slog"

	"shipsync/internal/core/domain/model/order"
	"shipsync/internal/core/domain/model/platform"
	"shipsync/internal/core/domain/model/product"
	"shipsync/internal/core/domain/model/shipment"
	"shipsync/internal/core/domain/services"
	"shipsync/internal/core/ports"
)

// ProcessOrderCommandHandler runs one order through the full processing
// pipeline:
//
//  1. reserve the order (Ready for Processing → Processing)
//  2. fetch the authoritative platform detail
//  3. build the shipment request and purchase the label
//  4. submit the ERP sales order
//  5. mark Synced and move the row to the archive
//
// The archive insert and the live-row delete run in one transaction.
// A failure before the ERP submission rolls everything back, leaving the
// order in Ready for Processing; an ERP failure persists the Error status
// and the already-purchased label URLs for operator attention.
type ProcessOrderCommandHandler struct {
	uowFactory ProcessUoWFactory
	client     ports.PlatformClient
	builder    services.ShipmentBuilder
	submitter  ports.SalesOrderSubmitter
	logger     *slog.Logger
}

// NewProcessOrderCommandHandler creates a handler for order processing.
func NewProcessOrderCommandHandler(
	uowFactory ProcessUoWFactory,
	client ports.PlatformClient,
	builder services.ShipmentBuilder,
	submitter ports.SalesOrderSubmitter,
	logger *slog.Logger,
) ProcessOrderCommandHandler {
	return ProcessOrderCommandHandler{
		uowFactory: uowFactory,
		client:     client,
		builder:    builder,
		submitter:  submitter,
		logger:     logger.With("component", "process-order"),
	}
}

// Handle processes one order. Only orders in Ready for Processing are
// accepted; anything else fails the status transition, which makes
// concurrent processing attempts on the same order safe.
func (h *ProcessOrderCommandHandler) Handle(ctx context.Context, cmd ProcessOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.BeginProcessing(); err != nil {
		return err
	}

	remote, err := h.client.FetchOrder(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	items, err := h.resolveItems(ctx, uow, aggregate, remote)
	if err != nil {
		return err
	}

	shipmentRequest, err := h.builder.Build(remote, aggregate, items, cmd.Multipack())
	if err != nil {
		return err
	}

	labelURLs, err := h.client.CreateLabel(ctx, shipment.LabelRequest{Shipment: shipmentRequest})
	if err != nil {
		return err
	}
	aggregate.AttachLabelURLs(labelURLs)

	reference, err := h.submitter.Submit(ctx, aggregate, remote)
	if err != nil {
		return h.persistFailure(ctx, uow, aggregate, err)
	}
	aggregate.SetERPReference(reference)

	if err = aggregate.MarkSynced(); err != nil {
		return err
	}

	if err = uow.ArchiveRepository().Add(ctx, aggregate); err != nil {
		return err
	}
	if err = orderRepo.Delete(ctx, aggregate.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.Info("order processed",
		"orderId", aggregate.ID(),
		"orderNumber", aggregate.OrderNumber(),
		"labels", len(labelURLs),
		"erpReference", reference)
	return nil
}

// resolveItems prefers the authoritative remote item list over the stored
// snapshot, enriching remote items from the product catalog the same way
// ingestion does. The snapshot is already enriched.
func (h *ProcessOrderCommandHandler) resolveItems(
	ctx context.Context,
	uow ProcessUoW,
	aggregate *order.Order,
	remote *platform.Order,
) ([]order.Item, error) {
	if remote == nil || len(remote.Items) == 0 {
		return aggregate.Items(), nil
	}

	products, err := uow.ProductRepository().GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return services.MapItems(remote.Items, product.NewIndex(products)), nil
}

// persistFailure records the Error status and any purchased label URLs,
// committing them despite the failed submission so the order surfaces on
// the dashboard instead of silently reverting to Ready.
func (h *ProcessOrderCommandHandler) persistFailure(
	ctx context.Context,
	uow ProcessUoW,
	aggregate *order.Order,
	cause error,
) error {
	if markErr := aggregate.MarkError(); markErr != nil {
		return markErr
	}
	if updateErr := uow.OrderRepository().Update(ctx, aggregate); updateErr != nil {
		return updateErr
	}
	if commitErr := uow.Commit(ctx); commitErr != nil {
		return commitErr
	}

	h.logger.Error("sales order submission failed",
		"orderId", aggregate.ID(), "error", cause)
	return cause
}
