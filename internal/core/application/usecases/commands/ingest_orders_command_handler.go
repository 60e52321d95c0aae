package commands

import (
	"context"
	"log/slog"
	"time"

	"shipsync/internal/core/domain/model/order"
	"shipsync/internal/core/domain/model/platform"
	"shipsync/internal/core/domain/model/product"
	"shipsync/internal/core/domain/services"
	"shipsync/internal/core/ports"
)

// IngestOrdersCommandHandler synchronizes the live ledger with the
// platform's awaiting-shipment feed. Each fetched order is enriched from
// the product catalog, classified from its tags and inserted unless a
// live order with the same platform id already exists, so repeated polls
// never duplicate or overwrite workflow state.
type IngestOrdersCommandHandler struct {
	uowFactory IngestUoWFactory
	client     ports.PlatformClient
	classifier services.TagClassifier
	logger     *slog.Logger
}

// NewIngestOrdersCommandHandler creates a handler for ingestion passes.
func NewIngestOrdersCommandHandler(
	uowFactory IngestUoWFactory,
	client ports.PlatformClient,
	classifier services.TagClassifier,
	logger *slog.Logger,
) IngestOrdersCommandHandler {
	return IngestOrdersCommandHandler{
		uowFactory: uowFactory,
		client:     client,
		classifier: classifier,
		logger:     logger.With("component", "ingest-orders"),
	}
}

// Handle runs one ingestion pass and returns the number of newly
// inserted orders. Orders that fail domain validation are logged and
// skipped; one bad payload never aborts the pass.
func (h *IngestOrdersCommandHandler) Handle(ctx context.Context, cmd IngestOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	fetched, err := h.client.FetchAwaitingShipment(ctx)
	if err != nil {
		return 0, err
	}
	if len(fetched) == 0 {
		return 0, nil
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	tagNames, err := h.loadTagNames(ctx, uow)
	if err != nil {
		return 0, err
	}

	catalog, err := h.loadCatalog(ctx, uow)
	if err != nil {
		return 0, err
	}

	orderRepo := uow.OrderRepository()
	inserted := 0
	now := time.Now().UTC()

	for i := range fetched {
		aggregate, mapErr := h.mapOrder(&fetched[i], tagNames, catalog, now)
		if mapErr != nil {
			h.logger.Warn("skipping unmappable platform order",
				"orderId", fetched[i].OrderID, "error", mapErr)
			continue
		}

		added, addErr := orderRepo.AddIfAbsent(ctx, aggregate)
		if addErr != nil {
			return 0, addErr
		}
		if added {
			inserted++
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	h.logger.Info("ingestion pass complete", "fetched", len(fetched), "inserted", inserted)
	return inserted, nil
}

func (h *IngestOrdersCommandHandler) mapOrder(
	remote *platform.Order,
	tagNames map[int64]string,
	catalog *product.Index,
	now time.Time,
) (*order.Order, error) {
	shipTo := order.ShipTo{}
	if remote.ShipTo != nil {
		shipTo = order.ShipTo{
			Name:       remote.ShipTo.Name,
			City:       remote.ShipTo.City,
			State:      remote.ShipTo.State,
			PostalCode: remote.ShipTo.PostalCode,
			Country:    remote.ShipTo.Country,
		}
	}

	return order.NewOrder(
		remote.OrderID,
		remote.OrderNumber,
		h.classifier.InitialStatus(remote.Tags, tagNames),
		order.Details{
			CustomerEmail:    remote.Email(),
			ShipTo:           shipTo,
			OrderDate:        remote.PlacedAt(now),
			Total:            remote.Total(),
			RequestedService: remote.RequestedShippingService,
			Items:            services.MapItems(remote.Items, catalog),
			TagIDs:           remote.Tags,
		},
	)
}

func (h *IngestOrdersCommandHandler) loadTagNames(ctx context.Context, uow IngestUoW) (map[int64]string, error) {
	tags, err := uow.TagRepository().GetAll(ctx)
	if err != nil {
		return nil, err
	}

	names := make(map[int64]string, len(tags))
	for _, tag := range tags {
		names[tag.TagID] = tag.Name
	}
	return names, nil
}

func (h *IngestOrdersCommandHandler) loadCatalog(ctx context.Context, uow IngestUoW) (*product.Index, error) {
	products, err := uow.ProductRepository().GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return product.NewIndex(products), nil
}
