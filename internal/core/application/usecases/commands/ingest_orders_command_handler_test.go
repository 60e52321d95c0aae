package commands_test

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"shipsync/internal/core/application/usecases/commands"
	"shipsync/internal/core/domain/model/order"
	"shipsync/internal/core/domain/model/platform"
	"shipsync/internal/core/domain/services"
	"shipsync/internal/pkg/errs"
)

func feedOrder(id int64, number string, tags ...int64) platform.Order {
	return platform.Order{
		OrderID:       id,
		OrderNumber:   number,
		CustomerEmail: "buyer@example.com",
		OrderDate:     "2024-05-01T10:00:00",
		Tags:          tags,
		ShipTo:        &platform.Address{Name: "Jane", Street1: "5 Main St", City: "Austin"},
	}
}

func TestIngestOrdersCommandHandler_Handle_InsertsNewOrders(t *testing.T) {
	ctx := context.Background()
	cmd := commands.NewIngestOrdersCommand()

	repo := new(MockOrderRepository)
	tagRepo := new(MockTagRepository)
	productRepo := new(MockProductRepository)
	client := new(MockPlatformClient)
	uow := new(MockUoW)

	var statuses []order.Status
	captureStatus := func(args mock.Arguments) {
		statuses = append(statuses, args.Get(1).(*order.Order).Status())
	}

	mock.InOrder(
		client.On("FetchAwaitingShipment", ctx).
			Return([]platform.Order{
				feedOrder(1, "SO-1"),
				feedOrder(2, "SO-2", 10),
				feedOrder(3, "SO-3"),
			}, nil).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TagRepository").Return(tagRepo).Once(),
		tagRepo.On("GetAll", mock.Anything).
			Return([]platform.Tag{{TagID: 10, Name: services.ReplacementTagName}}, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("GetAll", mock.Anything).Return(nil, nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("AddIfAbsent", mock.Anything, mock.AnythingOfType("*order.Order")).
			Run(captureStatus).Return(true, nil).Once(),
		repo.On("AddIfAbsent", mock.Anything, mock.AnythingOfType("*order.Order")).
			Run(captureStatus).Return(true, nil).Once(),
		repo.On("AddIfAbsent", mock.Anything, mock.AnythingOfType("*order.Order")).
			Run(captureStatus).Return(false, nil).Once(), // already in the ledger
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockIngestUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewIngestOrdersCommandHandler(factory, client, services.NewTagClassifier(), testLogger())
	inserted, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, 2, inserted)
	require.Equal(t, []order.Status{
		order.ReadyForProcessing,
		order.PendingApproval,
		order.ReadyForProcessing,
	}, statuses)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestIngestOrdersCommandHandler_Handle_EmptyFeedSkipsTransaction(t *testing.T) {
	ctx := context.Background()
	cmd := commands.NewIngestOrdersCommand()

	client := new(MockPlatformClient)
	client.On("FetchAwaitingShipment", ctx).Return(nil, nil).Once()

	factory := new(MockIngestUoWFactory)

	h := commands.NewIngestOrdersCommandHandler(factory, client, services.NewTagClassifier(), testLogger())
	inserted, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Zero(t, inserted)
	factory.AssertNotCalled(t, "Create")
}

func TestIngestOrdersCommandHandler_Handle_FetchError(t *testing.T) {
	ctx := context.Background()
	cmd := commands.NewIngestOrdersCommand()

	client := new(MockPlatformClient)
	client.On("FetchAwaitingShipment", ctx).
		Return(nil, errs.NewExternalCallError("list awaiting shipment", io.ErrUnexpectedEOF)).Once()

	factory := new(MockIngestUoWFactory)

	h := commands.NewIngestOrdersCommandHandler(factory, client, services.NewTagClassifier(), testLogger())
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrExternalCall)
}

func TestIngestOrdersCommandHandler_Handle_SkipsUnmappableOrder(t *testing.T) {
	ctx := context.Background()
	cmd := commands.NewIngestOrdersCommand()

	repo := new(MockOrderRepository)
	tagRepo := new(MockTagRepository)
	productRepo := new(MockProductRepository)
	client := new(MockPlatformClient)
	uow := new(MockUoW)

	mock.InOrder(
		client.On("FetchAwaitingShipment", ctx).
			Return([]platform.Order{
				{OrderID: 0, OrderNumber: "missing id"},
				feedOrder(2, "SO-2"),
			}, nil).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TagRepository").Return(tagRepo).Once(),
		tagRepo.On("GetAll", mock.Anything).Return(nil, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("GetAll", mock.Anything).Return(nil, nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("AddIfAbsent", mock.Anything, mock.AnythingOfType("*order.Order")).
			Return(true, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockIngestUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewIngestOrdersCommandHandler(factory, client, services.NewTagClassifier(), testLogger())
	inserted, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, 1, inserted)
	repo.AssertExpectations(t)
}
