package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"shipsync/internal/core/application/usecases/commands"
	"shipsync/internal/core/domain/model/order"
	"shipsync/internal/pkg/errs"
)

func storedOrder(t *testing.T, id int64, status order.Status) *order.Order {
	t.Helper()
	aggregate, err := order.NewOrder(id, "SO-42", status, order.Details{
		CustomerEmail: "buyer@example.com",
		OrderDate:     time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		Total:         decimal.NewFromInt(25),
	})
	require.NoError(t, err)
	return aggregate
}

func TestApproveOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewApproveOrderCommand(42)
	require.NoError(t, err)

	aggregate := storedOrder(t, 42, order.PendingApproval)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, int64(42)).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewApproveOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	require.Equal(t, order.ReadyForProcessing, aggregate.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestApproveOrderCommandHandler_Handle_AlreadyReadyIsNoOp(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewApproveOrderCommand(42)
	require.NoError(t, err)

	aggregate := storedOrder(t, 42, order.ReadyForProcessing)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, int64(42)).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewApproveOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	require.Equal(t, order.ReadyForProcessing, aggregate.Status())
}

func TestApproveOrderCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewApproveOrderCommand(404)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, int64(404)).
			Return(nil, errs.NewObjectNotFoundError("order", int64(404))).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewApproveOrderCommandHandler(factory)
	handleErr := h.Handle(ctx, cmd)
	require.Error(t, handleErr)
	require.ErrorIs(t, handleErr, errs.ErrObjectNotFound)
}

func TestApproveOrderCommandHandler_Handle_InvalidTransition(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewApproveOrderCommand(42)
	require.NoError(t, err)

	aggregate := storedOrder(t, 42, order.Processing)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, int64(42)).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewApproveOrderCommandHandler(factory)
	require.Error(t, h.Handle(ctx, cmd))
	require.Equal(t, order.Processing, aggregate.Status())
	repo.AssertExpectations(t)
}

func TestApproveOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := context.Background()
	var cmd commands.ApproveOrderCommand // not constructed properly

	factory := new(MockOrderUoWFactory)
	h := commands.NewApproveOrderCommandHandler(factory)
	require.Error(t, h.Handle(ctx, cmd))
}
