package commands_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"shipsync/internal/core/application/usecases/commands"
	"shipsync/internal/core/domain/model/order"
	"shipsync/internal/core/domain/model/platform"
	"shipsync/internal/core/domain/model/product"
	"shipsync/internal/core/domain/model/shipment"
	"shipsync/internal/core/ports"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) AddIfAbsent(ctx context.Context, o *order.Order) (bool, error) {
	args := m.Called(ctx, o)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockArchiveRepository struct{ mock.Mock }

func (m *MockArchiveRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

type MockTagRepository struct{ mock.Mock }

func (m *MockTagRepository) ReplaceAll(ctx context.Context, tags []platform.Tag) error {
	args := m.Called(ctx, tags)
	return args.Error(0)
}

func (m *MockTagRepository) GetAll(ctx context.Context) ([]platform.Tag, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]platform.Tag), args.Error(1)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Upsert(ctx context.Context, products []*product.Product) error {
	args := m.Called(ctx, products)
	return args.Error(0)
}

func (m *MockProductRepository) GetAll(ctx context.Context) ([]*product.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}

func (m *MockProductRepository) UOMForSKU(ctx context.Context, sku string) (string, error) {
	args := m.Called(ctx, sku)
	return args.String(0), args.Error(1)
}

// MockUoW satisfies every command UoW interface so one mock serves all
// handler tests.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) ArchiveRepository() ports.ArchiveRepository {
	args := m.Called()
	return args.Get(0).(ports.ArchiveRepository)
}

func (m *MockUoW) TagRepository() ports.TagRepository {
	args := m.Called()
	return args.Get(0).(ports.TagRepository)
}

func (m *MockUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockIngestUoWFactory struct{ mock.Mock }

func (m *MockIngestUoWFactory) Create() commands.IngestUoW {
	args := m.Called()
	return args.Get(0).(commands.IngestUoW)
}

type MockProcessUoWFactory struct{ mock.Mock }

func (m *MockProcessUoWFactory) Create() commands.ProcessUoW {
	args := m.Called()
	return args.Get(0).(commands.ProcessUoW)
}

type MockTagUoWFactory struct{ mock.Mock }

func (m *MockTagUoWFactory) Create() commands.TagUoW {
	args := m.Called()
	return args.Get(0).(commands.TagUoW)
}

type MockProductUoWFactory struct{ mock.Mock }

func (m *MockProductUoWFactory) Create() commands.ProductUoW {
	args := m.Called()
	return args.Get(0).(commands.ProductUoW)
}

type MockPlatformClient struct{ mock.Mock }

func (m *MockPlatformClient) FetchAwaitingShipment(ctx context.Context) ([]platform.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]platform.Order), args.Error(1)
}

func (m *MockPlatformClient) FetchOrder(ctx context.Context, id int64) (*platform.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*platform.Order), args.Error(1)
}

func (m *MockPlatformClient) FetchTags(ctx context.Context) ([]platform.Tag, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]platform.Tag), args.Error(1)
}

func (m *MockPlatformClient) FetchProducts(ctx context.Context, page int) (*platform.ProductPage, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*platform.ProductPage), args.Error(1)
}

func (m *MockPlatformClient) CreateLabel(ctx context.Context, request shipment.LabelRequest) ([]string, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type MockSalesOrderSubmitter struct{ mock.Mock }

func (m *MockSalesOrderSubmitter) Submit(ctx context.Context, o *order.Order, remote *platform.Order) (string, error) {
	args := m.Called(ctx, o, remote)
	return args.String(0), args.Error(1)
}
