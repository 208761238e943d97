package commands_test

import (
	"context"
	"testing"

	"parcelflow/internal/core/application/usecases/commands"
	"parcelflow/internal/core/domain/model/carrier"
	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/core/domain/model/request"
	"parcelflow/internal/core/domain/model/task"
	"parcelflow/internal/core/domain/model/warehouse"
	"parcelflow/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRequestRepository struct{ mock.Mock }

func (m *MockRequestRepository) Add(ctx context.Context, r *request.Request) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRequestRepository) Update(ctx context.Context, r *request.Request) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRequestRepository) Get(ctx context.Context, id kernel.UUID) (*request.Request, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*request.Request), args.Error(1)
}

type MockTaskRepository struct{ mock.Mock }

func (m *MockTaskRepository) Add(ctx context.Context, t *task.Task) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTaskRepository) Update(ctx context.Context, t *task.Task) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTaskRepository) Get(ctx context.Context, id kernel.UUID) (*task.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*task.Task), args.Error(1)
}

func (m *MockTaskRepository) GetByRequestID(ctx context.Context, requestID kernel.UUID) ([]*task.Task, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*task.Task), args.Error(1)
}

func (m *MockTaskRepository) GetAllUnclaimed(ctx context.Context) ([]*task.Task, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*task.Task), args.Error(1)
}

func (m *MockTaskRepository) GetStoredInWarehouse(ctx context.Context, warehouseID kernel.UUID) ([]*task.Task, error) {
	args := m.Called(ctx, warehouseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*task.Task), args.Error(1)
}

type MockWarehouseRepository struct{ mock.Mock }

func (m *MockWarehouseRepository) Add(ctx context.Context, w *warehouse.Warehouse) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}

func (m *MockWarehouseRepository) Update(ctx context.Context, w *warehouse.Warehouse) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}

func (m *MockWarehouseRepository) Get(ctx context.Context, id kernel.UUID) (*warehouse.Warehouse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*warehouse.Warehouse), args.Error(1)
}

func (m *MockWarehouseRepository) GetAllActive(ctx context.Context) ([]*warehouse.Warehouse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*warehouse.Warehouse), args.Error(1)
}

type MockCarrierRepository struct{ mock.Mock }

func (m *MockCarrierRepository) Add(ctx context.Context, c *carrier.Carrier) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCarrierRepository) Update(ctx context.Context, c *carrier.Carrier) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCarrierRepository) Get(ctx context.Context, id kernel.UUID) (*carrier.Carrier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*carrier.Carrier), args.Error(1)
}

type MockClaimUoW struct{ mock.Mock }

func (m *MockClaimUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockClaimUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockClaimUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockClaimUoW) RequestRepository() ports.RequestRepository {
	args := m.Called()
	return args.Get(0).(ports.RequestRepository)
}

func (m *MockClaimUoW) TaskRepository() ports.TaskRepository {
	args := m.Called()
	return args.Get(0).(ports.TaskRepository)
}

func (m *MockClaimUoW) WarehouseRepository() ports.WarehouseRepository {
	args := m.Called()
	return args.Get(0).(ports.WarehouseRepository)
}

func (m *MockClaimUoW) CarrierRepository() ports.CarrierRepository {
	args := m.Called()
	return args.Get(0).(ports.CarrierRepository)
}

type MockClaimUoWFactory struct{ mock.Mock }

func (m *MockClaimUoWFactory) Create() commands.ClaimUoW {
	args := m.Called()
	return args.Get(0).(commands.ClaimUoW)
}

type MockTaskUoW struct{ mock.Mock }

func (m *MockTaskUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTaskUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTaskUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTaskUoW) TaskRepository() ports.TaskRepository {
	args := m.Called()
	return args.Get(0).(ports.TaskRepository)
}

func (m *MockTaskUoW) RequestRepository() ports.RequestRepository {
	args := m.Called()
	return args.Get(0).(ports.RequestRepository)
}

type MockTaskUoWFactory struct{ mock.Mock }

func (m *MockTaskUoWFactory) Create() commands.TaskUoW {
	args := m.Called()
	return args.Get(0).(commands.TaskUoW)
}

type MockRequestUoW struct{ mock.Mock }

func (m *MockRequestUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRequestUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRequestUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRequestUoW) RequestRepository() ports.RequestRepository {
	args := m.Called()
	return args.Get(0).(ports.RequestRepository)
}

type MockRequestUoWFactory struct{ mock.Mock }

func (m *MockRequestUoWFactory) Create() commands.RequestUoW {
	args := m.Called()
	return args.Get(0).(commands.RequestUoW)
}

// Fixture helpers shared by the handler tests.

func fixtureRequest(t *testing.T) *request.Request {
	t.Helper()
	source, err := request.NewIndividualSource(kernel.NewUUID())
	require.NoError(t, err)
	origin, err := kernel.NewAddress("10 Rue A", "Paris")
	require.NoError(t, err)
	destination, err := kernel.NewAddress("5 Rue B", "Lyon")
	require.NoError(t, err)
	price, err := kernel.NewPrice(30.0)
	require.NoError(t, err)

	req, err := request.NewRequest(kernel.NewUUID(), source, origin, destination, price, nil, "boxes")
	require.NoError(t, err)
	return req
}

func fixtureCarrier(t *testing.T) *carrier.Carrier {
	t.Helper()
	c, err := carrier.RestoreCarrier(kernel.NewUUID(), "Jean Porter", true)
	require.NoError(t, err)
	return c
}

func fixtureWarehouse(t *testing.T, city string) *warehouse.Warehouse {
	t.Helper()
	address, err := kernel.NewAddress("1 Rue des Docks", city)
	require.NoError(t, err)
	w, err := warehouse.NewWarehouse(kernel.NewUUID(), "Hub "+city, address)
	require.NoError(t, err)
	return w
}

func fixtureDropoff(t *testing.T, req *request.Request, w *warehouse.Warehouse) *task.Task {
	t.Helper()
	carrierID := kernel.NewUUID()
	dropoff, err := task.NewSegmentTask(
		kernel.NewUUID(), req.ID(), &carrierID, w.ID(),
		task.SegmentDropoff, req.Origin(), w.Address(), req.Price(), "A1B2C3D4")
	require.NoError(t, err)
	return dropoff
}

func fixtureUnclaimedPickup(t *testing.T, req *request.Request, w *warehouse.Warehouse) *task.Task {
	t.Helper()
	pickup, err := task.NewSegmentTask(
		kernel.NewUUID(), req.ID(), nil, w.ID(),
		task.SegmentPickup, w.Address(), req.Destination(), req.Price(), "E5F6G7H8")
	require.NoError(t, err)
	return pickup
}
