package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"servicearea/internal/core/application/usecases/commands"
	"servicearea/internal/core/domain/model/kernel"
	"servicearea/internal/core/domain/model/partition"
	"servicearea/internal/core/domain/model/split"
	"servicearea/internal/core/domain/services"
	"servicearea/internal/core/ports"
)

type MockAssignmentRepository struct{ mock.Mock }

func (m *MockAssignmentRepository) GetTable(
	ctx context.Context, kind partition.Kind,
) (*partition.Table, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partition.Table), args.Error(1)
}

func (m *MockAssignmentRepository) ReplaceOwned(
	ctx context.Context, kind partition.Kind,
	warehouseID kernel.WarehouseID, regions []kernel.RegionCode,
) error {
	args := m.Called(ctx, kind, warehouseID, regions)
	return args.Error(0)
}

type MockSplitRegistryRepository struct{ mock.Mock }

func (m *MockSplitRegistryRepository) Get(ctx context.Context) (*split.Registry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*split.Registry), args.Error(1)
}

func (m *MockSplitRegistryRepository) Save(ctx context.Context, registry *split.Registry) error {
	args := m.Called(ctx, registry)
	return args.Error(0)
}

type MockAuditRepository struct{ mock.Mock }

func (m *MockAuditRepository) Record(ctx context.Context, audit ports.ReplaceAudit) error {
	args := m.Called(ctx, audit)
	return args.Error(0)
}

type MockWarehouseRegistry struct{ mock.Mock }

func (m *MockWarehouseRegistry) Get(
	ctx context.Context, id kernel.WarehouseID,
) (services.ActiveWarehouse, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(services.ActiveWarehouse), args.Error(1)
}

func (m *MockWarehouseRegistry) List(ctx context.Context) ([]services.ActiveWarehouse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]services.ActiveWarehouse), args.Error(1)
}

type MockAssignmentUoW struct{ mock.Mock }

func (m *MockAssignmentUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAssignmentUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAssignmentUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAssignmentUoW) AssignmentRepository() ports.AssignmentRepository {
	args := m.Called()
	return args.Get(0).(ports.AssignmentRepository)
}

func (m *MockAssignmentUoW) AuditRepository() ports.AssignmentAuditRepository {
	args := m.Called()
	return args.Get(0).(ports.AssignmentAuditRepository)
}

func (m *MockAssignmentUoW) WarehouseRegistry() ports.WarehouseRegistry {
	args := m.Called()
	return args.Get(0).(ports.WarehouseRegistry)
}

type MockAssignmentUoWFactory struct{ mock.Mock }

func (m *MockAssignmentUoWFactory) Create() commands.AssignmentUoW {
	args := m.Called()
	return args.Get(0).(commands.AssignmentUoW)
}

type MockSplitUoW struct{ mock.Mock }

func (m *MockSplitUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSplitUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSplitUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSplitUoW) SplitRegistryRepository() ports.SplitRegistryRepository {
	args := m.Called()
	return args.Get(0).(ports.SplitRegistryRepository)
}

type MockSplitUoWFactory struct{ mock.Mock }

func (m *MockSplitUoWFactory) Create() commands.SplitUoW {
	args := m.Called()
	return args.Get(0).(commands.SplitUoW)
}

// CountingInvalidator records cache flushes so tests can assert that commits
// invalidate derived coverage and failed commands do not.
type CountingInvalidator struct{ Flushes int }

func (c *CountingInvalidator) Flush() { c.Flushes++ }

func activeWarehouse(t *testing.T, id int64) services.ActiveWarehouse {
	t.Helper()
	warehouseID, err := kernel.NewWarehouseID(id)
	require.NoError(t, err)
	return services.ActiveWarehouse{ID: warehouseID, Active: true}
}

func emptyTable(t *testing.T, kind partition.Kind) *partition.Table {
	t.Helper()
	table, err := partition.NewTable(kind)
	require.NoError(t, err)
	return table
}
