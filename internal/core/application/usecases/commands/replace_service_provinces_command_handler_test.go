package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"servicearea/internal/core/application/usecases/commands"
	"servicearea/internal/core/domain/model/partition"
	"servicearea/internal/core/domain/services"
	"servicearea/internal/pkg/errs"
)

func TestReplaceServiceProvincesCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewReplaceServiceProvincesCommand(1, []string{"浙江省", "江苏省"})
	require.NoError(t, err)

	registry := new(MockWarehouseRegistry)
	repo := new(MockAssignmentRepository)
	audit := new(MockAuditRepository)
	uow := new(MockAssignmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WarehouseRegistry").Return(registry).Once(),
		registry.On("Get", ctx, cmd.WarehouseID()).Return(activeWarehouse(t, 1), nil).Once(),
		uow.On("AssignmentRepository").Return(repo).Once(),
		repo.On("GetTable", ctx, partition.KindProvince).
			Return(emptyTable(t, partition.KindProvince), nil).Once(),
		uow.On("AssignmentRepository").Return(repo).Once(),
		repo.On("ReplaceOwned", ctx, partition.KindProvince, cmd.WarehouseID(), cmd.Provinces()).
			Return(nil).Once(),
		uow.On("AuditRepository").Return(audit).Once(),
		audit.On("Record", ctx, mock.AnythingOfType("ports.ReplaceAudit")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	invalidator := new(CountingInvalidator)
	h := commands.NewReplaceServiceProvincesCommandHandler(factory, commands.NewReplaceGate(), invalidator)

	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 1, invalidator.Flushes)
	registry.AssertExpectations(t)
	repo.AssertExpectations(t)
	audit.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestReplaceServiceProvincesCommandHandler_Handle_Conflict(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewReplaceServiceProvincesCommand(1, []string{"浙江省"})
	require.NoError(t, err)

	// 浙江省 is already owned by warehouse 2.
	occupied := emptyTable(t, partition.KindProvince)
	otherCmd, err := commands.NewReplaceServiceProvincesCommand(2, []string{"浙江省"})
	require.NoError(t, err)
	_, err = occupied.Replace(otherCmd.WarehouseID(), otherCmd.Provinces())
	require.NoError(t, err)

	registry := new(MockWarehouseRegistry)
	repo := new(MockAssignmentRepository)
	uow := new(MockAssignmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WarehouseRegistry").Return(registry).Once(),
		registry.On("Get", ctx, cmd.WarehouseID()).Return(activeWarehouse(t, 1), nil).Once(),
		uow.On("AssignmentRepository").Return(repo).Once(),
		repo.On("GetTable", ctx, partition.KindProvince).Return(occupied, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	invalidator := new(CountingInvalidator)
	h := commands.NewReplaceServiceProvincesCommandHandler(factory, commands.NewReplaceGate(), invalidator)

	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, partition.ErrPartitionConflict)

	var conflictErr *partition.ConflictError
	require.ErrorAs(t, err, &conflictErr)
	require.Len(t, conflictErr.Conflicts, 1)
	assert.Equal(t, "浙江省", conflictErr.Conflicts[0].Region.String())
	assert.Equal(t, int64(2), conflictErr.Conflicts[0].Owner.Int64())

	assert.Equal(t, 0, invalidator.Flushes)
	uow.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestReplaceServiceProvincesCommandHandler_Handle_WarehouseNotFound(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewReplaceServiceProvincesCommand(99, []string{"浙江省"})
	require.NoError(t, err)

	registry := new(MockWarehouseRegistry)
	uow := new(MockAssignmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WarehouseRegistry").Return(registry).Once(),
		registry.On("Get", ctx, cmd.WarehouseID()).
			Return(services.ActiveWarehouse{}, errs.NewObjectNotFoundError("warehouseID", int64(99))).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	invalidator := new(CountingInvalidator)
	h := commands.NewReplaceServiceProvincesCommandHandler(factory, commands.NewReplaceGate(), invalidator)

	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Equal(t, 0, invalidator.Flushes)
	uow.AssertExpectations(t)
}

func TestReplaceServiceProvincesCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	var cmd commands.ReplaceServiceProvincesCommand // not constructed properly

	factory := new(MockAssignmentUoWFactory)
	h := commands.NewReplaceServiceProvincesCommandHandler(
		factory, commands.NewReplaceGate(), new(CountingInvalidator),
	)

	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
