package commands

import (
	"context"

	"servicearea/internal/core/domain/model/partition"
	"servicearea/internal/core/ports"
)

// ReplaceServiceProvincesCommandHandler handles the business logic for
// replacing one warehouse's province set. The exclusivity check runs against
// the live committed table inside the province critical section, so a stale
// occupancy read on the caller's side can never produce a lost update.
//
// On conflict the transaction is rolled back untouched and the error carries
// every colliding province with its current owner.
type ReplaceServiceProvincesCommandHandler struct {
	uowFactory  AssignmentUoWFactory
	gate        *ReplaceGate
	invalidator CoverageInvalidator
}

// NewReplaceServiceProvincesCommandHandler creates a handler for province replacement.
func NewReplaceServiceProvincesCommandHandler(
	uowFactory AssignmentUoWFactory,
	gate *ReplaceGate,
	invalidator CoverageInvalidator,
) ReplaceServiceProvincesCommandHandler {
	return ReplaceServiceProvincesCommandHandler{
		uowFactory:  uowFactory,
		gate:        gate,
		invalidator: invalidator,
	}
}

// Handle processes the province replacement command.
func (h *ReplaceServiceProvincesCommandHandler) Handle(ctx context.Context, cmd ReplaceServiceProvincesCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	unlock := h.gate.LockKind(partition.KindProvince)
	defer unlock()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.WarehouseRegistry().Get(ctx, cmd.WarehouseID()); err != nil {
		return err
	}

	table, err := uow.AssignmentRepository().GetTable(ctx, partition.KindProvince)
	if err != nil {
		return err
	}

	outcome, err := table.Replace(cmd.WarehouseID(), cmd.Provinces())
	if err != nil {
		return err
	}

	if err = uow.AssignmentRepository().ReplaceOwned(
		ctx, partition.KindProvince, cmd.WarehouseID(), outcome.Applied,
	); err != nil {
		return err
	}

	if err = uow.AuditRepository().Record(ctx, ports.ReplaceAudit{
		Kind:          partition.KindProvince,
		WarehouseID:   cmd.WarehouseID(),
		AppliedCount:  len(outcome.Applied),
		ReleasedCount: len(outcome.Released),
	}); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.invalidator.Flush()
	return nil
}
