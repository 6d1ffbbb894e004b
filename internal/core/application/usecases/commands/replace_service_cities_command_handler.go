package commands

import (
	"context"

	"servicearea/internal/core/domain/model/partition"
	"servicearea/internal/core/ports"
)

// ReplaceServiceCitiesCommandHandler handles the business logic for replacing
// one warehouse's city set. City writes serialize on their own critical
// section and may run in parallel with province writes.
type ReplaceServiceCitiesCommandHandler struct {
	uowFactory  AssignmentUoWFactory
	gate        *ReplaceGate
	invalidator CoverageInvalidator
}

// NewReplaceServiceCitiesCommandHandler creates a handler for city replacement.
func NewReplaceServiceCitiesCommandHandler(
	uowFactory AssignmentUoWFactory,
	gate *ReplaceGate,
	invalidator CoverageInvalidator,
) ReplaceServiceCitiesCommandHandler {
	return ReplaceServiceCitiesCommandHandler{
		uowFactory:  uowFactory,
		gate:        gate,
		invalidator: invalidator,
	}
}

// Handle processes the city replacement command.
func (h *ReplaceServiceCitiesCommandHandler) Handle(ctx context.Context, cmd ReplaceServiceCitiesCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	unlock := h.gate.LockKind(partition.KindCity)
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

	table, err := uow.AssignmentRepository().GetTable(ctx, partition.KindCity)
	if err != nil {
		return err
	}

	outcome, err := table.Replace(cmd.WarehouseID(), cmd.Cities())
	if err != nil {
		return err
	}

	if err = uow.AssignmentRepository().ReplaceOwned(
		ctx, partition.KindCity, cmd.WarehouseID(), outcome.Applied,
	); err != nil {
		return err
	}

	if err = uow.AuditRepository().Record(ctx, ports.ReplaceAudit{
		Kind:          partition.KindCity,
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
