package commands

import (
	"context"
)

// AddCitySplitCommandHandler applies a split-set add governance action.
type AddCitySplitCommandHandler struct {
	uowFactory  SplitUoWFactory
	gate        *ReplaceGate
	invalidator CoverageInvalidator
}

// NewAddCitySplitCommandHandler creates a handler for split-set additions.
func NewAddCitySplitCommandHandler(
	uowFactory SplitUoWFactory,
	gate *ReplaceGate,
	invalidator CoverageInvalidator,
) AddCitySplitCommandHandler {
	return AddCitySplitCommandHandler{
		uowFactory:  uowFactory,
		gate:        gate,
		invalidator: invalidator,
	}
}

// Handle processes the add command.
func (h *AddCitySplitCommandHandler) Handle(ctx context.Context, cmd AddCitySplitCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	unlock := h.gate.LockSplit()
	defer unlock()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	registry, err := uow.SplitRegistryRepository().Get(ctx)
	if err != nil {
		return err
	}

	if err = registry.Add(cmd.Provinces()); err != nil {
		return err
	}

	if err = uow.SplitRegistryRepository().Save(ctx, registry); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.invalidator.Flush()
	return nil
}
