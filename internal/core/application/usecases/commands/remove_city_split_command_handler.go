package commands

import (
	"context"
)

// RemoveCitySplitCommandHandler applies a split-set remove governance action.
type RemoveCitySplitCommandHandler struct {
	uowFactory  SplitUoWFactory
	gate        *ReplaceGate
	invalidator CoverageInvalidator
}

// NewRemoveCitySplitCommandHandler creates a handler for split-set removals.
func NewRemoveCitySplitCommandHandler(
	uowFactory SplitUoWFactory,
	gate *ReplaceGate,
	invalidator CoverageInvalidator,
) RemoveCitySplitCommandHandler {
	return RemoveCitySplitCommandHandler{
		uowFactory:  uowFactory,
		gate:        gate,
		invalidator: invalidator,
	}
}

// Handle processes the remove command.
func (h *RemoveCitySplitCommandHandler) Handle(ctx context.Context, cmd RemoveCitySplitCommand) error {
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

	if err = registry.Remove(cmd.Provinces()); err != nil {
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
