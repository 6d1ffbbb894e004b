package commands

import (
	"context"
)

// ReplaceCitySplitCommandHandler swaps the whole split set in one governance
// action. Split mutations serialize on their own critical section; they do
// not contend with in-flight province or city replaces beyond atomic
// visibility of the committed sets.
type ReplaceCitySplitCommandHandler struct {
	uowFactory  SplitUoWFactory
	gate        *ReplaceGate
	invalidator CoverageInvalidator
}

// NewReplaceCitySplitCommandHandler creates a handler for split-set replacement.
func NewReplaceCitySplitCommandHandler(
	uowFactory SplitUoWFactory,
	gate *ReplaceGate,
	invalidator CoverageInvalidator,
) ReplaceCitySplitCommandHandler {
	return ReplaceCitySplitCommandHandler{
		uowFactory:  uowFactory,
		gate:        gate,
		invalidator: invalidator,
	}
}

// Handle processes the split-set replacement command.
func (h *ReplaceCitySplitCommandHandler) Handle(ctx context.Context, cmd ReplaceCitySplitCommand) error {
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

	if err = registry.Replace(cmd.Provinces()); err != nil {
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
