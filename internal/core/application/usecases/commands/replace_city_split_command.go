package commands

import (
	"errors"

	"servicearea/internal/core/domain/model/kernel"
	"servicearea/internal/pkg/guard"
)

var ErrReplaceCitySplitCommandIsNotConstructed = errors.New(
	"ReplaceCitySplitCommand must be created via NewReplaceCitySplitCommand constructor",
)

// ReplaceCitySplitCommand swaps the whole split-province set. Provinces in
// the committed set switch to city-granularity routing; provinces removed
// from it unfreeze their province-level assignment immediately. The set may
// be empty.
type ReplaceCitySplitCommand struct { //nolint:recvcheck //using for validation
	provinces []kernel.RegionCode

	guard guard.ConstructorGuard
}

// NewReplaceCitySplitCommand creates the command from raw caller input.
func NewReplaceCitySplitCommand(provinces []string) (ReplaceCitySplitCommand, error) {
	command := ReplaceCitySplitCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setProvinces(provinces); err != nil {
		return ReplaceCitySplitCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ReplaceCitySplitCommand) Validate() error {
	return c.guard.Validate(ErrReplaceCitySplitCommandIsNotConstructed)
}

// Provinces returns the normalized desired split set.
func (c ReplaceCitySplitCommand) Provinces() []kernel.RegionCode {
	out := make([]kernel.RegionCode, len(c.provinces))
	copy(out, c.provinces)
	return out
}

// ProvinceStrings returns the normalized set as plain strings for responses.
func (c ReplaceCitySplitCommand) ProvinceStrings() []string {
	return kernel.RegionCodeStrings(c.provinces)
}

func (c *ReplaceCitySplitCommand) setProvinces(raw []string) error {
	provinces, err := kernel.NormalizeRegionCodes(raw)
	if err != nil {
		return err
	}

	c.provinces = provinces
	return nil
}
