package commands

import (
	"errors"

	"servicearea/internal/core/domain/model/kernel"
	"servicearea/internal/pkg/errs"
	"servicearea/internal/pkg/guard"
)

var (
	ErrAddCitySplitCommandIsNotConstructed = errors.New(
		"AddCitySplitCommand must be created via NewAddCitySplitCommand constructor",
	)
	// ErrSplitProvincesAreRequired is returned for an add/remove with no provinces.
	ErrSplitProvincesAreRequired = errs.NewValueIsRequiredError("provinces")
)

// AddCitySplitCommand upgrades provinces to city-granularity routing.
// Adding freezes each province's province-level assignment: the resolver and
// the classifier stop consulting it until the province is removed again.
type AddCitySplitCommand struct { //nolint:recvcheck //using for validation
	provinces []kernel.RegionCode

	guard guard.ConstructorGuard
}

// NewAddCitySplitCommand creates the command from raw caller input.
// At least one province is required; replacing with an empty set is the
// ReplaceCitySplitCommand's job.
func NewAddCitySplitCommand(provinces []string) (AddCitySplitCommand, error) {
	command := AddCitySplitCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setProvinces(provinces); err != nil {
		return AddCitySplitCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AddCitySplitCommand) Validate() error {
	return c.guard.Validate(ErrAddCitySplitCommandIsNotConstructed)
}

// Provinces returns the normalized provinces to add.
func (c AddCitySplitCommand) Provinces() []kernel.RegionCode {
	out := make([]kernel.RegionCode, len(c.provinces))
	copy(out, c.provinces)
	return out
}

func (c *AddCitySplitCommand) setProvinces(raw []string) error {
	provinces, err := kernel.NormalizeRegionCodes(raw)
	if err != nil {
		return err
	}
	if len(provinces) == 0 {
		return ErrSplitProvincesAreRequired
	}

	c.provinces = provinces
	return nil
}
