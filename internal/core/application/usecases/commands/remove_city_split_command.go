package commands

import (
	"errors"

	"servicearea/internal/core/domain/model/kernel"
	"servicearea/internal/pkg/guard"
)

var ErrRemoveCitySplitCommandIsNotConstructed = errors.New(
	"RemoveCitySplitCommand must be created via NewRemoveCitySplitCommand constructor",
)

// RemoveCitySplitCommand downgrades provinces back to province-granularity
// routing. Removing unfreezes each province's existing province-level
// assignment immediately; nothing is re-created or deleted.
type RemoveCitySplitCommand struct { //nolint:recvcheck //using for validation
	provinces []kernel.RegionCode

	guard guard.ConstructorGuard
}

// NewRemoveCitySplitCommand creates the command from raw caller input.
func NewRemoveCitySplitCommand(provinces []string) (RemoveCitySplitCommand, error) {
	command := RemoveCitySplitCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setProvinces(provinces); err != nil {
		return RemoveCitySplitCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveCitySplitCommand) Validate() error {
	return c.guard.Validate(ErrRemoveCitySplitCommandIsNotConstructed)
}

// Provinces returns the normalized provinces to remove.
func (c RemoveCitySplitCommand) Provinces() []kernel.RegionCode {
	out := make([]kernel.RegionCode, len(c.provinces))
	copy(out, c.provinces)
	return out
}

func (c *RemoveCitySplitCommand) setProvinces(raw []string) error {
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
