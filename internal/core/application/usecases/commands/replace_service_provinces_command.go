package commands

import (
	"errors"

	"servicearea/internal/core/domain/model/kernel"
	"servicearea/internal/pkg/guard"
)

var ErrReplaceServiceProvincesCommandIsNotConstructed = errors.New(
	"ReplaceServiceProvincesCommand must be created via NewReplaceServiceProvincesCommand constructor",
)

// ReplaceServiceProvincesCommand submits the full desired province set for
// one warehouse. An empty set means the warehouse releases every province it
// owns. Input is normalized in the constructor: trimmed, deduplicated,
// sorted; empty codes are a validation error.
type ReplaceServiceProvincesCommand struct { //nolint:recvcheck //using for validation
	warehouseID kernel.WarehouseID
	provinces   []kernel.RegionCode

	guard guard.ConstructorGuard
}

// NewReplaceServiceProvincesCommand creates a replace command from raw caller input.
func NewReplaceServiceProvincesCommand(warehouseID int64, provinces []string) (ReplaceServiceProvincesCommand, error) {
	command := ReplaceServiceProvincesCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setWarehouseID(warehouseID),
		command.setProvinces(provinces),
	); err != nil {
		return ReplaceServiceProvincesCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ReplaceServiceProvincesCommand) Validate() error {
	return c.guard.Validate(ErrReplaceServiceProvincesCommandIsNotConstructed)
}

// WarehouseID returns the target warehouse.
func (c ReplaceServiceProvincesCommand) WarehouseID() kernel.WarehouseID {
	return c.warehouseID
}

// Provinces returns the normalized desired province set.
func (c ReplaceServiceProvincesCommand) Provinces() []kernel.RegionCode {
	out := make([]kernel.RegionCode, len(c.provinces))
	copy(out, c.provinces)
	return out
}

// ProvinceStrings returns the normalized set as plain strings for responses.
func (c ReplaceServiceProvincesCommand) ProvinceStrings() []string {
	return kernel.RegionCodeStrings(c.provinces)
}

func (c *ReplaceServiceProvincesCommand) setWarehouseID(raw int64) error {
	id, err := kernel.NewWarehouseID(raw)
	if err != nil {
		return err
	}

	c.warehouseID = id
	return nil
}

func (c *ReplaceServiceProvincesCommand) setProvinces(raw []string) error {
	provinces, err := kernel.NormalizeRegionCodes(raw)
	if err != nil {
		return err
	}

	c.provinces = provinces
	return nil
}
