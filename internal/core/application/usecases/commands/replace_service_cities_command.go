package commands

import (
	"errors"

	"servicearea/internal/core/domain/model/kernel"
	"servicearea/internal/pkg/guard"
)

var ErrReplaceServiceCitiesCommandIsNotConstructed = errors.New(
	"ReplaceServiceCitiesCommand must be created via NewReplaceServiceCitiesCommand constructor",
)

// ReplaceServiceCitiesCommand submits the full desired city set for one
// warehouse. City codes live in their own key space, independent from
// provinces; the same normalization and exclusivity rules apply.
type ReplaceServiceCitiesCommand struct { //nolint:recvcheck //using for validation
	warehouseID kernel.WarehouseID
	cities      []kernel.RegionCode

	guard guard.ConstructorGuard
}

// NewReplaceServiceCitiesCommand creates a replace command from raw caller input.
func NewReplaceServiceCitiesCommand(warehouseID int64, cities []string) (ReplaceServiceCitiesCommand, error) {
	command := ReplaceServiceCitiesCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setWarehouseID(warehouseID),
		command.setCities(cities),
	); err != nil {
		return ReplaceServiceCitiesCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ReplaceServiceCitiesCommand) Validate() error {
	return c.guard.Validate(ErrReplaceServiceCitiesCommandIsNotConstructed)
}

// WarehouseID returns the target warehouse.
func (c ReplaceServiceCitiesCommand) WarehouseID() kernel.WarehouseID {
	return c.warehouseID
}

// Cities returns the normalized desired city set.
func (c ReplaceServiceCitiesCommand) Cities() []kernel.RegionCode {
	out := make([]kernel.RegionCode, len(c.cities))
	copy(out, c.cities)
	return out
}

// CityStrings returns the normalized set as plain strings for responses.
func (c ReplaceServiceCitiesCommand) CityStrings() []string {
	return kernel.RegionCodeStrings(c.cities)
}

func (c *ReplaceServiceCitiesCommand) setWarehouseID(raw int64) error {
	id, err := kernel.NewWarehouseID(raw)
	if err != nil {
		return err
	}

	c.warehouseID = id
	return nil
}

func (c *ReplaceServiceCitiesCommand) setCities(raw []string) error {
	cities, err := kernel.NormalizeRegionCodes(raw)
	if err != nil {
		return err
	}

	c.cities = cities
	return nil
}
