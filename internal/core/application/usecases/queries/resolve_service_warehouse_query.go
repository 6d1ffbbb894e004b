package queries

import (
	"errors"
	"strings"

	"servicearea/internal/core/domain/model/kernel"
	"servicearea/internal/pkg/guard"
)

var ErrResolveServiceWarehouseQueryIsNotConstructed = errors.New(
	"ResolveServiceWarehouseQuery must be created via NewResolveServiceWarehouseQuery constructor",
)

// ResolveServiceWarehouseQuery asks which warehouse serves a destination.
// Province is required; city may be empty, in which case a split province
// can only resolve to no service.
type ResolveServiceWarehouseQuery struct { //nolint:recvcheck //using for validation
	province kernel.RegionCode
	city     kernel.RegionCode

	guard guard.ConstructorGuard
}

// NewResolveServiceWarehouseQuery creates a resolve query from raw caller input.
func NewResolveServiceWarehouseQuery(province, city string) (ResolveServiceWarehouseQuery, error) {
	query := ResolveServiceWarehouseQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setProvince(province),
		query.setCity(city),
	); err != nil {
		return ResolveServiceWarehouseQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q ResolveServiceWarehouseQuery) Validate() error {
	return q.guard.Validate(ErrResolveServiceWarehouseQueryIsNotConstructed)
}

// Province returns the destination province.
func (q ResolveServiceWarehouseQuery) Province() kernel.RegionCode {
	return q.province
}

// City returns the destination city, possibly zero.
func (q ResolveServiceWarehouseQuery) City() kernel.RegionCode {
	return q.city
}

func (q *ResolveServiceWarehouseQuery) setProvince(raw string) error {
	province, err := kernel.NewRegionCode(raw)
	if err != nil {
		return err
	}

	q.province = province
	return nil
}

func (q *ResolveServiceWarehouseQuery) setCity(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	city, err := kernel.NewRegionCode(raw)
	if err != nil {
		return err
	}

	q.city = city
	return nil
}
