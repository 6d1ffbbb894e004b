package partition

import (
	"errors"
	"sort"

	"servicearea/internal/core/domain/model/kernel"
	"servicearea/internal/pkg/errs"
	"servicearea/internal/pkg/guard"
)

// Domain errors for partition table operations.
var (
	// ErrTableIsNotConstructed is returned when using an improperly initialized Table.
	ErrTableIsNotConstructed = errors.New("Table must be created via NewTable or RestoreTable constructor")
	// ErrDuplicateAssignment is returned when restoring a table with two owners for one region.
	ErrDuplicateAssignment = errs.NewValueIsInvalidError("assignment set contains a region twice")
)

// Entry is one committed ownership fact: a region and its owning warehouse.
type Entry struct {
	Region kernel.RegionCode
	Owner  kernel.WarehouseID
}

// ReplaceOutcome describes what a successful Replace changed.
// Applied is the warehouse's full desired set as committed; Released lists the
// regions the warehouse owned before and gave up. Both are sorted.
type ReplaceOutcome struct {
	Applied  []kernel.RegionCode
	Released []kernel.RegionCode
}

// Table is the aggregate root for one exclusive-ownership key space.
// It holds the committed region→warehouse map for a single Kind and is the
// only place that map is mutated.
//
// Invariant: a region code maps to at most one warehouse at any time.
// The invariant is enforced inside Replace: the desired set is checked
// against the committed state and either everything applies or nothing does,
// with every colliding region reported at once.
//
// A Table is not safe for concurrent use; callers serialize writes per kind
// (see the application layer's replace gate).
type Table struct {
	kind   Kind
	owners map[string]Entry
	guard  guard.ConstructorGuard
}

// NewTable creates an empty ownership table for the given key space.
func NewTable(kind Kind) (*Table, error) {
	if err := kind.Validate(); err != nil {
		return nil, err
	}

	return &Table{
		kind:   kind,
		owners: make(map[string]Entry),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// RestoreTable reconstructs a table from persisted assignment rows.
// Every entry must be valid and no region may appear twice; storage is the
// source of truth and a duplicate means the store itself is corrupt.
func RestoreTable(kind Kind, entries []Entry) (*Table, error) {
	table, err := NewTable(kind)
	if err != nil {
		return nil, err
	}

	for _, e := range entries {
		if err := errors.Join(e.Region.Validate(), e.Owner.Validate()); err != nil {
			return nil, err
		}
		if _, exists := table.owners[e.Region.String()]; exists {
			return nil, ErrDuplicateAssignment
		}
		table.owners[e.Region.String()] = e
	}

	return table, nil
}

// Validate checks that the table was built through a constructor.
func (t *Table) Validate() error {
	if t == nil {
		return ErrTableIsNotConstructed
	}
	return t.guard.Validate(ErrTableIsNotConstructed)
}

// Kind returns the key space this table partitions.
func (t *Table) Kind() Kind {
	return t.kind
}

// Replace commits the full desired region set for one warehouse.
//
// The operation is all-or-nothing against the current committed state:
//   - every desired region owned by a different warehouse is collected into
//     a ConflictError and nothing changes;
//   - otherwise every desired region becomes owned by warehouseID, every
//     region previously owned by warehouseID but absent from the desired set
//     is released, and all other warehouses are untouched.
//
// An empty desired set means the warehouse now owns nothing in this key
// space. Resubmitting an already-committed set succeeds and changes nothing.
func (t *Table) Replace(warehouseID kernel.WarehouseID, desired []kernel.RegionCode) (ReplaceOutcome, error) {
	if err := t.Validate(); err != nil {
		return ReplaceOutcome{}, err
	}
	if err := warehouseID.Validate(); err != nil {
		return ReplaceOutcome{}, err
	}

	desiredSet := make(map[string]kernel.RegionCode, len(desired))
	var conflicts []Conflict
	for _, region := range desired {
		if err := region.Validate(); err != nil {
			return ReplaceOutcome{}, err
		}
		desiredSet[region.String()] = region

		if current, ok := t.owners[region.String()]; ok && !current.Owner.IsEqual(warehouseID) {
			conflicts = append(conflicts, Conflict{Region: region, Owner: current.Owner})
		}
	}

	if len(conflicts) > 0 {
		sort.Slice(conflicts, func(i, j int) bool {
			return conflicts[i].Region.String() < conflicts[j].Region.String()
		})
		return ReplaceOutcome{}, NewConflictError(t.kind, conflicts)
	}

	var released []kernel.RegionCode
	for code, entry := range t.owners {
		if !entry.Owner.IsEqual(warehouseID) {
			continue
		}
		if _, keep := desiredSet[code]; !keep {
			released = append(released, entry.Region)
			delete(t.owners, code)
		}
	}

	applied := make([]kernel.RegionCode, 0, len(desiredSet))
	for _, region := range desiredSet {
		t.owners[region.String()] = Entry{Region: region, Owner: warehouseID}
		applied = append(applied, region)
	}

	sortRegionCodes(applied)
	sortRegionCodes(released)
	return ReplaceOutcome{Applied: applied, Released: released}, nil
}

// Owner returns the warehouse owning a region, if any.
func (t *Table) Owner(region kernel.RegionCode) (kernel.WarehouseID, bool) {
	entry, ok := t.owners[region.String()]
	if !ok {
		return kernel.WarehouseID{}, false
	}
	return entry.Owner, true
}

// OwnedBy returns the sorted region set currently owned by a warehouse.
func (t *Table) OwnedBy(warehouseID kernel.WarehouseID) []kernel.RegionCode {
	out := make([]kernel.RegionCode, 0)
	for _, entry := range t.owners {
		if entry.Owner.IsEqual(warehouseID) {
			out = append(out, entry.Region)
		}
	}
	sortRegionCodes(out)
	return out
}

// Occupancy returns the full region→owner projection, sorted by region code.
// The returned slice is a copy; mutating it does not touch the table.
func (t *Table) Occupancy() []Entry {
	out := make([]Entry, 0, len(t.owners))
	for _, entry := range t.owners {
		out = append(out, entry)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Region.String() < out[j].Region.String()
	})
	return out
}

// Len returns the number of committed assignments.
func (t *Table) Len() int {
	return len(t.owners)
}

func sortRegionCodes(codes []kernel.RegionCode) {
	sort.Slice(codes, func(i, j int) bool { return codes[i].String() < codes[j].String() })
}
