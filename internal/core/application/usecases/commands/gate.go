package commands

import (
	"sync"

	"servicearea/internal/core/domain/model/partition"
)

// ReplaceGate serializes replace-set writes per key space. The exclusivity
// check and the commit must be one atomic unit; the gate closes the
// read-check-write race window with a single critical section per kind, so
// two concurrent submissions can never both pass validation while claiming
// an overlapping region. Province and city writes proceed in parallel with
// each other; split-registry mutations take their own section.
//
// One ReplaceGate instance is shared by all command handlers (wired in the
// composition root).
type ReplaceGate struct {
	provinceMu sync.Mutex
	cityMu     sync.Mutex
	splitMu    sync.Mutex
}

// NewReplaceGate creates a gate shared across handlers.
func NewReplaceGate() *ReplaceGate {
	return &ReplaceGate{}
}

// LockKind acquires the critical section for one assignment key space and
// returns the corresponding unlock.
func (g *ReplaceGate) LockKind(kind partition.Kind) func() {
	if kind == partition.KindCity {
		g.cityMu.Lock()
		return g.cityMu.Unlock
	}
	g.provinceMu.Lock()
	return g.provinceMu.Unlock
}

// LockSplit acquires the critical section for split-registry governance.
func (g *ReplaceGate) LockSplit() func() {
	g.splitMu.Lock()
	return g.splitMu.Unlock
}
