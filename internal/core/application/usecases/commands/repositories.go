// Package commands contains business operations that modify partition state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, serialization through
// the replace gate, transaction management, and persistence.
package commands

import (
	"context"

	"servicearea/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// AssignmentRepoFactory provides access to the assignment repository within a transaction.
	AssignmentRepoFactory interface {
		AssignmentRepository() ports.AssignmentRepository
	}

	// SplitRepoFactory provides access to the split-registry repository within a transaction.
	SplitRepoFactory interface {
		SplitRegistryRepository() ports.SplitRegistryRepository
	}

	// AuditRepoFactory provides access to the audit repository within a transaction.
	AuditRepoFactory interface {
		AuditRepository() ports.AssignmentAuditRepository
	}

	// RegistryViewFactory provides the read-only warehouse registry within a transaction.
	RegistryViewFactory interface {
		WarehouseRegistry() ports.WarehouseRegistry
	}

	// AssignmentUoW manages transactions for replace-set operations:
	// warehouse existence check, ownership table rewrite, audit row.
	AssignmentUoW interface {
		TxManager
		AssignmentRepoFactory
		AuditRepoFactory
		RegistryViewFactory
	}

	// AssignmentUoWFactory creates new assignment unit of work instances.
	AssignmentUoWFactory interface {
		Create() AssignmentUoW
	}

	// SplitUoW manages transactions for split-registry governance actions.
	SplitUoW interface {
		TxManager
		SplitRepoFactory
	}

	// SplitUoWFactory creates new split unit of work instances.
	SplitUoWFactory interface {
		Create() SplitUoW
	}
)

// CoverageInvalidator drops derived coverage output after a commit changes
// any of the authoritative sets.
type CoverageInvalidator interface {
	Flush()
}

// NopCoverageInvalidator satisfies CoverageInvalidator where no cache is wired,
// e.g. in tests.
type NopCoverageInvalidator struct{}

// Flush does nothing.
func (NopCoverageInvalidator) Flush() {}
