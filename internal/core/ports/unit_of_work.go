package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and repository access bound to the
// transaction. Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// AssignmentRepository returns an AssignmentRepository bound to the current transaction.
	AssignmentRepository() AssignmentRepository

	// SplitRegistryRepository returns a SplitRegistryRepository bound to the current transaction.
	SplitRegistryRepository() SplitRegistryRepository

	// AuditRepository returns an AssignmentAuditRepository bound to the current transaction.
	AuditRepository() AssignmentAuditRepository

	// WarehouseRegistry returns the read-only warehouse registry view bound
	// to the current transaction, so existence checks see the same snapshot
	// as the write they guard.
	WarehouseRegistry() WarehouseRegistry
}
