// Package postgres provides the GORM-based implementation of the Unit of
// Work pattern. A unit of work spans one partition mutation: the warehouse
// existence check, the ownership rewrite, and the audit row all see the same
// transaction, so a replace either lands completely or not at all.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	table, err := uow.AssignmentRepository().GetTable(ctx, partition.KindProvince)
//	if err != nil {
//	    return err
//	}
//
//	// mutate, persist
//	return uow.Commit(ctx)
//
// Each UnitOfWork instance carries its own transaction state; concurrent
// operations must use separate instances from the factory.
package postgres

import (
	"context"

	"gorm.io/gorm"

	"servicearea/internal/adapters/out/postgres/assignmentrepo"
	"servicearea/internal/adapters/out/postgres/auditrepo"
	"servicearea/internal/adapters/out/postgres/splitrepo"
	"servicearea/internal/adapters/out/postgres/warehouserepo"
	"servicearea/internal/core/ports"
)

// GormUnitOfWorkFactory creates UnitOfWork instances using a shared GORM
// database connection. Each business operation gets a fresh instance with
// its own transaction state.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork instance.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork coordinates one database transaction across the partition
// repositories. Implements ports.UnitOfWork using GORM's transaction
// capabilities.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin initiates a new database transaction for the unit of work.
// Multiple calls on the same instance are safe and will not create nested
// transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// Returns gorm.ErrInvalidTransaction if no transaction is active.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// Returns gorm.ErrInvalidTransaction if no transaction is active, which
// makes the deferred rollback after a successful commit a harmless no-op.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// AssignmentRepository returns an AssignmentRepository bound to the current
// transaction if one is active.
func (uow *GormUnitOfWork) AssignmentRepository() ports.AssignmentRepository {
	return assignmentrepo.NewGormAssignmentRepository(uow.conn())
}

// SplitRegistryRepository returns a SplitRegistryRepository bound to the
// current transaction if one is active.
func (uow *GormUnitOfWork) SplitRegistryRepository() ports.SplitRegistryRepository {
	return splitrepo.NewGormSplitRegistryRepository(uow.conn())
}

// AuditRepository returns an AssignmentAuditRepository bound to the current
// transaction if one is active.
func (uow *GormUnitOfWork) AuditRepository() ports.AssignmentAuditRepository {
	return auditrepo.NewGormAuditRepository(uow.conn())
}

// WarehouseRegistry returns the read-only warehouse registry view bound to
// the current transaction if one is active.
func (uow *GormUnitOfWork) WarehouseRegistry() ports.WarehouseRegistry {
	return warehouserepo.NewGormWarehouseRegistry(uow.conn())
}
