package repositories

import (
	"github.com/shashiranjanraj/arogya/app/models"
	"gorm.io/gorm"
)

// UnitOfWork bundles both repositories behind a single commit boundary.
// Every inbound request opens one unit of work; all repository operations
// within it share one transaction, and Complete() commits them atomically.
type UnitOfWork struct {
	tx     *gorm.DB
	done   bool
	Users  *UserRepository
	Orders *OrderRepository
}

// Begin opens a new transaction-backed unit of work on db.
func Begin(db *gorm.DB) *UnitOfWork {
	tx := db.Begin()
	return &UnitOfWork{
		tx:     tx,
		Users:  &UserRepository{Repository[models.User]{tx: tx}},
		Orders: &OrderRepository{Repository[models.Order]{tx: tx}},
	}
}

// Complete commits all pending changes as a single save.
func (u *UnitOfWork) Complete() error {
	if u.done {
		return nil
	}
	u.done = true
	return u.tx.Commit().Error
}

// Rollback discards the unit of work. Calling it after Complete is a no-op,
// so callers can safely `defer uow.Rollback()`.
func (u *UnitOfWork) Rollback() {
	if u.done {
		return
	}
	u.done = true
	u.tx.Rollback()
}
