package repositories

import (
	"context"

	"gorm.io/gorm"
)

// gormUnitOfWork implements UnitOfWork on a gorm transaction.
type gormUnitOfWork struct {
	db *gorm.DB
}

// NewUnitOfWork creates a unit of work bound to db.
func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &gormUnitOfWork{db: db}
}

// WithinTx runs fn with repositories bound to a single transaction. A
// non-nil error from fn rolls everything back.
func (u *gormUnitOfWork) WithinTx(ctx context.Context, fn func(r Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(Repos{
			Users:    NewUserRepository(tx),
			Accounts: NewAccountRepository(tx),
			Loans:    NewLoanRepository(tx),
			Savings:  NewSavingsRepository(tx),
		})
	})
}
