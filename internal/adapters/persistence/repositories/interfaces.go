package repositories

import (
	"context"

	"coopeasy/internal/adapters/persistence/models"
)

// UserRepository defines user repository interface
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	UpdateStatus(ctx context.Context, id uint, status string) error
	ListByRole(ctx context.Context, role string, offset, limit int) ([]*models.User, int64, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// RefreshTokenRepository defines refresh token repository interface
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *models.RefreshToken) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.RefreshToken, error)
	Revoke(ctx context.Context, id uint) error
	RevokeByTokenHash(ctx context.Context, tokenHash string) error
	RevokeAllByUserID(ctx context.Context, userID uint) error
	DeleteExpired(ctx context.Context) error
}

// AccountRepository defines account application repository interface
type AccountRepository interface {
	Create(ctx context.Context, app *models.AccountApplication) error
	GetByID(ctx context.Context, id uint) (*models.AccountApplication, error)
	ListByUser(ctx context.Context, userID uint) ([]*models.AccountApplication, error)
	ListByStatus(ctx context.Context, status string, offset, limit int) ([]*models.AccountApplication, int64, error)
	HasOpenApplication(ctx context.Context, userID uint) (bool, error)
	Update(ctx context.Context, app *models.AccountApplication) error
}

// LoanRepository defines loan application repository interface
type LoanRepository interface {
	Create(ctx context.Context, loan *models.LoanApplication) error
	GetByID(ctx context.Context, id uint) (*models.LoanApplication, error)
	ListByUser(ctx context.Context, userID uint, offset, limit int) ([]*models.LoanApplication, int64, error)
	ListByStatus(ctx context.Context, status string, offset, limit int) ([]*models.LoanApplication, int64, error)
	List(ctx context.Context, offset, limit int) ([]*models.LoanApplication, int64, error)
	Update(ctx context.Context, loan *models.LoanApplication) error
}

// SavingsRepository defines savings deposit repository interface
type SavingsRepository interface {
	Create(ctx context.Context, dep *models.SavingsDeposit) error
	GetByID(ctx context.Context, id uint) (*models.SavingsDeposit, error)
	ListByUser(ctx context.Context, userID uint, offset, limit int) ([]*models.SavingsDeposit, int64, error)
	ListByStatus(ctx context.Context, status string, offset, limit int) ([]*models.SavingsDeposit, int64, error)
	List(ctx context.Context, offset, limit int) ([]*models.SavingsDeposit, int64, error)
	Update(ctx context.Context, dep *models.SavingsDeposit) error
}

// Repos bundles the repositories visible inside a unit-of-work callback.
type Repos struct {
	Users    UserRepository
	Accounts AccountRepository
	Loans    LoanRepository
	Savings  SavingsRepository
}

// UnitOfWork runs a function with transactional repositories. Everything
// written inside the callback commits or rolls back together; the account
// approval + member activation pair depends on this.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(r Repos) error) error
}
