package repositories

import (
	"context"

	"coopeasy/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// loanRepository implements LoanRepository interface
type loanRepository struct {
	db *gorm.DB
}

// NewLoanRepository creates a new loan application repository
func NewLoanRepository(db *gorm.DB) LoanRepository {
	return &loanRepository{db: db}
}

// Create inserts a new loan application
func (r *loanRepository) Create(ctx context.Context, loan *models.LoanApplication) error {
	return r.db.WithContext(ctx).Create(loan).Error
}

// GetByID gets a loan by ID
func (r *loanRepository) GetByID(ctx context.Context, id uint) (*models.LoanApplication, error) {
	var loan models.LoanApplication
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&loan).Error
	if err != nil {
		return nil, err
	}
	return &loan, nil
}

// ListByUser lists a member's loans, newest first
func (r *loanRepository) ListByUser(ctx context.Context, userID uint, offset, limit int) ([]*models.LoanApplication, int64, error) {
	return r.list(ctx, r.db.WithContext(ctx).Model(&models.LoanApplication{}).Where("user_id = ?", userID), offset, limit)
}

// ListByStatus lists loans in one status
func (r *loanRepository) ListByStatus(ctx context.Context, status string, offset, limit int) ([]*models.LoanApplication, int64, error) {
	return r.list(ctx, r.db.WithContext(ctx).Model(&models.LoanApplication{}).Where("status = ?", status), offset, limit)
}

// List lists all loans
func (r *loanRepository) List(ctx context.Context, offset, limit int) ([]*models.LoanApplication, int64, error) {
	return r.list(ctx, r.db.WithContext(ctx).Model(&models.LoanApplication{}), offset, limit)
}

func (r *loanRepository) list(ctx context.Context, q *gorm.DB, offset, limit int) ([]*models.LoanApplication, int64, error) {
	var loans []*models.LoanApplication
	var total int64

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := q.Order("created_at DESC").Offset(offset).Limit(limit).Find(&loans).Error; err != nil {
		return nil, 0, err
	}
	return loans, total, nil
}

// Update saves a loan
func (r *loanRepository) Update(ctx context.Context, loan *models.LoanApplication) error {
	return r.db.WithContext(ctx).Save(loan).Error
}
