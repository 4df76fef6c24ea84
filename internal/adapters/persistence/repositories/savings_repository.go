package repositories

import (
	"context"

	"coopeasy/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// savingsRepository implements SavingsRepository interface
type savingsRepository struct {
	db *gorm.DB
}

// NewSavingsRepository creates a new savings deposit repository
func NewSavingsRepository(db *gorm.DB) SavingsRepository {
	return &savingsRepository{db: db}
}

// Create inserts a new deposit
func (r *savingsRepository) Create(ctx context.Context, dep *models.SavingsDeposit) error {
	return r.db.WithContext(ctx).Create(dep).Error
}

// GetByID gets a deposit by ID
func (r *savingsRepository) GetByID(ctx context.Context, id uint) (*models.SavingsDeposit, error) {
	var dep models.SavingsDeposit
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dep).Error
	if err != nil {
		return nil, err
	}
	return &dep, nil
}

// ListByUser lists a member's deposits, newest first
func (r *savingsRepository) ListByUser(ctx context.Context, userID uint, offset, limit int) ([]*models.SavingsDeposit, int64, error) {
	return r.list(r.db.WithContext(ctx).Model(&models.SavingsDeposit{}).Where("user_id = ?", userID), offset, limit)
}

// ListByStatus lists deposits in one status
func (r *savingsRepository) ListByStatus(ctx context.Context, status string, offset, limit int) ([]*models.SavingsDeposit, int64, error) {
	return r.list(r.db.WithContext(ctx).Model(&models.SavingsDeposit{}).Where("status = ?", status), offset, limit)
}

// List lists all deposits
func (r *savingsRepository) List(ctx context.Context, offset, limit int) ([]*models.SavingsDeposit, int64, error) {
	return r.list(r.db.WithContext(ctx).Model(&models.SavingsDeposit{}), offset, limit)
}

func (r *savingsRepository) list(q *gorm.DB, offset, limit int) ([]*models.SavingsDeposit, int64, error) {
	var deps []*models.SavingsDeposit
	var total int64

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := q.Order("created_at DESC").Offset(offset).Limit(limit).Find(&deps).Error; err != nil {
		return nil, 0, err
	}
	return deps, total, nil
}

// Update saves a deposit
func (r *savingsRepository) Update(ctx context.Context, dep *models.SavingsDeposit) error {
	return r.db.WithContext(ctx).Save(dep).Error
}
