package repositories

import (
	"context"

	"coopeasy/internal/adapters/persistence/models"
	"coopeasy/internal/core/domain"

	"gorm.io/gorm"
)

// accountRepository implements AccountRepository interface
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account application repository
func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

// Create inserts a new account application
func (r *accountRepository) Create(ctx context.Context, app *models.AccountApplication) error {
	return r.db.WithContext(ctx).Create(app).Error
}

// GetByID gets an application by ID
func (r *accountRepository) GetByID(ctx context.Context, id uint) (*models.AccountApplication, error) {
	var app models.AccountApplication
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&app).Error
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// ListByUser lists a member's applications, newest first
func (r *accountRepository) ListByUser(ctx context.Context, userID uint) ([]*models.AccountApplication, error) {
	var apps []*models.AccountApplication
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("submitted_at DESC").
		Find(&apps).Error
	return apps, err
}

// ListByStatus lists applications in one status with pagination
func (r *accountRepository) ListByStatus(ctx context.Context, status string, offset, limit int) ([]*models.AccountApplication, int64, error) {
	var apps []*models.AccountApplication
	var total int64

	q := r.db.WithContext(ctx).Model(&models.AccountApplication{}).Where("status = ?", status)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := q.Order("submitted_at DESC").Offset(offset).Limit(limit).Find(&apps).Error; err != nil {
		return nil, 0, err
	}
	return apps, total, nil
}

// HasOpenApplication reports whether the user already has a pending or
// approved application. Resubmission is only allowed after a rejection.
func (r *accountRepository) HasOpenApplication(ctx context.Context, userID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.AccountApplication{}).
		Where("user_id = ? AND status IN ?", userID, []string{domain.AccountPending, domain.AccountApproved}).
		Count(&count).Error
	return count > 0, err
}

// Update saves an application
func (r *accountRepository) Update(ctx context.Context, app *models.AccountApplication) error {
	return r.db.WithContext(ctx).Save(app).Error
}
