package services

import (
	"context"

	"coopeasy/internal/adapters/persistence/models"
	"coopeasy/internal/adapters/persistence/repositories"
)

// Function-field mocks. Tests fill in only the calls they expect; anything
// else panics loudly.

type mockUserRepo struct {
	CreateFn        func(ctx context.Context, user *models.User) error
	GetByIDFn       func(ctx context.Context, id uint) (*models.User, error)
	GetByEmailFn    func(ctx context.Context, email string) (*models.User, error)
	UpdateFn        func(ctx context.Context, user *models.User) error
	UpdateStatusFn  func(ctx context.Context, id uint, status string) error
	ListByRoleFn    func(ctx context.Context, role string, offset, limit int) ([]*models.User, int64, error)
	ExistsByEmailFn func(ctx context.Context, email string) (bool, error)
}

func (m *mockUserRepo) Create(ctx context.Context, user *models.User) error {
	return m.CreateFn(ctx, user)
}
func (m *mockUserRepo) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return m.GetByIDFn(ctx, id)
}
func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return m.GetByEmailFn(ctx, email)
}
func (m *mockUserRepo) Update(ctx context.Context, user *models.User) error {
	return m.UpdateFn(ctx, user)
}
func (m *mockUserRepo) UpdateStatus(ctx context.Context, id uint, status string) error {
	return m.UpdateStatusFn(ctx, id, status)
}
func (m *mockUserRepo) ListByRole(ctx context.Context, role string, offset, limit int) ([]*models.User, int64, error) {
	return m.ListByRoleFn(ctx, role, offset, limit)
}
func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return m.ExistsByEmailFn(ctx, email)
}

type mockAccountRepo struct {
	CreateFn             func(ctx context.Context, app *models.AccountApplication) error
	GetByIDFn            func(ctx context.Context, id uint) (*models.AccountApplication, error)
	ListByUserFn         func(ctx context.Context, userID uint) ([]*models.AccountApplication, error)
	ListByStatusFn       func(ctx context.Context, status string, offset, limit int) ([]*models.AccountApplication, int64, error)
	HasOpenApplicationFn func(ctx context.Context, userID uint) (bool, error)
	UpdateFn             func(ctx context.Context, app *models.AccountApplication) error
}

func (m *mockAccountRepo) Create(ctx context.Context, app *models.AccountApplication) error {
	return m.CreateFn(ctx, app)
}
func (m *mockAccountRepo) GetByID(ctx context.Context, id uint) (*models.AccountApplication, error) {
	return m.GetByIDFn(ctx, id)
}
func (m *mockAccountRepo) ListByUser(ctx context.Context, userID uint) ([]*models.AccountApplication, error) {
	return m.ListByUserFn(ctx, userID)
}
func (m *mockAccountRepo) ListByStatus(ctx context.Context, status string, offset, limit int) ([]*models.AccountApplication, int64, error) {
	return m.ListByStatusFn(ctx, status, offset, limit)
}
func (m *mockAccountRepo) HasOpenApplication(ctx context.Context, userID uint) (bool, error) {
	return m.HasOpenApplicationFn(ctx, userID)
}
func (m *mockAccountRepo) Update(ctx context.Context, app *models.AccountApplication) error {
	return m.UpdateFn(ctx, app)
}

type mockLoanRepo struct {
	CreateFn       func(ctx context.Context, loan *models.LoanApplication) error
	GetByIDFn      func(ctx context.Context, id uint) (*models.LoanApplication, error)
	ListByUserFn   func(ctx context.Context, userID uint, offset, limit int) ([]*models.LoanApplication, int64, error)
	ListByStatusFn func(ctx context.Context, status string, offset, limit int) ([]*models.LoanApplication, int64, error)
	ListFn         func(ctx context.Context, offset, limit int) ([]*models.LoanApplication, int64, error)
	UpdateFn       func(ctx context.Context, loan *models.LoanApplication) error
}

func (m *mockLoanRepo) Create(ctx context.Context, loan *models.LoanApplication) error {
	return m.CreateFn(ctx, loan)
}
func (m *mockLoanRepo) GetByID(ctx context.Context, id uint) (*models.LoanApplication, error) {
	return m.GetByIDFn(ctx, id)
}
func (m *mockLoanRepo) ListByUser(ctx context.Context, userID uint, offset, limit int) ([]*models.LoanApplication, int64, error) {
	return m.ListByUserFn(ctx, userID, offset, limit)
}
func (m *mockLoanRepo) ListByStatus(ctx context.Context, status string, offset, limit int) ([]*models.LoanApplication, int64, error) {
	return m.ListByStatusFn(ctx, status, offset, limit)
}
func (m *mockLoanRepo) List(ctx context.Context, offset, limit int) ([]*models.LoanApplication, int64, error) {
	return m.ListFn(ctx, offset, limit)
}
func (m *mockLoanRepo) Update(ctx context.Context, loan *models.LoanApplication) error {
	return m.UpdateFn(ctx, loan)
}

type mockSavingsRepo struct {
	CreateFn       func(ctx context.Context, dep *models.SavingsDeposit) error
	GetByIDFn      func(ctx context.Context, id uint) (*models.SavingsDeposit, error)
	ListByUserFn   func(ctx context.Context, userID uint, offset, limit int) ([]*models.SavingsDeposit, int64, error)
	ListByStatusFn func(ctx context.Context, status string, offset, limit int) ([]*models.SavingsDeposit, int64, error)
	ListFn         func(ctx context.Context, offset, limit int) ([]*models.SavingsDeposit, int64, error)
	UpdateFn       func(ctx context.Context, dep *models.SavingsDeposit) error
}

func (m *mockSavingsRepo) Create(ctx context.Context, dep *models.SavingsDeposit) error {
	return m.CreateFn(ctx, dep)
}
func (m *mockSavingsRepo) GetByID(ctx context.Context, id uint) (*models.SavingsDeposit, error) {
	return m.GetByIDFn(ctx, id)
}
func (m *mockSavingsRepo) ListByUser(ctx context.Context, userID uint, offset, limit int) ([]*models.SavingsDeposit, int64, error) {
	return m.ListByUserFn(ctx, userID, offset, limit)
}
func (m *mockSavingsRepo) ListByStatus(ctx context.Context, status string, offset, limit int) ([]*models.SavingsDeposit, int64, error) {
	return m.ListByStatusFn(ctx, status, offset, limit)
}
func (m *mockSavingsRepo) List(ctx context.Context, offset, limit int) ([]*models.SavingsDeposit, int64, error) {
	return m.ListFn(ctx, offset, limit)
}
func (m *mockSavingsRepo) Update(ctx context.Context, dep *models.SavingsDeposit) error {
	return m.UpdateFn(ctx, dep)
}

// mockUnitOfWork hands the callback the given repos without a real
// transaction.
type mockUnitOfWork struct {
	Repos  repositories.Repos
	Called bool
	FailTx error
}

func (m *mockUnitOfWork) WithinTx(ctx context.Context, fn func(r repositories.Repos) error) error {
	m.Called = true
	if m.FailTx != nil {
		return m.FailTx
	}
	return fn(m.Repos)
}

// eventRecorder captures published events
type eventRecorder struct {
	Events []Event
}

func (r *eventRecorder) Publish(evt Event) {
	r.Events = append(r.Events, evt)
}

func (r *eventRecorder) last() *Event {
	if len(r.Events) == 0 {
		return nil
	}
	return &r.Events[len(r.Events)-1]
}
