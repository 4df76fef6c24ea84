package services

import (
	"context"
	"errors"
	"log"
	"time"

	"coopeasy/internal/adapters/persistence/models"
	"coopeasy/internal/adapters/persistence/repositories"
	"coopeasy/internal/core/domain"

	"gorm.io/gorm"
)

// Account application errors
var (
	ErrApplicationNotFound   = errors.New("account application not found")
	ErrOpenApplicationExists = errors.New("an account application is already open for this member")
	ErrInvalidAmount         = errors.New("amount must be greater than zero")
	ErrReasonRequired        = errors.New("rejection reason is required")
	ErrNotOwner              = errors.New("record belongs to another member")
)

// AccountService handles account application business logic
type AccountService struct {
	accountRepo repositories.AccountRepository
	userRepo    repositories.UserRepository
	uow         repositories.UnitOfWork
	events      EventPublisher
}

// NewAccountService creates a new account service
func NewAccountService(
	accountRepo repositories.AccountRepository,
	userRepo repositories.UserRepository,
	uow repositories.UnitOfWork,
	events EventPublisher,
) *AccountService {
	return &AccountService{
		accountRepo: accountRepo,
		userRepo:    userRepo,
		uow:         uow,
		events:      events,
	}
}

// AccountApplicationInput represents a member's account application
type AccountApplicationInput struct {
	FirstName        string                  `json:"first_name" validate:"required,max=50"`
	LastName         string                  `json:"last_name" validate:"required,max=50"`
	Phone            string                  `json:"phone"`
	Address          string                  `json:"address"`
	DateOfBirth      string                  `json:"date_of_birth"`
	NationalID       string                  `json:"national_id"`
	Occupation       string                  `json:"occupation"`
	MonthlyIncome    float64                 `json:"monthly_income"`
	EmergencyContact models.EmergencyContact `json:"emergency_contact"`
	AccountType      string                  `json:"account_type"`
	InitialDeposit   float64                 `json:"initial_deposit" validate:"required,gt=0"`
	Purpose          string                  `json:"purpose"`
}

// Submit creates a new account application for the acting member. A member
// may hold at most one application that is pending or approved.
func (s *AccountService) Submit(ctx context.Context, actor domain.Actor, input *AccountApplicationInput) (*models.AccountApplication, error) {
	if input.InitialDeposit <= 0 {
		return nil, ErrInvalidAmount
	}

	open, err := s.accountRepo.HasOpenApplication(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	if open {
		return nil, ErrOpenApplicationExists
	}

	user, err := s.userRepo.GetByID(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	accountType := input.AccountType
	if accountType == "" {
		accountType = "savings"
	}

	app := &models.AccountApplication{
		UserID:           actor.ID,
		FirstName:        input.FirstName,
		LastName:         input.LastName,
		Email:            user.Email,
		Phone:            input.Phone,
		Address:          input.Address,
		DateOfBirth:      input.DateOfBirth,
		NationalID:       input.NationalID,
		Occupation:       input.Occupation,
		MonthlyIncome:    input.MonthlyIncome,
		EmergencyContact: input.EmergencyContact,
		AccountType:      accountType,
		InitialDeposit:   input.InitialDeposit,
		Purpose:          input.Purpose,
		Status:           domain.AccountPending,
	}

	if err := s.accountRepo.Create(ctx, app); err != nil {
		return nil, err
	}

	log.Printf("📋 Account application #%d submitted by user %d", app.ID, actor.ID)

	s.publish(Event{
		Type:    "account.submitted",
		Roles:   []string{string(domain.RolePresident)},
		Payload: app,
	})

	return app, nil
}

// GetByID returns one application. Members only see their own.
func (s *AccountService) GetByID(ctx context.Context, actor domain.Actor, id uint) (*models.AccountApplication, error) {
	app, err := s.accountRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	if actor.Role == domain.RoleMember && app.UserID != actor.ID {
		return nil, ErrNotOwner
	}
	return app, nil
}

// ListMine lists the acting member's applications
func (s *AccountService) ListMine(ctx context.Context, userID uint) ([]*models.AccountApplication, error) {
	return s.accountRepo.ListByUser(ctx, userID)
}

// ListByStatus lists applications in one status for staff review
func (s *AccountService) ListByStatus(ctx context.Context, status string, offset, limit int) ([]*models.AccountApplication, int64, error) {
	return s.accountRepo.ListByStatus(ctx, status, offset, limit)
}

// Approve moves a pending application to approved and activates the member.
// Both writes happen in one transaction; a failure on either side leaves the
// application pending and the member unchanged.
func (s *AccountService) Approve(ctx context.Context, actor domain.Actor, id uint) (*models.AccountApplication, error) {
	app, err := s.accountRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}

	if err := domain.AccountWorkflow.Guard(app.Status, domain.AccountApproved); err != nil {
		return nil, err
	}

	now := time.Now()
	app.Status = domain.AccountApproved
	app.ApprovedBy = actor.Name
	app.ApprovedByID = &actor.ID
	app.ApprovedAt = &now
	app.RejectionReason = ""

	err = s.uow.WithinTx(ctx, func(r repositories.Repos) error {
		if err := r.Accounts.Update(ctx, app); err != nil {
			return err
		}
		return r.Users.UpdateStatus(ctx, app.UserID, domain.MemberActive)
	})
	if err != nil {
		return nil, err
	}

	log.Printf("✅ Account application #%d approved by %s; member %d activated", app.ID, actor.Name, app.UserID)

	s.publish(Event{
		Type:    "account.approved",
		UserID:  app.UserID,
		Roles:   []string{string(domain.RoleAccountant), string(domain.RolePresident)},
		Payload: app,
	})

	return app, nil
}

// Reject moves a pending application to rejected. The member's status is
// never touched; they may resubmit. A reason is mandatory.
func (s *AccountService) Reject(ctx context.Context, actor domain.Actor, id uint, reason string) (*models.AccountApplication, error) {
	if reason == "" {
		return nil, ErrReasonRequired
	}

	app, err := s.accountRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}

	if err := domain.AccountWorkflow.Guard(app.Status, domain.AccountRejected); err != nil {
		return nil, err
	}

	now := time.Now()
	app.Status = domain.AccountRejected
	app.ApprovedBy = actor.Name
	app.ApprovedByID = &actor.ID
	app.ApprovedAt = &now
	app.RejectionReason = reason

	if err := s.accountRepo.Update(ctx, app); err != nil {
		return nil, err
	}

	log.Printf("🚫 Account application #%d rejected by %s", app.ID, actor.Name)

	s.publish(Event{
		Type:    "account.rejected",
		UserID:  app.UserID,
		Roles:   []string{string(domain.RolePresident)},
		Payload: app,
	})

	return app, nil
}

func (s *AccountService) publish(evt Event) {
	if s.events != nil {
		s.events.Publish(evt)
	}
}
