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

// Savings deposit errors
var (
	ErrDepositNotFound = errors.New("savings deposit not found")
	ErrInvalidMethod   = errors.New("unknown deposit method")
)

// SavingsService handles savings deposit business logic
type SavingsService struct {
	savingsRepo repositories.SavingsRepository
	userRepo    repositories.UserRepository
	events      EventPublisher
}

// NewSavingsService creates a new savings service
func NewSavingsService(
	savingsRepo repositories.SavingsRepository,
	userRepo repositories.UserRepository,
	events EventPublisher,
) *SavingsService {
	return &SavingsService{
		savingsRepo: savingsRepo,
		userRepo:    userRepo,
		events:      events,
	}
}

// DepositInput represents a deposit request
type DepositInput struct {
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Description string  `json:"description"`
	Method      string  `json:"method"`
}

// RecordInput is an accountant's direct deposit entry for a member
type RecordInput struct {
	MemberID    uint    `json:"member_id" validate:"required"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Description string  `json:"description"`
	Method      string  `json:"method"`
}

// Request creates a pending deposit for the acting member. Nothing is
// written for a non-positive amount.
func (s *SavingsService) Request(ctx context.Context, actor domain.Actor, input *DepositInput) (*models.SavingsDeposit, error) {
	method, err := normalizeMethod(input.Method)
	if err != nil {
		return nil, err
	}
	if input.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	user, err := s.userRepo.GetByID(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	if user.Status != domain.MemberActive {
		return nil, ErrMemberNotActive
	}

	dep := &models.SavingsDeposit{
		UserID:      actor.ID,
		MemberName:  user.FullName(),
		Amount:      input.Amount,
		Description: input.Description,
		Method:      method,
		Status:      domain.DepositPending,
	}

	if err := s.savingsRepo.Create(ctx, dep); err != nil {
		return nil, err
	}

	log.Printf("📋 Deposit #%d requested by user %d (amount=%.2f)", dep.ID, actor.ID, dep.Amount)

	s.publish(Event{
		Type:    "deposit.requested",
		Roles:   []string{string(domain.RoleAccountant)},
		Payload: dep,
	})

	return dep, nil
}

// Record creates a completed deposit on a member's behalf. This is the
// accountant walk-in path: cash over the counter, no pending step. The
// recording accountant is stamped on the row.
func (s *SavingsService) Record(ctx context.Context, actor domain.Actor, input *RecordInput) (*models.SavingsDeposit, error) {
	method, err := normalizeMethod(input.Method)
	if err != nil {
		return nil, err
	}
	if input.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	member, err := s.userRepo.GetByID(ctx, input.MemberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if member.Status != domain.MemberActive {
		return nil, ErrMemberNotActive
	}

	now := time.Now()
	dep := &models.SavingsDeposit{
		UserID:        member.ID,
		MemberName:    member.FullName(),
		Amount:        input.Amount,
		Description:   input.Description,
		Method:        method,
		Status:        domain.DepositCompleted,
		ProcessedBy:   actor.Name,
		ProcessedByID: &actor.ID,
		ProcessedAt:   &now,
		RecordedBy:    actor.Name,
	}

	if err := s.savingsRepo.Create(ctx, dep); err != nil {
		return nil, err
	}

	log.Printf("✅ Deposit #%d recorded by %s for member %d", dep.ID, actor.Name, member.ID)

	s.publish(Event{
		Type:    "deposit.completed",
		UserID:  member.ID,
		Roles:   []string{string(domain.RoleAccountant)},
		Payload: dep,
	})

	return dep, nil
}

// GetByID returns one deposit. Members only see their own.
func (s *SavingsService) GetByID(ctx context.Context, actor domain.Actor, id uint) (*models.SavingsDeposit, error) {
	dep, err := s.savingsRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDepositNotFound
		}
		return nil, err
	}
	if actor.Role == domain.RoleMember && dep.UserID != actor.ID {
		return nil, ErrNotOwner
	}
	return dep, nil
}

// ListMine lists the acting member's deposits
func (s *SavingsService) ListMine(ctx context.Context, userID uint, offset, limit int) ([]*models.SavingsDeposit, int64, error) {
	return s.savingsRepo.ListByUser(ctx, userID, offset, limit)
}

// ListByStatus lists deposits in one status
func (s *SavingsService) ListByStatus(ctx context.Context, status string, offset, limit int) ([]*models.SavingsDeposit, int64, error) {
	return s.savingsRepo.ListByStatus(ctx, status, offset, limit)
}

// List lists all deposits
func (s *SavingsService) List(ctx context.Context, offset, limit int) ([]*models.SavingsDeposit, int64, error) {
	return s.savingsRepo.List(ctx, offset, limit)
}

// Complete confirms a pending deposit as received.
func (s *SavingsService) Complete(ctx context.Context, actor domain.Actor, id uint) (*models.SavingsDeposit, error) {
	dep, err := s.getForTransition(ctx, id, domain.DepositCompleted)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	dep.Status = domain.DepositCompleted
	dep.ProcessedBy = actor.Name
	dep.ProcessedByID = &actor.ID
	dep.ProcessedAt = &now

	if err := s.savingsRepo.Update(ctx, dep); err != nil {
		return nil, err
	}

	log.Printf("✅ Deposit #%d completed by %s", dep.ID, actor.Name)

	s.publish(Event{
		Type:    "deposit.completed",
		UserID:  dep.UserID,
		Roles:   []string{string(domain.RoleAccountant)},
		Payload: dep,
	})

	return dep, nil
}

// Reject declines a pending deposit. The reason is optional here; a
// walk-in never happened, so there is often nothing to explain.
func (s *SavingsService) Reject(ctx context.Context, actor domain.Actor, id uint, reason string) (*models.SavingsDeposit, error) {
	dep, err := s.getForTransition(ctx, id, domain.DepositRejected)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	dep.Status = domain.DepositRejected
	dep.ProcessedBy = actor.Name
	dep.ProcessedByID = &actor.ID
	dep.ProcessedAt = &now
	dep.RejectionReason = reason

	if err := s.savingsRepo.Update(ctx, dep); err != nil {
		return nil, err
	}

	log.Printf("🚫 Deposit #%d rejected by %s", dep.ID, actor.Name)

	s.publish(Event{
		Type:    "deposit.rejected",
		UserID:  dep.UserID,
		Roles:   []string{string(domain.RoleAccountant)},
		Payload: dep,
	})

	return dep, nil
}

func (s *SavingsService) getForTransition(ctx context.Context, id uint, target string) (*models.SavingsDeposit, error) {
	dep, err := s.savingsRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDepositNotFound
		}
		return nil, err
	}
	if err := domain.DepositWorkflow.Guard(dep.Status, target); err != nil {
		return nil, err
	}
	return dep, nil
}

// normalizeMethod defaults an empty method to cash and validates the rest.
func normalizeMethod(method string) (string, error) {
	if method == "" {
		return domain.MethodCash, nil
	}
	if !domain.ValidDepositMethod(method) {
		return "", ErrInvalidMethod
	}
	return method, nil
}

func (s *SavingsService) publish(evt Event) {
	if s.events != nil {
		s.events.Publish(evt)
	}
}
