package services

import (
	"context"
	"errors"
	"log"
	"time"

	"coopeasy/internal/adapters/persistence/models"
	"coopeasy/internal/adapters/persistence/repositories"
	"coopeasy/internal/core/domain"
	"coopeasy/internal/pkg/loancalc"

	"gorm.io/gorm"
)

// Loan application errors
var (
	ErrLoanNotFound    = errors.New("loan application not found")
	ErrInvalidPeriod   = errors.New("repayment period must be at least one month")
	ErrMemberNotActive = errors.New("member account is not active")
)

// LoanService handles loan application business logic
type LoanService struct {
	loanRepo   repositories.LoanRepository
	userRepo   repositories.UserRepository
	events     EventPublisher
	annualRate float64
}

// NewLoanService creates a new loan service. annualRate is the product rate
// applied to new submissions, in percent per year.
func NewLoanService(
	loanRepo repositories.LoanRepository,
	userRepo repositories.UserRepository,
	events EventPublisher,
	annualRate float64,
) *LoanService {
	if annualRate <= 0 {
		annualRate = loancalc.DefaultAnnualRate
	}
	return &LoanService{
		loanRepo:   loanRepo,
		userRepo:   userRepo,
		events:     events,
		annualRate: annualRate,
	}
}

// LoanApplicationInput represents a member's loan application
type LoanApplicationInput struct {
	Amount              float64          `json:"amount" validate:"required,gt=0"`
	Purpose             string           `json:"purpose" validate:"required"`
	RepaymentPeriod     int              `json:"repayment_period" validate:"required,min=1"`
	MonthlyIncome       float64          `json:"monthly_income"`
	ExistingLiabilities float64          `json:"existing_liabilities"`
	Collateral          string           `json:"collateral"`
	Guarantor           models.Guarantor `json:"guarantor"`
	BusinessPlan        string           `json:"business_plan"`
}

// Submit creates a new loan application for the acting member. The
// amortization schedule is computed here, once, at the current product rate;
// later rate changes never touch an existing application.
func (s *LoanService) Submit(ctx context.Context, actor domain.Actor, input *LoanApplicationInput) (*models.LoanApplication, error) {
	if input.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if input.RepaymentPeriod < 1 {
		return nil, ErrInvalidPeriod
	}

	user, err := s.userRepo.GetByID(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	if user.Status != domain.MemberActive {
		return nil, ErrMemberNotActive
	}

	schedule := loancalc.Amortize(input.Amount, s.annualRate, input.RepaymentPeriod)

	loan := &models.LoanApplication{
		UserID:              actor.ID,
		MemberName:          user.FullName(),
		Amount:              input.Amount,
		Purpose:             input.Purpose,
		RepaymentPeriod:     input.RepaymentPeriod,
		MonthlyIncome:       input.MonthlyIncome,
		ExistingLiabilities: input.ExistingLiabilities,
		Collateral:          input.Collateral,
		Guarantor:           input.Guarantor,
		BusinessPlan:        input.BusinessPlan,
		InterestRate:        s.annualRate,
		MonthlyPayment:      schedule.MonthlyPayment,
		TotalInterest:       schedule.TotalInterest,
		TotalPayment:        schedule.TotalPayment,
		Status:              domain.LoanPending,
	}

	if err := s.loanRepo.Create(ctx, loan); err != nil {
		return nil, err
	}

	log.Printf("📋 Loan application #%d submitted by user %d (amount=%.2f)", loan.ID, actor.ID, loan.Amount)

	s.publish(Event{
		Type:    "loan.submitted",
		Roles:   []string{string(domain.RoleAccountant)},
		Payload: loan,
	})

	return loan, nil
}

// GetByID returns one loan. Members only see their own.
func (s *LoanService) GetByID(ctx context.Context, actor domain.Actor, id uint) (*models.LoanApplication, error) {
	loan, err := s.loanRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLoanNotFound
		}
		return nil, err
	}
	if actor.Role == domain.RoleMember && loan.UserID != actor.ID {
		return nil, ErrNotOwner
	}
	return loan, nil
}

// ListMine lists the acting member's loans
func (s *LoanService) ListMine(ctx context.Context, userID uint, offset, limit int) ([]*models.LoanApplication, int64, error) {
	return s.loanRepo.ListByUser(ctx, userID, offset, limit)
}

// ListByStatus lists loans in one status for staff review
func (s *LoanService) ListByStatus(ctx context.Context, status string, offset, limit int) ([]*models.LoanApplication, int64, error) {
	return s.loanRepo.ListByStatus(ctx, status, offset, limit)
}

// List lists all loans
func (s *LoanService) List(ctx context.Context, offset, limit int) ([]*models.LoanApplication, int64, error) {
	return s.loanRepo.List(ctx, offset, limit)
}

// Review marks a pending loan as reviewed by an accountant, handing it to
// the president queue.
func (s *LoanService) Review(ctx context.Context, actor domain.Actor, id uint) (*models.LoanApplication, error) {
	loan, err := s.getForTransition(ctx, id, domain.LoanReviewed)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	loan.Status = domain.LoanReviewed
	loan.ReviewedBy = actor.Name
	loan.ReviewedByID = &actor.ID
	loan.ReviewedAt = &now

	if err := s.loanRepo.Update(ctx, loan); err != nil {
		return nil, err
	}

	log.Printf("🔎 Loan #%d reviewed by %s", loan.ID, actor.Name)

	s.publish(Event{
		Type:    "loan.reviewed",
		UserID:  loan.UserID,
		Roles:   []string{string(domain.RolePresident)},
		Payload: loan,
	})

	return loan, nil
}

// FastApprove lets an accountant approve a pending loan directly, skipping
// the president step. The attribution records both the name and the role so
// the approval path stays visible on the record.
func (s *LoanService) FastApprove(ctx context.Context, actor domain.Actor, id uint) (*models.LoanApplication, error) {
	loan, err := s.getForTransition(ctx, id, domain.LoanApproved)
	if err != nil {
		return nil, err
	}
	if loan.Status != domain.LoanPending {
		// Reviewed loans belong to the president queue.
		return nil, domain.ErrInvalidTransition
	}

	now := time.Now()
	loan.Status = domain.LoanApproved
	loan.ApprovedBy = actor.Name + " (Accountant)"
	loan.ApprovedByID = &actor.ID
	loan.ApprovedAt = &now

	if err := s.loanRepo.Update(ctx, loan); err != nil {
		return nil, err
	}

	log.Printf("✅ Loan #%d fast-approved by %s", loan.ID, actor.Name)

	s.publish(Event{
		Type:    "loan.approved",
		UserID:  loan.UserID,
		Roles:   []string{string(domain.RoleAccountant), string(domain.RolePresident)},
		Payload: loan,
	})

	return loan, nil
}

// Approve moves a reviewed loan to approved (president path).
func (s *LoanService) Approve(ctx context.Context, actor domain.Actor, id uint) (*models.LoanApplication, error) {
	loan, err := s.getForTransition(ctx, id, domain.LoanApproved)
	if err != nil {
		return nil, err
	}
	if loan.Status != domain.LoanReviewed {
		// A pending loan needs accountant review (or fast-approve) first.
		return nil, domain.ErrInvalidTransition
	}

	now := time.Now()
	loan.Status = domain.LoanApproved
	loan.ApprovedBy = actor.Name
	loan.ApprovedByID = &actor.ID
	loan.ApprovedAt = &now

	if err := s.loanRepo.Update(ctx, loan); err != nil {
		return nil, err
	}

	log.Printf("✅ Loan #%d approved by %s", loan.ID, actor.Name)

	s.publish(Event{
		Type:    "loan.approved",
		UserID:  loan.UserID,
		Roles:   []string{string(domain.RoleAccountant), string(domain.RolePresident)},
		Payload: loan,
	})

	return loan, nil
}

// Reject moves a pending or reviewed loan to rejected. Reason is mandatory.
// The source state decides whose queue the loan is in: pending loans are
// rejected by the accountant (stamping the review fields), reviewed loans by
// the president.
func (s *LoanService) Reject(ctx context.Context, actor domain.Actor, id uint, reason string) (*models.LoanApplication, error) {
	if reason == "" {
		return nil, ErrReasonRequired
	}

	loan, err := s.getForTransition(ctx, id, domain.LoanRejected)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	switch loan.Status {
	case domain.LoanPending:
		if actor.Role != domain.RoleAccountant {
			// Pending loans sit in the accountant queue.
			return nil, domain.ErrInvalidTransition
		}
		loan.ReviewedBy = actor.Name
		loan.ReviewedByID = &actor.ID
		loan.ReviewedAt = &now
	case domain.LoanReviewed:
		if actor.Role != domain.RolePresident {
			// Reviewed loans belong to the president queue.
			return nil, domain.ErrInvalidTransition
		}
		loan.ApprovedBy = actor.Name
		loan.ApprovedByID = &actor.ID
		loan.ApprovedAt = &now
	}
	loan.Status = domain.LoanRejected
	loan.RejectionReason = reason

	if err := s.loanRepo.Update(ctx, loan); err != nil {
		return nil, err
	}

	log.Printf("🚫 Loan #%d rejected by %s", loan.ID, actor.Name)

	s.publish(Event{
		Type:    "loan.rejected",
		UserID:  loan.UserID,
		Roles:   []string{string(domain.RoleAccountant), string(domain.RolePresident)},
		Payload: loan,
	})

	return loan, nil
}

// getForTransition loads a loan and guards the requested transition.
func (s *LoanService) getForTransition(ctx context.Context, id uint, target string) (*models.LoanApplication, error) {
	loan, err := s.loanRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLoanNotFound
		}
		return nil, err
	}
	if err := domain.LoanWorkflow.Guard(loan.Status, target); err != nil {
		return nil, err
	}
	return loan, nil
}

// Calculate previews an amortization schedule at the current product rate
// without writing anything.
func (s *LoanService) Calculate(amount float64, months int) (loancalc.Schedule, error) {
	return s.CalculateWithRate(amount, s.annualRate, months)
}

// CalculateWithRate previews a schedule at a caller-supplied annual rate.
// A zero or negative rate falls back to the product rate.
func (s *LoanService) CalculateWithRate(amount, annualRate float64, months int) (loancalc.Schedule, error) {
	if amount <= 0 {
		return loancalc.Schedule{}, ErrInvalidAmount
	}
	if months < 1 {
		return loancalc.Schedule{}, ErrInvalidPeriod
	}
	if annualRate <= 0 {
		annualRate = s.annualRate
	}
	return loancalc.Amortize(amount, annualRate, months), nil
}

// AnnualRate returns the product rate used for new submissions.
func (s *LoanService) AnnualRate() float64 {
	return s.annualRate
}

func (s *LoanService) publish(evt Event) {
	if s.events != nil {
		s.events.Publish(evt)
	}
}
