package services

import (
	"context"
	"time"

	"coopeasy/internal/core/domain"

	"gorm.io/gorm"
)

// DashboardService handles dashboard aggregates. It reads straight off the
// database; nothing here mutates workflow state.
type DashboardService struct {
	db *gorm.DB
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

// ============================================================
// Member Dashboard
// ============================================================

// MemberDashboardData represents a member's own dashboard
type MemberDashboardData struct {
	// Savings
	TotalSaved      float64 `json:"total_saved"`
	PendingDeposits int64   `json:"pending_deposits"`

	// Loans
	TotalLoans     int64   `json:"total_loans"`
	PendingLoans   int64   `json:"pending_loans"`
	ApprovedLoans  int64   `json:"approved_loans"`
	RejectedLoans  int64   `json:"rejected_loans"`
	TotalBorrowed  float64 `json:"total_borrowed"`
	MonthlyPayment float64 `json:"monthly_payment"`

	// Recent activity
	RecentDeposits []DepositSummary `json:"recent_deposits"`
	RecentLoans    []LoanSummary    `json:"recent_loans"`
}

// DepositSummary represents one deposit row on a dashboard
type DepositSummary struct {
	ID         uint      `json:"id"`
	MemberName string    `json:"member_name"`
	Amount     float64   `json:"amount"`
	Method     string    `json:"method"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// LoanSummary represents one loan row on a dashboard
type LoanSummary struct {
	ID         uint      `json:"id"`
	MemberName string    `json:"member_name"`
	Amount     float64   `json:"amount"`
	Purpose    string    `json:"purpose"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// GetMemberDashboard returns a member's dashboard data
func (s *DashboardService) GetMemberDashboard(ctx context.Context, userID uint) (*MemberDashboardData, error) {
	data := &MemberDashboardData{}

	// Savings: only completed deposits count toward the balance
	s.db.WithContext(ctx).Table("savings_deposits").
		Where("user_id = ? AND status = ?", userID, domain.DepositCompleted).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&data.TotalSaved)

	s.db.WithContext(ctx).Table("savings_deposits").
		Where("user_id = ? AND status = ?", userID, domain.DepositPending).
		Count(&data.PendingDeposits)

	// Loans
	s.db.WithContext(ctx).Table("loan_applications").
		Where("user_id = ?", userID).
		Count(&data.TotalLoans)

	s.db.WithContext(ctx).Table("loan_applications").
		Where("user_id = ? AND status IN ?", userID, []string{domain.LoanPending, domain.LoanReviewed}).
		Count(&data.PendingLoans)

	s.db.WithContext(ctx).Table("loan_applications").
		Where("user_id = ? AND status = ?", userID, domain.LoanApproved).
		Count(&data.ApprovedLoans)

	s.db.WithContext(ctx).Table("loan_applications").
		Where("user_id = ? AND status = ?", userID, domain.LoanRejected).
		Count(&data.RejectedLoans)

	s.db.WithContext(ctx).Table("loan_applications").
		Where("user_id = ? AND status = ?", userID, domain.LoanApproved).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&data.TotalBorrowed)

	s.db.WithContext(ctx).Table("loan_applications").
		Where("user_id = ? AND status = ?", userID, domain.LoanApproved).
		Select("COALESCE(SUM(monthly_payment), 0)").
		Scan(&data.MonthlyPayment)

	// Recent activity
	s.db.WithContext(ctx).Table("savings_deposits").
		Select("id, member_name, amount, method, status, created_at").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(5).
		Scan(&data.RecentDeposits)

	s.db.WithContext(ctx).Table("loan_applications").
		Select("id, member_name, amount, purpose, status, created_at").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(5).
		Scan(&data.RecentLoans)

	return data, nil
}

// ============================================================
// Accountant Dashboard
// ============================================================

// AccountantDashboardData represents the accountant work queue view
type AccountantDashboardData struct {
	// Work queue
	PendingDeposits int64 `json:"pending_deposits"`
	PendingLoans    int64 `json:"pending_loans"`

	// Totals
	TotalDeposited     float64 `json:"total_deposited"`
	DepositsThisMonth  float64 `json:"deposits_this_month"`
	TotalLoansApproved float64 `json:"total_loans_approved"`
	ActiveMembers      int64   `json:"active_members"`

	// Queues
	DepositQueue []DepositSummary `json:"deposit_queue"`
	LoanQueue    []LoanSummary    `json:"loan_queue"`
}

// GetAccountantDashboard returns the accountant dashboard data
func (s *DashboardService) GetAccountantDashboard(ctx context.Context) (*AccountantDashboardData, error) {
	data := &AccountantDashboardData{}

	s.db.WithContext(ctx).Table("savings_deposits").
		Where("status = ?", domain.DepositPending).
		Count(&data.PendingDeposits)

	s.db.WithContext(ctx).Table("loan_applications").
		Where("status = ?", domain.LoanPending).
		Count(&data.PendingLoans)

	s.db.WithContext(ctx).Table("savings_deposits").
		Where("status = ?", domain.DepositCompleted).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&data.TotalDeposited)

	startOfMonth := startOfMonth(time.Now())
	s.db.WithContext(ctx).Table("savings_deposits").
		Where("status = ? AND created_at >= ?", domain.DepositCompleted, startOfMonth).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&data.DepositsThisMonth)

	s.db.WithContext(ctx).Table("loan_applications").
		Where("status = ?", domain.LoanApproved).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&data.TotalLoansApproved)

	s.db.WithContext(ctx).Table("users").
		Where("role = ? AND status = ? AND deleted_at IS NULL", string(domain.RoleMember), domain.MemberActive).
		Count(&data.ActiveMembers)

	// Oldest first: the queue is worked front to back
	s.db.WithContext(ctx).Table("savings_deposits").
		Select("id, member_name, amount, method, status, created_at").
		Where("status = ?", domain.DepositPending).
		Order("created_at ASC").
		Limit(10).
		Scan(&data.DepositQueue)

	s.db.WithContext(ctx).Table("loan_applications").
		Select("id, member_name, amount, purpose, status, created_at").
		Where("status = ?", domain.LoanPending).
		Order("created_at ASC").
		Limit(10).
		Scan(&data.LoanQueue)

	return data, nil
}

// ============================================================
// President Dashboard
// ============================================================

// PresidentDashboardData represents the president overview
type PresidentDashboardData struct {
	// Membership
	TotalMembers   int64 `json:"total_members"`
	ActiveMembers  int64 `json:"active_members"`
	PendingMembers int64 `json:"pending_members"`

	// Approval queues
	PendingAccounts int64 `json:"pending_accounts"`
	ReviewedLoans   int64 `json:"reviewed_loans"`

	// Financial overview
	TotalDeposited     float64 `json:"total_deposited"`
	TotalLoansApproved float64 `json:"total_loans_approved"`

	// This month
	NewMembersThisMonth int64   `json:"new_members_this_month"`
	LoansThisMonth      int64   `json:"loans_this_month"`
	AmountThisMonth     float64 `json:"amount_this_month"`

	// Queue
	LoanQueue []LoanSummary `json:"loan_queue"`
}

// GetPresidentDashboard returns the president dashboard data
func (s *DashboardService) GetPresidentDashboard(ctx context.Context) (*PresidentDashboardData, error) {
	data := &PresidentDashboardData{}

	s.db.WithContext(ctx).Table("users").
		Where("role = ? AND deleted_at IS NULL", string(domain.RoleMember)).
		Count(&data.TotalMembers)

	s.db.WithContext(ctx).Table("users").
		Where("role = ? AND status = ? AND deleted_at IS NULL", string(domain.RoleMember), domain.MemberActive).
		Count(&data.ActiveMembers)

	s.db.WithContext(ctx).Table("users").
		Where("role = ? AND status = ? AND deleted_at IS NULL", string(domain.RoleMember), domain.MemberPending).
		Count(&data.PendingMembers)

	s.db.WithContext(ctx).Table("account_applications").
		Where("status = ?", domain.AccountPending).
		Count(&data.PendingAccounts)

	s.db.WithContext(ctx).Table("loan_applications").
		Where("status = ?", domain.LoanReviewed).
		Count(&data.ReviewedLoans)

	s.db.WithContext(ctx).Table("savings_deposits").
		Where("status = ?", domain.DepositCompleted).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&data.TotalDeposited)

	s.db.WithContext(ctx).Table("loan_applications").
		Where("status = ?", domain.LoanApproved).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&data.TotalLoansApproved)

	start := startOfMonth(time.Now())
	s.db.WithContext(ctx).Table("users").
		Where("role = ? AND created_at >= ? AND deleted_at IS NULL", string(domain.RoleMember), start).
		Count(&data.NewMembersThisMonth)

	s.db.WithContext(ctx).Table("loan_applications").
		Where("created_at >= ?", start).
		Count(&data.LoansThisMonth)

	s.db.WithContext(ctx).Table("loan_applications").
		Where("created_at >= ?", start).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&data.AmountThisMonth)

	s.db.WithContext(ctx).Table("loan_applications").
		Select("id, member_name, amount, purpose, status, created_at").
		Where("status = ?", domain.LoanReviewed).
		Order("created_at ASC").
		Limit(10).
		Scan(&data.LoanQueue)

	return data, nil
}

// ============================================================
// Monthly Report
// ============================================================

// MonthlyReport aggregates one calendar month of cooperative activity
type MonthlyReport struct {
	Month string `json:"month"`

	NewMembers        int64   `json:"new_members"`
	AccountsApproved  int64   `json:"accounts_approved"`
	DepositsCompleted int64   `json:"deposits_completed"`
	DepositTotal      float64 `json:"deposit_total"`
	LoansSubmitted    int64   `json:"loans_submitted"`
	LoansApproved     int64   `json:"loans_approved"`
	LoansRejected     int64   `json:"loans_rejected"`
	LoanTotal         float64 `json:"loan_total"`
}

// GetMonthlyReport builds the report for the month containing at.
func (s *DashboardService) GetMonthlyReport(ctx context.Context, at time.Time) (*MonthlyReport, error) {
	start := startOfMonth(at)
	end := start.AddDate(0, 1, 0)

	report := &MonthlyReport{Month: start.Format("2006-01")}

	s.db.WithContext(ctx).Table("users").
		Where("role = ? AND created_at >= ? AND created_at < ? AND deleted_at IS NULL", string(domain.RoleMember), start, end).
		Count(&report.NewMembers)

	s.db.WithContext(ctx).Table("account_applications").
		Where("status = ? AND approved_at >= ? AND approved_at < ?", domain.AccountApproved, start, end).
		Count(&report.AccountsApproved)

	s.db.WithContext(ctx).Table("savings_deposits").
		Where("status = ? AND processed_at >= ? AND processed_at < ?", domain.DepositCompleted, start, end).
		Count(&report.DepositsCompleted)

	s.db.WithContext(ctx).Table("savings_deposits").
		Where("status = ? AND processed_at >= ? AND processed_at < ?", domain.DepositCompleted, start, end).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&report.DepositTotal)

	s.db.WithContext(ctx).Table("loan_applications").
		Where("created_at >= ? AND created_at < ?", start, end).
		Count(&report.LoansSubmitted)

	s.db.WithContext(ctx).Table("loan_applications").
		Where("status = ? AND approved_at >= ? AND approved_at < ?", domain.LoanApproved, start, end).
		Count(&report.LoansApproved)

	s.db.WithContext(ctx).Table("loan_applications").
		Where("status = ? AND approved_at >= ? AND approved_at < ?", domain.LoanRejected, start, end).
		Count(&report.LoansRejected)

	s.db.WithContext(ctx).Table("loan_applications").
		Where("status = ? AND approved_at >= ? AND approved_at < ?", domain.LoanApproved, start, end).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&report.LoanTotal)

	return report, nil
}

func startOfMonth(at time.Time) time.Time {
	return time.Date(at.Year(), at.Month(), 1, 0, 0, 0, 0, at.Location())
}
