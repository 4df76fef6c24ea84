package services

import (
	"context"
	"math"
	"testing"
	"time"

	"coopeasy/internal/adapters/persistence/models"
	"coopeasy/internal/core/domain"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openDashboardDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func seedDashboardData(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	member := &models.User{
		Email: "m@coop.test", Password: "x", FirstName: "Ama", LastName: "Mensah",
		Role: string(domain.RoleMember), Status: domain.MemberActive,
	}
	if err := db.Create(member).Error; err != nil {
		t.Fatalf("seed member: %v", err)
	}

	now := time.Now()
	deposits := []models.SavingsDeposit{
		{UserID: member.ID, MemberName: "Ama Mensah", Amount: 100, Method: "cash", Status: domain.DepositCompleted, ProcessedAt: &now},
		{UserID: member.ID, MemberName: "Ama Mensah", Amount: 250, Method: "cash", Status: domain.DepositCompleted, ProcessedAt: &now},
		{UserID: member.ID, MemberName: "Ama Mensah", Amount: 40, Method: "cash", Status: domain.DepositPending},
		{UserID: member.ID, MemberName: "Ama Mensah", Amount: 999, Method: "cash", Status: domain.DepositRejected, ProcessedAt: &now},
	}
	for i := range deposits {
		if err := db.Create(&deposits[i]).Error; err != nil {
			t.Fatalf("seed deposit: %v", err)
		}
	}

	loans := []models.LoanApplication{
		{UserID: member.ID, MemberName: "Ama Mensah", Amount: 10000, RepaymentPeriod: 12, InterestRate: 5, MonthlyPayment: 856.07, Status: domain.LoanApproved, ApprovedAt: &now},
		{UserID: member.ID, MemberName: "Ama Mensah", Amount: 5000, RepaymentPeriod: 6, InterestRate: 5, Status: domain.LoanPending},
		{UserID: member.ID, MemberName: "Ama Mensah", Amount: 2000, RepaymentPeriod: 6, InterestRate: 5, Status: domain.LoanReviewed},
	}
	for i := range loans {
		if err := db.Create(&loans[i]).Error; err != nil {
			t.Fatalf("seed loan: %v", err)
		}
	}

	app := &models.AccountApplication{
		UserID: member.ID, FirstName: "Ama", LastName: "Mensah", Email: member.Email,
		InitialDeposit: 100, Status: domain.AccountPending,
	}
	if err := db.Create(app).Error; err != nil {
		t.Fatalf("seed application: %v", err)
	}

	return member
}

func TestMemberDashboard(t *testing.T) {
	db := openDashboardDB(t)
	member := seedDashboardData(t, db)
	svc := NewDashboardService(db)

	data, err := svc.GetMemberDashboard(context.Background(), member.ID)
	if err != nil {
		t.Fatalf("GetMemberDashboard() error = %v", err)
	}

	// Only completed deposits count toward the balance.
	if math.Abs(data.TotalSaved-350) > 0.001 {
		t.Errorf("TotalSaved = %.2f, want 350.00", data.TotalSaved)
	}
	if data.PendingDeposits != 1 {
		t.Errorf("PendingDeposits = %d, want 1", data.PendingDeposits)
	}
	if data.TotalLoans != 3 || data.ApprovedLoans != 1 {
		t.Errorf("loans = %d total / %d approved, want 3 / 1", data.TotalLoans, data.ApprovedLoans)
	}
	// Pending includes the reviewed loan: it is still in flight.
	if data.PendingLoans != 2 {
		t.Errorf("PendingLoans = %d, want 2", data.PendingLoans)
	}
	if math.Abs(data.TotalBorrowed-10000) > 0.001 {
		t.Errorf("TotalBorrowed = %.2f, want 10000", data.TotalBorrowed)
	}
	if math.Abs(data.MonthlyPayment-856.07) > 0.001 {
		t.Errorf("MonthlyPayment = %.2f, want 856.07", data.MonthlyPayment)
	}
}

func TestAccountantDashboard(t *testing.T) {
	db := openDashboardDB(t)
	seedDashboardData(t, db)
	svc := NewDashboardService(db)

	data, err := svc.GetAccountantDashboard(context.Background())
	if err != nil {
		t.Fatalf("GetAccountantDashboard() error = %v", err)
	}

	if data.PendingDeposits != 1 || data.PendingLoans != 1 {
		t.Errorf("queues = %d deposits / %d loans, want 1 / 1", data.PendingDeposits, data.PendingLoans)
	}
	if math.Abs(data.TotalDeposited-350) > 0.001 {
		t.Errorf("TotalDeposited = %.2f, want 350", data.TotalDeposited)
	}
	if data.ActiveMembers != 1 {
		t.Errorf("ActiveMembers = %d, want 1", data.ActiveMembers)
	}
	if len(data.DepositQueue) != 1 || len(data.LoanQueue) != 1 {
		t.Errorf("queue lengths = %d / %d, want 1 / 1", len(data.DepositQueue), len(data.LoanQueue))
	}
}

func TestPresidentDashboard(t *testing.T) {
	db := openDashboardDB(t)
	seedDashboardData(t, db)
	svc := NewDashboardService(db)

	data, err := svc.GetPresidentDashboard(context.Background())
	if err != nil {
		t.Fatalf("GetPresidentDashboard() error = %v", err)
	}

	if data.TotalMembers != 1 || data.ActiveMembers != 1 {
		t.Errorf("members = %d total / %d active, want 1 / 1", data.TotalMembers, data.ActiveMembers)
	}
	if data.PendingAccounts != 1 {
		t.Errorf("PendingAccounts = %d, want 1", data.PendingAccounts)
	}
	if data.ReviewedLoans != 1 {
		t.Errorf("ReviewedLoans = %d, want 1", data.ReviewedLoans)
	}
	if math.Abs(data.TotalLoansApproved-10000) > 0.001 {
		t.Errorf("TotalLoansApproved = %.2f, want 10000", data.TotalLoansApproved)
	}
	if len(data.LoanQueue) != 1 || data.LoanQueue[0].Status != domain.LoanReviewed {
		t.Errorf("LoanQueue = %+v, want the one reviewed loan", data.LoanQueue)
	}
}

func TestMonthlyReport(t *testing.T) {
	db := openDashboardDB(t)
	seedDashboardData(t, db)
	svc := NewDashboardService(db)

	report, err := svc.GetMonthlyReport(context.Background(), time.Now())
	if err != nil {
		t.Fatalf("GetMonthlyReport() error = %v", err)
	}

	if report.Month != time.Now().Format("2006-01") {
		t.Errorf("Month = %q, want current month", report.Month)
	}
	if report.NewMembers != 1 {
		t.Errorf("NewMembers = %d, want 1", report.NewMembers)
	}
	if report.DepositsCompleted != 2 || math.Abs(report.DepositTotal-350) > 0.001 {
		t.Errorf("deposits = %d / %.2f, want 2 / 350", report.DepositsCompleted, report.DepositTotal)
	}
	if report.LoansSubmitted != 3 || report.LoansApproved != 1 {
		t.Errorf("loans = %d submitted / %d approved, want 3 / 1", report.LoansSubmitted, report.LoansApproved)
	}
}

func TestDailyDigest(t *testing.T) {
	db := openDashboardDB(t)
	seedDashboardData(t, db)
	rec := &eventRecorder{}
	svc := NewReminderService(db, nil, rec)

	svc.sendDigest()

	evt := rec.last()
	if evt == nil || evt.Type != "digest.daily" {
		t.Fatalf("expected digest.daily event, got %+v", evt)
	}
	payload, ok := evt.Payload.(DigestPayload)
	if !ok {
		t.Fatalf("payload type %T, want DigestPayload", evt.Payload)
	}
	if payload.PendingAccounts != 1 || payload.PendingDeposits != 1 || payload.PendingLoans != 1 || payload.ReviewedLoans != 1 {
		t.Errorf("digest = %+v, want all four queues at 1", payload)
	}
}
