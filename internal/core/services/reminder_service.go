package services

import (
	"context"
	"log"

	"coopeasy/internal/adapters/persistence/repositories"
	"coopeasy/internal/core/domain"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// ReminderService pushes a morning digest of the open work queues to staff
// clients over SSE, and prunes refresh tokens past their expiry.
type ReminderService struct {
	db        *gorm.DB
	tokenRepo repositories.RefreshTokenRepository
	events    EventPublisher
	cron      *cron.Cron
}

// NewReminderService creates a new reminder service
func NewReminderService(db *gorm.DB, tokenRepo repositories.RefreshTokenRepository, events EventPublisher) *ReminderService {
	return &ReminderService{
		db:        db,
		tokenRepo: tokenRepo,
		events:    events,
		cron:      cron.New(),
	}
}

// Start schedules the background jobs. Digest fires every weekday at 08:30;
// token cleanup runs nightly.
func (s *ReminderService) Start() error {
	if _, err := s.cron.AddFunc("30 8 * * 1-5", s.sendDigest); err != nil {
		return err
	}
	if _, err := s.cron.AddFunc("0 3 * * *", s.cleanupTokens); err != nil {
		return err
	}
	s.cron.Start()
	log.Println("🚀 ReminderService started")
	return nil
}

// Stop halts the scheduler and waits for running jobs.
func (s *ReminderService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("🛑 ReminderService stopped")
}

// DigestPayload is the morning work queue summary
type DigestPayload struct {
	PendingAccounts int64 `json:"pending_accounts"`
	PendingDeposits int64 `json:"pending_deposits"`
	PendingLoans    int64 `json:"pending_loans"`
	ReviewedLoans   int64 `json:"reviewed_loans"`
}

func (s *ReminderService) sendDigest() {
	ctx := context.Background()
	payload := DigestPayload{}

	s.db.WithContext(ctx).Table("account_applications").
		Where("status = ?", domain.AccountPending).Count(&payload.PendingAccounts)
	s.db.WithContext(ctx).Table("savings_deposits").
		Where("status = ?", domain.DepositPending).Count(&payload.PendingDeposits)
	s.db.WithContext(ctx).Table("loan_applications").
		Where("status = ?", domain.LoanPending).Count(&payload.PendingLoans)
	s.db.WithContext(ctx).Table("loan_applications").
		Where("status = ?", domain.LoanReviewed).Count(&payload.ReviewedLoans)

	if payload.PendingAccounts+payload.PendingDeposits+payload.PendingLoans+payload.ReviewedLoans == 0 {
		return
	}

	if s.events != nil {
		s.events.Publish(Event{
			Type:    "digest.daily",
			Roles:   []string{string(domain.RoleAccountant), string(domain.RolePresident)},
			Payload: payload,
		})
	}

	log.Printf("📬 Daily digest sent (accounts=%d deposits=%d loans=%d reviewed=%d)",
		payload.PendingAccounts, payload.PendingDeposits, payload.PendingLoans, payload.ReviewedLoans)
}

func (s *ReminderService) cleanupTokens() {
	if err := s.tokenRepo.DeleteExpired(context.Background()); err != nil {
		log.Printf("❌ Refresh token cleanup error: %v", err)
		return
	}
	log.Println("🧹 Expired refresh tokens pruned")
}
