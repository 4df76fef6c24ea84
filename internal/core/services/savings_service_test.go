package services

import (
	"context"
	"errors"
	"testing"

	"coopeasy/internal/adapters/persistence/models"
	"coopeasy/internal/core/domain"
)

func TestDepositRequest(t *testing.T) {
	tests := []struct {
		name       string
		input      *DepositInput
		userStatus string
		wantErr    error
	}{
		{"valid request", &DepositInput{Amount: 50, Method: "cash"}, domain.MemberActive, nil},
		{"empty method defaults to cash", &DepositInput{Amount: 50}, domain.MemberActive, nil},
		{"zero amount", &DepositInput{Amount: 0}, domain.MemberActive, ErrInvalidAmount},
		{"negative amount", &DepositInput{Amount: -10}, domain.MemberActive, ErrInvalidAmount},
		{"unknown method", &DepositInput{Amount: 50, Method: "bitcoin"}, domain.MemberActive, ErrInvalidMethod},
		{"pending member", &DepositInput{Amount: 50}, domain.MemberPending, ErrMemberNotActive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var created *models.SavingsDeposit
			savings := &mockSavingsRepo{
				CreateFn: func(ctx context.Context, dep *models.SavingsDeposit) error {
					dep.ID = 1
					created = dep
					return nil
				},
			}
			users := &mockUserRepo{
				GetByIDFn: func(ctx context.Context, id uint) (*models.User, error) {
					u := activeUser(id)
					u.Status = tt.userStatus
					return u, nil
				},
			}
			rec := &eventRecorder{}
			svc := NewSavingsService(savings, users, rec)

			dep, err := svc.Request(context.Background(), memberActor(7), tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Request() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				if created != nil {
					t.Error("record written despite validation failure")
				}
				return
			}

			if dep.Status != domain.DepositPending {
				t.Errorf("status = %q, want pending", dep.Status)
			}
			if dep.Method != domain.MethodCash {
				t.Errorf("method = %q, want cash", dep.Method)
			}
			if evt := rec.last(); evt == nil || evt.Type != "deposit.requested" {
				t.Errorf("expected deposit.requested event, got %+v", evt)
			}
		})
	}
}

func TestDepositRecordIsBornCompleted(t *testing.T) {
	var created *models.SavingsDeposit
	savings := &mockSavingsRepo{
		CreateFn: func(ctx context.Context, dep *models.SavingsDeposit) error {
			dep.ID = 9
			created = dep
			return nil
		},
	}
	users := &mockUserRepo{
		GetByIDFn: func(ctx context.Context, id uint) (*models.User, error) {
			return activeUser(id), nil
		},
	}
	rec := &eventRecorder{}
	svc := NewSavingsService(savings, users, rec)

	dep, err := svc.Record(context.Background(), accountantActor(), &RecordInput{
		MemberID: 7,
		Amount:   200,
		Method:   "bank_transfer",
	})
	if err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	if dep.Status != domain.DepositCompleted {
		t.Errorf("status = %q, want completed with no pending step", dep.Status)
	}
	if dep.RecordedBy != "Abena Accountant" || dep.ProcessedBy != "Abena Accountant" {
		t.Errorf("recording attribution missing: %+v", dep)
	}
	if dep.ProcessedAt == nil {
		t.Error("processed_at not stamped")
	}
	if dep.MemberName != "Yaw Boateng" {
		t.Errorf("member name = %q, want snapshot of the member, not the accountant", dep.MemberName)
	}
	if created == nil {
		t.Fatal("nothing written")
	}
	if evt := rec.last(); evt == nil || evt.Type != "deposit.completed" || evt.UserID != 7 {
		t.Errorf("expected deposit.completed event for member 7, got %+v", evt)
	}
}

func TestDepositComplete(t *testing.T) {
	tests := []struct {
		name    string
		status  string
		wantErr error
	}{
		{"pending completes", domain.DepositPending, nil},
		{"completed replays", domain.DepositCompleted, domain.ErrAlreadyProcessed},
		{"rejected replays", domain.DepositRejected, domain.ErrAlreadyProcessed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			savings := &mockSavingsRepo{
				GetByIDFn: func(ctx context.Context, id uint) (*models.SavingsDeposit, error) {
					return &models.SavingsDeposit{ID: 9, UserID: 7, Status: tt.status}, nil
				},
				UpdateFn: func(ctx context.Context, dep *models.SavingsDeposit) error {
					return nil
				},
			}
			svc := NewSavingsService(savings, nil, nil)

			got, err := svc.Complete(context.Background(), accountantActor(), 9)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Complete() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}
			if got.Status != domain.DepositCompleted || got.ProcessedBy != "Abena Accountant" {
				t.Errorf("completion not recorded: %+v", got)
			}
		})
	}
}

func TestDepositRejectReasonOptional(t *testing.T) {
	savings := &mockSavingsRepo{
		GetByIDFn: func(ctx context.Context, id uint) (*models.SavingsDeposit, error) {
			return &models.SavingsDeposit{ID: 9, UserID: 7, Status: domain.DepositPending}, nil
		},
		UpdateFn: func(ctx context.Context, dep *models.SavingsDeposit) error {
			return nil
		},
	}
	svc := NewSavingsService(savings, nil, nil)

	got, err := svc.Reject(context.Background(), accountantActor(), 9, "")
	if err != nil {
		t.Fatalf("Reject() error = %v", err)
	}
	if got.Status != domain.DepositRejected {
		t.Errorf("status = %q, want rejected", got.Status)
	}
}

func TestDepositGetByIDOwnership(t *testing.T) {
	savings := &mockSavingsRepo{
		GetByIDFn: func(ctx context.Context, id uint) (*models.SavingsDeposit, error) {
			return &models.SavingsDeposit{ID: id, UserID: 7}, nil
		},
	}
	svc := NewSavingsService(savings, nil, nil)

	if _, err := svc.GetByID(context.Background(), memberActor(7), 9); err != nil {
		t.Errorf("owner read failed: %v", err)
	}
	if _, err := svc.GetByID(context.Background(), memberActor(8), 9); !errors.Is(err, ErrNotOwner) {
		t.Errorf("foreign read error = %v, want ErrNotOwner", err)
	}
	if _, err := svc.GetByID(context.Background(), accountantActor(), 9); err != nil {
		t.Errorf("staff read failed: %v", err)
	}
}
