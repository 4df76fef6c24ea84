package domain

import (
	"errors"
	"testing"
)

func TestAccountWorkflow(t *testing.T) {
	tests := []struct {
		from, to string
		allowed  bool
	}{
		{AccountPending, AccountApproved, true},
		{AccountPending, AccountRejected, true},
		{AccountApproved, AccountRejected, false},
		{AccountApproved, AccountPending, false},
		{AccountRejected, AccountApproved, false},
	}

	for _, tt := range tests {
		if got := AccountWorkflow.CanTransition(tt.from, tt.to); got != tt.allowed {
			t.Errorf("account %s -> %s = %v, want %v", tt.from, tt.to, got, tt.allowed)
		}
	}
}

func TestLoanWorkflowPathsToApproval(t *testing.T) {
	// Fast approve: accountant approves straight from pending.
	if !LoanWorkflow.CanTransition(LoanPending, LoanApproved) {
		t.Error("fast-approve path pending -> approved rejected")
	}

	// Two-step: accountant review, then president approval.
	if !LoanWorkflow.CanTransition(LoanPending, LoanReviewed) {
		t.Error("pending -> reviewed rejected")
	}
	if !LoanWorkflow.CanTransition(LoanReviewed, LoanApproved) {
		t.Error("reviewed -> approved rejected")
	}

	// Rejection is possible at both stages.
	if !LoanWorkflow.CanTransition(LoanPending, LoanRejected) {
		t.Error("pending -> rejected rejected")
	}
	if !LoanWorkflow.CanTransition(LoanReviewed, LoanRejected) {
		t.Error("reviewed -> rejected rejected")
	}
}

func TestLoanWorkflowNeverMovesBackward(t *testing.T) {
	backward := []struct{ from, to string }{
		{LoanReviewed, LoanPending},
		{LoanApproved, LoanPending},
		{LoanApproved, LoanReviewed},
		{LoanApproved, LoanRejected},
		{LoanRejected, LoanPending},
		{LoanRejected, LoanApproved},
	}

	for _, tt := range backward {
		if LoanWorkflow.CanTransition(tt.from, tt.to) {
			t.Errorf("loan %s -> %s should not be allowed", tt.from, tt.to)
		}
	}
}

func TestDepositWorkflow(t *testing.T) {
	if !DepositWorkflow.CanTransition(DepositPending, DepositCompleted) {
		t.Error("pending -> completed rejected")
	}
	if !DepositWorkflow.CanTransition(DepositPending, DepositRejected) {
		t.Error("pending -> rejected rejected")
	}
	if DepositWorkflow.CanTransition(DepositCompleted, DepositRejected) {
		t.Error("completed must be terminal")
	}
}

func TestTerminalStates(t *testing.T) {
	terminal := []struct {
		w      Workflow
		status string
	}{
		{AccountWorkflow, AccountApproved},
		{AccountWorkflow, AccountRejected},
		{LoanWorkflow, LoanApproved},
		{LoanWorkflow, LoanRejected},
		{DepositWorkflow, DepositCompleted},
		{DepositWorkflow, DepositRejected},
	}

	for _, tt := range terminal {
		if !tt.w.IsTerminal(tt.status) {
			t.Errorf("%s should be terminal", tt.status)
		}
	}

	if AccountWorkflow.IsTerminal(AccountPending) {
		t.Error("pending should not be terminal")
	}
	if LoanWorkflow.IsTerminal(LoanReviewed) {
		t.Error("reviewed should not be terminal")
	}
}

func TestGuardErrors(t *testing.T) {
	// Replay against a terminal record.
	if err := LoanWorkflow.Guard(LoanApproved, LoanApproved); !errors.Is(err, ErrAlreadyProcessed) {
		t.Errorf("replay on approved: got %v, want ErrAlreadyProcessed", err)
	}
	if err := AccountWorkflow.Guard(AccountRejected, AccountApproved); !errors.Is(err, ErrAlreadyProcessed) {
		t.Errorf("transition from rejected: got %v, want ErrAlreadyProcessed", err)
	}

	// Illegal edge between live states.
	if err := LoanWorkflow.Guard(LoanReviewed, LoanReviewed); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("reviewed -> reviewed: got %v, want ErrInvalidTransition", err)
	}

	// Legal edge passes.
	if err := LoanWorkflow.Guard(LoanPending, LoanReviewed); err != nil {
		t.Errorf("pending -> reviewed: unexpected error %v", err)
	}
}

func TestRoleValid(t *testing.T) {
	for _, r := range []Role{RoleMember, RolePresident, RoleAccountant} {
		if !r.Valid() {
			t.Errorf("%s should be valid", r)
		}
	}
	if Role("admin").Valid() {
		t.Error("unknown role accepted")
	}
}
