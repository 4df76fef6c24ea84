package domain

// Workflow is the status lattice for one record kind. Transitions only move
// forward; a status with no outgoing edges is terminal.
type Workflow struct {
	Initial string
	edges   map[string][]string
}

// AccountWorkflow: pending -> approved | rejected (president).
var AccountWorkflow = Workflow{
	Initial: AccountPending,
	edges: map[string][]string{
		AccountPending: {AccountApproved, AccountRejected},
	},
}

// LoanWorkflow: pending -> reviewed | rejected | approved (accountant;
// approved is the fast-approve path), reviewed -> approved | rejected
// (president).
var LoanWorkflow = Workflow{
	Initial: LoanPending,
	edges: map[string][]string{
		LoanPending:  {LoanReviewed, LoanApproved, LoanRejected},
		LoanReviewed: {LoanApproved, LoanRejected},
	},
}

// DepositWorkflow: pending -> completed | rejected (accountant).
// Accountant-recorded deposits are created directly in completed.
var DepositWorkflow = Workflow{
	Initial: DepositPending,
	edges: map[string][]string{
		DepositPending: {DepositCompleted, DepositRejected},
	},
}

// CanTransition reports whether from -> to is an allowed forward edge.
func (w Workflow) CanTransition(from, to string) bool {
	for _, next := range w.edges[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether status has no outgoing transitions.
func (w Workflow) IsTerminal(status string) bool {
	return len(w.edges[status]) == 0
}

// Guard validates a requested transition. It distinguishes a replay against
// a terminal record from a plain illegal edge so callers can surface the
// right error to the client.
func (w Workflow) Guard(from, to string) error {
	if w.CanTransition(from, to) {
		return nil
	}
	if w.IsTerminal(from) {
		return ErrAlreadyProcessed
	}
	return ErrInvalidTransition
}
