package domain

// Role represents a user's role in the cooperative
type Role string

const (
	RoleMember     Role = "member"
	RolePresident  Role = "president"
	RoleAccountant Role = "accountant"
)

// Valid reports whether the role is one of the three known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleMember, RolePresident, RoleAccountant:
		return true
	}
	return false
}

// Membership status. New registrations start pending and become active
// only when the president approves the member's account application.
const (
	MemberPending = "pending"
	MemberActive  = "active"
)

// Account application statuses
const (
	AccountPending  = "pending"
	AccountApproved = "approved"
	AccountRejected = "rejected"
)

// Loan application statuses
const (
	LoanPending  = "pending"
	LoanReviewed = "reviewed"
	LoanApproved = "approved"
	LoanRejected = "rejected"
)

// Savings deposit statuses
const (
	DepositPending   = "pending"
	DepositCompleted = "completed"
	DepositRejected  = "rejected"
)

// Deposit methods
const (
	MethodCash         = "cash"
	MethodBankTransfer = "bank_transfer"
	MethodCheck        = "check"
)

// ValidDepositMethod reports whether m is a supported deposit method.
func ValidDepositMethod(m string) bool {
	switch m {
	case MethodCash, MethodBankTransfer, MethodCheck:
		return true
	}
	return false
}

// Actor identifies the user performing a workflow transition. Name is the
// display-name snapshot recorded on the transitioned record.
type Actor struct {
	ID   uint
	Name string
	Role Role
}
