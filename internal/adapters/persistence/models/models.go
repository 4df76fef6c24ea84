package models

import (
	"time"

	"gorm.io/gorm"
)

// ============================================================
// Users & Sessions
// ============================================================

// User represents the users table. Role and status follow the domain
// constants; status flips to active only through account approval.
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Email     string         `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password  string         `gorm:"size:255;not null" json:"-"`
	FirstName string         `gorm:"size:50;not null" json:"first_name"`
	LastName  string         `gorm:"size:50;not null" json:"last_name"`
	Phone     string         `gorm:"size:30" json:"phone"`
	Address   string         `gorm:"type:text" json:"address"`
	Role      string         `gorm:"size:20;default:'member'" json:"role"`
	Status    string         `gorm:"size:20;default:'pending'" json:"status"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// FullName returns the display name recorded on workflow transitions.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// UserResponse DTO
type UserResponse struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Phone:     u.Phone,
		Address:   u.Address,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
	}
}

// RefreshToken represents refresh_tokens table
type RefreshToken struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uint       `gorm:"index;not null" json:"user_id"`
	TokenHash string     `gorm:"size:255;not null;index" json:"-"`
	ExpiresAt time.Time  `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	RevokedAt *time.Time `gorm:"index" json:"revoked_at"`
	User      User       `gorm:"foreignKey:UserID" json:"-"`
}

func (RefreshToken) TableName() string {
	return "refresh_tokens"
}

func (rt *RefreshToken) IsRevoked() bool {
	return rt.RevokedAt != nil
}

func (rt *RefreshToken) IsExpired() bool {
	return time.Now().After(rt.ExpiresAt)
}

// ============================================================
// Account applications
// ============================================================

// EmergencyContact is embedded in account applications.
type EmergencyContact struct {
	Name         string `gorm:"size:100" json:"name"`
	Relationship string `gorm:"size:50" json:"relationship"`
	Phone        string `gorm:"size:30" json:"phone"`
	Address      string `gorm:"type:text" json:"address"`
}

// AccountApplication represents account_applications. One row per
// submission; only a president-role actor moves it out of pending.
type AccountApplication struct {
	ID               uint             `gorm:"primaryKey" json:"id"`
	UserID           uint             `gorm:"index;not null" json:"user_id"`
	FirstName        string           `gorm:"size:50;not null" json:"first_name"`
	LastName         string           `gorm:"size:50;not null" json:"last_name"`
	Email            string           `gorm:"size:100;not null" json:"email"`
	Phone            string           `gorm:"size:30" json:"phone"`
	Address          string           `gorm:"type:text" json:"address"`
	DateOfBirth      string           `gorm:"size:20" json:"date_of_birth"`
	NationalID       string           `gorm:"size:50" json:"national_id"`
	Occupation       string           `gorm:"size:100" json:"occupation"`
	MonthlyIncome    float64          `gorm:"type:decimal(15,2)" json:"monthly_income"`
	EmergencyContact EmergencyContact `gorm:"embedded;embeddedPrefix:emergency_" json:"emergency_contact"`
	AccountType      string           `gorm:"size:30;default:'savings'" json:"account_type"`
	InitialDeposit   float64          `gorm:"type:decimal(15,2);not null" json:"initial_deposit"`
	Purpose          string           `gorm:"type:text" json:"purpose"`
	Status           string           `gorm:"size:20;default:'pending';index" json:"status"`
	ApprovedBy       string           `gorm:"size:100" json:"approved_by,omitempty"`
	ApprovedByID     *uint            `json:"approved_by_id,omitempty"`
	ApprovedAt       *time.Time       `json:"approved_at,omitempty"`
	RejectionReason  string           `gorm:"type:text" json:"rejection_reason,omitempty"`
	SubmittedAt      time.Time        `gorm:"autoCreateTime" json:"submitted_at"`
	UpdatedAt        time.Time        `gorm:"autoUpdateTime" json:"updated_at"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}

func (AccountApplication) TableName() string {
	return "account_applications"
}

// ============================================================
// Loan applications
// ============================================================

// Guarantor is embedded in loan applications.
type Guarantor struct {
	Name    string `gorm:"size:100" json:"name"`
	Phone   string `gorm:"size:30" json:"phone"`
	Address string `gorm:"type:text" json:"address"`
}

// LoanApplication represents loan_applications. Amortization fields are
// computed once at submission and never recomputed.
type LoanApplication struct {
	ID                  uint       `gorm:"primaryKey" json:"id"`
	UserID              uint       `gorm:"index;not null" json:"user_id"`
	MemberName          string     `gorm:"size:100;not null" json:"member_name"`
	Amount              float64    `gorm:"type:decimal(15,2);not null" json:"amount"`
	Purpose             string     `gorm:"type:text" json:"purpose"`
	RepaymentPeriod     int        `gorm:"not null" json:"repayment_period"`
	MonthlyIncome       float64    `gorm:"type:decimal(15,2)" json:"monthly_income"`
	ExistingLiabilities float64    `gorm:"type:decimal(15,2)" json:"existing_liabilities"`
	Collateral          string     `gorm:"type:text" json:"collateral"`
	Guarantor           Guarantor  `gorm:"embedded;embeddedPrefix:guarantor_" json:"guarantor"`
	BusinessPlan        string     `gorm:"type:text" json:"business_plan"`
	InterestRate        float64    `gorm:"type:decimal(5,2);not null" json:"interest_rate"`
	MonthlyPayment      float64    `gorm:"type:decimal(15,2)" json:"monthly_payment"`
	TotalInterest       float64    `gorm:"type:decimal(15,2)" json:"total_interest"`
	TotalPayment        float64    `gorm:"type:decimal(15,2)" json:"total_payment"`
	Status              string     `gorm:"size:20;default:'pending';index" json:"status"`
	ReviewedBy          string     `gorm:"size:100" json:"reviewed_by,omitempty"`
	ReviewedByID        *uint      `json:"reviewed_by_id,omitempty"`
	ReviewedAt          *time.Time `json:"reviewed_at,omitempty"`
	ApprovedBy          string     `gorm:"size:100" json:"approved_by,omitempty"`
	ApprovedByID        *uint      `json:"approved_by_id,omitempty"`
	ApprovedAt          *time.Time `json:"approved_at,omitempty"`
	RejectionReason     string     `gorm:"type:text" json:"rejection_reason,omitempty"`
	CreatedAt           time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}

func (LoanApplication) TableName() string {
	return "loan_applications"
}

// ============================================================
// Savings deposits
// ============================================================

// SavingsDeposit represents savings_deposits. Member requests start
// pending; accountant direct records are created completed with
// RecordedBy set.
type SavingsDeposit struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	UserID          uint       `gorm:"index;not null" json:"user_id"`
	MemberName      string     `gorm:"size:100;not null" json:"member_name"`
	Amount          float64    `gorm:"type:decimal(15,2);not null" json:"amount"`
	Description     string     `gorm:"type:text" json:"description"`
	Method          string     `gorm:"size:30;default:'cash'" json:"method"`
	Status          string     `gorm:"size:20;default:'pending';index" json:"status"`
	ProcessedBy     string     `gorm:"size:100" json:"processed_by,omitempty"`
	ProcessedByID   *uint      `json:"processed_by_id,omitempty"`
	ProcessedAt     *time.Time `json:"processed_at,omitempty"`
	RecordedBy      string     `gorm:"size:100" json:"recorded_by,omitempty"`
	RejectionReason string     `gorm:"type:text" json:"rejection_reason,omitempty"`
	CreatedAt       time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}

func (SavingsDeposit) TableName() string {
	return "savings_deposits"
}

// ============================================================
// Auto Migration
// ============================================================

// AutoMigrate runs auto migration for all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&RefreshToken{},
		&AccountApplication{},
		&LoanApplication{},
		&SavingsDeposit{},
	)
}
