package model

import (
	"database/sql"
	"time"
)

// Job is a job posting row as stored in the jobs table.
type Job struct {
	JobID           string         `db:"job_id"`
	Title           string         `db:"title"`
	Description     string         `db:"description"`
	Location        string         `db:"location"`
	ContractType    string         `db:"contract_type"`
	Sector          string         `db:"sector"`
	SalaryRange     string         `db:"salary_range"`
	CompanyName     string         `db:"company_name"`
	Category        string         `db:"category"`
	PositionCount   int            `db:"position_count"`
	ExperienceLevel string         `db:"experience_level"`
	EducationLevel  string         `db:"education_level"`
	UserID          string         `db:"user_id"`
	Status          string         `db:"status"`
	SubmittedAt     time.Time      `db:"submitted_at"`
	PublishedAt     sql.NullTime   `db:"published_at"`
	ExpiresAt       sql.NullTime   `db:"expires_at"`
	ValidityDays    sql.NullInt64  `db:"validity_days"`
	RenewalCount    int            `db:"renewal_count"`
	IsUrgent        bool           `db:"is_urgent"`
	IsFeatured      bool           `db:"is_featured"`
	RejectionReason sql.NullString `db:"rejection_reason"`
	ModerationNotes sql.NullString `db:"moderation_notes"`
	ModeratedBy     sql.NullString `db:"moderated_by"`
	ModeratedAt     sql.NullTime   `db:"moderated_at"`

	// RecruiterName is joined from profiles for listing and search.
	RecruiterName string `db:"recruiter_name"`
}

// ModerationHistory is an append-only audit row for a moderation action.
type ModerationHistory struct {
	EntryID        string         `db:"entry_id"`
	JobID          string         `db:"job_id"`
	ModeratorID    sql.NullString `db:"moderator_id"`
	Action         string         `db:"action"`
	PreviousStatus string         `db:"previous_status"`
	NewStatus      string         `db:"new_status"`
	Reason         sql.NullString `db:"reason"`
	Notes          sql.NullString `db:"notes"`
	CreatedAt      time.Time      `db:"created_at"`
	ModeratorName  string         `db:"moderator_name"`
}

// Profile is a platform account (candidate, recruiter, trainer or admin).
type Profile struct {
	UserID         string    `db:"user_id"`
	FullName       string    `db:"full_name"`
	Email          string    `db:"email"`
	PasswordHash   string    `db:"password_hash"`
	UserType       string    `db:"user_type"`
	CreditsBalance int       `db:"credits_balance"`
	IsActive       bool      `db:"is_active"`
	CreatedAt      time.Time `db:"created_at"`
}

// CreditTransaction records one movement on a user's credit balance.
type CreditTransaction struct {
	TransactionID   string         `db:"transaction_id"`
	UserID          string         `db:"user_id"`
	CreditsAmount   int            `db:"credits_amount"`
	BalanceAfter    int            `db:"balance_after"`
	TransactionType string         `db:"transaction_type"`
	ServiceCode     sql.NullString `db:"service_code"`
	Description     sql.NullString `db:"description"`
	CreatedAt       time.Time      `db:"created_at"`
	UserName        string         `db:"user_name"`
	UserEmail       string         `db:"user_email"`
}

// PremiumSubscription is a premium plan attached to a user.
type PremiumSubscription struct {
	SubscriptionID string       `db:"subscription_id"`
	UserID         string       `db:"user_id"`
	PlanCode       string       `db:"plan_code"`
	Status         string       `db:"status"`
	StartedAt      time.Time    `db:"started_at"`
	ExpiresAt      sql.NullTime `db:"expires_at"`
	CancelledAt    sql.NullTime `db:"cancelled_at"`
}

// CreditPackage is a purchasable credit bundle with admin-editable pricing.
type CreditPackage struct {
	PackageID    string    `db:"package_id"`
	Name         string    `db:"name"`
	Credits      int       `db:"credits"`
	Price        int       `db:"price"`
	Currency     string    `db:"currency"`
	IsActive     bool      `db:"is_active"`
	DisplayOrder int       `db:"display_order"`
	CreatedAt    time.Time `db:"created_at"`
}

// ServiceAccess is a per-user switch for one premium service.
type ServiceAccess struct {
	UserID      string         `db:"user_id"`
	ServiceCode string         `db:"service_code"`
	IsActive    bool           `db:"is_active"`
	ExpiresAt   sql.NullTime   `db:"expires_at"`
	GrantedBy   sql.NullString `db:"granted_by"`
	Notes       sql.NullString `db:"notes"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

// Payment is a manually reviewed purchase awaiting admin approval.
type Payment struct {
	PaymentID   string         `db:"payment_id"`
	UserID      string         `db:"user_id"`
	PaymentType string         `db:"payment_type"`
	ReferenceID sql.NullString `db:"reference_id"`
	Amount      int            `db:"amount"`
	// CreditsAmount is the bought credit count for credit_purchase
	// payments, zero otherwise.
	CreditsAmount int            `db:"credits_amount"`
	Method        string         `db:"method"`
	Status        string         `db:"status"`
	ReviewedBy    sql.NullString `db:"reviewed_by"`
	ReviewNotes   sql.NullString `db:"review_notes"`
	CreatedAt     time.Time      `db:"created_at"`
	ReviewedAt    sql.NullTime   `db:"reviewed_at"`
	UserName      string         `db:"user_name"`
	UserEmail     string         `db:"user_email"`
}

// ModerationStats is the aggregate snapshot shown on the moderation
// dashboard. Recomputed on every fetch, never cached.
type ModerationStats struct {
	PendingCount       int     `db:"pending_count" json:"pending_count"`
	PublishedCount     int     `db:"published_count" json:"published_count"`
	RejectedCount      int     `db:"rejected_count" json:"rejected_count"`
	ClosedCount        int     `db:"closed_count" json:"closed_count"`
	ExpiringSoonCount  int     `db:"expiring_soon_count" json:"expiring_soon_count"`
	ExpiringUrgent     int     `db:"expiring_urgent_count" json:"expiring_urgent_count"`
	AvgModerationHours float64 `db:"avg_moderation_hours" json:"avg_moderation_hours"`
	ModeratedToday     int     `db:"moderated_today" json:"moderated_today"`
}

// BadgeStats counts published postings per badge combination.
type BadgeStats struct {
	UrgentCount    int `db:"urgent_count" json:"urgent_count"`
	FeaturedCount  int `db:"featured_count" json:"featured_count"`
	BothCount      int `db:"both_count" json:"both_count"`
	TotalPublished int `db:"total_published" json:"total_published"`
}

// CreditsSummary is the aggregate header of the credits admin page.
type CreditsSummary struct {
	TotalUsers   int `db:"total_users" json:"total_users"`
	TotalCredits int `db:"total_credits" json:"total_credits"`
	TotalUsed    int `db:"total_used" json:"total_used"`
	TotalAdded   int `db:"total_added" json:"total_added"`
}
