package domain

// Account types stored on profiles.user_type.
const (
	UserTypeCandidate = "candidate"
	UserTypeRecruiter = "recruiter"
	UserTypeTrainer   = "trainer"
	UserTypeAdmin     = "admin"
)

// IsValidUserType reports whether t is one of the account types.
func IsValidUserType(t string) bool {
	switch t {
	case UserTypeCandidate, UserTypeRecruiter, UserTypeTrainer, UserTypeAdmin:
		return true
	}
	return false
}

// Credit transaction types.
const (
	TransactionPurchase   = "purchase"
	TransactionBonus      = "bonus"
	TransactionUsage      = "usage"
	TransactionAdjustment = "admin_adjustment"
	TransactionRefund     = "refund"
)

// Manually reviewed payment types and statuses.
const (
	PaymentCreditPurchase = "credit_purchase"
	PaymentJobPublication = "job_publication"
	PaymentJobPremium     = "job_premium"

	PaymentStatusPending  = "pending"
	PaymentStatusApproved = "approved"
	PaymentStatusRejected = "rejected"
)

// Premium subscription statuses.
const (
	SubscriptionActive    = "active"
	SubscriptionCancelled = "cancelled"
	SubscriptionExpired   = "expired"
)

// ServiceCodes lists the premium services an admin can toggle per user.
var ServiceCodes = []string{
	"cv_builder",
	"cvtheque_access",
	"ai_matching",
	"featured_company",
	"priority_support",
}

// IsKnownService reports whether code is one of the toggleable services.
func IsKnownService(code string) bool {
	for _, c := range ServiceCodes {
		if c == code {
			return true
		}
	}
	return false
}
