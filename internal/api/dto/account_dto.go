package dto

import (
	"time"

	"github.com/jobdeck/admin-be/internal/api/model"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token    string `json:"token"`
	UserID   string `json:"user_id"`
	FullName string `json:"full_name"`
	UserType string `json:"user_type"`
}

type ListUsersRequest struct {
	Query    string `form:"q"`
	UserType string `form:"user_type"`
	Limit    int    `form:"limit"`
}

type UserDTO struct {
	UserID         string `json:"user_id"`
	FullName       string `json:"full_name"`
	Email          string `json:"email"`
	UserType       string `json:"user_type"`
	CreditsBalance int    `json:"credits_balance"`
	IsActive       bool   `json:"is_active"`
	CreatedAt      string `json:"created_at"`
}

func FromProfile(p *model.Profile) UserDTO {
	return UserDTO{
		UserID:         p.UserID,
		FullName:       p.FullName,
		Email:          p.Email,
		UserType:       p.UserType,
		CreditsBalance: p.CreditsBalance,
		IsActive:       p.IsActive,
		CreatedAt:      p.CreatedAt.Format(time.RFC3339),
	}
}

type SetUserActiveRequest struct {
	IsActive bool `json:"is_active"`
}

type ServiceAccessDTO struct {
	UserID      string `json:"user_id"`
	ServiceCode string `json:"service_code"`
	IsActive    bool   `json:"is_active"`
	ExpiresAt   string `json:"expires_at,omitempty"`
	GrantedBy   string `json:"granted_by,omitempty"`
	Notes       string `json:"notes,omitempty"`
	UpdatedAt   string `json:"updated_at"`
}

func FromServiceAccess(a *model.ServiceAccess) ServiceAccessDTO {
	d := ServiceAccessDTO{
		UserID:      a.UserID,
		ServiceCode: a.ServiceCode,
		IsActive:    a.IsActive,
		UpdatedAt:   a.UpdatedAt.Format(time.RFC3339),
	}
	if a.ExpiresAt.Valid {
		d.ExpiresAt = a.ExpiresAt.Time.Format(time.RFC3339)
	}
	if a.GrantedBy.Valid {
		d.GrantedBy = a.GrantedBy.String
	}
	if a.Notes.Valid {
		d.Notes = a.Notes.String
	}
	return d
}

type ToggleServiceRequest struct {
	UserID      string `json:"user_id" binding:"required"`
	ServiceCode string `json:"service_code" binding:"required"`
	IsActive    bool   `json:"is_active"`
	Notes       string `json:"notes"`
}

type GrantServicesRequest struct {
	UserID       string     `json:"user_id" binding:"required"`
	ServiceCodes []string   `json:"service_codes" binding:"required,min=1"`
	ExpiresAt    *time.Time `json:"expires_at"`
	Notes        string     `json:"notes"`
}

type AdjustCreditsRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Amount int    `json:"amount" binding:"required"`
	Note   string `json:"note"`
}

type TransactionDTO struct {
	TransactionID   string `json:"transaction_id"`
	UserID          string `json:"user_id"`
	UserName        string `json:"user_name,omitempty"`
	UserEmail       string `json:"user_email,omitempty"`
	CreditsAmount   int    `json:"credits_amount"`
	BalanceAfter    int    `json:"balance_after"`
	TransactionType string `json:"transaction_type"`
	ServiceCode     string `json:"service_code,omitempty"`
	Description     string `json:"description,omitempty"`
	CreatedAt       string `json:"created_at"`
}

func FromTransaction(t *model.CreditTransaction) TransactionDTO {
	d := TransactionDTO{
		TransactionID:   t.TransactionID,
		UserID:          t.UserID,
		UserName:        t.UserName,
		UserEmail:       t.UserEmail,
		CreditsAmount:   t.CreditsAmount,
		BalanceAfter:    t.BalanceAfter,
		TransactionType: t.TransactionType,
		CreatedAt:       t.CreatedAt.Format(time.RFC3339),
	}
	if t.ServiceCode.Valid {
		d.ServiceCode = t.ServiceCode.String
	}
	if t.Description.Valid {
		d.Description = t.Description.String
	}
	return d
}

type ActivateSubscriptionRequest struct {
	UserID       string `json:"user_id" binding:"required"`
	PlanCode     string `json:"plan_code" binding:"required"`
	DurationDays int    `json:"duration_days"`
}

type SubscriptionDTO struct {
	SubscriptionID string `json:"subscription_id"`
	UserID         string `json:"user_id"`
	PlanCode       string `json:"plan_code"`
	Status         string `json:"status"`
	StartedAt      string `json:"started_at"`
	ExpiresAt      string `json:"expires_at,omitempty"`
	CancelledAt    string `json:"cancelled_at,omitempty"`
}

func FromSubscription(s *model.PremiumSubscription) SubscriptionDTO {
	d := SubscriptionDTO{
		SubscriptionID: s.SubscriptionID,
		UserID:         s.UserID,
		PlanCode:       s.PlanCode,
		Status:         s.Status,
		StartedAt:      s.StartedAt.Format(time.RFC3339),
	}
	if s.ExpiresAt.Valid {
		d.ExpiresAt = s.ExpiresAt.Time.Format(time.RFC3339)
	}
	if s.CancelledAt.Valid {
		d.CancelledAt = s.CancelledAt.Time.Format(time.RFC3339)
	}
	return d
}

type CreatePackageRequest struct {
	Name         string `json:"name" binding:"required"`
	Credits      int    `json:"credits" binding:"required,gt=0"`
	Price        int    `json:"price" binding:"required,gt=0"`
	Currency     string `json:"currency"`
	DisplayOrder int    `json:"display_order"`
}

type UpdatePackageRequest struct {
	Name    string `json:"name" binding:"required"`
	Credits int    `json:"credits" binding:"required,gt=0"`
	Price   int    `json:"price" binding:"required,gt=0"`
}

type SetPackageActiveRequest struct {
	IsActive bool `json:"is_active"`
}

type PackageDTO struct {
	PackageID    string `json:"package_id"`
	Name         string `json:"name"`
	Credits      int    `json:"credits"`
	Price        int    `json:"price"`
	Currency     string `json:"currency"`
	IsActive     bool   `json:"is_active"`
	DisplayOrder int    `json:"display_order"`
	CreatedAt    string `json:"created_at"`
}

func FromPackage(p *model.CreditPackage) PackageDTO {
	return PackageDTO{
		PackageID:    p.PackageID,
		Name:         p.Name,
		Credits:      p.Credits,
		Price:        p.Price,
		Currency:     p.Currency,
		IsActive:     p.IsActive,
		DisplayOrder: p.DisplayOrder,
		CreatedAt:    p.CreatedAt.Format(time.RFC3339),
	}
}

type ReviewPaymentRequest struct {
	Notes string `json:"notes"`
}

type RejectPaymentRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type PaymentDTO struct {
	PaymentID     string `json:"payment_id"`
	UserID        string `json:"user_id"`
	UserName      string `json:"user_name,omitempty"`
	UserEmail     string `json:"user_email,omitempty"`
	PaymentType   string `json:"payment_type"`
	ReferenceID   string `json:"reference_id,omitempty"`
	Amount        int    `json:"amount"`
	CreditsAmount int    `json:"credits_amount,omitempty"`
	Method        string `json:"method"`
	Status        string `json:"status"`
	ReviewedBy    string `json:"reviewed_by,omitempty"`
	ReviewNotes   string `json:"review_notes,omitempty"`
	CreatedAt     string `json:"created_at"`
	ReviewedAt    string `json:"reviewed_at,omitempty"`
}

func FromPayment(p *model.Payment) PaymentDTO {
	d := PaymentDTO{
		PaymentID:     p.PaymentID,
		UserID:        p.UserID,
		UserName:      p.UserName,
		UserEmail:     p.UserEmail,
		PaymentType:   p.PaymentType,
		Amount:        p.Amount,
		CreditsAmount: p.CreditsAmount,
		Method:        p.Method,
		Status:        p.Status,
		CreatedAt:     p.CreatedAt.Format(time.RFC3339),
	}
	if p.ReferenceID.Valid {
		d.ReferenceID = p.ReferenceID.String
	}
	if p.ReviewedBy.Valid {
		d.ReviewedBy = p.ReviewedBy.String
	}
	if p.ReviewNotes.Valid {
		d.ReviewNotes = p.ReviewNotes.String
	}
	if p.ReviewedAt.Valid {
		d.ReviewedAt = p.ReviewedAt.Time.Format(time.RFC3339)
	}
	return d
}
