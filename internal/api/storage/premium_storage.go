package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jobdeck/admin-be/internal/api/domain"
	"github.com/jobdeck/admin-be/internal/api/model"
)

// ActivateSubscription creates an active premium subscription for a user.
func (s *Storage) ActivateSubscription(ctx context.Context, userID, planCode string, durationDays int, now time.Time) (*model.PremiumSubscription, error) {
	sub := model.PremiumSubscription{
		SubscriptionID: uuid.New().String(),
		UserID:         userID,
		PlanCode:       planCode,
		Status:         domain.SubscriptionActive,
		StartedAt:      now,
	}
	if durationDays > 0 {
		sub.ExpiresAt = sql.NullTime{Time: now.AddDate(0, 0, durationDays), Valid: true}
	}

	query := `
		INSERT INTO premium_subscriptions (
			subscription_id, user_id, plan_code, status, started_at, expires_at
		) VALUES (
			:subscription_id, :user_id, :plan_code, :status, :started_at, :expires_at
		)
	`

	if _, err := s.db.NamedExecContext(ctx, query, &sub); err != nil {
		return nil, fmt.Errorf("failed to activate subscription: %w", err)
	}

	return &sub, nil
}

// CancelSubscription moves an active subscription to cancelled. Cancelling
// anything not active is an invalid transition.
func (s *Storage) CancelSubscription(ctx context.Context, subscriptionID string, now time.Time) error {
	query := `
		UPDATE premium_subscriptions
		SET status = $1, cancelled_at = $2
		WHERE subscription_id = $3 AND status = $4
	`

	res, err := s.db.ExecContext(ctx, query, domain.SubscriptionCancelled, now, subscriptionID, domain.SubscriptionActive)
	if err != nil {
		return fmt.Errorf("failed to cancel subscription: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if rows == 0 {
		var exists bool
		if chkErr := s.db.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM premium_subscriptions WHERE subscription_id = $1)`, subscriptionID); chkErr != nil {
			return fmt.Errorf("failed to check subscription: %w", chkErr)
		}
		if !exists {
			return domain.ErrNotFound
		}
		return domain.ErrInvalidTransition
	}
	return nil
}

// ListSubscriptions returns subscriptions, optionally filtered by status,
// newest first.
func (s *Storage) ListSubscriptions(ctx context.Context, status string) ([]model.PremiumSubscription, error) {
	query := `
		SELECT subscription_id, user_id, plan_code, status,
		       started_at, expires_at, cancelled_at
		FROM premium_subscriptions
	`
	args := []interface{}{}

	if status != "" {
		query += " WHERE status = $1"
		args = append(args, status)
	}

	query += " ORDER BY started_at DESC"

	var subs []model.PremiumSubscription
	if err := s.db.SelectContext(ctx, &subs, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	return subs, nil
}
