package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/jobdeck/admin-be/internal/api/domain"
	"github.com/jobdeck/admin-be/internal/api/model"
)

const paymentColumns = `
	pay.payment_id, pay.user_id, pay.payment_type, pay.reference_id,
	pay.amount, pay.credits_amount, pay.method, pay.status,
	pay.reviewed_by, pay.review_notes, pay.created_at, pay.reviewed_at,
	COALESCE(p.full_name, '') AS user_name,
	COALESCE(p.email, '') AS user_email
`

const pendingPaymentsQuery = `
	SELECT ` + paymentColumns + `
	FROM payments pay
	LEFT JOIN profiles p ON p.user_id = pay.user_id
	WHERE pay.status = $1
	ORDER BY pay.payment_type, pay.created_at
`

// ListPendingPayments returns every payment awaiting review, grouped by
// payment type and oldest first within each group.
func (s *Storage) ListPendingPayments(ctx context.Context) ([]model.Payment, error) {
	var payments []model.Payment
	if err := s.db.SelectContext(ctx, &payments, pendingPaymentsQuery, domain.PaymentStatusPending); err != nil {
		return nil, fmt.Errorf("failed to list pending payments: %w", err)
	}
	return payments, nil
}

// GetPayment loads one payment with user details.
func (s *Storage) GetPayment(ctx context.Context, paymentID string) (*model.Payment, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM payments pay
		LEFT JOIN profiles p ON p.user_id = pay.user_id
		WHERE pay.payment_id = $1
	`

	var payment model.Payment
	if err := s.db.GetContext(ctx, &payment, query, paymentID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	return &payment, nil
}

// ApprovePayment marks a pending payment approved and applies its effect:
// a credit purchase credits the buyer's balance and records the purchase
// transaction in the same database transaction. Job publication and job
// premium payments only flip status here; the posting itself still goes
// through moderation.
func (s *Storage) ApprovePayment(ctx context.Context, paymentID, adminID, notes string, now time.Time) (*model.Payment, error) {
	var payment model.Payment

	err := s.inTx(ctx, func(tx *sqlx.Tx) error {
		query := `
			UPDATE payments
			SET status = $1, reviewed_by = $2, review_notes = $3, reviewed_at = $4
			WHERE payment_id = $5 AND status = $6
			RETURNING payment_id, user_id, payment_type, reference_id, amount,
			          credits_amount, method, status, reviewed_by, review_notes,
			          created_at, reviewed_at
		`

		noteVal := sql.NullString{String: notes, Valid: notes != ""}
		err := tx.GetContext(ctx, &payment, query,
			domain.PaymentStatusApproved, adminID, noteVal, now,
			paymentID, domain.PaymentStatusPending,
		)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return paymentReviewConflict(ctx, tx, paymentID)
			}
			return fmt.Errorf("failed to approve payment: %w", err)
		}

		if payment.PaymentType != domain.PaymentCreditPurchase {
			return nil
		}

		// Credit purchase: apply the bought credits to the balance.
		var balanceAfter int
		credit := `
			UPDATE profiles
			SET credits_balance = credits_balance + $1
			WHERE user_id = $2
			RETURNING credits_balance
		`
		if err := tx.GetContext(ctx, &balanceAfter, credit, payment.CreditsAmount, payment.UserID); err != nil {
			return fmt.Errorf("failed to credit balance: %w", err)
		}

		insert := `
			INSERT INTO credit_transactions (
				transaction_id, user_id, credits_amount, balance_after,
				transaction_type, description, created_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7)
		`
		description := fmt.Sprintf("Credit purchase approved (payment %s)", payment.PaymentID)
		if _, err := tx.ExecContext(ctx, insert,
			uuid.New().String(), payment.UserID, payment.CreditsAmount, balanceAfter,
			domain.TransactionPurchase, description, now,
		); err != nil {
			return fmt.Errorf("failed to record purchase transaction: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &payment, nil
}

// RejectPayment marks a pending payment rejected with the given reason.
func (s *Storage) RejectPayment(ctx context.Context, paymentID, adminID, reason string, now time.Time) error {
	return s.inTx(ctx, func(tx *sqlx.Tx) error {
		query := `
			UPDATE payments
			SET status = $1, reviewed_by = $2, review_notes = $3, reviewed_at = $4
			WHERE payment_id = $5 AND status = $6
		`

		res, err := tx.ExecContext(ctx, query,
			domain.PaymentStatusRejected, adminID, reason, now,
			paymentID, domain.PaymentStatusPending,
		)
		if err != nil {
			return fmt.Errorf("failed to reject payment: %w", err)
		}

		rows, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to read rows affected: %w", err)
		}
		if rows == 0 {
			return paymentReviewConflict(ctx, tx, paymentID)
		}
		return nil
	})
}

// paymentReviewConflict distinguishes "unknown payment" from "already
// reviewed" after a guarded update matched no rows.
func paymentReviewConflict(ctx context.Context, tx *sqlx.Tx, paymentID string) error {
	var exists bool
	if err := tx.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM payments WHERE payment_id = $1)`, paymentID); err != nil {
		return fmt.Errorf("failed to check payment: %w", err)
	}
	if !exists {
		return domain.ErrNotFound
	}
	return domain.ErrInvalidTransition
}
