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

// AdjustCredits applies a signed credit adjustment to a user's balance and
// records the matching admin_adjustment transaction atomically. A negative
// amount that would take the balance below zero fails with
// ErrInsufficientCredit and leaves both tables untouched.
func (s *Storage) AdjustCredits(ctx context.Context, userID string, amount int, description string, now time.Time) (*model.CreditTransaction, error) {
	var txn model.CreditTransaction

	err := s.inTx(ctx, func(tx *sqlx.Tx) error {
		var balanceAfter int
		query := `
			UPDATE profiles
			SET credits_balance = credits_balance + $1
			WHERE user_id = $2 AND credits_balance + $1 >= 0
			RETURNING credits_balance
		`

		if err := tx.GetContext(ctx, &balanceAfter, query, amount, userID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				// Either the user is unknown or the balance is too low.
				var exists bool
				if chkErr := tx.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM profiles WHERE user_id = $1)`, userID); chkErr != nil {
					return fmt.Errorf("failed to check profile: %w", chkErr)
				}
				if !exists {
					return domain.ErrNotFound
				}
				return domain.ErrInsufficientCredit
			}
			return fmt.Errorf("failed to adjust balance: %w", err)
		}

		txn = model.CreditTransaction{
			TransactionID:   uuid.New().String(),
			UserID:          userID,
			CreditsAmount:   amount,
			BalanceAfter:    balanceAfter,
			TransactionType: domain.TransactionAdjustment,
			Description:     sql.NullString{String: description, Valid: description != ""},
			CreatedAt:       now,
		}

		insert := `
			INSERT INTO credit_transactions (
				transaction_id, user_id, credits_amount, balance_after,
				transaction_type, description, created_at
			) VALUES (
				:transaction_id, :user_id, :credits_amount, :balance_after,
				:transaction_type, :description, :created_at
			)
		`

		if _, err := tx.NamedExecContext(ctx, insert, &txn); err != nil {
			return fmt.Errorf("failed to insert credit transaction: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &txn, nil
}

// ListTransactions returns the most recent credit movements with user
// details joined in.
func (s *Storage) ListTransactions(ctx context.Context, limit int) ([]model.CreditTransaction, error) {
	query := `
		SELECT t.transaction_id, t.user_id, t.credits_amount, t.balance_after,
		       t.transaction_type, t.service_code, t.description, t.created_at,
		       COALESCE(p.full_name, '') AS user_name,
		       COALESCE(p.email, '') AS user_email
		FROM credit_transactions t
		LEFT JOIN profiles p ON p.user_id = t.user_id
		ORDER BY t.created_at DESC
		LIMIT $1
	`

	var txns []model.CreditTransaction
	if err := s.db.SelectContext(ctx, &txns, query, limit); err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txns, nil
}

// CreditsSummary recomputes the credits dashboard header aggregate.
func (s *Storage) CreditsSummary(ctx context.Context) (*model.CreditsSummary, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM profiles) AS total_users,
			(SELECT COALESCE(SUM(credits_balance), 0) FROM profiles) AS total_credits,
			(SELECT COALESCE(SUM(credits_amount), 0) FROM credit_transactions
				WHERE transaction_type = 'usage') AS total_used,
			(SELECT COALESCE(SUM(credits_amount), 0) FROM credit_transactions
				WHERE transaction_type IN ('purchase', 'bonus', 'admin_adjustment')
				  AND credits_amount > 0) AS total_added
	`

	var summary model.CreditsSummary
	if err := s.db.GetContext(ctx, &summary, query); err != nil {
		return nil, fmt.Errorf("failed to compute credits summary: %w", err)
	}
	return &summary, nil
}
