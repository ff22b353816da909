package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/jobdeck/admin-be/internal/api/domain"
	"github.com/jobdeck/admin-be/internal/api/model"
)

// GetProfile loads one account by id.
func (s *Storage) GetProfile(ctx context.Context, userID string) (*model.Profile, error) {
	query := `
		SELECT user_id, full_name, email, password_hash, user_type,
		       credits_balance, is_active, created_at
		FROM profiles
		WHERE user_id = $1
	`

	var profile model.Profile
	if err := s.db.GetContext(ctx, &profile, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &profile, nil
}

// GetProfileByEmail loads one account by email, used by login.
func (s *Storage) GetProfileByEmail(ctx context.Context, email string) (*model.Profile, error) {
	query := `
		SELECT user_id, full_name, email, password_hash, user_type,
		       credits_balance, is_active, created_at
		FROM profiles
		WHERE lower(email) = lower($1)
	`

	var profile model.Profile
	if err := s.db.GetContext(ctx, &profile, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get profile by email: %w", err)
	}
	return &profile, nil
}

// ListUsers returns accounts filtered by search term (name or email) and
// user type, ordered by creation date, newest first.
func (s *Storage) ListUsers(ctx context.Context, search, userType string, limit int) ([]model.Profile, error) {
	query := `
		SELECT user_id, full_name, email, password_hash, user_type,
		       credits_balance, is_active, created_at
		FROM profiles
		WHERE 1=1
	`
	args := []interface{}{}
	argIdx := 1

	if search != "" {
		query += fmt.Sprintf(" AND (full_name ILIKE $%d OR email ILIKE $%d)", argIdx, argIdx)
		args = append(args, "%"+search+"%")
		argIdx++
	}

	if userType != "" {
		query += fmt.Sprintf(" AND user_type = $%d", argIdx)
		args = append(args, userType)
		argIdx++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", argIdx)
	args = append(args, limit)

	var users []model.Profile
	if err := s.db.SelectContext(ctx, &users, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// ListServiceAccess returns every per-user service switch, for assembling
// the users-with-services view.
func (s *Storage) ListServiceAccess(ctx context.Context) ([]model.ServiceAccess, error) {
	query := `
		SELECT user_id, service_code, is_active, expires_at,
		       granted_by, notes, updated_at
		FROM user_service_access
	`

	var access []model.ServiceAccess
	if err := s.db.SelectContext(ctx, &access, query); err != nil {
		return nil, fmt.Errorf("failed to list service access: %w", err)
	}
	return access, nil
}

// serviceAccessNote maps an optional admin note to its column value. An
// empty note stores NULL rather than an empty string.
func serviceAccessNote(notes string) sql.NullString {
	return sql.NullString{String: notes, Valid: notes != ""}
}

// ToggleServiceAccess flips one service switch for one user, creating the
// row if it does not exist yet.
func (s *Storage) ToggleServiceAccess(ctx context.Context, adminID, userID, serviceCode string, active bool, notes string, now time.Time) error {
	query := `
		INSERT INTO user_service_access (user_id, service_code, is_active, granted_by, notes, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, service_code)
		DO UPDATE SET is_active = $3, granted_by = $4, notes = $5, updated_at = $6
	`

	if _, err := s.db.ExecContext(ctx, query, userID, serviceCode, active, adminID, serviceAccessNote(notes), now); err != nil {
		return fmt.Errorf("failed to toggle service access: %w", err)
	}
	return nil
}

// GrantServices activates a batch of services for one user in a single
// transaction, with an optional shared expiry.
func (s *Storage) GrantServices(ctx context.Context, adminID, userID string, serviceCodes []string, expiresAt *time.Time, notes string, now time.Time) error {
	return s.inTx(ctx, func(tx *sqlx.Tx) error {
		query := `
			INSERT INTO user_service_access (user_id, service_code, is_active, expires_at, granted_by, notes, updated_at)
			VALUES ($1, $2, TRUE, $3, $4, $5, $6)
			ON CONFLICT (user_id, service_code)
			DO UPDATE SET is_active = TRUE, expires_at = $3, granted_by = $4, notes = $5, updated_at = $6
		`

		var expiry sql.NullTime
		if expiresAt != nil {
			expiry = sql.NullTime{Time: *expiresAt, Valid: true}
		}

		noteVal := serviceAccessNote(notes)

		for _, code := range serviceCodes {
			if _, err := tx.ExecContext(ctx, query, userID, code, expiry, adminID, noteVal, now); err != nil {
				return fmt.Errorf("failed to grant service %s: %w", code, err)
			}
		}
		return nil
	})
}

// SetUserActive toggles the is_active flag on a profile.
func (s *Storage) SetUserActive(ctx context.Context, userID string, active bool) error {
	res, err := s.db.ExecContext(ctx, `UPDATE profiles SET is_active = $1 WHERE user_id = $2`, active, userID)
	if err != nil {
		return fmt.Errorf("failed to update user active flag: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
