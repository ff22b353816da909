package storage

import (
	"context"
	"fmt"

	"github.com/jobdeck/admin-be/internal/api/domain"
	"github.com/jobdeck/admin-be/internal/api/model"
)

// ListPackages returns all credit packages in display order. Inactive
// packages are included; the admin screen toggles them in place.
func (s *Storage) ListPackages(ctx context.Context) ([]model.CreditPackage, error) {
	query := `
		SELECT package_id, name, credits, price, currency,
		       is_active, display_order, created_at
		FROM credit_packages
		ORDER BY display_order, created_at
	`

	var packages []model.CreditPackage
	if err := s.db.SelectContext(ctx, &packages, query); err != nil {
		return nil, fmt.Errorf("failed to list credit packages: %w", err)
	}
	return packages, nil
}

// CreatePackage inserts a new credit package.
func (s *Storage) CreatePackage(ctx context.Context, pkg *model.CreditPackage) error {
	query := `
		INSERT INTO credit_packages (
			package_id, name, credits, price, currency,
			is_active, display_order, created_at
		) VALUES (
			:package_id, :name, :credits, :price, :currency,
			:is_active, :display_order, :created_at
		)
	`

	if _, err := s.db.NamedExecContext(ctx, query, pkg); err != nil {
		return fmt.Errorf("failed to create credit package: %w", err)
	}
	return nil
}

// UpdatePackage edits the name, credits and price of a package.
func (s *Storage) UpdatePackage(ctx context.Context, packageID, name string, credits, price int) error {
	query := `
		UPDATE credit_packages
		SET name = $1, credits = $2, price = $3
		WHERE package_id = $4
	`

	res, err := s.db.ExecContext(ctx, query, name, credits, price, packageID)
	if err != nil {
		return fmt.Errorf("failed to update credit package: %w", err)
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

// SetPackageActive toggles whether a package is offered for purchase.
func (s *Storage) SetPackageActive(ctx context.Context, packageID string, active bool) error {
	res, err := s.db.ExecContext(ctx, `UPDATE credit_packages SET is_active = $1 WHERE package_id = $2`, active, packageID)
	if err != nil {
		return fmt.Errorf("failed to toggle credit package: %w", err)
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
