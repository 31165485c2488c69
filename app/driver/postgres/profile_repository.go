package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"cajachica-service/app/domain"
	"cajachica-service/app/port"
)

// ProfileRepository implements port.ProfileDirectory for PostgreSQL.
// Manager profiles are keyed by identity token, employee profiles by email.
type ProfileRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewProfileRepository creates a new PostgreSQL profile repository
func NewProfileRepository(db DatabaseIface, logger *slog.Logger) port.ProfileDirectory {
	return &ProfileRepository{
		db:     db,
		logger: logger.With("component", "profile_repository"),
	}
}

// GetManagerProfile looks up a manager record by identity token.
func (r *ProfileRepository) GetManagerProfile(ctx context.Context, identityID string) (*domain.ManagerProfile, error) {
	query := `
		SELECT identity_token, name, surname, email, document_type, document_number, created_at
		FROM manager_profiles
		WHERE identity_token = $1`

	profile := &domain.ManagerProfile{}
	err := r.db.QueryRow(ctx, query, identityID).Scan(
		&profile.IdentityID,
		&profile.Name,
		&profile.Surname,
		&profile.Email,
		&profile.DocumentType,
		&profile.DocumentNumber,
		&profile.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		r.logger.Error("manager profile lookup failed", "identity_id", identityID, "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrDirectoryFailure, err)
	}

	return profile, nil
}

// GetEmployeeProfile looks up an employee authorization record by email.
func (r *ProfileRepository) GetEmployeeProfile(ctx context.Context, email string) (*domain.EmployeeProfile, error) {
	query := `
		SELECT email, position, authorized_by, created_at
		FROM employee_profiles
		WHERE email = $1`

	profile := &domain.EmployeeProfile{}
	err := r.db.QueryRow(ctx, query, email).Scan(
		&profile.Email,
		&profile.Position,
		&profile.AuthorizedBy,
		&profile.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		r.logger.Error("employee profile lookup failed", "email", email, "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrDirectoryFailure, err)
	}

	return profile, nil
}

// PutManagerProfile upserts a manager record.
func (r *ProfileRepository) PutManagerProfile(ctx context.Context, profile *domain.ManagerProfile) error {
	query := `
		INSERT INTO manager_profiles (
			identity_token, name, surname, email, document_type, document_number, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (identity_token) DO UPDATE SET
			name = EXCLUDED.name,
			surname = EXCLUDED.surname,
			email = EXCLUDED.email,
			document_type = EXCLUDED.document_type,
			document_number = EXCLUDED.document_number`

	_, err := r.db.Exec(ctx, query,
		profile.IdentityID,
		profile.Name,
		profile.Surname,
		profile.Email,
		profile.DocumentType,
		profile.DocumentNumber,
		profile.CreatedAt,
	)
	if err != nil {
		r.logger.Error("failed to store manager profile", "identity_id", profile.IdentityID, "error", err)
		return fmt.Errorf("%w: %v", domain.ErrDirectoryFailure, err)
	}

	r.logger.Info("manager profile stored", "identity_id", profile.IdentityID)
	return nil
}

// PutEmployeeProfile upserts an employee authorization record.
func (r *ProfileRepository) PutEmployeeProfile(ctx context.Context, profile *domain.EmployeeProfile) error {
	query := `
		INSERT INTO employee_profiles (email, position, authorized_by, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO UPDATE SET
			position = EXCLUDED.position,
			authorized_by = EXCLUDED.authorized_by`

	_, err := r.db.Exec(ctx, query,
		profile.Email,
		profile.Position,
		profile.AuthorizedBy,
		profile.CreatedAt,
	)
	if err != nil {
		r.logger.Error("failed to store employee profile", "email", profile.Email, "error", err)
		return fmt.Errorf("%w: %v", domain.ErrDirectoryFailure, err)
	}

	r.logger.Info("employee profile stored", "email", profile.Email)
	return nil
}

// DeleteEmployeeProfile removes an employee authorization record.
func (r *ProfileRepository) DeleteEmployeeProfile(ctx context.Context, email string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM employee_profiles WHERE email = $1`, email)
	if err != nil {
		r.logger.Error("failed to delete employee profile", "email", email, "error", err)
		return fmt.Errorf("%w: %v", domain.ErrDirectoryFailure, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProfileNotFound
	}

	r.logger.Info("employee profile deleted", "email", email)
	return nil
}

// ListEmployeesByManager returns the employee records authorized by a
// manager, newest first.
func (r *ProfileRepository) ListEmployeesByManager(ctx context.Context, managerID string) ([]*domain.EmployeeProfile, error) {
	query := `
		SELECT email, position, authorized_by, created_at
		FROM employee_profiles
		WHERE authorized_by = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, managerID)
	if err != nil {
		r.logger.Error("employee listing failed", "manager_id", managerID, "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrDirectoryFailure, err)
	}
	defer rows.Close()

	profiles := make([]*domain.EmployeeProfile, 0)
	for rows.Next() {
		profile := &domain.EmployeeProfile{}
		if err := rows.Scan(&profile.Email, &profile.Position, &profile.AuthorizedBy, &profile.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrDirectoryFailure, err)
		}
		profiles = append(profiles, profile)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDirectoryFailure, err)
	}

	return profiles, nil
}
