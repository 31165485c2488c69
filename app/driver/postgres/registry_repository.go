package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"cajachica-service/app/domain"
	"cajachica-service/app/port"
)

// RegistryRepository implements port.RegistryRepository for PostgreSQL
type RegistryRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewRegistryRepository creates a new PostgreSQL registry repository
func NewRegistryRepository(db DatabaseIface, logger *slog.Logger) port.RegistryRepository {
	return &RegistryRepository{
		db:     db,
		logger: logger.With("component", "registry_repository"),
	}
}

// Create inserts a registry.
func (r *RegistryRepository) Create(ctx context.Context, registry *domain.Registry) error {
	query := `
		INSERT INTO registries (
			id, kind, name, entity, place, registry_date, manager_id, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Exec(ctx, query,
		registry.ID,
		registry.Kind,
		registry.Name,
		registry.Entity,
		registry.Place,
		registry.Date,
		registry.ManagerID,
		registry.CreatedAt,
	)
	if err != nil {
		r.logger.Error("failed to insert registry", "registry_id", registry.ID, "error", err)
		return fmt.Errorf("failed to insert registry: %w", err)
	}

	return nil
}

// GetByID looks up a registry.
func (r *RegistryRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Registry, error) {
	query := `
		SELECT id, kind, name, entity, place, registry_date, manager_id, created_at
		FROM registries
		WHERE id = $1`

	registry := &domain.Registry{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&registry.ID,
		&registry.Kind,
		&registry.Name,
		&registry.Entity,
		&registry.Place,
		&registry.Date,
		&registry.ManagerID,
		&registry.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRegistryNotFound
		}
		r.logger.Error("registry lookup failed", "registry_id", id, "error", err)
		return nil, fmt.Errorf("failed to get registry: %w", err)
	}

	return registry, nil
}

// ListByManager returns the registries opened by a manager, newest first.
func (r *RegistryRepository) ListByManager(ctx context.Context, managerID string) ([]*domain.Registry, error) {
	query := `
		SELECT id, kind, name, entity, place, registry_date, manager_id, created_at
		FROM registries
		WHERE manager_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, managerID)
	if err != nil {
		r.logger.Error("registry listing failed", "manager_id", managerID, "error", err)
		return nil, fmt.Errorf("failed to list registries: %w", err)
	}
	defer rows.Close()

	registries := make([]*domain.Registry, 0)
	for rows.Next() {
		registry := &domain.Registry{}
		err := rows.Scan(
			&registry.ID,
			&registry.Kind,
			&registry.Name,
			&registry.Entity,
			&registry.Place,
			&registry.Date,
			&registry.ManagerID,
			&registry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan registry: %w", err)
		}
		registries = append(registries, registry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read registries: %w", err)
	}

	return registries, nil
}
