package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"cajachica-service/app/domain"
	"cajachica-service/app/port"
)

// MovementRepository implements port.MovementRepository for PostgreSQL
type MovementRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewMovementRepository creates a new PostgreSQL movement repository
func NewMovementRepository(db DatabaseIface, logger *slog.Logger) port.MovementRepository {
	return &MovementRepository{
		db:     db,
		logger: logger.With("component", "movement_repository"),
	}
}

// Create inserts a movement.
func (r *MovementRepository) Create(ctx context.Context, movement *domain.Movement) error {
	query := `
		INSERT INTO movements (
			id, registry_id, description, amount, movement_type, category,
			actor_id, actor_email, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.Exec(ctx, query,
		movement.ID,
		movement.RegistryID,
		movement.Description,
		movement.Amount,
		string(movement.Type),
		movement.Category,
		movement.ActorID,
		movement.ActorEmail,
		movement.CreatedAt,
	)
	if err != nil {
		r.logger.Error("failed to insert movement", "movement_id", movement.ID, "error", err)
		return fmt.Errorf("failed to insert movement: %w", err)
	}

	return nil
}

// ListRecent returns the newest movements of a registry, most recent first.
func (r *MovementRepository) ListRecent(ctx context.Context, registryID uuid.UUID, limit int) ([]*domain.Movement, error) {
	query := `
		SELECT id, registry_id, description, amount, movement_type, category,
		       actor_id, actor_email, created_at
		FROM movements
		WHERE registry_id = $1
		ORDER BY created_at DESC
		LIMIT $2`

	rows, err := r.db.Query(ctx, query, registryID, limit)
	if err != nil {
		r.logger.Error("movement listing failed", "registry_id", registryID, "error", err)
		return nil, fmt.Errorf("failed to list movements: %w", err)
	}
	defer rows.Close()

	movements := make([]*domain.Movement, 0, limit)
	for rows.Next() {
		movement := &domain.Movement{}
		var movementType string
		err := rows.Scan(
			&movement.ID,
			&movement.RegistryID,
			&movement.Description,
			&movement.Amount,
			&movementType,
			&movement.Category,
			&movement.ActorID,
			&movement.ActorEmail,
			&movement.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan movement: %w", err)
		}
		movement.Type = domain.MovementType(movementType)
		movements = append(movements, movement)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read movements: %w", err)
	}

	return movements, nil
}

// Delete removes a movement by ID.
func (r *MovementRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM movements WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("failed to delete movement", "movement_id", id, "error", err)
		return fmt.Errorf("failed to delete movement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrMovementNotFound
	}

	r.logger.Info("movement deleted", "movement_id", id)
	return nil
}

// Balance sums ingress and egress for a registry. A registry with no
// movements yields a zero balance.
func (r *MovementRepository) Balance(ctx context.Context, registryID uuid.UUID) (*domain.Balance, error) {
	query := `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE movement_type = 'ingreso'), 0),
			COALESCE(SUM(amount) FILTER (WHERE movement_type = 'gasto'), 0)
		FROM movements
		WHERE registry_id = $1`

	balance := &domain.Balance{RegistryID: registryID}
	err := r.db.QueryRow(ctx, query, registryID).Scan(&balance.Ingress, &balance.Egress)
	if err != nil {
		r.logger.Error("balance query failed", "registry_id", registryID, "error", err)
		return nil, fmt.Errorf("failed to compute balance: %w", err)
	}

	return balance, nil
}
