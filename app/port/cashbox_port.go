package port

//go:generate mockgen -source=cashbox_port.go -destination=../mocks/mock_cashbox_port.go -package=mocks

import (
	"context"

	"cajachica-service/app/domain"

	"github.com/google/uuid"
)

// MovementRepository is the persistence surface for cash movements.
type MovementRepository interface {
	Create(ctx context.Context, movement *domain.Movement) error
	ListRecent(ctx context.Context, registryID uuid.UUID, limit int) ([]*domain.Movement, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Balance(ctx context.Context, registryID uuid.UUID) (*domain.Balance, error)
}

// RegistryRepository is the persistence surface for registries (cash boxes).
type RegistryRepository interface {
	Create(ctx context.Context, registry *domain.Registry) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Registry, error)
	ListByManager(ctx context.Context, managerID string) ([]*domain.Registry, error)
}

// RecordMovementRequest carries the fields of a new movement.
type RecordMovementRequest struct {
	RegistryID  uuid.UUID
	Description string
	Amount      float64
	Type        domain.MovementType
	Category    string
}

// CreateRegistryRequest carries the fields of a new registry.
type CreateRegistryRequest struct {
	Kind   string
	Name   string
	Entity string
	Place  string
	Date   string // YYYY-MM-DD, empty for today
}

// CashboxUsecase is the petty-cash business logic consumed by the HTTP
// layer. Every operation takes the already-resolved caller identity; the
// usecase enforces role rules, not the transport.
type CashboxUsecase interface {
	RecordMovement(ctx context.Context, actor domain.ResolvedIdentity, req *RecordMovementRequest) (*domain.Movement, error)
	ListMovements(ctx context.Context, actor domain.ResolvedIdentity, registryID uuid.UUID, limit int) ([]*domain.Movement, error)
	DeleteMovement(ctx context.Context, actor domain.ResolvedIdentity, id uuid.UUID) error
	RegistryBalance(ctx context.Context, actor domain.ResolvedIdentity, registryID uuid.UUID) (*domain.Balance, error)

	CreateRegistry(ctx context.Context, actor domain.ResolvedIdentity, req *CreateRegistryRequest) (*domain.Registry, error)
	ListRegistries(ctx context.Context, actor domain.ResolvedIdentity) ([]*domain.Registry, error)
}
