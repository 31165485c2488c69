package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"cajachica-service/app/config"
	"cajachica-service/app/domain"
	"cajachica-service/app/port"
	apperrors "cajachica-service/app/utils/errors"

	"github.com/google/uuid"
)

// CashboxUsecase implements the petty-cash business logic: registries (cash
// boxes), movements and running balances. Role rules live here, not in the
// transport layer.
type CashboxUsecase struct {
	movements  port.MovementRepository
	registries port.RegistryRepository
	catalog    *config.CategoryCatalog
	listLimit  int
	logger     *slog.Logger
}

// NewCashboxUsecase creates a new CashboxUsecase instance.
func NewCashboxUsecase(movements port.MovementRepository, registries port.RegistryRepository, catalog *config.CategoryCatalog, listLimit int, logger *slog.Logger) *CashboxUsecase {
	return &CashboxUsecase{
		movements:  movements,
		registries: registries,
		catalog:    catalog,
		listLimit:  listLimit,
		logger:     logger.With("component", "cashbox_usecase"),
	}
}

// RecordMovement records a cash movement. Either role may record; the
// category must belong to the catalog set for the movement type.
func (uc *CashboxUsecase) RecordMovement(ctx context.Context, actor domain.ResolvedIdentity, req *port.RecordMovementRequest) (*domain.Movement, error) {
	if !actor.IsAuthenticated() {
		return nil, domain.ErrUnauthorized
	}

	if !uc.catalog.Contains(req.Type, req.Category) {
		return nil, apperrors.Newf(apperrors.ErrCodeInvalidInput,
			"unknown category %q for movement type %q", req.Category, req.Type)
	}

	if _, err := uc.registries.GetByID(ctx, req.RegistryID); err != nil {
		return nil, err
	}

	movement, err := domain.NewMovement(req.RegistryID, req.Description, req.Amount,
		req.Type, req.Category, actor.IdentityID(), actor.Email())
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidInput, "invalid movement", err)
	}

	if err := uc.movements.Create(ctx, movement); err != nil {
		return nil, err
	}

	uc.logger.Info("movement recorded",
		"movement_id", movement.ID,
		"registry_id", movement.RegistryID,
		"type", movement.Type,
		"amount", movement.Amount)
	return movement, nil
}

// ListMovements returns the most recent movements of a registry, newest
// first. A non-positive limit falls back to the configured default.
func (uc *CashboxUsecase) ListMovements(ctx context.Context, actor domain.ResolvedIdentity, registryID uuid.UUID, limit int) ([]*domain.Movement, error) {
	if !actor.IsAuthenticated() {
		return nil, domain.ErrUnauthorized
	}
	if limit <= 0 || limit > uc.listLimit {
		limit = uc.listLimit
	}
	return uc.movements.ListRecent(ctx, registryID, limit)
}

// DeleteMovement removes a movement. Manager only.
func (uc *CashboxUsecase) DeleteMovement(ctx context.Context, actor domain.ResolvedIdentity, id uuid.UUID) error {
	if actor.Role != domain.RoleManager {
		return domain.ErrForbidden
	}
	if err := uc.movements.Delete(ctx, id); err != nil {
		return err
	}
	uc.logger.Info("movement deleted", "movement_id", id, "by", actor.IdentityID())
	return nil
}

// RegistryBalance computes the running balance of a registry.
func (uc *CashboxUsecase) RegistryBalance(ctx context.Context, actor domain.ResolvedIdentity, registryID uuid.UUID) (*domain.Balance, error) {
	if !actor.IsAuthenticated() {
		return nil, domain.ErrUnauthorized
	}
	if _, err := uc.registries.GetByID(ctx, registryID); err != nil {
		return nil, err
	}
	return uc.movements.Balance(ctx, registryID)
}

// CreateRegistry opens a new registry. Manager only.
func (uc *CashboxUsecase) CreateRegistry(ctx context.Context, actor domain.ResolvedIdentity, req *port.CreateRegistryRequest) (*domain.Registry, error) {
	if actor.Role != domain.RoleManager {
		return nil, domain.ErrForbidden
	}

	var date time.Time
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return nil, apperrors.Newf(apperrors.ErrCodeInvalidInput,
				"invalid registry date %q, expected YYYY-MM-DD", req.Date)
		}
		date = parsed
	}

	registry, err := domain.NewRegistry(req.Kind, req.Name, req.Entity, req.Place, date, actor.IdentityID())
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidInput, "invalid registry", err)
	}

	if err := uc.registries.Create(ctx, registry); err != nil {
		return nil, err
	}

	uc.logger.Info("registry created", "registry_id", registry.ID, "name", registry.Name)
	return registry, nil
}

// ListRegistries returns the registries of the calling manager. Employees
// see the registries of the manager that authorized them.
func (uc *CashboxUsecase) ListRegistries(ctx context.Context, actor domain.ResolvedIdentity) ([]*domain.Registry, error) {
	switch actor.Role {
	case domain.RoleManager:
		return uc.registries.ListByManager(ctx, actor.IdentityID())
	case domain.RoleEmployee:
		return uc.registries.ListByManager(ctx, actor.Employee.AuthorizedBy)
	default:
		return nil, domain.ErrUnauthorized
	}
}

// IsNotFound reports whether err denotes a missing registry or movement.
func IsNotFound(err error) bool {
	return errors.Is(err, domain.ErrRegistryNotFound) || errors.Is(err, domain.ErrMovementNotFound)
}
