package port

//go:generate mockgen -source=directory_port.go -destination=../mocks/mock_directory_port.go -package=mocks

import (
	"context"

	"cajachica-service/app/domain"
)

// ProfileDirectory is the keyed profile lookup the resolver probes to derive
// a role. Managers are keyed by identity token, employees by email. Lookups
// return domain.ErrProfileNotFound when no record exists; that is a branch
// value, not a failure.
type ProfileDirectory interface {
	GetManagerProfile(ctx context.Context, identityID string) (*domain.ManagerProfile, error)
	GetEmployeeProfile(ctx context.Context, email string) (*domain.EmployeeProfile, error)

	PutManagerProfile(ctx context.Context, profile *domain.ManagerProfile) error
	PutEmployeeProfile(ctx context.Context, profile *domain.EmployeeProfile) error
	DeleteEmployeeProfile(ctx context.Context, email string) error

	ListEmployeesByManager(ctx context.Context, managerID string) ([]*domain.EmployeeProfile, error)
}
