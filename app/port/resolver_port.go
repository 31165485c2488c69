package port

//go:generate mockgen -source=resolver_port.go -destination=../mocks/mock_resolver_port.go -package=mocks

import (
	"context"

	"cajachica-service/app/domain"
)

// RegisterManagerRequest carries the fields of the manager registration
// operation.
type RegisterManagerRequest struct {
	Name           string
	Surname        string
	Email          string
	Password       string
	DocumentType   string
	DocumentNumber string
}

// SessionResolver converts authentication events into authorization
// decisions. Role is not stored on the credential; it is derived by probing
// the manager directory first, then the employee directory.
type SessionResolver interface {
	// Resolve derives the identity for a session-change event. A nil session
	// is the terminal logged-out state. An authenticated session with no
	// profile in either directory is force-signed-out. Directory failures
	// deny by default.
	Resolve(ctx context.Context, session *domain.Session) domain.ResolvedIdentity

	// AuthenticateManager authenticates and performs only the manager branch
	// of the lookup. No failure path leaves an active session behind.
	AuthenticateManager(ctx context.Context, email, password string) (domain.ResolvedIdentity, error)

	// AuthenticateEmployee gates in fixed order: profile existence, position
	// match, then password. The credential store is never touched when an
	// earlier gate fails.
	AuthenticateEmployee(ctx context.Context, email, password, claimedPosition string) (domain.ResolvedIdentity, error)

	// RegisterManager creates a credential identity plus its manager profile,
	// rolling back the identity when the profile write fails.
	RegisterManager(ctx context.Context, req *RegisterManagerRequest) (domain.ResolvedIdentity, error)

	// AuthorizeEmployee and DeauthorizeEmployee are pure directory writes
	// with no session side effects; revocation takes hold on the next
	// Resolve for that identity.
	AuthorizeEmployee(ctx context.Context, email, position, managerID string) error
	DeauthorizeEmployee(ctx context.Context, email string) error

	// ListTeam returns the employee profiles authorized by a manager.
	ListTeam(ctx context.Context, managerID string) ([]*domain.EmployeeProfile, error)
}
