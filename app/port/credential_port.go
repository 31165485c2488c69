package port

//go:generate mockgen -source=credential_port.go -destination=../mocks/mock_credential_port.go -package=mocks

import (
	"context"

	"cajachica-service/app/domain"
)

// CredentialStore is the authentication collaborator consumed by the session
// resolver. Exactly one session is active per store at a time; changes to it
// are pushed to subscribers in delivery order.
type CredentialStore interface {
	// Authenticate exchanges a password credential for a session and makes it
	// the active session. Failures are classified as domain.AuthError.
	Authenticate(ctx context.Context, email, password string) (*domain.Session, error)

	// SignOut terminates the active session. Idempotent: succeeds even when
	// no session is active.
	SignOut(ctx context.Context) error

	// RevokeSession terminates the session identified by token, whether or
	// not it is the active one.
	RevokeSession(ctx context.Context, token string) error

	// CurrentSession returns the active session, or nil.
	CurrentSession() *domain.Session

	// Subscribe registers a session-change listener and returns its
	// unsubscribe handle. The listener receives nil on sign-out.
	Subscribe(fn func(*domain.Session)) (unsubscribe func())

	// SessionFromToken validates a presented session token without touching
	// the active session.
	SessionFromToken(ctx context.Context, token string) (*domain.Session, error)

	// CreateIdentity registers a new password identity and returns its
	// identity token. Used by manager registration only.
	CreateIdentity(ctx context.Context, email, password string) (string, error)

	// DeleteIdentity removes an identity. Used to roll back a registration
	// whose profile write failed.
	DeleteIdentity(ctx context.Context, identityID string) error

	// RecoverPassword sends a password-recovery message to the identity
	// registered under email. No session side effects.
	RecoverPassword(ctx context.Context, email string) error
}

// CredentialBackend is the thin driver surface the credential gateway builds
// on. It is stateless; session bookkeeping and change notification live in
// the gateway.
type CredentialBackend interface {
	PasswordLogin(ctx context.Context, email, password string) (*domain.Session, error)
	Whoami(ctx context.Context, token string) (*domain.Session, error)
	Logout(ctx context.Context, token string) error
	CreateIdentity(ctx context.Context, email, password string) (string, error)
	DeleteIdentity(ctx context.Context, identityID string) error
	RecoverPassword(ctx context.Context, email string) error
}
