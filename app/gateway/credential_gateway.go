package gateway

import (
	"context"
	"log/slog"
	"sync"

	"cajachica-service/app/domain"
	"cajachica-service/app/port"
)

// CredentialGateway implements port.CredentialStore over a stateless
// credential backend. It owns the single active session and the
// session-change feed: authenticate and sign-out publish the new state to
// subscribers in delivery order.
type CredentialGateway struct {
	backend port.CredentialBackend
	logger  *slog.Logger

	mu          sync.Mutex
	current     *domain.Session
	subscribers map[uint64]func(*domain.Session)
	nextSubID   uint64
}

// NewCredentialGateway creates a new CredentialGateway instance.
func NewCredentialGateway(backend port.CredentialBackend, logger *slog.Logger) *CredentialGateway {
	return &CredentialGateway{
		backend:     backend,
		logger:      logger.With("component", "credential_gateway"),
		subscribers: make(map[uint64]func(*domain.Session)),
	}
}

// Authenticate exchanges the password credential for a session, makes it the
// active one and notifies subscribers. Backend failures arrive already
// classified as domain.AuthError by the driver.
func (g *CredentialGateway) Authenticate(ctx context.Context, email, password string) (*domain.Session, error) {
	session, err := g.backend.PasswordLogin(ctx, email, password)
	if err != nil {
		return nil, err
	}

	g.setCurrent(session)
	g.logger.Info("session established", "identity_id", session.IdentityID)
	return session, nil
}

// SignOut terminates the active session, if any, and notifies subscribers
// with nil. Idempotent: with no active session it succeeds immediately.
func (g *CredentialGateway) SignOut(ctx context.Context) error {
	g.mu.Lock()
	session := g.current
	g.mu.Unlock()

	if session == nil {
		return nil
	}

	if err := g.backend.Logout(ctx, session.Token); err != nil {
		// The local session is cleared regardless; the backend session will
		// expire on its own.
		g.logger.Warn("backend logout failed", "error", err)
	}

	g.setCurrent(nil)
	return nil
}

// RevokeSession terminates the session identified by token. If it is the
// active session, subscribers are notified of the sign-out.
func (g *CredentialGateway) RevokeSession(ctx context.Context, token string) error {
	if err := g.backend.Logout(ctx, token); err != nil {
		return err
	}

	g.mu.Lock()
	isCurrent := g.current != nil && g.current.Token == token
	g.mu.Unlock()
	if isCurrent {
		g.setCurrent(nil)
	}
	return nil
}

// CurrentSession returns the active session, or nil.
func (g *CredentialGateway) CurrentSession() *domain.Session {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.current
}

// Subscribe registers a session-change listener. The returned function
// removes it; calling it more than once is harmless.
func (g *CredentialGateway) Subscribe(fn func(*domain.Session)) func() {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := g.nextSubID
	g.nextSubID++
	g.subscribers[id] = fn

	return func() {
		g.mu.Lock()
		defer g.mu.Unlock()
		delete(g.subscribers, id)
	}
}

// SessionFromToken validates a presented token against the backend without
// touching the active session. Used by the request auth middleware.
func (g *CredentialGateway) SessionFromToken(ctx context.Context, token string) (*domain.Session, error) {
	return g.backend.Whoami(ctx, token)
}

// CreateIdentity registers a new password identity.
func (g *CredentialGateway) CreateIdentity(ctx context.Context, email, password string) (string, error) {
	return g.backend.CreateIdentity(ctx, email, password)
}

// DeleteIdentity removes an identity.
func (g *CredentialGateway) DeleteIdentity(ctx context.Context, identityID string) error {
	return g.backend.DeleteIdentity(ctx, identityID)
}

// RecoverPassword triggers a password-recovery message for email. The active
// session and the subscribers are untouched: recovery completes out of band
// and the user logs in again afterwards.
func (g *CredentialGateway) RecoverPassword(ctx context.Context, email string) error {
	return g.backend.RecoverPassword(ctx, email)
}

// setCurrent swaps the active session and notifies subscribers. Listeners
// are invoked outside the lock, in registration order is not guaranteed but
// each listener sees changes in delivery order.
func (g *CredentialGateway) setCurrent(session *domain.Session) {
	g.mu.Lock()
	g.current = session
	listeners := make([]func(*domain.Session), 0, len(g.subscribers))
	for _, fn := range g.subscribers {
		listeners = append(listeners, fn)
	}
	g.mu.Unlock()

	for _, fn := range listeners {
		fn(session)
	}
}
