package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"cajachica-service/app/domain"
	"cajachica-service/app/port"
)

// defaultResolveTimeout bounds a single resolution when no timeout is
// configured.
const defaultResolveTimeout = 15 * time.Second

// SessionHolder owns the process-wide current ResolvedIdentity. It
// subscribes to the credential store's session-change feed, resolves each
// event, and publishes the result. It is the only writer; everything else
// reads through Current().
//
// Ordering: every incoming event bumps a generation counter, and a
// resolution only lands if its generation is still the latest when it
// completes. A stale in-flight resolution is discarded, never queued, so a
// slow lookup for an old session cannot overwrite the result of a newer
// event. A nil-session event applies immediately and always wins.
type SessionHolder struct {
	resolver       port.SessionResolver
	credentials    port.CredentialStore
	resolveTimeout time.Duration
	logger         *slog.Logger

	mu          sync.Mutex
	generation  uint64
	identity    domain.ResolvedIdentity
	loaded      bool
	unsubscribe func()
}

// NewSessionHolder creates a stopped holder. Call Start to begin receiving
// session-change events. resolveTimeout bounds each resolution; a
// non-positive value falls back to the default.
func NewSessionHolder(resolver port.SessionResolver, credentials port.CredentialStore, resolveTimeout time.Duration, logger *slog.Logger) *SessionHolder {
	if resolveTimeout <= 0 {
		resolveTimeout = defaultResolveTimeout
	}
	return &SessionHolder{
		resolver:       resolver,
		credentials:    credentials,
		resolveTimeout: resolveTimeout,
		logger:         logger.With("component", "session_holder"),
		identity:       domain.NoIdentity(),
	}
}

// Start subscribes to the credential store and seeds the holder with the
// current session. Calling Start on a started holder is a no-op.
func (h *SessionHolder) Start() {
	h.mu.Lock()
	if h.unsubscribe != nil {
		h.mu.Unlock()
		return
	}
	h.unsubscribe = h.credentials.Subscribe(h.onSessionChange)
	h.mu.Unlock()

	h.onSessionChange(h.credentials.CurrentSession())
}

// Stop unsubscribes from the feed. The held identity stays readable.
func (h *SessionHolder) Stop() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.unsubscribe != nil {
		h.unsubscribe()
		h.unsubscribe = nil
	}
}

// Current returns the held identity and a loading flag. Loading is true
// between Start and the first completed resolution.
func (h *SessionHolder) Current() (domain.ResolvedIdentity, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.identity, !h.loaded
}

// Logout clears the held identity unconditionally, then asks the credential
// store to sign out. A transient sign-out failure is logged but never
// surfaces: local reset is the contract. Idempotent.
func (h *SessionHolder) Logout(ctx context.Context) error {
	h.mu.Lock()
	h.generation++
	h.identity = domain.NoIdentity()
	h.loaded = true
	h.mu.Unlock()

	if err := h.credentials.SignOut(ctx); err != nil {
		h.logger.Warn("sign-out call failed, local identity already cleared", "error", err)
	}
	return nil
}

// onSessionChange handles one session-change event from the feed.
func (h *SessionHolder) onSessionChange(session *domain.Session) {
	h.mu.Lock()
	h.generation++
	gen := h.generation

	if session == nil {
		// Logout is a user-directed terminal transition; it wins over any
		// in-flight resolution regardless of generation.
		h.identity = domain.NoIdentity()
		h.loaded = true
		h.mu.Unlock()
		return
	}
	h.mu.Unlock()

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), h.resolveTimeout)
		defer cancel()

		resolved := h.resolver.Resolve(ctx, session)

		h.mu.Lock()
		defer h.mu.Unlock()
		if gen != h.generation {
			h.logger.Debug("discarding stale resolution",
				"generation", gen,
				"latest", h.generation)
			return
		}
		h.identity = resolved
		h.loaded = true
	}()
}
