package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"cajachica-service/app/domain"
	"cajachica-service/app/port"
)

// identityKey is the echo context key the resolved identity is stored under.
const identityKey = "resolved_identity"

// AuthMiddleware resolves the presented session token into a role on every
// request. A session that resolves to no role is rejected, not passed
// through.
type AuthMiddleware struct {
	credentials port.CredentialStore
	resolver    port.SessionResolver
	logger      *slog.Logger
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(credentials port.CredentialStore, resolver port.SessionResolver, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		credentials: credentials,
		resolver:    resolver,
		logger:      logger,
	}
}

// RequireAuth middleware that requires an authorized session
func (m *AuthMiddleware) RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()

			token := m.extractSessionToken(c)
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			session, err := m.credentials.SessionFromToken(ctx, token)
			if err != nil {
				m.logger.Warn("session token rejected", "error", err)
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid session")
			}

			identity := m.resolver.Resolve(ctx, session)
			if !identity.IsAuthenticated() {
				return echo.NewHTTPError(http.StatusUnauthorized, "session is not authorized")
			}

			c.Set(identityKey, identity)
			return next(c)
		}
	}
}

// RequireManager middleware that requires the manager role
func (m *AuthMiddleware) RequireManager() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := IdentityFrom(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			if identity.Role != domain.RoleManager {
				return echo.NewHTTPError(http.StatusForbidden, "manager role required")
			}
			return next(c)
		}
	}
}

// IdentityFrom extracts the resolved identity stored by RequireAuth.
func IdentityFrom(c echo.Context) (domain.ResolvedIdentity, bool) {
	identity, ok := c.Get(identityKey).(domain.ResolvedIdentity)
	return identity, ok
}

// extractSessionToken reads the token from the Authorization bearer header
// or the X-Session-Token header.
func (m *AuthMiddleware) extractSessionToken(c echo.Context) string {
	auth := c.Request().Header.Get(echo.HeaderAuthorization)
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return c.Request().Header.Get("X-Session-Token")
}
