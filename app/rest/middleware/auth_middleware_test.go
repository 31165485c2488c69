package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"cajachica-service/app/domain"
	mock_port "cajachica-service/app/mocks"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAuthMiddleware_RequireAuth(t *testing.T) {
	session := &domain.Session{Token: "token-abc", IdentityID: "identity-1", Email: "ana@example.com"}

	tests := []struct {
		name       string
		setHeader  func(req *http.Request)
		setupMocks func(credentials *mock_port.MockCredentialStore, resolver *mock_port.MockSessionResolver)
		wantStatus int
	}{
		{
			name: "bearer token resolving to manager passes",
			setHeader: func(req *http.Request) {
				req.Header.Set(echo.HeaderAuthorization, "Bearer token-abc")
			},
			setupMocks: func(credentials *mock_port.MockCredentialStore, resolver *mock_port.MockSessionResolver) {
				credentials.EXPECT().SessionFromToken(gomock.Any(), "token-abc").Return(session, nil)
				resolver.EXPECT().Resolve(gomock.Any(), session).
					Return(domain.ManagerIdentity(session, &domain.ManagerProfile{IdentityID: "identity-1"}))
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "x-session-token header also accepted",
			setHeader: func(req *http.Request) {
				req.Header.Set("X-Session-Token", "token-abc")
			},
			setupMocks: func(credentials *mock_port.MockCredentialStore, resolver *mock_port.MockSessionResolver) {
				credentials.EXPECT().SessionFromToken(gomock.Any(), "token-abc").Return(session, nil)
				resolver.EXPECT().Resolve(gomock.Any(), session).
					Return(domain.EmployeeIdentity(session, &domain.EmployeeProfile{Email: "ana@example.com"}))
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing token is rejected without touching the store",
			setHeader:  func(req *http.Request) {},
			setupMocks: func(credentials *mock_port.MockCredentialStore, resolver *mock_port.MockSessionResolver) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "dead token is rejected",
			setHeader: func(req *http.Request) {
				req.Header.Set(echo.HeaderAuthorization, "Bearer dead-token")
			},
			setupMocks: func(credentials *mock_port.MockCredentialStore, resolver *mock_port.MockSessionResolver) {
				credentials.EXPECT().SessionFromToken(gomock.Any(), "dead-token").
					Return(nil, domain.NewAuthError(domain.AuthCodeUserNotFound, "session not found", nil))
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "session resolving to no role is rejected",
			setHeader: func(req *http.Request) {
				req.Header.Set(echo.HeaderAuthorization, "Bearer token-abc")
			},
			setupMocks: func(credentials *mock_port.MockCredentialStore, resolver *mock_port.MockSessionResolver) {
				credentials.EXPECT().SessionFromToken(gomock.Any(), "token-abc").Return(session, nil)
				resolver.EXPECT().Resolve(gomock.Any(), session).Return(domain.NoIdentity())
			},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			credentials := mock_port.NewMockCredentialStore(ctrl)
			resolver := mock_port.NewMockSessionResolver(ctrl)
			tt.setupMocks(credentials, resolver)

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/v1/registries", nil)
			tt.setHeader(req)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			m := NewAuthMiddleware(credentials, resolver, testLogger())
			err := m.RequireAuth()(okHandler)(c)

			if tt.wantStatus == http.StatusOK {
				require.NoError(t, err)
				assert.Equal(t, http.StatusOK, rec.Code)

				identity, ok := IdentityFrom(c)
				assert.True(t, ok)
				assert.True(t, identity.IsAuthenticated())
				return
			}

			httpErr, ok := err.(*echo.HTTPError)
			require.True(t, ok)
			assert.Equal(t, tt.wantStatus, httpErr.Code)
		})
	}
}

func TestAuthMiddleware_RequireManager(t *testing.T) {
	session := &domain.Session{Token: "token-abc", IdentityID: "identity-1"}

	newContext := func() echo.Context {
		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/v1/team", nil)
		return e.NewContext(req, httptest.NewRecorder())
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := NewAuthMiddleware(
		mock_port.NewMockCredentialStore(ctrl),
		mock_port.NewMockSessionResolver(ctrl),
		testLogger(),
	)

	t.Run("manager passes", func(t *testing.T) {
		c := newContext()
		c.Set(identityKey, domain.ManagerIdentity(session, &domain.ManagerProfile{IdentityID: "identity-1"}))

		err := m.RequireManager()(okHandler)(c)
		assert.NoError(t, err)
	})

	t.Run("employee is forbidden", func(t *testing.T) {
		c := newContext()
		c.Set(identityKey, domain.EmployeeIdentity(session, &domain.EmployeeProfile{Email: "emp@example.com"}))

		err := m.RequireManager()(okHandler)(c)
		httpErr, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusForbidden, httpErr.Code)
	})

	t.Run("missing identity is unauthorized", func(t *testing.T) {
		err := m.RequireManager()(okHandler)(newContext())
		httpErr, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	})
}
