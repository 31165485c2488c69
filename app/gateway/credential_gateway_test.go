package gateway

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"cajachica-service/app/domain"
	mock_port "cajachica-service/app/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testSession(token string) *domain.Session {
	return &domain.Session{
		Token:      token,
		ID:         "session-" + token,
		IdentityID: "identity-1",
		Email:      "user@example.com",
	}
}

func TestCredentialGateway_Authenticate(t *testing.T) {
	t.Run("successful login becomes the active session and is published", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		backend := mock_port.NewMockCredentialBackend(ctrl)
		session := testSession("tok-1")
		backend.EXPECT().
			PasswordLogin(gomock.Any(), "user@example.com", "secret123").
			Return(session, nil)

		gw := NewCredentialGateway(backend, testLogger())

		var events []*domain.Session
		gw.Subscribe(func(s *domain.Session) {
			events = append(events, s)
		})

		got, err := gw.Authenticate(context.Background(), "user@example.com", "secret123")
		require.NoError(t, err)
		assert.Same(t, session, got)
		assert.Same(t, session, gw.CurrentSession())
		require.Len(t, events, 1)
		assert.Same(t, session, events[0])
	})

	t.Run("failed login leaves no session and publishes nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		backend := mock_port.NewMockCredentialBackend(ctrl)
		backend.EXPECT().
			PasswordLogin(gomock.Any(), "user@example.com", "wrong").
			Return(nil, domain.NewAuthError(domain.AuthCodeWrongPassword, "wrong password", nil))

		gw := NewCredentialGateway(backend, testLogger())

		notified := false
		gw.Subscribe(func(*domain.Session) { notified = true })

		_, err := gw.Authenticate(context.Background(), "user@example.com", "wrong")
		require.Error(t, err)
		assert.Equal(t, domain.AuthCodeWrongPassword, domain.AuthCodeOf(err))
		assert.Nil(t, gw.CurrentSession())
		assert.False(t, notified)
	})
}

func TestCredentialGateway_SignOut(t *testing.T) {
	t.Run("is idempotent with no active session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		backend := mock_port.NewMockCredentialBackend(ctrl)
		gw := NewCredentialGateway(backend, testLogger())

		// No Logout expectation: the backend must not be called.
		assert.NoError(t, gw.SignOut(context.Background()))
	})

	t.Run("clears the session and publishes nil", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		backend := mock_port.NewMockCredentialBackend(ctrl)
		session := testSession("tok-1")
		backend.EXPECT().PasswordLogin(gomock.Any(), gomock.Any(), gomock.Any()).Return(session, nil)
		backend.EXPECT().Logout(gomock.Any(), "tok-1").Return(nil)

		gw := NewCredentialGateway(backend, testLogger())
		_, err := gw.Authenticate(context.Background(), "user@example.com", "secret123")
		require.NoError(t, err)

		var events []*domain.Session
		gw.Subscribe(func(s *domain.Session) { events = append(events, s) })

		require.NoError(t, gw.SignOut(context.Background()))
		assert.Nil(t, gw.CurrentSession())
		require.Len(t, events, 1)
		assert.Nil(t, events[0])
	})

	t.Run("clears locally even when the backend call fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		backend := mock_port.NewMockCredentialBackend(ctrl)
		session := testSession("tok-1")
		backend.EXPECT().PasswordLogin(gomock.Any(), gomock.Any(), gomock.Any()).Return(session, nil)
		backend.EXPECT().Logout(gomock.Any(), "tok-1").Return(errors.New("network down"))

		gw := NewCredentialGateway(backend, testLogger())
		_, err := gw.Authenticate(context.Background(), "user@example.com", "secret123")
		require.NoError(t, err)

		assert.NoError(t, gw.SignOut(context.Background()))
		assert.Nil(t, gw.CurrentSession())
	})
}

func TestCredentialGateway_RevokeSession(t *testing.T) {
	t.Run("revoking the active session publishes nil", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		backend := mock_port.NewMockCredentialBackend(ctrl)
		session := testSession("tok-1")
		backend.EXPECT().PasswordLogin(gomock.Any(), gomock.Any(), gomock.Any()).Return(session, nil)
		backend.EXPECT().Logout(gomock.Any(), "tok-1").Return(nil)

		gw := NewCredentialGateway(backend, testLogger())
		_, err := gw.Authenticate(context.Background(), "user@example.com", "secret123")
		require.NoError(t, err)

		var events []*domain.Session
		gw.Subscribe(func(s *domain.Session) { events = append(events, s) })

		require.NoError(t, gw.RevokeSession(context.Background(), "tok-1"))
		assert.Nil(t, gw.CurrentSession())
		require.Len(t, events, 1)
		assert.Nil(t, events[0])
	})

	t.Run("revoking a foreign token keeps the active session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		backend := mock_port.NewMockCredentialBackend(ctrl)
		session := testSession("tok-1")
		backend.EXPECT().PasswordLogin(gomock.Any(), gomock.Any(), gomock.Any()).Return(session, nil)
		backend.EXPECT().Logout(gomock.Any(), "tok-other").Return(nil)

		gw := NewCredentialGateway(backend, testLogger())
		_, err := gw.Authenticate(context.Background(), "user@example.com", "secret123")
		require.NoError(t, err)

		notified := false
		gw.Subscribe(func(*domain.Session) { notified = true })

		require.NoError(t, gw.RevokeSession(context.Background(), "tok-other"))
		assert.Same(t, session, gw.CurrentSession())
		assert.False(t, notified)
	})

	t.Run("backend failure surfaces and keeps state", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		backend := mock_port.NewMockCredentialBackend(ctrl)
		backend.EXPECT().Logout(gomock.Any(), "tok-1").Return(errors.New("network down"))

		gw := NewCredentialGateway(backend, testLogger())
		assert.Error(t, gw.RevokeSession(context.Background(), "tok-1"))
	})
}

func TestCredentialGateway_Subscribe(t *testing.T) {
	t.Run("unsubscribe stops delivery", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		backend := mock_port.NewMockCredentialBackend(ctrl)
		backend.EXPECT().
			PasswordLogin(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(testSession("tok-1"), nil).
			Times(2)

		gw := NewCredentialGateway(backend, testLogger())

		count := 0
		unsubscribe := gw.Subscribe(func(*domain.Session) { count++ })

		_, err := gw.Authenticate(context.Background(), "user@example.com", "secret123")
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		unsubscribe()
		unsubscribe() // double-unsubscribe is harmless

		_, err = gw.Authenticate(context.Background(), "user@example.com", "secret123")
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("multiple subscribers all see the event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		backend := mock_port.NewMockCredentialBackend(ctrl)
		backend.EXPECT().
			PasswordLogin(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(testSession("tok-1"), nil)

		gw := NewCredentialGateway(backend, testLogger())

		var a, b int
		gw.Subscribe(func(*domain.Session) { a++ })
		gw.Subscribe(func(*domain.Session) { b++ })

		_, err := gw.Authenticate(context.Background(), "user@example.com", "secret123")
		require.NoError(t, err)
		assert.Equal(t, 1, a)
		assert.Equal(t, 1, b)
	})
}

func TestCredentialGateway_Passthroughs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	backend := mock_port.NewMockCredentialBackend(ctrl)
	session := testSession("tok-1")

	backend.EXPECT().Whoami(gomock.Any(), "tok-1").Return(session, nil)
	backend.EXPECT().CreateIdentity(gomock.Any(), "a@example.com", "secret123").Return("identity-new", nil)
	backend.EXPECT().DeleteIdentity(gomock.Any(), "identity-new").Return(nil)

	gw := NewCredentialGateway(backend, testLogger())

	got, err := gw.SessionFromToken(context.Background(), "tok-1")
	require.NoError(t, err)
	assert.Same(t, session, got)

	id, err := gw.CreateIdentity(context.Background(), "a@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "identity-new", id)

	assert.NoError(t, gw.DeleteIdentity(context.Background(), "identity-new"))
}

func TestCredentialGateway_RecoverPassword(t *testing.T) {
	t.Run("delegates without touching the active session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		backend := mock_port.NewMockCredentialBackend(ctrl)
		session := testSession("tok-1")
		backend.EXPECT().PasswordLogin(gomock.Any(), "a@example.com", "secret123").Return(session, nil)
		backend.EXPECT().RecoverPassword(gomock.Any(), "b@example.com").Return(nil)

		gw := NewCredentialGateway(backend, testLogger())
		_, err := gw.Authenticate(context.Background(), "a@example.com", "secret123")
		require.NoError(t, err)

		var notified bool
		unsubscribe := gw.Subscribe(func(*domain.Session) { notified = true })
		defer unsubscribe()

		require.NoError(t, gw.RecoverPassword(context.Background(), "b@example.com"))
		assert.Same(t, session, gw.CurrentSession())
		assert.False(t, notified, "recovery must not publish a session change")
	})

	t.Run("backend failure surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		backend := mock_port.NewMockCredentialBackend(ctrl)
		wantErr := domain.NewAuthError(domain.AuthCodeUserNotFound, "unknown address", nil)
		backend.EXPECT().RecoverPassword(gomock.Any(), "nobody@example.com").Return(wantErr)

		gw := NewCredentialGateway(backend, testLogger())
		err := gw.RecoverPassword(context.Background(), "nobody@example.com")
		assert.Equal(t, domain.AuthCodeUserNotFound, domain.AuthCodeOf(err))
	})
}
