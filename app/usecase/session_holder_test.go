package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"cajachica-service/app/domain"
	mock_port "cajachica-service/app/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// holderFixture wires a holder to a mock store whose Subscribe callback is
// captured, so tests can push session-change events by hand.
type holderFixture struct {
	holder   *SessionHolder
	resolver *mock_port.MockSessionResolver
	creds    *mock_port.MockCredentialStore
	push     func(*domain.Session)
}

func newHolderFixture(t *testing.T, ctrl *gomock.Controller, initial *domain.Session) *holderFixture {
	t.Helper()

	f := &holderFixture{
		resolver: mock_port.NewMockSessionResolver(ctrl),
		creds:    mock_port.NewMockCredentialStore(ctrl),
	}

	f.creds.EXPECT().
		Subscribe(gomock.Any()).
		DoAndReturn(func(fn func(*domain.Session)) func() {
			f.push = fn
			return func() {}
		})
	f.creds.EXPECT().
		CurrentSession().
		Return(initial)

	f.holder = NewSessionHolder(f.resolver, f.creds, 0, testLogger())
	return f
}

func TestSessionHolder_StartWithNoSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newHolderFixture(t, ctrl, nil)

	identity, loading := f.holder.Current()
	assert.True(t, loading, "holder must report loading before Start")
	assert.Equal(t, domain.RoleNone, identity.Role)

	f.holder.Start()

	identity, loading = f.holder.Current()
	assert.False(t, loading, "a nil seed session resolves synchronously")
	assert.Equal(t, domain.RoleNone, identity.Role)
}

func TestSessionHolder_StartResolvesExistingSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	session := testSession()
	f := newHolderFixture(t, ctrl, session)

	f.resolver.EXPECT().
		Resolve(gomock.Any(), session).
		Return(domain.ManagerIdentity(session, &domain.ManagerProfile{IdentityID: session.IdentityID}))

	f.holder.Start()

	require.Eventually(t, func() bool {
		identity, loading := f.holder.Current()
		return !loading && identity.Role == domain.RoleManager
	}, time.Second, 5*time.Millisecond)
}

func TestSessionHolder_StaleResolutionIsDiscarded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newHolderFixture(t, ctrl, nil)
	f.holder.Start()

	oldSession := &domain.Session{Token: "old", IdentityID: "identity-old", Email: "old@example.com"}
	newSession := &domain.Session{Token: "new", IdentityID: "identity-new", Email: "new@example.com"}

	oldStarted := make(chan struct{})
	oldRelease := make(chan struct{})

	f.resolver.EXPECT().
		Resolve(gomock.Any(), oldSession).
		DoAndReturn(func(ctx context.Context, s *domain.Session) domain.ResolvedIdentity {
			close(oldStarted)
			<-oldRelease
			return domain.EmployeeIdentity(s, &domain.EmployeeProfile{Email: s.Email, Position: "cajero"})
		})
	f.resolver.EXPECT().
		Resolve(gomock.Any(), newSession).
		Return(domain.ManagerIdentity(newSession, &domain.ManagerProfile{IdentityID: newSession.IdentityID}))

	// The old event's resolution hangs while the new event arrives and lands.
	f.push(oldSession)
	<-oldStarted
	f.push(newSession)

	require.Eventually(t, func() bool {
		identity, _ := f.holder.Current()
		return identity.Role == domain.RoleManager
	}, time.Second, 5*time.Millisecond)

	// Releasing the stale resolution must not overwrite the newer result.
	close(oldRelease)
	time.Sleep(50 * time.Millisecond)

	identity, loading := f.holder.Current()
	assert.False(t, loading)
	assert.Equal(t, domain.RoleManager, identity.Role)
	assert.Equal(t, "identity-new", identity.IdentityID())
}

func TestSessionHolder_NilEventWinsOverInFlightResolution(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newHolderFixture(t, ctrl, nil)
	f.holder.Start()

	session := testSession()
	started := make(chan struct{})
	release := make(chan struct{})

	f.resolver.EXPECT().
		Resolve(gomock.Any(), session).
		DoAndReturn(func(ctx context.Context, s *domain.Session) domain.ResolvedIdentity {
			close(started)
			<-release
			return domain.ManagerIdentity(s, &domain.ManagerProfile{IdentityID: s.IdentityID})
		})

	f.push(session)
	<-started

	// Logout arrives while the login resolution is still running.
	f.push(nil)

	identity, loading := f.holder.Current()
	assert.False(t, loading)
	assert.Equal(t, domain.RoleNone, identity.Role)

	close(release)
	time.Sleep(50 * time.Millisecond)

	identity, _ = f.holder.Current()
	assert.Equal(t, domain.RoleNone, identity.Role, "stale login must not resurrect after logout")
}

func TestSessionHolder_Logout(t *testing.T) {
	t.Run("clears locally even when sign-out fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		session := testSession()
		f := newHolderFixture(t, ctrl, session)

		f.resolver.EXPECT().
			Resolve(gomock.Any(), session).
			Return(domain.ManagerIdentity(session, &domain.ManagerProfile{IdentityID: session.IdentityID}))

		f.holder.Start()
		require.Eventually(t, func() bool {
			identity, _ := f.holder.Current()
			return identity.Role == domain.RoleManager
		}, time.Second, 5*time.Millisecond)

		f.creds.EXPECT().
			SignOut(gomock.Any()).
			Return(errors.New("network down"))

		err := f.holder.Logout(context.Background())
		assert.NoError(t, err, "local reset is the contract; transport failure stays internal")

		identity, loading := f.holder.Current()
		assert.False(t, loading)
		assert.Equal(t, domain.RoleNone, identity.Role)
	})

	t.Run("is idempotent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newHolderFixture(t, ctrl, nil)
		f.holder.Start()

		f.creds.EXPECT().SignOut(gomock.Any()).Return(nil).Times(2)

		assert.NoError(t, f.holder.Logout(context.Background()))
		assert.NoError(t, f.holder.Logout(context.Background()))

		identity, _ := f.holder.Current()
		assert.Equal(t, domain.RoleNone, identity.Role)
	})
}

func TestSessionHolder_ResolveTimeout(t *testing.T) {
	t.Run("configured timeout bounds the resolution context", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		resolver := mock_port.NewMockSessionResolver(ctrl)
		creds := mock_port.NewMockCredentialStore(ctrl)

		var push func(*domain.Session)
		creds.EXPECT().
			Subscribe(gomock.Any()).
			DoAndReturn(func(fn func(*domain.Session)) func() {
				push = fn
				return func() {}
			})
		creds.EXPECT().CurrentSession().Return(nil)

		session := testSession()
		deadlines := make(chan time.Time, 1)
		resolver.EXPECT().
			Resolve(gomock.Any(), session).
			DoAndReturn(func(ctx context.Context, s *domain.Session) domain.ResolvedIdentity {
				deadline, ok := ctx.Deadline()
				require.True(t, ok, "resolution context must carry a deadline")
				deadlines <- deadline
				return domain.NoIdentity()
			})

		holder := NewSessionHolder(resolver, creds, 3*time.Second, testLogger())
		holder.Start()
		push(session)

		select {
		case deadline := <-deadlines:
			remaining := time.Until(deadline)
			assert.Greater(t, remaining, time.Second)
			assert.LessOrEqual(t, remaining, 3*time.Second)
		case <-time.After(time.Second):
			t.Fatal("resolution never ran")
		}
	})

	t.Run("non-positive timeout falls back to the default", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		holder := NewSessionHolder(
			mock_port.NewMockSessionResolver(ctrl),
			mock_port.NewMockCredentialStore(ctrl),
			0, testLogger())
		assert.Equal(t, defaultResolveTimeout, holder.resolveTimeout)
	})
}

func TestSessionHolder_StopKeepsIdentityReadable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	session := testSession()
	f := newHolderFixture(t, ctrl, session)

	f.resolver.EXPECT().
		Resolve(gomock.Any(), session).
		Return(domain.ManagerIdentity(session, &domain.ManagerProfile{IdentityID: session.IdentityID}))

	f.holder.Start()
	require.Eventually(t, func() bool {
		identity, _ := f.holder.Current()
		return identity.Role == domain.RoleManager
	}, time.Second, 5*time.Millisecond)

	f.holder.Stop()

	identity, loading := f.holder.Current()
	assert.False(t, loading)
	assert.Equal(t, domain.RoleManager, identity.Role)
}
