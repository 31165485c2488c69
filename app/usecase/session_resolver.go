package usecase

import (
	"context"
	"errors"
	"log/slog"

	"cajachica-service/app/domain"
	"cajachica-service/app/port"
)

// SessionResolverUsecase implements port.SessionResolver over the credential
// store and the profile directory.
type SessionResolverUsecase struct {
	credentials port.CredentialStore
	directory   port.ProfileDirectory
	logger      *slog.Logger
}

// NewSessionResolverUsecase creates a new SessionResolverUsecase instance.
func NewSessionResolverUsecase(credentials port.CredentialStore, directory port.ProfileDirectory, logger *slog.Logger) *SessionResolverUsecase {
	return &SessionResolverUsecase{
		credentials: credentials,
		directory:   directory,
		logger:      logger.With("component", "session_resolver"),
	}
}

// Resolve derives the authorization role for a session-change event.
// The manager lookup always runs first; a single identity cannot resolve as
// both roles and this tie-break is fixed. An authenticated session with no
// profile in either directory is actively signed out.
func (uc *SessionResolverUsecase) Resolve(ctx context.Context, session *domain.Session) domain.ResolvedIdentity {
	if session == nil {
		return domain.NoIdentity()
	}

	manager, err := uc.directory.GetManagerProfile(ctx, session.IdentityID)
	if err == nil {
		return domain.ManagerIdentity(session, manager)
	}
	if !errors.Is(err, domain.ErrProfileNotFound) {
		// Fail closed: an unreachable directory denies, it never grants.
		uc.logger.Error("manager lookup failed, denying",
			"identity_id", session.IdentityID,
			"error", err)
		return domain.NoIdentity()
	}

	employee, err := uc.directory.GetEmployeeProfile(ctx, session.Email)
	if err == nil {
		return domain.EmployeeIdentity(session, employee)
	}
	if !errors.Is(err, domain.ErrProfileNotFound) {
		uc.logger.Error("employee lookup failed, denying",
			"email", session.Email,
			"error", err)
		return domain.NoIdentity()
	}

	// Authenticated but unprofiled: such a session must not stay logged in.
	uc.logger.Warn("session has no profile in either directory, revoking",
		"identity_id", session.IdentityID,
		"email", session.Email)
	if err := uc.credentials.RevokeSession(ctx, session.Token); err != nil {
		uc.logger.Error("failed to revoke unprofiled session", "error", err)
	}
	return domain.NoIdentity()
}

// AuthenticateManager authenticates against the credential store, then runs
// only the manager branch of the lookup. Login intent declares the expected
// role, so there is no employee fallback. On every failure path the active
// session is cleared before returning.
func (uc *SessionResolverUsecase) AuthenticateManager(ctx context.Context, email, password string) (domain.ResolvedIdentity, error) {
	session, err := uc.credentials.Authenticate(ctx, email, password)
	if err != nil {
		return domain.NoIdentity(), err
	}

	manager, err := uc.directory.GetManagerProfile(ctx, session.IdentityID)
	if err != nil {
		// Never leave an authenticated-but-unauthorized session behind.
		if revokeErr := uc.credentials.RevokeSession(ctx, session.Token); revokeErr != nil {
			uc.logger.Error("failed to revoke session after denied manager login", "error", revokeErr)
		}
		if errors.Is(err, domain.ErrProfileNotFound) {
			return domain.NoIdentity(), domain.NewAuthError(domain.AuthCodeNotAuthorized,
				"no manager profile for this account", nil)
		}
		return domain.NoIdentity(), domain.NewAuthError(domain.AuthCodeNetworkFailure,
			"manager lookup failed", err)
	}

	uc.logger.Info("manager authenticated", "identity_id", session.IdentityID)
	return domain.ManagerIdentity(session, manager), nil
}

// AuthenticateEmployee runs three fail-fast gates in fixed order:
//  1. the employee profile must exist (checked before the credential store
//     so an unauthorized email never consumes a login attempt),
//  2. the claimed position must match the stored one,
//  3. only then is the password authenticated.
func (uc *SessionResolverUsecase) AuthenticateEmployee(ctx context.Context, email, password, claimedPosition string) (domain.ResolvedIdentity, error) {
	employee, err := uc.directory.GetEmployeeProfile(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return domain.NoIdentity(), domain.NewAuthError(domain.AuthCodeNotAuthorized,
				"email is not authorized for employee access", nil)
		}
		return domain.NoIdentity(), domain.NewAuthError(domain.AuthCodeNetworkFailure,
			"employee lookup failed", err)
	}

	if !employee.MatchesPosition(claimedPosition) {
		return domain.NoIdentity(), domain.NewAuthError(domain.AuthCodePositionMismatch,
			"claimed position does not match the registered one", nil)
	}

	session, err := uc.credentials.Authenticate(ctx, email, password)
	if err != nil {
		return domain.NoIdentity(), err
	}

	uc.logger.Info("employee authenticated", "email", email, "position", employee.Position)
	return domain.EmployeeIdentity(session, employee), nil
}

// RegisterManager creates a credential identity and its manager profile. A
// failed profile write rolls the identity back so registration is all or
// nothing.
func (uc *SessionResolverUsecase) RegisterManager(ctx context.Context, req *port.RegisterManagerRequest) (domain.ResolvedIdentity, error) {
	identityID, err := uc.credentials.CreateIdentity(ctx, req.Email, req.Password)
	if err != nil {
		return domain.NoIdentity(), err
	}

	profile, err := domain.NewManagerProfile(identityID, req.Name, req.Surname, req.Email)
	if err != nil {
		uc.rollbackIdentity(ctx, identityID)
		return domain.NoIdentity(), domain.NewAuthError(domain.AuthCodeInvalidEmail,
			"invalid manager registration", err)
	}
	profile.DocumentType = req.DocumentType
	profile.DocumentNumber = req.DocumentNumber

	if err := uc.directory.PutManagerProfile(ctx, profile); err != nil {
		uc.rollbackIdentity(ctx, identityID)
		return domain.NoIdentity(), domain.NewAuthError(domain.AuthCodeNetworkFailure,
			"failed to store manager profile", err)
	}

	session, err := uc.credentials.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		// Registration itself succeeded; the caller can log in normally.
		uc.logger.Warn("post-registration login failed", "email", req.Email, "error", err)
		return domain.NoIdentity(), err
	}

	uc.logger.Info("manager registered", "identity_id", identityID)
	return domain.ManagerIdentity(session, profile), nil
}

func (uc *SessionResolverUsecase) rollbackIdentity(ctx context.Context, identityID string) {
	if err := uc.credentials.DeleteIdentity(ctx, identityID); err != nil {
		uc.logger.Error("failed to roll back identity", "identity_id", identityID, "error", err)
	}
}

// AuthorizeEmployee records an employee authorization. Pure directory write:
// no session is created or touched.
func (uc *SessionResolverUsecase) AuthorizeEmployee(ctx context.Context, email, position, managerID string) error {
	profile, err := domain.NewEmployeeProfile(email, position, managerID)
	if err != nil {
		return err
	}
	if err := uc.directory.PutEmployeeProfile(ctx, profile); err != nil {
		return err
	}
	uc.logger.Info("employee authorized", "email", email, "position", position, "by", managerID)
	return nil
}

// DeauthorizeEmployee removes an employee authorization. A session already
// active under that email keeps running until its next Resolve; revocation
// is eventual, not immediate.
func (uc *SessionResolverUsecase) DeauthorizeEmployee(ctx context.Context, email string) error {
	err := uc.directory.DeleteEmployeeProfile(ctx, email)
	if err != nil && !errors.Is(err, domain.ErrProfileNotFound) {
		return err
	}
	uc.logger.Info("employee deauthorized", "email", email)
	return nil
}

// ListTeam returns the employees authorized by a manager.
func (uc *SessionResolverUsecase) ListTeam(ctx context.Context, managerID string) ([]*domain.EmployeeProfile, error) {
	return uc.directory.ListEmployeesByManager(ctx, managerID)
}
