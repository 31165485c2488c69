package kratos

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	kratosclient "github.com/ory/kratos-client-go"

	"cajachica-service/app/domain"
)

// Adapter implements port.CredentialBackend over the Kratos native
// (API-flow) endpoints. All Kratos errors are classified into
// domain.AuthError before they leave this package.
type Adapter struct {
	client *Client
	logger *slog.Logger
}

// NewAdapter creates a new Kratos adapter.
func NewAdapter(client *Client, logger *slog.Logger) *Adapter {
	return &Adapter{
		client: client,
		logger: logger.With("component", "kratos_adapter"),
	}
}

// PasswordLogin runs the native login flow with the password method and
// returns the resulting session.
func (a *Adapter) PasswordLogin(ctx context.Context, email, password string) (*domain.Session, error) {
	flow, resp, err := a.client.PublicAPI().FrontendAPI.
		CreateNativeLoginFlow(ctx).
		Execute()
	if err != nil {
		return nil, a.classifyError(err, resp, "create login flow")
	}

	body := kratosclient.UpdateLoginFlowWithPasswordMethodAsUpdateLoginFlowBody(
		&kratosclient.UpdateLoginFlowWithPasswordMethod{
			Method:     "password",
			Identifier: email,
			Password:   password,
		})

	success, resp, err := a.client.PublicAPI().FrontendAPI.
		UpdateLoginFlow(ctx).
		Flow(flow.Id).
		UpdateLoginFlowBody(body).
		Execute()
	if err != nil {
		return nil, a.classifyError(err, resp, "submit login flow")
	}

	session, err := a.toDomainSession(&success.Session, success.GetSessionToken())
	if err != nil {
		return nil, domain.NewAuthError(domain.AuthCodeInternal, "malformed login response", err)
	}

	a.logger.Info("password login succeeded", "identity_id", session.IdentityID)
	return session, nil
}

// Whoami validates a session token and returns its session.
func (a *Adapter) Whoami(ctx context.Context, token string) (*domain.Session, error) {
	kratosSession, resp, err := a.client.PublicAPI().FrontendAPI.
		ToSession(ctx).
		XSessionToken(token).
		Execute()
	if err != nil {
		return nil, a.classifyError(err, resp, "whoami")
	}
	return a.toDomainSession(kratosSession, token)
}

// Logout revokes the session identified by token. A token Kratos no longer
// knows is treated as already logged out.
func (a *Adapter) Logout(ctx context.Context, token string) error {
	resp, err := a.client.PublicAPI().FrontendAPI.
		PerformNativeLogout(ctx).
		PerformNativeLogoutBody(kratosclient.PerformNativeLogoutBody{
			SessionToken: token,
		}).
		Execute()
	if err != nil {
		if resp != nil && resp.StatusCode == 401 {
			return nil
		}
		return a.classifyError(err, resp, "logout")
	}
	return nil
}

// CreateIdentity registers a password identity via the admin API and
// returns its identity token.
func (a *Adapter) CreateIdentity(ctx context.Context, email, password string) (string, error) {
	body := kratosclient.CreateIdentityBody{
		SchemaId: a.client.SchemaID(),
		Traits:   map[string]interface{}{"email": email},
		Credentials: &kratosclient.IdentityWithCredentials{
			Password: &kratosclient.IdentityWithCredentialsPassword{
				Config: &kratosclient.IdentityWithCredentialsPasswordConfig{
					Password: &password,
				},
			},
		},
	}

	identity, resp, err := a.client.AdminAPI().IdentityAPI.
		CreateIdentity(ctx).
		CreateIdentityBody(body).
		Execute()
	if err != nil {
		return "", a.classifyError(err, resp, "create identity")
	}

	a.logger.Info("identity created", "identity_id", identity.Id)
	return identity.Id, nil
}

// RecoverPassword runs the native recovery flow with the code method.
// Kratos emails a recovery code to the address; an unknown address is
// reported as classified by classifyError, matching the login surface.
func (a *Adapter) RecoverPassword(ctx context.Context, email string) error {
	flow, resp, err := a.client.PublicAPI().FrontendAPI.
		CreateNativeRecoveryFlow(ctx).
		Execute()
	if err != nil {
		return a.classifyError(err, resp, "create recovery flow")
	}

	body := kratosclient.UpdateRecoveryFlowWithCodeMethodAsUpdateRecoveryFlowBody(
		&kratosclient.UpdateRecoveryFlowWithCodeMethod{
			Method: "code",
			Email:  &email,
		})

	_, resp, err = a.client.PublicAPI().FrontendAPI.
		UpdateRecoveryFlow(ctx).
		Flow(flow.Id).
		UpdateRecoveryFlowBody(body).
		Execute()
	if err != nil {
		return a.classifyError(err, resp, "submit recovery flow")
	}

	a.logger.Info("recovery message sent", "email", email)
	return nil
}

// DeleteIdentity removes an identity via the admin API.
func (a *Adapter) DeleteIdentity(ctx context.Context, identityID string) error {
	resp, err := a.client.AdminAPI().IdentityAPI.
		DeleteIdentity(ctx, identityID).
		Execute()
	if err != nil {
		return a.classifyError(err, resp, "delete identity")
	}
	return nil
}

// toDomainSession maps a Kratos session to the domain session shape.
func (a *Adapter) toDomainSession(kratosSession *kratosclient.Session, token string) (*domain.Session, error) {
	if kratosSession == nil || kratosSession.Identity == nil {
		return nil, fmt.Errorf("kratos session carries no identity")
	}

	session := &domain.Session{
		Token:      token,
		ID:         kratosSession.Id,
		IdentityID: kratosSession.Identity.Id,
		Email:      traitEmail(kratosSession.Identity.Traits),
	}
	if kratosSession.AuthenticatedAt != nil {
		session.AuthenticatedAt = *kratosSession.AuthenticatedAt
	} else {
		session.AuthenticatedAt = time.Now()
	}
	if kratosSession.ExpiresAt != nil {
		session.ExpiresAt = *kratosSession.ExpiresAt
	}
	return session, nil
}

// traitEmail extracts the email trait from the identity traits document.
func traitEmail(traits interface{}) string {
	m, ok := traits.(map[string]interface{})
	if !ok {
		return ""
	}
	email, _ := m["email"].(string)
	return email
}
