package domain

import (
	"time"
)

// Role is the authorization role derived for an authenticated session.
// It is never stored on the credential itself; SessionResolver derives it
// by probing the profile directory.
type Role string

const (
	RoleNone     Role = "none"
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

// Session is the ephemeral authenticated session owned by the credential
// store. IdentityID is the opaque identity token the manager directory is
// keyed by; Email keys the employee directory.
type Session struct {
	Token           string    `json:"-"`
	ID              string    `json:"id"`
	IdentityID      string    `json:"identity_id"`
	Email           string    `json:"email"`
	AuthenticatedAt time.Time `json:"authenticated_at"`
	ExpiresAt       time.Time `json:"expires_at"`
}

// IsExpired returns true if the session has expired.
func (s *Session) IsExpired() bool {
	return !s.ExpiresAt.IsZero() && time.Now().After(s.ExpiresAt)
}

// ResolvedIdentity is the output of SessionResolver: a role tag plus the
// profile matching that role. Exactly one of Manager/Employee is set when
// Role is not RoleNone, so role and profile shape are checked together.
type ResolvedIdentity struct {
	Role     Role             `json:"role"`
	Session  *Session         `json:"session,omitempty"`
	Manager  *ManagerProfile  `json:"manager,omitempty"`
	Employee *EmployeeProfile `json:"employee,omitempty"`
}

// NoIdentity returns the terminal logged-out identity.
func NoIdentity() ResolvedIdentity {
	return ResolvedIdentity{Role: RoleNone}
}

// ManagerIdentity builds a resolved manager identity.
func ManagerIdentity(session *Session, profile *ManagerProfile) ResolvedIdentity {
	return ResolvedIdentity{
		Role:    RoleManager,
		Session: session,
		Manager: profile,
	}
}

// EmployeeIdentity builds a resolved employee identity.
func EmployeeIdentity(session *Session, profile *EmployeeProfile) ResolvedIdentity {
	return ResolvedIdentity{
		Role:     RoleEmployee,
		Session:  session,
		Employee: profile,
	}
}

// IsAuthenticated returns true if the identity carries an authorized role.
func (r ResolvedIdentity) IsAuthenticated() bool {
	return r.Role == RoleManager || r.Role == RoleEmployee
}

// IdentityID returns the identity token of the underlying session, or ""
// for the logged-out identity.
func (r ResolvedIdentity) IdentityID() string {
	if r.Session == nil {
		return ""
	}
	return r.Session.IdentityID
}

// Email returns the session email, or "" for the logged-out identity.
func (r ResolvedIdentity) Email() string {
	if r.Session == nil {
		return ""
	}
	return r.Session.Email
}
