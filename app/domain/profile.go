package domain

import (
	"fmt"
	"net/mail"
	"strings"
	"time"
)

// ManagerProfile is the persistent manager record, keyed by the credential
// store identity token. Its existence is the sole proof of manager
// authorization.
type ManagerProfile struct {
	IdentityID     string    `json:"identity_id"`
	Name           string    `json:"name"`
	Surname        string    `json:"surname"`
	Email          string    `json:"email"`
	DocumentType   string    `json:"document_type,omitempty"`
	DocumentNumber string    `json:"document_number,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewManagerProfile creates a manager profile with validation.
func NewManagerProfile(identityID, name, surname, email string) (*ManagerProfile, error) {
	if identityID == "" {
		return nil, fmt.Errorf("identity ID is required")
	}
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("name is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("invalid email format: %w", err)
	}

	return &ManagerProfile{
		IdentityID: identityID,
		Name:       strings.TrimSpace(name),
		Surname:    strings.TrimSpace(surname),
		Email:      email,
		CreatedAt:  time.Now(),
	}, nil
}

// FullName returns the display name of the manager.
func (p *ManagerProfile) FullName() string {
	return strings.TrimSpace(p.Name + " " + p.Surname)
}

// EmployeeProfile is the persistent employee authorization record, keyed by
// email. An employee is authorized only while this record exists AND an
// active session carries the same email.
type EmployeeProfile struct {
	Email        string    `json:"email"`
	Position     string    `json:"position"`
	AuthorizedBy string    `json:"authorized_by"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewEmployeeProfile creates an employee authorization record with validation.
func NewEmployeeProfile(email, position, authorizedBy string) (*EmployeeProfile, error) {
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("invalid email format: %w", err)
	}
	if strings.TrimSpace(position) == "" {
		return nil, fmt.Errorf("position is required")
	}
	if authorizedBy == "" {
		return nil, fmt.Errorf("authorizing manager ID is required")
	}

	return &EmployeeProfile{
		Email:        email,
		Position:     strings.TrimSpace(position),
		AuthorizedBy: authorizedBy,
		CreatedAt:    time.Now(),
	}, nil
}

// MatchesPosition reports whether the claimed position equals the stored
// one. The comparison is exact: a correct password with a wrong claimed
// position must be rejected.
func (p *EmployeeProfile) MatchesPosition(claimed string) bool {
	return p.Position == strings.TrimSpace(claimed)
}
