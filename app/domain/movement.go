package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MovementType distinguishes cash ingress from egress. The wire values keep
// the vocabulary the field crews use.
type MovementType string

const (
	MovementIngress MovementType = "ingreso"
	MovementEgress  MovementType = "gasto"
)

// Valid returns true for a known movement type.
func (t MovementType) Valid() bool {
	return t == MovementIngress || t == MovementEgress
}

// Movement is a single cash movement recorded against a registry (cash box).
type Movement struct {
	ID          uuid.UUID    `json:"id"`
	RegistryID  uuid.UUID    `json:"registry_id"`
	Description string       `json:"description"`
	Amount      float64      `json:"amount"`
	Type        MovementType `json:"type"`
	Category    string       `json:"category"`
	ActorID     string       `json:"actor_id"`
	ActorEmail  string       `json:"actor_email"`
	CreatedAt   time.Time    `json:"created_at"`
}

// NewMovement creates a movement with validation. The category must already
// be validated against the catalog for the movement type; this constructor
// only enforces shape.
func NewMovement(registryID uuid.UUID, description string, amount float64, movementType MovementType, category, actorID, actorEmail string) (*Movement, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, fmt.Errorf("description is required")
	}
	if amount <= 0 {
		return nil, fmt.Errorf("amount must be greater than zero")
	}
	if !movementType.Valid() {
		return nil, fmt.Errorf("invalid movement type: %s", movementType)
	}
	if category == "" {
		return nil, fmt.Errorf("category is required")
	}
	if registryID == uuid.Nil {
		return nil, fmt.Errorf("registry ID is required")
	}
	if actorID == "" {
		return nil, fmt.Errorf("actor identity is required")
	}

	return &Movement{
		ID:          uuid.New(),
		RegistryID:  registryID,
		Description: description,
		Amount:      amount,
		Type:        movementType,
		Category:    category,
		ActorID:     actorID,
		ActorEmail:  actorEmail,
		CreatedAt:   time.Now(),
	}, nil
}

// Balance is the running balance of a registry: total ingress minus total
// egress.
type Balance struct {
	RegistryID uuid.UUID `json:"registry_id"`
	Ingress    float64   `json:"ingress"`
	Egress     float64   `json:"egress"`
}

// Net returns ingress minus egress.
func (b Balance) Net() float64 {
	return b.Ingress - b.Egress
}
