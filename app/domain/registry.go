package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Registry is a project record a cash box is tracked under: a named ledger
// opened by a manager for a site, entity and date.
type Registry struct {
	ID        uuid.UUID `json:"id"`
	Kind      string    `json:"kind"`
	Name      string    `json:"name"`
	Entity    string    `json:"entity"`
	Place     string    `json:"place"`
	Date      time.Time `json:"date"`
	ManagerID string    `json:"manager_id"`
	CreatedAt time.Time `json:"created_at"`
}

// NewRegistry creates a registry with validation.
func NewRegistry(kind, name, entity, place string, date time.Time, managerID string) (*Registry, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("registry name is required")
	}
	if strings.TrimSpace(kind) == "" {
		return nil, fmt.Errorf("registry kind is required")
	}
	if managerID == "" {
		return nil, fmt.Errorf("manager ID is required")
	}
	if date.IsZero() {
		date = time.Now()
	}

	return &Registry{
		ID:        uuid.New(),
		Kind:      strings.TrimSpace(kind),
		Name:      name,
		Entity:    strings.TrimSpace(entity),
		Place:     strings.TrimSpace(place),
		Date:      date,
		ManagerID: managerID,
		CreatedAt: time.Now(),
	}, nil
}
