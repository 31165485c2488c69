package config

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"cajachica-service/app/domain"
)

//go:embed categories.yaml
var categoriesYAML []byte

// Category is one selectable movement category.
type Category struct {
	Value string `yaml:"value" json:"value"`
	Label string `yaml:"label" json:"label"`
}

// CategoryCatalog holds the category sets per movement type. The catalog is
// shipped with the binary; clients fetch it instead of hard-coding the lists.
type CategoryCatalog struct {
	Egress  []Category `yaml:"gasto" json:"gasto"`
	Ingress []Category `yaml:"ingreso" json:"ingreso"`
}

// LoadCategoryCatalog parses and validates the embedded catalog.
func LoadCategoryCatalog() (*CategoryCatalog, error) {
	return parseCategoryCatalog(categoriesYAML)
}

func parseCategoryCatalog(data []byte) (*CategoryCatalog, error) {
	catalog := &CategoryCatalog{}
	if err := yaml.Unmarshal(data, catalog); err != nil {
		return nil, fmt.Errorf("failed to parse category catalog: %w", err)
	}

	if len(catalog.Egress) == 0 || len(catalog.Ingress) == 0 {
		return nil, fmt.Errorf("category catalog must define both movement types")
	}

	seen := make(map[string]bool)
	for _, c := range append(append([]Category{}, catalog.Egress...), catalog.Ingress...) {
		if c.Value == "" || c.Label == "" {
			return nil, fmt.Errorf("category entries need both value and label")
		}
		if seen[c.Value] {
			return nil, fmt.Errorf("duplicate category value: %s", c.Value)
		}
		seen[c.Value] = true
	}

	return catalog, nil
}

// Contains reports whether value is a valid category for the movement type.
func (c *CategoryCatalog) Contains(movementType domain.MovementType, value string) bool {
	var set []Category
	switch movementType {
	case domain.MovementEgress:
		set = c.Egress
	case domain.MovementIngress:
		set = c.Ingress
	default:
		return false
	}
	for _, category := range set {
		if category.Value == value {
			return true
		}
	}
	return false
}
