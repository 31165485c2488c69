package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cajachica-service/app/domain"
)

func TestLoadCategoryCatalog(t *testing.T) {
	catalog, err := LoadCategoryCatalog()
	require.NoError(t, err)

	assert.NotEmpty(t, catalog.Egress)
	assert.NotEmpty(t, catalog.Ingress)

	// The shipped catalog must carry the core field vocabulary.
	assert.True(t, catalog.Contains(domain.MovementEgress, "transporte"))
	assert.True(t, catalog.Contains(domain.MovementIngress, "ventas"))
}

func TestParseCategoryCatalog(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr bool
	}{
		{
			name: "valid catalog",
			yaml: `
gasto:
  - value: transporte
    label: Transporte
ingreso:
  - value: ventas
    label: Ventas
`,
		},
		{
			name: "missing movement type",
			yaml: `
gasto:
  - value: transporte
    label: Transporte
`,
			wantErr: true,
		},
		{
			name: "entry without label",
			yaml: `
gasto:
  - value: transporte
ingreso:
  - value: ventas
    label: Ventas
`,
			wantErr: true,
		},
		{
			name: "duplicate value across sets",
			yaml: `
gasto:
  - value: otros
    label: Otros gastos
ingreso:
  - value: otros
    label: Otros ingresos
`,
			wantErr: true,
		},
		{
			name:    "malformed yaml",
			yaml:    `gasto: [`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog, err := parseCategoryCatalog([]byte(tt.yaml))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, catalog)
			}
		})
	}
}

func TestCategoryCatalog_Contains(t *testing.T) {
	catalog := &CategoryCatalog{
		Egress:  []Category{{Value: "transporte", Label: "Transporte"}},
		Ingress: []Category{{Value: "ventas", Label: "Ventas"}},
	}

	assert.True(t, catalog.Contains(domain.MovementEgress, "transporte"))
	assert.True(t, catalog.Contains(domain.MovementIngress, "ventas"))

	// Category sets are disjoint per movement type.
	assert.False(t, catalog.Contains(domain.MovementIngress, "transporte"))
	assert.False(t, catalog.Contains(domain.MovementEgress, "ventas"))

	assert.False(t, catalog.Contains("prestamo", "transporte"))
	assert.False(t, catalog.Contains(domain.MovementEgress, "desconocida"))
}
