package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"cajachica-service/app/config"
	"cajachica-service/app/domain"
	mock_port "cajachica-service/app/mocks"
	"cajachica-service/app/port"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testCatalog() *config.CategoryCatalog {
	return &config.CategoryCatalog{
		Egress: []config.Category{
			{Value: "transporte", Label: "Transporte"},
			{Value: "materiales", Label: "Materiales"},
		},
		Ingress: []config.Category{
			{Value: "ventas", Label: "Ventas"},
		},
	}
}

func managerActor() domain.ResolvedIdentity {
	return domain.ManagerIdentity(
		&domain.Session{Token: "t", IdentityID: "mgr-1", Email: "mgr@example.com"},
		&domain.ManagerProfile{IdentityID: "mgr-1", Name: "Ana"},
	)
}

func employeeActor() domain.ResolvedIdentity {
	return domain.EmployeeIdentity(
		&domain.Session{Token: "t", IdentityID: "emp-ident", Email: "emp@example.com"},
		&domain.EmployeeProfile{Email: "emp@example.com", Position: "cajero", AuthorizedBy: "mgr-1"},
	)
}

func TestCashboxUsecase_RecordMovement(t *testing.T) {
	registryID := uuid.New()
	registry := &domain.Registry{ID: registryID, Kind: "caja", Name: "Caja central", ManagerID: "mgr-1"}

	tests := []struct {
		name       string
		actor      domain.ResolvedIdentity
		req        *port.RecordMovementRequest
		setupMocks func(*mock_port.MockMovementRepository, *mock_port.MockRegistryRepository)
		wantErr    bool
		wantErrIs  error
	}{
		{
			name:  "employee records a valid egress",
			actor: employeeActor(),
			req: &port.RecordMovementRequest{
				RegistryID:  registryID,
				Description: "Taxi al banco",
				Amount:      25.50,
				Type:        domain.MovementEgress,
				Category:    "transporte",
			},
			setupMocks: func(movements *mock_port.MockMovementRepository, registries *mock_port.MockRegistryRepository) {
				registries.EXPECT().GetByID(gomock.Any(), registryID).Return(registry, nil)
				movements.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, m *domain.Movement) error {
						assert.Equal(t, "emp-ident", m.ActorID)
						assert.Equal(t, "emp@example.com", m.ActorEmail)
						assert.Equal(t, domain.MovementEgress, m.Type)
						return nil
					})
			},
		},
		{
			name:  "unauthenticated actor is rejected",
			actor: domain.NoIdentity(),
			req: &port.RecordMovementRequest{
				RegistryID:  registryID,
				Description: "x",
				Amount:      1,
				Type:        domain.MovementEgress,
				Category:    "transporte",
			},
			setupMocks: func(*mock_port.MockMovementRepository, *mock_port.MockRegistryRepository) {},
			wantErr:    true,
			wantErrIs:  domain.ErrUnauthorized,
		},
		{
			name:  "category from the wrong set is rejected",
			actor: managerActor(),
			req: &port.RecordMovementRequest{
				RegistryID:  registryID,
				Description: "Venta del día",
				Amount:      100,
				Type:        domain.MovementEgress,
				Category:    "ventas", // ingress category on an egress movement
			},
			setupMocks: func(*mock_port.MockMovementRepository, *mock_port.MockRegistryRepository) {},
			wantErr:    true,
		},
		{
			name:  "missing registry is rejected before writing",
			actor: managerActor(),
			req: &port.RecordMovementRequest{
				RegistryID:  registryID,
				Description: "Taxi",
				Amount:      10,
				Type:        domain.MovementEgress,
				Category:    "transporte",
			},
			setupMocks: func(movements *mock_port.MockMovementRepository, registries *mock_port.MockRegistryRepository) {
				registries.EXPECT().GetByID(gomock.Any(), registryID).Return(nil, domain.ErrRegistryNotFound)
			},
			wantErr:   true,
			wantErrIs: domain.ErrRegistryNotFound,
		},
		{
			name:  "non-positive amount is rejected",
			actor: managerActor(),
			req: &port.RecordMovementRequest{
				RegistryID:  registryID,
				Description: "Taxi",
				Amount:      0,
				Type:        domain.MovementEgress,
				Category:    "transporte",
			},
			setupMocks: func(movements *mock_port.MockMovementRepository, registries *mock_port.MockRegistryRepository) {
				registries.EXPECT().GetByID(gomock.Any(), registryID).Return(registry, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockMovements := mock_port.NewMockMovementRepository(ctrl)
			mockRegistries := mock_port.NewMockRegistryRepository(ctrl)
			tt.setupMocks(mockMovements, mockRegistries)

			uc := NewCashboxUsecase(mockMovements, mockRegistries, testCatalog(), 50, testLogger())

			movement, err := uc.RecordMovement(context.Background(), tt.actor, tt.req)

			if tt.wantErr {
				require.Error(t, err)
				if tt.wantErrIs != nil {
					assert.ErrorIs(t, err, tt.wantErrIs)
				}
				assert.Nil(t, movement)
			} else {
				require.NoError(t, err)
				require.NotNil(t, movement)
				assert.NotEqual(t, uuid.Nil, movement.ID)
			}
		})
	}
}

func TestCashboxUsecase_ListMovements(t *testing.T) {
	registryID := uuid.New()

	t.Run("limit is clamped to the configured maximum", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockMovements := mock_port.NewMockMovementRepository(ctrl)
		mockRegistries := mock_port.NewMockRegistryRepository(ctrl)

		mockMovements.EXPECT().
			ListRecent(gomock.Any(), registryID, 50).
			Return([]*domain.Movement{}, nil)

		uc := NewCashboxUsecase(mockMovements, mockRegistries, testCatalog(), 50, testLogger())
		_, err := uc.ListMovements(context.Background(), employeeActor(), registryID, 500)
		assert.NoError(t, err)
	})

	t.Run("zero limit falls back to the default", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockMovements := mock_port.NewMockMovementRepository(ctrl)
		mockRegistries := mock_port.NewMockRegistryRepository(ctrl)

		mockMovements.EXPECT().
			ListRecent(gomock.Any(), registryID, 50).
			Return([]*domain.Movement{}, nil)

		uc := NewCashboxUsecase(mockMovements, mockRegistries, testCatalog(), 50, testLogger())
		_, err := uc.ListMovements(context.Background(), employeeActor(), registryID, 0)
		assert.NoError(t, err)
	})

	t.Run("unauthenticated actor is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockMovements := mock_port.NewMockMovementRepository(ctrl)
		mockRegistries := mock_port.NewMockRegistryRepository(ctrl)

		uc := NewCashboxUsecase(mockMovements, mockRegistries, testCatalog(), 50, testLogger())
		_, err := uc.ListMovements(context.Background(), domain.NoIdentity(), registryID, 10)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})
}

func TestCashboxUsecase_DeleteMovement(t *testing.T) {
	movementID := uuid.New()

	t.Run("manager deletes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockMovements := mock_port.NewMockMovementRepository(ctrl)
		mockRegistries := mock_port.NewMockRegistryRepository(ctrl)

		mockMovements.EXPECT().Delete(gomock.Any(), movementID).Return(nil)

		uc := NewCashboxUsecase(mockMovements, mockRegistries, testCatalog(), 50, testLogger())
		assert.NoError(t, uc.DeleteMovement(context.Background(), managerActor(), movementID))
	})

	t.Run("employee is forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockMovements := mock_port.NewMockMovementRepository(ctrl)
		mockRegistries := mock_port.NewMockRegistryRepository(ctrl)

		uc := NewCashboxUsecase(mockMovements, mockRegistries, testCatalog(), 50, testLogger())
		err := uc.DeleteMovement(context.Background(), employeeActor(), movementID)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("missing movement propagates not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockMovements := mock_port.NewMockMovementRepository(ctrl)
		mockRegistries := mock_port.NewMockRegistryRepository(ctrl)

		mockMovements.EXPECT().Delete(gomock.Any(), movementID).Return(domain.ErrMovementNotFound)

		uc := NewCashboxUsecase(mockMovements, mockRegistries, testCatalog(), 50, testLogger())
		err := uc.DeleteMovement(context.Background(), managerActor(), movementID)
		assert.True(t, IsNotFound(err))
	})
}

func TestCashboxUsecase_RegistryBalance(t *testing.T) {
	registryID := uuid.New()
	registry := &domain.Registry{ID: registryID, Kind: "caja", Name: "Caja central", ManagerID: "mgr-1"}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMovements := mock_port.NewMockMovementRepository(ctrl)
	mockRegistries := mock_port.NewMockRegistryRepository(ctrl)

	mockRegistries.EXPECT().GetByID(gomock.Any(), registryID).Return(registry, nil)
	mockMovements.EXPECT().
		Balance(gomock.Any(), registryID).
		Return(&domain.Balance{RegistryID: registryID, Ingress: 300, Egress: 120.5}, nil)

	uc := NewCashboxUsecase(mockMovements, mockRegistries, testCatalog(), 50, testLogger())
	balance, err := uc.RegistryBalance(context.Background(), employeeActor(), registryID)

	require.NoError(t, err)
	assert.InDelta(t, 179.5, balance.Net(), 0.001)
}

func TestCashboxUsecase_CreateRegistry(t *testing.T) {
	tests := []struct {
		name       string
		actor      domain.ResolvedIdentity
		req        *port.CreateRegistryRequest
		setupMocks func(*mock_port.MockRegistryRepository)
		wantErr    bool
		wantErrIs  error
	}{
		{
			name:  "manager opens a registry with an explicit date",
			actor: managerActor(),
			req:   &port.CreateRegistryRequest{Kind: "caja", Name: "Caja enero", Date: "2026-01-15"},
			setupMocks: func(registries *mock_port.MockRegistryRepository) {
				registries.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, r *domain.Registry) error {
						assert.Equal(t, "mgr-1", r.ManagerID)
						assert.Equal(t, time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), r.Date)
						return nil
					})
			},
		},
		{
			name:       "employee is forbidden",
			actor:      employeeActor(),
			req:        &port.CreateRegistryRequest{Kind: "caja", Name: "Caja enero"},
			setupMocks: func(*mock_port.MockRegistryRepository) {},
			wantErr:    true,
			wantErrIs:  domain.ErrForbidden,
		},
		{
			name:       "malformed date is rejected",
			actor:      managerActor(),
			req:        &port.CreateRegistryRequest{Kind: "caja", Name: "Caja enero", Date: "15/01/2026"},
			setupMocks: func(*mock_port.MockRegistryRepository) {},
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockMovements := mock_port.NewMockMovementRepository(ctrl)
			mockRegistries := mock_port.NewMockRegistryRepository(ctrl)
			tt.setupMocks(mockRegistries)

			uc := NewCashboxUsecase(mockMovements, mockRegistries, testCatalog(), 50, testLogger())

			registry, err := uc.CreateRegistry(context.Background(), tt.actor, tt.req)

			if tt.wantErr {
				require.Error(t, err)
				if tt.wantErrIs != nil {
					assert.ErrorIs(t, err, tt.wantErrIs)
				}
				assert.Nil(t, registry)
			} else {
				require.NoError(t, err)
				require.NotNil(t, registry)
			}
		})
	}
}

func TestCashboxUsecase_ListRegistries(t *testing.T) {
	t.Run("manager sees own registries", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockMovements := mock_port.NewMockMovementRepository(ctrl)
		mockRegistries := mock_port.NewMockRegistryRepository(ctrl)

		mockRegistries.EXPECT().
			ListByManager(gomock.Any(), "mgr-1").
			Return([]*domain.Registry{{Name: "Caja central"}}, nil)

		uc := NewCashboxUsecase(mockMovements, mockRegistries, testCatalog(), 50, testLogger())
		got, err := uc.ListRegistries(context.Background(), managerActor())
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("employee sees the authorizing manager's registries", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockMovements := mock_port.NewMockMovementRepository(ctrl)
		mockRegistries := mock_port.NewMockRegistryRepository(ctrl)

		mockRegistries.EXPECT().
			ListByManager(gomock.Any(), "mgr-1").
			Return([]*domain.Registry{{Name: "Caja central"}}, nil)

		uc := NewCashboxUsecase(mockMovements, mockRegistries, testCatalog(), 50, testLogger())
		got, err := uc.ListRegistries(context.Background(), employeeActor())
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("unauthenticated actor is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockMovements := mock_port.NewMockMovementRepository(ctrl)
		mockRegistries := mock_port.NewMockRegistryRepository(ctrl)

		uc := NewCashboxUsecase(mockMovements, mockRegistries, testCatalog(), 50, testLogger())
		_, err := uc.ListRegistries(context.Background(), domain.NoIdentity())
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(domain.ErrRegistryNotFound))
	assert.True(t, IsNotFound(domain.ErrMovementNotFound))
	assert.False(t, IsNotFound(errors.New("other")))
	assert.False(t, IsNotFound(nil))
}
