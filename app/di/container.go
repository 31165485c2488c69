package di

import (
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"

	"cajachica-service/app/config"
	"cajachica-service/app/driver/kratos"
	"cajachica-service/app/driver/postgres"
	"cajachica-service/app/gateway"
	"cajachica-service/app/port"
	"cajachica-service/app/rest"
	"cajachica-service/app/usecase"
)

// Container holds all dependencies for the application
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Drivers
	DB           *postgres.DB
	KratosClient *kratos.Client

	// Gateways
	Credentials port.CredentialStore

	// Usecases
	Resolver port.SessionResolver
	Cashbox  port.CashboxUsecase
	Holder   *usecase.SessionHolder

	// Domain data
	Catalog *config.CategoryCatalog
}

// NewContainer creates and initializes a new dependency injection container
func NewContainer(cfg *config.Config, logger *slog.Logger) (*Container, error) {
	container := &Container{
		Config: cfg,
		Logger: logger,
	}

	var err error

	container.DB, err = postgres.NewConnection(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	container.KratosClient, err = kratos.NewClient(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Kratos client: %w", err)
	}

	container.Catalog, err = config.LoadCategoryCatalog()
	if err != nil {
		return nil, fmt.Errorf("failed to load category catalog: %w", err)
	}

	// Repositories
	profileRepository := postgres.NewProfileRepository(container.DB.Pool(), logger)
	movementRepository := postgres.NewMovementRepository(container.DB.Pool(), logger)
	registryRepository := postgres.NewRegistryRepository(container.DB.Pool(), logger)

	// Gateways
	backend := kratos.NewAdapter(container.KratosClient, logger)
	container.Credentials = gateway.NewCredentialGateway(backend, logger)

	// Usecases
	container.Resolver = usecase.NewSessionResolverUsecase(container.Credentials, profileRepository, logger)
	container.Cashbox = usecase.NewCashboxUsecase(movementRepository, registryRepository, container.Catalog, cfg.MovementListLimit, logger)

	container.Holder = usecase.NewSessionHolder(container.Resolver, container.Credentials, cfg.ResolveTimeout, logger)

	logger.Info("Container initialized with full dependency stack")

	return container, nil
}

// CreateRouter creates and returns a fully configured Echo router
func (c *Container) CreateRouter() *echo.Echo {
	routerConfig := rest.RouterConfig{
		Logger:          c.Logger,
		Resolver:        c.Resolver,
		Credentials:     c.Credentials,
		Cashbox:         c.Cashbox,
		Catalog:         c.Catalog,
		DBCheck:         c.DB.HealthCheck,
		KratosCheck:     c.KratosClient.HealthCheck,
		EnableDebug:     c.Config.LogLevel == "debug",
		EnableRateLimit: c.Config.EnableRateLimit,
	}

	return rest.NewRouter(routerConfig)
}

// Close releases driver resources. The session holder lifecycle belongs to
// the caller: start it after construction, stop it before Close.
func (c *Container) Close() error {
	if c.DB != nil {
		c.DB.Close()
	}

	c.Logger.Info("Container closed successfully")
	return nil
}
