package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"cajachica-service/app/config"
)

// Pool tuning. The service is small; a handful of warm connections is
// plenty and keeps the Postgres instance shared with Kratos comfortable.
const (
	poolMaxConns     = int32(20)
	poolMinConns     = int32(4)
	poolConnLifetime = time.Hour
	poolConnIdleTime = 30 * time.Minute
	connectTimeout   = 30 * time.Second
	pingTimeout      = 5 * time.Second
)

// DB wraps the pgx connection pool used by all repositories.
type DB struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// NewConnection opens and pings a connection pool. DATABASE_URL wins when
// set; otherwise the DSN is assembled from the component settings.
func NewConnection(cfg *config.Config, logger *slog.Logger) (*DB, error) {
	poolConfig, err := pgxpool.ParseConfig(databaseDSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	poolConfig.MaxConns = poolMaxConns
	poolConfig.MinConns = poolMinConns
	poolConfig.MaxConnLifetime = poolConnLifetime
	poolConfig.MaxConnIdleTime = poolConnIdleTime

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("database connection established",
		"host", poolConfig.ConnConfig.Host,
		"database", poolConfig.ConnConfig.Database,
		"max_conns", poolConfig.MaxConns)

	return &DB{
		pool:   pool,
		logger: logger,
	}, nil
}

// Pool returns the underlying connection pool for repository construction.
func (db *DB) Pool() *pgxpool.Pool {
	return db.pool
}

// HealthCheck pings the database with a short deadline. Used by the
// readiness probe.
func (db *DB) HealthCheck(ctx context.Context) error {
	if db.pool == nil {
		return fmt.Errorf("database connection is not initialized")
	}

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	return db.pool.Ping(ctx)
}

// Close releases the pool. Safe to call on a zero DB.
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
		db.logger.Info("database connection closed")
	}
}

func databaseDSN(cfg *config.Config) string {
	if cfg.DatabaseURL != "" {
		return cfg.DatabaseURL
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		cfg.DatabaseUser,
		cfg.DatabasePassword,
		cfg.DatabaseHost,
		cfg.DatabasePort,
		cfg.DatabaseName,
		cfg.DatabaseSSLMode,
	)
}
