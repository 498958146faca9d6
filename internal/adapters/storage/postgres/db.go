package postgres

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"dog-health-tracker/internal/domain/records"
	"dog-health-tracker/internal/platform/logger"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

type Config struct {
	MaxConns int32
	// Migrate aplica las migraciones pendientes al abrir el pool.
	Migrate bool
}

// Open abre un pool pgx y verifica la conexión.
func Open(ctx context.Context, dsn string, cfg Config) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	// defaults razonables para un solo dueño (ajustable por env)
	poolConfig.MaxConns = cfg.MaxConns
	if poolConfig.MaxConns <= 0 {
		poolConfig.MaxConns = 10
	}
	poolConfig.MaxConnIdleTime = 5 * time.Minute
	poolConfig.MaxConnLifetime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return pool, nil
}

// Migrate aplica las migraciones embebidas. Es idempotente.
func Migrate(pool *pgxpool.Pool, log logger.Logger) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	driver, err := migratepg.WithInstance(db, &migratepg.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to open embedded migrations: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil || dbErr != nil {
			log.Warn("failed to close migrator", map[string]any{"source_err": srcErr, "db_err": dbErr})
		}
	}()

	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		log.Info("no migrations to apply", nil)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	version, _, _ := m.Version()
	log.Info("migrations applied", map[string]any{"version": version})
	return nil
}

// Connector es el backend remoto del records.Store. El DSN se relee en cada
// llamada: configurarlo o quitarlo cambia el backend sin reiniciar.
type Connector struct {
	dsn func() string
	cfg Config
	log logger.Logger

	mu      sync.Mutex
	pool    *pgxpool.Pool
	poolDSN string
	tables  *records.Tables
}

func NewConnector(dsn func() string, cfg Config, log logger.Logger) *Connector {
	if log == nil {
		log = logger.Nop()
	}
	return &Connector{dsn: dsn, cfg: cfg, log: log}
}

// Configured: un DSN no vacío que pgx sabe parsear.
func Configured(dsn string) bool {
	if strings.TrimSpace(dsn) == "" {
		return false
	}
	_, err := pgxpool.ParseConfig(dsn)
	return err == nil
}

func (c *Connector) RemoteConfigured() bool {
	return c != nil && c.dsn != nil && Configured(c.dsn())
}

// Tables abre el pool la primera vez (o si cambió el DSN) y devuelve las tablas.
func (c *Connector) Tables(ctx context.Context) (*records.Tables, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	dsn := strings.TrimSpace(c.dsn())
	if c.pool != nil && dsn == c.poolDSN {
		return c.tables, nil
	}
	if c.pool != nil {
		c.log.Info("database url changed, reopening pool", nil)
		c.pool.Close()
		c.pool, c.tables = nil, nil
	}

	pool, err := Open(ctx, dsn, c.cfg)
	if err != nil {
		return nil, err
	}
	if c.cfg.Migrate {
		if err := Migrate(pool, c.log); err != nil {
			pool.Close()
			return nil, err
		}
	}
	c.log.Info("remote backend connected", map[string]any{"dsn": logger.RedactDSN(dsn)})

	c.pool, c.poolDSN = pool, dsn
	c.tables = NewTables(pool)
	return c.tables, nil
}

func (c *Connector) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pool != nil {
		c.pool.Close()
		c.pool, c.tables = nil, nil
	}
}
