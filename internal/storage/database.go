package storage

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"certportal/internal/config"
	"certportal/internal/storage/migrations"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

type DatabaseProvider struct {
	db     *sql.DB
	driver string
	logger *slog.Logger
	now    func() time.Time
}

// NewDatabaseProvider opens and pings the configured database. Migrations are not applied,
// see RunMigrations.
func NewDatabaseProvider(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*DatabaseProvider, error) {
	dsn := GetConnectionStringFromConfig(cfg)

	var db *sql.DB
	switch cfg.Storage.Driver {
	case config.StorageDriverSQLite:
		var err error
		db, err = sql.Open("sqlite", dsn)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}
		// a single connection serialises writers and keeps :memory: databases alive
		db.SetMaxOpenConns(1)
	case config.StorageDriverPostgres:
		connConfig, err := pgx.ParseConfig(dsn)
		if err != nil {
			return nil, fmt.Errorf("failed to parse postgres dsn: %w", err)
		}
		db = stdlib.OpenDB(*connConfig)
		db.SetMaxOpenConns(10)
		db.SetConnMaxIdleTime(5 * time.Minute)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedDriver, cfg.Storage.Driver)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return newDatabaseProvider(db, cfg.Storage.Driver, logger), nil
}

func newDatabaseProvider(db *sql.DB, driver string, logger *slog.Logger) *DatabaseProvider {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &DatabaseProvider{
		db:     db,
		driver: driver,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (p *DatabaseProvider) Close() error {
	if p.db == nil {
		return nil
	}
	return p.db.Close()
}

func (p *DatabaseProvider) Ping(ctx context.Context) error {
	return p.db.PingContext(ctx)
}

// RunMigrations applies the embedded schema migrations for the active driver.
func (p *DatabaseProvider) RunMigrations(ctx context.Context) error {
	var (
		fsys    fs.FS
		dir     string
		dialect string
	)

	switch p.driver {
	case config.StorageDriverSQLite:
		fsys, dir, dialect = migrations.SQLite, "sqlite", "sqlite3"
	case config.StorageDriverPostgres:
		fsys, dir, dialect = migrations.Postgres, "postgres", "postgres"
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedDriver, p.driver)
	}

	goose.SetBaseFS(fsys)
	goose.SetLogger(&gooseLogger{logger: p.logger})

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, p.db, dir); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

func (p *DatabaseProvider) q(query string) string {
	return rebind(p.driver, query)
}

// gooseLogger routes goose progress output through slog.
type gooseLogger struct {
	logger *slog.Logger
}

func (l *gooseLogger) Printf(format string, v ...interface{}) {
	l.logger.Debug(strings.TrimSpace(fmt.Sprintf(format, v...)), "component", "migrations")
}

func (l *gooseLogger) Fatalf(format string, v ...interface{}) {
	l.logger.Error(strings.TrimSpace(fmt.Sprintf(format, v...)), "component", "migrations")
}
