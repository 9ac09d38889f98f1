package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"DOCSHELF_BACK-END/internal/config"
	"DOCSHELF_BACK-END/internal/logger"
	"DOCSHELF_BACK-END/internal/models"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// ErrUnsupportedURL is returned for database URLs with an unknown scheme.
var ErrUnsupportedURL = errors.New("unsupported database url")

// Database bundles the gorm handle with the resources that back it.
type Database struct {
	Gorm   *gorm.DB
	Driver string

	pool *pgxpool.Pool
}

// Open connects to the store named by cfg.URL and verifies the connection.
func Open(ctx context.Context, cfg config.DatabaseConfig, log logger.Logger) (*Database, error) {
	driver, dsn, err := ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	gormCfg := &gorm.Config{
		Logger:         newGormLogger(log, cfg.Debug),
		TranslateError: true,
	}

	db := &Database{Driver: driver}
	switch driver {
	case DriverPostgres:
		db.pool, err = openPool(ctx, dsn, cfg)
		if err != nil {
			return nil, err
		}
		sqlDB := stdlib.OpenDBFromPool(db.pool)
		db.Gorm, err = gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), gormCfg)
	default:
		db.Gorm, err = gorm.Open(sqlite.Open(sqliteDSN(dsn)), gormCfg)
		if err == nil {
			err = tuneSQLite(db.Gorm, dsn)
		}
	}
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("open %s database: %w", driver, err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnTimeout+time.Second)
	defer cancel()
	if err := db.Ping(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s database: %w", driver, err)
	}

	log.With(map[string]interface{}{"driver": driver}).Info("Database connected")
	return db, nil
}

// openPool configures pgxpool the way the service runs behind PgBouncer.
func openPool(ctx context.Context, dsn string, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	// simple protocol is required when going through PgBouncer in transaction mode
	poolCfg.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol
	poolCfg.ConnConfig.RuntimeParams["application_name"] = "docshelf-backend"
	poolCfg.ConnConfig.RuntimeParams["statement_timeout"] = "30000" // 30s
	if cfg.ConnTimeout > 0 {
		poolCfg.ConnConfig.ConnectTimeout = cfg.ConnTimeout
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	poolCfg.MinConns = cfg.MinConns
	if cfg.MaxLifetime > 0 {
		poolCfg.MaxConnLifetime = cfg.MaxLifetime
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	return pool, nil
}

// ParseURL splits a database URL into a driver name and the DSN that driver expects.
//
//	sqlite:///./database.db   -> sqlite, ./database.db
//	sqlite://:memory:         -> sqlite, :memory:
//	file:x.db?mode=memory     -> sqlite, unchanged
//	postgres://u:p@h/db       -> postgres, unchanged
func ParseURL(raw string) (driver, dsn string, err error) {
	raw = strings.TrimSpace(raw)
	switch {
	case strings.HasPrefix(raw, "postgres://"), strings.HasPrefix(raw, "postgresql://"):
		return DriverPostgres, raw, nil
	case strings.HasPrefix(raw, "sqlite:///"):
		return DriverSQLite, strings.TrimPrefix(raw, "sqlite:///"), nil
	case strings.HasPrefix(raw, "sqlite://"):
		return DriverSQLite, strings.TrimPrefix(raw, "sqlite://"), nil
	case strings.HasPrefix(raw, "file:"), raw == ":memory:":
		return DriverSQLite, raw, nil
	}
	return "", "", fmt.Errorf("%w: %q", ErrUnsupportedURL, redact(raw))
}

// sqliteDSN turns a path into a URI with foreign keys enforced.
func sqliteDSN(dsn string) string {
	if !strings.HasPrefix(dsn, "file:") {
		dsn = "file:" + dsn
	}
	params := url.Values{}
	if !strings.Contains(dsn, "_foreign_keys") && !strings.Contains(dsn, "_fk") {
		params.Set("_foreign_keys", "on")
	}
	if !strings.Contains(dsn, "_busy_timeout") {
		params.Set("_busy_timeout", "5000")
	}
	if len(params) == 0 {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + params.Encode()
}

// tuneSQLite pins a private in-memory database to one connection,
// since every new connection would otherwise see an empty database.
func tuneSQLite(db *gorm.DB, dsn string) error {
	if !strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "cache=shared") {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxOpenConns(1)
	return nil
}

func redact(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.User == nil {
		return raw
	}
	return u.Redacted()
}

// Migrate creates or updates the schema. It is idempotent and runs before serving traffic.
func (d *Database) Migrate(ctx context.Context) error {
	for _, m := range models.All() {
		if err := d.Gorm.WithContext(ctx).AutoMigrate(m); err != nil {
			return fmt.Errorf("automigrate %T: %w", m, err)
		}
	}
	return nil
}

// Ping checks that the store is reachable.
func (d *Database) Ping(ctx context.Context) error {
	sqlDB, err := d.sqlDB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close releases gorm's connections and, on postgres, the pgx pool.
func (d *Database) Close() error {
	var err error
	if d.Gorm != nil {
		if sqlDB, dbErr := d.sqlDB(); dbErr == nil {
			err = sqlDB.Close()
		}
	}
	if d.pool != nil {
		d.pool.Close()
	}
	return err
}

func (d *Database) sqlDB() (*sql.DB, error) {
	if d.Gorm == nil {
		return nil, errors.New("database not open")
	}
	return d.Gorm.DB()
}
