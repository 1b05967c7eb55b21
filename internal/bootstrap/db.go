package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/projeto-charter/charter-backend/config"
)

type DBOptions struct {
	Driver     string
	DSN        string
	SQLitePath string
	MaxConns   int
	MinConns   int
	ConnectTO  time.Duration
	PingTO     time.Duration
	LogLevel   string
}

// DBOptionsFromConfig maps the database section of the app config.
func DBOptionsFromConfig(cfg *config.Config) DBOptions {
	return DBOptions{
		Driver:     cfg.Database.Driver,
		DSN:        cfg.Database.PostgresDSN(),
		SQLitePath: cfg.Database.SQLitePath,
		MaxConns:   cfg.Database.MaxConns,
		MinConns:   cfg.Database.MinConns,
		LogLevel:   cfg.App.LogLevel,
	}
}

// Database owns the GORM handle and, for postgres, the pgx pool beneath it.
type Database struct {
	Gorm  *gorm.DB
	sqlDB *sql.DB
	pool  *pgxpool.Pool
}

func OpenDB(ctx context.Context, opt DBOptions) (*Database, error) {
	if opt.ConnectTO == 0 {
		opt.ConnectTO = 5 * time.Second
	}
	if opt.PingTO == 0 {
		opt.PingTO = 2 * time.Second
	}

	gcfg := &gorm.Config{Logger: logger.Default.LogMode(gormLogLevel(opt.LogLevel))}

	switch opt.Driver {
	case config.DriverSQLite:
		return openSQLite(ctx, opt, gcfg)
	case config.DriverPostgres, "":
		return openPostgres(ctx, opt, gcfg)
	default:
		return nil, fmt.Errorf("unsupported db driver %q", opt.Driver)
	}
}

func openPostgres(ctx context.Context, opt DBOptions, gcfg *gorm.Config) (*Database, error) {
	if opt.DSN == "" {
		return nil, fmt.Errorf("DB_DSN is not set")
	}

	pcfg, err := pgxpool.ParseConfig(opt.DSN)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	if opt.MaxConns > 0 {
		pcfg.MaxConns = int32(opt.MaxConns)
	}
	if opt.MinConns > 0 {
		pcfg.MinConns = int32(opt.MinConns)
	}
	pcfg.MaxConnIdleTime = 5 * time.Minute
	pcfg.HealthCheckPeriod = 30 * time.Second

	cctx, cancel := context.WithTimeout(ctx, opt.ConnectTO)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(cctx, pcfg)
	if err != nil {
		return nil, fmt.Errorf("db connect: %w", err)
	}

	// Fail fast
	pctx, pcancel := context.WithTimeout(ctx, opt.PingTO)
	defer pcancel()
	if err := pool.Ping(pctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("db ping: %w", err)
	}

	sqlDB := stdlib.OpenDBFromPool(pool)
	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), gcfg)
	if err != nil {
		_ = sqlDB.Close()
		pool.Close()
		return nil, fmt.Errorf("open gorm: %w", err)
	}

	return &Database{Gorm: gdb, sqlDB: sqlDB, pool: pool}, nil
}

func openSQLite(ctx context.Context, opt DBOptions, gcfg *gorm.Config) (*Database, error) {
	if opt.SQLitePath == "" {
		return nil, fmt.Errorf("DB_SQLITE_PATH is not set")
	}

	gdb, err := gorm.Open(sqlite.Open(opt.SQLitePath), gcfg)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("sqlite handle: %w", err)
	}

	pctx, cancel := context.WithTimeout(ctx, opt.PingTO)
	defer cancel()
	if err := sqlDB.PingContext(pctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("db ping: %w", err)
	}

	return &Database{Gorm: gdb, sqlDB: sqlDB}, nil
}

// Ping checks the pool when there is one, the sql handle otherwise.
func (d *Database) Ping(ctx context.Context) error {
	if d.pool != nil {
		return d.pool.Ping(ctx)
	}
	return d.sqlDB.PingContext(ctx)
}

func (d *Database) Close() {
	if d == nil {
		return
	}
	if d.sqlDB != nil {
		_ = d.sqlDB.Close()
	}
	if d.pool != nil {
		d.pool.Close()
	}
}

func gormLogLevel(level string) logger.LogLevel {
	switch level {
	case "debug":
		return logger.Info
	case "error":
		return logger.Error
	default:
		return logger.Warn
	}
}
