package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mathquizapp/mathquiz/internal/infra/config"
	_ "github.com/mattn/go-sqlite3"
)

// Database holds the open connection for the configured backend. Exactly
// one of the fields is set; both stay nil for the memory driver.
type Database struct {
	Pool *pgxpool.Pool
	SQL  *sql.DB
}

// Close releases whichever connection is open.
func (d *Database) Close() {
	if d.Pool != nil {
		d.Pool.Close()
	}
	if d.SQL != nil {
		if err := d.SQL.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}
}

// InitDatabase opens the storage backend selected by database.driver.
func InitDatabase(cfg *config.Config) (*Database, error) {
	const op = "app.InitDatabase"

	switch cfg.Database.Driver {
	case "postgres":
		connConfig, err := pgxpool.ParseConfig(fmt.Sprintf("postgres://%s:%s@%s:%s/%s",
			cfg.Database.User, cfg.Database.Password, cfg.Database.Host, cfg.Database.Port, cfg.Database.Name))
		if err != nil {
			return nil, fmt.Errorf("%s: failed to parse database config: %w", op, err)
		}

		pool, err := pgxpool.NewWithConfig(context.Background(), connConfig)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to create database pool: %w", op, err)
		}
		if err := pool.Ping(context.Background()); err != nil {
			return nil, fmt.Errorf("%s: failed to ping database: %w", op, err)
		}

		slog.Info("connected to postgres", "host", cfg.Database.Host, "dbname", cfg.Database.Name)
		return &Database{Pool: pool}, nil

	case "sqlite":
		if dir := filepath.Dir(cfg.Database.Path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("%s: failed to create data directory: %w", op, err)
			}
		}

		db, err := sql.Open("sqlite3", cfg.Database.Path)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to open sqlite database: %w", op, err)
		}
		if err := db.PingContext(context.Background()); err != nil {
			return nil, fmt.Errorf("%s: failed to ping database: %w", op, err)
		}

		slog.Info("connected to sqlite", "path", cfg.Database.Path)
		return &Database{SQL: db}, nil

	case "memory":
		slog.Info("using in-memory storage")
		return &Database{}, nil

	default:
		return nil, fmt.Errorf("%s: unknown database driver %q", op, cfg.Database.Driver)
	}
}
