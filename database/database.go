package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"rotacal/database/schemas"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string // "disable" for local, "require"/etc for prod
}

// Open connects to Postgres and verifies the connection before returning.
func Open(cfg Config) (*sql.DB, error) {
	if cfg.SSLMode == "" {
		cfg.SSLMode = "disable"
	}

	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode,
	)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}

	// Sensible pool defaults (tune later)
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(30 * time.Minute)

	// Fail fast at startup
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// OpenSQLite opens a SQLite database at path (":memory:" for ephemeral).
// The pool is pinned to one connection: SQLite is single-writer, and a
// :memory: database is private to the connection that opened it.
func OpenSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	return db, nil
}

// OpenDriver dispatches on a driver name from configuration.
func OpenDriver(driver string, cfg Config, path string) (*sql.DB, schemas.Dialect, error) {
	switch driver {
	case "", "postgres":
		db, err := Open(cfg)
		return db, schemas.DialectPostgres, err
	case "sqlite":
		db, err := OpenSQLite(path)
		return db, schemas.DialectSQLite, err
	default:
		return nil, 0, fmt.Errorf("unknown db driver %q", driver)
	}
}
