package store

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"strings"

	"github.com/dmitrijs2005/studyhub/internal/config"
	"github.com/dmitrijs2005/studyhub/internal/filex"
	"github.com/dmitrijs2005/studyhub/internal/logging"
	"github.com/dmitrijs2005/studyhub/internal/migrations"
	"github.com/dmitrijs2005/studyhub/internal/repositories/kv"
	"github.com/pressly/goose/v3"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

type backend struct {
	sqlDriver string
	dialect   string
	fsys      fs.FS
	dir       string
	bind      kv.Factory
}

func backendFor(driver string) (backend, error) {
	switch driver {
	case config.DriverSQLite:
		return backend{"sqlite", "sqlite3", migrations.SQLite, "sqlite", kv.SQLiteFactory}, nil
	case config.DriverPostgres:
		return backend{"pgx", "postgres", migrations.Postgres, "postgres", kv.PostgresFactory}, nil
	default:
		return backend{}, fmt.Errorf("unsupported store driver %q", driver)
	}
}

// RunMigrations applies the embedded schema for the given store driver.
func RunMigrations(ctx context.Context, db *sql.DB, driver string) error {
	b, err := backendFor(driver)
	if err != nil {
		return err
	}

	goose.SetBaseFS(b.fsys)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(b.dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, b.dir); err != nil {
		return fmt.Errorf("failed to migrate %s store: %w", driver, err)
	}
	return nil
}

// sqliteFile returns the database file named by a SQLite DSN, or "" for
// in-memory databases.
func sqliteFile(dsn string) string {
	p := strings.TrimPrefix(dsn, "file:")
	p, query, _ := strings.Cut(p, "?")
	if p == "" || p == ":memory:" || strings.Contains(query, "mode=memory") {
		return ""
	}
	return p
}

// Open connects to the configured backend, migrates it and returns a Store
// owning the connection.
func Open(ctx context.Context, driver, dsn string, log logging.Logger) (*Store, error) {
	b, err := backendFor(driver)
	if err != nil {
		return nil, err
	}

	if driver == config.DriverSQLite {
		if f := sqliteFile(dsn); f != "" {
			if _, err := filex.EnsureParentDir(f); err != nil {
				return nil, fmt.Errorf("failed to prepare %s store: %w", driver, err)
			}
		}
	}

	db, err := sql.Open(b.sqlDriver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", driver, err)
	}

	// SQLite allows a single writer; one connection also keeps :memory:
	// databases alive across calls.
	if driver == config.DriverSQLite {
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to %s store: %w", driver, err)
	}

	if err := RunMigrations(ctx, db, driver); err != nil {
		_ = db.Close()
		return nil, err
	}

	s := New(db, b.bind, log)
	s.closer = db
	return s, nil
}
