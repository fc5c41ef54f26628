// Package migrator runs goose migrations from an embedded filesystem.
package migrator

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/ghuser/orderdesk/pkg/logger"
)

// Open returns a pgx-backed *sql.DB for dbURL.
func Open(dbURL string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

// Up applies all pending migrations in files.
func Up(ctx context.Context, db *sql.DB, files fs.FS, log logger.Logger) error {
	if err := setup(files, log); err != nil {
		return err
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("failed to up migrations: %w", err)
	}
	return nil
}

// Down rolls back the most recent migration.
func Down(ctx context.Context, db *sql.DB, files fs.FS, log logger.Logger) error {
	if err := setup(files, log); err != nil {
		return err
	}
	if err := goose.DownContext(ctx, db, "."); err != nil {
		return fmt.Errorf("failed to down migration: %w", err)
	}
	return nil
}

// Status logs the applied/pending state of every migration.
func Status(ctx context.Context, db *sql.DB, files fs.FS, log logger.Logger) error {
	if err := setup(files, log); err != nil {
		return err
	}
	if err := goose.StatusContext(ctx, db, "."); err != nil {
		return fmt.Errorf("failed to read migration status: %w", err)
	}
	return nil
}

func setup(files fs.FS, log logger.Logger) error {
	goose.SetBaseFS(files)
	goose.SetLogger(&gooseLogger{log: log})
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return nil
}

// gooseLogger bridges logger.Logger to goose.Logger.
type gooseLogger struct{ log logger.Logger }

func (g *gooseLogger) Printf(format string, v ...any) {
	g.log.Info(strings.TrimSpace(fmt.Sprintf(format, v...)), "component", "goose")
}

// Fatalf is called by goose for unrecoverable errors. It panics instead of
// exiting so deferred cleanup in the caller still runs.
func (g *gooseLogger) Fatalf(format string, v ...any) {
	msg := strings.TrimSpace(fmt.Sprintf(format, v...))
	g.log.Error(msg, "component", "goose")
	panic(msg)
}
