// Package database owns the process-wide PostgreSQL connection pool and the
// transaction helper every repository writes through.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/ghuser/orderdesk/pkg/logger"
)

// PoolOptions tunes the database/sql connection pool.
type PoolOptions struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Database wraps *sql.DB (pgx stdlib driver). It is safe for concurrent use;
// connections are checked out per call and returned when the call or
// transaction finishes.
type Database struct {
	db  *sql.DB
	log logger.Logger
}

// NewPool opens a pgx-backed *sql.DB for url, applies opts and verifies
// connectivity with a 5s ping.
func NewPool(ctx context.Context, url string, opts PoolOptions, log logger.Logger) (*Database, error) {
	db, err := sql.Open("pgx", url)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if opts.MaxOpenConns > 0 {
		db.SetMaxOpenConns(opts.MaxOpenConns)
	}
	if opts.MaxIdleConns > 0 {
		db.SetMaxIdleConns(opts.MaxIdleConns)
	}
	if opts.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(opts.ConnMaxLifetime)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Database{db: db, log: log}, nil
}

// New wraps an already-open *sql.DB. Used by tests with sqlmock.
func New(db *sql.DB, log logger.Logger) *Database {
	return &Database{db: db, log: log}
}

// DB returns the underlying pool for non-transactional queries.
func (d *Database) DB() *sql.DB {
	return d.db
}

// WithTx runs fn inside a READ COMMITTED transaction. The transaction is
// committed when fn returns nil and rolled back when fn returns an error or
// panics; the connection goes back to the pool on every path.
func (d *Database) WithTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	return d.WithTxOptions(ctx, nil, fn)
}

// WithTxOptions is WithTx with explicit isolation / read-only options.
func (d *Database) WithTxOptions(ctx context.Context, opts *sql.TxOptions, fn func(tx *sql.Tx) error) (err error) {
	tx, err := d.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && d.log != nil {
			d.log.WarnContext(ctx, "rollback failed", "error", rbErr, "cause", err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// Ping checks database connectivity.
func (d *Database) Ping(ctx context.Context) error {
	if err := d.db.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping: %w", err)
	}
	return nil
}

// Close releases every pooled connection.
func (d *Database) Close() error {
	return d.db.Close()
}
