// Package migration applies the versioned SQL files in order and records
// them in schema_migrations with a checksum so edited files are caught.
package migration

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"time"

	"jobhunt/internal/database"
)

const migrationLockKey int64 = 746295114

var ErrChecksumMismatch = errors.New("migration checksum mismatch")

type Runner struct {
	FS     fs.FS
	Logger *log.Logger
}

// Status describes one known migration and whether it has been applied.
type Status struct {
	Migration
	AppliedAt *time.Time
}

func (r Runner) Run(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return database.ErrNoDB
	}
	migs, err := Load(r.source())
	if err != nil || len(migs) == 0 {
		return err
	}

	// pg advisory locks are per session, so everything runs on one connection
	conn, err := db.Conn(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := ensureSchemaMigrations(ctx, conn); err != nil {
		return err
	}
	if _, err := conn.ExecContext(ctx, `SELECT pg_advisory_lock($1)`, migrationLockKey); err != nil {
		return fmt.Errorf("lock: %w", err)
	}
	defer func() {
		_, _ = conn.ExecContext(context.WithoutCancel(ctx), `SELECT pg_advisory_unlock($1)`, migrationLockKey)
	}()

	applied, err := appliedMigrations(ctx, conn)
	if err != nil {
		return err
	}
	pending, err := pendingMigrations(migs, applied)
	if err != nil {
		return err
	}

	for _, m := range pending {
		start := time.Now()
		if err := apply(ctx, conn, m); err != nil {
			return err
		}
		r.logf("[migration] applied V%d %s in %s", m.Version, m.Name, time.Since(start).Round(time.Millisecond))
	}
	return nil
}

// Status lists every migration in the source with its applied time, nil
// when pending.
func (r Runner) Status(ctx context.Context, db *sql.DB) ([]Status, error) {
	if db == nil {
		return nil, database.ErrNoDB
	}
	migs, err := Load(r.source())
	if err != nil {
		return nil, err
	}

	conn, err := db.Conn(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	if err := ensureSchemaMigrations(ctx, conn); err != nil {
		return nil, err
	}
	applied, err := appliedMigrations(ctx, conn)
	if err != nil {
		return nil, err
	}

	out := make([]Status, 0, len(migs))
	for _, m := range migs {
		s := Status{Migration: m}
		if a, ok := applied[m.Version]; ok {
			at := a.AppliedAt
			s.AppliedAt = &at
		}
		out = append(out, s)
	}
	return out, nil
}

func (r Runner) source() fs.FS {
	if r.FS == nil {
		return Source("")
	}
	return r.FS
}

func (r Runner) logf(format string, args ...any) {
	if r.Logger != nil {
		r.Logger.Printf(format, args...)
	}
}

type appliedMigration struct {
	Checksum  string
	AppliedAt time.Time
}

// pendingMigrations returns migs not yet in applied, failing when an applied
// file has changed since.
func pendingMigrations(migs []Migration, applied map[int64]appliedMigration) ([]Migration, error) {
	var pending []Migration
	for _, m := range migs {
		a, ok := applied[m.Version]
		if !ok {
			pending = append(pending, m)
			continue
		}
		if a.Checksum != m.Checksum {
			return nil, fmt.Errorf("%w: V%d %s", ErrChecksumMismatch, m.Version, m.Name)
		}
	}
	return pending, nil
}

func ensureSchemaMigrations(ctx context.Context, conn *sql.Conn) error {
	_, err := conn.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS schema_migrations (
	version BIGINT PRIMARY KEY,
	name TEXT NOT NULL,
	checksum TEXT NOT NULL,
	applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`)
	return err
}

func appliedMigrations(ctx context.Context, conn *sql.Conn) (map[int64]appliedMigration, error) {
	rows, err := conn.QueryContext(ctx, `SELECT version, checksum, applied_at FROM schema_migrations`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[int64]appliedMigration)
	for rows.Next() {
		var (
			version int64
			a       appliedMigration
		)
		if err := rows.Scan(&version, &a.Checksum, &a.AppliedAt); err != nil {
			return nil, err
		}
		out[version] = a
	}
	return out, rows.Err()
}

func apply(ctx context.Context, conn *sql.Conn, m Migration) error {
	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, m.SQL); err != nil {
		return fmt.Errorf("apply %s: %w", m.Filename, err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO schema_migrations (version, name, checksum) VALUES ($1, $2, $3)`,
		m.Version, m.Name, m.Checksum,
	); err != nil {
		return fmt.Errorf("record %s: %w", m.Filename, err)
	}
	return tx.Commit()
}
