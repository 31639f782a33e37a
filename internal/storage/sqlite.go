package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/garrettladley/lumi/internal/color"
	"github.com/garrettladley/lumi/internal/migrations"
)

var _ Backend = (*SQLiteBackend)(nil)

// SQLiteBackend persists device state in a SQLite file so it survives
// simulator restarts. Rate limits stay in process.
type SQLiteBackend struct {
	db      *sql.DB
	limiter *MemoryBackend
}

func NewSQLiteBackend(ctx context.Context, path string, ratePerSec float64, burst int) (*SQLiteBackend, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// SQLite allows one writer at a time.
	db.SetMaxOpenConns(1)

	if _, err := migrations.Apply(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply migrations: %w", err)
	}

	return &SQLiteBackend{
		db:      db,
		limiter: NewMemoryBackend(ratePerSec, burst),
	}, nil
}

func (s *SQLiteBackend) Allow(ctx context.Context, key string) (RateLimitResult, error) {
	return s.limiter.Allow(ctx, key)
}

func (s *SQLiteBackend) State(ctx context.Context) (DeviceState, error) {
	var state DeviceState

	rows, err := s.db.QueryContext(ctx, "SELECT face, r, g, b FROM faces ORDER BY face")
	if err != nil {
		return DeviceState{}, fmt.Errorf("failed to query faces: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var face int
		var c color.RGB
		if err := rows.Scan(&face, &c.R, &c.G, &c.B); err != nil {
			return DeviceState{}, fmt.Errorf("failed to scan face: %w", err)
		}
		if checkFace(face) == nil {
			state.Faces[face] = c
		}
	}
	if err := rows.Err(); err != nil {
		return DeviceState{}, fmt.Errorf("failed to read faces: %w", err)
	}

	var p Pattern
	err = s.db.QueryRowContext(ctx,
		"SELECT pattern_id, name, custom FROM active_pattern WHERE singleton = 1",
	).Scan(&p.ID, &p.Name, &p.Custom)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return DeviceState{}, fmt.Errorf("failed to query pattern: %w", err)
	default:
		state.Pattern = &p
	}

	return state, nil
}

func (s *SQLiteBackend) SetFace(ctx context.Context, face int, c color.RGB) error {
	if err := checkFace(face); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx,
		"UPDATE faces SET r = ?, g = ?, b = ?, updated_at = CURRENT_TIMESTAMP WHERE face = ?",
		c.R, c.G, c.B, face,
	)
	if err != nil {
		return fmt.Errorf("failed to set face: %w", err)
	}
	return nil
}

func (s *SQLiteBackend) Fill(ctx context.Context, c color.RGB) error {
	_, err := s.db.ExecContext(ctx,
		"UPDATE faces SET r = ?, g = ?, b = ?, updated_at = CURRENT_TIMESTAMP",
		c.R, c.G, c.B,
	)
	if err != nil {
		return fmt.Errorf("failed to fill faces: %w", err)
	}
	return nil
}

func (s *SQLiteBackend) SetPattern(ctx context.Context, p *Pattern) error {
	if p == nil {
		if _, err := s.db.ExecContext(ctx, "DELETE FROM active_pattern"); err != nil {
			return fmt.Errorf("failed to clear pattern: %w", err)
		}
		return nil
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO active_pattern (singleton, pattern_id, name, custom, started_at)
		VALUES (1, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (singleton) DO UPDATE SET
			pattern_id = excluded.pattern_id,
			name = excluded.name,
			custom = excluded.custom,
			started_at = excluded.started_at
	`, p.ID, p.Name, p.Custom)
	if err != nil {
		return fmt.Errorf("failed to set pattern: %w", err)
	}
	return nil
}

func (s *SQLiteBackend) Close() error {
	_ = s.limiter.Close()
	return s.db.Close()
}

func (s *SQLiteBackend) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
