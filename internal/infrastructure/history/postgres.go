package history

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/poetis/backend/internal/domain"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 200
)

const schema = `
CREATE TABLE IF NOT EXISTS scan_results (
	id         UUID PRIMARY KEY,
	mode       TEXT NOT NULL,
	container  TEXT NOT NULL,
	item_count INTEGER NOT NULL,
	set_count  INTEGER NOT NULL,
	payload    JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS scan_results_created_at_idx ON scan_results (created_at DESC);
`

// scanRow is one row of scan_results
type scanRow struct {
	ID        string    `db:"id"`
	Mode      string    `db:"mode"`
	Container string    `db:"container"`
	ItemCount int       `db:"item_count"`
	SetCount  int       `db:"set_count"`
	Payload   string    `db:"payload"` // JSON text; lib/pq would send []byte as bytea
	CreatedAt time.Time `db:"created_at"`
}

// PostgresRepository stores scan results in PostgreSQL
type PostgresRepository struct {
	db *sqlx.DB
}

// NewPostgresRepository connects, tunes the pool and makes sure the table exists
func NewPostgresRepository(ctx context.Context, dsn string, maxConn int) (*PostgresRepository, error) {
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if maxConn > 0 {
		db.SetMaxOpenConns(maxConn)
		db.SetMaxIdleConns(maxConn / 2)
	}
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(2 * time.Minute)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &PostgresRepository{db: db}, nil
}

// Close closes the database connection
func (r *PostgresRepository) Close() error {
	return r.db.Close()
}

// Save inserts a scan result; saving the same id twice is a no-op
func (r *PostgresRepository) Save(ctx context.Context, result *domain.ScanResult) error {
	row, err := toRow(result)
	if err != nil {
		return err
	}

	_, err = r.db.NamedExecContext(ctx, `
		INSERT INTO scan_results (id, mode, container, item_count, set_count, payload, created_at)
		VALUES (:id, :mode, :container, :item_count, :set_count, :payload, :created_at)
		ON CONFLICT (id) DO NOTHING`, row)
	if err != nil {
		return fmt.Errorf("failed to save scan %s: %w", result.ID, err)
	}
	return nil
}

// ListRecent returns the newest scans first
func (r *PostgresRepository) ListRecent(ctx context.Context, limit int) ([]domain.ScanSummary, error) {
	summaries := []domain.ScanSummary{}
	err := r.db.SelectContext(ctx, &summaries, `
		SELECT id, mode, container, item_count, set_count, created_at
		FROM scan_results
		ORDER BY created_at DESC
		LIMIT $1`, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to list scans: %w", err)
	}
	return summaries, nil
}

func toRow(result *domain.ScanResult) (scanRow, error) {
	payload, err := json.Marshal(result)
	if err != nil {
		return scanRow{}, fmt.Errorf("failed to encode scan %s: %w", result.ID, err)
	}
	return scanRow{
		ID:        result.ID,
		Mode:      result.Mode,
		Container: result.Container,
		ItemCount: len(result.Items),
		SetCount:  len(result.Sets),
		Payload:   string(payload),
		CreatedAt: result.StartedAt.UTC(),
	}, nil
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultListLimit
	case limit > MaxListLimit:
		return MaxListLimit
	default:
		return limit
	}
}
