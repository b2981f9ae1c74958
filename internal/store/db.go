// Package store is an optional Postgres sink for normalized pay-plan
// listings. It only runs when a DATABASE_URL is configured; the snapshot
// file stays the source of truth either way.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/baxromumarov/payplan/internal/payplan"
)

type Store struct {
	db *sql.DB
}

func NewStore(connStr string) (*Store, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping db: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

const schema = `
CREATE TABLE IF NOT EXISTS pay_plan_listings (
    job_id         TEXT PRIMARY KEY,
    title          TEXT,
    category       TEXT,
    effective_date TEXT,
    annual_min     NUMERIC,
    annual_max     NUMERIC,
    monthly_min    NUMERIC,
    monthly_max    NUMERIC,
    created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
);`

// EnsureSchema creates the listings table when it does not exist yet.
func (s *Store) EnsureSchema(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}
	return nil
}

// InsertListings persists normalized listings, skipping job codes that are
// already present. Returns the number of rows actually inserted.
func (s *Store) InsertListings(ctx context.Context, records []payplan.NamedRecord) (int, error) {
	inserted := 0
	for _, rec := range records {
		job := payplan.NewJobListing(rec)
		res, err := s.db.ExecContext(ctx, `
INSERT INTO pay_plan_listings
    (job_id, title, category, effective_date, annual_min, annual_max, monthly_min, monthly_max)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (job_id) DO NOTHING
`,
			job.ID(),
			nullString(job.Title()),
			job.Category(),
			job.Date(),
			nullFloat(job.AnnualSalaryMin()),
			nullFloat(job.AnnualSalaryMax()),
			nullFloat(job.MonthlySalaryMin()),
			nullFloat(job.MonthlySalaryMax()),
		)
		if err != nil {
			return inserted, fmt.Errorf("insert listing %s: %w", job.ID(), err)
		}
		if n, err := res.RowsAffected(); err == nil {
			inserted += int(n)
		}
	}
	return inserted, nil
}

func nullString(v *string) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *v, Valid: true}
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}
