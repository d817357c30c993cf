// Package store persists comparison run history in SQLite.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/bakeoff-ai/bakeoff/pkg/models"
)

// ErrNotFound is returned when a requested run does not exist.
var ErrNotFound = errors.New("run not found")

// Store records and queries comparison runs.
type Store interface {
	// Save persists a run and returns its assigned ID.
	Save(ctx context.Context, run models.ComparisonRun) (int64, error)
	// Get returns a single run by ID.
	Get(ctx context.Context, id int64) (models.ComparisonRun, error)
	// List returns the most recent runs, newest first. A limit of 0 means no limit.
	List(ctx context.Context, limit int) ([]models.ComparisonRun, error)
	// Latest returns the most recently saved run.
	Latest(ctx context.Context) (models.ComparisonRun, error)
	// TotalSavings returns the summed absolute cost savings across all runs.
	TotalSavings(ctx context.Context) (float64, error)
	// Close releases resources.
	Close() error
}

// SQLiteStore implements Store with a SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

const createTable = `
CREATE TABLE IF NOT EXISTS comparison_runs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	label TEXT NOT NULL DEFAULT '',
	prompt_hash TEXT NOT NULL,
	cost_per_million REAL NOT NULL,
	system_overhead_ms REAL NOT NULL,
	baked_overhead_ms REAL NOT NULL,
	request_volume INTEGER NOT NULL,
	system_tokens INTEGER NOT NULL,
	user_tokens INTEGER NOT NULL,
	traditional_cost_per_request REAL NOT NULL,
	traditional_cost_per_volume REAL NOT NULL,
	baked_cost_per_request REAL NOT NULL,
	baked_cost_per_volume REAL NOT NULL,
	token_savings_pct REAL NOT NULL,
	cost_savings REAL NOT NULL,
	cost_savings_pct REAL NOT NULL,
	latency_improvement_pct REAL NOT NULL,
	created_at DATETIME NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_runs_created ON comparison_runs(created_at);
CREATE INDEX IF NOT EXISTS idx_runs_prompt ON comparison_runs(prompt_hash);
`

// New creates a SQLiteStore and runs auto-migration.
func New(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store db: %w", err)
	}

	if _, err := db.Exec(createTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate store db: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Save persists a run and returns its assigned ID.
func (s *SQLiteStore) Save(ctx context.Context, run models.ComparisonRun) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO comparison_runs (
			label, prompt_hash,
			cost_per_million, system_overhead_ms, baked_overhead_ms, request_volume,
			system_tokens, user_tokens,
			traditional_cost_per_request, traditional_cost_per_volume,
			baked_cost_per_request, baked_cost_per_volume,
			token_savings_pct, cost_savings, cost_savings_pct, latency_improvement_pct,
			created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.Label, run.PromptHash,
		run.Pricing.CostPerMillionInputTokens, run.Pricing.SystemPromptOverheadMs,
		run.Pricing.BakedOverheadMs, run.Pricing.RequestVolume,
		run.Result.Traditional.SystemTokens, run.Result.Traditional.UserTokens,
		run.Result.Traditional.CostPerRequest, run.Result.Traditional.CostPerVolume,
		run.Result.Baked.CostPerRequest, run.Result.Baked.CostPerVolume,
		run.Result.TokenSavingsPct, run.Result.CostSavingsAbsolute,
		run.Result.CostSavingsPct, run.Result.LatencyImprovementPct,
		run.CreatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("save run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("run id: %w", err)
	}
	return id, nil
}

const selectColumns = `id, label, prompt_hash,
	cost_per_million, system_overhead_ms, baked_overhead_ms, request_volume,
	system_tokens, user_tokens,
	traditional_cost_per_request, traditional_cost_per_volume,
	baked_cost_per_request, baked_cost_per_volume,
	token_savings_pct, cost_savings, cost_savings_pct, latency_improvement_pct,
	created_at`

func scanRun(row interface{ Scan(...any) error }) (models.ComparisonRun, error) {
	var r models.ComparisonRun
	err := row.Scan(
		&r.ID, &r.Label, &r.PromptHash,
		&r.Pricing.CostPerMillionInputTokens, &r.Pricing.SystemPromptOverheadMs,
		&r.Pricing.BakedOverheadMs, &r.Pricing.RequestVolume,
		&r.Result.Traditional.SystemTokens, &r.Result.Traditional.UserTokens,
		&r.Result.Traditional.CostPerRequest, &r.Result.Traditional.CostPerVolume,
		&r.Result.Baked.CostPerRequest, &r.Result.Baked.CostPerVolume,
		&r.Result.TokenSavingsPct, &r.Result.CostSavingsAbsolute,
		&r.Result.CostSavingsPct, &r.Result.LatencyImprovementPct,
		&r.CreatedAt,
	)
	if err != nil {
		return models.ComparisonRun{}, err
	}

	// Rebuild the derived scenario fields not stored as columns.
	r.Result.Traditional.Scenario = models.ScenarioTraditional
	r.Result.Traditional.TotalTokensPerRequest = r.Result.Traditional.SystemTokens + r.Result.Traditional.UserTokens
	r.Result.Traditional.LatencyOverheadMs = r.Pricing.SystemPromptOverheadMs
	r.Result.Baked.Scenario = models.ScenarioBaked
	r.Result.Baked.SystemTokens = 0
	r.Result.Baked.UserTokens = r.Result.Traditional.UserTokens
	r.Result.Baked.TotalTokensPerRequest = r.Result.Baked.UserTokens
	r.Result.Baked.LatencyOverheadMs = r.Pricing.BakedOverheadMs
	return r, nil
}

// Get returns a single run by ID.
func (s *SQLiteStore) Get(ctx context.Context, id int64) (models.ComparisonRun, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+selectColumns+` FROM comparison_runs WHERE id = ?`, id)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ComparisonRun{}, ErrNotFound
	}
	if err != nil {
		return models.ComparisonRun{}, fmt.Errorf("get run: %w", err)
	}
	return run, nil
}

// List returns the most recent runs, newest first.
func (s *SQLiteStore) List(ctx context.Context, limit int) ([]models.ComparisonRun, error) {
	query := `SELECT ` + selectColumns + ` FROM comparison_runs ORDER BY created_at DESC, id DESC`
	var args []any
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []models.ComparisonRun
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// Latest returns the most recently saved run.
func (s *SQLiteStore) Latest(ctx context.Context) (models.ComparisonRun, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+selectColumns+` FROM comparison_runs ORDER BY created_at DESC, id DESC LIMIT 1`)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ComparisonRun{}, ErrNotFound
	}
	if err != nil {
		return models.ComparisonRun{}, fmt.Errorf("latest run: %w", err)
	}
	return run, nil
}

// TotalSavings returns the summed absolute cost savings across all runs.
func (s *SQLiteStore) TotalSavings(ctx context.Context) (float64, error) {
	var total float64
	err := s.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(cost_savings), 0) FROM comparison_runs`,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("total savings: %w", err)
	}
	return total, nil
}

// Close releases the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
