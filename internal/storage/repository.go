// Package storage keeps an append-only history of KPI snapshots in SQLite,
// one row per observed ledger revision. The flat memory document stays the
// source of truth; this store only archives derived numbers for trend
// queries.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"pal/internal/core"

	_ "modernc.org/sqlite"
)

// SnapshotRecord is one archived KPI observation.
type SnapshotRecord struct {
	ID       int64            `json:"id"`
	TakenAt  string           `json:"takenAt"`
	Snapshot core.KPISnapshot `json:"kpis"`
	TxCount  int              `json:"txCount"`
	Address  string           `json:"address"`
}

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// Ping checks the database connection, for readiness probes.
func (r *SQLiteRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// AppendSnapshot archives one KPI observation.
func (r *SQLiteRepository) AppendSnapshot(ctx context.Context, snap core.KPISnapshot, txCount int, address string) error {
	takenAt := time.Now().UTC().Format(time.RFC3339)
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO kpi_snapshots (taken_at, weekly_income, weekly_spending, monthly_net, tx_count, address)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		takenAt, snap.WeeklyIncome, snap.WeeklySpending, snap.MonthlyNet, txCount, address)
	if err != nil {
		return fmt.Errorf("insert kpi snapshot: %w", err)
	}

	id, _ := res.LastInsertId()
	slog.InfoContext(ctx, "KPI snapshot archived",
		"component", "history",
		"id", id,
		"tx_count", txCount,
		"weekly_income", snap.WeeklyIncome,
		"weekly_spending", snap.WeeklySpending,
		"monthly_net", snap.MonthlyNet)

	return nil
}

// RecentSnapshots returns up to limit observations, newest first.
func (r *SQLiteRepository) RecentSnapshots(ctx context.Context, limit int) ([]SnapshotRecord, error) {
	if limit < 1 {
		limit = 1
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, taken_at, weekly_income, weekly_spending, monthly_net, tx_count, address
		 FROM kpi_snapshots ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query kpi snapshots: %w", err)
	}
	defer rows.Close()

	records := []SnapshotRecord{}
	for rows.Next() {
		var rec SnapshotRecord
		if err := rows.Scan(&rec.ID, &rec.TakenAt,
			&rec.Snapshot.WeeklyIncome, &rec.Snapshot.WeeklySpending, &rec.Snapshot.MonthlyNet,
			&rec.TxCount, &rec.Address); err != nil {
			return nil, fmt.Errorf("scan kpi snapshot: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate kpi snapshots: %w", err)
	}

	return records, nil
}
