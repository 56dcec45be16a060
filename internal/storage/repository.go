package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"calgarydogs/internal/core"
	"calgarydogs/internal/stats"

	_ "modernc.org/sqlite"
)

// SQLiteRepository keeps a snapshot of the registration table in SQLite and
// answers breed queries in SQL. Row order of the source is preserved in seq.
type SQLiteRepository struct {
	db *sql.DB
}

var _ stats.Querier = (*SQLiteRepository)(nil)

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

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Import replaces the stored snapshot with the records of t.
func (r *SQLiteRepository) Import(ctx context.Context, t *core.Table) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin import: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM registrations`); err != nil {
		return fmt.Errorf("clear registrations: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO registrations (seq, year, month, breed, total) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, rec := range t.Records() {
		if _, err := stmt.ExecContext(ctx, i+1, rec.Year, rec.Month, rec.Breed, rec.Total); err != nil {
			return fmt.Errorf("insert record %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit import: %w", err)
	}

	slog.InfoContext(ctx, "Registration table imported to SQLite", "records", t.Len())
	return nil
}

func (r *SQLiteRepository) HasBreed(ctx context.Context, breed string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM registrations WHERE breed = ?)`, breed).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check breed %s: %w", breed, err)
	}
	return exists, nil
}

func (r *SQLiteRepository) YearsPresent(ctx context.Context, breed string) ([]int, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT year FROM registrations
		WHERE breed = ?
		GROUP BY year
		ORDER BY MIN(seq)`, breed)
	if err != nil {
		return nil, fmt.Errorf("query years for %s: %w", breed, err)
	}
	defer rows.Close()

	var years []int
	for rows.Next() {
		var y int
		if err := rows.Scan(&y); err != nil {
			return nil, fmt.Errorf("scan year: %w", err)
		}
		years = append(years, y)
	}
	return years, rows.Err()
}

func (r *SQLiteRepository) TotalRegistrations(ctx context.Context, breed string) (int64, error) {
	var total int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(total), 0) FROM registrations WHERE breed = ?`, breed).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("sum registrations for %s: %w", breed, err)
	}
	return total, nil
}

func (r *SQLiteRepository) PercentageByYear(ctx context.Context, breed string) (core.Shares, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT year,
		       SUM(CASE WHEN breed = ? THEN total ELSE 0 END) AS breed_total,
		       SUM(total) AS year_total
		FROM registrations
		GROUP BY year
		ORDER BY MIN(seq)`, breed)
	if err != nil {
		return core.Shares{}, fmt.Errorf("query yearly totals: %w", err)
	}
	defer rows.Close()

	var (
		shares     core.Shares
		breedTotal int64
		grandTotal int64
	)
	for rows.Next() {
		var (
			year           int
			byBreed, byAll int64
		)
		if err := rows.Scan(&year, &byBreed, &byAll); err != nil {
			return core.Shares{}, fmt.Errorf("scan yearly totals: %w", err)
		}
		shares.ByYear = append(shares.ByYear, core.YearShare{Year: year, Percent: stats.Percent(byBreed, byAll)})
		breedTotal += byBreed
		grandTotal += byAll
	}
	if err := rows.Err(); err != nil {
		return core.Shares{}, fmt.Errorf("iterate yearly totals: %w", err)
	}
	shares.Overall = stats.Percent(breedTotal, grandTotal)
	return shares, nil
}

func (r *SQLiteRepository) PopularMonths(ctx context.Context, breed string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT month, COUNT(*) FROM registrations WHERE breed = ? GROUP BY month`, breed)
	if err != nil {
		return nil, fmt.Errorf("query months for %s: %w", breed, err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var (
			month string
			n     int
		)
		if err := rows.Scan(&month, &n); err != nil {
			return nil, fmt.Errorf("scan month count: %w", err)
		}
		counts[month] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate month counts: %w", err)
	}
	return stats.TopMonths(counts), nil
}
