// Package store provides a SQLite-backed history of projection runs.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kashifrazzaqui/lifeline/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// History records completed projection runs.
type History struct {
	db *sql.DB
}

// Run is one saved projection with its inputs and headline outcome.
type Run struct {
	ID               int64
	RanAt            time.Time
	Input            model.Input
	Months           int
	FinalPrincipal   float64
	IndefiniteGrowth bool
}

// Open opens or creates the history database at the given path.
func Open(dbPath string) (*History, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating history dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening history db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &History{db: db}, nil
}

// Close closes the history database.
func (h *History) Close() error {
	return h.db.Close()
}

// SaveRun stores a projection run and its yearly breakdown, returning the
// new run's id.
func (h *History) SaveRun(in model.Input, res model.Result) (int64, error) {
	tx, err := h.db.Begin()
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	indefinite := 0
	if res.IndefiniteGrowth {
		indefinite = 1
	}

	r, err := tx.Exec(`INSERT INTO runs
		(ran_at, principal, annual_return, monthly_expense, months, final_principal, indefinite_growth)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		time.Now().UTC().Format(time.RFC3339),
		in.Principal, in.AnnualReturn, in.MonthlyExpense,
		res.Months, res.FinalPrincipal, indefinite,
	)
	if err != nil {
		return 0, err
	}

	id, err := r.LastInsertId()
	if err != nil {
		return 0, err
	}

	for _, y := range res.Years {
		_, err := tx.Exec(`INSERT INTO run_years
			(run_id, year, starting_principal, annual_return_percent,
			 total_interest, charity_deducted, total_expense, ending_principal)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			id, y.Year, y.StartingPrincipal, y.AnnualReturnPercent,
			y.TotalInterest, y.CharityDeducted, y.TotalExpense, y.EndingPrincipal,
		)
		if err != nil {
			return 0, err
		}
	}

	return id, tx.Commit()
}

// ListRuns returns the most recent runs, newest first.
func (h *History) ListRuns(limit int) ([]Run, error) {
	rows, err := h.db.Query(`SELECT
		id, ran_at, principal, annual_return, monthly_expense,
		months, final_principal, indefinite_growth
		FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// LastRun returns the most recent run and its yearly breakdown, or nil
// when the history is empty.
func (h *History) LastRun() (*Run, []model.YearRecord, error) {
	row := h.db.QueryRow(`SELECT
		id, ran_at, principal, annual_return, monthly_expense,
		months, final_principal, indefinite_growth
		FROM runs ORDER BY id DESC LIMIT 1`)

	run, err := scanRun(row)
	if err == sql.ErrNoRows {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}

	years, err := h.runYears(run.ID)
	if err != nil {
		return nil, nil, err
	}
	return &run, years, nil
}

// RunCount returns the number of saved runs.
func (h *History) RunCount() (int, error) {
	var count int
	err := h.db.QueryRow("SELECT COUNT(*) FROM runs").Scan(&count)
	return count, err
}

func (h *History) runYears(runID int64) ([]model.YearRecord, error) {
	rows, err := h.db.Query(`SELECT
		year, starting_principal, annual_return_percent,
		total_interest, charity_deducted, total_expense, ending_principal
		FROM run_years WHERE run_id = ? ORDER BY year`, runID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var years []model.YearRecord
	for rows.Next() {
		var y model.YearRecord
		err := rows.Scan(&y.Year, &y.StartingPrincipal, &y.AnnualReturnPercent,
			&y.TotalInterest, &y.CharityDeducted, &y.TotalExpense, &y.EndingPrincipal)
		if err != nil {
			return nil, err
		}
		years = append(years, y)
	}
	return years, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (Run, error) {
	var (
		run        Run
		ranAt      string
		indefinite int
	)
	err := row.Scan(&run.ID, &ranAt, &run.Input.Principal, &run.Input.AnnualReturn,
		&run.Input.MonthlyExpense, &run.Months, &run.FinalPrincipal, &indefinite)
	if err != nil {
		return Run{}, err
	}

	run.IndefiniteGrowth = indefinite != 0
	run.RanAt, _ = time.Parse(time.RFC3339, ranAt)
	return run, nil
}
