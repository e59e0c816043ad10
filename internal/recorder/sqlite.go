package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"MortgageLab/internal/model"
)

// SQLiteRecorder persists batch results to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode for better concurrent read performance (dashboards read
	// while watch mode writes).
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS scenario_results (
			id                   INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp            INTEGER NOT NULL,
			batch_title          TEXT,
			scenario             TEXT,
			kind                 TEXT,
			simulations          INTEGER,
			initial_payment_mean REAL,
			initial_payment_std  REAL,
			total_interest_mean  REAL,
			total_interest_std   REAL,
			total_interest_p5    REAL,
			total_interest_p95   REAL,
			total_paid_mean      REAL,
			total_paid_std       REAL,
			total_paid_p5        REAL,
			total_paid_p95       REAL,
			duration_mean        REAL,
			duration_std         REAL,
			interest_saved       REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_results_ts ON scenario_results(timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_results_scenario ON scenario_results(scenario)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// RecordBatch inserts one row per scenario result, all stamped with the
// same batch timestamp.
func (r *SQLiteRecorder) RecordBatch(title string, results []*model.ScenarioResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().Unix()
	for _, res := range results {
		_, err := r.db.Exec(`INSERT INTO scenario_results
			(timestamp, batch_title, scenario, kind, simulations,
			 initial_payment_mean, initial_payment_std,
			 total_interest_mean, total_interest_std, total_interest_p5, total_interest_p95,
			 total_paid_mean, total_paid_std, total_paid_p5, total_paid_p95,
			 duration_mean, duration_std, interest_saved)
			VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
			now, title, res.Name, string(res.Kind), res.Simulations,
			res.InitialPayment.Mean, res.InitialPayment.Std,
			res.TotalInterest.Mean, res.TotalInterest.Std,
			res.TotalInterest.P5, res.TotalInterest.P95,
			res.TotalPaid.Mean, res.TotalPaid.Std,
			res.TotalPaid.P5, res.TotalPaid.P95,
			res.DurationMonths.Mean, res.DurationMonths.Std,
			res.InterestSaved,
		)
		if err != nil {
			return fmt.Errorf("insert %q: %w", res.Name, err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
