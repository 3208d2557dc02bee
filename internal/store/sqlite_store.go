package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"primecount/internal/domain"
)

const schema = `CREATE TABLE IF NOT EXISTS runs (
	id              INTEGER PRIMARY KEY AUTOINCREMENT,
	started_at      INTEGER NOT NULL,
	input           TEXT    NOT NULL,
	digest          TEXT    NOT NULL,
	numbers         INTEGER NOT NULL,
	threads         INTEGER NOT NULL,
	cpu_brand       TEXT    NOT NULL,
	logical_cores   INTEGER NOT NULL,
	physical_cores  INTEGER NOT NULL,
	num_cpu         INTEGER NOT NULL,
	seq_count       INTEGER NOT NULL,
	seq_elapsed_ns  INTEGER NOT NULL,
	par_workers     INTEGER NOT NULL,
	par_count       INTEGER NOT NULL,
	par_elapsed_ns  INTEGER NOT NULL,
	matched         INTEGER NOT NULL
)`

// SQLiteStore keeps run history in a SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens or creates the database at path and ensures the schema.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create table: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set journal mode: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// SaveRun inserts run as a new row.
func (s *SQLiteStore) SaveRun(run domain.Comparison) error {
	_, err := s.db.Exec(`INSERT INTO runs (
		started_at, input, digest, numbers, threads,
		cpu_brand, logical_cores, physical_cores, num_cpu,
		seq_count, seq_elapsed_ns, par_workers, par_count, par_elapsed_ns, matched
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.StartedAt.UnixNano(), run.Input, string(run.Digest), run.Numbers, run.Threads,
		run.Host.CPUBrand, run.Host.LogicalCores, run.Host.PhysicalCores, run.Host.NumCPU,
		run.Sequential.Count, int64(run.Sequential.Elapsed),
		run.Parallel.Workers, run.Parallel.Count, int64(run.Parallel.Elapsed),
		run.Match,
	)
	if err != nil {
		return fmt.Errorf("failed to insert run for %s: %w", run.Input, err)
	}
	return nil
}

// ListRuns returns stored runs in insertion order.
func (s *SQLiteStore) ListRuns() ([]domain.Comparison, error) {
	rows, err := s.db.Query(`SELECT
		started_at, input, digest, numbers, threads,
		cpu_brand, logical_cores, physical_cores, num_cpu,
		seq_count, seq_elapsed_ns, par_workers, par_count, par_elapsed_ns, matched
	FROM runs ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []domain.Comparison
	for rows.Next() {
		var (
			r                      domain.Comparison
			startedAt              int64
			digest                 string
			seqElapsed, parElapsed int64
		)
		if err := rows.Scan(
			&startedAt, &r.Input, &digest, &r.Numbers, &r.Threads,
			&r.Host.CPUBrand, &r.Host.LogicalCores, &r.Host.PhysicalCores, &r.Host.NumCPU,
			&r.Sequential.Count, &seqElapsed,
			&r.Parallel.Workers, &r.Parallel.Count, &parElapsed,
			&r.Match,
		); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		r.StartedAt = time.Unix(0, startedAt).UTC()
		r.Digest = domain.Digest(digest)
		r.Sequential.Mode = domain.ModeSequential
		r.Sequential.Workers = 1
		r.Sequential.Elapsed = time.Duration(seqElapsed)
		r.Parallel.Mode = domain.ModeParallel
		r.Parallel.Elapsed = time.Duration(parElapsed)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Close closes the database.
func (s *SQLiteStore) Close() error { return s.db.Close() }
