package bench

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Store persists benchmark runs to SQLite so dispatch-strategy numbers can
// be compared across revisions and machines.
type Store struct {
	db *sql.DB
}

// OpenStore opens (creating if needed) the results database at path.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening results database: %w", err)
	}

	// Set busy timeout for concurrent access
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		created_at TEXT NOT NULL,
		program TEXT NOT NULL,
		engine TEXT NOT NULL,
		iterations INTEGER NOT NULL,
		ns_per_iter REAL NOT NULL,
		result INTEGER NOT NULL
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating runs table: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// RecordAll inserts one row per result, all stamped with the same time.
func (s *Store) RecordAll(program string, results []Result) error {
	now := time.Now().UTC().Format(time.RFC3339)
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("recording results: %w", err)
	}
	for _, r := range results {
		_, err := tx.Exec(
			"INSERT INTO runs (created_at, program, engine, iterations, ns_per_iter, result) VALUES (?, ?, ?, ?, ?, ?)",
			now, program, r.Engine, r.Iterations, r.NsPerIter, r.Scalar,
		)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("recording %s run: %w", r.Engine, err)
		}
	}
	return tx.Commit()
}

// StoredRun is one persisted benchmark row.
type StoredRun struct {
	ID        int64
	CreatedAt time.Time
	Program   string
	Engine    string
	Iters     int
	NsPerIter float64
	Scalar    int64
}

// Recent returns the newest rows, most recent first.
func (s *Store) Recent(limit int) ([]StoredRun, error) {
	rows, err := s.db.Query(
		"SELECT id, created_at, program, engine, iterations, ns_per_iter, result FROM runs ORDER BY id DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var out []StoredRun
	for rows.Next() {
		var r StoredRun
		var created string
		if err := rows.Scan(&r.ID, &created, &r.Program, &r.Engine, &r.Iters, &r.NsPerIter, &r.Scalar); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		if t, err := time.Parse(time.RFC3339, created); err == nil {
			r.CreatedAt = t
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
