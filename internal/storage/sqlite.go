// Package storage provides SQLite-based persistence for checked-game
// results. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for the history ledger.
type Store struct {
	db *sql.DB
}

// ResultEntry is one checked game recorded in the ledger. Only the
// verdict is stored, never the game itself: the input file stays the
// sole source of game data.
type ResultEntry struct {
	ID        int64
	RunID     string // UUID assigned when the entry is saved
	Source    string // path of the input file
	Rows      int
	Columns   int
	WinLength int
	Moves     int // moves applied before the game ended or failed
	Code      int
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			source TEXT NOT NULL,
			rows INTEGER NOT NULL,
			columns INTEGER NOT NULL,
			win_length INTEGER NOT NULL,
			moves INTEGER NOT NULL,
			code INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_source ON results(source);
		CREATE INDEX IF NOT EXISTS idx_results_code ON results(code);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveResult records a checked game. A run UUID is assigned when the
// entry does not carry one. Returns the UUID under which the entry was
// stored.
func (s *Store) SaveResult(e ResultEntry) (string, error) {
	if e.RunID == "" {
		e.RunID = uuid.NewString()
	}

	_, err := s.db.Exec(
		`INSERT INTO results (run_id, source, rows, columns, win_length, moves, code)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.RunID, e.Source, e.Rows, e.Columns, e.WinLength, e.Moves, e.Code,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save result: %w", err)
	}

	return e.RunID, nil
}

// Recent retrieves the most recently checked games, newest first.
func (s *Store) Recent(limit int) ([]ResultEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, run_id, source, rows, columns, win_length, moves, code, created_at
		 FROM results
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var entries []ResultEntry
	for rows.Next() {
		var e ResultEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.RunID, &e.Source, &e.Rows, &e.Columns,
			&e.WinLength, &e.Moves, &e.Code, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			e.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				e.CreatedAt = parsed
			}
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// CodeCounts returns how many recorded games ended with each code.
func (s *Store) CodeCounts() (map[int]int, error) {
	rows, err := s.db.Query(`SELECT code, COUNT(*) FROM results GROUP BY code`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query code counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[int]int)
	for rows.Next() {
		var code, n int
		if err := rows.Scan(&code, &n); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		counts[code] = n
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return counts, nil
}

// Clear deletes all recorded results.
func (s *Store) Clear() error {
	_, err := s.db.Exec("DELETE FROM results")
	if err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}
