package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/meera/lingodrill/internal/ledger"
	"github.com/meera/lingodrill/internal/practice"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store holds the database handle and provides access to repositories.
type Store struct {
	db *sql.DB
}

// Open creates a new Store connected to the SQLite database at dsn.
// It applies recommended pragmas and bootstraps the schema.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &Store{db: db}, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Configs returns the last-used-config repository.
func (s *Store) Configs() ConfigRepo {
	return &configRepo{db: s.db}
}

// Ledger returns the performance-ledger repository.
func (s *Store) Ledger() LedgerRepo {
	return &ledgerRepo{db: s.db}
}

// Results returns the test-result repository.
func (s *Store) Results() ResultRepo {
	return &resultRepo{db: s.db}
}

// SaveOutcome applies the batched ledger updates and appends the result
// record in a single transaction, so a completed session's two writes land
// together or not at all.
func (s *Store) SaveOutcome(ctx context.Context, profile string, updates []ledger.Update, result practice.Result) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin outcome tx: %w", err)
	}
	defer tx.Rollback()

	if err := applyUpdatesTx(ctx, tx, profile, updates); err != nil {
		return err
	}
	if err := appendResultTx(ctx, tx, profile, result); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit outcome: %w", err)
	}
	return nil
}

// Reset deletes all persisted data for one profile.
func (s *Store) Reset(ctx context.Context, profile string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin reset tx: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"test_configs", "performance_records", "test_results"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table+" WHERE profile = ?", profile); err != nil {
			return fmt.Errorf("reset %s: %w", table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit reset: %w", err)
	}
	return nil
}

// applyPragmas configures SQLite for optimal single-user performance.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// initSchema creates the tables if they do not exist.
func initSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS test_configs (
			profile    TEXT PRIMARY KEY,
			config     TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS performance_records (
			profile        TEXT NOT NULL,
			question_id    TEXT NOT NULL,
			total_attempts INTEGER NOT NULL DEFAULT 0,
			correct        INTEGER NOT NULL DEFAULT 0,
			wrong          INTEGER NOT NULL DEFAULT 0,
			doubt          INTEGER NOT NULL DEFAULT 0,
			PRIMARY KEY (profile, question_id)
		)`,
		`CREATE TABLE IF NOT EXISTS test_results (
			id              TEXT PRIMARY KEY,
			profile         TEXT NOT NULL,
			lesson_id       TEXT NOT NULL,
			config          TEXT NOT NULL,
			question_ids    TEXT NOT NULL,
			answers         TEXT NOT NULL,
			score           INTEGER NOT NULL,
			total_questions INTEGER NOT NULL,
			completed_at    TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_test_results_profile
			ON test_results (profile, completed_at)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}

// marshalJSON renders v for a TEXT column.
func marshalJSON(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("marshal: %w", err)
	}
	return string(b), nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. LINGODRILL_DB environment variable
// 2. $XDG_DATA_HOME/lingodrill/lingodrill.db
// 3. ~/.local/share/lingodrill/lingodrill.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("LINGODRILL_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "lingodrill", "lingodrill.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
