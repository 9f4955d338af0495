package store

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/rnwolfe/planr/internal/config"
	_ "modernc.org/sqlite"
)

// DB wraps the SQLite connection.
type DB struct {
	conn *sql.DB
	log  *slog.Logger
}

// Open opens (or creates) the planr database under the XDG data dir.
func Open(logger *slog.Logger) (*DB, error) {
	paths := config.GetPaths()
	if err := paths.EnsureDirs(); err != nil {
		return nil, fmt.Errorf("creating data dirs: %w", err)
	}
	return OpenPath(paths.DBFile, logger)
}

// OpenPath opens the database at an explicit path.
func OpenPath(path string, logger *slog.Logger) (*DB, error) {
	if logger == nil {
		logger = slog.Default()
	}

	conn, err := sql.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA temp_store=MEMORY",
	}
	for _, p := range pragmas {
		if _, err := conn.Exec(p); err != nil {
			conn.Close()
			return nil, fmt.Errorf("setting pragma %q: %w", p, err)
		}
	}

	db := &DB{conn: conn, log: logger}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	logger.Debug("database ready", "path", path)

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// Conn returns the raw sql.DB for direct queries.
func (db *DB) Conn() *sql.DB {
	return db.conn
}

var migrations = []struct {
	name string
	sql  string
}{
	{"create_tasks", `CREATE TABLE IF NOT EXISTS tasks (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		notes TEXT DEFAULT '',
		difficulty TEXT NOT NULL DEFAULT 'medium',
		due_date TEXT,
		completed INTEGER DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		completed_at DATETIME
	)`},
	{"idx_tasks_completed", `CREATE INDEX IF NOT EXISTS idx_tasks_completed ON tasks(completed)`},
	{"idx_tasks_due_date", `CREATE INDEX IF NOT EXISTS idx_tasks_due_date ON tasks(due_date)`},
}

// migrate applies every migration not yet recorded in the migrations table.
func (db *DB) migrate() error {
	if _, err := db.conn.Exec(`CREATE TABLE IF NOT EXISTS migrations (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`); err != nil {
		return fmt.Errorf("creating migrations table: %w", err)
	}

	for _, m := range migrations {
		var n int
		if err := db.conn.QueryRow(`SELECT COUNT(*) FROM migrations WHERE name = ?`, m.name).Scan(&n); err != nil {
			return err
		}
		if n > 0 {
			continue
		}
		if _, err := db.conn.Exec(m.sql); err != nil {
			return fmt.Errorf("migration %s failed: %w\nSQL: %s", m.name, err, m.sql)
		}
		if _, err := db.conn.Exec(`INSERT INTO migrations (name) VALUES (?)`, m.name); err != nil {
			return fmt.Errorf("recording migration %s: %w", m.name, err)
		}
		db.log.Debug("applied migration", "name", m.name)
	}
	return nil
}
