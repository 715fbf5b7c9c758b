package database

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3" // Import the sqlite3 driver.
)

// InitDB connects to the SQLite database and creates the schema.
func InitDB(dataSourceName string) (*sql.DB, error) {
	if dataSourceName != ":memory:" {
		dir := filepath.Dir(dataSourceName)
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Enable WAL mode for better concurrency.
	// This allows readers to not block writers.
	if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		slog.Warn("Failed to enable WAL mode for SQLite, continuing without it.", "error", err)
	}

	if err := createTables(db); err != nil {
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return db, nil
}

// createTables executes the SQL statements to create the database schema.
//
// messages holds the live, mutable log of each chat; commit_messages
// holds snapshot rows that are written once by CreateCommit and never
// updated. The two tables share no rows, so later appends or restores
// cannot reach back into a stored snapshot.
func createTables(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS chats (
			id TEXT PRIMARY KEY,
			owner_id TEXT NOT NULL,
			name TEXT NOT NULL,
			head_commit_id TEXT,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_chats_owner_id_updated_at ON chats(owner_id, updated_at DESC);

		CREATE TABLE IF NOT EXISTS messages (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			chat_id TEXT NOT NULL,
			role TEXT NOT NULL CHECK(role IN ('user', 'assistant')),
			content TEXT NOT NULL,
			timestamp DATETIME NOT NULL,
			FOREIGN KEY (chat_id) REFERENCES chats(id)
		);
		CREATE INDEX IF NOT EXISTS idx_messages_chat_id_seq ON messages(chat_id, seq);

		CREATE TABLE IF NOT EXISTS commits (
			id TEXT PRIMARY KEY,
			chat_id TEXT NOT NULL,
			name TEXT NOT NULL,
			created_at DATETIME NOT NULL,
			message_count INTEGER NOT NULL,
			FOREIGN KEY (chat_id) REFERENCES chats(id)
		);
		CREATE INDEX IF NOT EXISTS idx_commits_chat_id_created_at ON commits(chat_id, created_at DESC);

		CREATE TABLE IF NOT EXISTS commit_messages (
			commit_id TEXT NOT NULL,
			seq INTEGER NOT NULL,
			role TEXT NOT NULL,
			content TEXT NOT NULL,
			timestamp DATETIME NOT NULL,
			PRIMARY KEY (commit_id, seq),
			FOREIGN KEY (commit_id) REFERENCES commits(id)
		);
	`
	_, err := db.Exec(schema)
	return err
}
