package database

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

type DB struct {
	*sql.DB
}

// New opens the sqlite database at path and creates the schema.
// Use ":memory:" for a throwaway database.
func New(path string) (*DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// every connection to :memory: is a new database, and sqlite serializes writes anyway
	db.SetMaxOpenConns(1)

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err = migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}

	return &DB{db}, nil
}

func migrate(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS rounds (
		id TEXT PRIMARY KEY,
		chat_id INTEGER NOT NULL,
		player_cards TEXT NOT NULL,
		dealer_cards TEXT NOT NULL,
		player_score INTEGER NOT NULL,
		dealer_score INTEGER NOT NULL,
		result TEXT NOT NULL,
		tie_policy TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_rounds_chat ON rounds(chat_id, created_at);
	`

	_, err := db.Exec(schema)
	return err
}
