// Package sqlite
package sqlite

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"sysreport/internal/logger"
)

func NewDB(dbPath string, log logger.Logger) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL&_synchronous=NORMAL", dbPath)

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("database not responding: %w", err)
	}

	// one short-lived process, one connection is plenty
	db.SetMaxOpenConns(1)

	if err := runMigration(db); err != nil {
		db.Close()
		return nil, err
	}

	log.Debug("report index opened", "path", dbPath)

	return db, nil
}

func runMigration(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS reports (
		id INTEGER PRIMARY KEY,
		filename TEXT NOT NULL UNIQUE,
		created_at TEXT NOT NULL,
		size_bytes INTEGER NOT NULL,
		sections INTEGER NOT NULL
	);
	`
	_, err := db.Exec(query)
	if err != nil {
		return fmt.Errorf("failed to migrate reports table: %w", err)
	}
	return nil
}
