package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"blog-server/internal/repository"
)

// Open opens (or creates) a sqlite database at the given path and ensures directories exist.
func Open(path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	// a single connection keeps writes serialized and :memory: databases shared
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec(`PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	return db, nil
}

// classify maps driver constraint failures onto repository sentinels.
func classify(err error, op string) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "unique"):
		return fmt.Errorf("%s: %w", op, repository.ErrDuplicate)
	case strings.Contains(msg, "foreign key"):
		return fmt.Errorf("%s: %w", op, repository.ErrInUse)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

func checkAffected(res sql.Result, op string) error {
	aff, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s rows affected: %w", op, err)
	}
	if aff == 0 {
		return fmt.Errorf("%s: %w", op, repository.ErrNotFound)
	}
	return nil
}
