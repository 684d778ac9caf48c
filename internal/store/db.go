// Package store keeps a small sqlite history of uploads: who analyzed
// what and when. Datasets themselves are never written to disk.
package store

import (
	"database/sql"
	"encoding/json"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"sales-analytics/internal/model"
)

// DB wraps the sqlite handle for the upload history.
type DB struct {
	db *sql.DB
}

// Open opens (or creates) the history database and its schema.
func Open(dbPath string) (*DB, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	uploadTable := `
	CREATE TABLE IF NOT EXISTS uploads (
		session_id TEXT PRIMARY KEY,
		filename TEXT,
		rows INTEGER,
		columns INTEGER,
		roles TEXT,
		created_at DATETIME
	);
	`
	if _, err := db.Exec(uploadTable); err != nil {
		db.Close()
		return nil, err
	}

	return &DB{db: db}, nil
}

// Close releases the sqlite handle.
func (s *DB) Close() error {
	return s.db.Close()
}

// SaveUpload records one upload or sample load.
func (s *DB) SaveUpload(rec model.UploadRecord) error {
	rolesJSON, err := json.Marshal(rec.Roles)
	if err != nil {
		return err
	}

	createdAt := rec.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err = s.db.Exec(
		`INSERT INTO uploads (session_id, filename, rows, columns, roles, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		rec.SessionID, rec.Filename, rec.Rows, rec.Columns, string(rolesJSON), createdAt,
	)
	return err
}

// ListUploads returns the most recent uploads, newest first.
func (s *DB) ListUploads(limit int) ([]model.UploadRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.Query(
		`SELECT session_id, filename, rows, columns, roles, created_at FROM uploads ORDER BY created_at DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []model.UploadRecord
	for rows.Next() {
		var rec model.UploadRecord
		var rolesJSON string
		if err := rows.Scan(&rec.SessionID, &rec.Filename, &rec.Rows, &rec.Columns, &rolesJSON, &rec.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(rolesJSON), &rec.Roles); err != nil {
			// tolerate malformed rows written by older versions
			rec.Roles = model.RoleAssignment{}
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
