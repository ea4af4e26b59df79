package ingest

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// StreamRecords iterates over all dataset records in a SQLite
// snapshot, calling fn for each one. Only one parsed record is alive
// at a time, keeping memory usage constant.
func StreamRecords(dbPath string, fn func(id string, data map[string]any) error) error {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("open snapshot %s: %w", dbPath, err)
	}
	defer func() { _ = db.Close() }()

	rows, err := db.Query("SELECT id, record FROM datasets")
	if err != nil {
		return fmt.Errorf("query datasets: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var id, raw string
		if err := rows.Scan(&id, &raw); err != nil {
			return fmt.Errorf("scan row: %w", err)
		}
		data, err := parseDataset([]byte(raw), id)
		if err != nil {
			return err
		}
		if err := fn(id, data); err != nil {
			return err
		}
	}
	return rows.Err()
}

// LoadRecord fetches a single dataset record by id.
func LoadRecord(dbPath, id string) (map[string]any, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open snapshot %s: %w", dbPath, err)
	}
	defer func() { _ = db.Close() }()

	var raw string
	err = db.QueryRow("SELECT record FROM datasets WHERE id = ?", id).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("snapshot %s: no record %q", dbPath, id)
	}
	if err != nil {
		return nil, fmt.Errorf("load record %q: %w", id, err)
	}
	return parseDataset([]byte(raw), id)
}
