package storage

import (
	"database/sql"
	_ "embed"
	"fmt"
)

//go:embed migrations/0001_documents.up.sql
var documentsUpSQL string

//go:embed migrations/0001_documents.down.sql
var documentsDownSQL string

// MigrateUp creates the documents table the store reads and writes. The
// schema is a single key/value table, so there is no version
// bookkeeping; the statement is idempotent.
func MigrateUp(db *sql.DB) error {
	if _, err := db.Exec(documentsUpSQL); err != nil {
		return fmt.Errorf("create documents table: %w", err)
	}
	return nil
}

func MigrateDown(db *sql.DB) error {
	if _, err := db.Exec(documentsDownSQL); err != nil {
		return fmt.Errorf("drop documents table: %w", err)
	}
	return nil
}
