package store

import (
	"database/sql"

	_ "github.com/duckdb/duckdb-go/v2"

	srvErrors "github.com/unison/inventory-manager/pkg/errors"
)

const memoryPath = ":memory:"

// NewDB opens the embedded database file at path. ":memory:" or an empty path
// opens a private in-memory database shared by every connection of the pool.
func NewDB(path string) (*sql.DB, error) {
	if path == memoryPath {
		path = ""
	}

	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, srvErrors.NewConnectionError(err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, srvErrors.NewConnectionError(err)
	}
	return db, nil
}
