package store

import (
	"errors"
	"strings"

	duckdb "github.com/duckdb/duckdb-go/v2"

	srvErrors "github.com/unison/inventory-manager/pkg/errors"
)

func isConstraintError(err error) bool {
	var dErr *duckdb.Error
	if errors.As(err, &dErr) && dErr.Type == duckdb.ErrorTypeConstraint {
		return true
	}
	// Commit-time conflicts surface as transaction errors carrying the constraint text.
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "constraint") || strings.Contains(msg, "duplicate key")
}

// classifyWriteError maps driver errors onto the error kinds callers handle.
// Errors that already carry a kind pass through unchanged.
func classifyWriteError(resource string, err error) error {
	switch {
	case err == nil:
		return nil
	case srvErrors.IsResourceNotFoundError(err),
		srvErrors.IsConstraintViolationError(err),
		srvErrors.IsFormatError(err),
		srvErrors.IsConnectionError(err):
		return err
	case isConstraintError(err):
		return srvErrors.NewConstraintViolationError(resource, "unique or primary key conflict", err)
	default:
		return err
	}
}
