package database

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound is returned when no row matches the query. For todos that
	// includes rows owned by a different user.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when an insert hits a unique constraint.
	ErrDuplicate = errors.New("already exists")
)

// isUniqueConstraintErr maps the driver's unique-constraint failure so that
// callers can branch on ErrDuplicate instead of sniffing error text.
func isUniqueConstraintErr(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
