package repository

import (
	"errors"
	"strings"
)

// ErrNotInScope is returned by reorders that reference a row outside the ordered group
var ErrNotInScope = errors.New("id not found in ordering scope")

// IsUniqueViolation reports whether err is a unique constraint failure on PostgreSQL or SQLite
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint")
}
