package storage

import "errors"

// Common storage errors
var (
	// ErrRecordNotFound indicates that record does not exist or belongs to another user
	ErrRecordNotFound = errors.New("record not found")
)
