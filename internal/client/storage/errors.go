package storage

import "errors"

// Common client storage errors
var (
	// ErrRecordNotFound indicates that local record was not found
	ErrRecordNotFound = errors.New("record not found")

	// ErrSessionNotFound indicates that no session has been stored yet
	ErrSessionNotFound = errors.New("session not found")

	// ErrRemoteIDConflict indicates that another local record already maps to the remote id
	ErrRemoteIDConflict = errors.New("remote id already mapped to another record")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
