package storage

import (
	"context"
	"time"
)

//go:generate moq -out session_mock.go . SessionStorage

// SessionStorage defines interface for the client session and sync metadata.
// Session issuance happens elsewhere; the client only keeps what it was given.
type SessionStorage interface {
	// SaveSession stores the active session, replacing any previous one
	SaveSession(ctx context.Context, session *Session) error

	// GetSession returns the active session
	// Returns ErrSessionNotFound if no session exists
	GetSession(ctx context.Context) (*Session, error)

	// DeleteSession removes the active session (logout)
	DeleteSession(ctx context.Context) error

	// DeviceID returns a stable identifier of this installation,
	// generating it on first use
	DeviceID(ctx context.Context) (string, error)

	// SaveLastSync stores the summary of the most recent sync run
	SaveLastSync(ctx context.Context, summary *SyncSummary) error

	// GetLastSync returns the summary of the most recent sync run
	// Returns nil, nil if no sync has been performed yet
	GetLastSync(ctx context.Context) (*SyncSummary, error)
}

// Session represents the authenticated user of this device
type Session struct {
	CreatedAt   time.Time `json:"created_at"`
	AccessToken string    `json:"access_token"`
	UserID      int64     `json:"user_id"`
}

// SyncSummary is the persisted copy of the last sync outcome
type SyncSummary struct {
	FinishedAt time.Time `json:"finished_at"`
	Message    string    `json:"message"`
	UserID     int64     `json:"user_id"`
	Synced     int       `json:"synced"`
	Errors     int       `json:"errors"`
	Success    bool      `json:"success"`
}
