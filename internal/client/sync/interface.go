package sync

import "context"

//go:generate moq -out syncer_mock.go . Syncer

// Syncer runs reconciliation passes for one user
type Syncer interface {
	ServerToLocal(ctx context.Context, userID int64) Outcome
	LocalToServer(ctx context.Context, userID int64) Outcome
	FullSync(ctx context.Context, userID int64) Outcome
}

var _ Syncer = (*Reconciler)(nil)
