package storage

import (
	"context"
	"time"

	"github.com/iudanet/medkeeper/internal/models"
)

//go:generate moq -out records_mock.go . RecordStorage

// RecordStorage defines the local record store used by the reconciler and
// the record write path. Every method is atomic on its own; callers compose
// them without an enclosing transaction, so each must be safe to repeat.
type RecordStorage interface {
	// ListByUser returns all local records of the user ordered by LocalID
	ListByUser(ctx context.Context, userID int64) ([]*models.Record, error)

	// GetByLocalID returns a single record
	// Returns ErrRecordNotFound if record doesn't exist
	GetByLocalID(ctx context.Context, localID int64) (*models.Record, error)

	// CreateLocal inserts a new pending record (RemoteID == nil) and
	// fills LocalID, ClientRef (if empty), CreatedAt and UpdatedAt
	CreateLocal(ctx context.Context, rec *models.Record) error

	// UpdateFields replaces user fields of a record (explicit edit)
	// Returns ErrRecordNotFound if record doesn't exist
	UpdateFields(ctx context.Context, localID int64, fields models.Fields) error

	// UpsertFromRemote inserts or updates a record by (UserID, RemoteID),
	// keeping LocalID of an existing mapping, and sets SyncedAt
	UpsertFromRemote(ctx context.Context, rec *models.Record) error

	// DeleteByLocalID removes a record without leaving a tombstone
	// Deleting a missing record is not an error
	DeleteByLocalID(ctx context.Context, localID int64) error

	// DeleteLocal removes a record and, if it had a RemoteID, records a
	// tombstone in the same transaction. Returns the deleted record.
	// Returns ErrRecordNotFound if record doesn't exist
	DeleteLocal(ctx context.Context, localID int64) (*models.Record, error)

	// SetRemoteID marks a pending record as uploaded
	// Returns ErrRemoteIDConflict if another record of the user already has remoteID
	SetRemoteID(ctx context.Context, localID, remoteID int64, syncedAt time.Time) error

	// CountPending returns number of records awaiting first upload
	CountPending(ctx context.Context, userID int64) (int, error)

	// Tombstones returns the set of tombstoned remote ids of the user
	Tombstones(ctx context.Context, userID int64) (map[int64]struct{}, error)

	// AddTombstone records a deletion; repeating it is a no-op
	AddTombstone(ctx context.Context, remoteID, userID int64) error

	// RemoveTombstone drops a tombstone; removing a missing one is a no-op
	RemoveTombstone(ctx context.Context, remoteID, userID int64) error
}
