package storage

import (
	"context"
	"time"

	"github.com/iudanet/medkeeper/internal/models"
)

//go:generate moq -out records_mock.go . RecordStorage

// RecordStorage defines interface for the service side of medicine records.
// Every operation is scoped by the owner: a record of another user
// behaves exactly like a missing one.
type RecordStorage interface {
	// ListRecords returns all records of the user ordered by id
	// Returns empty slice if no records found
	ListRecords(ctx context.Context, userID int64) ([]*Record, error)

	// CreateRecord inserts rec and fills ID and timestamps.
	// If rec.ClientRef is set and the user already has a record with it,
	// nothing is inserted, rec is replaced by the existing record and
	// created is false.
	CreateRecord(ctx context.Context, rec *Record) (created bool, err error)

	// GetRecord returns ErrRecordNotFound for a missing or foreign record
	GetRecord(ctx context.Context, userID, id int64) (*Record, error)

	// UpdateRecord applies non-nil patch fields
	// Returns ErrRecordNotFound for a missing or foreign record
	UpdateRecord(ctx context.Context, userID, id int64, patch RecordPatch) (*Record, error)

	// DeleteRecord removes the record
	// Returns ErrRecordNotFound for a missing or foreign record
	DeleteRecord(ctx context.Context, userID, id int64) error

	// Ping checks the database connection
	Ping(ctx context.Context) error
}

// Record is a medicine record as stored by the service
type Record struct {
	CreatedAt time.Time
	UpdatedAt time.Time
	ClientRef string
	models.Fields
	ID     int64
	UserID int64
}

// RecordPatch частичное обновление; nil означает "не менять"
type RecordPatch struct {
	Name     *string
	Dose     *string
	Form     *string
	Expiry   *string
	PhotoURI *string
}

// Apply returns f with the patch applied
func (p RecordPatch) Apply(f models.Fields) models.Fields {
	if p.Name != nil {
		f.Name = *p.Name
	}
	if p.Dose != nil {
		f.Dose = *p.Dose
	}
	if p.Form != nil {
		f.Form = *p.Form
	}
	if p.Expiry != nil {
		f.Expiry = *p.Expiry
	}
	if p.PhotoURI != nil {
		f.PhotoURI = *p.PhotoURI
	}
	return f
}

// Empty reports whether the patch changes nothing
func (p RecordPatch) Empty() bool {
	return p.Name == nil && p.Dose == nil && p.Form == nil && p.Expiry == nil && p.PhotoURI == nil
}
