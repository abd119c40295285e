package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/medkeeper/internal/server/storage"
)

const recordColumns = `id, user_id, client_ref, name, dose, form, expiry, photo_uri, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*storage.Record, error) {
	var (
		rec       storage.Record
		clientRef sql.NullString
		createdAt int64
		updatedAt int64
	)
	err := row.Scan(
		&rec.ID,
		&rec.UserID,
		&clientRef,
		&rec.Name,
		&rec.Dose,
		&rec.Form,
		&rec.Expiry,
		&rec.PhotoURI,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}
	rec.ClientRef = clientRef.String
	rec.CreatedAt = time.Unix(createdAt, 0)
	rec.UpdatedAt = time.Unix(updatedAt, 0)
	return &rec, nil
}

// ListRecords returns all records of the user ordered by id
func (s *Storage) ListRecords(ctx context.Context, userID int64) ([]*storage.Record, error) {
	query := `SELECT ` + recordColumns + ` FROM records WHERE user_id = ? ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer func() { _ = rows.Close() }()

	records := make([]*storage.Record, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating records: %w", err)
	}

	return records, nil
}

// CreateRecord inserts rec, deduplicating by (user_id, client_ref)
func (s *Storage) CreateRecord(ctx context.Context, rec *storage.Record) (bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if rec.ClientRef != "" {
		query := `SELECT ` + recordColumns + ` FROM records WHERE user_id = ? AND client_ref = ?`
		existing, err := scanRecord(tx.QueryRowContext(ctx, query, rec.UserID, rec.ClientRef))
		switch {
		case err == nil:
			*rec = *existing
			return false, nil
		case !errors.Is(err, sql.ErrNoRows):
			return false, fmt.Errorf("failed to check client ref: %w", err)
		}
	}

	now := s.now()
	var clientRef sql.NullString
	if rec.ClientRef != "" {
		clientRef = sql.NullString{String: rec.ClientRef, Valid: true}
	}

	res, err := tx.ExecContext(ctx, `
		INSERT INTO records (user_id, client_ref, name, dose, form, expiry, photo_uri, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		rec.UserID,
		clientRef,
		rec.Name,
		rec.Dose,
		rec.Form,
		rec.Expiry,
		rec.PhotoURI,
		now.Unix(),
		now.Unix(),
	)
	if err != nil {
		return false, fmt.Errorf("failed to insert record: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return false, fmt.Errorf("failed to get record id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit transaction: %w", err)
	}

	rec.ID = id
	rec.CreatedAt = time.Unix(now.Unix(), 0)
	rec.UpdatedAt = rec.CreatedAt
	return true, nil
}

// GetRecord returns a record of the user
func (s *Storage) GetRecord(ctx context.Context, userID, id int64) (*storage.Record, error) {
	return getRecord(ctx, s.db, userID, id)
}

type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func getRecord(ctx context.Context, q queryRower, userID, id int64) (*storage.Record, error) {
	query := `SELECT ` + recordColumns + ` FROM records WHERE id = ? AND user_id = ?`

	rec, err := scanRecord(q.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get record: %w", err)
	}
	return rec, nil
}

// UpdateRecord applies non-nil patch fields
func (s *Storage) UpdateRecord(ctx context.Context, userID, id int64, patch storage.RecordPatch) (*storage.Record, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	rec, err := getRecord(ctx, tx, userID, id)
	if err != nil {
		return nil, err
	}

	rec.Fields = patch.Apply(rec.Fields)
	rec.UpdatedAt = time.Unix(s.now().Unix(), 0)

	_, err = tx.ExecContext(ctx, `
		UPDATE records
		SET name = ?, dose = ?, form = ?, expiry = ?, photo_uri = ?, updated_at = ?
		WHERE id = ? AND user_id = ?
	`,
		rec.Name,
		rec.Dose,
		rec.Form,
		rec.Expiry,
		rec.PhotoURI,
		rec.UpdatedAt.Unix(),
		id,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update record: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return rec, nil
}

// DeleteRecord removes the record
func (s *Storage) DeleteRecord(ctx context.Context, userID, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM records WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return storage.ErrRecordNotFound
	}

	return nil
}
