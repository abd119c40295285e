package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/medkeeper/internal/client/storage"
	"github.com/iudanet/medkeeper/internal/models"
)

const recordColumns = `
	local_id, remote_id, user_id, client_ref,
	name, dose, form, expiry, photo_uri,
	created_at, updated_at, synced_at`

// rowScanner общий интерфейс для *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*models.Record, error) {
	rec := &models.Record{}
	var remoteID, syncedAt sql.NullInt64
	var createdAt, updatedAt int64

	err := row.Scan(
		&rec.LocalID,
		&remoteID,
		&rec.UserID,
		&rec.ClientRef,
		&rec.Name,
		&rec.Dose,
		&rec.Form,
		&rec.Expiry,
		&rec.PhotoURI,
		&createdAt,
		&updatedAt,
		&syncedAt,
	)
	if err != nil {
		return nil, err
	}

	rec.RemoteID = nullInt64(remoteID)
	rec.SyncedAt = nullUnixToTime(syncedAt)
	rec.CreatedAt = unixToTime(createdAt)
	rec.UpdatedAt = unixToTime(updatedAt)

	return rec, nil
}

// ListByUser returns all local records of the user ordered by LocalID
func (s *Storage) ListByUser(ctx context.Context, userID int64) (records []*models.Record, err error) {
	query := `SELECT ` + recordColumns + ` FROM records WHERE user_id = ? ORDER BY local_id`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	records = make([]*models.Record, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return records, nil
}

// GetByLocalID returns a single record
func (s *Storage) GetByLocalID(ctx context.Context, localID int64) (*models.Record, error) {
	query := `SELECT ` + recordColumns + ` FROM records WHERE local_id = ?`

	rec, err := scanRecord(s.db.QueryRowContext(ctx, query, localID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get record: %w", err)
	}

	return rec, nil
}

// CreateLocal inserts a new pending record
func (s *Storage) CreateLocal(ctx context.Context, rec *models.Record) error {
	if rec.ClientRef == "" {
		rec.ClientRef = uuid.NewString()
	}
	now := s.now()

	query := `
		INSERT INTO records (
			remote_id, user_id, client_ref,
			name, dose, form, expiry, photo_uri,
			created_at, updated_at, synced_at
		) VALUES (NULL, ?, ?, ?, ?, ?, ?, ?, ?, ?, NULL)
	`

	result, err := s.db.ExecContext(ctx, query,
		rec.UserID,
		rec.ClientRef,
		rec.Name,
		rec.Dose,
		rec.Form,
		rec.Expiry,
		rec.PhotoURI,
		now.Unix(),
		now.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert record: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted id: %w", err)
	}

	rec.LocalID = id
	rec.RemoteID = nil
	rec.SyncedAt = nil
	rec.CreatedAt = unixToTime(now.Unix())
	rec.UpdatedAt = rec.CreatedAt

	return nil
}

// UpdateFields replaces user fields of a record
func (s *Storage) UpdateFields(ctx context.Context, localID int64, fields models.Fields) error {
	query := `
		UPDATE records
		SET name = ?, dose = ?, form = ?, expiry = ?, photo_uri = ?, updated_at = ?
		WHERE local_id = ?
	`

	result, err := s.db.ExecContext(ctx, query,
		fields.Name,
		fields.Dose,
		fields.Form,
		fields.Expiry,
		fields.PhotoURI,
		s.now().Unix(),
		localID,
	)
	if err != nil {
		return fmt.Errorf("failed to update record: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrRecordNotFound
	}

	return nil
}

// UpsertFromRemote inserts or updates a record by (UserID, RemoteID).
// Существующее сопоставление сохраняет свой LocalID и ClientRef.
func (s *Storage) UpsertFromRemote(ctx context.Context, rec *models.Record) error {
	if rec.RemoteID == nil {
		return fmt.Errorf("upsert from remote: record has no remote id")
	}
	now := s.now()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		var localID int64
		var clientRef string
		err := tx.QueryRowContext(ctx,
			`SELECT local_id, client_ref FROM records WHERE user_id = ? AND remote_id = ?`,
			rec.UserID, *rec.RemoteID,
		).Scan(&localID, &clientRef)

		switch {
		case err == nil:
			_, err = tx.ExecContext(ctx, `
				UPDATE records
				SET name = ?, dose = ?, form = ?, expiry = ?, photo_uri = ?,
				    updated_at = ?, synced_at = ?
				WHERE local_id = ?
			`,
				rec.Name,
				rec.Dose,
				rec.Form,
				rec.Expiry,
				rec.PhotoURI,
				now.Unix(),
				now.Unix(),
				localID,
			)
			if err != nil {
				return fmt.Errorf("failed to update record: %w", err)
			}

			rec.LocalID = localID
			rec.ClientRef = clientRef

		case errors.Is(err, sql.ErrNoRows):
			ref, err := freeClientRef(ctx, tx, rec.ClientRef)
			if err != nil {
				return err
			}

			result, err := tx.ExecContext(ctx, `
				INSERT INTO records (
					remote_id, user_id, client_ref,
					name, dose, form, expiry, photo_uri,
					created_at, updated_at, synced_at
				) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			`,
				*rec.RemoteID,
				rec.UserID,
				ref,
				rec.Name,
				rec.Dose,
				rec.Form,
				rec.Expiry,
				rec.PhotoURI,
				now.Unix(),
				now.Unix(),
				now.Unix(),
			)
			if err != nil {
				return fmt.Errorf("failed to insert record: %w", err)
			}

			id, err := result.LastInsertId()
			if err != nil {
				return fmt.Errorf("failed to get inserted id: %w", err)
			}

			rec.LocalID = id
			rec.ClientRef = ref
			rec.CreatedAt = unixToTime(now.Unix())

		default:
			return fmt.Errorf("failed to look up remote mapping: %w", err)
		}

		synced := unixToTime(now.Unix())
		rec.SyncedAt = &synced
		rec.UpdatedAt = synced
		return nil
	})
}

// freeClientRef возвращает ref, если он ещё не занят, иначе новый UUID
func freeClientRef(ctx context.Context, tx *sql.Tx, ref string) (string, error) {
	if ref == "" {
		return uuid.NewString(), nil
	}

	var n int
	err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM records WHERE client_ref = ?`, ref).Scan(&n)
	if err != nil {
		return "", fmt.Errorf("failed to check client ref: %w", err)
	}
	if n > 0 {
		return uuid.NewString(), nil
	}

	return ref, nil
}

// DeleteByLocalID removes a record without leaving a tombstone
func (s *Storage) DeleteByLocalID(ctx context.Context, localID int64) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM records WHERE local_id = ?`, localID); err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}
	return nil
}

// DeleteLocal removes a record and tombstones its remote id in one transaction
func (s *Storage) DeleteLocal(ctx context.Context, localID int64) (*models.Record, error) {
	var deleted *models.Record
	now := s.now()

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		query := `SELECT ` + recordColumns + ` FROM records WHERE local_id = ?`
		rec, err := scanRecord(tx.QueryRowContext(ctx, query, localID))
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return storage.ErrRecordNotFound
			}
			return fmt.Errorf("failed to get record: %w", err)
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM records WHERE local_id = ?`, localID); err != nil {
			return fmt.Errorf("failed to delete record: %w", err)
		}

		if rec.RemoteID != nil {
			if err := insertTombstone(ctx, tx, *rec.RemoteID, rec.UserID, now); err != nil {
				return err
			}
		}

		deleted = rec
		return nil
	})
	if err != nil {
		return nil, err
	}

	return deleted, nil
}

// SetRemoteID marks a pending record as uploaded
func (s *Storage) SetRemoteID(ctx context.Context, localID, remoteID int64, syncedAt time.Time) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		var userID int64
		err := tx.QueryRowContext(ctx, `SELECT user_id FROM records WHERE local_id = ?`, localID).Scan(&userID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return storage.ErrRecordNotFound
			}
			return fmt.Errorf("failed to get record: %w", err)
		}

		var owner int64
		err = tx.QueryRowContext(ctx,
			`SELECT local_id FROM records WHERE user_id = ? AND remote_id = ?`,
			userID, remoteID,
		).Scan(&owner)
		switch {
		case err == nil && owner != localID:
			return storage.ErrRemoteIDConflict
		case err != nil && !errors.Is(err, sql.ErrNoRows):
			return fmt.Errorf("failed to check remote mapping: %w", err)
		}

		_, err = tx.ExecContext(ctx,
			`UPDATE records SET remote_id = ?, synced_at = ? WHERE local_id = ?`,
			remoteID, syncedAt.Unix(), localID,
		)
		if err != nil {
			return fmt.Errorf("failed to set remote id: %w", err)
		}

		return nil
	})
}

// CountPending returns number of records awaiting first upload
func (s *Storage) CountPending(ctx context.Context, userID int64) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM records WHERE user_id = ? AND remote_id IS NULL`,
		userID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending records: %w", err)
	}
	return n, nil
}
