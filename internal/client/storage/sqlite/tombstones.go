package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Tombstones returns the set of tombstoned remote ids of the user
func (s *Storage) Tombstones(ctx context.Context, userID int64) (set map[int64]struct{}, err error) {
	rows, err := s.db.QueryContext(ctx, `SELECT remote_id FROM tombstones WHERE user_id = ?`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tombstones: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	set = make(map[int64]struct{})
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan tombstone: %w", err)
		}
		set[id] = struct{}{}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return set, nil
}

// AddTombstone records a deletion. Повторный вызов сохраняет исходный deleted_at.
func (s *Storage) AddTombstone(ctx context.Context, remoteID, userID int64) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		return insertTombstone(ctx, tx, remoteID, userID, s.now())
	})
}

// RemoveTombstone drops a tombstone
func (s *Storage) RemoveTombstone(ctx context.Context, remoteID, userID int64) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM tombstones WHERE remote_id = ? AND user_id = ?`,
		remoteID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to remove tombstone: %w", err)
	}
	return nil
}

func insertTombstone(ctx context.Context, tx *sql.Tx, remoteID, userID int64, at time.Time) error {
	_, err := tx.ExecContext(ctx,
		`INSERT OR IGNORE INTO tombstones (remote_id, user_id, deleted_at) VALUES (?, ?, ?)`,
		remoteID, userID, at.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert tombstone: %w", err)
	}
	return nil
}
