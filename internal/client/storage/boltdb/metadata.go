package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"go.etcd.io/bbolt"

	"github.com/iudanet/medkeeper/internal/client/storage"
)

const (
	keyDeviceID = "device_id"
	keyLastSync = "last_sync"
)

// DeviceID returns the identifier of this installation, generating it on first use
func (s *Storage) DeviceID(ctx context.Context) (string, error) {
	var id string

	err := s.update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		if v := bucket.Get([]byte(keyDeviceID)); v != nil {
			id = string(v)
			return nil
		}

		id = uuid.NewString()
		if err := bucket.Put([]byte(keyDeviceID), []byte(id)); err != nil {
			return fmt.Errorf("failed to save device id: %w", err)
		}

		return nil
	})

	if err != nil {
		return "", err
	}

	return id, nil
}

// SaveLastSync stores the summary of the most recent sync run
func (s *Storage) SaveLastSync(ctx context.Context, summary *storage.SyncSummary) error {
	return s.update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		data, err := json.Marshal(summary)
		if err != nil {
			return fmt.Errorf("failed to marshal sync summary: %w", err)
		}

		if err := bucket.Put([]byte(keyLastSync), data); err != nil {
			return fmt.Errorf("failed to save last sync: %w", err)
		}

		return nil
	})
}

// GetLastSync retrieves the summary of the most recent sync run
// Returns nil, nil if no sync has been performed yet
func (s *Storage) GetLastSync(ctx context.Context) (*storage.SyncSummary, error) {
	var summary *storage.SyncSummary

	err := s.view(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		data := bucket.Get([]byte(keyLastSync))
		if data == nil {
			// синхронизации ещё не было
			return nil
		}

		summary = &storage.SyncSummary{}
		if err := json.Unmarshal(data, summary); err != nil {
			return fmt.Errorf("failed to unmarshal sync summary: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to get last sync: %w", err)
	}

	return summary, nil
}
