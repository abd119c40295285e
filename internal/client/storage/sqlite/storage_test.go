package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/medkeeper/internal/client/storage"
	"github.com/iudanet/medkeeper/internal/models"
)

func setupTestStorage(t *testing.T) *Storage {
	t.Helper()

	s, err := New(context.Background(), filepath.Join(t.TempDir(), "local.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func int64Ptr(v int64) *int64 { return &v }

func remoteRecord(userID, remoteID int64, name string) *models.Record {
	return &models.Record{
		UserID:   userID,
		RemoteID: int64Ptr(remoteID),
		Fields:   models.Fields{Name: name},
	}
}

func TestNew_ReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "local.db")

	s, err := New(ctx, path)
	require.NoError(t, err)
	require.NoError(t, s.CreateLocal(ctx, &models.Record{UserID: 7, Fields: models.Fields{Name: "Aspirin"}}))
	require.NoError(t, s.Close())

	// повторное открытие не должно заново применять миграции
	s, err = New(ctx, path)
	require.NoError(t, err)
	defer s.Close()

	records, err := s.ListByUser(ctx, 7)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Aspirin", records[0].Name)
}

func TestNew_InMemory(t *testing.T) {
	s, err := New(context.Background(), ":memory:")
	require.NoError(t, err)
	defer s.Close()

	n, err := s.CountPending(context.Background(), 1)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestStorage_CreateLocal(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	rec := &models.Record{UserID: 7, Fields: models.Fields{Name: "Aspirin", Expiry: "Not visible"}}
	require.NoError(t, s.CreateLocal(ctx, rec))

	assert.NotZero(t, rec.LocalID)
	assert.NotEmpty(t, rec.ClientRef)
	assert.True(t, rec.IsPending())

	got, err := s.GetByLocalID(ctx, rec.LocalID)
	require.NoError(t, err)
	assert.Equal(t, rec.ClientRef, got.ClientRef)
	assert.Equal(t, "Not visible", got.Expiry, "local store keeps raw values")
	assert.Nil(t, got.RemoteID)
	assert.Nil(t, got.SyncedAt)

	t.Run("explicit client ref is kept", func(t *testing.T) {
		rec := &models.Record{UserID: 7, ClientRef: "ref-1", Fields: models.Fields{Name: "Ibuprofen"}}
		require.NoError(t, s.CreateLocal(ctx, rec))
		assert.Equal(t, "ref-1", rec.ClientRef)
	})

	t.Run("duplicate client ref fails", func(t *testing.T) {
		rec := &models.Record{UserID: 7, ClientRef: "ref-1", Fields: models.Fields{Name: "Ibuprofen"}}
		assert.Error(t, s.CreateLocal(ctx, rec))
	})
}

func TestStorage_GetByLocalID_NotFound(t *testing.T) {
	s := setupTestStorage(t)

	_, err := s.GetByLocalID(context.Background(), 42)
	assert.ErrorIs(t, err, storage.ErrRecordNotFound)
}

func TestStorage_ListByUser(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	for _, name := range []string{"A", "B", "C"} {
		require.NoError(t, s.CreateLocal(ctx, &models.Record{UserID: 7, Fields: models.Fields{Name: name}}))
	}
	require.NoError(t, s.CreateLocal(ctx, &models.Record{UserID: 8, Fields: models.Fields{Name: "other"}}))

	records, err := s.ListByUser(ctx, 7)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "A", records[0].Name)
	assert.Equal(t, "C", records[2].Name)

	empty, err := s.ListByUser(ctx, 99)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestStorage_UpdateFields(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	rec := &models.Record{UserID: 7, Fields: models.Fields{Name: "Aspirin"}}
	require.NoError(t, s.CreateLocal(ctx, rec))

	require.NoError(t, s.UpdateFields(ctx, rec.LocalID, models.Fields{Name: "Aspirin", Dose: "500 mg"}))

	got, err := s.GetByLocalID(ctx, rec.LocalID)
	require.NoError(t, err)
	assert.Equal(t, "500 mg", got.Dose)

	err = s.UpdateFields(ctx, 999, models.Fields{Name: "x"})
	assert.ErrorIs(t, err, storage.ErrRecordNotFound)
}

func TestStorage_UpsertFromRemote(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	t.Run("inserts unknown remote id", func(t *testing.T) {
		rec := remoteRecord(7, 501, "Aspirin")
		require.NoError(t, s.UpsertFromRemote(ctx, rec))

		assert.NotZero(t, rec.LocalID)
		assert.NotEmpty(t, rec.ClientRef)
		require.NotNil(t, rec.SyncedAt)

		got, err := s.GetByLocalID(ctx, rec.LocalID)
		require.NoError(t, err)
		require.NotNil(t, got.RemoteID)
		assert.Equal(t, int64(501), *got.RemoteID)
		assert.NotNil(t, got.SyncedAt)
	})

	t.Run("updates existing mapping preserving local id", func(t *testing.T) {
		first := remoteRecord(7, 502, "Ibuprofen")
		require.NoError(t, s.UpsertFromRemote(ctx, first))

		second := remoteRecord(7, 502, "Ibuprofen Forte")
		require.NoError(t, s.UpsertFromRemote(ctx, second))

		assert.Equal(t, first.LocalID, second.LocalID)
		assert.Equal(t, first.ClientRef, second.ClientRef)

		got, err := s.GetByLocalID(ctx, first.LocalID)
		require.NoError(t, err)
		assert.Equal(t, "Ibuprofen Forte", got.Name)
	})

	t.Run("same remote id of another user is a separate record", func(t *testing.T) {
		rec := remoteRecord(8, 501, "Paracetamol")
		require.NoError(t, s.UpsertFromRemote(ctx, rec))

		records, err := s.ListByUser(ctx, 8)
		require.NoError(t, err)
		assert.Len(t, records, 1)
	})

	t.Run("taken client ref is replaced", func(t *testing.T) {
		local := &models.Record{UserID: 7, ClientRef: "shared", Fields: models.Fields{Name: "Local"}}
		require.NoError(t, s.CreateLocal(ctx, local))

		rec := remoteRecord(7, 503, "Remote")
		rec.ClientRef = "shared"
		require.NoError(t, s.UpsertFromRemote(ctx, rec))
		assert.NotEqual(t, "shared", rec.ClientRef)
	})

	t.Run("record without remote id is rejected", func(t *testing.T) {
		err := s.UpsertFromRemote(ctx, &models.Record{UserID: 7, Fields: models.Fields{Name: "x"}})
		assert.Error(t, err)
	})
}

func TestStorage_SetRemoteID(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	rec := &models.Record{UserID: 7, Fields: models.Fields{Name: "Aspirin"}}
	require.NoError(t, s.CreateLocal(ctx, rec))

	syncedAt := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, s.SetRemoteID(ctx, rec.LocalID, 501, syncedAt))

	got, err := s.GetByLocalID(ctx, rec.LocalID)
	require.NoError(t, err)
	require.NotNil(t, got.RemoteID)
	assert.Equal(t, int64(501), *got.RemoteID)
	require.NotNil(t, got.SyncedAt)
	assert.Equal(t, syncedAt.Unix(), got.SyncedAt.Unix())

	pending, err := s.CountPending(ctx, 7)
	require.NoError(t, err)
	assert.Zero(t, pending)

	t.Run("repeat is idempotent", func(t *testing.T) {
		assert.NoError(t, s.SetRemoteID(ctx, rec.LocalID, 501, syncedAt))
	})

	t.Run("remote id owned by another record", func(t *testing.T) {
		other := &models.Record{UserID: 7, Fields: models.Fields{Name: "Ibuprofen"}}
		require.NoError(t, s.CreateLocal(ctx, other))

		err := s.SetRemoteID(ctx, other.LocalID, 501, syncedAt)
		assert.ErrorIs(t, err, storage.ErrRemoteIDConflict)
	})

	t.Run("missing record", func(t *testing.T) {
		err := s.SetRemoteID(ctx, 999, 777, syncedAt)
		assert.ErrorIs(t, err, storage.ErrRecordNotFound)
	})
}

func TestStorage_DeleteLocal(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	t.Run("synced record leaves a tombstone", func(t *testing.T) {
		rec := remoteRecord(7, 501, "Aspirin")
		require.NoError(t, s.UpsertFromRemote(ctx, rec))

		deleted, err := s.DeleteLocal(ctx, rec.LocalID)
		require.NoError(t, err)
		assert.Equal(t, "Aspirin", deleted.Name)

		_, err = s.GetByLocalID(ctx, rec.LocalID)
		assert.ErrorIs(t, err, storage.ErrRecordNotFound)

		tombs, err := s.Tombstones(ctx, 7)
		require.NoError(t, err)
		assert.Contains(t, tombs, int64(501))
	})

	t.Run("pending record leaves no tombstone", func(t *testing.T) {
		rec := &models.Record{UserID: 8, Fields: models.Fields{Name: "Ibuprofen"}}
		require.NoError(t, s.CreateLocal(ctx, rec))

		_, err := s.DeleteLocal(ctx, rec.LocalID)
		require.NoError(t, err)

		tombs, err := s.Tombstones(ctx, 8)
		require.NoError(t, err)
		assert.Empty(t, tombs)
	})

	t.Run("missing record", func(t *testing.T) {
		_, err := s.DeleteLocal(ctx, 999)
		assert.ErrorIs(t, err, storage.ErrRecordNotFound)
	})
}

func TestStorage_DeleteByLocalID(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	rec := remoteRecord(7, 501, "Aspirin")
	require.NoError(t, s.UpsertFromRemote(ctx, rec))

	require.NoError(t, s.DeleteByLocalID(ctx, rec.LocalID))
	// повторное удаление не ошибка
	require.NoError(t, s.DeleteByLocalID(ctx, rec.LocalID))

	tombs, err := s.Tombstones(ctx, 7)
	require.NoError(t, err)
	assert.Empty(t, tombs)
}

func TestStorage_Tombstones(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	require.NoError(t, s.AddTombstone(ctx, 501, 7))
	require.NoError(t, s.AddTombstone(ctx, 501, 7))
	require.NoError(t, s.AddTombstone(ctx, 502, 7))
	require.NoError(t, s.AddTombstone(ctx, 501, 8))

	tombs, err := s.Tombstones(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, map[int64]struct{}{501: {}, 502: {}}, tombs)

	require.NoError(t, s.RemoveTombstone(ctx, 501, 7))
	require.NoError(t, s.RemoveTombstone(ctx, 501, 7))

	tombs, err = s.Tombstones(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, map[int64]struct{}{502: {}}, tombs)

	other, err := s.Tombstones(ctx, 8)
	require.NoError(t, err)
	assert.Contains(t, other, int64(501))
}
