package records

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/medkeeper/internal/client/api"
	"github.com/iudanet/medkeeper/internal/client/connectivity"
	"github.com/iudanet/medkeeper/internal/client/storage"
	"github.com/iudanet/medkeeper/internal/client/storage/sqlite"
	clientsync "github.com/iudanet/medkeeper/internal/client/sync"
	"github.com/iudanet/medkeeper/internal/models"
	"github.com/iudanet/medkeeper/internal/validation"
)

const userID int64 = 7

func setupTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

func setupStore(t *testing.T) *sqlite.Storage {
	t.Helper()

	store, err := sqlite.New(context.Background(), filepath.Join(t.TempDir(), "local.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func ptr(v int64) *int64 { return &v }

func createOK(id int64) func(context.Context, int64, models.Fields, string) (*models.Record, error) {
	return func(ctx context.Context, userID int64, fields models.Fields, clientRef string) (*models.Record, error) {
		return &models.Record{RemoteID: ptr(id), Fields: fields, ClientRef: clientRef}, nil
	}
}

func TestService_Add(t *testing.T) {
	ctx := context.Background()

	t.Run("online uploads immediately with cleaned fields", func(t *testing.T) {
		store := setupStore(t)
		remote := &api.ClientAPIMock{CreateFunc: createOK(501)}
		svc := NewService(store, remote, connectivity.Always(true), setupTestLogger())

		res, err := svc.Add(ctx, userID, models.Fields{Name: "Aspirin", Expiry: "N/A", PhotoURI: "/sdcard/a.jpg"})
		require.NoError(t, err)
		assert.True(t, res.Pushed)
		require.NotNil(t, res.Record.RemoteID)
		assert.Equal(t, int64(501), *res.Record.RemoteID)

		require.Len(t, remote.CreateCalls(), 1)
		call := remote.CreateCalls()[0]
		assert.Equal(t, res.Record.ClientRef, call.ClientRef)
		assert.Empty(t, call.Fields.Expiry)
		assert.Empty(t, call.Fields.PhotoURI)

		stored, err := store.GetByLocalID(ctx, res.Record.LocalID)
		require.NoError(t, err)
		require.NotNil(t, stored.RemoteID)
		assert.Equal(t, "/sdcard/a.jpg", stored.PhotoURI, "local photo stays on device")
	})

	t.Run("offline stays pending", func(t *testing.T) {
		store := setupStore(t)
		remote := &api.ClientAPIMock{}
		svc := NewService(store, remote, connectivity.Always(false), setupTestLogger())

		res, err := svc.Add(ctx, userID, models.Fields{Name: "Aspirin"})
		require.NoError(t, err)
		assert.False(t, res.Pushed)
		assert.True(t, res.Record.IsPending())
		assert.Empty(t, remote.CreateCalls())

		n, err := svc.Pending(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("remote failure stays pending", func(t *testing.T) {
		store := setupStore(t)
		remote := &api.ClientAPIMock{
			CreateFunc: func(ctx context.Context, userID int64, fields models.Fields, clientRef string) (*models.Record, error) {
				return nil, &api.Error{StatusCode: 503}
			},
		}
		svc := NewService(store, remote, connectivity.Always(true), setupTestLogger())

		res, err := svc.Add(ctx, userID, models.Fields{Name: "Aspirin"})
		require.NoError(t, err)
		assert.False(t, res.Pushed)

		n, err := store.CountPending(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("empty name rejected", func(t *testing.T) {
		svc := NewService(setupStore(t), &api.ClientAPIMock{}, connectivity.Always(true), setupTestLogger())

		_, err := svc.Add(ctx, userID, models.Fields{Name: "   "})
		assert.ErrorIs(t, err, ErrNameRequired)

		_, err = svc.Add(ctx, userID, models.Fields{Name: strings.Repeat("x", validation.MaxNameLen+1)})
		assert.ErrorIs(t, err, validation.ErrTooLong)
	})
}

func TestService_Edit(t *testing.T) {
	ctx := context.Background()

	t.Run("synced record is pushed", func(t *testing.T) {
		store := setupStore(t)
		remote := &api.ClientAPIMock{
			CreateFunc: createOK(501),
			UpdateFunc: func(ctx context.Context, userID, remoteID int64, fields models.Fields) error {
				return nil
			},
		}
		svc := NewService(store, remote, connectivity.Always(true), setupTestLogger())

		added, err := svc.Add(ctx, userID, models.Fields{Name: "Aspirin"})
		require.NoError(t, err)

		res, err := svc.Edit(ctx, added.Record.LocalID, models.Fields{Name: "Aspirin", Dose: "100 mg", Expiry: "2027-01"})
		require.NoError(t, err)
		assert.True(t, res.Pushed)
		assert.Equal(t, "100 mg", res.Record.Dose)

		require.Len(t, remote.UpdateCalls(), 1)
		assert.Equal(t, int64(501), remote.UpdateCalls()[0].RemoteID)
		assert.Equal(t, userID, remote.UpdateCalls()[0].UserID)
		assert.Equal(t, "2027-01", remote.UpdateCalls()[0].Fields.Expiry)
	})

	t.Run("pending record is not pushed", func(t *testing.T) {
		store := setupStore(t)
		remote := &api.ClientAPIMock{}
		svc := NewService(store, remote, connectivity.Always(false), setupTestLogger())

		added, err := svc.Add(ctx, userID, models.Fields{Name: "Aspirin"})
		require.NoError(t, err)

		online := NewService(store, remote, connectivity.Always(true), setupTestLogger())
		res, err := online.Edit(ctx, added.Record.LocalID, models.Fields{Name: "Aspirin Forte"})
		require.NoError(t, err)
		assert.False(t, res.Pushed)
		assert.Empty(t, remote.UpdateCalls())
		assert.Equal(t, "Aspirin Forte", res.Record.Name)
	})

	t.Run("push failure is not an error", func(t *testing.T) {
		store := setupStore(t)
		remote := &api.ClientAPIMock{
			CreateFunc: createOK(501),
			UpdateFunc: func(ctx context.Context, userID, remoteID int64, fields models.Fields) error {
				return &api.Error{StatusCode: 500}
			},
		}
		svc := NewService(store, remote, connectivity.Always(true), setupTestLogger())

		added, err := svc.Add(ctx, userID, models.Fields{Name: "Aspirin"})
		require.NoError(t, err)

		res, err := svc.Edit(ctx, added.Record.LocalID, models.Fields{Name: "Aspirin 2"})
		require.NoError(t, err)
		assert.False(t, res.Pushed)

		stored, err := store.GetByLocalID(ctx, added.Record.LocalID)
		require.NoError(t, err)
		assert.Equal(t, "Aspirin 2", stored.Name)
	})

	t.Run("missing record", func(t *testing.T) {
		svc := NewService(setupStore(t), &api.ClientAPIMock{}, connectivity.Always(true), setupTestLogger())

		_, err := svc.Edit(ctx, 42, models.Fields{Name: "x"})
		assert.ErrorIs(t, err, storage.ErrRecordNotFound)
	})
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		deleteErr     error
		name          string
		online        bool
		wantPushed    bool
		wantTombstone bool
	}{
		{name: "online delete resolves tombstone", online: true, wantPushed: true},
		{name: "not found resolves tombstone", online: true, deleteErr: &api.Error{StatusCode: 404}, wantPushed: true},
		{name: "server failure keeps tombstone", online: true, deleteErr: &api.Error{StatusCode: 502}, wantTombstone: true},
		{name: "offline keeps tombstone", online: false, wantTombstone: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := setupStore(t)
			rec := &models.Record{RemoteID: ptr(501), UserID: userID, Fields: models.Fields{Name: "Aspirin"}}
			require.NoError(t, store.UpsertFromRemote(ctx, rec))

			remote := &api.ClientAPIMock{
				DeleteFunc: func(ctx context.Context, userID, remoteID int64) error {
					return tt.deleteErr
				},
			}
			svc := NewService(store, remote, connectivity.Always(tt.online), setupTestLogger())

			res, err := svc.Delete(ctx, rec.LocalID)
			require.NoError(t, err)
			assert.Equal(t, tt.wantPushed, res.Pushed)

			_, err = store.GetByLocalID(ctx, rec.LocalID)
			assert.ErrorIs(t, err, storage.ErrRecordNotFound)

			tombs, err := store.Tombstones(ctx, userID)
			require.NoError(t, err)
			_, has := tombs[501]
			assert.Equal(t, tt.wantTombstone, has)
		})
	}

	t.Run("pending record needs no remote call", func(t *testing.T) {
		store := setupStore(t)
		remote := &api.ClientAPIMock{}
		svc := NewService(store, remote, connectivity.Always(true), setupTestLogger())

		rec := &models.Record{UserID: userID, Fields: models.Fields{Name: "Aspirin"}}
		require.NoError(t, store.CreateLocal(ctx, rec))

		res, err := svc.Delete(ctx, rec.LocalID)
		require.NoError(t, err)
		assert.True(t, res.Pushed)
		assert.Empty(t, remote.DeleteCalls())
	})

	t.Run("missing record", func(t *testing.T) {
		svc := NewService(setupStore(t), &api.ClientAPIMock{}, connectivity.Always(true), setupTestLogger())

		_, err := svc.Delete(ctx, 42)
		assert.ErrorIs(t, err, storage.ErrRecordNotFound)
	})
}

func TestService_ReadErrorsAreWrapped(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")

	store := &storage.RecordStorageMock{
		ListByUserFunc: func(ctx context.Context, userID int64) ([]*models.Record, error) {
			return nil, boom
		},
		CountPendingFunc: func(ctx context.Context, userID int64) (int, error) {
			return 0, boom
		},
		GetByLocalIDFunc: func(ctx context.Context, localID int64) (*models.Record, error) {
			return nil, boom
		},
	}
	svc := NewService(store, &api.ClientAPIMock{}, connectivity.Always(true), setupTestLogger())

	_, err := svc.List(ctx, userID)
	assert.ErrorIs(t, err, boom)

	_, err = svc.Pending(ctx, userID)
	assert.ErrorIs(t, err, boom)

	_, err = svc.Get(ctx, 1)
	assert.ErrorIs(t, err, boom)
}

// recordingLocker запоминает, какой пользователь держит блокировку
type recordingLocker struct {
	err      error
	held     bool
	users    []int64
	releases int
}

func (l *recordingLocker) Lock(ctx context.Context, userID int64) (func(), error) {
	if l.err != nil {
		return nil, l.err
	}
	l.users = append(l.users, userID)
	l.held = true
	return func() {
		l.held = false
		l.releases++
	}, nil
}

func TestService_MutationsHoldUserLock(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)
	locker := &recordingLocker{}

	remote := &api.ClientAPIMock{
		CreateFunc: func(ctx context.Context, uid int64, fields models.Fields, clientRef string) (*models.Record, error) {
			assert.True(t, locker.held, "create must run under the user lock")
			return &models.Record{RemoteID: ptr(501), Fields: fields, ClientRef: clientRef}, nil
		},
		UpdateFunc: func(ctx context.Context, uid, remoteID int64, fields models.Fields) error {
			assert.True(t, locker.held, "update must run under the user lock")
			return nil
		},
		DeleteFunc: func(ctx context.Context, uid, remoteID int64) error {
			assert.True(t, locker.held, "delete must run under the user lock")
			return nil
		},
	}
	svc := NewService(store, remote, connectivity.Always(true), setupTestLogger(), WithLocker(locker))

	res, err := svc.Add(ctx, userID, models.Fields{Name: "Aspirin"})
	require.NoError(t, err)
	require.True(t, res.Pushed)

	_, err = svc.Edit(ctx, res.Record.LocalID, models.Fields{Name: "Aspirin 2"})
	require.NoError(t, err)

	_, err = svc.Delete(ctx, res.Record.LocalID)
	require.NoError(t, err)

	assert.Equal(t, []int64{userID, userID, userID}, locker.users)
	assert.Equal(t, 3, locker.releases)
	assert.False(t, locker.held)
}

func TestService_LockFailureLeavesStoreUntouched(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)
	locker := &recordingLocker{err: context.DeadlineExceeded}
	svc := NewService(store, &api.ClientAPIMock{}, connectivity.Always(true), setupTestLogger(), WithLocker(locker))

	_, err := svc.Add(ctx, userID, models.Fields{Name: "Aspirin"})
	require.ErrorIs(t, err, context.DeadlineExceeded)

	recs, err := store.ListByUser(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, recs)
}

// Пока идет синхронизация, запись не создается на сервере
func TestService_WaitsForRunningSync(t *testing.T) {
	store := setupStore(t)
	remote := &api.ClientAPIMock{CreateFunc: createOK(501)}
	reconciler := clientsync.NewReconciler(store, remote, connectivity.Always(true), setupTestLogger())
	svc := NewService(store, remote, connectivity.Always(true), setupTestLogger(), WithLocker(reconciler))

	release, err := reconciler.Lock(context.Background(), userID)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	_, err = svc.Add(ctx, userID, models.Fields{Name: "Aspirin"})
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Empty(t, remote.CreateCalls())

	release()

	res, err := svc.Add(context.Background(), userID, models.Fields{Name: "Aspirin"})
	require.NoError(t, err)
	assert.True(t, res.Pushed)
}
