// Package sync сводит локальное хранилище записей с сервисом записей.
//
// Синхронизация состоит из двух проходов: ServerToLocal (download) и
// LocalToServer (upload). Ни один проход не оборачивается в общую
// транзакцию: каждая операция хранилища атомарна сама по себе и безопасна
// при повторе, поэтому прерванный проход сходится при следующем запуске.
package sync

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/iudanet/medkeeper/internal/client/api"
	"github.com/iudanet/medkeeper/internal/client/connectivity"
	"github.com/iudanet/medkeeper/internal/client/storage"
	"github.com/iudanet/medkeeper/internal/models"
)

const (
	passDownload = "download"
	passUpload   = "upload"
)

// Reconciler runs the reconciliation passes for a user.
// It keeps no state between runs apart from the per-user locks.
type Reconciler struct {
	store  storage.RecordStorage
	remote api.ClientAPI
	probe  connectivity.Probe
	logger *slog.Logger
	locks  *userLocks
	now    func() time.Time
}

// NewReconciler creates a new reconciler
func NewReconciler(store storage.RecordStorage, remote api.ClientAPI, probe connectivity.Probe, logger *slog.Logger) *Reconciler {
	return &Reconciler{
		store:  store,
		remote: remote,
		probe:  probe,
		logger: logger,
		locks:  newUserLocks(),
		now:    time.Now,
	}
}

// Lock holds the per-user lock used by the passes. The record write path
// takes it so that a push and its SetRemoteID never interleave with a pass.
func (r *Reconciler) Lock(ctx context.Context, userID int64) (release func(), err error) {
	return r.locks.acquire(ctx, userID)
}

// ServerToLocal runs the download pass alone.
func (r *Reconciler) ServerToLocal(ctx context.Context, userID int64) Outcome {
	release, err := r.locks.acquire(ctx, userID)
	if err != nil {
		r.logger.Info("Sync skipped, another run holds the lock", "user_id", userID)
		return busyOutcome()
	}
	defer release()

	return r.serverToLocal(ctx, userID)
}

// LocalToServer runs the upload pass alone.
func (r *Reconciler) LocalToServer(ctx context.Context, userID int64) Outcome {
	release, err := r.locks.acquire(ctx, userID)
	if err != nil {
		r.logger.Info("Sync skipped, another run holds the lock", "user_id", userID)
		return busyOutcome()
	}
	defer release()

	return r.localToServer(ctx, userID)
}

// FullSync runs download then upload under one lock and merges the outcomes.
// An offline download pass short-circuits the run.
func (r *Reconciler) FullSync(ctx context.Context, userID int64) Outcome {
	release, err := r.locks.acquire(ctx, userID)
	if err != nil {
		r.logger.Info("Sync skipped, another run holds the lock", "user_id", userID)
		return busyOutcome()
	}
	defer release()

	r.logger.Info("Starting synchronization", "user_id", userID)

	down := r.serverToLocal(ctx, userID)
	if down.Offline() {
		return down
	}

	up := r.localToServer(ctx, userID)
	out := merge(down, up)

	r.logger.Info("Synchronization completed",
		"user_id", userID,
		"success", out.Success,
		"synced", out.Synced,
		"errors", out.Errors)

	return out
}

// serverToLocal приводит локальное хранилище к снимку сервера с учетом tombstones
func (r *Reconciler) serverToLocal(ctx context.Context, userID int64) Outcome {
	if !r.probe.IsOnline(ctx) {
		r.logger.Info("Remote unreachable, download skipped", "user_id", userID)
		return offlineOutcome()
	}

	remoteRecords, err := r.remote.List(ctx, userID)
	if err != nil {
		r.logger.Warn("Failed to list remote records", "user_id", userID, "error", err)
		return failedOutcome(passDownload, err)
	}

	localRecords, err := r.store.ListByUser(ctx, userID)
	if err != nil {
		r.logger.Warn("Failed to list local records", "user_id", userID, "error", err)
		return failedOutcome(passDownload, err)
	}

	tombstoned, err := r.store.Tombstones(ctx, userID)
	if err != nil {
		r.logger.Warn("Failed to load tombstones", "user_id", userID, "error", err)
		return failedOutcome(passDownload, err)
	}

	byRemoteID := make(map[int64]*models.Record, len(localRecords))
	pendingByRef := make(map[string]*models.Record)
	for _, rec := range localRecords {
		if rec.RemoteID != nil {
			byRemoteID[*rec.RemoteID] = rec
		} else if rec.ClientRef != "" {
			pendingByRef[rec.ClientRef] = rec
		}
	}

	var synced, errs int
	var note string
	seen := make(map[int64]struct{}, len(remoteRecords))

	for i := range remoteRecords {
		if ctx.Err() != nil {
			errs++
			note = "interrupted"
			break
		}

		remote := &remoteRecords[i]
		if remote.RemoteID == nil {
			continue
		}
		remoteID := *remote.RemoteID
		seen[remoteID] = struct{}{}
		log := r.logger.With("user_id", userID, "remote_id", remoteID)

		// Tombstone: удаляем на сервере, локально запись не создаем и не обновляем
		if _, ok := tombstoned[remoteID]; ok {
			if err := r.remote.Delete(ctx, userID, remoteID); err != nil && !errors.Is(err, api.ErrNotFound) {
				log.Warn("Failed to delete tombstoned record on server", "error", err)
				errs++
				continue
			}
			if err := r.store.RemoveTombstone(ctx, remoteID, userID); err != nil {
				log.Warn("Failed to remove tombstone", "error", err)
				errs++
				continue
			}
			log.Debug("Tombstone resolved")
			synced++
			continue
		}

		local, mapped := byRemoteID[remoteID]
		adopted := false

		// Запись уже создана этим устройством, но SetRemoteID не успел выполниться
		if !mapped && remote.ClientRef != "" {
			if pending, ok := pendingByRef[remote.ClientRef]; ok {
				if err := r.store.SetRemoteID(ctx, pending.LocalID, remoteID, r.now()); err != nil {
					log.Warn("Failed to adopt remote record", "local_id", pending.LocalID, "error", err)
					errs++
					continue
				}
				delete(pendingByRef, remote.ClientRef)
				pending.RemoteID = &remoteID
				byRemoteID[remoteID] = pending
				local, mapped, adopted = pending, true, true
				log.Debug("Adopted remote record", "local_id", pending.LocalID)
			}
		}

		if !mapped {
			rec := &models.Record{
				RemoteID:  &remoteID,
				UserID:    userID,
				ClientRef: remote.ClientRef,
				Fields:    models.MergeRemote(models.Fields{}, remote.Fields),
			}
			if err := r.store.UpsertFromRemote(ctx, rec); err != nil {
				log.Warn("Failed to insert remote record", "error", err)
				errs++
				continue
			}
			log.Debug("Inserted remote record", "local_id", rec.LocalID)
			synced++
			continue
		}

		if !models.DiffersFromRemote(local.Fields, remote.Fields) {
			if adopted {
				synced++
			}
			continue
		}

		rec := &models.Record{
			RemoteID: &remoteID,
			UserID:   userID,
			Fields:   models.MergeRemote(local.Fields, remote.Fields),
		}
		if err := r.store.UpsertFromRemote(ctx, rec); err != nil {
			log.Warn("Failed to update local record from remote", "local_id", local.LocalID, "error", err)
			errs++
			continue
		}
		log.Debug("Updated local record from remote", "local_id", local.LocalID)
		synced++
	}

	if note == "" {
		// Локальные записи, исчезнувшие с сервера или закрытые tombstone
		for _, rec := range localRecords {
			if rec.RemoteID == nil {
				continue
			}
			remoteID := *rec.RemoteID
			_, present := seen[remoteID]
			_, tomb := tombstoned[remoteID]
			if present && !tomb {
				continue
			}
			if err := r.store.DeleteByLocalID(ctx, rec.LocalID); err != nil {
				r.logger.Warn("Failed to delete local record",
					"user_id", userID, "local_id", rec.LocalID, "remote_id", remoteID, "error", err)
				errs++
				continue
			}
			r.logger.Debug("Deleted local record absent on server",
				"user_id", userID, "local_id", rec.LocalID, "remote_id", remoteID)
			// tombstone и локальная копия одной записи считаются один раз:
			// при разрешении tombstone
			if !tomb {
				synced++
			}
		}

		// Tombstones, которых уже нет в снимке сервера, подтверждены
		for remoteID := range tombstoned {
			if _, present := seen[remoteID]; present {
				continue
			}
			if err := r.store.RemoveTombstone(ctx, remoteID, userID); err != nil {
				r.logger.Warn("Failed to remove tombstone",
					"user_id", userID, "remote_id", remoteID, "error", err)
				errs++
				continue
			}
			synced++
		}
	}

	out := passOutcome(passDownload, synced, errs, note)
	r.logger.Info("Download pass finished", "user_id", userID, "synced", synced, "errors", errs)
	return out
}

// localToServer загружает на сервер записи без RemoteID
func (r *Reconciler) localToServer(ctx context.Context, userID int64) Outcome {
	if !r.probe.IsOnline(ctx) {
		r.logger.Info("Remote unreachable, upload skipped", "user_id", userID)
		return offlineOutcome()
	}

	localRecords, err := r.store.ListByUser(ctx, userID)
	if err != nil {
		r.logger.Warn("Failed to list local records", "user_id", userID, "error", err)
		return failedOutcome(passUpload, err)
	}

	var synced, errs int
	var note string

	for _, rec := range localRecords {
		if !rec.IsPending() {
			continue
		}
		if ctx.Err() != nil {
			errs++
			note = "interrupted"
			break
		}

		log := r.logger.With("user_id", userID, "local_id", rec.LocalID)

		created, err := r.remote.Create(ctx, userID, rec.Fields.Clean(), rec.ClientRef)
		if err != nil {
			log.Warn("Failed to create record on server", "error", err)
			errs++
			continue
		}
		if created == nil || created.RemoteID == nil {
			log.Warn("Server returned a record without id")
			errs++
			continue
		}

		if err := r.store.SetRemoteID(ctx, rec.LocalID, *created.RemoteID, r.now()); err != nil {
			log.Warn("Failed to store remote id", "remote_id", *created.RemoteID, "error", err)
			errs++
			continue
		}

		log.Debug("Uploaded record", "remote_id", *created.RemoteID)
		synced++
	}

	out := passOutcome(passUpload, synced, errs, note)
	r.logger.Info("Upload pass finished", "user_id", userID, "synced", synced, "errors", errs)
	return out
}
