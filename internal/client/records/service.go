package records

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/iudanet/medkeeper/internal/client/api"
	"github.com/iudanet/medkeeper/internal/client/connectivity"
	"github.com/iudanet/medkeeper/internal/client/storage"
	"github.com/iudanet/medkeeper/internal/models"
	"github.com/iudanet/medkeeper/internal/validation"
)

// ErrNameRequired returned when a record has an empty name
var ErrNameRequired = validation.ErrNameRequired

//go:generate moq -out service_mock.go . Service

// Service определяет операции над записями, которые вызывает пользовательский интерфейс.
// Каждая операция сначала сохраняет изменение локально, затем, если сервис
// доступен, сразу отправляет его на сервер. Неудачная отправка не является
// ошибкой операции: запись остается для проходов синхронизации.
type Service interface {
	Add(ctx context.Context, userID int64, fields models.Fields) (*Result, error)
	Edit(ctx context.Context, localID int64, fields models.Fields) (*Result, error)
	Delete(ctx context.Context, localID int64) (*Result, error)

	Get(ctx context.Context, localID int64) (*models.Record, error)
	List(ctx context.Context, userID int64) ([]*models.Record, error)
	Pending(ctx context.Context, userID int64) (int, error)
}

// Result describes a local mutation and whether it reached the server.
type Result struct {
	Record *models.Record
	Pushed bool
}

// Locker сериализует изменения записей пользователя с проходами синхронизации.
// Его реализует sync.Reconciler.
type Locker interface {
	Lock(ctx context.Context, userID int64) (release func(), err error)
}

type nopLocker struct{}

func (nopLocker) Lock(context.Context, int64) (func(), error) { return func() {}, nil }

// Option configures the record service
type Option func(*service)

// WithLocker makes every mutation hold l for the record owner
func WithLocker(l Locker) Option {
	return func(s *service) { s.locker = l }
}

type service struct {
	store  storage.RecordStorage
	remote api.ClientAPI
	probe  connectivity.Probe
	locker Locker
	logger *slog.Logger
	now    func() time.Time
}

// NewService creates a new record service
func NewService(store storage.RecordStorage, remote api.ClientAPI, probe connectivity.Probe, logger *slog.Logger, opts ...Option) Service {
	s := &service{
		store:  store,
		remote: remote,
		probe:  probe,
		locker: nopLocker{},
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// lock берет блокировку пользователя; проход синхронизации не увидит
// запись между созданием на сервере и SetRemoteID
func (s *service) lock(ctx context.Context, userID int64) (func(), error) {
	release, err := s.locker.Lock(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to wait for running sync: %w", err)
	}
	return release, nil
}

// Add creates a record locally and uploads it when online
func (s *service) Add(ctx context.Context, userID int64, fields models.Fields) (*Result, error) {
	if err := validation.ValidateName(fields.Name); err != nil {
		return nil, err
	}

	release, err := s.lock(ctx, userID)
	if err != nil {
		return nil, err
	}
	defer release()

	rec := &models.Record{UserID: userID, Fields: fields}
	if err := s.store.CreateLocal(ctx, rec); err != nil {
		return nil, fmt.Errorf("failed to save record: %w", err)
	}

	res := &Result{Record: rec}
	if !s.probe.IsOnline(ctx) {
		return res, nil
	}

	created, err := s.remote.Create(ctx, userID, fields.Clean(), rec.ClientRef)
	if err != nil {
		s.logger.Warn("Failed to upload new record, left pending",
			"user_id", userID, "local_id", rec.LocalID, "error", err)
		return res, nil
	}
	if created == nil || created.RemoteID == nil {
		s.logger.Warn("Server returned a record without id", "local_id", rec.LocalID)
		return res, nil
	}

	syncedAt := s.now()
	if err := s.store.SetRemoteID(ctx, rec.LocalID, *created.RemoteID, syncedAt); err != nil {
		// Pass A усыновит запись по clientRef
		s.logger.Warn("Failed to store remote id",
			"local_id", rec.LocalID, "remote_id", *created.RemoteID, "error", err)
		return res, nil
	}

	rec.RemoteID = created.RemoteID
	rec.SyncedAt = &syncedAt
	res.Pushed = true

	return res, nil
}

// Edit replaces fields locally and pushes them when the record is known to the server
func (s *service) Edit(ctx context.Context, localID int64, fields models.Fields) (*Result, error) {
	if err := validation.ValidateName(fields.Name); err != nil {
		return nil, err
	}

	owner, err := s.store.GetByLocalID(ctx, localID)
	if err != nil {
		return nil, fmt.Errorf("failed to get record: %w", err)
	}

	release, err := s.lock(ctx, owner.UserID)
	if err != nil {
		return nil, err
	}
	defer release()

	if err := s.store.UpdateFields(ctx, localID, fields); err != nil {
		return nil, fmt.Errorf("failed to update record: %w", err)
	}

	rec, err := s.store.GetByLocalID(ctx, localID)
	if err != nil {
		return nil, fmt.Errorf("failed to get record: %w", err)
	}

	res := &Result{Record: rec}

	// Незагруженную запись отправит LocalToServer вместе с новыми полями
	if rec.IsPending() || !s.probe.IsOnline(ctx) {
		return res, nil
	}

	if err := s.remote.Update(ctx, rec.UserID, *rec.RemoteID, fields.Clean()); err != nil {
		s.logger.Warn("Failed to push record update",
			"local_id", localID, "remote_id", *rec.RemoteID, "error", err)
		return res, nil
	}

	syncedAt := s.now()
	if err := s.store.SetRemoteID(ctx, localID, *rec.RemoteID, syncedAt); err != nil {
		s.logger.Warn("Failed to refresh synced_at", "local_id", localID, "error", err)
	} else {
		rec.SyncedAt = &syncedAt
	}
	res.Pushed = true

	return res, nil
}

// Delete removes a record locally (tombstoning a synced one) and on the server when online
func (s *service) Delete(ctx context.Context, localID int64) (*Result, error) {
	owner, err := s.store.GetByLocalID(ctx, localID)
	if err != nil {
		return nil, fmt.Errorf("failed to get record: %w", err)
	}

	release, err := s.lock(ctx, owner.UserID)
	if err != nil {
		return nil, err
	}
	defer release()

	rec, err := s.store.DeleteLocal(ctx, localID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete record: %w", err)
	}

	res := &Result{Record: rec}

	if rec.IsPending() {
		// на сервере записи нет, удалять нечего
		res.Pushed = true
		return res, nil
	}
	if !s.probe.IsOnline(ctx) {
		return res, nil
	}

	if err := s.remote.Delete(ctx, rec.UserID, *rec.RemoteID); err != nil && !errors.Is(err, api.ErrNotFound) {
		s.logger.Warn("Failed to delete record on server, tombstone kept",
			"local_id", localID, "remote_id", *rec.RemoteID, "error", err)
		return res, nil
	}

	if err := s.store.RemoveTombstone(ctx, *rec.RemoteID, rec.UserID); err != nil {
		s.logger.Warn("Failed to remove tombstone", "remote_id", *rec.RemoteID, "error", err)
		return res, nil
	}
	res.Pushed = true

	return res, nil
}

// Get returns a single record
func (s *service) Get(ctx context.Context, localID int64) (*models.Record, error) {
	rec, err := s.store.GetByLocalID(ctx, localID)
	if err != nil {
		return nil, fmt.Errorf("failed to get record: %w", err)
	}
	return rec, nil
}

// List returns all local records of the user
func (s *service) List(ctx context.Context, userID int64) ([]*models.Record, error) {
	recs, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	return recs, nil
}

// Pending returns number of records awaiting first upload
func (s *service) Pending(ctx context.Context, userID int64) (int, error) {
	n, err := s.store.CountPending(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending records: %w", err)
	}
	return n, nil
}
