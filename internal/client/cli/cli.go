// Package cli реализует команды клиента medkeeper.
package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/medkeeper/internal/client/iocli"
	"github.com/iudanet/medkeeper/internal/client/records"
	"github.com/iudanet/medkeeper/internal/client/storage"
	"github.com/iudanet/medkeeper/internal/client/sync"
	"github.com/iudanet/medkeeper/internal/models"
)

// ErrNotLoggedIn returned by commands that need an active session
var ErrNotLoggedIn = errors.New("not logged in, run 'medkeeper login --user-id N' first")

// BuildInfo заполняется через ldflags при сборке
type BuildInfo struct {
	Version   string
	BuildDate string
	GitCommit string
}

type Cli struct {
	io      iocli.IO
	records records.Service
	syncer  sync.Syncer
	session storage.SessionStorage
	styles  styles
	now     func() time.Time
}

func New(io iocli.IO, recordService records.Service, syncer sync.Syncer, session storage.SessionStorage) *Cli {
	return &Cli{
		io:      io,
		records: recordService,
		syncer:  syncer,
		session: session,
		styles:  newStyles(io.Color()),
		now:     time.Now,
	}
}

// currentUser возвращает пользователя активной сессии
func (c *Cli) currentUser(ctx context.Context) (int64, error) {
	s, err := c.session.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return 0, ErrNotLoggedIn
		}
		return 0, fmt.Errorf("failed to get session: %w", err)
	}
	return s.UserID, nil
}

// ownedRecord загружает запись и проверяет, что она принадлежит userID.
// Чужая запись неотличима от отсутствующей.
func (c *Cli) ownedRecord(ctx context.Context, userID, localID int64) (*models.Record, error) {
	rec, err := c.records.Get(ctx, localID)
	if err != nil {
		if errors.Is(err, storage.ErrRecordNotFound) {
			return nil, fmt.Errorf("record %d: %w", localID, storage.ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to get record: %w", err)
	}
	if rec.UserID != userID {
		return nil, fmt.Errorf("record %d: %w", localID, storage.ErrRecordNotFound)
	}
	return rec, nil
}
