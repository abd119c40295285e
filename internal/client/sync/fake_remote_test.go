package sync

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/iudanet/medkeeper/internal/client/api"
	"github.com/iudanet/medkeeper/internal/models"
)

// fakeRemote хранит записи сервиса в памяти и ведет себя как api.Client:
// дедупликация create по clientRef, delete отсутствующей записи не ошибка.
type fakeRemote struct {
	records    map[int64]models.Record
	failCreate map[string]error
	nextID     int64
	creates    int
	mu         sync.Mutex
}

var _ api.ClientAPI = (*fakeRemote)(nil)

func newFakeRemote() *fakeRemote {
	return &fakeRemote{
		records:    make(map[int64]models.Record),
		failCreate: make(map[string]error),
		nextID:     1000,
	}
}

func (f *fakeRemote) seed(userID, id int64, fields models.Fields) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.records[id] = models.Record{RemoteID: ptr(id), UserID: userID, Fields: fields}
}

func (f *fakeRemote) remove(id int64) {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.records, id)
}

// names возвращает remoteID -> name записей пользователя
func (f *fakeRemote) names(userID int64) map[int64]string {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make(map[int64]string)
	for id, rec := range f.records {
		if rec.UserID == userID {
			out[id] = rec.Name
		}
	}
	return out
}

func (f *fakeRemote) get(id int64) (models.Record, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	rec, ok := f.records[id]
	return rec, ok
}

func ctxErr(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", api.ErrTransient, err)
	}
	return nil
}

func (f *fakeRemote) List(ctx context.Context, userID int64) ([]models.Record, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]models.Record, 0, len(f.records))
	for id, rec := range f.records {
		if rec.UserID != userID {
			continue
		}
		rec.RemoteID = ptr(id)
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return *out[i].RemoteID < *out[j].RemoteID })

	return out, nil
}

func (f *fakeRemote) Create(ctx context.Context, userID int64, fields models.Fields, clientRef string) (*models.Record, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.failCreate[fields.Name]; err != nil {
		return nil, err
	}

	if clientRef != "" {
		for id, rec := range f.records {
			if rec.UserID == userID && rec.ClientRef == clientRef {
				rec.RemoteID = ptr(id)
				return &rec, nil
			}
		}
	}

	f.nextID++
	f.creates++
	rec := models.Record{RemoteID: ptr(f.nextID), UserID: userID, ClientRef: clientRef, Fields: fields}
	f.records[f.nextID] = rec

	return &rec, nil
}

func (f *fakeRemote) Update(ctx context.Context, userID, remoteID int64, fields models.Fields) error {
	if err := ctxErr(ctx); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	rec, ok := f.records[remoteID]
	if !ok || rec.UserID != userID {
		return &api.Error{StatusCode: 404, Message: "record not found"}
	}
	if fields.PhotoURI == "" {
		fields.PhotoURI = rec.PhotoURI
	}
	rec.Fields = fields
	f.records[remoteID] = rec

	return nil
}

func (f *fakeRemote) Delete(ctx context.Context, userID, remoteID int64) error {
	if err := ctxErr(ctx); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if rec, ok := f.records[remoteID]; ok && rec.UserID == userID {
		delete(f.records, remoteID)
	}

	return nil
}
