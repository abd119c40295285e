package sync

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"
)

// userLocks выдает по одному семафору веса 1 на пользователя.
// Два прохода одного пользователя никогда не выполняются одновременно,
// проходы разных пользователей не мешают друг другу.
// Запись удаляется, когда ее никто не держит и не ждет.
type userLocks struct {
	sems map[int64]*userLock
	mu   sync.Mutex
}

type userLock struct {
	sem  *semaphore.Weighted
	refs int // держатель и ожидающие
}

func newUserLocks() *userLocks {
	return &userLocks{sems: make(map[int64]*userLock)}
}

// acquire ждет освобождения блокировки или завершения ctx
func (l *userLocks) acquire(ctx context.Context, userID int64) (release func(), err error) {
	l.mu.Lock()
	ul, ok := l.sems[userID]
	if !ok {
		ul = &userLock{sem: semaphore.NewWeighted(1)}
		l.sems[userID] = ul
	}
	ul.refs++
	l.mu.Unlock()

	if err := ul.sem.Acquire(ctx, 1); err != nil {
		l.unref(userID, ul)
		return nil, err
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			ul.sem.Release(1)
			l.unref(userID, ul)
		})
	}, nil
}

func (l *userLocks) unref(userID int64, ul *userLock) {
	l.mu.Lock()
	defer l.mu.Unlock()

	ul.refs--
	if ul.refs == 0 {
		delete(l.sems, userID)
	}
}

// size число пользователей с активной блокировкой
func (l *userLocks) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.sems)
}
