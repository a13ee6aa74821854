package repositories

import (
	"context"
	"errors"

	"github.com/sbilibin2017/blueforce/internal/logger"
	"github.com/sbilibin2017/blueforce/internal/models"
	"github.com/sbilibin2017/blueforce/internal/storage"
)

// SessionRepository stores a copy of the logged-in user under CurrentUserKey.
type SessionRepository struct {
	store storage.Storage
}

func NewSessionRepository(store storage.Storage) *SessionRepository {
	return &SessionRepository{store: store}
}

// Get returns the stored session copy, or nil when nobody is logged in.
// An unreadable copy is logged and reported as no session.
func (r *SessionRepository) Get(ctx context.Context) (*models.User, error) {
	var u models.User
	ok, err := storage.GetJSON(ctx, r.store, CurrentUserKey, &u)
	if errors.Is(err, storage.ErrMalformed) {
		logger.Log.Warnw("session unreadable, treating as logged out", "key", CurrentUserKey, "error", err)
		return nil, nil
	}
	if err != nil || !ok {
		return nil, err
	}
	return &u, nil
}

// Set replaces the session copy with u.
func (r *SessionRepository) Set(ctx context.Context, u models.User) error {
	return storage.SetJSON(ctx, r.store, CurrentUserKey, u)
}

// Clear removes the session. Clearing an empty session is a no-op.
func (r *SessionRepository) Clear(ctx context.Context) error {
	return r.store.Remove(ctx, CurrentUserKey)
}
