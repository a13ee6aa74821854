package repositories

import (
	"context"
	"errors"

	"github.com/sbilibin2017/blueforce/internal/logger"
	"github.com/sbilibin2017/blueforce/internal/models"
	"github.com/sbilibin2017/blueforce/internal/storage"
)

// HireRepository stores the result of the last bulk hire.
type HireRepository struct {
	store storage.Storage
}

func NewHireRepository(store storage.Storage) *HireRepository {
	return &HireRepository{store: store}
}

// List returns the workers from the last bulk hire. Unreadable data reads as empty.
func (r *HireRepository) List(ctx context.Context) ([]models.User, error) {
	var hired []models.User
	_, err := storage.GetJSON(ctx, r.store, MassHiredWorkersKey, &hired)
	if errors.Is(err, storage.ErrMalformed) {
		logger.Log.Warnw("hired workers unreadable, treating as empty", "key", MassHiredWorkersKey, "error", err)
		return []models.User{}, nil
	}
	if err != nil {
		return []models.User{}, err
	}
	if hired == nil {
		hired = []models.User{}
	}
	return hired, nil
}

// Replace overwrites the stored bulk hire with workers.
func (r *HireRepository) Replace(ctx context.Context, workers []models.User) error {
	return storage.SetJSON(ctx, r.store, MassHiredWorkersKey, workers)
}
