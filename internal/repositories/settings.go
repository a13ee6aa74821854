package repositories

import (
	"context"

	"github.com/sbilibin2017/blueforce/internal/storage"
)

// SettingsRepository holds the scalar keys that share the user store:
// language preference, admin flag, worker availability and skill video.
type SettingsRepository struct {
	store storage.Storage
}

func NewSettingsRepository(store storage.Storage) *SettingsRepository {
	return &SettingsRepository{store: store}
}

func (r *SettingsRepository) GetLanguage(ctx context.Context) (string, bool, error) {
	return r.store.Get(ctx, PreferredLanguageKey)
}

func (r *SettingsRepository) SetLanguage(ctx context.Context, code string) error {
	return r.store.Set(ctx, PreferredLanguageKey, code)
}

// IsAdminAuthenticated reports whether the admin flag holds "true".
func (r *SettingsRepository) IsAdminAuthenticated(ctx context.Context) (bool, error) {
	v, _, err := storage.GetBool(ctx, r.store, AdminAuthenticatedKey)
	return v, err
}

// SetAdminAuthenticated stores "true", or removes the flag entirely.
func (r *SettingsRepository) SetAdminAuthenticated(ctx context.Context, on bool) error {
	if !on {
		return r.store.Remove(ctx, AdminAuthenticatedKey)
	}
	return storage.SetBool(ctx, r.store, AdminAuthenticatedKey, true)
}

func (r *SettingsRepository) GetAvailability(ctx context.Context) (bool, bool, error) {
	return storage.GetBool(ctx, r.store, WorkerAvailabilityKey)
}

func (r *SettingsRepository) SetAvailability(ctx context.Context, available bool) error {
	return storage.SetBool(ctx, r.store, WorkerAvailabilityKey, available)
}

func (r *SettingsRepository) GetSkillVideo(ctx context.Context) (string, bool, error) {
	return r.store.Get(ctx, WorkerSkillVideoKey)
}

func (r *SettingsRepository) SetSkillVideo(ctx context.Context, dataURI string) error {
	return r.store.Set(ctx, WorkerSkillVideoKey, dataURI)
}

func (r *SettingsRepository) RemoveSkillVideo(ctx context.Context) error {
	return r.store.Remove(ctx, WorkerSkillVideoKey)
}
