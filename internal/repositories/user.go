package repositories

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sbilibin2017/blueforce/internal/logger"
	"github.com/sbilibin2017/blueforce/internal/models"
	"github.com/sbilibin2017/blueforce/internal/storage"
)

// UserRepository keeps the user directory as one JSON array under UsersKey.
// Writes are read-modify-write of the whole array and are serialized per process.
// An unreadable array switches the repository to a process-lifetime in-memory
// store, leaving the stored value as it was.
type UserRepository struct {
	store storage.Storage
	now   func() time.Time
	mu    sync.Mutex
}

// UserRepositoryOption configures a UserRepository.
type UserRepositoryOption func(*UserRepository)

// WithClock overrides the time source used for date stamps.
func WithClock(now func() time.Time) UserRepositoryOption {
	return func(r *UserRepository) {
		r.now = now
	}
}

func NewUserRepository(store storage.Storage, opts ...UserRepositoryOption) *UserRepository {
	r := &UserRepository{store: store, now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// load returns the stored users and whether the key holds a value.
// Callers must hold r.mu.
func (r *UserRepository) load(ctx context.Context) ([]models.User, bool, error) {
	var users []models.User
	found, err := storage.GetJSON(ctx, r.store, UsersKey, &users)
	if errors.Is(err, storage.ErrMalformed) {
		logger.Log.Warnw("user directory unreadable, switching to in-memory store", "key", UsersKey, "error", err)
		r.store = storage.NewMemory()
		return []models.User{}, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	if users == nil {
		users = []models.User{}
	}
	return users, found, nil
}

func (r *UserRepository) save(ctx context.Context, users []models.User) error {
	return storage.SetJSON(ctx, r.store, UsersKey, users)
}

func (r *UserRepository) today() models.Date {
	return models.DateOf(r.now())
}

// Seed stores seed as the only user when the directory key is absent or empty.
// A stored empty array is a directory that was emptied and is left alone.
// It reports whether anything was written.
func (r *UserRepository) Seed(ctx context.Context, seed models.NewUser) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, found, err := r.load(ctx)
	if err != nil {
		return false, err
	}
	if found {
		return false, nil
	}

	err = r.save(ctx, []models.User{seed.User(1, r.today())})

	logger.Log.Infow("seed users",
		"key", UsersKey,
		"result", err == nil,
		"error", err,
	)

	return err == nil, err
}

// List returns a copy of all users in insertion order. Never nil.
func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, _, err := r.load(ctx)
	if err != nil {
		return []models.User{}, err
	}
	out := make([]models.User, len(users))
	for i, u := range users {
		out[i] = u.Clone()
	}
	return out, nil
}

// GetByEmail returns the first user whose email matches exactly, or nil.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, _, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Email == email {
			found := u.Clone()
			return &found, nil
		}
	}
	return nil, nil
}

// GetByID returns the user with the given id, or nil.
func (r *UserRepository) GetByID(ctx context.Context, id int) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, _, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	if i := indexOf(users, id); i >= 0 {
		found := users[i].Clone()
		return &found, nil
	}
	return nil, nil
}

// Save appends a new user with the next id and both dates set to today.
func (r *UserRepository) Save(ctx context.Context, n models.NewUser) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, _, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	u := n.User(nextID(users), r.today())
	if err := u.Validate(); err != nil {
		return nil, err
	}

	err = r.save(ctx, append(users, u))

	logger.Log.Infow("save user",
		"id", u.ID,
		"email", u.Email,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Update merges patch into the user with the given id and touches LastActive.
// Only the fields the patch sets are validated. It returns nil without error
// when the id does not exist.
func (r *UserRepository) Update(ctx context.Context, id int, patch models.UserPatch) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, _, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	i := indexOf(users, id)
	if i < 0 {
		logger.Log.Infow("update user", "id", id, "result", "not found")
		return nil, nil
	}

	updated := patch.Apply(users[i])
	updated.LastActive = r.today()
	if err := patch.Validate(updated); err != nil {
		return nil, err
	}
	users[i] = updated

	err = r.save(ctx, users)

	logger.Log.Infow("update user",
		"id", id,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	out := updated.Clone()
	return &out, nil
}

func indexOf(users []models.User, id int) int {
	for i, u := range users {
		if u.ID == id {
			return i
		}
	}
	return -1
}

// nextID is max(existing ids)+1, or 1 for an empty directory.
func nextID(users []models.User) int {
	maxID := 0
	for _, u := range users {
		if u.ID > maxID {
			maxID = u.ID
		}
	}
	return maxID + 1
}
