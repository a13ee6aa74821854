package services

import (
	"context"

	"github.com/sbilibin2017/blueforce/internal/logger"
	"github.com/sbilibin2017/blueforce/internal/models"
)

//go:generate mockgen -source=directory.go -destination=directory_mock.go -package=services

// UserReader defines read-only operations on the user directory.
type UserReader interface {
	List(ctx context.Context) ([]models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int) (*models.User, error)
}

// UserWriter defines write operations on the user directory.
type UserWriter interface {
	Seed(ctx context.Context, seed models.NewUser) (bool, error)
	Save(ctx context.Context, n models.NewUser) (*models.User, error)
	Update(ctx context.Context, id int, patch models.UserPatch) (*models.User, error)
}

// SessionStore holds the copy of the logged-in user.
type SessionStore interface {
	Get(ctx context.Context) (*models.User, error)
	Set(ctx context.Context, u models.User) error
	Clear(ctx context.Context) error
}

// DemoUser is seeded into an empty directory.
var DemoUser = models.NewUser{
	Name:       "Demo User",
	Email:      "user@example.com",
	Type:       models.RoleWorker,
	Profession: "Electrician",
	Location:   "Mumbai",
	Rating:     func() *float64 { r := 4.8; return &r }(),
	Verified:   func() *bool { v := true; return &v }(),
}

// DirectoryService is the user directory: registration, lookup and profile updates.
type DirectoryService struct {
	reader  UserReader
	writer  UserWriter
	session SessionStore
	events  EventPublisher
}

// NewDirectoryService creates a new DirectoryService. events may be nil.
func NewDirectoryService(reader UserReader, writer UserWriter, session SessionStore, events EventPublisher) *DirectoryService {
	return &DirectoryService{
		reader:  reader,
		writer:  writer,
		session: session,
		events:  events,
	}
}

// Initialize seeds the demo user into an empty directory. It is idempotent and
// never fails: storage problems are logged and the service carries on.
func (svc *DirectoryService) Initialize(ctx context.Context) {
	seeded, err := svc.writer.Seed(ctx, DemoUser)
	if err != nil {
		logger.Log.Warnw("failed to initialize users", "err", err)
		return
	}
	if seeded {
		logger.Log.Infow("user directory seeded", "email", DemoUser.Email)
	}
}

// List returns a snapshot of all users in insertion order. The slice is never nil.
func (svc *DirectoryService) List(ctx context.Context) ([]models.User, error) {
	users, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "err", err)
		return []models.User{}, err
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

// Register adds a user. Duplicate emails are accepted.
func (svc *DirectoryService) Register(ctx context.Context, n models.NewUser) (*models.User, error) {
	user, err := svc.writer.Save(ctx, n)
	if err != nil {
		logger.Log.Errorw("failed to save user", "email", n.Email, "err", err)
		return nil, err
	}

	publish(ctx, svc.events, models.EventUserRegistered, user.ID, user)
	return user, nil
}

// FindByEmail returns the first user with exactly this email, or nil.
func (svc *DirectoryService) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user by email", "email", email, "err", err)
		return nil, err
	}
	return user, nil
}

// FindByID returns the user with the given id, or nil.
func (svc *DirectoryService) FindByID(ctx context.Context, id int) (*models.User, error) {
	user, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get user by id", "id", id, "err", err)
		return nil, err
	}
	return user, nil
}

// Update merges patch into the user and touches its last-active date.
// A nil user with nil error means the id does not exist. When the updated
// user is the one logged in, the session copy is refreshed as well; a session
// failure is logged and does not fail the update.
func (svc *DirectoryService) Update(ctx context.Context, id int, patch models.UserPatch) (*models.User, error) {
	user, err := svc.writer.Update(ctx, id, patch)
	if err != nil {
		logger.Log.Errorw("failed to update user", "id", id, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	svc.refreshSession(ctx, *user)

	publish(ctx, svc.events, models.EventUserUpdated, user.ID, patch)
	return user, nil
}

// refreshSession stores user as the session copy when it is the one logged in.
// The directory write has already happened, so failures are only logged.
func (svc *DirectoryService) refreshSession(ctx context.Context, user models.User) {
	current, err := svc.session.Get(ctx)
	if err != nil {
		logger.Log.Errorw("failed to read session", "err", err)
		return
	}
	if current == nil || current.ID != user.ID {
		return
	}
	if err := svc.session.Set(ctx, user); err != nil {
		logger.Log.Errorw("failed to refresh session", "id", user.ID, "err", err)
	}
}
