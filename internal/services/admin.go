package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sbilibin2017/blueforce/internal/logger"
	"github.com/sbilibin2017/blueforce/internal/models"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=admin.go -destination=admin_mock.go -package=services

var (
	// ErrInvalidCredentials is returned when the admin password does not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// recentUsersLimit is the number of users included in UserStats.Recent.
const recentUsersLimit = 5

// AdminSettings stores the admin authentication flag.
type AdminSettings interface {
	IsAdminAuthenticated(ctx context.Context) (bool, error)
	SetAdminAuthenticated(ctx context.Context, on bool) error
}

// UserDirectory is the part of DirectoryService the admin console needs.
type UserDirectory interface {
	List(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, id int, patch models.UserPatch) (*models.User, error)
}

// JWTGenerator defines JWT token generation.
type JWTGenerator interface {
	Generate(ctx context.Context, subject uuid.UUID) (string, error) // Generates a JWT token for the admin
}

// AdminService implements the admin console: sign-in, search, stats and moderation.
type AdminService struct {
	settings     AdminSettings
	directory    UserDirectory
	jwt          JWTGenerator
	passwordHash []byte
}

// NewAdminService creates a new AdminService. passwordHash is a bcrypt hash.
func NewAdminService(settings AdminSettings, directory UserDirectory, jwt JWTGenerator, passwordHash string) *AdminService {
	return &AdminService{
		settings:     settings,
		directory:    directory,
		jwt:          jwt,
		passwordHash: []byte(passwordHash),
	}
}

// SignIn checks the admin password, sets the authenticated flag and returns a token.
func (svc *AdminService) SignIn(ctx context.Context, password string) (string, error) {
	if len(svc.passwordHash) == 0 {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(svc.passwordHash, []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, uuid.New())
	if err != nil {
		logger.Log.Errorw("failed to generate admin token", "err", err)
		return "", err
	}

	if err := svc.settings.SetAdminAuthenticated(ctx, true); err != nil {
		logger.Log.Errorw("failed to store admin flag", "err", err)
		return "", err
	}

	return token, nil
}

// SignOut clears the admin flag.
func (svc *AdminService) SignOut(ctx context.Context) error {
	if err := svc.settings.SetAdminAuthenticated(ctx, false); err != nil {
		logger.Log.Errorw("failed to clear admin flag", "err", err)
		return err
	}
	return nil
}

// IsAuthenticated reports whether an admin is signed in.
func (svc *AdminService) IsAuthenticated(ctx context.Context) (bool, error) {
	return svc.settings.IsAdminAuthenticated(ctx)
}

// Search returns the users matching filter, in directory order.
func (svc *AdminService) Search(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	users, err := svc.directory.List(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]models.User, 0, len(users))
	for _, u := range users {
		if filter.Match(u) {
			matched = append(matched, u)
		}
	}
	return matched, nil
}

// Stats counts workers and employers and returns the first registered users.
func (svc *AdminService) Stats(ctx context.Context) (models.UserStats, error) {
	users, err := svc.directory.List(ctx)
	if err != nil {
		return models.UserStats{}, err
	}

	stats := models.UserStats{Recent: []models.User{}}
	for _, u := range users {
		switch {
		case u.IsWorker():
			stats.TotalWorkers++
		case u.IsEmployer():
			stats.TotalEmployers++
		}
	}
	if len(users) > recentUsersLimit {
		users = users[:recentUsersLimit]
	}
	stats.Recent = append(stats.Recent, users...)
	return stats, nil
}

// ToggleStatus flips a user between active and suspended. A user without a
// status counts as active. Returns nil when the id does not exist.
func (svc *AdminService) ToggleStatus(ctx context.Context, id int) (*models.User, error) {
	users, err := svc.directory.List(ctx)
	if err != nil {
		return nil, err
	}

	var target *models.User
	for i := range users {
		if users[i].ID == id {
			target = &users[i]
			break
		}
	}
	if target == nil {
		return nil, nil
	}

	next := models.StatusSuspended
	if target.EffectiveStatus() == models.StatusSuspended {
		next = models.StatusActive
	}

	user, err := svc.directory.Update(ctx, id, models.UserPatch{Status: &next})
	if err != nil {
		return nil, err
	}
	if user != nil {
		logger.Log.Infow("user status toggled", "id", id, "status", next)
	}
	return user, nil
}
