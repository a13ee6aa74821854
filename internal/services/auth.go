package services

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/sbilibin2017/blueforce/internal/logger"
	"github.com/sbilibin2017/blueforce/internal/models"
)

// ErrEmptyEmail is returned by Login for a blank email.
var ErrEmptyEmail = errors.New("email is required")

// AuthService manages the single current session.
//
// Login is identity-by-claim: whoever names an email becomes that user, and an
// unknown email is registered on the spot. There is no credential check.
type AuthService struct {
	reader  UserReader
	writer  UserWriter
	session SessionStore
	events  EventPublisher
	mu      sync.Mutex
}

// NewAuthService creates a new AuthService. events may be nil.
func NewAuthService(reader UserReader, writer UserWriter, session SessionStore, events EventPublisher) *AuthService {
	return &AuthService{
		reader:  reader,
		writer:  writer,
		session: session,
		events:  events,
	}
}

// Login makes the user with this email current, registering it first if needed.
// Logging in while another user is current simply replaces the session.
func (svc *AuthService) Login(ctx context.Context, email string) (*models.User, error) {
	if strings.TrimSpace(email) == "" {
		return nil, ErrEmptyEmail
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()

	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "email", email, "err", err)
		return nil, err
	}

	if user == nil {
		user, err = svc.writer.Save(ctx, models.NewUser{
			Name:  models.NameFromEmail(email),
			Email: email,
		})
		if err != nil {
			logger.Log.Errorw("failed to auto-register user", "email", email, "err", err)
			return nil, err
		}
		logger.Log.Infow("user auto-registered on login", "id", user.ID, "email", email)
		publish(ctx, svc.events, models.EventUserRegistered, user.ID, user)
	}

	if err := svc.session.Set(ctx, *user); err != nil {
		logger.Log.Errorw("failed to store session", "id", user.ID, "err", err)
		return nil, err
	}

	publish(ctx, svc.events, models.EventSessionLogin, user.ID, nil)
	return user, nil
}

// Logout clears the session. Logging out with no session is a no-op.
func (svc *AuthService) Logout(ctx context.Context) error {
	current, err := svc.session.Get(ctx)
	if err != nil {
		logger.Log.Errorw("failed to read session", "err", err)
		return err
	}

	if err := svc.session.Clear(ctx); err != nil {
		logger.Log.Errorw("failed to clear session", "err", err)
		return err
	}

	if current != nil {
		publish(ctx, svc.events, models.EventSessionLogout, current.ID, nil)
	}
	return nil
}

// Current returns the stored session copy, or nil.
func (svc *AuthService) Current(ctx context.Context) (*models.User, error) {
	user, err := svc.session.Get(ctx)
	if err != nil {
		logger.Log.Errorw("failed to read session", "err", err)
		return nil, err
	}
	return user, nil
}
