package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/blueforce/internal/logger"
	"github.com/sbilibin2017/blueforce/internal/models"
	"github.com/sbilibin2017/blueforce/internal/services"
)

//go:generate mockgen -source=session.go -destination=session_mock.go -package=handlers

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, email string) (*models.User, error)
}

// Logouter ends the session.
type Logouter interface {
	Logout(ctx context.Context) error
}

// SessionReader returns the current session.
type SessionReader interface {
	Current(ctx context.Context) (*models.User, error)
}

// LoginRequest represents the JSON body for login
// swagger:model LoginRequest
type LoginRequest struct {
	// Email of the user. Unknown emails are registered on the fly.
	// required: true
	// default: user@example.com
	Email string `json:"email"`
}

// SessionResponse wraps the current user. User is null when nobody is logged in.
// swagger:model SessionResponse
type SessionResponse struct {
	User *models.User `json:"user"`
}

// NewLoginHandler returns an HTTP handler for login.
// @Summary Log in
// @Description Makes the user with this email current, registering it first if needed
// @Tags session
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login Request"
// @Success 200 {object} handlers.SessionResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body or empty email"
// @Failure 500 {object} handlers.ErrorResponse
// @Router /session [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		user, err := svc.Login(r.Context(), req.Email)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmptyEmail):
				writeError(w, http.StatusBadRequest, "Email is required")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, msgInternal)
			}
			return
		}

		writeJSON(w, http.StatusOK, SessionResponse{User: user})
	}
}

// NewCurrentSessionHandler returns an HTTP handler reporting the current user.
// @Summary Current session
// @Tags session
// @Produce json
// @Success 200 {object} handlers.SessionResponse
// @Failure 500 {object} handlers.ErrorResponse
// @Router /session [get]
func NewCurrentSessionHandler(svc SessionReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := svc.Current(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, msgInternal)
			return
		}
		writeJSON(w, http.StatusOK, SessionResponse{User: user})
	}
}

// NewLogoutHandler returns an HTTP handler for logout. It always succeeds when
// storage does, with or without an active session.
// @Summary Log out
// @Tags session
// @Success 204
// @Failure 500 {object} handlers.ErrorResponse
// @Router /session [delete]
func NewLogoutHandler(svc Logouter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Logout(r.Context()); err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, msgInternal)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// RegisterSessionHandlers registers the session routes.
func RegisterSessionHandlers(r chi.Router, login, current, logout http.HandlerFunc) {
	r.Post("/session", login)
	r.Get("/session", current)
	r.Delete("/session", logout)
}
