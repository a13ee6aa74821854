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

//go:generate mockgen -source=admin.go -destination=admin_mock.go -package=handlers

// AdminSession signs the admin in and out.
type AdminSession interface {
	SignIn(ctx context.Context, password string) (string, error)
	SignOut(ctx context.Context) error
}

// AdminConsole is the moderation side of the admin service.
type AdminConsole interface {
	Search(ctx context.Context, filter models.UserFilter) ([]models.User, error)
	Stats(ctx context.Context) (models.UserStats, error)
	ToggleStatus(ctx context.Context, id int) (*models.User, error)
}

// AdminSignInRequest is the admin login body.
// swagger:model AdminSignInRequest
type AdminSignInRequest struct {
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// AdminSignInResponse carries the admin token.
// swagger:model AdminSignInResponse
type AdminSignInResponse struct {
	// JWT token
	// default: JWT_TOKEN
	Token string `json:"token"`
}

// NewAdminSignInHandler returns an HTTP handler for admin sign-in.
// @Summary Admin sign-in
// @Tags admin
// @Accept json
// @Produce json
// @Param body body handlers.AdminSignInRequest true "Admin password"
// @Success 200 {object} handlers.AdminSignInResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Invalid password"
// @Failure 500 {object} handlers.ErrorResponse
// @Router /admin/signin [post]
func NewAdminSignInHandler(svc AdminSession) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AdminSignInRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		token, err := svc.SignIn(r.Context(), req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCredentials):
				writeError(w, http.StatusUnauthorized, "Invalid password")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, msgInternal)
			}
			return
		}

		writeJSON(w, http.StatusOK, AdminSignInResponse{Token: token})
	}
}

// NewAdminSignOutHandler returns an HTTP handler for admin sign-out.
// @Summary Admin sign-out
// @Tags admin
// @Success 204
// @Failure 401 "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse
// @Router /admin/signout [post]
// @Security BearerAuth
func NewAdminSignOutHandler(svc AdminSession) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.SignOut(r.Context()); err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, msgInternal)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// NewAdminUsersHandler returns an HTTP handler searching users.
// @Summary Search users
// @Tags admin
// @Produce json
// @Param q query string false "Name or email substring, case-insensitive"
// @Param type query string false "worker or employer"
// @Param status query string false "active or suspended"
// @Success 200 {array} models.User
// @Failure 401 "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse
// @Router /admin/users [get]
// @Security BearerAuth
func NewAdminUsersHandler(svc AdminConsole) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		filter := models.UserFilter{
			Query:  q.Get("q"),
			Type:   models.Role(q.Get("type")),
			Status: models.Status(q.Get("status")),
		}

		users, err := svc.Search(r.Context(), filter)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, msgInternal)
			return
		}
		writeJSON(w, http.StatusOK, users)
	}
}

// NewAdminStatsHandler returns an HTTP handler with directory statistics.
// @Summary User statistics
// @Tags admin
// @Produce json
// @Success 200 {object} models.UserStats
// @Failure 401 "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse
// @Router /admin/stats [get]
// @Security BearerAuth
func NewAdminStatsHandler(svc AdminConsole) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := svc.Stats(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, msgInternal)
			return
		}
		writeJSON(w, http.StatusOK, stats)
	}
}

// NewToggleStatusHandler returns an HTTP handler suspending or reactivating a user.
// @Summary Toggle user status
// @Tags admin
// @Produce json
// @Param id path int true "User id"
// @Success 200 {object} models.User
// @Failure 400 {object} handlers.ErrorResponse "Invalid id"
// @Failure 401 "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse
// @Router /admin/users/{id}/toggle-status [post]
// @Security BearerAuth
func NewToggleStatusHandler(svc AdminConsole) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := userIDParam(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidID)
			return
		}

		user, err := svc.ToggleStatus(r.Context(), id)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, msgInternal)
			return
		}
		if user == nil {
			writeError(w, http.StatusNotFound, msgNotFound)
			return
		}
		writeJSON(w, http.StatusOK, user)
	}
}

// RegisterAdminHandlers registers the admin routes. Everything except sign-in
// runs behind guard.
func RegisterAdminHandlers(
	r chi.Router,
	guard func(http.Handler) http.Handler,
	signIn, signOut, users, stats, toggle http.HandlerFunc,
) {
	r.Route("/admin", func(r chi.Router) {
		r.Post("/signin", signIn)
		r.Group(func(r chi.Router) {
			r.Use(guard)
			r.Post("/signout", signOut)
			r.Get("/users", users)
			r.Get("/stats", stats)
			r.Post("/users/{id}/toggle-status", toggle)
		})
	})
}
