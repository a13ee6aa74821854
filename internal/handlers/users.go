package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/blueforce/internal/logger"
	"github.com/sbilibin2017/blueforce/internal/models"
)

//go:generate mockgen -source=users.go -destination=users_mock.go -package=handlers

// UserLister lists the directory.
type UserLister interface {
	List(ctx context.Context) ([]models.User, error)
}

// UserRegistrar adds users to the directory.
type UserRegistrar interface {
	Register(ctx context.Context, n models.NewUser) (*models.User, error)
}

// UserFinder looks users up.
type UserFinder interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id int) (*models.User, error)
}

// UserUpdater applies partial updates.
type UserUpdater interface {
	Update(ctx context.Context, id int, patch models.UserPatch) (*models.User, error)
}

// NewListUsersHandler returns an HTTP handler listing every user.
// @Summary List users
// @Description Returns all users in registration order
// @Tags users
// @Produce json
// @Success 200 {array} models.User
// @Failure 500 {object} handlers.ErrorResponse
// @Router /users [get]
func NewListUsersHandler(svc UserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, msgInternal)
			return
		}
		writeJSON(w, http.StatusOK, users)
	}
}

// NewRegisterUserHandler returns an HTTP handler registering a user.
// @Summary Register user
// @Description Adds a user with the next id. Duplicate emails are accepted.
// @Tags users
// @Accept json
// @Produce json
// @Param user body models.NewUser true "New user"
// @Success 201 {object} models.User
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body or user fields"
// @Failure 500 {object} handlers.ErrorResponse
// @Router /users [post]
func NewRegisterUserHandler(svc UserRegistrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.NewUser
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		user, err := svc.Register(r.Context(), req)
		if err != nil {
			if errors.Is(err, models.ErrInvalidUser) {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, msgInternal)
			return
		}

		writeJSON(w, http.StatusCreated, user)
	}
}

// NewLookupUserHandler returns an HTTP handler finding a user by exact email.
// @Summary Find user by email
// @Tags users
// @Produce json
// @Param email query string true "Email, exact match"
// @Success 200 {object} models.User
// @Failure 400 {object} handlers.ErrorResponse "Missing email"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse
// @Router /users/lookup [get]
func NewLookupUserHandler(svc UserFinder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email := r.URL.Query().Get("email")
		if email == "" {
			writeError(w, http.StatusBadRequest, "email is required")
			return
		}

		user, err := svc.FindByEmail(r.Context(), email)
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

// NewGetUserHandler returns an HTTP handler fetching a user by id.
// @Summary Get user
// @Tags users
// @Produce json
// @Param id path int true "User id"
// @Success 200 {object} models.User
// @Failure 400 {object} handlers.ErrorResponse "Invalid id"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse
// @Router /users/{id} [get]
func NewGetUserHandler(svc UserFinder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := userIDParam(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidID)
			return
		}

		user, err := svc.FindByID(r.Context(), id)
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

// NewUpdateUserHandler returns an HTTP handler applying a partial update.
// @Summary Update user
// @Description Merges the given fields into the user and touches lastActive
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User id"
// @Param patch body models.UserPatch true "Fields to change"
// @Success 200 {object} models.User
// @Failure 400 {object} handlers.ErrorResponse "Invalid id, body or resulting user"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse
// @Router /users/{id} [patch]
func NewUpdateUserHandler(svc UserUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := userIDParam(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidID)
			return
		}

		var patch models.UserPatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		user, err := svc.Update(r.Context(), id, patch)
		if err != nil {
			if errors.Is(err, models.ErrInvalidUser) {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
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

// RegisterUserHandlers registers the user directory routes.
func RegisterUserHandlers(r chi.Router, list, register, lookup, get, update http.HandlerFunc) {
	r.Route("/users", func(r chi.Router) {
		r.Get("/", list)
		r.Post("/", register)
		r.Get("/lookup", lookup)
		r.Get("/{id}", get)
		r.Patch("/{id}", update)
	})
}
