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

//go:generate mockgen -source=employer.go -destination=employer_mock.go -package=handlers

// Hirer performs bulk hires.
type Hirer interface {
	HireWorkers(ctx context.Context, ids []int) ([]models.User, error)
	HiredWorkers(ctx context.Context) ([]models.User, error)
}

// Messenger sends and lists employer messages.
type Messenger interface {
	SendMessage(ctx context.Context, text string) ([]models.Message, error)
	Messages(ctx context.Context) ([]models.Message, error)
}

// HireRequest selects workers to hire.
// swagger:model HireRequest
type HireRequest struct {
	// Worker ids. Ids of non-workers are ignored.
	// required: true
	WorkerIDs []int `json:"worker_ids"`
}

// MessageRequest is the body of a new message.
// swagger:model MessageRequest
type MessageRequest struct {
	// required: true
	// default: Please come at 9
	Text string `json:"text"`
}

// NewHireWorkersHandler returns an HTTP handler replacing the hired set.
// @Summary Hire workers
// @Tags employer
// @Accept json
// @Produce json
// @Param body body handlers.HireRequest true "Workers to hire"
// @Success 200 {array} models.User
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 500 {object} handlers.ErrorResponse
// @Router /employer/hires [post]
func NewHireWorkersHandler(svc Hirer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req HireRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		hired, err := svc.HireWorkers(r.Context(), req.WorkerIDs)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, msgInternal)
			return
		}
		writeJSON(w, http.StatusOK, hired)
	}
}

// NewHiredWorkersHandler returns an HTTP handler listing hired workers.
// @Summary List hired workers
// @Tags employer
// @Produce json
// @Success 200 {array} models.User
// @Failure 500 {object} handlers.ErrorResponse
// @Router /employer/hires [get]
func NewHiredWorkersHandler(svc Hirer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		hired, err := svc.HiredWorkers(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, msgInternal)
			return
		}
		writeJSON(w, http.StatusOK, hired)
	}
}

// NewSendMessageHandler returns an HTTP handler appending an employer message.
// @Summary Send message
// @Tags employer
// @Accept json
// @Produce json
// @Param body body handlers.MessageRequest true "Message"
// @Success 201 {array} models.Message "Whole conversation"
// @Failure 400 {object} handlers.ErrorResponse "Empty message"
// @Failure 500 {object} handlers.ErrorResponse
// @Router /employer/messages [post]
func NewSendMessageHandler(svc Messenger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req MessageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		msgs, err := svc.SendMessage(r.Context(), req.Text)
		if err != nil {
			if errors.Is(err, services.ErrEmptyMessage) {
				writeError(w, http.StatusBadRequest, "Message text is required")
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, msgInternal)
			return
		}
		writeJSON(w, http.StatusCreated, msgs)
	}
}

// NewMessagesHandler returns an HTTP handler listing the conversation.
// @Summary List messages
// @Tags employer
// @Produce json
// @Success 200 {array} models.Message
// @Failure 500 {object} handlers.ErrorResponse
// @Router /employer/messages [get]
func NewMessagesHandler(svc Messenger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		msgs, err := svc.Messages(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, msgInternal)
			return
		}
		writeJSON(w, http.StatusOK, msgs)
	}
}

// RegisterEmployerHandlers registers the employer dashboard routes.
func RegisterEmployerHandlers(r chi.Router, hire, hired, send, messages http.HandlerFunc) {
	r.Route("/employer", func(r chi.Router) {
		r.Post("/hires", hire)
		r.Get("/hires", hired)
		r.Post("/messages", send)
		r.Get("/messages", messages)
	})
}
