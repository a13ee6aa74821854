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

//go:generate mockgen -source=worker.go -destination=worker_mock.go -package=handlers

// Availability reads and flips the worker's availability.
type Availability interface {
	Available(ctx context.Context) (bool, error)
	ToggleAvailability(ctx context.Context) (bool, error)
}

// SkillVideos manages the worker's skill video.
type SkillVideos interface {
	SkillVideo(ctx context.Context) (string, bool, error)
	SetSkillVideo(ctx context.Context, dataURI string) error
	RemoveSkillVideo(ctx context.Context) error
}

// AvailabilityResponse reports the worker's availability.
// swagger:model AvailabilityResponse
type AvailabilityResponse struct {
	// default: true
	Available bool `json:"available"`
}

// SkillVideoBody carries a skill video as a base64 data URI.
// swagger:model SkillVideoBody
type SkillVideoBody struct {
	// default: data:video/mp4;base64,AAAA
	Video string `json:"video"`
}

// NewGetAvailabilityHandler returns an HTTP handler reporting availability.
// @Summary Get availability
// @Tags worker
// @Produce json
// @Success 200 {object} handlers.AvailabilityResponse
// @Failure 500 {object} handlers.ErrorResponse
// @Router /worker/availability [get]
func NewGetAvailabilityHandler(svc Availability) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		available, err := svc.Available(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, msgInternal)
			return
		}
		writeJSON(w, http.StatusOK, AvailabilityResponse{Available: available})
	}
}

// NewToggleAvailabilityHandler returns an HTTP handler flipping availability.
// @Summary Toggle availability
// @Tags worker
// @Produce json
// @Success 200 {object} handlers.AvailabilityResponse
// @Failure 500 {object} handlers.ErrorResponse
// @Router /worker/availability/toggle [post]
func NewToggleAvailabilityHandler(svc Availability) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		available, err := svc.ToggleAvailability(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, msgInternal)
			return
		}
		writeJSON(w, http.StatusOK, AvailabilityResponse{Available: available})
	}
}

// NewGetSkillVideoHandler returns an HTTP handler serving the skill video.
// @Summary Get skill video
// @Tags worker
// @Produce json
// @Success 200 {object} handlers.SkillVideoBody
// @Failure 404 {object} handlers.ErrorResponse "No video uploaded"
// @Failure 500 {object} handlers.ErrorResponse
// @Router /worker/video [get]
func NewGetSkillVideoHandler(svc SkillVideos) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		video, ok, err := svc.SkillVideo(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, msgInternal)
			return
		}
		if !ok {
			writeError(w, http.StatusNotFound, "No video uploaded")
			return
		}
		writeJSON(w, http.StatusOK, SkillVideoBody{Video: video})
	}
}

// NewSetSkillVideoHandler returns an HTTP handler storing the skill video.
// @Summary Upload skill video
// @Tags worker
// @Accept json
// @Param body body handlers.SkillVideoBody true "Video as data URI"
// @Success 204
// @Failure 400 {object} handlers.ErrorResponse "Not a base64 data URI"
// @Failure 500 {object} handlers.ErrorResponse
// @Router /worker/video [put]
func NewSetSkillVideoHandler(svc SkillVideos) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SkillVideoBody
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		if err := svc.SetSkillVideo(r.Context(), req.Video); err != nil {
			if errors.Is(err, models.ErrInvalidVideo) {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, msgInternal)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// NewRemoveSkillVideoHandler returns an HTTP handler deleting the skill video.
// @Summary Remove skill video
// @Tags worker
// @Success 204
// @Failure 500 {object} handlers.ErrorResponse
// @Router /worker/video [delete]
func NewRemoveSkillVideoHandler(svc SkillVideos) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.RemoveSkillVideo(r.Context()); err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, msgInternal)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// RegisterWorkerHandlers registers the worker dashboard routes.
func RegisterWorkerHandlers(r chi.Router, getAvail, toggle, getVideo, setVideo, removeVideo http.HandlerFunc) {
	r.Route("/worker", func(r chi.Router) {
		r.Get("/availability", getAvail)
		r.Post("/availability/toggle", toggle)
		r.Get("/video", getVideo)
		r.Put("/video", setVideo)
		r.Delete("/video", removeVideo)
	})
}
