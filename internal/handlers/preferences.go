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

//go:generate mockgen -source=preferences.go -destination=preferences_mock.go -package=handlers

// LanguagePreference reads and stores the UI language.
type LanguagePreference interface {
	Language(ctx context.Context) (models.Language, error)
	SetLanguage(ctx context.Context, lang models.Language) error
}

// LanguageBody is the request and response body of the language endpoints.
// swagger:model LanguageBody
type LanguageBody struct {
	// Language code: en, hi or kn
	// default: en
	Language models.Language `json:"language"`
}

// NewGetLanguageHandler returns an HTTP handler reporting the UI language.
// @Summary Get language
// @Tags preferences
// @Produce json
// @Success 200 {object} handlers.LanguageBody
// @Failure 500 {object} handlers.ErrorResponse
// @Router /preferences/language [get]
func NewGetLanguageHandler(svc LanguagePreference) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lang, err := svc.Language(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, msgInternal)
			return
		}
		writeJSON(w, http.StatusOK, LanguageBody{Language: lang})
	}
}

// NewSetLanguageHandler returns an HTTP handler storing the UI language.
// @Summary Set language
// @Tags preferences
// @Accept json
// @Produce json
// @Param body body handlers.LanguageBody true "Language"
// @Success 200 {object} handlers.LanguageBody
// @Failure 400 {object} handlers.ErrorResponse "Unsupported language"
// @Failure 500 {object} handlers.ErrorResponse
// @Router /preferences/language [put]
func NewSetLanguageHandler(svc LanguagePreference) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LanguageBody
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		if err := svc.SetLanguage(r.Context(), req.Language); err != nil {
			if errors.Is(err, services.ErrInvalidLanguage) {
				writeError(w, http.StatusBadRequest, "Unsupported language")
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, msgInternal)
			return
		}

		writeJSON(w, http.StatusOK, req)
	}
}

// RegisterLanguageHandlers registers the preference routes.
func RegisterLanguageHandlers(r chi.Router, get, set http.HandlerFunc) {
	r.Get("/preferences/language", get)
	r.Put("/preferences/language", set)
}
