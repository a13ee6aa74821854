package services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/blueforce/internal/logger"
	"github.com/sbilibin2017/blueforce/internal/models"
)

//go:generate mockgen -source=preferences.go -destination=preferences_mock.go -package=services

// ErrInvalidLanguage is returned for an unsupported language code.
var ErrInvalidLanguage = errors.New("unsupported language")

// LanguageSettings stores the UI language preference.
type LanguageSettings interface {
	GetLanguage(ctx context.Context) (string, bool, error)
	SetLanguage(ctx context.Context, code string) error
}

// PreferenceService manages the UI language.
type PreferenceService struct {
	settings LanguageSettings
}

// NewPreferenceService creates a new PreferenceService.
func NewPreferenceService(settings LanguageSettings) *PreferenceService {
	return &PreferenceService{settings: settings}
}

// Language returns the stored language, or the default when none is stored
// or the stored value is not supported.
func (svc *PreferenceService) Language(ctx context.Context) (models.Language, error) {
	code, ok, err := svc.settings.GetLanguage(ctx)
	if err != nil {
		logger.Log.Errorw("failed to read language", "err", err)
		return models.DefaultLanguage, err
	}

	lang := models.Language(code)
	if !ok || !lang.Supported() {
		return models.DefaultLanguage, nil
	}
	return lang, nil
}

// SetLanguage stores the language preference.
func (svc *PreferenceService) SetLanguage(ctx context.Context, lang models.Language) error {
	if !lang.Supported() {
		return ErrInvalidLanguage
	}
	if err := svc.settings.SetLanguage(ctx, string(lang)); err != nil {
		logger.Log.Errorw("failed to store language", "lang", lang, "err", err)
		return err
	}
	return nil
}
