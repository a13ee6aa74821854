package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/blueforce/internal/models"
	"github.com/sbilibin2017/blueforce/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestPreferenceService_Language(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name    string
		stored  string
		ok      bool
		err     error
		want    models.Language
		wantErr bool
	}{
		{name: "nothing stored", want: models.LanguageEnglish},
		{name: "hindi stored", stored: "hi", ok: true, want: models.LanguageHindi},
		{name: "unsupported stored value", stored: "fr", ok: true, want: models.LanguageEnglish},
		{name: "read error", err: errors.New("boom"), want: models.LanguageEnglish, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSettings := services.NewMockLanguageSettings(ctrl)
			mockSettings.EXPECT().GetLanguage(gomock.Any()).Return(tt.stored, tt.ok, tt.err)

			lang, err := services.NewPreferenceService(mockSettings).Language(context.Background())
			assert.Equal(t, tt.want, lang)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPreferenceService_SetLanguage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name     string
		lang     models.Language
		storeErr error
		wantErr  error
	}{
		{name: "kannada", lang: models.LanguageKannada},
		{name: "unsupported", lang: "de", wantErr: services.ErrInvalidLanguage},
		{name: "empty", lang: "", wantErr: services.ErrInvalidLanguage},
		{name: "store error", lang: models.LanguageHindi, storeErr: errors.New("boom"), wantErr: errors.New("boom")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSettings := services.NewMockLanguageSettings(ctrl)
			if tt.lang.Supported() {
				mockSettings.EXPECT().SetLanguage(gomock.Any(), string(tt.lang)).Return(tt.storeErr)
			}

			err := services.NewPreferenceService(mockSettings).SetLanguage(context.Background(), tt.lang)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				return
			}
			assert.NoError(t, err)
		})
	}
}
