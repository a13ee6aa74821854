package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/blueforce/internal/models"
	"github.com/sbilibin2017/blueforce/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerService_Available(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name    string
		stored  bool
		ok      bool
		err     error
		want    bool
		wantErr bool
	}{
		{name: "defaults to available", want: true},
		{name: "stored unavailable", stored: false, ok: true, want: false},
		{name: "stored available", stored: true, ok: true, want: true},
		{name: "read error", err: errors.New("boom"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSettings := services.NewMockWorkerSettings(ctrl)
			mockSettings.EXPECT().GetAvailability(gomock.Any()).Return(tt.stored, tt.ok, tt.err)

			got, err := services.NewWorkerService(mockSettings).Available(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWorkerService_ToggleAvailability(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSettings := services.NewMockWorkerSettings(ctrl)
	svc := services.NewWorkerService(mockSettings)

	gomock.InOrder(
		mockSettings.EXPECT().GetAvailability(gomock.Any()).Return(false, false, nil),
		mockSettings.EXPECT().SetAvailability(gomock.Any(), false).Return(nil),
		mockSettings.EXPECT().GetAvailability(gomock.Any()).Return(false, true, nil),
		mockSettings.EXPECT().SetAvailability(gomock.Any(), true).Return(errors.New("boom")),
	)

	got, err := svc.ToggleAvailability(context.Background())
	require.NoError(t, err)
	assert.False(t, got)

	_, err = svc.ToggleAvailability(context.Background())
	assert.Error(t, err)
}

func TestWorkerService_SkillVideo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name      string
		dataURI   string
		wantStore bool
		wantErr   error
	}{
		{name: "valid data uri", dataURI: "data:video/mp4;base64,AAAAGGZ0eXBtcDQy", wantStore: true},
		{name: "empty", dataURI: "", wantErr: models.ErrInvalidVideo},
		{name: "plain url", dataURI: "https://example.com/v.mp4", wantErr: models.ErrInvalidVideo},
		{name: "not base64", dataURI: "data:video/mp4;base64,@@@", wantErr: models.ErrInvalidVideo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSettings := services.NewMockWorkerSettings(ctrl)
			if tt.wantStore {
				mockSettings.EXPECT().SetSkillVideo(gomock.Any(), tt.dataURI).Return(nil)
			}

			err := services.NewWorkerService(mockSettings).SetSkillVideo(context.Background(), tt.dataURI)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}

	t.Run("get and remove", func(t *testing.T) {
		mockSettings := services.NewMockWorkerSettings(ctrl)
		svc := services.NewWorkerService(mockSettings)

		mockSettings.EXPECT().GetSkillVideo(gomock.Any()).Return("data:video/mp4;base64,AAAA", true, nil)
		mockSettings.EXPECT().RemoveSkillVideo(gomock.Any()).Return(nil)

		v, ok, err := svc.SkillVideo(context.Background())
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "data:video/mp4;base64,AAAA", v)
		assert.NoError(t, svc.RemoveSkillVideo(context.Background()))
	})
}
