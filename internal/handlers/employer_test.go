package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/blueforce/internal/models"
	"github.com/sbilibin2017/blueforce/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHireWorkersHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockHirer(ctrl)

	tests := []struct {
		name         string
		body         string
		mockSetup    func()
		expectedCode int
		expectedLen  int
	}{
		{
			name: "hire",
			body: `{"worker_ids":[1,3]}`,
			mockSetup: func() {
				mockSvc.EXPECT().HireWorkers(gomock.Any(), []int{1, 3}).
					Return([]models.User{{ID: 1}, {ID: 3}}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  2,
		},
		{
			name:         "invalid JSON",
			body:         `[1,3]`,
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "internal error",
			body: `{"worker_ids":[1]}`,
			mockSetup: func() {
				mockSvc.EXPECT().HireWorkers(gomock.Any(), []int{1}).Return(nil, errors.New("db"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest(http.MethodPost, "/employer/hires", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			NewHireWorkersHandler(mockSvc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var got []models.User
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
				assert.Len(t, got, tt.expectedLen)
			}
		})
	}
}

func TestHiredWorkersHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockHirer(ctrl)
	mockSvc.EXPECT().HiredWorkers(gomock.Any()).Return([]models.User{}, nil)

	w := httptest.NewRecorder()
	NewHiredWorkersHandler(mockSvc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employer/hires", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestSendMessageHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockMessenger(ctrl)
	sent := []models.Message{{From: "Employer", Text: "Please come at 9", Time: "08:30"}}

	tests := []struct {
		name         string
		body         string
		mockSetup    func()
		expectedCode int
	}{
		{
			name: "sent",
			body: `{"text":"Please come at 9"}`,
			mockSetup: func() {
				mockSvc.EXPECT().SendMessage(gomock.Any(), "Please come at 9").Return(sent, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "empty",
			body: `{"text":"  "}`,
			mockSetup: func() {
				mockSvc.EXPECT().SendMessage(gomock.Any(), "  ").Return(nil, services.ErrEmptyMessage)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "invalid JSON",
			body:         `{"text":`,
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "internal error",
			body: `{"text":"hi"}`,
			mockSetup: func() {
				mockSvc.EXPECT().SendMessage(gomock.Any(), "hi").Return(nil, errors.New("db"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest(http.MethodPost, "/employer/messages", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			NewSendMessageHandler(mockSvc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestMessagesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockMessenger(ctrl)
	mockSvc.EXPECT().Messages(gomock.Any()).Return([]models.Message{{From: "Employer", Text: "hi", Time: "10:00"}}, nil)

	w := httptest.NewRecorder()
	NewMessagesHandler(mockSvc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employer/messages", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"from":"Employer","text":"hi","time":"10:00"}]`, w.Body.String())
}
