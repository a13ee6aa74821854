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

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockLoginer(ctrl)

	tests := []struct {
		name          string
		body          string
		mockSetup     func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "success",
			body: `{"email":"user@example.com"}`,
			mockSetup: func() {
				mockSvc.EXPECT().Login(gomock.Any(), "user@example.com").
					Return(&models.User{ID: 1, Email: "user@example.com"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "invalid JSON",
			body:          "{invalid json}",
			mockSetup:     func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
		{
			name: "empty email",
			body: `{"email":""}`,
			mockSetup: func() {
				mockSvc.EXPECT().Login(gomock.Any(), "").Return(nil, services.ErrEmptyEmail)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Email is required",
		},
		{
			name: "internal error",
			body: `{"email":"a@x.com"}`,
			mockSetup: func() {
				mockSvc.EXPECT().Login(gomock.Any(), "a@x.com").Return(nil, errors.New("db"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest(http.MethodPost, "/session", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			NewLoginHandler(mockSvc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, decodeError(t, w))
				return
			}
			var resp SessionResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.NotNil(t, resp.User)
			assert.Equal(t, 1, resp.User.ID)
		})
	}
}

func TestCurrentSessionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockSessionReader(ctrl)

	tests := []struct {
		name         string
		user         *models.User
		err          error
		expectedCode int
		expectedBody string
	}{
		{name: "logged in", user: &models.User{ID: 2, Name: "A"}, expectedCode: http.StatusOK, expectedBody: `{"user":{"id":2,"name":"A","email":"","registeredDate":"","lastActive":""}}`},
		{name: "anonymous", expectedCode: http.StatusOK, expectedBody: `{"user":null}`},
		{name: "internal error", err: errors.New("db"), expectedCode: http.StatusInternalServerError, expectedBody: `{"error":"Internal server error"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc.EXPECT().Current(gomock.Any()).Return(tt.user, tt.err)

			w := httptest.NewRecorder()
			NewCurrentSessionHandler(mockSvc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/session", nil))

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestLogoutHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockLogouter(ctrl)

	mockSvc.EXPECT().Logout(gomock.Any()).Return(nil)
	w := httptest.NewRecorder()
	NewLogoutHandler(mockSvc).ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/session", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	mockSvc.EXPECT().Logout(gomock.Any()).Return(errors.New("db"))
	w = httptest.NewRecorder()
	NewLogoutHandler(mockSvc).ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/session", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
