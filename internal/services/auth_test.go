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

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	existing := &models.User{ID: 1, Name: "Demo User", Email: "user@example.com", Type: models.RoleWorker}
	created := &models.User{ID: 2, Name: "new", Email: "new@x.com"}

	tests := []struct {
		name       string
		email      string
		found      *models.User
		readerErr  error
		saved      *models.User
		writerErr  error
		sessionErr error
		want       *models.User
		wantErr    error
	}{
		{
			name:  "existing user",
			email: "user@example.com",
			found: existing,
			want:  existing,
		},
		{
			name:  "unknown email is auto-registered",
			email: "new@x.com",
			saved: created,
			want:  created,
		},
		{
			name:    "empty email",
			email:   "",
			wantErr: services.ErrEmptyEmail,
		},
		{
			name:    "blank email",
			email:   "   ",
			wantErr: services.ErrEmptyEmail,
		},
		{
			name:      "reader error",
			email:     "user@example.com",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:      "writer error",
			email:     "new@x.com",
			writerErr: errors.New("save error"),
			wantErr:   errors.New("save error"),
		},
		{
			name:       "session error",
			email:      "user@example.com",
			found:      existing,
			sessionErr: errors.New("session error"),
			wantErr:    errors.New("session error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockUserReader(ctrl)
			mockWriter := services.NewMockUserWriter(ctrl)
			mockSession := services.NewMockSessionStore(ctrl)
			mockEvents := services.NewMockEventPublisher(ctrl)
			svc := services.NewAuthService(mockReader, mockWriter, mockSession, mockEvents)

			if tt.wantErr != services.ErrEmptyEmail {
				mockReader.EXPECT().GetByEmail(gomock.Any(), tt.email).Return(tt.found, tt.readerErr)
			}
			if tt.found == nil && tt.readerErr == nil && tt.wantErr != services.ErrEmptyEmail {
				mockWriter.EXPECT().
					Save(gomock.Any(), models.NewUser{Name: "new", Email: "new@x.com"}).
					Return(tt.saved, tt.writerErr)
				if tt.writerErr == nil {
					mockEvents.EXPECT().Publish(gomock.Any(), gomock.Any()).
						Do(func(_ context.Context, e models.Event) {
							assert.Equal(t, models.EventUserRegistered, e.Type)
						})
				}
			}
			if tt.want != nil || tt.sessionErr != nil {
				mockSession.EXPECT().Set(gomock.Any(), gomock.Any()).Return(tt.sessionErr)
			}
			if tt.want != nil {
				mockEvents.EXPECT().Publish(gomock.Any(), gomock.Any()).
					Do(func(_ context.Context, e models.Event) {
						assert.Equal(t, models.EventSessionLogin, e.Type)
						assert.Equal(t, tt.want.ID, e.UserID)
					})
			}

			user, err := svc.Login(context.Background(), tt.email)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, user)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, user)
		})
	}
}

func TestAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name     string
		current  *models.User
		getErr   error
		clearErr error
		wantErr  bool
	}{
		{name: "logged in", current: &models.User{ID: 3}},
		{name: "no session is a no-op"},
		{name: "read error", getErr: errors.New("boom"), wantErr: true},
		{name: "clear error", current: &models.User{ID: 3}, clearErr: errors.New("boom"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSession := services.NewMockSessionStore(ctrl)
			mockEvents := services.NewMockEventPublisher(ctrl)
			svc := services.NewAuthService(services.NewMockUserReader(ctrl), services.NewMockUserWriter(ctrl), mockSession, mockEvents)

			mockSession.EXPECT().Get(gomock.Any()).Return(tt.current, tt.getErr)
			if tt.getErr == nil {
				mockSession.EXPECT().Clear(gomock.Any()).Return(tt.clearErr)
			}
			if tt.current != nil && tt.clearErr == nil {
				mockEvents.EXPECT().Publish(gomock.Any(), gomock.Any()).
					Do(func(_ context.Context, e models.Event) {
						assert.Equal(t, models.EventSessionLogout, e.Type)
						assert.Equal(t, tt.current.ID, e.UserID)
					})
			}

			err := svc.Logout(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestAuthService_Current(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSession := services.NewMockSessionStore(ctrl)
	svc := services.NewAuthService(services.NewMockUserReader(ctrl), services.NewMockUserWriter(ctrl), mockSession, nil)

	u := &models.User{ID: 1}
	mockSession.EXPECT().Get(gomock.Any()).Return(u, nil)
	mockSession.EXPECT().Get(gomock.Any()).Return(nil, nil)
	mockSession.EXPECT().Get(gomock.Any()).Return(nil, errors.New("boom"))

	got, err := svc.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, u, got)

	got, err = svc.Current(context.Background())
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = svc.Current(context.Background())
	assert.Error(t, err)
}
