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

func TestEmployerService_HireWorkers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	worker1 := &models.User{ID: 1, Name: "Demo User", Type: models.RoleWorker}
	worker3 := &models.User{ID: 3, Name: "Kiran", Type: models.RoleWorker}
	employer := &models.User{ID: 2, Name: "Asha", Type: models.RoleEmployer}

	tests := []struct {
		name       string
		ids        []int
		lookup     map[int]*models.User
		lookupErr  error
		replaceErr error
		wantIDs    []int
		wantErr    bool
	}{
		{
			name:    "workers in request order",
			ids:     []int{3, 1},
			lookup:  map[int]*models.User{1: worker1, 3: worker3},
			wantIDs: []int{3, 1},
		},
		{
			name:    "non-workers, unknown ids and duplicates skipped",
			ids:     []int{1, 2, 99, 1},
			lookup:  map[int]*models.User{1: worker1, 2: employer},
			wantIDs: []int{1},
		},
		{
			name:    "empty selection clears hires",
			ids:     nil,
			wantIDs: []int{},
		},
		{
			name:      "lookup error",
			ids:       []int{1},
			lookupErr: errors.New("boom"),
			wantErr:   true,
		},
		{
			name:       "replace error",
			ids:        []int{1},
			lookup:     map[int]*models.User{1: worker1},
			replaceErr: errors.New("boom"),
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUsers := services.NewMockUserReader(ctrl)
			mockHires := services.NewMockHireStore(ctrl)
			mockEvents := services.NewMockEventPublisher(ctrl)
			svc := services.NewEmployerService(mockUsers, mockHires, services.NewMockMessageStore(ctrl), mockEvents)

			mockUsers.EXPECT().GetByID(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, id int) (*models.User, error) {
					if tt.lookupErr != nil {
						return nil, tt.lookupErr
					}
					return tt.lookup[id], nil
				}).AnyTimes()

			if tt.lookupErr == nil {
				mockHires.EXPECT().Replace(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, workers []models.User) error {
						assert.Len(t, workers, len(tt.wantIDs))
						return tt.replaceErr
					})
			}
			if !tt.wantErr {
				mockEvents.EXPECT().Publish(gomock.Any(), gomock.Any()).
					Do(func(_ context.Context, e models.Event) {
						assert.Equal(t, models.EventWorkersHired, e.Type)
					})
			}

			hired, err := svc.HireWorkers(context.Background(), tt.ids)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			ids := make([]int, 0, len(hired))
			for _, u := range hired {
				assert.True(t, u.IsWorker())
				ids = append(ids, u.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestEmployerService_SendMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name      string
		text      string
		appendErr error
		wantErr   error
	}{
		{name: "message sent", text: "Please come at 9"},
		{name: "empty text", text: "", wantErr: services.ErrEmptyMessage},
		{name: "whitespace text", text: " \t ", wantErr: services.ErrEmptyMessage},
		{name: "store error", text: "hi", appendErr: errors.New("boom"), wantErr: errors.New("boom")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockMessages := services.NewMockMessageStore(ctrl)
			svc := services.NewEmployerService(services.NewMockUserReader(ctrl), services.NewMockHireStore(ctrl), mockMessages, nil)

			if tt.wantErr != services.ErrEmptyMessage {
				mockMessages.EXPECT().Append(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, msg models.Message) ([]models.Message, error) {
						assert.Equal(t, "Employer", msg.From)
						assert.Equal(t, tt.text, msg.Text)
						assert.Regexp(t, `^\d{2}:\d{2}$`, msg.Time)
						if tt.appendErr != nil {
							return nil, tt.appendErr
						}
						return []models.Message{msg}, nil
					})
			}

			msgs, err := svc.SendMessage(context.Background(), tt.text)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				return
			}
			require.NoError(t, err)
			require.Len(t, msgs, 1)
			assert.Equal(t, tt.text, msgs[0].Text)
		})
	}
}

func TestEmployerService_Lists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHires := services.NewMockHireStore(ctrl)
	mockMessages := services.NewMockMessageStore(ctrl)
	svc := services.NewEmployerService(services.NewMockUserReader(ctrl), mockHires, mockMessages, nil)

	hired := []models.User{{ID: 1, Type: models.RoleWorker}}
	msgs := []models.Message{{From: "Employer", Text: "hi", Time: "09:15"}}
	mockHires.EXPECT().List(gomock.Any()).Return(hired, nil)
	mockMessages.EXPECT().List(gomock.Any()).Return(msgs, nil)

	gotHired, err := svc.HiredWorkers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, hired, gotHired)

	gotMsgs, err := svc.Messages(context.Background())
	require.NoError(t, err)
	assert.Equal(t, msgs, gotMsgs)
}
