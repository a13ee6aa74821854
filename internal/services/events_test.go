package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/blueforce/internal/models"
	"github.com/sbilibin2017/blueforce/internal/services"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKafkaEventPublisher_Publish(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	event := models.Event{
		EventID:   "e-1",
		Type:      models.EventUserRegistered,
		UserID:    7,
		Timestamp: 1700000000,
		Payload:   json.RawMessage(`{"name":"Ravi"}`),
	}

	t.Run("writes keyed json message", func(t *testing.T) {
		mockWriter := services.NewMockKafkaWriter(ctrl)
		mockWriter.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
				require.Len(t, msgs, 1)
				assert.Equal(t, "7", string(msgs[0].Key))

				var got models.Event
				require.NoError(t, json.Unmarshal(msgs[0].Value, &got))
				assert.Equal(t, event.Type, got.Type)
				assert.JSONEq(t, `{"name":"Ravi"}`, string(got.Payload))
				return nil
			})

		services.NewKafkaEventPublisher(mockWriter).Publish(context.Background(), event)
	})

	t.Run("write error is swallowed", func(t *testing.T) {
		mockWriter := services.NewMockKafkaWriter(ctrl)
		mockWriter.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

		assert.NotPanics(t, func() {
			services.NewKafkaEventPublisher(mockWriter).Publish(context.Background(), event)
		})
	})

	t.Run("nil writer skips", func(t *testing.T) {
		p := services.NewKafkaEventPublisher(nil)
		assert.NotPanics(t, func() { p.Publish(context.Background(), event) })
		assert.NoError(t, p.Close())
	})

	t.Run("close delegates", func(t *testing.T) {
		mockWriter := services.NewMockKafkaWriter(ctrl)
		mockWriter.EXPECT().Close().Return(nil)
		assert.NoError(t, services.NewKafkaEventPublisher(mockWriter).Close())
	})
}
