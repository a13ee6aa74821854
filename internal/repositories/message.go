package repositories

import (
	"context"
	"errors"
	"sync"

	"github.com/sbilibin2017/blueforce/internal/logger"
	"github.com/sbilibin2017/blueforce/internal/models"
	"github.com/sbilibin2017/blueforce/internal/storage"
)

// MessageRepository keeps the employer-to-worker conversation as a JSON array.
type MessageRepository struct {
	store storage.Storage
	mu    sync.Mutex
}

func NewMessageRepository(store storage.Storage) *MessageRepository {
	return &MessageRepository{store: store}
}

// List returns all messages, oldest first. Unreadable data reads as empty.
func (r *MessageRepository) List(ctx context.Context) ([]models.Message, error) {
	var msgs []models.Message
	_, err := storage.GetJSON(ctx, r.store, MessagesKey, &msgs)
	if errors.Is(err, storage.ErrMalformed) {
		logger.Log.Warnw("messages unreadable, treating as empty", "key", MessagesKey, "error", err)
		return []models.Message{}, nil
	}
	if err != nil {
		return []models.Message{}, err
	}
	if msgs == nil {
		msgs = []models.Message{}
	}
	return msgs, nil
}

// Append adds msg to the end of the conversation and returns the full list.
func (r *MessageRepository) Append(ctx context.Context, msg models.Message) ([]models.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	msgs, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	msgs = append(msgs, msg)
	if err := storage.SetJSON(ctx, r.store, MessagesKey, msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}
