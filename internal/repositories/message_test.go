package repositories

import (
	"context"
	"testing"

	"github.com/sbilibin2017/blueforce/internal/models"
	"github.com/sbilibin2017/blueforce/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageRepository(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()
	repo := NewMessageRepository(store)

	msgs, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, msgs)

	_, err = repo.Append(ctx, models.Message{From: "Employer", Text: "hi", Time: "10:00"})
	require.NoError(t, err)
	msgs, err = repo.Append(ctx, models.Message{From: "Employer", Text: "there", Time: "10:01"})
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "there", msgs[1].Text)

	raw, _, _ := store.Get(ctx, MessagesKey)
	assert.JSONEq(t, `[{"from":"Employer","text":"hi","time":"10:00"},{"from":"Employer","text":"there","time":"10:01"}]`, raw)

	require.NoError(t, store.Set(ctx, MessagesKey, "]["))
	msgs, err = repo.List(ctx)
	assert.NoError(t, err)
	assert.Empty(t, msgs)
}

func TestHireRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewHireRepository(storage.NewMemory())

	hired, err := repo.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, hired)
	assert.Empty(t, hired)

	require.NoError(t, repo.Replace(ctx, []models.User{{ID: 3, Name: "W", Type: models.RoleWorker}}))
	hired, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, hired, 1)
	assert.Equal(t, 3, hired[0].ID)
}
