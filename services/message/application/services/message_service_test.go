package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghuser/orderdesk/pkg/paging"
	messagedomain "github.com/ghuser/orderdesk/services/message/domain"
	"github.com/ghuser/orderdesk/services/message/infrastructure/persistence/memory"
)

func TestMessageService_CRUD(t *testing.T) {
	svc := NewMessageService(memory.NewMessageRepository())
	ctx := context.Background()

	m, err := svc.Create(ctx, "ana@x.com", "first")
	require.NoError(t, err)
	assert.Equal(t, int64(1), m.ID)

	require.NoError(t, svc.Update(ctx, m.ID, "bo@x.com", "edited"))
	got, err := svc.GetByID(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, "edited", got.Content)
	require.NotNil(t, got.UpdatedBy)
	assert.Equal(t, "bo@x.com", *got.UpdatedBy)

	_, err = svc.Create(ctx, "", "second")
	require.NoError(t, err)
	messages, total, err := svc.List(ctx, paging.Opts{Limit: 1, Offset: 1})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, messages, 1)
	assert.Equal(t, "second", messages[0].Content)

	deleted, err := svc.Delete(ctx, m.ID)
	require.NoError(t, err)
	assert.True(t, deleted)
	got, err = svc.GetByID(ctx, m.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMessageService_Errors(t *testing.T) {
	svc := NewMessageService(memory.NewMessageRepository())
	ctx := context.Background()

	_, err := svc.Create(ctx, "", "  ")
	assert.ErrorIs(t, err, messagedomain.ErrInvalidMessage)

	_, err = svc.GetByID(ctx, -1)
	assert.ErrorIs(t, err, messagedomain.ErrInvalidMessage)

	err = svc.Update(ctx, 3, "", "x")
	assert.ErrorIs(t, err, messagedomain.ErrMessageNotFound)

	deleted, err := svc.Delete(ctx, 3)
	require.NoError(t, err)
	assert.False(t, deleted)

	_, _, err = svc.List(ctx, paging.Opts{Limit: -1})
	assert.ErrorIs(t, err, paging.ErrInvalidPage)
}
