package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/foodgram/internal/models"
)

func TestStorage_Subscriptions(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx := context.Background()
	factory := NewTestDataFactory(storage)
	u := factory.CreateUser(t)
	a := factory.CreateUser(t)
	b := factory.CreateUser(t)

	ids, err := storage.ListSubscriptionIDs(ctx, u.ID)
	require.NoError(t, err)
	assert.Empty(t, ids)
	assert.NotNil(t, ids)

	_, err = storage.CreateSubscription(ctx, u.ID, a.ID)
	require.NoError(t, err)
	_, err = storage.CreateSubscription(ctx, u.ID, b.ID)
	require.NoError(t, err)

	t.Run("exists is directed", func(t *testing.T) {
		ok, err := storage.SubscriptionExists(ctx, u.ID, a.ID)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = storage.SubscriptionExists(ctx, a.ID, u.ID)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("duplicate pair", func(t *testing.T) {
		_, err := storage.CreateSubscription(ctx, u.ID, a.ID)
		require.ErrorIs(t, err, models.ErrAlreadyExists)
	})

	t.Run("ids and users", func(t *testing.T) {
		ids, err := storage.ListSubscriptionIDs(ctx, u.ID)
		require.NoError(t, err)
		assert.ElementsMatch(t, []int64{a.ID, b.ID}, ids)

		users, err := storage.ListSubscriptions(ctx, u.ID, 10, 0)
		require.NoError(t, err)
		require.Len(t, users, 2)
		assert.Equal(t, a.ID, users[0].ID)

		users, err = storage.ListSubscriptions(ctx, u.ID, 1, 1)
		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, b.ID, users[0].ID)
	})

	t.Run("remove", func(t *testing.T) {
		n, err := storage.RemoveSubscription(ctx, u.ID, a.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		n, err = storage.RemoveSubscription(ctx, u.ID, a.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, n)

		ids, err := storage.ListSubscriptionIDs(ctx, u.ID)
		require.NoError(t, err)
		assert.Equal(t, []int64{b.ID}, ids)
	})
}
