package conversation

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"warequote/internal/errors"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	s := NewSession("user-1")
	s.State = StateGatheringRequirements
	require.NoError(t, store.Put(ctx, s))

	got, err := store.Get(ctx, s.ID.String())
	require.NoError(t, err)
	assert.Equal(t, s.ID, got.ID)
	assert.Equal(t, StateGatheringRequirements, got.State)

	require.NoError(t, store.Delete(ctx, s.ID.String()))
	_, err = store.Get(ctx, s.ID.String())
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeStore))
}

func TestMemoryStoreListExpired(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	stale := NewSession("user-1")
	stale.UpdatedAt = time.Now().Add(-2 * time.Hour)
	fresh := NewSession("user-2")
	require.NoError(t, store.Put(ctx, stale))
	require.NoError(t, store.Put(ctx, fresh))

	ids, err := store.ListExpired(ctx, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	require.Len(t, ids, 1)
	assert.Equal(t, stale.ID.String(), ids[0])
}

func TestRedisStoreRoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewRedisStore(client, time.Hour)
	ctx := context.Background()

	s := NewSession("user-9")
	s.State = StateQuoteGenerated
	s.Append(RoleCustomer, "pallet storage please")
	require.NoError(t, store.Put(ctx, s))

	got, err := store.Get(ctx, s.ID.String())
	require.NoError(t, err)
	assert.Equal(t, s.ID, got.ID)
	assert.Equal(t, StateQuoteGenerated, got.State)
	require.Len(t, got.History, 1)
	assert.Equal(t, "pallet storage please", got.History[0].Content)

	// TTL refreshes on Put.
	mr.FastForward(30 * time.Minute)
	require.NoError(t, store.Put(ctx, got))
	mr.FastForward(45 * time.Minute)
	_, err = store.Get(ctx, s.ID.String())
	require.NoError(t, err, "session should survive within the refreshed TTL")

	mr.FastForward(2 * time.Hour)
	_, err = store.Get(ctx, s.ID.String())
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeStore))
}

func TestRedisStoreDelete(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewRedisStore(client, time.Hour)
	ctx := context.Background()

	s := NewSession("user-3")
	require.NoError(t, store.Put(ctx, s))
	require.NoError(t, store.Delete(ctx, s.ID.String()))
	_, err := store.Get(ctx, s.ID.String())
	require.Error(t, err)
}
