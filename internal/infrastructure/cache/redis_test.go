package cache

import (
	"context"
	"testing"
	"time"

	"skill-fit/internal/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Score int    `json:"score"`
	Tier  string `json:"tier"`
}

func newTestCache(t *testing.T) (*Redis, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedisWithClient(client, logger.NewTest(t), time.Minute), mr
}

func TestRedis_SetGetJSON(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.SetJSON(ctx, "eval:42", payload{Score: 83, Tier: "MIDDLE"}, time.Minute))

	var got payload
	found, err := c.GetJSON(ctx, "eval:42", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 83, got.Score)
	assert.Equal(t, "MIDDLE", got.Tier)
}

func TestRedis_GetJSON_Miss(t *testing.T) {
	c, _ := newTestCache(t)

	var got payload
	found, err := c.GetJSON(context.Background(), "missing", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedis_Delete(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.SetJSON(ctx, "k", payload{Score: 1}, time.Minute))
	require.NoError(t, c.Delete(ctx, "k"))

	var got payload
	found, err := c.GetJSON(ctx, "k", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedis_TTLApplied(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.SetJSON(ctx, "k", payload{Score: 1}, 30*time.Second))

	mr.FastForward(31 * time.Second)

	var got payload
	found, err := c.GetJSON(ctx, "k", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedis_UnavailableBypasses(t *testing.T) {
	c := NewRedisWithClient(nil, logger.NewTest(t), time.Minute)
	ctx := context.Background()

	assert.NoError(t, c.SetJSON(ctx, "k", payload{}, time.Minute))

	var got payload
	found, err := c.GetJSON(ctx, "k", &got)
	assert.NoError(t, err)
	assert.False(t, found)

	assert.NoError(t, c.Delete(ctx, "k"))
}
