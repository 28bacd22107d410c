package cache

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vidspark/internal/metrics"
	"vidspark/internal/timeline"
	"vidspark/models"
)

func setupMiniRedis(t *testing.T) (*miniredis.Miniredis, *TimelineCache) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return mr, NewTimelineCache(client, time.Minute, logger)
}

func sampleScenes() models.SceneCollection {
	return models.SceneCollection{
		0: {Text: "a", Captions: []models.CaptionToken{{Text: "a", Start: 0, End: 2}}},
		1: {Text: "b"},
	}
}

func lookups(result string) float64 {
	return testutil.ToFloat64(metrics.TimelineCacheLookups.WithLabelValues(result))
}

func TestTimelineCache_SetGet(t *testing.T) {
	mr, c := setupMiniRedis(t)
	ctx := context.Background()
	hits, misses := lookups("hit"), lookups("miss")

	scenes := sampleScenes()
	key, err := Key("video-1", 30, 5, scenes)
	require.NoError(t, err)

	_, ok := c.Get(ctx, key)
	assert.False(t, ok)

	want := timeline.Calculate(scenes, 30)
	require.NoError(t, c.Set(ctx, key, want))

	got, ok := c.Get(ctx, key)
	require.True(t, ok)
	assert.Equal(t, want, got)

	assert.Equal(t, hits+1, lookups("hit"))
	assert.Equal(t, misses+1, lookups("miss"))
	assert.Equal(t, time.Minute, mr.TTL(key))
}

func TestTimelineCache_Expiry(t *testing.T) {
	mr, c := setupMiniRedis(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "timeline:x", timeline.Timeline{FrameRate: 30}))
	mr.FastForward(2 * time.Minute)

	_, ok := c.Get(ctx, "timeline:x")
	assert.False(t, ok)
}

func TestTimelineCache_CorruptEntryIsMiss(t *testing.T) {
	mr, c := setupMiniRedis(t)
	require.NoError(t, mr.Set("timeline:bad", "{not json"))
	misses := lookups("miss")

	_, ok := c.Get(context.Background(), "timeline:bad")
	assert.False(t, ok)
	assert.Equal(t, misses+1, lookups("miss"))
}

func TestTimelineCache_RedisDownIsMiss(t *testing.T) {
	mr, c := setupMiniRedis(t)
	mr.Close()

	_, ok := c.Get(context.Background(), "timeline:any")
	assert.False(t, ok)
	assert.Error(t, c.Set(context.Background(), "timeline:any", timeline.Timeline{}))
}

func TestKey(t *testing.T) {
	scenes := sampleScenes()

	k1, err := Key("video-1", 30, 5, scenes)
	require.NoError(t, err)
	k2, err := Key("video-1", 30, 5, sampleScenes())
	require.NoError(t, err)
	assert.Equal(t, k1, k2)
	assert.Regexp(t, `^timeline:video-1:30:[0-9a-f]{16}$`, k1)

	k3, err := Key("video-1", 60, 5, scenes)
	require.NoError(t, err)
	assert.NotEqual(t, k1, k3)

	edited := sampleScenes()
	edited[1] = models.Scene{Text: "edited"}
	k4, err := Key("video-1", 30, 5, edited)
	require.NoError(t, err)
	assert.NotEqual(t, k1, k4)

	k5, err := Key("video-1", 30, 3.5, scenes)
	require.NoError(t, err)
	assert.NotEqual(t, k1, k5)
	assert.Regexp(t, `^timeline:video-1:30:[0-9a-f]{16}$`, k5)
}
