// Package cache keeps computed timelines in Redis so the preview player
// can re-request them on every render without recomputation.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"vidspark/internal/metrics"
	"vidspark/internal/timeline"
	"vidspark/models"
)

const keyPrefix = "timeline:"

// TimelineCache is a Redis-backed cache of computed timelines.
type TimelineCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *logrus.Logger
}

// RedisConfig holds Redis connection configuration.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// NewRedisClient connects to Redis and pings it.
func NewRedisClient(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}
	return client, nil
}

// NewTimelineCache wraps a connected client.
func NewTimelineCache(client *redis.Client, ttl time.Duration, log *logrus.Logger) *TimelineCache {
	return &TimelineCache{client: client, ttl: ttl, log: log}
}

// Key identifies a timeline by video, frame rate, default scene duration
// and scene content, so an edited video or a changed default never reads a
// stale entry.
func Key(videoID string, fps int, defaultSeconds float64, scenes models.SceneCollection) (string, error) {
	data, err := json.Marshal(scenes)
	if err != nil {
		return "", fmt.Errorf("hash scenes: %w", err)
	}
	h := sha256.New()
	fmt.Fprintf(h, "%g\n", defaultSeconds)
	h.Write(data)
	sum := h.Sum(nil)
	return fmt.Sprintf("%s%s:%d:%s", keyPrefix, videoID, fps, hex.EncodeToString(sum[:8])), nil
}

// Get returns the cached timeline. Redis failures and undecodable entries
// are logged and reported as misses.
func (c *TimelineCache) Get(ctx context.Context, key string) (timeline.Timeline, bool) {
	val, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.RecordCacheLookup(false)
		return timeline.Timeline{}, false
	}
	if err != nil {
		c.log.WithError(err).WithField("key", key).Warn("redis get failed")
		metrics.RecordCacheLookup(false)
		return timeline.Timeline{}, false
	}

	var tl timeline.Timeline
	if err := json.Unmarshal(val, &tl); err != nil {
		c.log.WithError(err).WithField("key", key).Warn("cached timeline is not valid JSON")
		metrics.RecordCacheLookup(false)
		return timeline.Timeline{}, false
	}

	metrics.RecordCacheLookup(true)
	return tl, true
}

// Set stores the timeline under key with the cache TTL.
func (c *TimelineCache) Set(ctx context.Context, key string, tl timeline.Timeline) error {
	data, err := json.Marshal(tl)
	if err != nil {
		return fmt.Errorf("marshal timeline: %w", err)
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}
