// Package queue carries job messages from the API to the processor over a
// Redis list.
package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"vidspark/models"
)

// DefaultKey is the Redis list jobs are pushed to.
const DefaultKey = "vidspark:jobs"

var (
	// ErrEmpty is returned by Dequeue when no message arrived before the timeout.
	ErrEmpty = errors.New("queue empty")
	// ErrBadMessage is returned by Dequeue when the popped message cannot be
	// decoded. The message is gone from the list.
	ErrBadMessage = errors.New("undecodable job message")
)

// Queue is a FIFO of job messages: LPUSH on one end, BRPOP on the other.
type Queue struct {
	client *redis.Client
	key    string
}

// New returns a queue on the given list key.
func New(client *redis.Client, key string) *Queue {
	if key == "" {
		key = DefaultKey
	}
	return &Queue{client: client, key: key}
}

// Enqueue appends a message.
func (q *Queue) Enqueue(ctx context.Context, msg models.JobMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal job message: %w", err)
	}
	if err := q.client.LPush(ctx, q.key, data).Err(); err != nil {
		return fmt.Errorf("enqueue job %s: %w", msg.JobID, err)
	}
	return nil
}

// Dequeue blocks up to timeout for the oldest message.
func (q *Queue) Dequeue(ctx context.Context, timeout time.Duration) (models.JobMessage, error) {
	res, err := q.client.BRPop(ctx, timeout, q.key).Result()
	if errors.Is(err, redis.Nil) {
		return models.JobMessage{}, ErrEmpty
	}
	if err != nil {
		return models.JobMessage{}, fmt.Errorf("dequeue: %w", err)
	}

	// BRPOP replies [key, value].
	var msg models.JobMessage
	if err := json.Unmarshal([]byte(res[1]), &msg); err != nil {
		return models.JobMessage{}, fmt.Errorf("%w: %v: %q", ErrBadMessage, err, res[1])
	}
	return msg, nil
}
