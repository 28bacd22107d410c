package jobs

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"vidspark/internal/metrics"
	"vidspark/internal/queue"
	"vidspark/internal/worker"
	"vidspark/models"
)

// MessageSource yields queued job messages.
type MessageSource interface {
	Dequeue(ctx context.Context, timeout time.Duration) (models.JobMessage, error)
}

// Submitter runs jobs.
type Submitter interface {
	SubmitJob(job worker.Job) error
}

// Consumer moves messages from the queue into the worker pool.
type Consumer struct {
	Source       MessageSource
	Factory      *Factory
	Pool         Submitter
	Reporter     worker.StatusReporter
	PollInterval time.Duration
	RetryDelay   time.Duration
	Log          *logrus.Logger
}

// Run consumes until ctx is cancelled. Messages that cannot be turned into
// a job or submitted are marked FAILED and dropped.
func (c *Consumer) Run(ctx context.Context) {
	poll := c.PollInterval
	if poll <= 0 {
		poll = 5 * time.Second
	}
	retry := c.RetryDelay
	if retry <= 0 {
		retry = time.Second
	}

	c.Log.Info("Consumer: waiting for jobs")
	for ctx.Err() == nil {
		msg, err := c.Source.Dequeue(ctx, poll)
		if errors.Is(err, queue.ErrEmpty) {
			continue
		}
		if errors.Is(err, queue.ErrBadMessage) {
			c.Log.WithError(err).Error("Consumer: dropping undecodable message")
			metrics.RecordJob("unknown", models.JobFailed)
			continue
		}
		if err != nil {
			if ctx.Err() != nil {
				break
			}
			c.Log.WithError(err).Error("Consumer: dequeue failed")
			select {
			case <-ctx.Done():
			case <-time.After(retry):
			}
			continue
		}

		entry := c.Log.WithField("job_id", msg.JobID).WithField("job_type", msg.JobType)
		job, err := c.Factory.FromMessage(msg)
		if err != nil {
			entry.WithError(err).Error("Consumer: rejecting message")
			c.fail(ctx, msg, err)
			continue
		}
		if err := c.Pool.SubmitJob(job); err != nil {
			entry.WithError(err).Error("Consumer: could not submit job")
			c.fail(ctx, msg, err)
			continue
		}
		entry.Debug("Consumer: job submitted")
	}
	c.Log.Info("Consumer: stopped")
}

func (c *Consumer) fail(ctx context.Context, msg models.JobMessage, cause error) {
	metrics.RecordJob(msg.JobType, models.JobFailed)
	if c.Reporter == nil || msg.JobID == "" {
		return
	}
	if err := c.Reporter.UpdateJobStatus(context.WithoutCancel(ctx), msg.JobID, models.JobFailed, nil, cause.Error()); err != nil {
		c.Log.WithError(err).WithField("job_id", msg.JobID).Error("Consumer: failed to mark job as failed")
	}
}
