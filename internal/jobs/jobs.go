package jobs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"vidspark/internal/timeline"
	"vidspark/internal/worker"
	"vidspark/models"
)

// ErrUnknownJobType is returned for queue messages no job handles.
var ErrUnknownJobType = errors.New("unknown job type")

// VideoStore is the record access jobs need.
type VideoStore interface {
	GetVideo(ctx context.Context, id uuid.UUID) (*models.Video, error)
	SaveTimeline(ctx context.Context, tl models.VideoTimeline) error
}

// AudioResolver turns a scene voice reference into a URL ffprobe can open.
type AudioResolver interface {
	Resolve(ctx context.Context, ref string) (string, error)
}

// DurationProber measures media length.
type DurationProber interface {
	MediaDuration(ctx context.Context, input string) (time.Duration, error)
}

// Factory builds jobs from queue messages, sharing their dependencies.
type Factory struct {
	Store               VideoStore
	Resolver            AudioResolver
	Prober              DurationProber
	DefaultFrameRate    int
	DefaultSceneSeconds float64
	ProbeConcurrency    int
	Log                 *logrus.Logger
}

// FromMessage returns the job described by msg.
func (f *Factory) FromMessage(msg models.JobMessage) (worker.Job, error) {
	videoID, err := uuid.Parse(msg.VideoID)
	if err != nil {
		return nil, fmt.Errorf("job %s: invalid video id %q: %w", msg.JobID, msg.VideoID, err)
	}

	fps := msg.FrameRate
	if fps <= 0 {
		fps = f.DefaultFrameRate
	}
	calc := timeline.New(timeline.WithFrameRate(fps), timeline.WithDefaultSceneDuration(f.DefaultSceneSeconds))

	switch msg.JobType {
	case models.JobTypeBuildTimeline:
		return &BuildTimelineJob{
			JobID:      msg.JobID,
			VideoID:    videoID,
			store:      f.Store,
			calculator: calc,
			log:        f.Log,
		}, nil
	case models.JobTypeProbeSceneAudio:
		return &ProbeSceneAudioJob{
			JobID:       msg.JobID,
			VideoID:     videoID,
			store:       f.Store,
			resolver:    f.Resolver,
			prober:      f.Prober,
			calculator:  calc,
			concurrency: f.ProbeConcurrency,
			log:         f.Log,
		}, nil
	default:
		return nil, fmt.Errorf("job %s: %w: %q", msg.JobID, ErrUnknownJobType, msg.JobType)
	}
}
