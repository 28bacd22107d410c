package handlers

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"vidspark/internal/timeline"
	"vidspark/models"
)

var validate = validator.New()

// VideoRepository is the record access handlers need.
type VideoRepository interface {
	GetVideo(ctx context.Context, id uuid.UUID) (*models.Video, error)
	CreateJobRecord(ctx context.Context, jobType string, inputPayload interface{}) (string, error)
	UpdateJobStatus(ctx context.Context, jobID string, status string, outputDetails interface{}, errorMessage string) error
	GetJob(ctx context.Context, jobID string) (*models.VideoJobStatus, error)
}

// TimelineCache stores computed timelines between preview requests.
type TimelineCache interface {
	Get(ctx context.Context, key string) (timeline.Timeline, bool)
	Set(ctx context.Context, key string, tl timeline.Timeline) error
}

// JobQueue hands jobs to the processor.
type JobQueue interface {
	Enqueue(ctx context.Context, msg models.JobMessage) error
}

// ApplicationHandler holds shared dependencies for handlers.
type ApplicationHandler struct {
	Videos VideoRepository
	Cache  TimelineCache // optional
	Queue  JobQueue
	Logger *logrus.Logger

	FrameRate           int
	DefaultSceneSeconds float64
}

// NewApplicationHandler creates a new ApplicationHandler with the given dependencies.
// cache may be nil, in which case every timeline is computed on request.
func NewApplicationHandler(videos VideoRepository, cache TimelineCache, queue JobQueue, logger *logrus.Logger, frameRate int, defaultSceneSeconds float64) *ApplicationHandler {
	return &ApplicationHandler{
		Videos:              videos,
		Cache:               cache,
		Queue:               queue,
		Logger:              logger,
		FrameRate:           frameRate,
		DefaultSceneSeconds: defaultSceneSeconds,
	}
}

func (h *ApplicationHandler) calculator(fps int) *timeline.Calculator {
	if fps <= 0 {
		fps = h.FrameRate
	}
	return timeline.New(timeline.WithFrameRate(fps), timeline.WithDefaultSceneDuration(h.DefaultSceneSeconds))
}
