package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"vidspark/internal/metrics"
	"vidspark/internal/timeline"
	"vidspark/models"
)

// BuildTimelineJob computes a video's timeline and stores it in
// video_timelines.
type BuildTimelineJob struct {
	JobID   string
	VideoID uuid.UUID

	store      VideoStore
	calculator *timeline.Calculator
	log        *logrus.Logger
}

// BuildTimelineOutput is written to the job's output_details.
type BuildTimelineOutput struct {
	FrameRate        int `json:"frame_rate"`
	DurationInFrames int `json:"duration_in_frames"`
	SceneCount       int `json:"scene_count"`
}

// ID returns the job id.
func (j *BuildTimelineJob) ID() string { return j.JobID }

// Type returns BUILD_TIMELINE.
func (j *BuildTimelineJob) Type() string { return models.JobTypeBuildTimeline }

// Execute loads the video, lays out its scenes and saves the result.
func (j *BuildTimelineJob) Execute(ctx context.Context) (interface{}, error) {
	video, err := j.store.GetVideo(ctx, j.VideoID)
	if err != nil {
		return nil, fmt.Errorf("load video %s: %w", j.VideoID, err)
	}

	tl := j.calculator.Calculate(video.Scenes)
	metrics.RecordTimeline(metrics.SourceJob, len(tl.Entries))

	record := models.VideoTimeline{
		VideoID:          j.VideoID,
		FrameRate:        tl.FrameRate,
		DurationInFrames: tl.DurationInFrames,
		Entries:          tl.Frames(),
		ComputedAt:       time.Now().UTC(),
	}
	if err := j.store.SaveTimeline(ctx, record); err != nil {
		return nil, fmt.Errorf("save timeline for video %s: %w", j.VideoID, err)
	}

	j.log.WithFields(logrus.Fields{
		"job_id":             j.JobID,
		"video_id":           j.VideoID,
		"duration_in_frames": tl.DurationInFrames,
	}).Info("Built video timeline")

	return BuildTimelineOutput{
		FrameRate:        tl.FrameRate,
		DurationInFrames: tl.DurationInFrames,
		SceneCount:       len(tl.Entries),
	}, nil
}
