package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	postgrest "github.com/supabase-community/postgrest-go"

	"vidspark/models"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("record not found")

const (
	videosTable    = "videos"
	timelinesTable = "video_timelines"
	jobStatusTable = "video_job_statuses"
)

// Client is the PostgREST-backed store for videos, timelines and job statuses.
//
// postgrest-go has no context support; ctx is accepted so callers keep
// the usual shape and is checked before each request.
type Client struct {
	rest *postgrest.Client
	log  *logrus.Logger
}

// New wraps an initialized PostgREST client.
func New(rest *postgrest.Client, log *logrus.Logger) *Client {
	return &Client{rest: rest, log: log}
}

// GetVideo loads one video record with its scenes.
func (c *Client) GetVideo(ctx context.Context, id uuid.UUID) (*models.Video, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var videos []models.Video
	_, err := c.rest.From(videosTable).
		Select("*", "", false).
		Eq("id", id.String()).
		Limit(1, "").
		ExecuteTo(&videos)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch video %s: %w", id, err)
	}
	if len(videos) == 0 {
		return nil, ErrNotFound
	}
	return &videos[0], nil
}

// SaveTimeline upserts the computed timeline of a video, one row per video.
func (c *Client) SaveTimeline(ctx context.Context, tl models.VideoTimeline) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var results []models.VideoTimeline
	_, err := c.rest.From(timelinesTable).
		Upsert(tl, "video_id", "representation", "").
		ExecuteTo(&results)
	if err != nil {
		return fmt.Errorf("failed to upsert timeline for video %s: %w", tl.VideoID, err)
	}

	c.log.WithFields(logrus.Fields{
		"video_id":           tl.VideoID,
		"frame_rate":         tl.FrameRate,
		"duration_in_frames": tl.DurationInFrames,
	}).Info("Saved video timeline")
	return nil
}

// CreateJobRecord creates a PENDING job record with a generated job id.
func (c *Client) CreateJobRecord(ctx context.Context, jobType string, inputPayload interface{}) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	jobID := uuid.NewString()

	payloadBytes, err := json.Marshal(inputPayload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal input payload: %w", err)
	}

	newRecord := models.VideoJobStatus{
		JobID:        jobID,
		JobType:      jobType,
		Status:       models.JobPending,
		InputPayload: payloadBytes,
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}

	var results []models.VideoJobStatus
	_, err = c.rest.From(jobStatusTable).Insert(newRecord, false, "", "representation", "").ExecuteTo(&results)
	if err != nil {
		return "", fmt.Errorf("failed to insert job record: %w", err)
	}
	if len(results) == 0 {
		return "", fmt.Errorf("no record returned after insert, job_id: %s", jobID)
	}

	c.log.WithFields(logrus.Fields{"job_id": jobID, "job_type": jobType}).Info("Created job record")
	return jobID, nil
}

// UpdateJobStatus sets the status of a job and, when given, its output
// details and error message.
func (c *Client) UpdateJobStatus(ctx context.Context, jobID string, status string, outputDetails interface{}, errorMessage string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	updateData := map[string]interface{}{
		"status":     status,
		"updated_at": time.Now().UTC(),
	}

	if outputDetails != nil {
		outputBytes, err := json.Marshal(outputDetails)
		if err != nil {
			return fmt.Errorf("failed to marshal output details: %w", err)
		}
		updateData["output_details"] = json.RawMessage(outputBytes)
	}
	if errorMessage != "" {
		updateData["error_message"] = errorMessage
	}

	var results []models.VideoJobStatus
	_, err := c.rest.From(jobStatusTable).Update(updateData, "representation", "").Eq("job_id", jobID).ExecuteTo(&results)
	if err != nil {
		return fmt.Errorf("failed to update job record %s: %w", jobID, err)
	}
	if len(results) == 0 {
		return fmt.Errorf("update job record %s: %w", jobID, ErrNotFound)
	}

	c.log.WithFields(logrus.Fields{"job_id": jobID, "status": status}).Info("Updated job record")
	return nil
}

// GetJob loads one job status record.
func (c *Client) GetJob(ctx context.Context, jobID string) (*models.VideoJobStatus, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var jobs []models.VideoJobStatus
	_, err := c.rest.From(jobStatusTable).
		Select("*", "", false).
		Eq("job_id", jobID).
		Limit(1, "").
		ExecuteTo(&jobs)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch job %s: %w", jobID, err)
	}
	if len(jobs) == 0 {
		return nil, ErrNotFound
	}
	return &jobs[0], nil
}
