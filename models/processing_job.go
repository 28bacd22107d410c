package models

import (
	"encoding/json"
	"time"
)

// Job statuses as stored in video_job_statuses.status.
const (
	JobPending    = "PENDING"
	JobProcessing = "PROCESSING"
	JobCompleted  = "COMPLETED"
	JobFailed     = "FAILED"
)

// Job types understood by the processor.
const (
	JobTypeBuildTimeline   = "BUILD_TIMELINE"
	JobTypeProbeSceneAudio = "PROBE_SCENE_AUDIO"
)

// VideoJobStatus maps to the video_job_statuses table.
// JSONB columns are kept as raw JSON; nullable columns are pointers.
type VideoJobStatus struct {
	JobID         string          `json:"job_id"`
	JobType       string          `json:"job_type"`
	Status        string          `json:"status"`
	InputPayload  json.RawMessage `json:"input_payload,omitempty"`
	OutputDetails json.RawMessage `json:"output_details,omitempty"`
	ErrorMessage  *string         `json:"error_message,omitempty"`
	CreatedAt     time.Time       `json:"created_at,omitempty"`
	UpdatedAt     time.Time       `json:"updated_at,omitempty"`
}

// JobMessage is what travels over the job queue.
type JobMessage struct {
	JobID     string `json:"job_id"`
	JobType   string `json:"job_type"`
	VideoID   string `json:"video_id"`
	FrameRate int    `json:"frame_rate,omitempty"`
}
