package models

import (
	"time"

	"github.com/google/uuid"
)

// Video represents a generated video record in the database.
// Scenes is produced upstream by the generation pipeline and only read here.
type Video struct {
	ID        uuid.UUID       `json:"id"`
	UserID    *string         `json:"user_id,omitempty"`
	Title     string          `json:"title"`
	Status    string          `json:"status"`
	Scenes    SceneCollection `json:"scenes"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// VideoTimeline is the persisted form of a computed timeline.
type VideoTimeline struct {
	VideoID          uuid.UUID       `json:"video_id"`
	FrameRate        int             `json:"frame_rate"`
	DurationInFrames int             `json:"duration_in_frames"`
	Entries          []TimelineFrame `json:"entries"`
	ComputedAt       time.Time       `json:"computed_at"`
}

// TimelineFrame is the frame placement of one scene.
type TimelineFrame struct {
	Index            int `json:"index"`
	StartFrame       int `json:"start_frame"`
	DurationInFrames int `json:"duration_in_frames"`
}
