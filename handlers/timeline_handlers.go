package handlers

import (
	"bytes"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"vidspark/internal/cache"
	"vidspark/internal/metrics"
	"vidspark/internal/timeline"
	"vidspark/models"
	"vidspark/utils"
)

const defaultCaptionChars = 32

// TimelineRequest is the body of POST /timeline.
type TimelineRequest struct {
	FrameRate *int                   `json:"frame_rate,omitempty" validate:"omitempty,gte=1,lte=240"`
	Scenes    models.SceneCollection `json:"scenes" validate:"required"`
}

// TimelineResponse is a computed timeline as returned by the API.
type TimelineResponse struct {
	VideoID *uuid.UUID `json:"video_id,omitempty"`
	timeline.Timeline
	DurationSeconds float64 `json:"duration_seconds"`
	Cached          bool    `json:"cached"`
}

// TimelineSuccessResponse documents the timeline responses.
type TimelineSuccessResponse struct {
	Status string           `json:"status"`
	Data   TimelineResponse `json:"data"`
}

func newTimelineResponse(videoID *uuid.UUID, tl timeline.Timeline, cached bool) TimelineResponse {
	return TimelineResponse{
		VideoID:         videoID,
		Timeline:        tl,
		DurationSeconds: tl.Seconds(),
		Cached:          cached,
	}
}

// CalculateTimeline godoc
// @Summary Compute a timeline from scenes
// @Description Lays the given scenes out at the requested frame rate without touching storage.
// @Tags timeline
// @Accept json
// @Produce json
// @Param request body TimelineRequest true "Scenes keyed by index"
// @Success 200 {object} TimelineSuccessResponse
// @Failure 400 {object} ErrorResponse "Invalid body or frame rate"
// @Router /timeline [post]
func (h *ApplicationHandler) CalculateTimeline(c *fiber.Ctx) error {
	var payload TimelineRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "Cannot parse JSON: "+err.Error())
	}
	if err := validate.Struct(payload); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, utils.ValidationMessage(err))
	}

	fps := h.FrameRate
	if payload.FrameRate != nil {
		fps = *payload.FrameRate
	}

	tl := h.calculator(fps).Calculate(payload.Scenes)
	metrics.RecordTimeline(metrics.SourceRequest, len(tl.Entries))

	return utils.RespondWithJSON(c, fiber.StatusOK, newTimelineResponse(nil, tl, false))
}

// GetVideoTimeline godoc
// @Summary Get a video's timeline
// @Description Computes, or reads from cache, the frame placement of every scene of a stored video.
// @Tags timeline
// @Produce json
// @Param videoId path string true "Video ID"
// @Param fps query int false "Frame rate (1-240), defaults to the configured rate"
// @Success 200 {object} TimelineSuccessResponse
// @Failure 400 {object} ErrorResponse "Invalid video ID or frame rate"
// @Failure 404 {object} ErrorResponse "Video not found"
// @Router /videos/{videoId}/timeline [get]
func (h *ApplicationHandler) GetVideoTimeline(c *fiber.Ctx) error {
	fps, err := queryInt(c, "fps", h.FrameRate, maxFrameRate)
	if err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, err.Error())
	}

	video, err := h.loadVideo(c)
	if err != nil {
		return err
	}

	tl, cached := h.videoTimeline(c, video, fps)
	return utils.RespondWithJSON(c, fiber.StatusOK, newTimelineResponse(&video.ID, tl, cached))
}

// GetVideoCaptions godoc
// @Summary Get a video's captions as SubRip
// @Description Places every spoken word on the video timeline and groups words into caption lines.
// @Tags timeline
// @Produce plain
// @Param videoId path string true "Video ID"
// @Param fps query int false "Frame rate (1-240)"
// @Param max_chars query int false "Maximum characters per caption line (1-200)"
// @Success 200 {string} string "SRT document"
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Failure 404 {object} ErrorResponse "Video not found"
// @Router /videos/{videoId}/captions.srt [get]
func (h *ApplicationHandler) GetVideoCaptions(c *fiber.Ctx) error {
	fps, err := queryInt(c, "fps", h.FrameRate, maxFrameRate)
	if err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, err.Error())
	}
	maxChars, err := queryInt(c, "max_chars", defaultCaptionChars, 200)
	if err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, err.Error())
	}

	video, err := h.loadVideo(c)
	if err != nil {
		return err
	}

	tl, _ := h.videoTimeline(c, video, fps)

	var buf bytes.Buffer
	if err := timeline.WriteSRT(&buf, timeline.GroupCues(tl.Cues(), maxChars)); err != nil {
		h.Logger.WithError(err).Error("Error rendering captions")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, "Could not render captions")
	}

	c.Set(fiber.HeaderContentType, "application/x-subrip; charset=utf-8")
	return c.Status(fiber.StatusOK).Send(buf.Bytes())
}

// videoTimeline returns the timeline of video at fps, from the cache when
// possible. Cache failures only cost a recomputation.
func (h *ApplicationHandler) videoTimeline(c *fiber.Ctx, video *models.Video, fps int) (timeline.Timeline, bool) {
	var key string
	if h.Cache != nil {
		k, err := cache.Key(video.ID.String(), fps, h.DefaultSceneSeconds, video.Scenes)
		if err != nil {
			h.Logger.WithError(err).Warn("Could not build timeline cache key")
		} else {
			key = k
			if tl, ok := h.Cache.Get(c.UserContext(), key); ok {
				return tl, true
			}
		}
	}

	tl := h.calculator(fps).Calculate(video.Scenes)
	metrics.RecordTimeline(metrics.SourceVideo, len(tl.Entries))

	if key != "" {
		if err := h.Cache.Set(c.UserContext(), key, tl); err != nil {
			h.Logger.WithError(err).WithField("video_id", video.ID).Warn("Could not cache timeline")
		}
	}
	return tl, false
}
