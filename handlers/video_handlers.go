package handlers

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"vidspark/internal/db"
	"vidspark/models"
	"vidspark/utils"
)

const maxFrameRate = 240

// GetVideo godoc
// @Summary Get a video
// @Description Returns the stored video record with its scenes.
// @Tags videos
// @Produce json
// @Param videoId path string true "Video ID"
// @Success 200 {object} VideoSuccessResponse
// @Failure 400 {object} ErrorResponse "Invalid video ID"
// @Failure 404 {object} ErrorResponse "Video not found"
// @Router /videos/{videoId} [get]
func (h *ApplicationHandler) GetVideo(c *fiber.Ctx) error {
	video, err := h.loadVideo(c)
	if err != nil {
		return err
	}
	return utils.RespondWithJSON(c, fiber.StatusOK, video)
}

// VideoSuccessResponse documents the GetVideo response.
type VideoSuccessResponse struct {
	Status string       `json:"status"`
	Data   models.Video `json:"data"`
}

// ErrorResponse defines a common structure for error responses.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// loadVideo resolves :videoId to a record. Failures come back as
// *fiber.Error for utils.ErrorHandler to render.
func (h *ApplicationHandler) loadVideo(c *fiber.Ctx) (*models.Video, error) {
	idStr := c.Params("videoId")
	videoID, err := uuid.Parse(idStr)
	if err != nil {
		h.Logger.Warnf("Invalid video ID format: %s", idStr)
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid video ID format")
	}

	video, err := h.Videos.GetVideo(c.UserContext(), videoID)
	if errors.Is(err, db.ErrNotFound) {
		return nil, fiber.NewError(fiber.StatusNotFound, "Video not found")
	}
	if err != nil {
		h.Logger.WithError(err).WithField("video_id", videoID).Error("Error fetching video")
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Could not retrieve video")
	}
	return video, nil
}

// queryInt reads a positive integer query parameter, def when absent.
func queryInt(c *fiber.Ctx, name string, def, max int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 || v > max {
		return 0, fmt.Errorf("'%s' must be an integer between 1 and %d", name, max)
	}
	return v, nil
}
