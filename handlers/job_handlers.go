package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"vidspark/internal/db"
	"vidspark/models"
	"vidspark/utils"
)

// CreateJobRequest is the body of POST /videos/:videoId/jobs.
type CreateJobRequest struct {
	JobType   string `json:"job_type" validate:"required,oneof=BUILD_TIMELINE PROBE_SCENE_AUDIO"`
	FrameRate *int   `json:"frame_rate,omitempty" validate:"omitempty,gte=1,lte=240"`
}

// CreateJobResponse is returned when a job is accepted.
type CreateJobResponse struct {
	JobID   string `json:"job_id"`
	JobType string `json:"job_type"`
	Status  string `json:"status"`
}

// CreateVideoJob godoc
// @Summary Queue a background job for a video
// @Description Creates a PENDING job record and hands it to the processor.
// @Tags jobs
// @Accept json
// @Produce json
// @Param videoId path string true "Video ID"
// @Param request body CreateJobRequest true "Job to run"
// @Success 202 {object} CreateJobResponse
// @Failure 400 {object} ErrorResponse "Invalid body"
// @Failure 404 {object} ErrorResponse "Video not found"
// @Failure 503 {object} ErrorResponse "Job could not be queued"
// @Router /videos/{videoId}/jobs [post]
func (h *ApplicationHandler) CreateVideoJob(c *fiber.Ctx) error {
	var payload CreateJobRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "Cannot parse JSON: "+err.Error())
	}
	if err := validate.Struct(payload); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, utils.ValidationMessage(err))
	}

	video, err := h.loadVideo(c)
	if err != nil {
		return err
	}

	msg := models.JobMessage{
		JobType: payload.JobType,
		VideoID: video.ID.String(),
	}
	if payload.FrameRate != nil {
		msg.FrameRate = *payload.FrameRate
	}

	ctx := c.UserContext()
	jobID, err := h.Videos.CreateJobRecord(ctx, payload.JobType, msg)
	if err != nil {
		h.Logger.WithError(err).WithField("video_id", video.ID).Error("Error creating job record")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, "Could not create job")
	}
	msg.JobID = jobID

	if err := h.Queue.Enqueue(ctx, msg); err != nil {
		h.Logger.WithError(err).WithField("job_id", jobID).Error("Error enqueueing job")
		if uerr := h.Videos.UpdateJobStatus(ctx, jobID, models.JobFailed, nil, "could not enqueue job"); uerr != nil {
			h.Logger.WithError(uerr).WithField("job_id", jobID).Error("Additionally, failed to mark job as failed")
		}
		return utils.RespondWithError(c, fiber.StatusServiceUnavailable, "Could not queue job")
	}

	h.Logger.WithField("job_id", jobID).WithField("job_type", payload.JobType).Info("Job queued")
	return utils.RespondWithJSON(c, fiber.StatusAccepted, CreateJobResponse{
		JobID:   jobID,
		JobType: payload.JobType,
		Status:  models.JobPending,
	})
}

// GetJobStatus godoc
// @Summary Get a job's status
// @Tags jobs
// @Produce json
// @Param jobId path string true "Job ID"
// @Success 200 {object} models.VideoJobStatus
// @Failure 400 {object} ErrorResponse "Invalid job ID"
// @Failure 404 {object} ErrorResponse "Job not found"
// @Router /jobs/{jobId} [get]
func (h *ApplicationHandler) GetJobStatus(c *fiber.Ctx) error {
	jobIDStr := c.Params("jobId")
	jobID, err := uuid.Parse(jobIDStr)
	if err != nil {
		h.Logger.Warnf("Invalid job ID format: %s", jobIDStr)
		return utils.RespondWithError(c, fiber.StatusBadRequest, "Invalid job ID format")
	}

	job, err := h.Videos.GetJob(c.UserContext(), jobID.String())
	if errors.Is(err, db.ErrNotFound) {
		return utils.RespondWithError(c, fiber.StatusNotFound, "Job not found")
	}
	if err != nil {
		h.Logger.WithError(err).WithField("job_id", jobID).Error("Error fetching job")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, "Could not retrieve job status")
	}

	return utils.RespondWithJSON(c, fiber.StatusOK, job)
}
