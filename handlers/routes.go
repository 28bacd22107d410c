package handlers

import "github.com/gofiber/fiber/v2"

// RegisterRoutes mounts the v1 API on router.
func (h *ApplicationHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/timeline", h.CalculateTimeline)

	videos := router.Group("/videos/:videoId")
	videos.Get("", h.GetVideo)
	videos.Get("/timeline", h.GetVideoTimeline)
	videos.Get("/captions.srt", h.GetVideoCaptions)
	videos.Post("/jobs", h.CreateVideoJob)

	router.Get("/jobs/:jobId", h.GetJobStatus)
}
