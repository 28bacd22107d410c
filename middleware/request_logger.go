package middleware

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// RequestIDKey is the c.Locals key holding the request id.
const RequestIDKey = "requestid"

// RequestLogger creates a middleware handler for structured request logging.
func RequestLogger(log *logrus.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		requestID := uuid.NewString()

		c.Locals(RequestIDKey, requestID)
		c.Set("X-Request-ID", requestID)

		err := c.Next()

		latency := time.Since(start)
		statusCode := c.Response().StatusCode()
		if err != nil {
			// The app's ErrorHandler has not written the response yet.
			statusCode = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				statusCode = fe.Code
			}
		}

		logEntry := log.WithFields(logrus.Fields{
			"request_id":  requestID,
			"http_method": c.Method(),
			"uri":         c.OriginalURL(),
			"status_code": statusCode,
			"latency_ms":  latency.Milliseconds(),
			"client_ip":   c.IP(),
			"user_agent":  string(c.Request().Header.UserAgent()),
		})

		if err != nil {
			logEntry = logEntry.WithField("error", err.Error())
		}

		if statusCode >= 500 {
			logEntry.Error("Request completed with server error")
		} else if statusCode >= 400 {
			logEntry.Warn("Request completed with client error")
		} else {
			logEntry.Info("Request completed successfully")
		}

		return err
	}
}
