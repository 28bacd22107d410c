package middleware

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestLogger(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetOutput(io.Discard)

	app := fiber.New()
	app.Use(RequestLogger(logger))
	app.Get("/ok", func(c *fiber.Ctx) error {
		assert.NotEmpty(t, c.Locals(RequestIDKey))
		return c.SendStatus(fiber.StatusOK)
	})
	app.Get("/bad", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusBadRequest) })
	app.Get("/gone", func(c *fiber.Ctx) error { return fiber.NewError(fiber.StatusNotFound, "gone") })
	app.Get("/boom", func(c *fiber.Ctx) error { return errors.New("boom") })

	resp, err := app.Test(httptest.NewRequest("GET", "/ok", nil))
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, "/ok", entry.Data["uri"])
	assert.Equal(t, 200, entry.Data["status_code"])

	_, err = app.Test(httptest.NewRequest("GET", "/bad", nil))
	require.NoError(t, err)
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)

	_, err = app.Test(httptest.NewRequest("GET", "/gone", nil))
	require.NoError(t, err)
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	assert.Equal(t, 404, hook.LastEntry().Data["status_code"])
	assert.Equal(t, "gone", hook.LastEntry().Data["error"])

	_, err = app.Test(httptest.NewRequest("GET", "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
}
