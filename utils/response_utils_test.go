package utils

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name string `validate:"required"`
	FPS  int    `validate:"gte=1,lte=240"`
}

func TestFormatValidationErrors(t *testing.T) {
	err := validator.New().Struct(sample{FPS: 500})
	require.Error(t, err)

	assert.Equal(t, []string{
		"Field 'Name' failed on the 'required' tag",
		"Field 'FPS' failed on the 'lte' tag (value: 240)",
	}, FormatValidationErrors(err))
}

func TestFormatValidationErrors_PlainError(t *testing.T) {
	assert.Equal(t, []string{"boom"}, FormatValidationErrors(errors.New("boom")))
	assert.Nil(t, FormatValidationErrors(nil))
}

func TestErrorHandler(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/teapot", func(c *fiber.Ctx) error { return fiber.NewError(fiber.StatusTeapot, "short and stout") })
	app.Get("/boom", func(c *fiber.Ctx) error { return errors.New("boom") })

	cases := map[string]int{"/teapot": fiber.StatusTeapot, "/boom": fiber.StatusInternalServerError, "/missing": fiber.StatusNotFound}
	for path, want := range cases {
		resp, err := app.Test(httptest.NewRequest("GET", path, nil))
		require.NoError(t, err)
		assert.Equal(t, want, resp.StatusCode, path)

		body, _ := io.ReadAll(resp.Body)
		var env map[string]string
		require.NoError(t, json.Unmarshal(body, &env))
		assert.Equal(t, "error", env["status"])
	}
}
