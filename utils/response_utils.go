package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// RespondWithError sends a JSON error response.
func RespondWithError(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  "error",
		"message": message,
	})
}

// RespondWithJSON sends a JSON success response.
func RespondWithJSON(c *fiber.Ctx, statusCode int, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status": "success",
		"data":   data,
	})
}

// FormatValidationErrors formats validation errors from validator/v10.
func FormatValidationErrors(err error) []string {
	var errs []string
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		if err != nil {
			errs = append(errs, err.Error())
		}
		return errs
	}
	for _, fe := range verrs {
		element := fmt.Sprintf("Field '%s' failed on the '%s' tag", fe.Field(), fe.Tag())
		if fe.Param() != "" {
			element = fmt.Sprintf("%s (value: %s)", element, fe.Param())
		}
		errs = append(errs, element)
	}
	return errs
}

// ValidationMessage joins the formatted validation errors into one message.
func ValidationMessage(err error) string {
	return strings.Join(FormatValidationErrors(err), ", ")
}

// ErrorHandler renders errors that escape handlers with the same envelope.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	return RespondWithError(c, code, err.Error())
}
