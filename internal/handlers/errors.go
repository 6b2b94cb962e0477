package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/trentd187/golf-tour/internal/apperrors"
)

// ErrorHandler maps errors returned by handlers onto JSON error responses.
// Handlers return service errors as-is; their apperrors kind picks the status.
// Internal errors are logged and their detail is not sent to the client.
func ErrorHandler(log logrus.FieldLogger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		msg := "internal server error"

		var fe *fiber.Error
		switch {
		case errors.As(err, &fe):
			status, msg = fe.Code, fe.Message
		case apperrors.KindOf(err) == apperrors.KindNotFound:
			status, msg = fiber.StatusNotFound, err.Error()
		case apperrors.KindOf(err) == apperrors.KindValidation:
			status, msg = fiber.StatusBadRequest, err.Error()
		}

		if status >= fiber.StatusInternalServerError {
			log.WithError(err).WithFields(logrus.Fields{
				"method": c.Method(),
				"path":   c.Path(),
			}).Error("request failed")
		}
		return c.Status(status).JSON(fiber.Map{"error": msg})
	}
}
