package handlers

import (
	"errors"
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/dto"
	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/services"
	"github.com/gofiber/fiber/v2"
)

// ErrorHandler renders errors that reach the app. Details of 5xx errors are
// only echoed when dev is set.
func ErrorHandler(dev bool) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal server error"
		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
			message = e.Message
		}

		// Only expose error details for client errors (4xx), not server errors (5xx)
		if code >= 500 {
			slog.ErrorContext(c.UserContext(), "unhandled server error",
				"method", c.Method(),
				"path", c.Path(),
				"request_id", requestID(c),
				"error", err.Error(),
			)
			message = "Internal server error"
			if dev {
				message = err.Error()
			}
		}

		return c.Status(code).JSON(dto.ErrorResponse{Error: true, Message: message})
	}
}

func errorJSON(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Error: true, Message: message})
}

// serviceError maps known service errors to client responses. Anything else
// is returned for ErrorHandler to log and hide.
func serviceError(c *fiber.Ctx, err error) error {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		return errorJSON(c, fiber.StatusBadRequest, verr.Message)
	case errors.Is(err, services.ErrEmailTaken), errors.Is(err, services.ErrNoLogs):
		return errorJSON(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrForbidden):
		return errorJSON(c, fiber.StatusForbidden, err.Error())
	case errors.Is(err, services.ErrProjectNotFound):
		return errorJSON(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrUserNotFound), errors.Is(err, services.ErrCallerProfileMissing):
		return errorJSON(c, fiber.StatusNotFound, services.ErrUserNotFound.Error())
	}
	return err
}

func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return ""
}

func invalidBody(c *fiber.Ctx) error {
	return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
}
