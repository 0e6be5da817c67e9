package middleware

import (
	"context"
	"errors"
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/dto"
	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/metrics"
	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/services"
	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/tenant"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// MissingRecordRedirect is sent when a valid session has no user row.
const MissingRecordRedirect = LoginPath + "?error=user_record_missing"

type CallerResolver interface {
	ResolveCaller(ctx context.Context, userID uuid.UUID) (tenant.Caller, error)
}

// ResolveCaller loads role and tenant for the token subject on every request.
// A missing user row answers 404, matching the mutation APIs.
func ResolveCaller(identity CallerResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return resolve(c, identity, func(c *fiber.Ctx, err error) error {
			if errors.Is(err, services.ErrCallerProfileMissing) {
				return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
					Error: true, Message: services.ErrUserNotFound.Error(),
				})
			}
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		})
	}
}

// ResolvePageCaller is ResolveCaller for page-load endpoints, which answer
// every failure with a login redirect.
func ResolvePageCaller(identity CallerResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return resolve(c, identity, func(c *fiber.Ctx, err error) error {
			redirect := LoginPath
			if errors.Is(err, services.ErrCallerProfileMissing) {
				redirect = MissingRecordRedirect
			}
			return c.Status(fiber.StatusUnauthorized).JSON(dto.RedirectResponse{
				Error: true, Message: "Unauthorized", Redirect: redirect,
			})
		})
	}
}

func resolve(c *fiber.Ctx, identity CallerResolver, fail func(*fiber.Ctx, error) error) error {
	userID, err := tenant.GetUserID(c)
	if err != nil {
		return fail(c, err)
	}

	caller, err := identity.ResolveCaller(c.UserContext(), userID)
	if err != nil {
		if errors.Is(err, services.ErrCallerProfileMissing) {
			metrics.CallerMissingCounter.Inc()
			slog.Warn("authenticated user has no record", "user_id", userID.String())
			return fail(c, err)
		}
		// store failures are not an auth problem
		return err
	}

	tenant.SetCaller(c, caller)
	return c.Next()
}
