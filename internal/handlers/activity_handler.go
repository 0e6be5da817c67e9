package handlers

import (
	"errors"
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/activity"
	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/dto"
	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/services"
	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/tenant"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/fiber/v2"
)

type ActivityHandler struct {
	logger  *services.ActivityLogger
	feed    *services.ActivityFeed
	summary *services.SummaryService
}

func NewActivityHandler(logger *services.ActivityLogger, feed *services.ActivityFeed, summary *services.SummaryService) *ActivityHandler {
	return &ActivityHandler{logger: logger, feed: feed, summary: summary}
}

// Record appends a client-reported entry for the caller's tenant.
func (h *ActivityHandler) Record(c *fiber.Ctx) error {
	caller, ok := tenant.GetCaller(c)
	if !ok {
		return errorJSON(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.RecordActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	if req.Action == "" {
		return errorJSON(c, fiber.StatusBadRequest, "Action is required")
	}

	h.logger.Record(c.UserContext(), caller.UserID, caller.TenantID, req.Action, req.Details)
	return c.JSON(dto.SuccessResponse{Success: true})
}

// List returns the activity page: recent entries, the actor filter options
// and the distinct actions. Query params q, user_id and action narrow the
// entries; the filter options always describe the unfiltered batch.
func (h *ActivityHandler) List(c *fiber.Ctx) error {
	caller, ok := tenant.GetCaller(c)
	if !ok {
		return errorJSON(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	entries, err := h.feed.FetchRecent(c.UserContext(), caller)
	if err != nil {
		return err
	}
	users, err := h.feed.ListActors(c.UserContext(), caller)
	if err != nil {
		return err
	}

	filtered := activity.Filter(entries, activity.Criteria{
		Query:  c.Query("q"),
		UserID: c.Query("user_id", activity.All),
		Action: c.Query("action", activity.All),
	})

	return c.JSON(dto.ActivityPageResponse{
		Logs:    filtered,
		Users:   users,
		Actions: activity.Actions(entries),
	})
}

func (h *ActivityHandler) Summarize(c *fiber.Ctx) error {
	var req dto.SummarizeRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}

	summary, err := h.summary.Summarize(c.UserContext(), req.Entries())
	if err != nil {
		if errors.Is(err, services.ErrSummaryFailed) {
			slog.ErrorContext(c.UserContext(), "error generating summary",
				"error", err,
				"request_id", requestID(c),
				"entries", len(req.Logs),
			)
			if hub := sentryfiber.GetHubFromContext(c); hub != nil {
				hub.CaptureException(err)
			}
			return errorJSON(c, fiber.StatusInternalServerError, services.ErrSummaryFailed.Error())
		}
		return serviceError(c, err)
	}

	return c.JSON(dto.SummarizeResponse{Summary: summary})
}
