package handlers

import (
	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/dto"
	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/services"
	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/tenant"
	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	userService      *services.UserService
	dashboardService *services.DashboardService
}

func NewUserHandler(userService *services.UserService, dashboardService *services.DashboardService) *UserHandler {
	return &UserHandler{userService: userService, dashboardService: dashboardService}
}

func (h *UserHandler) List(c *fiber.Ctx) error {
	caller, ok := tenant.GetCaller(c)
	if !ok {
		return errorJSON(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	users, err := h.userService.List(c.UserContext(), caller)
	if err != nil {
		return err
	}
	return c.JSON(dto.UserListResponse{Users: users})
}

func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	caller, ok := tenant.GetCaller(c)
	if !ok {
		return errorJSON(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}

	if err := h.userService.UpdateProfile(c.UserContext(), caller, req.FullName); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}

func (h *UserHandler) Settings(c *fiber.Ctx) error {
	caller, ok := tenant.GetCaller(c)
	if !ok {
		return errorJSON(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	user, t, err := h.userService.Settings(c.UserContext(), caller)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.SettingsResponse{User: user, Tenant: t})
}

func (h *UserHandler) Dashboard(c *fiber.Ctx) error {
	caller, ok := tenant.GetCaller(c)
	if !ok {
		return errorJSON(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	stats, err := h.dashboardService.Stats(c.UserContext(), caller)
	if err != nil {
		return err
	}
	return c.JSON(stats)
}
