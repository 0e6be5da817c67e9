package handlers

import (
	"errors"

	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/dto"
	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService *services.AuthService
	demoService *services.DemoService
}

func NewAuthHandler(authService *services.AuthService, demoService *services.DemoService) *AuthHandler {
	return &AuthHandler{authService: authService, demoService: demoService}
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}

	userID, err := h.authService.Signup(c.UserContext(), &req)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(dto.SignupResponse{Success: true, UserID: userID})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}

	resp, err := h.authService.Login(c.UserContext(), &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return errorJSON(c, fiber.StatusUnauthorized, err.Error())
		}
		return err
	}

	return c.JSON(resp)
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}

	resp, err := h.authService.Refresh(c.UserContext(), &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidToken) {
			return errorJSON(c, fiber.StatusUnauthorized, err.Error())
		}
		return err
	}

	return c.JSON(resp)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	var req dto.LogoutRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}

	if err := h.authService.Logout(c.UserContext(), &req); err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "Failed to logout")
	}

	return c.JSON(fiber.Map{"message": "Logged out successfully"})
}

// Demo signs in as the shared demo administrator, provisioning it first.
func (h *AuthHandler) Demo(c *fiber.Ctx) error {
	resp, err := h.demoService.SignIn(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
