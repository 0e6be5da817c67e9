package handlers

import (
	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/dto"
	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/services"
	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/tenant"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ProjectHandler struct {
	projectService *services.ProjectService
}

func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

func (h *ProjectHandler) List(c *fiber.Ctx) error {
	caller, ok := tenant.GetCaller(c)
	if !ok {
		return errorJSON(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	projects, err := h.projectService.List(c.UserContext(), caller)
	if err != nil {
		return err
	}
	return c.JSON(dto.ProjectListResponse{Projects: projects})
}

func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	caller, ok := tenant.GetCaller(c)
	if !ok {
		return errorJSON(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.ProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}

	project, err := h.projectService.Create(c.UserContext(), caller, &req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.ProjectResponse{Project: project})
}

func (h *ProjectHandler) Update(c *fiber.Ctx) error {
	caller, ok := tenant.GetCaller(c)
	if !ok {
		return errorJSON(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid project ID")
	}

	var req dto.ProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}

	project, err := h.projectService.Update(c.UserContext(), caller, id, &req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.ProjectResponse{Project: project})
}

func (h *ProjectHandler) Delete(c *fiber.Ctx) error {
	caller, ok := tenant.GetCaller(c)
	if !ok {
		return errorJSON(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Project ID required")
	}

	if err := h.projectService.Delete(c.UserContext(), caller, id); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}
