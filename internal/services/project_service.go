package services

import (
	"context"
	"errors"
	"strings"

	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/dto"
	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/metrics"
	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/models"
	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/store"
	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/tenant"
	"github.com/google/uuid"
)

type ProjectService struct {
	projects store.Projects
	users    store.Users
	activity *ActivityLogger
}

func NewProjectService(projects store.Projects, users store.Users, activity *ActivityLogger) *ProjectService {
	return &ProjectService{projects: projects, users: users, activity: activity}
}

func (s *ProjectService) List(ctx context.Context, caller tenant.Caller) ([]models.Project, error) {
	return s.projects.ListScoped(ctx, caller)
}

// Create places the project in the caller's own tenant.
func (s *ProjectService) Create(ctx context.Context, caller tenant.Caller, req *dto.ProjectRequest) (*models.Project, error) {
	name, status, err := validateProject(req)
	if err != nil {
		return nil, err
	}
	if err := s.checkAssignee(ctx, req.AssignedUserID, caller.TenantID); err != nil {
		return nil, err
	}

	p := &models.Project{
		Name:           name,
		Status:         status,
		AssignedUserID: req.AssignedUserID,
		TenantID:       caller.TenantID,
	}
	if err := s.projects.Create(ctx, p); err != nil {
		return nil, err
	}

	metrics.RecordProjectOperation("create")
	s.activity.Record(ctx, caller.UserID, caller.TenantID, ActionCreatedProject, projectDetails(name))
	return p, nil
}

// Update rewrites name, status and assignee. The project keeps its tenant.
func (s *ProjectService) Update(ctx context.Context, caller tenant.Caller, id uuid.UUID, req *dto.ProjectRequest) (*models.Project, error) {
	p, err := s.authorize(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	name, status, err := validateProject(req)
	if err != nil {
		return nil, err
	}
	if err := s.checkAssignee(ctx, req.AssignedUserID, p.TenantID); err != nil {
		return nil, err
	}

	p.Name = name
	p.Status = status
	p.AssignedUserID = req.AssignedUserID
	if err := s.projects.Update(ctx, p); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}

	updated, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	metrics.RecordProjectOperation("update")
	s.activity.Record(ctx, caller.UserID, caller.TenantID, ActionEditedProject, projectDetails(name))
	return updated, nil
}

func (s *ProjectService) Delete(ctx context.Context, caller tenant.Caller, id uuid.UUID) error {
	p, err := s.authorize(ctx, caller, id)
	if err != nil {
		return err
	}

	if err := s.projects.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrProjectNotFound
		}
		return err
	}

	metrics.RecordProjectOperation("delete")
	s.activity.Record(ctx, caller.UserID, caller.TenantID, ActionDeletedProject, projectDetails(p.Name))
	return nil
}

func (s *ProjectService) authorize(ctx context.Context, caller tenant.Caller, id uuid.UUID) (*models.Project, error) {
	p, err := s.projects.GetByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrProjectNotFound
	}
	if err != nil {
		return nil, err
	}
	if !caller.CanAccess(p.TenantID) {
		return nil, ErrForbidden
	}
	return p, nil
}

// checkAssignee requires an assigned user to belong to the project's tenant.
func (s *ProjectService) checkAssignee(ctx context.Context, assigneeID *uuid.UUID, tenantID uuid.UUID) error {
	if assigneeID == nil {
		return nil
	}
	u, err := s.users.GetByID(ctx, *assigneeID)
	if errors.Is(err, store.ErrNotFound) {
		return invalid("Assigned user does not exist")
	}
	if err != nil {
		return err
	}
	if u.TenantID != tenantID {
		return invalid("Assigned user must belong to the project's tenant")
	}
	return nil
}

func validateProject(req *dto.ProjectRequest) (string, string, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return "", "", invalid("Project name is required")
	}
	status := req.Status
	if status == "" {
		status = models.ProjectPlanning
	}
	if !models.IsValidProjectStatus(status) {
		return "", "", invalid("Invalid project status")
	}
	return name, status, nil
}
