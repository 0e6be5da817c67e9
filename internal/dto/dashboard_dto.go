package dto

import (
	"encoding/json"
	"fmt"

	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/activity"
	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/models"
	"github.com/google/uuid"
)

type RecordActivityRequest struct {
	Action  string  `json:"action"`
	Details *string `json:"details"`
}

// SummarizeRequest carries entries back from the activity page. Only the
// fields that reach the prompt are decoded, so ids and timestamps in any
// shape are accepted.
type SummarizeRequest struct {
	Logs []SummaryLog `json:"logs"`
}

type SummaryLog struct {
	Action    string         `json:"action"`
	Details   *string        `json:"details"`
	CreatedAt string         `json:"created_at"`
	User      *SummaryAuthor `json:"user"`
}

type SummaryAuthor struct {
	FullName *string `json:"full_name"`
	Email    string  `json:"email"`
}

// Entries converts the batch for the summary pipeline. An unparseable
// created_at becomes the zero time.
func (r SummarizeRequest) Entries() []activity.Entry {
	out := make([]activity.Entry, 0, len(r.Logs))
	for _, l := range r.Logs {
		e := activity.Entry{
			Action:    l.Action,
			Details:   l.Details,
			CreatedAt: activity.ParseTimestamp(l.CreatedAt),
		}
		if l.User != nil {
			e.User = &activity.Actor{FullName: l.User.FullName, Email: l.User.Email}
		}
		out = append(out, e)
	}
	return out
}

type SummarizeResponse struct {
	Summary string `json:"summary"`
}

type ActivityPageResponse struct {
	Logs    []activity.Entry `json:"logs"`
	Users   []models.User    `json:"users"`
	Actions []string         `json:"actions"`
}

type ProjectRequest struct {
	Name           string     `json:"name"`
	Status         string     `json:"status"`
	AssignedUserID *uuid.UUID `json:"assigned_user_id"`
}

// UnmarshalJSON treats an empty assigned_user_id like null: unassigned.
func (r *ProjectRequest) UnmarshalJSON(data []byte) error {
	type plain ProjectRequest
	aux := struct {
		*plain
		AssignedUserID *string `json:"assigned_user_id"`
	}{plain: (*plain)(r)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	r.AssignedUserID = nil
	if aux.AssignedUserID == nil || *aux.AssignedUserID == "" {
		return nil
	}
	id, err := uuid.Parse(*aux.AssignedUserID)
	if err != nil {
		return fmt.Errorf("invalid assigned_user_id: %w", err)
	}
	r.AssignedUserID = &id
	return nil
}

type ProjectResponse struct {
	Project *models.Project `json:"project"`
}

type ProjectListResponse struct {
	Projects []models.Project `json:"projects"`
}

type UserListResponse struct {
	Users []models.User `json:"users"`
}

type UpdateProfileRequest struct {
	FullName string `json:"full_name"`
}

type SettingsResponse struct {
	User   *models.User   `json:"user"`
	Tenant *models.Tenant `json:"tenant"`
}

type DashboardResponse struct {
	UserCount     int64               `json:"user_count"`
	ProjectCount  int64               `json:"project_count"`
	ActivityCount int64               `json:"activity_count"`
	Activity      []activity.DayCount `json:"activity"`
}
