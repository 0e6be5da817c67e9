package services

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/models"
	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/store"
	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/tenant"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

// SeedData is the shape of a seed file.
type SeedData struct {
	Tenants  []SeedTenant   `yaml:"tenants"`
	Users    []SeedUser     `yaml:"users"`
	Projects []SeedProject  `yaml:"projects"`
	Activity []SeedActivity `yaml:"activity"`
}

type SeedTenant struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

type SeedUser struct {
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	FullName string `yaml:"full_name"`
	Role     string `yaml:"role"`
	Tenant   string `yaml:"tenant"`
}

type SeedProject struct {
	Name     string `yaml:"name"`
	Status   string `yaml:"status"`
	Tenant   string `yaml:"tenant"`
	Assignee string `yaml:"assignee"`
}

type SeedActivity struct {
	User     string `yaml:"user"`
	Action   string `yaml:"action"`
	Details  string `yaml:"details"`
	HoursAgo int    `yaml:"hours_ago"`
}

// SeedService loads demo tenants, users, projects and activity.
type SeedService struct {
	store *store.Store
	now   func() time.Time
}

func NewSeedService(s *store.Store) *SeedService {
	return &SeedService{store: s, now: time.Now}
}

func LoadSeedFile(path string) (*SeedData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	var seed SeedData
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	return &seed, nil
}

// Apply is idempotent: tenants and users are upserted, projects and activity
// are only inserted into tenants that have none yet.
func (s *SeedService) Apply(ctx context.Context, seed *SeedData) error {
	tenants := make(map[string]*models.Tenant, len(seed.Tenants))
	for _, st := range seed.Tenants {
		t := &models.Tenant{Name: st.Name}
		if st.ID != "" {
			id, err := uuid.Parse(st.ID)
			if err != nil {
				return fmt.Errorf("tenant %q: invalid id: %w", st.Name, err)
			}
			t.ID = id
		}
		if err := s.store.Tenants.FirstOrCreate(ctx, t); err != nil {
			return err
		}
		tenants[st.Name] = t
	}

	users := make(map[string]*models.User, len(seed.Users))
	for _, su := range seed.Users {
		t, ok := tenants[su.Tenant]
		if !ok {
			return fmt.Errorf("user %q: unknown tenant %q", su.Email, su.Tenant)
		}
		if !models.IsValidRole(su.Role) {
			return fmt.Errorf("user %q: invalid role %q", su.Email, su.Role)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(su.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		name := su.FullName
		if err := s.store.Users.Upsert(ctx, &models.User{
			Email:        su.Email,
			PasswordHash: string(hash),
			FullName:     &name,
			Role:         su.Role,
			TenantID:     t.ID,
		}); err != nil {
			return err
		}
		u, err := s.store.Users.GetByEmail(ctx, su.Email)
		if err != nil {
			return fmt.Errorf("user %q: %w", su.Email, err)
		}
		users[su.Email] = u
	}

	seeded := make(map[uuid.UUID]bool)
	for _, sp := range seed.Projects {
		t, ok := tenants[sp.Tenant]
		if !ok {
			return fmt.Errorf("project %q: unknown tenant %q", sp.Name, sp.Tenant)
		}
		empty, err := s.isEmpty(ctx, t.ID, seeded, s.store.Projects.CountScoped)
		if err != nil {
			return err
		}
		if !empty {
			continue
		}
		p := &models.Project{Name: sp.Name, Status: sp.Status, TenantID: t.ID}
		if u, ok := users[sp.Assignee]; ok {
			p.AssignedUserID = &u.ID
		}
		if err := s.store.Projects.Create(ctx, p); err != nil {
			return err
		}
	}

	seeded = make(map[uuid.UUID]bool)
	for _, sa := range seed.Activity {
		u, ok := users[sa.User]
		if !ok {
			return fmt.Errorf("activity %q: unknown user %q", sa.Action, sa.User)
		}
		empty, err := s.isEmpty(ctx, u.TenantID, seeded, s.store.Activity.CountScoped)
		if err != nil {
			return err
		}
		if !empty {
			continue
		}
		entry := &models.ActivityLog{
			UserID:    u.ID,
			TenantID:  u.TenantID,
			Action:    sa.Action,
			CreatedAt: s.now().UTC().Add(-time.Duration(sa.HoursAgo) * time.Hour),
		}
		if sa.Details != "" {
			details := sa.Details
			entry.Details = &details
		}
		if err := s.store.Activity.Insert(ctx, entry); err != nil {
			return err
		}
	}

	slog.Info("seed data applied",
		"tenants", len(tenants),
		"users", len(users),
	)
	return nil
}

// isEmpty reports whether a tenant had no rows before this run started
// seeding it. Once seeding a tenant begins, later rows for it are accepted.
func (s *SeedService) isEmpty(ctx context.Context, tenantID uuid.UUID, seeded map[uuid.UUID]bool,
	count func(context.Context, tenant.Caller) (int64, error)) (bool, error) {
	if started, ok := seeded[tenantID]; ok {
		return started, nil
	}
	n, err := count(ctx, tenant.Caller{Role: models.RoleUser, TenantID: tenantID})
	if err != nil {
		return false, err
	}
	seeded[tenantID] = n == 0
	return n == 0, nil
}

// ApplyFile loads and applies path. An empty path is a no-op.
func (s *SeedService) ApplyFile(ctx context.Context, path string) error {
	if path == "" {
		return nil
	}
	seed, err := LoadSeedFile(path)
	if err != nil {
		return err
	}
	return s.Apply(ctx, seed)
}
