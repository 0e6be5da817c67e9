package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/config"
	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/dto"
	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/models"
	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/store"
	"golang.org/x/crypto/bcrypt"
)

const demoFullName = "Demo User"

// DemoService provisions the shared demo admin and signs it in.
type DemoService struct {
	store *store.Store
	auth  *AuthService
	cfg   *config.Config
}

func NewDemoService(s *store.Store, auth *AuthService, cfg *config.Config) *DemoService {
	return &DemoService{store: s, auth: auth, cfg: cfg}
}

// SignIn upserts the demo tenant and admin, reads the row back once and
// issues tokens for it. Repeated calls converge on the same rows.
func (s *DemoService) SignIn(ctx context.Context) (*dto.AuthResponse, error) {
	t := &models.Tenant{Name: s.cfg.DemoTenantName}
	if err := s.store.Tenants.FirstOrCreate(ctx, t); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.cfg.DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	name := demoFullName
	if err := s.store.Users.Upsert(ctx, &models.User{
		Email:        s.cfg.DemoEmail,
		PasswordHash: string(hash),
		FullName:     &name,
		Role:         models.RoleAdmin,
		TenantID:     t.ID,
	}); err != nil {
		return nil, err
	}

	user, err := s.store.Users.GetByEmail(ctx, s.cfg.DemoEmail)
	if err != nil {
		return nil, fmt.Errorf("demo user not readable after upsert: %w", err)
	}
	if user.Role != models.RoleAdmin || user.TenantID != t.ID {
		slog.ErrorContext(ctx, "demo user verification mismatch",
			"user_id", user.ID.String(),
			"role", user.Role,
			"tenant_id", user.TenantID.String(),
		)
		return nil, fmt.Errorf("demo user verification failed")
	}

	resp, err := s.auth.IssueTokens(ctx, user)
	if err != nil {
		return nil, err
	}
	s.auth.activity.Record(ctx, user.ID, user.TenantID, ActionLoggedIn, nil)
	return resp, nil
}
