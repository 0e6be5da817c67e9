package services

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/config"
	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/dto"
	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/metrics"
	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/models"
	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/store"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// DefaultTenantName is used for signups when no tenant exists yet.
const DefaultTenantName = "Default Organization"

const minPasswordLength = 6

type AuthService struct {
	users    store.Users
	tenants  store.Tenants
	tokens   store.RefreshTokens
	activity *ActivityLogger
	cfg      *config.Config
}

func NewAuthService(s *store.Store, activity *ActivityLogger, cfg *config.Config) *AuthService {
	return &AuthService{
		users:    s.Users,
		tenants:  s.Tenants,
		tokens:   s.RefreshTokens,
		activity: activity,
		cfg:      cfg,
	}
}

// Signup creates a plain user in the first tenant, creating the default
// tenant when none exists.
func (s *AuthService) Signup(ctx context.Context, req *dto.SignupRequest) (uuid.UUID, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" || strings.TrimSpace(req.FullName) == "" {
		return uuid.Nil, invalid("Email, password, and full name are required")
	}
	if len(req.Password) < minPasswordLength {
		return uuid.Nil, invalid("Password must be at least 6 characters")
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return uuid.Nil, ErrEmailTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		return uuid.Nil, fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to hash password: %w", err)
	}

	t, err := s.tenants.First(ctx)
	if errors.Is(err, store.ErrNotFound) {
		t = &models.Tenant{Name: DefaultTenantName}
		err = s.tenants.FirstOrCreate(ctx, t)
	}
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to resolve tenant: %w", err)
	}

	fullName := strings.TrimSpace(req.FullName)
	user := models.User{
		Email:        email,
		PasswordHash: string(hash),
		FullName:     &fullName,
		Role:         models.RoleUser,
		TenantID:     t.ID,
	}
	if err := s.users.Create(ctx, &user); err != nil {
		return uuid.Nil, err
	}

	metrics.RecordAuth("signup", true)
	return user.ID, nil
}

func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.users.GetByEmail(ctx, strings.TrimSpace(req.Email))
	if errors.Is(err, store.ErrNotFound) {
		metrics.RecordAuth("login", false)
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		metrics.RecordAuth("login", false)
		return nil, ErrInvalidCredentials
	}

	resp, err := s.IssueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	metrics.RecordAuth("login", true)
	s.activity.Record(ctx, user.ID, user.TenantID, ActionLoggedIn, nil)
	return resp, nil
}

func (s *AuthService) Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.AuthResponse, error) {
	stored, err := s.tokens.FindActive(ctx, hashToken(req.RefreshToken))
	if err != nil {
		return nil, ErrInvalidToken
	}

	if err := s.tokens.Revoke(ctx, stored.ID); err != nil {
		return nil, fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	if time.Now().After(stored.ExpiresAt) {
		return nil, ErrInvalidToken
	}

	user, err := s.users.GetByID(ctx, stored.UserID)
	if err != nil {
		return nil, ErrInvalidToken
	}

	return s.IssueTokens(ctx, user)
}

func (s *AuthService) Logout(ctx context.Context, req *dto.LogoutRequest) error {
	return s.tokens.RevokeByHash(ctx, hashToken(req.RefreshToken))
}

// IssueTokens signs an access token and stores a fresh refresh token.
func (s *AuthService) IssueTokens(ctx context.Context, user *models.User) (*dto.AuthResponse, error) {
	accessToken, err := s.generateAccessToken(user)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.generateRefreshToken(ctx, user)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User: dto.UserResponse{
			ID:       user.ID,
			Email:    user.Email,
			FullName: user.FullName,
			Role:     user.Role,
			TenantID: user.TenantID,
		},
	}, nil
}

func (s *AuthService) generateAccessToken(user *models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":       user.ID.String(),
		"email":     user.Email,
		"role":      user.Role,
		"tenant_id": user.TenantID.String(),
		"iat":       now.Unix(),
		"exp":       now.Add(s.cfg.JWTAccessExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func (s *AuthService) generateRefreshToken(ctx context.Context, user *models.User) (string, error) {
	rawBytes := make([]byte, 32)
	if _, err := rand.Read(rawBytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	rawToken := base64.URLEncoding.EncodeToString(rawBytes)

	record := models.RefreshToken{
		UserID:    user.ID,
		TokenHash: hashToken(rawToken),
		ExpiresAt: time.Now().Add(s.cfg.JWTRefreshExpiry),
	}
	if err := s.tokens.Create(ctx, &record); err != nil {
		return "", err
	}

	return rawToken, nil
}

func hashToken(token string) string {
	h := sha256.Sum256([]byte(token))
	return fmt.Sprintf("%x", h)
}
