package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/fjordrenovering/website/internal/auth"
	"github.com/fjordrenovering/website/internal/config"
	"github.com/fjordrenovering/website/internal/domain"
	"github.com/fjordrenovering/website/internal/mapper"
	"github.com/fjordrenovering/website/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AuthService handles admin login and the bootstrap account
type AuthService struct {
	userRepo *repository.AdminUserRepository
	tokens   *auth.TokenManager
	logger   *zap.Logger
	now      func() time.Time

	dummyOnce sync.Once
	dummyHash string
}

// NewAuthService creates a new AuthService instance
func NewAuthService(userRepo *repository.AdminUserRepository, tokens *auth.TokenManager, logger *zap.Logger) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger,
		now:      time.Now,
	}
}

// Login verifies credentials and issues a session token
func (s *AuthService) Login(ctx context.Context, req *domain.LoginRequest) (*domain.LoginResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Spend the same bcrypt time as a real check
			auth.CheckPassword(s.placeholderHash(), req.Password)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		s.logger.Info("failed admin login", zap.String("user_id", user.ID.String()))
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrInactiveUser
	}

	token, expiresAt, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	if err := s.userRepo.UpdateLastLogin(ctx, user.ID, now); err != nil {
		s.logger.Warn("failed to record last login", zap.String("user_id", user.ID.String()), zap.Error(err))
	} else {
		user.LastLoginAt = &now
	}

	return &domain.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt.UTC().Format(time.RFC3339),
		User:      mapper.ToAdminUserDTO(user),
	}, nil
}

// Me returns the admin user behind a session
func (s *AuthService) Me(ctx context.Context, userID uuid.UUID) (*domain.AdminUserDTO, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if !user.IsActive {
		return nil, ErrInactiveUser
	}
	dto := mapper.ToAdminUserDTO(user)
	return &dto, nil
}

// EnsureBootstrapAdmin creates the configured first admin when no admin exists yet.
// It reports whether a user was created.
func (s *AuthService) EnsureBootstrapAdmin(ctx context.Context, cfg *config.AuthConfig) (bool, error) {
	email := strings.TrimSpace(cfg.BootstrapEmail)
	if email == "" || cfg.BootstrapPassword == "" {
		return false, nil
	}

	admins, err := s.userRepo.CountByRole(ctx, domain.AdminRoleAdmin)
	if err != nil {
		return false, fmt.Errorf("failed to count admins: %w", err)
	}
	if admins > 0 {
		return false, nil
	}

	hash, err := auth.HashPassword(cfg.BootstrapPassword)
	if err != nil {
		return false, err
	}
	name := strings.TrimSpace(cfg.BootstrapName)
	if name == "" {
		name = "Administrator"
	}
	user := &domain.AdminUser{
		Email:        email,
		DisplayName:  name,
		PasswordHash: hash,
		Role:         domain.AdminRoleAdmin,
		IsActive:     true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if repository.IsUniqueViolation(err) {
			return false, fmt.Errorf("%w: bootstrap email belongs to a non-admin user", ErrConflict)
		}
		return false, fmt.Errorf("failed to create bootstrap admin: %w", err)
	}

	s.logger.Info("bootstrap admin created", zap.String("user_id", user.ID.String()))
	return true, nil
}

func (s *AuthService) placeholderHash() string {
	s.dummyOnce.Do(func() {
		hash, err := auth.HashPassword(uuid.NewString())
		if err == nil {
			s.dummyHash = hash
		}
	})
	return s.dummyHash
}
