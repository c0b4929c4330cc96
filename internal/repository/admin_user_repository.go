package repository

import (
	"context"
	"strings"
	"time"

	"github.com/fjordrenovering/website/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdminUserRepository handles admin accounts
type AdminUserRepository struct {
	db *gorm.DB
}

// NewAdminUserRepository creates a new admin user repository instance
func NewAdminUserRepository(db *gorm.DB) *AdminUserRepository {
	return &AdminUserRepository{db: db}
}

// Create inserts an admin user; the email is stored lower-cased
func (r *AdminUserRepository) Create(ctx context.Context, user *domain.AdminUser) error {
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	return r.db.WithContext(ctx).Create(user).Error
}

// GetByID retrieves an admin user by ID
func (r *AdminUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.AdminUser, error) {
	var user domain.AdminUser
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail finds an admin user by email, case-insensitively
func (r *AdminUserRepository) GetByEmail(ctx context.Context, email string) (*domain.AdminUser, error) {
	var user domain.AdminUser
	err := r.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Update saves an existing admin user
func (r *AdminUserRepository) Update(ctx context.Context, user *domain.AdminUser) error {
	return r.db.WithContext(ctx).Save(user).Error
}

// UpdateLastLogin stamps the last successful login
func (r *AdminUserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.db.WithContext(ctx).Model(&domain.AdminUser{}).Where("id = ?", id).Update("last_login_at", at).Error
}

// CountByRole counts admin users with a role
func (r *AdminUserRepository) CountByRole(ctx context.Context, role domain.AdminRole) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.AdminUser{}).Where("role = ?", role).Count(&count).Error
	return count, err
}
