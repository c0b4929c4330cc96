package repository

import (
	"context"

	"github.com/fjordrenovering/website/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ServiceRepository handles the offered services
type ServiceRepository struct {
	db *gorm.DB
}

// NewServiceRepository creates a new service repository instance
func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

// Create inserts a service
func (r *ServiceRepository) Create(ctx context.Context, s *domain.Service) error {
	return r.db.WithContext(ctx).Create(s).Error
}

// GetByID retrieves a service by its ID
func (r *ServiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Service, error) {
	var s domain.Service
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// GetBySlug retrieves a service by slug; publishedOnly hides drafts
func (r *ServiceRepository) GetBySlug(ctx context.Context, slug string, publishedOnly bool) (*domain.Service, error) {
	var s domain.Service
	query := r.db.WithContext(ctx).Where("slug = ?", slug)
	if publishedOnly {
		query = query.Where("published = ?", true)
	}
	if err := query.First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// SlugExists reports whether another service already uses slug
func (r *ServiceRepository) SlugExists(ctx context.Context, slug string, excludeID *uuid.UUID) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&domain.Service{}).Where("slug = ?", slug)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

// Update saves an existing service
func (r *ServiceRepository) Update(ctx context.Context, s *domain.Service) error {
	return r.db.WithContext(ctx).Save(s).Error
}

// Delete removes a service
func (r *ServiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Service{}, "id = ?", id).Error
}

// List returns services in manual order; publishedOnly hides drafts
func (r *ServiceRepository) List(ctx context.Context, publishedOnly bool) ([]domain.Service, error) {
	var services []domain.Service
	query := r.db.WithContext(ctx)
	if publishedOnly {
		query = query.Where("published = ?", true)
	}
	err := query.Order("display_order ASC, name ASC").Find(&services).Error
	return services, err
}

// MaxDisplayOrder returns the highest service display order
func (r *ServiceRepository) MaxDisplayOrder(ctx context.Context) (int, error) {
	return maxDisplayOrder(ctx, r.db, &domain.Service{}, GlobalScope)
}

// Count returns the number of services
func (r *ServiceRepository) Count(ctx context.Context) (int64, error) {
	return countInScope(ctx, r.db, &domain.Service{}, GlobalScope)
}

// Reorder sets the order of all services
func (r *ServiceRepository) Reorder(ctx context.Context, orderedIDs []uuid.UUID) error {
	return reorder(ctx, r.db, &domain.Service{}, "service", GlobalScope, orderedIDs)
}
