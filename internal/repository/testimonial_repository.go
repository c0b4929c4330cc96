package repository

import (
	"context"

	"github.com/fjordrenovering/website/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TestimonialFilters defines filter options for testimonial listing
type TestimonialFilters struct {
	Published *bool
	Featured  *bool
	ProjectID *uuid.UUID
}

// TestimonialRepository handles client testimonials
type TestimonialRepository struct {
	db *gorm.DB
}

// NewTestimonialRepository creates a new testimonial repository instance
func NewTestimonialRepository(db *gorm.DB) *TestimonialRepository {
	return &TestimonialRepository{db: db}
}

// Create inserts a testimonial
func (r *TestimonialRepository) Create(ctx context.Context, t *domain.Testimonial) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(t).Error
}

// GetByID retrieves a testimonial with its project
func (r *TestimonialRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Testimonial, error) {
	var t domain.Testimonial
	if err := r.db.WithContext(ctx).Preload("Project").Where("id = ?", id).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// Update saves an existing testimonial
func (r *TestimonialRepository) Update(ctx context.Context, t *domain.Testimonial) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(t).Error
}

// Delete removes a testimonial
func (r *TestimonialRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Testimonial{}, "id = ?", id).Error
}

// List returns testimonials in manual order
func (r *TestimonialRepository) List(ctx context.Context, filters *TestimonialFilters, limit int) ([]domain.Testimonial, error) {
	var testimonials []domain.Testimonial
	query := r.db.WithContext(ctx).Preload("Project")
	if filters != nil {
		if filters.Published != nil {
			query = query.Where("published = ?", *filters.Published)
		}
		if filters.Featured != nil {
			query = query.Where("featured = ?", *filters.Featured)
		}
		if filters.ProjectID != nil {
			query = query.Where("project_id = ?", *filters.ProjectID)
		}
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Order("display_order ASC, created_at DESC").Find(&testimonials).Error
	return testimonials, err
}

// MaxDisplayOrder returns the highest testimonial display order
func (r *TestimonialRepository) MaxDisplayOrder(ctx context.Context) (int, error) {
	return maxDisplayOrder(ctx, r.db, &domain.Testimonial{}, GlobalScope)
}

// Count returns the number of testimonials
func (r *TestimonialRepository) Count(ctx context.Context) (int64, error) {
	return countInScope(ctx, r.db, &domain.Testimonial{}, GlobalScope)
}

// Reorder sets the order of all testimonials
func (r *TestimonialRepository) Reorder(ctx context.Context, orderedIDs []uuid.UUID) error {
	return reorder(ctx, r.db, &domain.Testimonial{}, "testimonial", GlobalScope, orderedIDs)
}
