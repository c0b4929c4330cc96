package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fjordrenovering/website/internal/domain"
	"github.com/fjordrenovering/website/internal/mapper"
	"github.com/fjordrenovering/website/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// TestimonialService manages client testimonials
type TestimonialService struct {
	testimonialRepo *repository.TestimonialRepository
	projectRepo     *repository.ProjectRepository
	logger          *zap.Logger
}

// NewTestimonialService creates a new TestimonialService instance
func NewTestimonialService(
	testimonialRepo *repository.TestimonialRepository,
	projectRepo *repository.ProjectRepository,
	logger *zap.Logger,
) *TestimonialService {
	return &TestimonialService{
		testimonialRepo: testimonialRepo,
		projectRepo:     projectRepo,
		logger:          logger,
	}
}

// List returns testimonials in display order; limit <= 0 means no limit
func (s *TestimonialService) List(ctx context.Context, filters *repository.TestimonialFilters, limit int) ([]domain.TestimonialDTO, error) {
	items, err := s.testimonialRepo.List(ctx, filters, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list testimonials: %w", err)
	}
	dtos := make([]domain.TestimonialDTO, len(items))
	for i := range items {
		dtos[i] = mapper.ToTestimonialDTO(&items[i])
	}
	return dtos, nil
}

// ListPublished returns the testimonials visible on the public site
func (s *TestimonialService) ListPublished(ctx context.Context, featuredOnly bool, limit int) ([]domain.TestimonialDTO, error) {
	published := true
	filters := &repository.TestimonialFilters{Published: &published}
	if featuredOnly {
		featured := true
		filters.Featured = &featured
	}
	return s.List(ctx, filters, limit)
}

// Count returns the number of testimonials
func (s *TestimonialService) Count(ctx context.Context) (int64, error) {
	return s.testimonialRepo.Count(ctx)
}

// GetByID returns a testimonial
func (s *TestimonialService) GetByID(ctx context.Context, id uuid.UUID) (*domain.TestimonialDTO, error) {
	t, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := mapper.ToTestimonialDTO(t)
	return &dto, nil
}

// Create adds a testimonial at the end of the list
func (s *TestimonialService) Create(ctx context.Context, req *domain.CreateTestimonialRequest) (*domain.TestimonialDTO, error) {
	t := &domain.Testimonial{}
	if err := s.apply(ctx, t, req); err != nil {
		return nil, err
	}
	maxOrder, err := s.testimonialRepo.MaxDisplayOrder(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get display order: %w", err)
	}
	t.DisplayOrder = maxOrder + 1

	if err := s.testimonialRepo.Create(ctx, t); err != nil {
		return nil, fmt.Errorf("failed to create testimonial: %w", err)
	}
	return s.GetByID(ctx, t.ID)
}

// Update replaces the editable fields of a testimonial
func (s *TestimonialService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateTestimonialRequest) (*domain.TestimonialDTO, error) {
	t, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.apply(ctx, t, req); err != nil {
		return nil, err
	}
	if err := s.testimonialRepo.Update(ctx, t); err != nil {
		return nil, fmt.Errorf("failed to update testimonial: %w", err)
	}
	return s.GetByID(ctx, id)
}

// Delete removes a testimonial
func (s *TestimonialService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.get(ctx, id); err != nil {
		return err
	}
	if err := s.testimonialRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete testimonial: %w", err)
	}
	return nil
}

// Reorder sets the order of all testimonials
func (s *TestimonialService) Reorder(ctx context.Context, orderedIDs []uuid.UUID) error {
	count, err := s.testimonialRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count testimonials: %w", err)
	}
	if err := validateReorder(orderedIDs, count); err != nil {
		return err
	}
	if err := s.testimonialRepo.Reorder(ctx, orderedIDs); err != nil {
		return reorderError(err)
	}
	return nil
}

func (s *TestimonialService) apply(ctx context.Context, t *domain.Testimonial, req *domain.CreateTestimonialRequest) error {
	if req.Rating < 1 || req.Rating > 5 {
		return ErrInvalidRating
	}
	if req.ProjectID != nil {
		exists, err := s.projectRepo.Exists(ctx, *req.ProjectID)
		if err != nil {
			return fmt.Errorf("failed to check project: %w", err)
		}
		if !exists {
			return ErrProjectNotFound
		}
	}
	t.ClientName = strings.TrimSpace(req.ClientName)
	t.Location = strings.TrimSpace(req.Location)
	t.Quote = strings.TrimSpace(req.Quote)
	t.Rating = req.Rating
	t.ProjectID = req.ProjectID
	t.Project = nil
	t.Published = req.Published
	t.Featured = req.Featured
	return nil
}

func (s *TestimonialService) get(ctx context.Context, id uuid.UUID) (*domain.Testimonial, error) {
	t, err := s.testimonialRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTestimonialNotFound
		}
		return nil, fmt.Errorf("failed to get testimonial: %w", err)
	}
	return t, nil
}
