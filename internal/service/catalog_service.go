package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fjordrenovering/website/internal/content"
	"github.com/fjordrenovering/website/internal/domain"
	"github.com/fjordrenovering/website/internal/mapper"
	"github.com/fjordrenovering/website/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CatalogService manages the services the company offers
type CatalogService struct {
	serviceRepo *repository.ServiceRepository
	markdown    *content.Markdown
	logger      *zap.Logger
}

// NewCatalogService creates a new CatalogService instance
func NewCatalogService(serviceRepo *repository.ServiceRepository, markdown *content.Markdown, logger *zap.Logger) *CatalogService {
	return &CatalogService{
		serviceRepo: serviceRepo,
		markdown:    markdown,
		logger:      logger,
	}
}

// List returns services in display order
func (s *CatalogService) List(ctx context.Context, publishedOnly bool) ([]domain.ServiceDTO, error) {
	items, err := s.serviceRepo.List(ctx, publishedOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	dtos := make([]domain.ServiceDTO, len(items))
	for i := range items {
		dtos[i] = mapper.ToServiceDTO(&items[i])
	}
	return dtos, nil
}

// GetByID returns a service
func (s *CatalogService) GetByID(ctx context.Context, id uuid.UUID) (*domain.ServiceDTO, error) {
	item, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := mapper.ToServiceDTO(item)
	return &dto, nil
}

// GetPublishedBySlug returns a published service with its body rendered to HTML
func (s *CatalogService) GetPublishedBySlug(ctx context.Context, slug string) (*domain.ServiceDTO, error) {
	item, err := s.serviceRepo.GetBySlug(ctx, slug, true)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("failed to get service: %w", err)
	}
	dto := mapper.ToServiceDTO(item)
	html, err := s.markdown.Render(item.Body)
	if err != nil {
		s.logger.Warn("failed to render service body", zap.String("service_id", item.ID.String()), zap.Error(err))
	}
	dto.BodyHTML = html
	return &dto, nil
}

// Create adds a service at the end of the list
func (s *CatalogService) Create(ctx context.Context, req *domain.CreateServiceRequest) (*domain.ServiceDTO, error) {
	item := &domain.Service{}
	if err := s.apply(ctx, item, req); err != nil {
		return nil, err
	}
	maxOrder, err := s.serviceRepo.MaxDisplayOrder(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get display order: %w", err)
	}
	item.DisplayOrder = maxOrder + 1

	if err := s.serviceRepo.Create(ctx, item); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrDuplicateSlug
		}
		return nil, fmt.Errorf("failed to create service: %w", err)
	}
	return s.GetByID(ctx, item.ID)
}

// Update replaces the editable fields of a service
func (s *CatalogService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateServiceRequest) (*domain.ServiceDTO, error) {
	item, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.apply(ctx, item, req); err != nil {
		return nil, err
	}
	if err := s.serviceRepo.Update(ctx, item); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrDuplicateSlug
		}
		return nil, fmt.Errorf("failed to update service: %w", err)
	}
	return s.GetByID(ctx, id)
}

// Delete removes a service
func (s *CatalogService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.get(ctx, id); err != nil {
		return err
	}
	if err := s.serviceRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete service: %w", err)
	}
	return nil
}

// Reorder sets the order of all services
func (s *CatalogService) Reorder(ctx context.Context, orderedIDs []uuid.UUID) error {
	count, err := s.serviceRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count services: %w", err)
	}
	if err := validateReorder(orderedIDs, count); err != nil {
		return err
	}
	if err := s.serviceRepo.Reorder(ctx, orderedIDs); err != nil {
		return reorderError(err)
	}
	return nil
}

func (s *CatalogService) apply(ctx context.Context, item *domain.Service, req *domain.CreateServiceRequest) error {
	slug, err := normalizeSlug(req.Slug, req.Name)
	if err != nil {
		return err
	}
	var exclude *uuid.UUID
	if item.ID != uuid.Nil {
		exclude = &item.ID
	}
	exists, err := s.serviceRepo.SlugExists(ctx, slug, exclude)
	if err != nil {
		return fmt.Errorf("failed to check slug: %w", err)
	}
	if exists {
		return ErrDuplicateSlug
	}

	item.Name = strings.TrimSpace(req.Name)
	item.Slug = slug
	item.Summary = strings.TrimSpace(req.Summary)
	item.Body = req.Body
	item.Icon = strings.TrimSpace(req.Icon)
	item.Published = req.Published
	return nil
}

func (s *CatalogService) get(ctx context.Context, id uuid.UUID) (*domain.Service, error) {
	item, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("failed to get service: %w", err)
	}
	return item, nil
}
