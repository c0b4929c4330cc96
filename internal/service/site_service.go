package service

import (
	"context"

	"github.com/fjordrenovering/website/internal/domain"
	"go.uber.org/zap"
)

const (
	homeFeaturedProjects = 6
	homeTestimonials     = 3
)

// SiteService aggregates content for public pages that combine several entities
type SiteService struct {
	projects     *ProjectService
	catalog      *CatalogService
	testimonials *TestimonialService
	logger       *zap.Logger
}

// NewSiteService creates a new SiteService instance
func NewSiteService(projects *ProjectService, catalog *CatalogService, testimonials *TestimonialService, logger *zap.Logger) *SiteService {
	return &SiteService{
		projects:     projects,
		catalog:      catalog,
		testimonials: testimonials,
		logger:       logger,
	}
}

// Home returns featured projects, published services and featured testimonials
func (s *SiteService) Home(ctx context.Context) (*domain.HomeContent, error) {
	featured, err := s.projects.ListFeatured(ctx, homeFeaturedProjects)
	if err != nil {
		return nil, err
	}
	services, err := s.catalog.List(ctx, true)
	if err != nil {
		return nil, err
	}
	testimonials, err := s.testimonials.ListPublished(ctx, true, homeTestimonials)
	if err != nil {
		return nil, err
	}
	return &domain.HomeContent{
		FeaturedProjects: featured,
		Services:         services,
		Testimonials:     testimonials,
	}, nil
}
