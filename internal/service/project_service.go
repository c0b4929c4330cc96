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

// ProjectService handles business logic for portfolio projects
type ProjectService struct {
	projectRepo *repository.ProjectRepository
	mediaRepo   *repository.MediaRepository
	markdown    *content.Markdown
	logger      *zap.Logger
}

// NewProjectService creates a new ProjectService instance
func NewProjectService(
	projectRepo *repository.ProjectRepository,
	mediaRepo *repository.MediaRepository,
	markdown *content.Markdown,
	logger *zap.Logger,
) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		mediaRepo:   mediaRepo,
		markdown:    markdown,
		logger:      logger,
	}
}

// Create creates a project and appends it to the portfolio order
func (s *ProjectService) Create(ctx context.Context, req *domain.CreateProjectRequest) (*domain.ProjectDTO, error) {
	project := &domain.Project{}
	if err := s.apply(ctx, project, req); err != nil {
		return nil, err
	}

	maxOrder, err := s.projectRepo.MaxDisplayOrder(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get display order: %w", err)
	}
	project.DisplayOrder = maxOrder + 1

	if err := s.projectRepo.Create(ctx, project); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrDuplicateSlug
		}
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	s.logger.Info("project created",
		zap.String("project_id", project.ID.String()),
		zap.String("slug", project.Slug))

	return s.GetByID(ctx, project.ID)
}

// GetByID returns a project with cover, gallery and before/after pairs
func (s *ProjectService) GetByID(ctx context.Context, id uuid.UUID) (*domain.ProjectDTO, error) {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	dto := mapper.ToProjectDTO(project)
	return &dto, nil
}

// GetPublishedBySlug returns a published project with its body rendered to HTML
func (s *ProjectService) GetPublishedBySlug(ctx context.Context, slug string) (*domain.ProjectDTO, error) {
	project, err := s.projectRepo.GetBySlug(ctx, slug, true)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	dto := mapper.ToProjectDTO(project)
	html, err := s.markdown.Render(project.Body)
	if err != nil {
		s.logger.Warn("failed to render project body", zap.String("project_id", project.ID.String()), zap.Error(err))
	}
	dto.BodyHTML = html
	return &dto, nil
}

// List returns a page of projects for the admin panel
func (s *ProjectService) List(ctx context.Context, page, pageSize int, filters *repository.ProjectFilters, sort repository.SortConfig) (*domain.PaginatedResponse, error) {
	page, pageSize = repository.NormalizePagination(page, pageSize)
	projects, total, err := s.projectRepo.List(ctx, page, pageSize, filters, sort)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	dtos := make([]domain.ProjectDTO, len(projects))
	for i := range projects {
		dtos[i] = mapper.ToProjectDTO(&projects[i])
	}
	resp := domain.NewPaginatedResponse(dtos, total, page, pageSize)
	return &resp, nil
}

// ListPublished returns published projects in portfolio order, optionally filtered by category
func (s *ProjectService) ListPublished(ctx context.Context, category string) ([]domain.ProjectDTO, error) {
	var filter *domain.ProjectCategory
	if category != "" {
		c := domain.ProjectCategory(category)
		if !c.IsValid() {
			return nil, ErrInvalidCategory
		}
		filter = &c
	}
	projects, err := s.projectRepo.ListPublished(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list published projects: %w", err)
	}
	return toProjectDTOs(projects), nil
}

// ListFeatured returns up to limit featured, published projects
func (s *ProjectService) ListFeatured(ctx context.Context, limit int) ([]domain.ProjectDTO, error) {
	projects, err := s.projectRepo.ListFeatured(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list featured projects: %w", err)
	}
	return toProjectDTOs(projects), nil
}

// Update replaces the editable fields of a project; display order is kept
func (s *ProjectService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateProjectRequest) (*domain.ProjectDTO, error) {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	if err := s.apply(ctx, project, req); err != nil {
		return nil, err
	}
	if err := s.projectRepo.Update(ctx, project); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrDuplicateSlug
		}
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	return s.GetByID(ctx, id)
}

// Delete removes a project and its before/after pairs; gallery media are detached, not deleted
func (s *ProjectService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.projectRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("failed to delete project: %w", err)
	}
	s.logger.Info("project deleted", zap.String("project_id", id.String()))
	return nil
}

// Reorder sets the portfolio order from the full list of project ids
func (s *ProjectService) Reorder(ctx context.Context, orderedIDs []uuid.UUID) error {
	count, err := s.projectRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count projects: %w", err)
	}
	if err := validateReorder(orderedIDs, count); err != nil {
		return err
	}
	if err := s.projectRepo.Reorder(ctx, orderedIDs); err != nil {
		return reorderError(err)
	}
	return nil
}

func (s *ProjectService) apply(ctx context.Context, project *domain.Project, req *domain.CreateProjectRequest) error {
	if !req.Category.IsValid() {
		return ErrInvalidCategory
	}

	slug, err := s.resolveSlug(ctx, req.Slug, req.Title, project.ID)
	if err != nil {
		return err
	}

	completedAt, err := mapper.ParseDate(req.CompletedAt)
	if err != nil {
		return ErrInvalidDate
	}

	if req.CoverMediaID != nil {
		if err := requireImage(ctx, s.mediaRepo, *req.CoverMediaID); err != nil {
			return err
		}
	}

	project.Title = strings.TrimSpace(req.Title)
	project.Slug = slug
	project.Summary = strings.TrimSpace(req.Summary)
	project.Body = req.Body
	project.Category = req.Category
	project.Location = strings.TrimSpace(req.Location)
	project.CompletedAt = completedAt
	project.Featured = req.Featured
	project.Published = req.Published
	project.CoverMediaID = req.CoverMediaID
	project.CoverMedia = nil
	return nil
}

func (s *ProjectService) resolveSlug(ctx context.Context, requested, title string, selfID uuid.UUID) (string, error) {
	slug, err := normalizeSlug(requested, title)
	if err != nil {
		return "", err
	}
	var exclude *uuid.UUID
	if selfID != uuid.Nil {
		exclude = &selfID
	}
	exists, err := s.projectRepo.SlugExists(ctx, slug, exclude)
	if err != nil {
		return "", fmt.Errorf("failed to check slug: %w", err)
	}
	if exists {
		return "", ErrDuplicateSlug
	}
	return slug, nil
}

func toProjectDTOs(projects []domain.Project) []domain.ProjectDTO {
	dtos := make([]domain.ProjectDTO, len(projects))
	for i := range projects {
		dtos[i] = mapper.ToProjectDTO(&projects[i])
	}
	return dtos
}

// normalizeSlug uses the requested slug when given, else derives one from fallback.
// A requested slug must normalize to a valid slug.
func normalizeSlug(requested, fallback string) (string, error) {
	source := strings.TrimSpace(requested)
	if source == "" {
		source = fallback
	}
	slug, err := content.NormalizeSlug(source)
	if err != nil || !content.IsValidSlug(slug) {
		return "", ErrInvalidSlug
	}
	return slug, nil
}

// requireImage checks that id refers to existing image media
func requireImage(ctx context.Context, mediaRepo *repository.MediaRepository, id uuid.UUID) error {
	media, err := mediaRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMediaNotFound
		}
		return fmt.Errorf("failed to get media: %w", err)
	}
	if !media.IsImage() {
		return fmt.Errorf("%w: %s", ErrNotAnImage, id)
	}
	return nil
}
