package repository

import (
	"context"
	"time"

	"github.com/fjordrenovering/website/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProjectFilters defines filter options for project listing
type ProjectFilters struct {
	Search    string
	Category  *domain.ProjectCategory
	Published *bool
	Featured  *bool
}

// projectSortableFields maps API field names to database column names for projects
var projectSortableFields = map[string]string{
	"createdAt":    "created_at",
	"updatedAt":    "updated_at",
	"title":        "title",
	"category":     "category",
	"completedAt":  "completed_at",
	"displayOrder": "display_order",
}

// ProjectRepository handles project data access operations
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository instance
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func preloadProjectDetails(db *gorm.DB) *gorm.DB {
	return db.
		Preload("CoverMedia").
		Preload("Media", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC, created_at ASC")
		}).
		Preload("BeforeAfterPairs", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC, created_at ASC")
		}).
		Preload("BeforeAfterPairs.BeforeMedia").
		Preload("BeforeAfterPairs.AfterMedia")
}

// Create creates a new project; associations are managed through their own repositories
func (r *ProjectRepository) Create(ctx context.Context, project *domain.Project) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(project).Error
}

// GetByID retrieves a project with its cover, gallery and before/after pairs
func (r *ProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	var project domain.Project
	err := r.db.WithContext(ctx).Scopes(preloadProjectDetails).Where("id = ?", id).First(&project).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Exists reports whether a project with id exists
func (r *ProjectRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Project{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// GetBySlug retrieves a project by slug; publishedOnly hides drafts from the public site
func (r *ProjectRepository) GetBySlug(ctx context.Context, slug string, publishedOnly bool) (*domain.Project, error) {
	var project domain.Project
	query := r.db.WithContext(ctx).Scopes(preloadProjectDetails).Where("slug = ?", slug)
	if publishedOnly {
		query = query.Where("published = ?", true)
	}
	if err := query.First(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// SlugExists reports whether another project already uses slug
func (r *ProjectRepository) SlugExists(ctx context.Context, slug string, excludeID *uuid.UUID) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&domain.Project{}).Where("slug = ?", slug)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

// Update saves scalar fields of an existing project
func (r *ProjectRepository) Update(ctx context.Context, project *domain.Project) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(project).Error
}

// Delete removes a project and its before/after pairs. Gallery media, tasks and
// testimonials are detached rather than deleted.
func (r *ProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&domain.BeforeAfterPair{}).Error; err != nil {
			return err
		}
		detached := map[string]interface{}{"project_id": nil, "updated_at": time.Now().UTC()}
		for _, model := range []interface{}{&domain.Media{}, &domain.Task{}, &domain.Testimonial{}} {
			if err := tx.Model(model).Where("project_id = ?", id).Updates(detached).Error; err != nil {
				return err
			}
		}
		result := tx.Delete(&domain.Project{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// List returns a paginated list of projects with filter and sort options
func (r *ProjectRepository) List(ctx context.Context, page, pageSize int, filters *ProjectFilters, sort SortConfig) ([]domain.Project, int64, error) {
	page, pageSize = NormalizePagination(page, pageSize)

	query := r.db.WithContext(ctx).Model(&domain.Project{})
	if filters != nil {
		if filters.Search != "" {
			pattern := likePattern(filters.Search)
			query = query.Where("LOWER(title) LIKE ? OR LOWER(location) LIKE ?", pattern, pattern)
		}
		if filters.Category != nil {
			query = query.Where("category = ?", *filters.Category)
		}
		if filters.Published != nil {
			query = query.Where("published = ?", *filters.Published)
		}
		if filters.Featured != nil {
			query = query.Where("featured = ?", *filters.Featured)
		}
	}

	var projects []domain.Project
	order := BuildOrderClause(sort, projectSortableFields, "display_order")
	total, err := paginate(query, page, pageSize, order, &projects, "CoverMedia")
	return projects, total, err
}

// ListPublished returns every published project in manual order, optionally for one category
func (r *ProjectRepository) ListPublished(ctx context.Context, category *domain.ProjectCategory) ([]domain.Project, error) {
	var projects []domain.Project
	query := r.db.WithContext(ctx).Preload("CoverMedia").Where("published = ?", true)
	if category != nil {
		query = query.Where("category = ?", *category)
	}
	err := query.Order("display_order ASC, created_at DESC").Find(&projects).Error
	return projects, err
}

// ListFeatured returns published featured projects in manual order
func (r *ProjectRepository) ListFeatured(ctx context.Context, limit int) ([]domain.Project, error) {
	var projects []domain.Project
	err := r.db.WithContext(ctx).
		Preload("CoverMedia").
		Where("published = ? AND featured = ?", true, true).
		Order("display_order ASC").
		Limit(limit).
		Find(&projects).Error
	return projects, err
}

// CountByPublished counts published or draft projects
func (r *ProjectRepository) CountByPublished(ctx context.Context, published bool) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Project{}).Where("published = ?", published).Count(&count).Error
	return count, err
}

// MaxDisplayOrder returns the highest display order, -1 when there are no projects
func (r *ProjectRepository) MaxDisplayOrder(ctx context.Context) (int, error) {
	return maxDisplayOrder(ctx, r.db, &domain.Project{}, GlobalScope)
}

// Count returns the total number of projects
func (r *ProjectRepository) Count(ctx context.Context) (int64, error) {
	return countInScope(ctx, r.db, &domain.Project{}, GlobalScope)
}

// Reorder sets the manual order of all projects
func (r *ProjectRepository) Reorder(ctx context.Context, orderedIDs []uuid.UUID) error {
	return reorder(ctx, r.db, &domain.Project{}, "project", GlobalScope, orderedIDs)
}
