package repository

import (
	"context"
	"time"

	"github.com/fjordrenovering/website/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MediaFilters defines filter options for media listing
type MediaFilters struct {
	ProjectID  *uuid.UUID
	Unattached bool
	Kind       *domain.MediaKind
	Search     string
}

var mediaSortableFields = map[string]string{
	"createdAt":    "created_at",
	"updatedAt":    "updated_at",
	"filename":     "filename",
	"size":         "size",
	"displayOrder": "display_order",
}

// MediaRepository handles media metadata
type MediaRepository struct {
	db *gorm.DB
}

// NewMediaRepository creates a new media repository instance
func NewMediaRepository(db *gorm.DB) *MediaRepository {
	return &MediaRepository{db: db}
}

// Create inserts a media row
func (r *MediaRepository) Create(ctx context.Context, media *domain.Media) error {
	return r.db.WithContext(ctx).Create(media).Error
}

// GetByID retrieves media by its ID
func (r *MediaRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Media, error) {
	var media domain.Media
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&media).Error; err != nil {
		return nil, err
	}
	return &media, nil
}

// GetByIDs retrieves several media rows; missing ids are simply absent from the result
func (r *MediaRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Media, error) {
	var media []domain.Media
	if len(ids) == 0 {
		return media, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&media).Error
	return media, err
}

// Update saves an existing media row
func (r *MediaRepository) Update(ctx context.Context, media *domain.Media) error {
	return r.db.WithContext(ctx).Save(media).Error
}

// Delete removes a media row
func (r *MediaRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Media{}, "id = ?", id).Error
}

// List returns a paginated list of media
func (r *MediaRepository) List(ctx context.Context, page, pageSize int, filters *MediaFilters, sort SortConfig) ([]domain.Media, int64, error) {
	page, pageSize = NormalizePagination(page, pageSize)

	query := r.db.WithContext(ctx).Model(&domain.Media{})
	if filters != nil {
		switch {
		case filters.ProjectID != nil:
			query = query.Where("project_id = ?", *filters.ProjectID)
		case filters.Unattached:
			query = query.Where("project_id IS NULL")
		}
		if filters.Kind != nil {
			query = query.Where("kind = ?", *filters.Kind)
		}
		if filters.Search != "" {
			pattern := likePattern(filters.Search)
			query = query.Where("LOWER(filename) LIKE ? OR LOWER(alt_text) LIKE ?", pattern, pattern)
		}
	}

	var media []domain.Media
	order := BuildOrderClause(sort, mediaSortableFields, "created_at")
	total, err := paginate(query, page, pageSize, order, &media)
	return media, total, err
}

// ListByProject returns a project's gallery in manual order
func (r *MediaRepository) ListByProject(ctx context.Context, projectID uuid.UUID) ([]domain.Media, error) {
	var media []domain.Media
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("display_order ASC, created_at ASC").
		Find(&media).Error
	return media, err
}

// IsReferenced reports whether media is used as a project cover, team photo or in a before/after pair
func (r *MediaRepository) IsReferenced(ctx context.Context, id uuid.UUID) (bool, error) {
	checks := []struct {
		model interface{}
		where string
		args  []interface{}
	}{
		{&domain.Project{}, "cover_media_id = ?", []interface{}{id}},
		{&domain.TeamMember{}, "photo_media_id = ?", []interface{}{id}},
		{&domain.BeforeAfterPair{}, "before_media_id = ? OR after_media_id = ?", []interface{}{id, id}},
	}
	for _, c := range checks {
		var count int64
		if err := r.db.WithContext(ctx).Model(c.model).Where(c.where, c.args...).Count(&count).Error; err != nil {
			return false, err
		}
		if count > 0 {
			return true, nil
		}
	}
	return false, nil
}

// ListUnreferencedBefore returns unattached media, untouched since cutoff, that nothing points at.
// Detaching media from a deleted project bumps updated_at, so the grace period restarts then.
func (r *MediaRepository) ListUnreferencedBefore(ctx context.Context, cutoff time.Time, limit int) ([]domain.Media, error) {
	var media []domain.Media
	db := r.db.WithContext(ctx)
	err := db.
		Where("project_id IS NULL AND updated_at < ?", cutoff.UTC()).
		Where("id NOT IN (?)", db.Model(&domain.Project{}).Select("cover_media_id").Where("cover_media_id IS NOT NULL")).
		Where("id NOT IN (?)", db.Model(&domain.TeamMember{}).Select("photo_media_id").Where("photo_media_id IS NOT NULL")).
		Where("id NOT IN (?)", db.Model(&domain.BeforeAfterPair{}).Select("before_media_id")).
		Where("id NOT IN (?)", db.Model(&domain.BeforeAfterPair{}).Select("after_media_id")).
		Order("updated_at ASC").
		Limit(limit).
		Find(&media).Error
	return media, err
}

// CountAll returns the number of stored media
func (r *MediaRepository) CountAll(ctx context.Context) (int64, error) {
	return countInScope(ctx, r.db, &domain.Media{}, GlobalScope)
}

// MaxDisplayOrder returns the highest order in a project's gallery (or among unattached media)
func (r *MediaRepository) MaxDisplayOrder(ctx context.Context, projectID *uuid.UUID) (int, error) {
	return maxDisplayOrder(ctx, r.db, &domain.Media{}, NullableScope("project_id", projectID))
}

// Count returns the number of media in a project's gallery (or unattached)
func (r *MediaRepository) Count(ctx context.Context, projectID *uuid.UUID) (int64, error) {
	return countInScope(ctx, r.db, &domain.Media{}, NullableScope("project_id", projectID))
}

// Reorder sets the gallery order of a project (or of unattached media)
func (r *MediaRepository) Reorder(ctx context.Context, projectID *uuid.UUID, orderedIDs []uuid.UUID) error {
	return reorder(ctx, r.db, &domain.Media{}, "media", NullableScope("project_id", projectID), orderedIDs)
}
