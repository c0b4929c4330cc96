package repository

import (
	"context"

	"github.com/fjordrenovering/website/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BeforeAfterPairRepository handles before/after image pairs of a project
type BeforeAfterPairRepository struct {
	db *gorm.DB
}

// NewBeforeAfterPairRepository creates a new pair repository instance
func NewBeforeAfterPairRepository(db *gorm.DB) *BeforeAfterPairRepository {
	return &BeforeAfterPairRepository{db: db}
}

// Create inserts a pair
func (r *BeforeAfterPairRepository) Create(ctx context.Context, pair *domain.BeforeAfterPair) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(pair).Error
}

// GetByID retrieves a pair with both images
func (r *BeforeAfterPairRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.BeforeAfterPair, error) {
	var pair domain.BeforeAfterPair
	err := r.db.WithContext(ctx).
		Preload("BeforeMedia").
		Preload("AfterMedia").
		Where("id = ?", id).
		First(&pair).Error
	if err != nil {
		return nil, err
	}
	return &pair, nil
}

// Delete removes a pair belonging to projectID
func (r *BeforeAfterPairRepository) Delete(ctx context.Context, projectID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&domain.BeforeAfterPair{}, "id = ? AND project_id = ?", id, projectID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListByProject returns a project's pairs in slider order
func (r *BeforeAfterPairRepository) ListByProject(ctx context.Context, projectID uuid.UUID) ([]domain.BeforeAfterPair, error) {
	var pairs []domain.BeforeAfterPair
	err := r.db.WithContext(ctx).
		Preload("BeforeMedia").
		Preload("AfterMedia").
		Where("project_id = ?", projectID).
		Order("display_order ASC, created_at ASC").
		Find(&pairs).Error
	return pairs, err
}

// MaxDisplayOrder returns the highest pair order within a project
func (r *BeforeAfterPairRepository) MaxDisplayOrder(ctx context.Context, projectID uuid.UUID) (int, error) {
	return maxDisplayOrder(ctx, r.db, &domain.BeforeAfterPair{}, ColumnScope("project_id", projectID))
}

// Count returns the number of pairs of a project
func (r *BeforeAfterPairRepository) Count(ctx context.Context, projectID uuid.UUID) (int64, error) {
	return countInScope(ctx, r.db, &domain.BeforeAfterPair{}, ColumnScope("project_id", projectID))
}

// Reorder sets the slider order of a project's pairs
func (r *BeforeAfterPairRepository) Reorder(ctx context.Context, projectID uuid.UUID, orderedIDs []uuid.UUID) error {
	return reorder(ctx, r.db, &domain.BeforeAfterPair{}, "before/after pair", ColumnScope("project_id", projectID), orderedIDs)
}
