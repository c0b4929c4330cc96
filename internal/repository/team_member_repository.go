package repository

import (
	"context"

	"github.com/fjordrenovering/website/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TeamMemberRepository handles team member data
type TeamMemberRepository struct {
	db *gorm.DB
}

// NewTeamMemberRepository creates a new team member repository instance
func NewTeamMemberRepository(db *gorm.DB) *TeamMemberRepository {
	return &TeamMemberRepository{db: db}
}

// Create inserts a team member
func (r *TeamMemberRepository) Create(ctx context.Context, member *domain.TeamMember) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(member).Error
}

// GetByID retrieves a team member with the photo
func (r *TeamMemberRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.TeamMember, error) {
	var member domain.TeamMember
	if err := r.db.WithContext(ctx).Preload("PhotoMedia").Where("id = ?", id).First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// Update saves an existing team member
func (r *TeamMemberRepository) Update(ctx context.Context, member *domain.TeamMember) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(member).Error
}

// Delete removes a team member
func (r *TeamMemberRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.TeamMember{}, "id = ?", id).Error
}

// List returns team members in manual order; publishedOnly hides unpublished members
func (r *TeamMemberRepository) List(ctx context.Context, publishedOnly bool) ([]domain.TeamMember, error) {
	var members []domain.TeamMember
	query := r.db.WithContext(ctx).Preload("PhotoMedia")
	if publishedOnly {
		query = query.Where("published = ?", true)
	}
	err := query.Order("display_order ASC, created_at ASC").Find(&members).Error
	return members, err
}

// MaxDisplayOrder returns the highest display order of the team
func (r *TeamMemberRepository) MaxDisplayOrder(ctx context.Context) (int, error) {
	return maxDisplayOrder(ctx, r.db, &domain.TeamMember{}, GlobalScope)
}

// Count returns the team size
func (r *TeamMemberRepository) Count(ctx context.Context) (int64, error) {
	return countInScope(ctx, r.db, &domain.TeamMember{}, GlobalScope)
}

// Reorder sets the order of the team
func (r *TeamMemberRepository) Reorder(ctx context.Context, orderedIDs []uuid.UUID) error {
	return reorder(ctx, r.db, &domain.TeamMember{}, "team member", GlobalScope, orderedIDs)
}
