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

// TeamService manages the team shown on the about page
type TeamService struct {
	teamRepo  *repository.TeamMemberRepository
	taskRepo  *repository.TaskRepository
	mediaRepo *repository.MediaRepository
	logger    *zap.Logger
}

// NewTeamService creates a new TeamService instance
func NewTeamService(
	teamRepo *repository.TeamMemberRepository,
	taskRepo *repository.TaskRepository,
	mediaRepo *repository.MediaRepository,
	logger *zap.Logger,
) *TeamService {
	return &TeamService{
		teamRepo:  teamRepo,
		taskRepo:  taskRepo,
		mediaRepo: mediaRepo,
		logger:    logger,
	}
}

// List returns team members in display order
func (s *TeamService) List(ctx context.Context, publishedOnly bool) ([]domain.TeamMemberDTO, error) {
	members, err := s.teamRepo.List(ctx, publishedOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list team members: %w", err)
	}
	dtos := make([]domain.TeamMemberDTO, len(members))
	for i := range members {
		dtos[i] = mapper.ToTeamMemberDTO(&members[i])
	}
	return dtos, nil
}

// GetByID returns a team member
func (s *TeamService) GetByID(ctx context.Context, id uuid.UUID) (*domain.TeamMemberDTO, error) {
	member, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := mapper.ToTeamMemberDTO(member)
	return &dto, nil
}

// Create adds a team member at the end of the list
func (s *TeamService) Create(ctx context.Context, req *domain.CreateTeamMemberRequest) (*domain.TeamMemberDTO, error) {
	member := &domain.TeamMember{}
	if err := s.apply(ctx, member, req); err != nil {
		return nil, err
	}
	maxOrder, err := s.teamRepo.MaxDisplayOrder(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get display order: %w", err)
	}
	member.DisplayOrder = maxOrder + 1

	if err := s.teamRepo.Create(ctx, member); err != nil {
		return nil, fmt.Errorf("failed to create team member: %w", err)
	}
	return s.GetByID(ctx, member.ID)
}

// Update replaces the editable fields of a team member
func (s *TeamService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateTeamMemberRequest) (*domain.TeamMemberDTO, error) {
	member, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.apply(ctx, member, req); err != nil {
		return nil, err
	}
	if err := s.teamRepo.Update(ctx, member); err != nil {
		return nil, fmt.Errorf("failed to update team member: %w", err)
	}
	return s.GetByID(ctx, id)
}

// Delete removes a team member and unassigns their tasks
func (s *TeamService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.get(ctx, id); err != nil {
		return err
	}
	if err := s.taskRepo.UnassignMember(ctx, id); err != nil {
		return fmt.Errorf("failed to unassign tasks: %w", err)
	}
	if err := s.teamRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete team member: %w", err)
	}
	return nil
}

// Reorder sets the order of the team from the full list of member ids
func (s *TeamService) Reorder(ctx context.Context, orderedIDs []uuid.UUID) error {
	count, err := s.teamRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count team members: %w", err)
	}
	if err := validateReorder(orderedIDs, count); err != nil {
		return err
	}
	if err := s.teamRepo.Reorder(ctx, orderedIDs); err != nil {
		return reorderError(err)
	}
	return nil
}

func (s *TeamService) apply(ctx context.Context, member *domain.TeamMember, req *domain.CreateTeamMemberRequest) error {
	if req.PhotoMediaID != nil {
		if err := requireImage(ctx, s.mediaRepo, *req.PhotoMediaID); err != nil {
			return err
		}
	}
	member.Name = strings.TrimSpace(req.Name)
	member.Role = strings.TrimSpace(req.Role)
	member.Bio = req.Bio
	member.Email = strings.ToLower(strings.TrimSpace(req.Email))
	member.Phone = strings.TrimSpace(req.Phone)
	member.PhotoMediaID = req.PhotoMediaID
	member.PhotoMedia = nil
	member.Published = req.Published
	return nil
}

func (s *TeamService) get(ctx context.Context, id uuid.UUID) (*domain.TeamMember, error) {
	member, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamMemberNotFound
		}
		return nil, fmt.Errorf("failed to get team member: %w", err)
	}
	return member, nil
}
