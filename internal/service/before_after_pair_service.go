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

// BeforeAfterPairService manages the before/after slider images of a project
type BeforeAfterPairService struct {
	pairRepo    *repository.BeforeAfterPairRepository
	projectRepo *repository.ProjectRepository
	mediaRepo   *repository.MediaRepository
	logger      *zap.Logger
}

// NewBeforeAfterPairService creates a new BeforeAfterPairService instance
func NewBeforeAfterPairService(
	pairRepo *repository.BeforeAfterPairRepository,
	projectRepo *repository.ProjectRepository,
	mediaRepo *repository.MediaRepository,
	logger *zap.Logger,
) *BeforeAfterPairService {
	return &BeforeAfterPairService{
		pairRepo:    pairRepo,
		projectRepo: projectRepo,
		mediaRepo:   mediaRepo,
		logger:      logger,
	}
}

// List returns a project's pairs in slider order
func (s *BeforeAfterPairService) List(ctx context.Context, projectID uuid.UUID) ([]domain.BeforeAfterPairDTO, error) {
	if err := s.ensureProject(ctx, projectID); err != nil {
		return nil, err
	}
	pairs, err := s.pairRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list before/after pairs: %w", err)
	}
	dtos := make([]domain.BeforeAfterPairDTO, len(pairs))
	for i := range pairs {
		dtos[i] = mapper.ToBeforeAfterPairDTO(&pairs[i])
	}
	return dtos, nil
}

// Add appends a pair to the end of a project's slider
func (s *BeforeAfterPairService) Add(ctx context.Context, projectID uuid.UUID, req *domain.CreateBeforeAfterPairRequest) (*domain.BeforeAfterPairDTO, error) {
	if err := s.ensureProject(ctx, projectID); err != nil {
		return nil, err
	}
	if req.BeforeMediaID == req.AfterMediaID {
		return nil, ErrPairSameMedia
	}
	if err := requireImage(ctx, s.mediaRepo, req.BeforeMediaID); err != nil {
		return nil, err
	}
	if err := requireImage(ctx, s.mediaRepo, req.AfterMediaID); err != nil {
		return nil, err
	}

	maxOrder, err := s.pairRepo.MaxDisplayOrder(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get display order: %w", err)
	}

	pair := &domain.BeforeAfterPair{
		ProjectID:     projectID,
		BeforeMediaID: req.BeforeMediaID,
		AfterMediaID:  req.AfterMediaID,
		Caption:       strings.TrimSpace(req.Caption),
		DisplayOrder:  maxOrder + 1,
	}
	if err := s.pairRepo.Create(ctx, pair); err != nil {
		return nil, fmt.Errorf("failed to create before/after pair: %w", err)
	}

	created, err := s.pairRepo.GetByID(ctx, pair.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload before/after pair: %w", err)
	}
	dto := mapper.ToBeforeAfterPairDTO(created)
	return &dto, nil
}

// Delete removes a pair; the images themselves stay in the media library
func (s *BeforeAfterPairService) Delete(ctx context.Context, projectID, pairID uuid.UUID) error {
	if err := s.pairRepo.Delete(ctx, projectID, pairID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPairNotFound
		}
		return fmt.Errorf("failed to delete before/after pair: %w", err)
	}
	return nil
}

// Reorder sets the slider order of a project's pairs
func (s *BeforeAfterPairService) Reorder(ctx context.Context, projectID uuid.UUID, orderedIDs []uuid.UUID) error {
	if err := s.ensureProject(ctx, projectID); err != nil {
		return err
	}
	count, err := s.pairRepo.Count(ctx, projectID)
	if err != nil {
		return fmt.Errorf("failed to count before/after pairs: %w", err)
	}
	if err := validateReorder(orderedIDs, count); err != nil {
		return err
	}
	if err := s.pairRepo.Reorder(ctx, projectID, orderedIDs); err != nil {
		return reorderError(err)
	}
	return nil
}

func (s *BeforeAfterPairService) ensureProject(ctx context.Context, projectID uuid.UUID) error {
	exists, err := s.projectRepo.Exists(ctx, projectID)
	if err != nil {
		return fmt.Errorf("failed to check project: %w", err)
	}
	if !exists {
		return ErrProjectNotFound
	}
	return nil
}
