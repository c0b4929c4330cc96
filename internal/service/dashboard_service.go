package service

import (
	"context"
	"fmt"

	"github.com/fjordrenovering/website/internal/domain"
	"github.com/fjordrenovering/website/internal/mapper"
	"github.com/fjordrenovering/website/internal/repository"
	"go.uber.org/zap"
)

// recentMessageLimit is how many inbox messages the dashboard shows
const recentMessageLimit = 5

type DashboardService struct {
	projectRepo     *repository.ProjectRepository
	messageRepo     *repository.MessageRepository
	taskRepo        *repository.TaskRepository
	testimonialRepo *repository.TestimonialRepository
	mediaRepo       *repository.MediaRepository
	logger          *zap.Logger
}

func NewDashboardService(
	projectRepo *repository.ProjectRepository,
	messageRepo *repository.MessageRepository,
	taskRepo *repository.TaskRepository,
	testimonialRepo *repository.TestimonialRepository,
	mediaRepo *repository.MediaRepository,
	logger *zap.Logger,
) *DashboardService {
	return &DashboardService{
		projectRepo:     projectRepo,
		messageRepo:     messageRepo,
		taskRepo:        taskRepo,
		testimonialRepo: testimonialRepo,
		mediaRepo:       mediaRepo,
		logger:          logger,
	}
}

// GetDashboard returns the counters and recent inbox shown on the admin start page
func (s *DashboardService) GetDashboard(ctx context.Context) (*domain.DashboardDTO, error) {
	var (
		dash domain.DashboardDTO
		err  error
	)

	if dash.PublishedProjects, err = s.projectRepo.CountByPublished(ctx, true); err != nil {
		return nil, fmt.Errorf("failed to count published projects: %w", err)
	}
	if dash.DraftProjects, err = s.projectRepo.CountByPublished(ctx, false); err != nil {
		return nil, fmt.Errorf("failed to count draft projects: %w", err)
	}
	if dash.NewMessages, err = s.messageRepo.CountByStatus(ctx, domain.MessageStatusNew); err != nil {
		return nil, fmt.Errorf("failed to count new messages: %w", err)
	}
	if dash.ReadMessages, err = s.messageRepo.CountByStatus(ctx, domain.MessageStatusRead); err != nil {
		return nil, fmt.Errorf("failed to count read messages: %w", err)
	}
	if dash.OpenTasks, err = s.taskRepo.CountOpen(ctx); err != nil {
		return nil, fmt.Errorf("failed to count open tasks: %w", err)
	}
	if dash.Testimonials, err = s.testimonialRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count testimonials: %w", err)
	}
	if dash.MediaCount, err = s.mediaRepo.CountAll(ctx); err != nil {
		return nil, fmt.Errorf("failed to count media: %w", err)
	}

	recent, err := s.messageRepo.ListRecent(ctx, recentMessageLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent messages: %w", err)
	}
	dash.RecentMessages = make([]domain.MessageDTO, len(recent))
	for i := range recent {
		dash.RecentMessages[i] = mapper.ToMessageDTO(&recent[i])
	}

	return &dash, nil
}
