package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fjordrenovering/website/internal/domain"
	"github.com/fjordrenovering/website/internal/mapper"
	"github.com/fjordrenovering/website/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// TaskService handles the internal task board
type TaskService struct {
	taskRepo    *repository.TaskRepository
	projectRepo *repository.ProjectRepository
	teamRepo    *repository.TeamMemberRepository
	logger      *zap.Logger
	now         func() time.Time
}

// NewTaskService creates a new TaskService instance
func NewTaskService(
	taskRepo *repository.TaskRepository,
	projectRepo *repository.ProjectRepository,
	teamRepo *repository.TeamMemberRepository,
	logger *zap.Logger,
) *TaskService {
	return &TaskService{
		taskRepo:    taskRepo,
		projectRepo: projectRepo,
		teamRepo:    teamRepo,
		logger:      logger,
		now:         time.Now,
	}
}

// Create adds a task at the end of its column. Status defaults to todo and priority to medium.
func (s *TaskService) Create(ctx context.Context, req *domain.CreateTaskRequest) (*domain.TaskDTO, error) {
	task := &domain.Task{}
	if err := s.apply(ctx, task, req); err != nil {
		return nil, err
	}

	maxOrder, err := s.taskRepo.MaxDisplayOrder(ctx, task.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to get display order: %w", err)
	}
	task.DisplayOrder = maxOrder + 1
	if task.Status == domain.TaskStatusDone {
		now := s.now()
		task.CompletedAt = &now
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return s.GetByID(ctx, task.ID)
}

// GetByID returns a task with project and assignee names
func (s *TaskService) GetByID(ctx context.Context, id uuid.UUID) (*domain.TaskDTO, error) {
	task, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := mapper.ToTaskDTO(task)
	return &dto, nil
}

// List returns a page of tasks
func (s *TaskService) List(ctx context.Context, page, pageSize int, filters *repository.TaskFilters, sort repository.SortConfig) (*domain.PaginatedResponse, error) {
	page, pageSize = repository.NormalizePagination(page, pageSize)
	tasks, total, err := s.taskRepo.List(ctx, page, pageSize, filters, sort)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	dtos := make([]domain.TaskDTO, len(tasks))
	for i := range tasks {
		dtos[i] = mapper.ToTaskDTO(&tasks[i])
	}
	resp := domain.NewPaginatedResponse(dtos, total, page, pageSize)
	return &resp, nil
}

// Update replaces the editable fields of a task. A status change moves the task
// to the end of the new column.
func (s *TaskService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateTaskRequest) (*domain.TaskDTO, error) {
	task, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	previous := task.Status
	if err := s.apply(ctx, task, req); err != nil {
		return nil, err
	}
	if req.Status == "" {
		task.Status = previous
	}
	if err := s.transition(ctx, task, previous); err != nil {
		return nil, err
	}
	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	return s.GetByID(ctx, id)
}

// Move changes the status column of a task, appending it to the end of that column
func (s *TaskService) Move(ctx context.Context, id uuid.UUID, status domain.TaskStatus) (*domain.TaskDTO, error) {
	if !status.IsValid() {
		return nil, ErrInvalidTaskStatus
	}
	task, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if task.Status == status {
		dto := mapper.ToTaskDTO(task)
		return &dto, nil
	}
	previous := task.Status
	task.Status = status
	if err := s.transition(ctx, task, previous); err != nil {
		return nil, err
	}
	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to move task: %w", err)
	}

	s.logger.Debug("task moved",
		zap.String("task_id", id.String()),
		zap.String("from", string(previous)),
		zap.String("to", string(status)))

	return s.GetByID(ctx, id)
}

// Delete removes a task
func (s *TaskService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.get(ctx, id); err != nil {
		return err
	}
	if err := s.taskRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

// Reorder sets the order of one status column from the full list of its task ids
func (s *TaskService) Reorder(ctx context.Context, status domain.TaskStatus, orderedIDs []uuid.UUID) error {
	if !status.IsValid() {
		return ErrInvalidTaskStatus
	}
	count, err := s.taskRepo.Count(ctx, status)
	if err != nil {
		return fmt.Errorf("failed to count tasks: %w", err)
	}
	if err := validateReorder(orderedIDs, count); err != nil {
		return err
	}
	if err := s.taskRepo.Reorder(ctx, status, orderedIDs); err != nil {
		return reorderError(err)
	}
	return nil
}

// transition keeps CompletedAt and the column position consistent after a status change
func (s *TaskService) transition(ctx context.Context, task *domain.Task, previous domain.TaskStatus) error {
	if task.Status == previous {
		return nil
	}
	maxOrder, err := s.taskRepo.MaxDisplayOrder(ctx, task.Status)
	if err != nil {
		return fmt.Errorf("failed to get display order: %w", err)
	}
	task.DisplayOrder = maxOrder + 1

	switch {
	case task.Status == domain.TaskStatusDone:
		now := s.now()
		task.CompletedAt = &now
	case previous == domain.TaskStatusDone:
		task.CompletedAt = nil
	}
	return nil
}

func (s *TaskService) apply(ctx context.Context, task *domain.Task, req *domain.CreateTaskRequest) error {
	status := req.Status
	if status == "" {
		status = domain.TaskStatusTodo
	}
	if !status.IsValid() {
		return ErrInvalidTaskStatus
	}
	priority := req.Priority
	if priority == "" {
		priority = domain.TaskPriorityMedium
	}
	switch priority {
	case domain.TaskPriorityLow, domain.TaskPriorityMedium, domain.TaskPriorityHigh:
	default:
		return ErrInvalidTaskPriority
	}

	dueDate, err := mapper.ParseDate(req.DueDate)
	if err != nil {
		return ErrInvalidDate
	}

	if req.ProjectID != nil {
		exists, err := s.projectRepo.Exists(ctx, *req.ProjectID)
		if err != nil {
			return fmt.Errorf("failed to check project: %w", err)
		}
		if !exists {
			return ErrProjectNotFound
		}
	}
	if req.AssigneeID != nil {
		if _, err := s.teamRepo.GetByID(ctx, *req.AssigneeID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTeamMemberNotFound
			}
			return fmt.Errorf("failed to check assignee: %w", err)
		}
	}

	task.Title = strings.TrimSpace(req.Title)
	task.Description = req.Description
	task.Status = status
	task.Priority = priority
	task.DueDate = dueDate
	task.ProjectID = req.ProjectID
	task.Project = nil
	task.AssigneeID = req.AssigneeID
	task.Assignee = nil
	return nil
}

func (s *TaskService) get(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return task, nil
}
