package repository

import (
	"context"

	"github.com/fjordrenovering/website/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TaskFilters defines filter options for task listing
type TaskFilters struct {
	Search     string
	Status     *domain.TaskStatus
	Priority   *domain.TaskPriority
	ProjectID  *uuid.UUID
	AssigneeID *uuid.UUID
}

var taskSortableFields = map[string]string{
	"createdAt":    "created_at",
	"updatedAt":    "updated_at",
	"title":        "title",
	"dueDate":      "due_date",
	"priority":     "priority",
	"displayOrder": "display_order",
}

// TaskRepository handles internal task board data
type TaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new task repository instance
func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create inserts a task
func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(task).Error
}

// GetByID retrieves a task with its project and assignee
func (r *TaskRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	var task domain.Task
	err := r.db.WithContext(ctx).
		Preload("Project").
		Preload("Assignee").
		Where("id = ?", id).
		First(&task).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// Update saves an existing task
func (r *TaskRepository) Update(ctx context.Context, task *domain.Task) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(task).Error
}

// Delete removes a task
func (r *TaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Task{}, "id = ?", id).Error
}

// List returns a paginated list of tasks. The board default is column order.
func (r *TaskRepository) List(ctx context.Context, page, pageSize int, filters *TaskFilters, sort SortConfig) ([]domain.Task, int64, error) {
	page, pageSize = NormalizePagination(page, pageSize)

	query := r.db.WithContext(ctx).Model(&domain.Task{})
	if filters != nil {
		if filters.Search != "" {
			pattern := likePattern(filters.Search)
			query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
		}
		if filters.Status != nil {
			query = query.Where("status = ?", *filters.Status)
		}
		if filters.Priority != nil {
			query = query.Where("priority = ?", *filters.Priority)
		}
		if filters.ProjectID != nil {
			query = query.Where("project_id = ?", *filters.ProjectID)
		}
		if filters.AssigneeID != nil {
			query = query.Where("assignee_id = ?", *filters.AssigneeID)
		}
	}

	var tasks []domain.Task
	order := BuildOrderClause(sort, taskSortableFields, "display_order")
	total, err := paginate(query, page, pageSize, order, &tasks, "Project", "Assignee")
	return tasks, total, err
}

// CountOpen counts tasks that are not done
func (r *TaskRepository) CountOpen(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Task{}).Where("status <> ?", domain.TaskStatusDone).Count(&count).Error
	return count, err
}

// UnassignMember clears the assignee of every task assigned to a removed team member
func (r *TaskRepository) UnassignMember(ctx context.Context, memberID uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&domain.Task{}).Where("assignee_id = ?", memberID).Update("assignee_id", nil).Error
}

// MaxDisplayOrder returns the highest order within a status column
func (r *TaskRepository) MaxDisplayOrder(ctx context.Context, status domain.TaskStatus) (int, error) {
	return maxDisplayOrder(ctx, r.db, &domain.Task{}, ColumnScope("status", status))
}

// Count returns the number of tasks in a status column
func (r *TaskRepository) Count(ctx context.Context, status domain.TaskStatus) (int64, error) {
	return countInScope(ctx, r.db, &domain.Task{}, ColumnScope("status", status))
}

// Reorder sets the order of one status column
func (r *TaskRepository) Reorder(ctx context.Context, status domain.TaskStatus, orderedIDs []uuid.UUID) error {
	return reorder(ctx, r.db, &domain.Task{}, "task", ColumnScope("status", status), orderedIDs)
}
