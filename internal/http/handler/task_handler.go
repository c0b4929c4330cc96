package handler

import (
	"net/http"

	"github.com/fjordrenovering/website/internal/domain"
	"github.com/fjordrenovering/website/internal/repository"
	"github.com/fjordrenovering/website/internal/service"
	"go.uber.org/zap"
)

// TaskHandler handles the internal task board
type TaskHandler struct {
	taskService *service.TaskService
	logger      *zap.Logger
}

// NewTaskHandler creates a new task handler instance
func NewTaskHandler(taskService *service.TaskService, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
		logger:      logger,
	}
}

// List godoc
// @Summary List tasks
// @Description Tasks sorted by board position unless sortBy is given
// @Tags Tasks
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page (max 200)" default(20)
// @Param status query string false "Filter by status" Enums(todo, in_progress, done)
// @Param priority query string false "Filter by priority" Enums(low, medium, high)
// @Param projectId query string false "Filter by project" format(uuid)
// @Param assigneeId query string false "Filter by team member" format(uuid)
// @Param search query string false "Search in title and description"
// @Param sortBy query string false "Sort field" Enums(displayOrder, createdAt, updatedAt, dueDate, priority, title)
// @Param sortOrder query string false "Sort order" Enums(asc, desc)
// @Success 200 {object} domain.PaginatedResponse{data=[]domain.TaskDTO}
// @Failure 400 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/api/v1/tasks [get]
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePagination(r)

	projectID, err := queryUUID(r, "projectId")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	assigneeID, err := queryUUID(r, "assigneeId")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	filters := &repository.TaskFilters{
		Search:     r.URL.Query().Get("search"),
		ProjectID:  projectID,
		AssigneeID: assigneeID,
	}
	if status := r.URL.Query().Get("status"); status != "" {
		s := domain.TaskStatus(status)
		if !s.IsValid() {
			respondWithError(w, http.StatusBadRequest, service.ErrInvalidTaskStatus.Error())
			return
		}
		filters.Status = &s
	}
	if priority := r.URL.Query().Get("priority"); priority != "" {
		p := domain.TaskPriority(priority)
		filters.Priority = &p
	}

	result, err := h.taskService.List(r.Context(), page, pageSize, filters, parseSort(r, repository.ManualOrderSortConfig()))
	if err != nil {
		respondServiceError(w, h.logger, err, "list tasks")
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// GetByID godoc
// @Summary Get task by ID
// @Tags Tasks
// @Produce json
// @Param id path string true "Task ID" format(uuid)
// @Success 200 {object} domain.TaskDTO
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/api/v1/tasks/{id} [get]
func (h *TaskHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "id", "task")
	if !ok {
		return
	}
	task, err := h.taskService.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.logger, err, "get task")
		return
	}
	respondJSON(w, http.StatusOK, task)
}

// Create godoc
// @Summary Create task
// @Description Status defaults to todo and priority to medium; the task is appended to its column
// @Tags Tasks
// @Accept json
// @Produce json
// @Param request body domain.CreateTaskRequest true "Task data"
// @Success 201 {object} domain.TaskDTO
// @Failure 400 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/api/v1/tasks [post]
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateTaskRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	task, err := h.taskService.Create(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "create task")
		return
	}
	respondJSON(w, http.StatusCreated, task)
}

// Update godoc
// @Summary Update task
// @Tags Tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID" format(uuid)
// @Param request body domain.UpdateTaskRequest true "Task data"
// @Success 200 {object} domain.TaskDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/api/v1/tasks/{id} [put]
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "id", "task")
	if !ok {
		return
	}
	var req domain.UpdateTaskRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	task, err := h.taskService.Update(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "update task")
		return
	}
	respondJSON(w, http.StatusOK, task)
}

// Move godoc
// @Summary Move task to another column
// @Description Appends the task to the end of the target column and maintains completedAt
// @Tags Tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID" format(uuid)
// @Param request body domain.MoveTaskRequest true "Target status"
// @Success 200 {object} domain.TaskDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/api/v1/tasks/{id}/move [post]
func (h *TaskHandler) Move(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "id", "task")
	if !ok {
		return
	}
	var req domain.MoveTaskRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	task, err := h.taskService.Move(r.Context(), id, req.Status)
	if err != nil {
		respondServiceError(w, h.logger, err, "move task")
		return
	}
	respondJSON(w, http.StatusOK, task)
}

// Delete godoc
// @Summary Delete task
// @Tags Tasks
// @Param id path string true "Task ID" format(uuid)
// @Success 204
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/api/v1/tasks/{id} [delete]
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "id", "task")
	if !ok {
		return
	}
	if err := h.taskService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, h.logger, err, "delete task")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Reorder godoc
// @Summary Reorder one task column
// @Description orderedIds must list every task with the given status exactly once
// @Tags Tasks
// @Accept json
// @Param request body domain.ReorderTasksRequest true "Column and task IDs in order"
// @Success 204
// @Failure 400 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/api/v1/tasks/reorder [put]
func (h *TaskHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	var req domain.ReorderTasksRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.taskService.Reorder(r.Context(), req.Status, req.OrderedIDs); err != nil {
		respondServiceError(w, h.logger, err, "reorder tasks")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
