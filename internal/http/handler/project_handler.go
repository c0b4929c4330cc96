package handler

import (
	"net/http"

	"github.com/fjordrenovering/website/internal/domain"
	"github.com/fjordrenovering/website/internal/repository"
	"github.com/fjordrenovering/website/internal/service"
	"go.uber.org/zap"
)

// ProjectHandler handles admin requests for portfolio projects, their
// before/after pairs and the order of their galleries
type ProjectHandler struct {
	projectService *service.ProjectService
	pairService    *service.BeforeAfterPairService
	mediaService   *service.MediaService
	logger         *zap.Logger
}

// NewProjectHandler creates a new project handler instance
func NewProjectHandler(
	projectService *service.ProjectService,
	pairService *service.BeforeAfterPairService,
	mediaService *service.MediaService,
	logger *zap.Logger,
) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
		pairService:    pairService,
		mediaService:   mediaService,
		logger:         logger,
	}
}

// List godoc
// @Summary List projects
// @Description Paginated list of projects, drafts included
// @Tags Projects
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page (max 200)" default(20)
// @Param search query string false "Search in title, location and summary"
// @Param category query string false "Filter by category" Enums(residential, commercial)
// @Param published query bool false "Filter by published flag"
// @Param featured query bool false "Filter by featured flag"
// @Param sortBy query string false "Sort field" Enums(displayOrder, createdAt, updatedAt, title, completedAt)
// @Param sortOrder query string false "Sort order" Enums(asc, desc)
// @Success 200 {object} domain.PaginatedResponse{data=[]domain.ProjectDTO}
// @Failure 400 {object} domain.APIError
// @Failure 401 {object} domain.ErrorResponse
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/api/v1/projects [get]
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePagination(r)

	filters := &repository.ProjectFilters{
		Search:    r.URL.Query().Get("search"),
		Published: queryBool(r, "published"),
		Featured:  queryBool(r, "featured"),
	}
	if category := r.URL.Query().Get("category"); category != "" {
		c := domain.ProjectCategory(category)
		if !c.IsValid() {
			respondWithError(w, http.StatusBadRequest, service.ErrInvalidCategory.Error())
			return
		}
		filters.Category = &c
	}

	result, err := h.projectService.List(r.Context(), page, pageSize, filters, parseSort(r, repository.ManualOrderSortConfig()))
	if err != nil {
		respondServiceError(w, h.logger, err, "list projects")
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// GetByID godoc
// @Summary Get project by ID
// @Tags Projects
// @Produce json
// @Param id path string true "Project ID" format(uuid)
// @Success 200 {object} domain.ProjectDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/api/v1/projects/{id} [get]
func (h *ProjectHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "id", "project")
	if !ok {
		return
	}
	project, err := h.projectService.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.logger, err, "get project")
		return
	}
	respondJSON(w, http.StatusOK, project)
}

// Create godoc
// @Summary Create project
// @Description New projects are appended to the end of the portfolio
// @Tags Projects
// @Accept json
// @Produce json
// @Param request body domain.CreateProjectRequest true "Project data"
// @Success 201 {object} domain.ProjectDTO
// @Failure 400 {object} domain.APIError
// @Failure 409 {object} domain.APIError "Duplicate slug"
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/api/v1/projects [post]
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateProjectRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	project, err := h.projectService.Create(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "create project")
		return
	}
	w.Header().Set("Location", "/admin/api/v1/projects/"+project.ID.String())
	respondJSON(w, http.StatusCreated, project)
}

// Update godoc
// @Summary Update project
// @Tags Projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID" format(uuid)
// @Param request body domain.UpdateProjectRequest true "Project data"
// @Success 200 {object} domain.ProjectDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 409 {object} domain.APIError "Duplicate slug"
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/api/v1/projects/{id} [put]
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "id", "project")
	if !ok {
		return
	}
	var req domain.UpdateProjectRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	project, err := h.projectService.Update(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "update project")
		return
	}
	respondJSON(w, http.StatusOK, project)
}

// Delete godoc
// @Summary Delete project
// @Description Deletes the project and its before/after pairs; gallery media is detached, not deleted
// @Tags Projects
// @Param id path string true "Project ID" format(uuid)
// @Success 204
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/api/v1/projects/{id} [delete]
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "id", "project")
	if !ok {
		return
	}
	if err := h.projectService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, h.logger, err, "delete project")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Reorder godoc
// @Summary Reorder projects
// @Description Sets the portfolio order; orderedIds must list every project exactly once
// @Tags Projects
// @Accept json
// @Param request body domain.ReorderRequest true "Project IDs in display order"
// @Success 204
// @Failure 400 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/api/v1/projects/reorder [put]
func (h *ProjectHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	var req domain.ReorderRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.projectService.Reorder(r.Context(), req.OrderedIDs); err != nil {
		respondServiceError(w, h.logger, err, "reorder projects")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListPairs godoc
// @Summary List before/after pairs of a project
// @Tags Projects
// @Produce json
// @Param id path string true "Project ID" format(uuid)
// @Success 200 {array} domain.BeforeAfterPairDTO
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/api/v1/projects/{id}/pairs [get]
func (h *ProjectHandler) ListPairs(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "id", "project")
	if !ok {
		return
	}
	pairs, err := h.pairService.List(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.logger, err, "list before/after pairs")
		return
	}
	respondJSON(w, http.StatusOK, pairs)
}

// AddPair godoc
// @Summary Add a before/after pair
// @Description Both media must be images and must differ
// @Tags Projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID" format(uuid)
// @Param request body domain.CreateBeforeAfterPairRequest true "Pair data"
// @Success 201 {object} domain.BeforeAfterPairDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/api/v1/projects/{id}/pairs [post]
func (h *ProjectHandler) AddPair(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "id", "project")
	if !ok {
		return
	}
	var req domain.CreateBeforeAfterPairRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	pair, err := h.pairService.Add(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "add before/after pair")
		return
	}
	respondJSON(w, http.StatusCreated, pair)
}

// DeletePair godoc
// @Summary Delete a before/after pair
// @Tags Projects
// @Param id path string true "Project ID" format(uuid)
// @Param pairId path string true "Pair ID" format(uuid)
// @Success 204
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/api/v1/projects/{id}/pairs/{pairId} [delete]
func (h *ProjectHandler) DeletePair(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "id", "project")
	if !ok {
		return
	}
	pairID, ok := urlUUID(w, r, "pairId", "pair")
	if !ok {
		return
	}
	if err := h.pairService.Delete(r.Context(), id, pairID); err != nil {
		respondServiceError(w, h.logger, err, "delete before/after pair")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ReorderPairs godoc
// @Summary Reorder the before/after pairs of a project
// @Tags Projects
// @Accept json
// @Param id path string true "Project ID" format(uuid)
// @Param request body domain.ReorderRequest true "Pair IDs in display order"
// @Success 204
// @Failure 400 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/api/v1/projects/{id}/pairs/reorder [put]
func (h *ProjectHandler) ReorderPairs(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "id", "project")
	if !ok {
		return
	}
	var req domain.ReorderRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.pairService.Reorder(r.Context(), id, req.OrderedIDs); err != nil {
		respondServiceError(w, h.logger, err, "reorder before/after pairs")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ReorderMedia godoc
// @Summary Reorder the gallery of a project
// @Tags Projects
// @Accept json
// @Param id path string true "Project ID" format(uuid)
// @Param request body domain.ReorderRequest true "Media IDs in display order"
// @Success 204
// @Failure 400 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/api/v1/projects/{id}/media/reorder [put]
func (h *ProjectHandler) ReorderMedia(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "id", "project")
	if !ok {
		return
	}
	var req domain.ReorderRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.mediaService.Reorder(r.Context(), &id, req.OrderedIDs); err != nil {
		respondServiceError(w, h.logger, err, "reorder project media")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
