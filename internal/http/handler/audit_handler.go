package handler

import (
	"net/http"
	"time"

	"github.com/fjordrenovering/website/internal/auth"
	"github.com/fjordrenovering/website/internal/domain"
	"github.com/fjordrenovering/website/internal/service"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AuditHandler handles audit log related HTTP requests
type AuditHandler struct {
	auditService *service.AuditLogService
	logger       *zap.Logger
}

// NewAuditHandler creates a new audit handler
func NewAuditHandler(auditService *service.AuditLogService, logger *zap.Logger) *AuditHandler {
	return &AuditHandler{
		auditService: auditService,
		logger:       logger,
	}
}

// requireAdmin answers 401/403 unless the caller has the admin role
func requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	userCtx, ok := auth.FromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Not authenticated")
		return false
	}
	if !userCtx.IsAdmin() {
		respondWithError(w, http.StatusForbidden, "Insufficient permissions")
		return false
	}
	return true
}

// List godoc
// @Summary List audit logs
// @Description Returns a paginated list of audit log entries with optional filters, newest first
// @Tags Audit
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param pageSize query int false "Page size (default: 20, max: 200)"
// @Param userId query string false "Filter by user ID"
// @Param action query string false "Filter by action type" Enums(create, update, delete, login, logout, reorder)
// @Param entityType query string false "Filter by entity type"
// @Param entityId query string false "Filter by entity ID"
// @Param startTime query string false "Filter by start time (RFC3339)"
// @Param endTime query string false "Filter by end time (RFC3339)"
// @Success 200 {object} domain.PaginatedResponse{data=[]domain.AuditLogDTO}
// @Failure 400 {object} domain.APIError
// @Failure 401 {object} domain.APIError
// @Failure 403 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/api/v1/audit [get]
func (h *AuditHandler) List(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	page, pageSize := parsePagination(r)
	params := service.AuditLogQueryParams{
		UserID:     r.URL.Query().Get("userId"),
		EntityType: r.URL.Query().Get("entityType"),
		Page:       page,
		PageSize:   pageSize,
	}

	if actionStr := r.URL.Query().Get("action"); actionStr != "" {
		action := domain.AuditAction(actionStr)
		params.Action = &action
	}

	entityID, err := queryUUID(r, "entityId")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	params.EntityID = entityID

	for name, target := range map[string]**time.Time{"startTime": &params.StartTime, "endTime": &params.EndTime} {
		raw := r.URL.Query().Get(name)
		if raw == "" {
			continue
		}
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid "+name+": must be RFC3339")
			return
		}
		*target = &t
	}

	result, err := h.auditService.List(r.Context(), params)
	if err != nil {
		respondServiceError(w, h.logger, err, "list audit logs")
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// GetByEntity godoc
// @Summary Get audit history of an entity
// @Tags Audit
// @Produce json
// @Param entityType path string true "Entity type" Enums(project, before_after_pair, media, task, team_member, testimonial, service, message, admin_user)
// @Param id path string true "Entity ID" format(uuid)
// @Param limit query int false "Maximum entries (default 50, max 200)"
// @Success 200 {array} domain.AuditLogDTO
// @Failure 400 {object} domain.APIError
// @Failure 403 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/api/v1/audit/entity/{entityType}/{id} [get]
func (h *AuditHandler) GetByEntity(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}
	id, ok := urlUUID(w, r, "id", "entity")
	if !ok {
		return
	}

	logs, err := h.auditService.GetByEntity(r.Context(), chi.URLParam(r, "entityType"), id, parseLimit(r, 50, 200))
	if err != nil {
		respondServiceError(w, h.logger, err, "get entity audit logs")
		return
	}
	respondJSON(w, http.StatusOK, logs)
}
