package handler

import (
	"net/http"

	"github.com/fjordrenovering/website/internal/domain"
	"github.com/fjordrenovering/website/internal/service"
	"go.uber.org/zap"
)

// CatalogHandler handles the offered services (kitchens, bathrooms, roofing...)
type CatalogHandler struct {
	catalogService *service.CatalogService
	logger         *zap.Logger
}

// NewCatalogHandler creates a new catalog handler instance
func NewCatalogHandler(catalogService *service.CatalogService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		logger:         logger,
	}
}

// List godoc
// @Summary List services
// @Tags Services
// @Produce json
// @Success 200 {array} domain.ServiceDTO
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/api/v1/services [get]
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	services, err := h.catalogService.List(r.Context(), false)
	if err != nil {
		respondServiceError(w, h.logger, err, "list services")
		return
	}
	respondJSON(w, http.StatusOK, services)
}

// GetByID godoc
// @Summary Get service by ID
// @Tags Services
// @Produce json
// @Param id path string true "Service ID" format(uuid)
// @Success 200 {object} domain.ServiceDTO
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/api/v1/services/{id} [get]
func (h *CatalogHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "id", "service")
	if !ok {
		return
	}
	item, err := h.catalogService.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.logger, err, "get service")
		return
	}
	respondJSON(w, http.StatusOK, item)
}

// Create godoc
// @Summary Create service
// @Tags Services
// @Accept json
// @Produce json
// @Param request body domain.CreateServiceRequest true "Service data"
// @Success 201 {object} domain.ServiceDTO
// @Failure 400 {object} domain.APIError
// @Failure 409 {object} domain.APIError "Duplicate slug"
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/api/v1/services [post]
func (h *CatalogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateServiceRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	item, err := h.catalogService.Create(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "create service")
		return
	}
	respondJSON(w, http.StatusCreated, item)
}

// Update godoc
// @Summary Update service
// @Tags Services
// @Accept json
// @Produce json
// @Param id path string true "Service ID" format(uuid)
// @Param request body domain.UpdateServiceRequest true "Service data"
// @Success 200 {object} domain.ServiceDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 409 {object} domain.APIError "Duplicate slug"
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/api/v1/services/{id} [put]
func (h *CatalogHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "id", "service")
	if !ok {
		return
	}
	var req domain.UpdateServiceRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	item, err := h.catalogService.Update(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "update service")
		return
	}
	respondJSON(w, http.StatusOK, item)
}

// Delete godoc
// @Summary Delete service
// @Tags Services
// @Param id path string true "Service ID" format(uuid)
// @Success 204
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/api/v1/services/{id} [delete]
func (h *CatalogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "id", "service")
	if !ok {
		return
	}
	if err := h.catalogService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, h.logger, err, "delete service")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Reorder godoc
// @Summary Reorder services
// @Tags Services
// @Accept json
// @Param request body domain.ReorderRequest true "Service IDs in display order"
// @Success 204
// @Failure 400 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/api/v1/services/reorder [put]
func (h *CatalogHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	var req domain.ReorderRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.catalogService.Reorder(r.Context(), req.OrderedIDs); err != nil {
		respondServiceError(w, h.logger, err, "reorder services")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
