package handler

import (
	"net/http"

	"github.com/fjordrenovering/website/internal/domain"
	"github.com/fjordrenovering/website/internal/repository"
	"github.com/fjordrenovering/website/internal/service"
	"go.uber.org/zap"
)

// TestimonialHandler handles client testimonials
type TestimonialHandler struct {
	testimonialService *service.TestimonialService
	logger             *zap.Logger
}

// NewTestimonialHandler creates a new testimonial handler instance
func NewTestimonialHandler(testimonialService *service.TestimonialService, logger *zap.Logger) *TestimonialHandler {
	return &TestimonialHandler{
		testimonialService: testimonialService,
		logger:             logger,
	}
}

// List godoc
// @Summary List testimonials
// @Tags Testimonials
// @Produce json
// @Param published query bool false "Filter by published flag"
// @Param featured query bool false "Filter by featured flag"
// @Param projectId query string false "Filter by project" format(uuid)
// @Success 200 {array} domain.TestimonialDTO
// @Failure 400 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/api/v1/testimonials [get]
func (h *TestimonialHandler) List(w http.ResponseWriter, r *http.Request) {
	projectID, err := queryUUID(r, "projectId")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	filters := &repository.TestimonialFilters{
		Published: queryBool(r, "published"),
		Featured:  queryBool(r, "featured"),
		ProjectID: projectID,
	}
	testimonials, err := h.testimonialService.List(r.Context(), filters, 0)
	if err != nil {
		respondServiceError(w, h.logger, err, "list testimonials")
		return
	}
	respondJSON(w, http.StatusOK, testimonials)
}

// GetByID godoc
// @Summary Get testimonial by ID
// @Tags Testimonials
// @Produce json
// @Param id path string true "Testimonial ID" format(uuid)
// @Success 200 {object} domain.TestimonialDTO
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/api/v1/testimonials/{id} [get]
func (h *TestimonialHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "id", "testimonial")
	if !ok {
		return
	}
	testimonial, err := h.testimonialService.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.logger, err, "get testimonial")
		return
	}
	respondJSON(w, http.StatusOK, testimonial)
}

// Create godoc
// @Summary Create testimonial
// @Tags Testimonials
// @Accept json
// @Produce json
// @Param request body domain.CreateTestimonialRequest true "Testimonial data"
// @Success 201 {object} domain.TestimonialDTO
// @Failure 400 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/api/v1/testimonials [post]
func (h *TestimonialHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateTestimonialRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	testimonial, err := h.testimonialService.Create(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "create testimonial")
		return
	}
	respondJSON(w, http.StatusCreated, testimonial)
}

// Update godoc
// @Summary Update testimonial
// @Tags Testimonials
// @Accept json
// @Produce json
// @Param id path string true "Testimonial ID" format(uuid)
// @Param request body domain.UpdateTestimonialRequest true "Testimonial data"
// @Success 200 {object} domain.TestimonialDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/api/v1/testimonials/{id} [put]
func (h *TestimonialHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "id", "testimonial")
	if !ok {
		return
	}
	var req domain.UpdateTestimonialRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	testimonial, err := h.testimonialService.Update(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "update testimonial")
		return
	}
	respondJSON(w, http.StatusOK, testimonial)
}

// Delete godoc
// @Summary Delete testimonial
// @Tags Testimonials
// @Param id path string true "Testimonial ID" format(uuid)
// @Success 204
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/api/v1/testimonials/{id} [delete]
func (h *TestimonialHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "id", "testimonial")
	if !ok {
		return
	}
	if err := h.testimonialService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, h.logger, err, "delete testimonial")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Reorder godoc
// @Summary Reorder testimonials
// @Tags Testimonials
// @Accept json
// @Param request body domain.ReorderRequest true "Testimonial IDs in display order"
// @Success 204
// @Failure 400 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/api/v1/testimonials/reorder [put]
func (h *TestimonialHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	var req domain.ReorderRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.testimonialService.Reorder(r.Context(), req.OrderedIDs); err != nil {
		respondServiceError(w, h.logger, err, "reorder testimonials")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
