package handler

import (
	"net/http"

	"github.com/fjordrenovering/website/internal/service"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// PublicHandler serves published content as JSON, no authentication
type PublicHandler struct {
	projectService     *service.ProjectService
	catalogService     *service.CatalogService
	teamService        *service.TeamService
	testimonialService *service.TestimonialService
	logger             *zap.Logger
}

// NewPublicHandler creates a new public content handler
func NewPublicHandler(
	projectService *service.ProjectService,
	catalogService *service.CatalogService,
	teamService *service.TeamService,
	testimonialService *service.TestimonialService,
	logger *zap.Logger,
) *PublicHandler {
	return &PublicHandler{
		projectService:     projectService,
		catalogService:     catalogService,
		teamService:        teamService,
		testimonialService: testimonialService,
		logger:             logger,
	}
}

// ListProjects godoc
// @Summary List published projects
// @Tags Public
// @Produce json
// @Param category query string false "Filter by category" Enums(residential, commercial)
// @Success 200 {array} domain.ProjectDTO
// @Failure 400 {object} domain.APIError
// @Router /api/v1/public/projects [get]
func (h *PublicHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projectService.ListPublished(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		respondServiceError(w, h.logger, err, "list projects")
		return
	}
	respondJSON(w, http.StatusOK, projects)
}

// GetProject godoc
// @Summary Get a published project
// @Description Includes the gallery, before/after pairs and the body rendered as HTML
// @Tags Public
// @Produce json
// @Param slug path string true "Project slug"
// @Success 200 {object} domain.ProjectDTO
// @Failure 404 {object} domain.APIError
// @Router /api/v1/public/projects/{slug} [get]
func (h *PublicHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	project, err := h.projectService.GetPublishedBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		respondServiceError(w, h.logger, err, "get project")
		return
	}
	respondJSON(w, http.StatusOK, project)
}

// ListServices godoc
// @Summary List published services
// @Tags Public
// @Produce json
// @Success 200 {array} domain.ServiceDTO
// @Router /api/v1/public/services [get]
func (h *PublicHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.catalogService.List(r.Context(), true)
	if err != nil {
		respondServiceError(w, h.logger, err, "list services")
		return
	}
	respondJSON(w, http.StatusOK, services)
}

// GetService godoc
// @Summary Get a published service
// @Tags Public
// @Produce json
// @Param slug path string true "Service slug"
// @Success 200 {object} domain.ServiceDTO
// @Failure 404 {object} domain.APIError
// @Router /api/v1/public/services/{slug} [get]
func (h *PublicHandler) GetService(w http.ResponseWriter, r *http.Request) {
	item, err := h.catalogService.GetPublishedBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		respondServiceError(w, h.logger, err, "get service")
		return
	}
	respondJSON(w, http.StatusOK, item)
}

// ListTeam godoc
// @Summary List published team members
// @Tags Public
// @Produce json
// @Success 200 {array} domain.TeamMemberDTO
// @Router /api/v1/public/team [get]
func (h *PublicHandler) ListTeam(w http.ResponseWriter, r *http.Request) {
	members, err := h.teamService.List(r.Context(), true)
	if err != nil {
		respondServiceError(w, h.logger, err, "list team members")
		return
	}
	respondJSON(w, http.StatusOK, members)
}

// ListTestimonials godoc
// @Summary List published testimonials
// @Tags Public
// @Produce json
// @Param featured query bool false "Only featured testimonials"
// @Param limit query int false "Maximum entries (max 100)"
// @Success 200 {array} domain.TestimonialDTO
// @Router /api/v1/public/testimonials [get]
func (h *PublicHandler) ListTestimonials(w http.ResponseWriter, r *http.Request) {
	featured := queryBool(r, "featured")
	testimonials, err := h.testimonialService.ListPublished(r.Context(), featured != nil && *featured, parseLimit(r, 0, 100))
	if err != nil {
		respondServiceError(w, h.logger, err, "list testimonials")
		return
	}
	respondJSON(w, http.StatusOK, testimonials)
}
