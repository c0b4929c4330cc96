package handler

import (
	"net/http"

	"github.com/fjordrenovering/website/internal/domain"
	"github.com/fjordrenovering/website/internal/service"
	"go.uber.org/zap"
)

// TeamHandler handles the team members shown on the about page
type TeamHandler struct {
	teamService *service.TeamService
	logger      *zap.Logger
}

// NewTeamHandler creates a new team handler instance
func NewTeamHandler(teamService *service.TeamService, logger *zap.Logger) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
		logger:      logger,
	}
}

// List godoc
// @Summary List team members
// @Tags Team
// @Produce json
// @Success 200 {array} domain.TeamMemberDTO
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/api/v1/team [get]
func (h *TeamHandler) List(w http.ResponseWriter, r *http.Request) {
	members, err := h.teamService.List(r.Context(), false)
	if err != nil {
		respondServiceError(w, h.logger, err, "list team members")
		return
	}
	respondJSON(w, http.StatusOK, members)
}

// GetByID godoc
// @Summary Get team member by ID
// @Tags Team
// @Produce json
// @Param id path string true "Team member ID" format(uuid)
// @Success 200 {object} domain.TeamMemberDTO
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/api/v1/team/{id} [get]
func (h *TeamHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "id", "team member")
	if !ok {
		return
	}
	member, err := h.teamService.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.logger, err, "get team member")
		return
	}
	respondJSON(w, http.StatusOK, member)
}

// Create godoc
// @Summary Create team member
// @Tags Team
// @Accept json
// @Produce json
// @Param request body domain.CreateTeamMemberRequest true "Team member data"
// @Success 201 {object} domain.TeamMemberDTO
// @Failure 400 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/api/v1/team [post]
func (h *TeamHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateTeamMemberRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	member, err := h.teamService.Create(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "create team member")
		return
	}
	respondJSON(w, http.StatusCreated, member)
}

// Update godoc
// @Summary Update team member
// @Tags Team
// @Accept json
// @Produce json
// @Param id path string true "Team member ID" format(uuid)
// @Param request body domain.UpdateTeamMemberRequest true "Team member data"
// @Success 200 {object} domain.TeamMemberDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/api/v1/team/{id} [put]
func (h *TeamHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "id", "team member")
	if !ok {
		return
	}
	var req domain.UpdateTeamMemberRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	member, err := h.teamService.Update(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "update team member")
		return
	}
	respondJSON(w, http.StatusOK, member)
}

// Delete godoc
// @Summary Delete team member
// @Description Tasks assigned to the member become unassigned
// @Tags Team
// @Param id path string true "Team member ID" format(uuid)
// @Success 204
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/api/v1/team/{id} [delete]
func (h *TeamHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "id", "team member")
	if !ok {
		return
	}
	if err := h.teamService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, h.logger, err, "delete team member")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Reorder godoc
// @Summary Reorder team members
// @Tags Team
// @Accept json
// @Param request body domain.ReorderRequest true "Team member IDs in display order"
// @Success 204
// @Failure 400 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/api/v1/team/reorder [put]
func (h *TeamHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	var req domain.ReorderRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.teamService.Reorder(r.Context(), req.OrderedIDs); err != nil {
		respondServiceError(w, h.logger, err, "reorder team members")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
