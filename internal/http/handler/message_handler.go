package handler

import (
	"net/http"

	"github.com/fjordrenovering/website/internal/domain"
	"github.com/fjordrenovering/website/internal/repository"
	"github.com/fjordrenovering/website/internal/service"
	"go.uber.org/zap"
)

// MessageHandler handles contact form submissions and the admin inbox
type MessageHandler struct {
	messageService *service.MessageService
	logger         *zap.Logger
}

// NewMessageHandler creates a new message handler instance
func NewMessageHandler(messageService *service.MessageService, logger *zap.Logger) *MessageHandler {
	return &MessageHandler{
		messageService: messageService,
		logger:         logger,
	}
}

// Submit godoc
// @Summary Send a contact message
// @Description Public contact form endpoint, rate limited per client IP
// @Tags Public
// @Accept json
// @Produce json
// @Param request body domain.ContactRequest true "Contact form"
// @Success 201 {object} domain.ContactResponse
// @Failure 400 {object} domain.APIError
// @Failure 413 {object} domain.ErrorResponse
// @Failure 429 {object} domain.ErrorResponse
// @Router /api/v1/contact [post]
func (h *MessageHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req domain.ContactRequest
	if !decodeJSONLimit(w, r, &req, maxContactBodyBytes) {
		return
	}
	resp, err := h.messageService.Submit(r.Context(), &req, service.ClientIP(r), r.UserAgent())
	if err != nil {
		respondServiceError(w, h.logger, err, "submit message")
		return
	}
	respondJSON(w, http.StatusCreated, resp)
}

// List godoc
// @Summary List messages
// @Description Inbox, newest first by default
// @Tags Messages
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page (max 200)" default(20)
// @Param status query string false "Filter by status" Enums(new, read, archived)
// @Param search query string false "Search in name, email, subject and body"
// @Param sortBy query string false "Sort field" Enums(createdAt, name, email, status)
// @Param sortOrder query string false "Sort order" Enums(asc, desc)
// @Success 200 {object} domain.PaginatedResponse{data=[]domain.MessageDTO}
// @Failure 400 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/api/v1/messages [get]
func (h *MessageHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePagination(r)

	filters := &repository.MessageFilters{Search: r.URL.Query().Get("search")}
	if status := r.URL.Query().Get("status"); status != "" {
		s := domain.MessageStatus(status)
		if !s.IsValid() {
			respondWithError(w, http.StatusBadRequest, "status must be one of: new read archived")
			return
		}
		filters.Status = &s
	}

	sort := parseSort(r, repository.SortConfig{Field: "createdAt", Order: repository.SortOrderDesc})
	result, err := h.messageService.List(r.Context(), page, pageSize, filters, sort)
	if err != nil {
		respondServiceError(w, h.logger, err, "list messages")
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// GetByID godoc
// @Summary Get message by ID
// @Tags Messages
// @Produce json
// @Param id path string true "Message ID" format(uuid)
// @Success 200 {object} domain.MessageDTO
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/api/v1/messages/{id} [get]
func (h *MessageHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "id", "message")
	if !ok {
		return
	}
	msg, err := h.messageService.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.logger, err, "get message")
		return
	}
	respondJSON(w, http.StatusOK, msg)
}

// MarkRead godoc
// @Summary Mark message as read
// @Tags Messages
// @Produce json
// @Param id path string true "Message ID" format(uuid)
// @Success 200 {object} domain.MessageDTO
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/api/v1/messages/{id}/read [post]
func (h *MessageHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "id", "message")
	if !ok {
		return
	}
	msg, err := h.messageService.MarkRead(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.logger, err, "mark message as read")
		return
	}
	respondJSON(w, http.StatusOK, msg)
}

// Archive godoc
// @Summary Archive message
// @Tags Messages
// @Produce json
// @Param id path string true "Message ID" format(uuid)
// @Success 200 {object} domain.MessageDTO
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/api/v1/messages/{id}/archive [post]
func (h *MessageHandler) Archive(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "id", "message")
	if !ok {
		return
	}
	msg, err := h.messageService.Archive(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.logger, err, "archive message")
		return
	}
	respondJSON(w, http.StatusOK, msg)
}

// Delete godoc
// @Summary Delete message
// @Tags Messages
// @Param id path string true "Message ID" format(uuid)
// @Success 204
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/api/v1/messages/{id} [delete]
func (h *MessageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "id", "message")
	if !ok {
		return
	}
	if err := h.messageService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, h.logger, err, "delete message")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
