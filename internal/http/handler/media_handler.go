package handler

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/fjordrenovering/website/internal/domain"
	"github.com/fjordrenovering/website/internal/repository"
	"github.com/fjordrenovering/website/internal/service"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// multipartOverhead is allowed on top of the file size limit for form fields and boundaries
const multipartOverhead = 1 << 20

// MediaHandler handles uploads and the media library
type MediaHandler struct {
	mediaService *service.MediaService
	logger       *zap.Logger
}

// NewMediaHandler creates a new media handler instance
func NewMediaHandler(mediaService *service.MediaService, logger *zap.Logger) *MediaHandler {
	return &MediaHandler{
		mediaService: mediaService,
		logger:       logger,
	}
}

// Upload godoc
// @Summary Upload media
// @Description Stores an image (jpeg, png, webp, gif) or a PDF; the content decides the type, not the file name
// @Tags Media
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File to upload"
// @Param projectId formData string false "Project to add the file to"
// @Param altText formData string false "Alternative text for images"
// @Success 201 {object} domain.MediaDTO
// @Failure 400 {object} domain.APIError
// @Failure 413 {object} domain.APIError
// @Failure 415 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/api/v1/media/upload [post]
func (h *MediaHandler) Upload(w http.ResponseWriter, r *http.Request) {
	maxBytes := h.mediaService.MaxUploadBytes()
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes+multipartOverhead)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondWithError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("File too large: maximum size is %dMB", maxBytes>>20))
			return
		}
		respondWithError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}
	defer func() {
		_ = r.MultipartForm.RemoveAll()
	}()

	file, header, err := r.FormFile("file")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid file upload: file field is required")
		return
	}
	defer file.Close()

	in := service.UploadInput{
		Filename: header.Filename,
		Data:     file,
		AltText:  r.FormValue("altText"),
	}
	if raw := r.FormValue("projectId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid projectId: must be a valid UUID")
			return
		}
		in.ProjectID = &id
	}

	media, err := h.mediaService.Upload(r.Context(), in)
	if err != nil {
		respondServiceError(w, h.logger, err, "upload media")
		return
	}
	respondJSON(w, http.StatusCreated, media)
}

// List godoc
// @Summary List media
// @Tags Media
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page (max 200)" default(20)
// @Param projectId query string false "Only media of this project" format(uuid)
// @Param unattached query bool false "Only media without a project"
// @Param kind query string false "Filter by kind" Enums(image, document)
// @Param search query string false "Search in file name and alt text"
// @Param sortBy query string false "Sort field" Enums(createdAt, updatedAt, filename, size, displayOrder)
// @Param sortOrder query string false "Sort order" Enums(asc, desc)
// @Success 200 {object} domain.PaginatedResponse{data=[]domain.MediaDTO}
// @Failure 400 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/api/v1/media [get]
func (h *MediaHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePagination(r)

	projectID, err := queryUUID(r, "projectId")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	filters := &repository.MediaFilters{
		ProjectID: projectID,
		Search:    r.URL.Query().Get("search"),
	}
	if unattached := queryBool(r, "unattached"); unattached != nil {
		filters.Unattached = *unattached
	}
	if kind := r.URL.Query().Get("kind"); kind != "" {
		k := domain.MediaKind(kind)
		if k != domain.MediaKindImage && k != domain.MediaKindDocument {
			respondWithError(w, http.StatusBadRequest, "kind must be image or document")
			return
		}
		filters.Kind = &k
	}

	result, err := h.mediaService.List(r.Context(), page, pageSize, filters, parseSort(r, repository.DefaultSortConfig()))
	if err != nil {
		respondServiceError(w, h.logger, err, "list media")
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// GetByID godoc
// @Summary Get media metadata
// @Tags Media
// @Produce json
// @Param id path string true "Media ID" format(uuid)
// @Success 200 {object} domain.MediaDTO
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/api/v1/media/{id} [get]
func (h *MediaHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "id", "media")
	if !ok {
		return
	}
	media, err := h.mediaService.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.logger, err, "get media")
		return
	}
	respondJSON(w, http.StatusOK, media)
}

// Update godoc
// @Summary Update media
// @Description Changes the alt text or moves the file to another project (or detaches it)
// @Tags Media
// @Accept json
// @Produce json
// @Param id path string true "Media ID" format(uuid)
// @Param request body domain.UpdateMediaRequest true "Media data"
// @Success 200 {object} domain.MediaDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/api/v1/media/{id} [put]
func (h *MediaHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "id", "media")
	if !ok {
		return
	}
	var req domain.UpdateMediaRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	media, err := h.mediaService.Update(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "update media")
		return
	}
	respondJSON(w, http.StatusOK, media)
}

// Delete godoc
// @Summary Delete media
// @Description Fails with 409 while the file is a cover, a team photo or part of a before/after pair
// @Tags Media
// @Param id path string true "Media ID" format(uuid)
// @Success 204
// @Failure 404 {object} domain.APIError
// @Failure 409 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/api/v1/media/{id} [delete]
func (h *MediaHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "id", "media")
	if !ok {
		return
	}
	if err := h.mediaService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, h.logger, err, "delete media")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Serve godoc
// @Summary Stream a stored file
// @Description Public route used by the website for images and documents
// @Tags Public
// @Produce octet-stream
// @Param id path string true "Media ID" format(uuid)
// @Success 200
// @Failure 404 {object} domain.APIError
// @Router /media/{id} [get]
func (h *MediaHandler) Serve(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "id", "media")
	if !ok {
		return
	}
	reader, media, err := h.mediaService.Open(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		h.logger.Error("failed to open media", zap.Error(err), zap.String("media_id", id.String()))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	defer reader.Close()

	disposition := "inline"
	if !media.IsImage() {
		disposition = "attachment"
	}
	w.Header().Set("Content-Type", media.ContentType)
	w.Header().Set("Content-Length", strconv.FormatInt(media.Size, 10))
	w.Header().Set("Content-Disposition", mime.FormatMediaType(disposition, map[string]string{"filename": media.Filename}))
	w.Header().Set("Cache-Control", "public, max-age=86400")

	if _, err := io.Copy(w, reader); err != nil {
		h.logger.Warn("media stream interrupted", zap.String("media_id", id.String()), zap.Error(err))
	}
}
