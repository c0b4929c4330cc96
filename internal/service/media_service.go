package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/fjordrenovering/website/internal/domain"
	"github.com/fjordrenovering/website/internal/mapper"
	"github.com/fjordrenovering/website/internal/repository"
	"github.com/fjordrenovering/website/internal/storage"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// allowedUploadTypes maps sniffed content types to the media kind they are stored as
var allowedUploadTypes = map[string]domain.MediaKind{
	"image/jpeg":      domain.MediaKindImage,
	"image/png":       domain.MediaKindImage,
	"image/webp":      domain.MediaKindImage,
	"image/gif":       domain.MediaKindImage,
	"application/pdf": domain.MediaKindDocument,
}

// UploadInput describes one uploaded file
type UploadInput struct {
	Filename  string
	Data      io.Reader
	ProjectID *uuid.UUID
	AltText   string
}

// MediaService handles uploads to object storage and media metadata
type MediaService struct {
	mediaRepo   *repository.MediaRepository
	projectRepo *repository.ProjectRepository
	storage     storage.Storage
	maxBytes    int64
	logger      *zap.Logger
}

// NewMediaService creates a new MediaService instance
func NewMediaService(
	mediaRepo *repository.MediaRepository,
	projectRepo *repository.ProjectRepository,
	store storage.Storage,
	maxBytes int64,
	logger *zap.Logger,
) *MediaService {
	return &MediaService{
		mediaRepo:   mediaRepo,
		projectRepo: projectRepo,
		storage:     store,
		maxBytes:    maxBytes,
		logger:      logger,
	}
}

// MaxUploadBytes returns the configured upload limit
func (s *MediaService) MaxUploadBytes() int64 {
	return s.maxBytes
}

// Upload sniffs, stores and registers a file. The stored object is removed again
// when the metadata row cannot be written.
func (s *MediaService) Upload(ctx context.Context, in UploadInput) (*domain.MediaDTO, error) {
	if in.ProjectID != nil {
		if err := s.ensureProject(ctx, *in.ProjectID); err != nil {
			return nil, err
		}
	}

	data, err := io.ReadAll(io.LimitReader(in.Data, s.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrEmptyFile
	}
	if int64(len(data)) > s.maxBytes {
		return nil, fmt.Errorf("%w (%d MB)", ErrFileTooLarge, s.maxBytes/(1024*1024))
	}

	mt := mimetype.Detect(data)
	contentType := baseContentType(mt.String())
	kind, ok := allowedUploadTypes[contentType]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMediaType, contentType)
	}

	media := &domain.Media{
		Filename:    cleanFilename(in.Filename, mt.Extension()),
		ContentType: contentType,
		Size:        int64(len(data)),
		AltText:     strings.TrimSpace(in.AltText),
		Kind:        kind,
		ProjectID:   in.ProjectID,
	}
	if kind == domain.MediaKindImage {
		if cfg, _, err := image.DecodeConfig(bytes.NewReader(data)); err == nil {
			media.Width = cfg.Width
			media.Height = cfg.Height
		}
	}

	maxOrder, err := s.mediaRepo.MaxDisplayOrder(ctx, in.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get display order: %w", err)
	}
	media.DisplayOrder = maxOrder + 1

	storagePath, _, err := s.storage.Upload(ctx, "upload"+mt.Extension(), contentType, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to store file: %w", err)
	}
	media.StoragePath = storagePath
	media.URL = s.storage.URL(storagePath)

	if err := s.mediaRepo.Create(ctx, media); err != nil {
		if delErr := s.storage.Delete(ctx, storagePath); delErr != nil {
			s.logger.Error("failed to remove stored object after metadata error",
				zap.String("storage_path", storagePath),
				zap.Error(delErr))
		}
		return nil, fmt.Errorf("failed to save media: %w", err)
	}

	s.logger.Info("media uploaded",
		zap.String("media_id", media.ID.String()),
		zap.String("content_type", contentType),
		zap.Int64("size", media.Size),
	)

	dto := mapper.ToMediaDTO(media)
	return &dto, nil
}

// GetByID returns media metadata
func (s *MediaService) GetByID(ctx context.Context, id uuid.UUID) (*domain.MediaDTO, error) {
	media, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := mapper.ToMediaDTO(media)
	return &dto, nil
}

// Open returns the stored object for streaming together with its metadata
func (s *MediaService) Open(ctx context.Context, id uuid.UUID) (io.ReadCloser, *domain.Media, error) {
	media, err := s.get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	rc, err := s.storage.Download(ctx, media.StoragePath)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil, ErrMediaNotFound
		}
		return nil, nil, fmt.Errorf("failed to open media: %w", err)
	}
	return rc, media, nil
}

// List returns a page of media
func (s *MediaService) List(ctx context.Context, page, pageSize int, filters *repository.MediaFilters, sort repository.SortConfig) (*domain.PaginatedResponse, error) {
	page, pageSize = repository.NormalizePagination(page, pageSize)
	items, total, err := s.mediaRepo.List(ctx, page, pageSize, filters, sort)
	if err != nil {
		return nil, fmt.Errorf("failed to list media: %w", err)
	}
	dtos := make([]domain.MediaDTO, len(items))
	for i := range items {
		dtos[i] = mapper.ToMediaDTO(&items[i])
	}
	resp := domain.NewPaginatedResponse(dtos, total, page, pageSize)
	return &resp, nil
}

// Update changes alt text and project attachment. Moving to another project
// appends the media to the end of that gallery.
func (s *MediaService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateMediaRequest) (*domain.MediaDTO, error) {
	media, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	if !sameUUID(media.ProjectID, req.ProjectID) {
		if req.ProjectID != nil {
			if err := s.ensureProject(ctx, *req.ProjectID); err != nil {
				return nil, err
			}
		}
		maxOrder, err := s.mediaRepo.MaxDisplayOrder(ctx, req.ProjectID)
		if err != nil {
			return nil, fmt.Errorf("failed to get display order: %w", err)
		}
		media.ProjectID = req.ProjectID
		media.DisplayOrder = maxOrder + 1
	}
	media.AltText = strings.TrimSpace(req.AltText)

	if err := s.mediaRepo.Update(ctx, media); err != nil {
		return nil, fmt.Errorf("failed to update media: %w", err)
	}
	dto := mapper.ToMediaDTO(media)
	return &dto, nil
}

// Delete removes media that nothing references. Removing the stored object is best effort.
func (s *MediaService) Delete(ctx context.Context, id uuid.UUID) error {
	media, err := s.get(ctx, id)
	if err != nil {
		return err
	}
	inUse, err := s.mediaRepo.IsReferenced(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check media references: %w", err)
	}
	if inUse {
		return ErrMediaInUse
	}
	if err := s.mediaRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete media: %w", err)
	}
	s.removeObject(ctx, media)
	return nil
}

// Reorder sets the gallery order of a project, or of unattached media when projectID is nil
func (s *MediaService) Reorder(ctx context.Context, projectID *uuid.UUID, orderedIDs []uuid.UUID) error {
	if projectID != nil {
		if err := s.ensureProject(ctx, *projectID); err != nil {
			return err
		}
	}
	count, err := s.mediaRepo.Count(ctx, projectID)
	if err != nil {
		return fmt.Errorf("failed to count media: %w", err)
	}
	if err := validateReorder(orderedIDs, count); err != nil {
		return err
	}
	if err := s.mediaRepo.Reorder(ctx, projectID, orderedIDs); err != nil {
		return reorderError(err)
	}
	return nil
}

// DeleteOrphans removes unattached, unreferenced media not updated since cutoff and returns how many were removed
func (s *MediaService) DeleteOrphans(ctx context.Context, cutoff time.Time, limit int) (int, error) {
	orphans, err := s.mediaRepo.ListUnreferencedBefore(ctx, cutoff, limit)
	if err != nil {
		return 0, fmt.Errorf("failed to list orphaned media: %w", err)
	}
	removed := 0
	for i := range orphans {
		if err := ctx.Err(); err != nil {
			return removed, err
		}
		if err := s.mediaRepo.Delete(ctx, orphans[i].ID); err != nil {
			s.logger.Warn("failed to delete orphaned media", zap.String("media_id", orphans[i].ID.String()), zap.Error(err))
			continue
		}
		s.removeObject(ctx, &orphans[i])
		removed++
	}
	return removed, nil
}

func (s *MediaService) get(ctx context.Context, id uuid.UUID) (*domain.Media, error) {
	media, err := s.mediaRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMediaNotFound
		}
		return nil, fmt.Errorf("failed to get media: %w", err)
	}
	return media, nil
}

func (s *MediaService) ensureProject(ctx context.Context, projectID uuid.UUID) error {
	exists, err := s.projectRepo.Exists(ctx, projectID)
	if err != nil {
		return fmt.Errorf("failed to check project: %w", err)
	}
	if !exists {
		return ErrProjectNotFound
	}
	return nil
}

func (s *MediaService) removeObject(ctx context.Context, media *domain.Media) {
	if err := s.storage.Delete(ctx, media.StoragePath); err != nil {
		s.logger.Warn("failed to delete stored object",
			zap.String("media_id", media.ID.String()),
			zap.String("storage_path", media.StoragePath),
			zap.Error(err))
	}
}

// baseContentType strips parameters such as "; charset=utf-8"
func baseContentType(ct string) string {
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = ct[:i]
	}
	return strings.TrimSpace(ct)
}

// cleanFilename keeps the base name of the client's file name, falling back to a generic name
func cleanFilename(name, ext string) string {
	name = strings.TrimSpace(filepath.Base(strings.ReplaceAll(name, "\\", "/")))
	if name == "" || name == "." || name == "/" {
		name = "upload" + ext
	}
	if len(name) > 255 {
		name = name[len(name)-255:]
	}
	return name
}

func sameUUID(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
