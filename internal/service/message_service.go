package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/fjordrenovering/website/internal/domain"
	"github.com/fjordrenovering/website/internal/mapper"
	"github.com/fjordrenovering/website/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ContactThankYou is shown after a successful contact form submission
const ContactThankYou = "Thank you for your message. We will get back to you shortly."

// MessageService handles contact form submissions and the admin inbox
type MessageService struct {
	messageRepo *repository.MessageRepository
	logger      *zap.Logger
	now         func() time.Time
}

// NewMessageService creates a new MessageService instance
func NewMessageService(messageRepo *repository.MessageRepository, logger *zap.Logger) *MessageService {
	return &MessageService{
		messageRepo: messageRepo,
		logger:      logger,
		now:         time.Now,
	}
}

// Submit stores a contact form message in the inbox. Submissions that fill in the
// honeypot field are acknowledged but not stored.
func (s *MessageService) Submit(ctx context.Context, req *domain.ContactRequest, ipAddress, userAgent string) (*domain.ContactResponse, error) {
	if strings.TrimSpace(req.Website) != "" {
		s.logger.Info("contact submission dropped by honeypot", zap.String("ip", ipAddress))
		return &domain.ContactResponse{ID: uuid.New(), Message: ContactThankYou}, nil
	}

	msg := &domain.Message{
		Name:        strings.TrimSpace(req.Name),
		Email:       strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:       strings.TrimSpace(req.Phone),
		Subject:     strings.TrimSpace(req.Subject),
		Body:        strings.TrimSpace(req.Message),
		ServiceSlug: strings.TrimSpace(req.ServiceSlug),
		Status:      domain.MessageStatusNew,
		IPAddress:   ipAddress,
		UserAgent:   truncate(userAgent, 500),
	}
	if msg.Name == "" || msg.Email == "" || msg.Body == "" {
		return nil, ErrInvalidInput
	}

	if err := s.messageRepo.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to store message: %w", err)
	}

	s.logger.Info("contact message received",
		zap.String("message_id", msg.ID.String()),
		zap.String("service", msg.ServiceSlug))

	return &domain.ContactResponse{ID: msg.ID, Message: ContactThankYou}, nil
}

// List returns a page of the inbox
func (s *MessageService) List(ctx context.Context, page, pageSize int, filters *repository.MessageFilters, sort repository.SortConfig) (*domain.PaginatedResponse, error) {
	page, pageSize = repository.NormalizePagination(page, pageSize)
	messages, total, err := s.messageRepo.List(ctx, page, pageSize, filters, sort)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	dtos := make([]domain.MessageDTO, len(messages))
	for i := range messages {
		dtos[i] = mapper.ToMessageDTO(&messages[i])
	}
	resp := domain.NewPaginatedResponse(dtos, total, page, pageSize)
	return &resp, nil
}

// ListRecent returns the newest messages that are not archived
func (s *MessageService) ListRecent(ctx context.Context, limit int) ([]domain.MessageDTO, error) {
	messages, err := s.messageRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent messages: %w", err)
	}
	dtos := make([]domain.MessageDTO, len(messages))
	for i := range messages {
		dtos[i] = mapper.ToMessageDTO(&messages[i])
	}
	return dtos, nil
}

// GetByID returns a message
func (s *MessageService) GetByID(ctx context.Context, id uuid.UUID) (*domain.MessageDTO, error) {
	msg, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := mapper.ToMessageDTO(msg)
	return &dto, nil
}

// MarkRead marks a new message as read. Already read or archived messages keep their state.
func (s *MessageService) MarkRead(ctx context.Context, id uuid.UUID) (*domain.MessageDTO, error) {
	msg, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if msg.ReadAt == nil {
		now := s.now()
		msg.ReadAt = &now
	}
	if msg.Status == domain.MessageStatusNew {
		msg.Status = domain.MessageStatusRead
	}
	if err := s.messageRepo.Update(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to update message: %w", err)
	}
	dto := mapper.ToMessageDTO(msg)
	return &dto, nil
}

// Archive moves a message out of the active inbox
func (s *MessageService) Archive(ctx context.Context, id uuid.UUID) (*domain.MessageDTO, error) {
	msg, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if msg.ReadAt == nil {
		now := s.now()
		msg.ReadAt = &now
	}
	msg.Status = domain.MessageStatusArchived
	if err := s.messageRepo.Update(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to update message: %w", err)
	}
	dto := mapper.ToMessageDTO(msg)
	return &dto, nil
}

// Delete removes a message
func (s *MessageService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.get(ctx, id); err != nil {
		return err
	}
	if err := s.messageRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}
	return nil
}

// CountByStatus counts messages in one inbox state
func (s *MessageService) CountByStatus(ctx context.Context, status domain.MessageStatus) (int64, error) {
	return s.messageRepo.CountByStatus(ctx, status)
}

// PurgeArchivedBefore deletes archived messages last changed before cutoff
func (s *MessageService) PurgeArchivedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	n, err := s.messageRepo.DeleteArchivedBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to purge archived messages: %w", err)
	}
	return n, nil
}

func (s *MessageService) get(ctx context.Context, id uuid.UUID) (*domain.Message, error) {
	msg, err := s.messageRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMessageNotFound
		}
		return nil, fmt.Errorf("failed to get message: %w", err)
	}
	return msg, nil
}

// truncate cuts s to at most max bytes without splitting a UTF-8 sequence
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
