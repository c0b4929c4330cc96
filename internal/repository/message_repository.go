package repository

import (
	"context"
	"time"

	"github.com/fjordrenovering/website/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MessageFilters defines filter options for the inbox
type MessageFilters struct {
	Status *domain.MessageStatus
	Search string
}

var messageSortableFields = map[string]string{
	"createdAt": "created_at",
	"name":      "name",
	"email":     "email",
	"status":    "status",
}

// MessageRepository handles contact form messages
type MessageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new message repository instance
func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

// Create stores a new message
func (r *MessageRepository) Create(ctx context.Context, msg *domain.Message) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

// GetByID retrieves a message by its ID
func (r *MessageRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Message, error) {
	var msg domain.Message
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&msg).Error; err != nil {
		return nil, err
	}
	return &msg, nil
}

// Update saves an existing message
func (r *MessageRepository) Update(ctx context.Context, msg *domain.Message) error {
	return r.db.WithContext(ctx).Save(msg).Error
}

// Delete removes a message
func (r *MessageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Message{}, "id = ?", id).Error
}

// List returns a paginated inbox view
func (r *MessageRepository) List(ctx context.Context, page, pageSize int, filters *MessageFilters, sort SortConfig) ([]domain.Message, int64, error) {
	page, pageSize = NormalizePagination(page, pageSize)

	query := r.db.WithContext(ctx).Model(&domain.Message{})
	if filters != nil {
		if filters.Status != nil {
			query = query.Where("status = ?", *filters.Status)
		}
		if filters.Search != "" {
			pattern := likePattern(filters.Search)
			query = query.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(subject) LIKE ? OR LOWER(body) LIKE ?",
				pattern, pattern, pattern, pattern)
		}
	}

	var messages []domain.Message
	order := BuildOrderClause(sort, messageSortableFields, "created_at")
	total, err := paginate(query, page, pageSize, order, &messages)
	return messages, total, err
}

// ListRecent returns the newest messages that are not archived
func (r *MessageRepository) ListRecent(ctx context.Context, limit int) ([]domain.Message, error) {
	var messages []domain.Message
	err := r.db.WithContext(ctx).
		Where("status <> ?", domain.MessageStatusArchived).
		Order("created_at DESC").
		Limit(limit).
		Find(&messages).Error
	return messages, err
}

// CountByStatus counts messages in one inbox state
func (r *MessageRepository) CountByStatus(ctx context.Context, status domain.MessageStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Message{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

// DeleteArchivedBefore removes archived messages last touched before cutoff
func (r *MessageRepository) DeleteArchivedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("status = ? AND updated_at < ?", domain.MessageStatusArchived, cutoff).
		Delete(&domain.Message{})
	return result.RowsAffected, result.Error
}
