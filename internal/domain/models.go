package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base model with common fields
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// BeforeCreate assigns a new ID when none was set by the caller
func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// ProjectCategory represents the market segment of a portfolio project
type ProjectCategory string

const (
	ProjectCategoryResidential ProjectCategory = "residential"
	ProjectCategoryCommercial  ProjectCategory = "commercial"
)

// IsValid reports whether the category is known
func (c ProjectCategory) IsValid() bool {
	return c == ProjectCategoryResidential || c == ProjectCategoryCommercial
}

// Project represents a completed renovation shown in the portfolio
type Project struct {
	BaseModel
	Title            string            `gorm:"type:varchar(200);not null"`
	Slug             string            `gorm:"type:varchar(200);not null;uniqueIndex"`
	Summary          string            `gorm:"type:varchar(500)"`
	Body             string            `gorm:"type:text"`
	Category         ProjectCategory   `gorm:"type:varchar(50);not null;index"`
	Location         string            `gorm:"type:varchar(200)"`
	CompletedAt      *time.Time        `gorm:"column:completed_at"`
	Featured         bool              `gorm:"not null;default:false;index"`
	Published        bool              `gorm:"not null;default:false;index"`
	DisplayOrder     int               `gorm:"not null;default:0;column:display_order;index"`
	CoverMediaID     *uuid.UUID        `gorm:"type:uuid;column:cover_media_id"`
	CoverMedia       *Media            `gorm:"foreignKey:CoverMediaID"`
	Media            []Media           `gorm:"foreignKey:ProjectID"`
	BeforeAfterPairs []BeforeAfterPair `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// BeforeAfterPair links two images of the same spot taken before and after the work
type BeforeAfterPair struct {
	BaseModel
	ProjectID     uuid.UUID `gorm:"type:uuid;not null;index;column:project_id"`
	BeforeMediaID uuid.UUID `gorm:"type:uuid;not null;column:before_media_id"`
	BeforeMedia   *Media    `gorm:"foreignKey:BeforeMediaID"`
	AfterMediaID  uuid.UUID `gorm:"type:uuid;not null;column:after_media_id"`
	AfterMedia    *Media    `gorm:"foreignKey:AfterMediaID"`
	Caption       string    `gorm:"type:varchar(300)"`
	DisplayOrder  int       `gorm:"not null;default:0;column:display_order"`
}

// MediaKind classifies uploaded files
type MediaKind string

const (
	MediaKindImage    MediaKind = "image"
	MediaKindDocument MediaKind = "document"
)

// Media represents a file stored in object storage
type Media struct {
	BaseModel
	Filename     string     `gorm:"type:varchar(255);not null"`
	ContentType  string     `gorm:"type:varchar(100);not null;column:content_type"`
	Size         int64      `gorm:"not null"`
	StoragePath  string     `gorm:"type:varchar(500);not null;uniqueIndex;column:storage_path"`
	URL          string     `gorm:"type:varchar(1000);column:url"`
	AltText      string     `gorm:"type:varchar(300);column:alt_text"`
	Kind         MediaKind  `gorm:"type:varchar(50);not null;index"`
	Width        int        `gorm:"not null;default:0"`
	Height       int        `gorm:"not null;default:0"`
	ProjectID    *uuid.UUID `gorm:"type:uuid;index;column:project_id"`
	DisplayOrder int        `gorm:"not null;default:0;column:display_order"`
}

// IsImage reports whether the media is an image
func (m *Media) IsImage() bool {
	return m.Kind == MediaKindImage
}

// TaskStatus represents the board column of an internal task
type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
)

// IsValid reports whether the status is known
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusDone:
		return true
	}
	return false
}

// TaskPriority represents task urgency
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

// Task represents an internal work item tracked in the admin panel
type Task struct {
	BaseModel
	Title        string       `gorm:"type:varchar(200);not null"`
	Description  string       `gorm:"type:text"`
	Status       TaskStatus   `gorm:"type:varchar(50);not null;index"`
	Priority     TaskPriority `gorm:"type:varchar(50);not null"`
	DueDate      *time.Time   `gorm:"column:due_date"`
	ProjectID    *uuid.UUID   `gorm:"type:uuid;index;column:project_id"`
	Project      *Project     `gorm:"foreignKey:ProjectID"`
	AssigneeID   *uuid.UUID   `gorm:"type:uuid;index;column:assignee_id"`
	Assignee     *TeamMember  `gorm:"foreignKey:AssigneeID"`
	DisplayOrder int          `gorm:"not null;default:0;column:display_order"`
	CompletedAt  *time.Time   `gorm:"column:completed_at"`
}

// TeamMember represents a person presented on the about page
type TeamMember struct {
	BaseModel
	Name         string     `gorm:"type:varchar(200);not null"`
	Role         string     `gorm:"type:varchar(200)"`
	Bio          string     `gorm:"type:text"`
	Email        string     `gorm:"type:varchar(255)"`
	Phone        string     `gorm:"type:varchar(50)"`
	PhotoMediaID *uuid.UUID `gorm:"type:uuid;column:photo_media_id"`
	PhotoMedia   *Media     `gorm:"foreignKey:PhotoMediaID"`
	Published    bool       `gorm:"not null;default:false"`
	DisplayOrder int        `gorm:"not null;default:0;column:display_order"`
}

// Testimonial represents a client quote
type Testimonial struct {
	BaseModel
	ClientName   string     `gorm:"type:varchar(200);not null;column:client_name"`
	Location     string     `gorm:"type:varchar(200)"`
	Quote        string     `gorm:"type:text;not null"`
	Rating       int        `gorm:"not null"`
	ProjectID    *uuid.UUID `gorm:"type:uuid;index;column:project_id"`
	Project      *Project   `gorm:"foreignKey:ProjectID"`
	Published    bool       `gorm:"not null;default:false"`
	Featured     bool       `gorm:"not null;default:false"`
	DisplayOrder int        `gorm:"not null;default:0;column:display_order"`
}

// Service represents an offered line of work (kitchens, bathrooms, roofing...)
type Service struct {
	BaseModel
	Name         string `gorm:"type:varchar(200);not null"`
	Slug         string `gorm:"type:varchar(200);not null;uniqueIndex"`
	Summary      string `gorm:"type:varchar(500)"`
	Body         string `gorm:"type:text"`
	Icon         string `gorm:"type:varchar(100)"`
	Published    bool   `gorm:"not null;default:false"`
	DisplayOrder int    `gorm:"not null;default:0;column:display_order"`
}

// MessageStatus represents the inbox state of a contact message
type MessageStatus string

const (
	MessageStatusNew      MessageStatus = "new"
	MessageStatusRead     MessageStatus = "read"
	MessageStatusArchived MessageStatus = "archived"
)

// IsValid reports whether the status is known
func (s MessageStatus) IsValid() bool {
	switch s {
	case MessageStatusNew, MessageStatusRead, MessageStatusArchived:
		return true
	}
	return false
}

// Message represents a submission from the public contact form
type Message struct {
	BaseModel
	Name        string        `gorm:"type:varchar(200);not null"`
	Email       string        `gorm:"type:varchar(255);not null"`
	Phone       string        `gorm:"type:varchar(50)"`
	Subject     string        `gorm:"type:varchar(300)"`
	Body        string        `gorm:"type:text;not null"`
	ServiceSlug string        `gorm:"type:varchar(200);column:service_slug"`
	Status      MessageStatus `gorm:"type:varchar(50);not null;index"`
	IPAddress   string        `gorm:"type:varchar(64);column:ip_address"`
	UserAgent   string        `gorm:"type:text;column:user_agent"`
	ReadAt      *time.Time    `gorm:"column:read_at"`
}

// AdminRole represents the permission level of an admin user
type AdminRole string

const (
	AdminRoleAdmin  AdminRole = "admin"
	AdminRoleEditor AdminRole = "editor"
)

// AdminUser represents a person allowed into the admin panel
type AdminUser struct {
	BaseModel
	Email        string     `gorm:"type:varchar(255);not null;uniqueIndex"`
	DisplayName  string     `gorm:"type:varchar(200);not null;column:display_name"`
	PasswordHash string     `gorm:"type:varchar(255);not null;column:password_hash"`
	Role         AdminRole  `gorm:"type:varchar(50);not null"`
	IsActive     bool       `gorm:"not null;default:false;column:is_active"`
	LastLoginAt  *time.Time `gorm:"column:last_login_at"`
}

// AuditAction represents the type of audited admin action
type AuditAction string

const (
	AuditActionCreate  AuditAction = "create"
	AuditActionUpdate  AuditAction = "update"
	AuditActionDelete  AuditAction = "delete"
	AuditActionLogin   AuditAction = "login"
	AuditActionLogout  AuditAction = "logout"
	AuditActionReorder AuditAction = "reorder"
)

// AuditLog represents an audit trail entry
type AuditLog struct {
	ID          uuid.UUID   `gorm:"type:uuid;primary_key"`
	UserID      string      `gorm:"type:varchar(100);column:user_id;index"`
	UserEmail   string      `gorm:"type:varchar(255);column:user_email"`
	Action      AuditAction `gorm:"type:varchar(50);not null"`
	EntityType  string      `gorm:"type:varchar(50);not null;column:entity_type;index"`
	EntityID    *uuid.UUID  `gorm:"type:uuid;column:entity_id"`
	NewValues   string      `gorm:"type:text;column:new_values"`
	IPAddress   string      `gorm:"type:varchar(64);column:ip_address"`
	UserAgent   string      `gorm:"type:text;column:user_agent"`
	RequestID   string      `gorm:"type:varchar(100);column:request_id"`
	PerformedAt time.Time   `gorm:"not null;column:performed_at;index"`
}

// BeforeCreate assigns a new ID when none was set by the caller
func (a *AuditLog) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
