package domain

import (
	"github.com/google/uuid"
)

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code,omitempty"`
}

// PaginatedResponse wraps a page of list results
type PaginatedResponse struct {
	Data       interface{} `json:"data"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	PageSize   int         `json:"pageSize"`
	TotalPages int         `json:"totalPages"`
}

// NewPaginatedResponse builds a PaginatedResponse and computes the page count
func NewPaginatedResponse(data interface{}, total int64, page, pageSize int) PaginatedResponse {
	totalPages := 0
	if pageSize > 0 {
		totalPages = int((total + int64(pageSize) - 1) / int64(pageSize))
	}
	return PaginatedResponse{
		Data:       data,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}

// ReorderRequest carries the full ordered list of ids after a drag-and-drop
type ReorderRequest struct {
	OrderedIDs []uuid.UUID `json:"orderedIds" validate:"required,min=1"`
}

// ============================================================================
// Media
// ============================================================================

type MediaDTO struct {
	ID           uuid.UUID  `json:"id"`
	Filename     string     `json:"filename"`
	ContentType  string     `json:"contentType"`
	Size         int64      `json:"size"`
	URL          string     `json:"url"`
	AltText      string     `json:"altText,omitempty"`
	Kind         MediaKind  `json:"kind"`
	Width        int        `json:"width,omitempty"`
	Height       int        `json:"height,omitempty"`
	ProjectID    *uuid.UUID `json:"projectId,omitempty"`
	DisplayOrder int        `json:"displayOrder"`
	CreatedAt    string     `json:"createdAt"`
}

type UpdateMediaRequest struct {
	AltText   string     `json:"altText" validate:"max=300"`
	ProjectID *uuid.UUID `json:"projectId"`
}

// ============================================================================
// Projects
// ============================================================================

type ProjectDTO struct {
	ID               uuid.UUID            `json:"id"`
	Title            string               `json:"title"`
	Slug             string               `json:"slug"`
	Summary          string               `json:"summary,omitempty"`
	Body             string               `json:"body,omitempty"`
	BodyHTML         string               `json:"bodyHtml,omitempty"`
	Category         ProjectCategory      `json:"category"`
	Location         string               `json:"location,omitempty"`
	CompletedAt      string               `json:"completedAt,omitempty"`
	Featured         bool                 `json:"featured"`
	Published        bool                 `json:"published"`
	DisplayOrder     int                  `json:"displayOrder"`
	CoverMediaID     *uuid.UUID           `json:"coverMediaId,omitempty"`
	Cover            *MediaDTO            `json:"cover,omitempty"`
	Media            []MediaDTO           `json:"media,omitempty"`
	BeforeAfterPairs []BeforeAfterPairDTO `json:"beforeAfterPairs,omitempty"`
	CreatedAt        string               `json:"createdAt"`
	UpdatedAt        string               `json:"updatedAt"`
}

type CreateProjectRequest struct {
	Title        string          `json:"title" validate:"required,max=200"`
	Slug         string          `json:"slug" validate:"max=200"`
	Summary      string          `json:"summary" validate:"max=500"`
	Body         string          `json:"body"`
	Category     ProjectCategory `json:"category" validate:"required,oneof=residential commercial"`
	Location     string          `json:"location" validate:"max=200"`
	CompletedAt  string          `json:"completedAt" validate:"omitempty,datetime=2006-01-02"`
	Featured     bool            `json:"featured"`
	Published    bool            `json:"published"`
	CoverMediaID *uuid.UUID      `json:"coverMediaId"`
}

type UpdateProjectRequest = CreateProjectRequest

type BeforeAfterPairDTO struct {
	ID            uuid.UUID `json:"id"`
	ProjectID     uuid.UUID `json:"projectId"`
	BeforeMediaID uuid.UUID `json:"beforeMediaId"`
	AfterMediaID  uuid.UUID `json:"afterMediaId"`
	Before        *MediaDTO `json:"before,omitempty"`
	After         *MediaDTO `json:"after,omitempty"`
	Caption       string    `json:"caption,omitempty"`
	DisplayOrder  int       `json:"displayOrder"`
}

type CreateBeforeAfterPairRequest struct {
	BeforeMediaID uuid.UUID `json:"beforeMediaId" validate:"required"`
	AfterMediaID  uuid.UUID `json:"afterMediaId" validate:"required"`
	Caption       string    `json:"caption" validate:"max=300"`
}

// ============================================================================
// Tasks
// ============================================================================

type TaskDTO struct {
	ID           uuid.UUID    `json:"id"`
	Title        string       `json:"title"`
	Description  string       `json:"description,omitempty"`
	Status       TaskStatus   `json:"status"`
	Priority     TaskPriority `json:"priority"`
	DueDate      string       `json:"dueDate,omitempty"`
	ProjectID    *uuid.UUID   `json:"projectId,omitempty"`
	ProjectTitle string       `json:"projectTitle,omitempty"`
	AssigneeID   *uuid.UUID   `json:"assigneeId,omitempty"`
	AssigneeName string       `json:"assigneeName,omitempty"`
	DisplayOrder int          `json:"displayOrder"`
	CompletedAt  string       `json:"completedAt,omitempty"`
	CreatedAt    string       `json:"createdAt"`
	UpdatedAt    string       `json:"updatedAt"`
}

type CreateTaskRequest struct {
	Title       string       `json:"title" validate:"required,max=200"`
	Description string       `json:"description"`
	Status      TaskStatus   `json:"status" validate:"omitempty,oneof=todo in_progress done"`
	Priority    TaskPriority `json:"priority" validate:"omitempty,oneof=low medium high"`
	DueDate     string       `json:"dueDate" validate:"omitempty,datetime=2006-01-02"`
	ProjectID   *uuid.UUID   `json:"projectId"`
	AssigneeID  *uuid.UUID   `json:"assigneeId"`
}

type UpdateTaskRequest = CreateTaskRequest

type MoveTaskRequest struct {
	Status TaskStatus `json:"status" validate:"required,oneof=todo in_progress done"`
}

type ReorderTasksRequest struct {
	Status     TaskStatus  `json:"status" validate:"required,oneof=todo in_progress done"`
	OrderedIDs []uuid.UUID `json:"orderedIds" validate:"required,min=1"`
}

// ============================================================================
// Team
// ============================================================================

type TeamMemberDTO struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Role         string     `json:"role,omitempty"`
	Bio          string     `json:"bio,omitempty"`
	Email        string     `json:"email,omitempty"`
	Phone        string     `json:"phone,omitempty"`
	PhotoMediaID *uuid.UUID `json:"photoMediaId,omitempty"`
	Photo        *MediaDTO  `json:"photo,omitempty"`
	Published    bool       `json:"published"`
	DisplayOrder int        `json:"displayOrder"`
	CreatedAt    string     `json:"createdAt"`
	UpdatedAt    string     `json:"updatedAt"`
}

type CreateTeamMemberRequest struct {
	Name         string     `json:"name" validate:"required,max=200"`
	Role         string     `json:"role" validate:"max=200"`
	Bio          string     `json:"bio"`
	Email        string     `json:"email" validate:"omitempty,email"`
	Phone        string     `json:"phone" validate:"max=50"`
	PhotoMediaID *uuid.UUID `json:"photoMediaId"`
	Published    bool       `json:"published"`
}

type UpdateTeamMemberRequest = CreateTeamMemberRequest

// ============================================================================
// Testimonials
// ============================================================================

type TestimonialDTO struct {
	ID           uuid.UUID  `json:"id"`
	ClientName   string     `json:"clientName"`
	Location     string     `json:"location,omitempty"`
	Quote        string     `json:"quote"`
	Rating       int        `json:"rating"`
	ProjectID    *uuid.UUID `json:"projectId,omitempty"`
	ProjectTitle string     `json:"projectTitle,omitempty"`
	ProjectSlug  string     `json:"projectSlug,omitempty"`
	Published    bool       `json:"published"`
	Featured     bool       `json:"featured"`
	DisplayOrder int        `json:"displayOrder"`
	CreatedAt    string     `json:"createdAt"`
	UpdatedAt    string     `json:"updatedAt"`
}

type CreateTestimonialRequest struct {
	ClientName string     `json:"clientName" validate:"required,max=200"`
	Location   string     `json:"location" validate:"max=200"`
	Quote      string     `json:"quote" validate:"required"`
	Rating     int        `json:"rating" validate:"required,gte=1,lte=5"`
	ProjectID  *uuid.UUID `json:"projectId"`
	Published  bool       `json:"published"`
	Featured   bool       `json:"featured"`
}

type UpdateTestimonialRequest = CreateTestimonialRequest

// ============================================================================
// Services
// ============================================================================

type ServiceDTO struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Summary      string    `json:"summary,omitempty"`
	Body         string    `json:"body,omitempty"`
	BodyHTML     string    `json:"bodyHtml,omitempty"`
	Icon         string    `json:"icon,omitempty"`
	Published    bool      `json:"published"`
	DisplayOrder int       `json:"displayOrder"`
	CreatedAt    string    `json:"createdAt"`
	UpdatedAt    string    `json:"updatedAt"`
}

type CreateServiceRequest struct {
	Name      string `json:"name" validate:"required,max=200"`
	Slug      string `json:"slug" validate:"max=200"`
	Summary   string `json:"summary" validate:"max=500"`
	Body      string `json:"body"`
	Icon      string `json:"icon" validate:"max=100"`
	Published bool   `json:"published"`
}

type UpdateServiceRequest = CreateServiceRequest

// ============================================================================
// Messages
// ============================================================================

type MessageDTO struct {
	ID          uuid.UUID     `json:"id"`
	Name        string        `json:"name"`
	Email       string        `json:"email"`
	Phone       string        `json:"phone,omitempty"`
	Subject     string        `json:"subject,omitempty"`
	Body        string        `json:"body"`
	ServiceSlug string        `json:"serviceSlug,omitempty"`
	Status      MessageStatus `json:"status"`
	IPAddress   string        `json:"ipAddress,omitempty"`
	UserAgent   string        `json:"userAgent,omitempty"`
	ReadAt      string        `json:"readAt,omitempty"`
	CreatedAt   string        `json:"createdAt"`
}

// ContactRequest is the payload of the public contact form
type ContactRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	Email       string `json:"email" validate:"required,email,max=255"`
	Phone       string `json:"phone" validate:"max=50"`
	Subject     string `json:"subject" validate:"max=300"`
	Message     string `json:"message" validate:"required,min=10,max=5000"`
	ServiceSlug string `json:"service" validate:"max=200"`
	// Website is a honeypot field; humans never fill it in
	Website string `json:"website"`
}

// ContactResponse acknowledges a contact form submission
type ContactResponse struct {
	ID      uuid.UUID `json:"id"`
	Message string    `json:"message"`
}

// ============================================================================
// Admin users & auth
// ============================================================================

type AdminUserDTO struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"displayName"`
	Role        AdminRole `json:"role"`
	IsActive    bool      `json:"isActive"`
	LastLoginAt string    `json:"lastLoginAt,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt string       `json:"expiresAt"`
	User      AdminUserDTO `json:"user"`
}

// ============================================================================
// Audit
// ============================================================================

type AuditLogDTO struct {
	ID          uuid.UUID   `json:"id"`
	UserID      string      `json:"userId,omitempty"`
	UserEmail   string      `json:"userEmail,omitempty"`
	Action      AuditAction `json:"action"`
	EntityType  string      `json:"entityType"`
	EntityID    *uuid.UUID  `json:"entityId,omitempty"`
	NewValues   string      `json:"newValues,omitempty"`
	IPAddress   string      `json:"ipAddress,omitempty"`
	RequestID   string      `json:"requestId,omitempty"`
	PerformedAt string      `json:"performedAt"`
}

// ============================================================================
// Dashboard & site
// ============================================================================

type DashboardDTO struct {
	PublishedProjects int64        `json:"publishedProjects"`
	DraftProjects     int64        `json:"draftProjects"`
	NewMessages       int64        `json:"newMessages"`
	ReadMessages      int64        `json:"readMessages"`
	OpenTasks         int64        `json:"openTasks"`
	Testimonials      int64        `json:"testimonials"`
	MediaCount        int64        `json:"mediaCount"`
	RecentMessages    []MessageDTO `json:"recentMessages"`
}

// HomeContent aggregates what the landing page shows
type HomeContent struct {
	FeaturedProjects []ProjectDTO     `json:"featuredProjects"`
	Services         []ServiceDTO     `json:"services"`
	Testimonials     []TestimonialDTO `json:"testimonials"`
}
