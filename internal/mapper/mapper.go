package mapper

import (
	"fmt"
	"time"

	"github.com/fjordrenovering/website/internal/domain"
)

const (
	timestampLayout = "2006-01-02T15:04:05Z"
	dateLayout      = "2006-01-02"
)

func formatTime(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

func formatOptionalTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}

func formatOptionalDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}

// ParseDate parses a YYYY-MM-DD form value; empty input yields nil
func ParseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return &t, nil
}

// MediaURL returns where the media can be fetched: the storage URL when public, else the site's media route
func MediaURL(media *domain.Media) string {
	if media.URL != "" {
		return media.URL
	}
	return "/media/" + media.ID.String()
}

// ToMediaDTO converts Media to MediaDTO
func ToMediaDTO(media *domain.Media) domain.MediaDTO {
	return domain.MediaDTO{
		ID:           media.ID,
		Filename:     media.Filename,
		ContentType:  media.ContentType,
		Size:         media.Size,
		URL:          MediaURL(media),
		AltText:      media.AltText,
		Kind:         media.Kind,
		Width:        media.Width,
		Height:       media.Height,
		ProjectID:    media.ProjectID,
		DisplayOrder: media.DisplayOrder,
		CreatedAt:    formatTime(media.CreatedAt),
	}
}

func toOptionalMediaDTO(media *domain.Media) *domain.MediaDTO {
	if media == nil {
		return nil
	}
	dto := ToMediaDTO(media)
	return &dto
}

// ToProjectDTO converts Project to ProjectDTO including loaded relations.
// BodyHTML is filled in by the service that owns the markdown renderer.
func ToProjectDTO(project *domain.Project) domain.ProjectDTO {
	dto := domain.ProjectDTO{
		ID:           project.ID,
		Title:        project.Title,
		Slug:         project.Slug,
		Summary:      project.Summary,
		Body:         project.Body,
		Category:     project.Category,
		Location:     project.Location,
		CompletedAt:  formatOptionalDate(project.CompletedAt),
		Featured:     project.Featured,
		Published:    project.Published,
		DisplayOrder: project.DisplayOrder,
		CoverMediaID: project.CoverMediaID,
		Cover:        toOptionalMediaDTO(project.CoverMedia),
		CreatedAt:    formatTime(project.CreatedAt),
		UpdatedAt:    formatTime(project.UpdatedAt),
	}

	if len(project.Media) > 0 {
		dto.Media = make([]domain.MediaDTO, len(project.Media))
		for i := range project.Media {
			dto.Media[i] = ToMediaDTO(&project.Media[i])
		}
	}
	if len(project.BeforeAfterPairs) > 0 {
		dto.BeforeAfterPairs = make([]domain.BeforeAfterPairDTO, len(project.BeforeAfterPairs))
		for i := range project.BeforeAfterPairs {
			dto.BeforeAfterPairs[i] = ToBeforeAfterPairDTO(&project.BeforeAfterPairs[i])
		}
	}
	return dto
}

// ToBeforeAfterPairDTO converts BeforeAfterPair to BeforeAfterPairDTO
func ToBeforeAfterPairDTO(pair *domain.BeforeAfterPair) domain.BeforeAfterPairDTO {
	return domain.BeforeAfterPairDTO{
		ID:            pair.ID,
		ProjectID:     pair.ProjectID,
		BeforeMediaID: pair.BeforeMediaID,
		AfterMediaID:  pair.AfterMediaID,
		Before:        toOptionalMediaDTO(pair.BeforeMedia),
		After:         toOptionalMediaDTO(pair.AfterMedia),
		Caption:       pair.Caption,
		DisplayOrder:  pair.DisplayOrder,
	}
}

// ToTaskDTO converts Task to TaskDTO
func ToTaskDTO(task *domain.Task) domain.TaskDTO {
	dto := domain.TaskDTO{
		ID:           task.ID,
		Title:        task.Title,
		Description:  task.Description,
		Status:       task.Status,
		Priority:     task.Priority,
		DueDate:      formatOptionalDate(task.DueDate),
		ProjectID:    task.ProjectID,
		AssigneeID:   task.AssigneeID,
		DisplayOrder: task.DisplayOrder,
		CompletedAt:  formatOptionalTime(task.CompletedAt),
		CreatedAt:    formatTime(task.CreatedAt),
		UpdatedAt:    formatTime(task.UpdatedAt),
	}
	if task.Project != nil {
		dto.ProjectTitle = task.Project.Title
	}
	if task.Assignee != nil {
		dto.AssigneeName = task.Assignee.Name
	}
	return dto
}

// ToTeamMemberDTO converts TeamMember to TeamMemberDTO
func ToTeamMemberDTO(member *domain.TeamMember) domain.TeamMemberDTO {
	return domain.TeamMemberDTO{
		ID:           member.ID,
		Name:         member.Name,
		Role:         member.Role,
		Bio:          member.Bio,
		Email:        member.Email,
		Phone:        member.Phone,
		PhotoMediaID: member.PhotoMediaID,
		Photo:        toOptionalMediaDTO(member.PhotoMedia),
		Published:    member.Published,
		DisplayOrder: member.DisplayOrder,
		CreatedAt:    formatTime(member.CreatedAt),
		UpdatedAt:    formatTime(member.UpdatedAt),
	}
}

// ToTestimonialDTO converts Testimonial to TestimonialDTO
func ToTestimonialDTO(t *domain.Testimonial) domain.TestimonialDTO {
	dto := domain.TestimonialDTO{
		ID:           t.ID,
		ClientName:   t.ClientName,
		Location:     t.Location,
		Quote:        t.Quote,
		Rating:       t.Rating,
		ProjectID:    t.ProjectID,
		Published:    t.Published,
		Featured:     t.Featured,
		DisplayOrder: t.DisplayOrder,
		CreatedAt:    formatTime(t.CreatedAt),
		UpdatedAt:    formatTime(t.UpdatedAt),
	}
	if t.Project != nil {
		dto.ProjectTitle = t.Project.Title
		if t.Project.Published {
			dto.ProjectSlug = t.Project.Slug
		}
	}
	return dto
}

// ToServiceDTO converts Service to ServiceDTO
func ToServiceDTO(s *domain.Service) domain.ServiceDTO {
	return domain.ServiceDTO{
		ID:           s.ID,
		Name:         s.Name,
		Slug:         s.Slug,
		Summary:      s.Summary,
		Body:         s.Body,
		Icon:         s.Icon,
		Published:    s.Published,
		DisplayOrder: s.DisplayOrder,
		CreatedAt:    formatTime(s.CreatedAt),
		UpdatedAt:    formatTime(s.UpdatedAt),
	}
}

// ToMessageDTO converts Message to MessageDTO
func ToMessageDTO(msg *domain.Message) domain.MessageDTO {
	return domain.MessageDTO{
		ID:          msg.ID,
		Name:        msg.Name,
		Email:       msg.Email,
		Phone:       msg.Phone,
		Subject:     msg.Subject,
		Body:        msg.Body,
		ServiceSlug: msg.ServiceSlug,
		Status:      msg.Status,
		IPAddress:   msg.IPAddress,
		UserAgent:   msg.UserAgent,
		ReadAt:      formatOptionalTime(msg.ReadAt),
		CreatedAt:   formatTime(msg.CreatedAt),
	}
}

// ToAdminUserDTO converts AdminUser to AdminUserDTO; the password hash never leaves the service layer
func ToAdminUserDTO(user *domain.AdminUser) domain.AdminUserDTO {
	return domain.AdminUserDTO{
		ID:          user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		Role:        user.Role,
		IsActive:    user.IsActive,
		LastLoginAt: formatOptionalTime(user.LastLoginAt),
	}
}

// ToAuditLogDTO converts AuditLog to AuditLogDTO
func ToAuditLogDTO(log *domain.AuditLog) domain.AuditLogDTO {
	return domain.AuditLogDTO{
		ID:          log.ID,
		UserID:      log.UserID,
		UserEmail:   log.UserEmail,
		Action:      log.Action,
		EntityType:  log.EntityType,
		EntityID:    log.EntityID,
		NewValues:   log.NewValues,
		IPAddress:   log.IPAddress,
		RequestID:   log.RequestID,
		PerformedAt: formatTime(log.PerformedAt),
	}
}

// FormatError creates a formatted error message
func FormatError(entity, operation string, err error) error {
	return fmt.Errorf("failed to %s %s: %w", operation, entity, err)
}
