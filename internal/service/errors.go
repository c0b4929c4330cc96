package service

import (
	"errors"
	"fmt"

	"github.com/fjordrenovering/website/internal/repository"
	"github.com/google/uuid"
)

// Common service errors
var (
	// ErrNotFound is returned when a resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrConflict is returned when there's a conflict (e.g., duplicate)
	ErrConflict = errors.New("resource conflict")

	// ErrUnauthorized is returned when user is not authenticated
	ErrUnauthorized = errors.New("unauthorized")
)

// Entity lookups
var (
	ErrProjectNotFound     = fmt.Errorf("project %w", ErrNotFound)
	ErrMediaNotFound       = fmt.Errorf("media %w", ErrNotFound)
	ErrPairNotFound        = fmt.Errorf("before/after pair %w", ErrNotFound)
	ErrTaskNotFound        = fmt.Errorf("task %w", ErrNotFound)
	ErrTeamMemberNotFound  = fmt.Errorf("team member %w", ErrNotFound)
	ErrTestimonialNotFound = fmt.Errorf("testimonial %w", ErrNotFound)
	ErrServiceNotFound     = fmt.Errorf("service %w", ErrNotFound)
	ErrMessageNotFound     = fmt.Errorf("message %w", ErrNotFound)
	ErrAdminUserNotFound   = fmt.Errorf("admin user %w", ErrNotFound)
)

// Validation and business rule errors
var (
	ErrInvalidSlug          = errors.New("slug must contain letters or digits")
	ErrDuplicateSlug        = errors.New("slug is already in use")
	ErrReorderCountMismatch = errors.New("ordered IDs count does not match existing items count")
	ErrDuplicateIDs         = errors.New("ordered IDs contain duplicates")
	ErrReorderScope         = errors.New("ordered IDs contain an item outside the list")
	ErrInvalidCategory      = errors.New("category must be residential or commercial")
	ErrInvalidDate          = errors.New("date must be formatted as YYYY-MM-DD")
	ErrInvalidRating        = errors.New("rating must be between 1 and 5")
	ErrInvalidTaskStatus    = errors.New("invalid task status")
	ErrInvalidTaskPriority  = errors.New("invalid task priority")
	ErrNotAnImage           = errors.New("media must be an image")
	ErrPairSameMedia        = errors.New("before and after images must differ")
	ErrEmptyFile            = errors.New("uploaded file is empty")
	ErrFileTooLarge         = errors.New("uploaded file exceeds the size limit")
	ErrUnsupportedMediaType = errors.New("unsupported file type")
	ErrMediaInUse           = errors.New("media is used as a cover, photo or before/after image")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrInactiveUser         = errors.New("user account is disabled")
)

// validateReorder checks the id list of a drag-and-drop reorder against the current list size
func validateReorder(orderedIDs []uuid.UUID, count int64) error {
	seen := make(map[uuid.UUID]struct{}, len(orderedIDs))
	for _, id := range orderedIDs {
		if _, ok := seen[id]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateIDs, id)
		}
		seen[id] = struct{}{}
	}
	if int64(len(orderedIDs)) != count {
		return fmt.Errorf("%w: got %d, expected %d", ErrReorderCountMismatch, len(orderedIDs), count)
	}
	return nil
}

// reorderError maps repository reorder failures onto service errors
func reorderError(err error) error {
	if errors.Is(err, repository.ErrNotInScope) {
		return fmt.Errorf("%w: %v", ErrReorderScope, err)
	}
	return fmt.Errorf("failed to reorder: %w", err)
}
