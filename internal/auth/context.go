package auth

import (
	"context"

	"github.com/fjordrenovering/website/internal/domain"
	"github.com/google/uuid"
)

// Method records how a request was authenticated
type Method string

const (
	MethodBearer Method = "bearer"
	MethodCookie Method = "cookie"
	MethodAPIKey Method = "api_key"
)

// UserContext holds authenticated admin information
type UserContext struct {
	UserID      uuid.UUID
	DisplayName string
	Email       string
	Role        domain.AdminRole
	Method      Method
}

type contextKey string

const userContextKey contextKey = "userContext"

// WithUserContext adds user context to the context
func WithUserContext(ctx context.Context, user *UserContext) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// FromContext extracts user context from the context
func FromContext(ctx context.Context) (*UserContext, bool) {
	user, ok := ctx.Value(userContextKey).(*UserContext)
	return user, ok && user != nil
}

// HasAnyRole checks if user has any of the specified roles
func (u *UserContext) HasAnyRole(roles ...domain.AdminRole) bool {
	for _, role := range roles {
		if u.Role == role {
			return true
		}
	}
	return false
}

// IsAdmin reports whether the user may manage admin-only resources
func (u *UserContext) IsAdmin() bool {
	return u.Role == domain.AdminRoleAdmin
}

// systemUser is the identity attached to requests authenticated with the API key
func systemUser() *UserContext {
	return &UserContext{
		UserID:      uuid.Nil,
		DisplayName: "System",
		Email:       "system@api-key",
		Role:        domain.AdminRoleAdmin,
		Method:      MethodAPIKey,
	}
}
