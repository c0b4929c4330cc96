package auth

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fjordrenovering/website/internal/config"
	"github.com/fjordrenovering/website/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// LoginPath is where unauthenticated admin page requests are sent
const LoginPath = "/admin/login"

// ErrInactiveUser means the token belongs to a deleted or deactivated admin user
var ErrInactiveUser = errors.New("user is inactive")

// UserLookup loads the admin user behind a token
type UserLookup interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.AdminUser, error)
}

// Middleware handles authentication for admin requests
type Middleware struct {
	tokens     *TokenManager
	users      UserLookup
	apiKey     string
	cookieName string
	logger     *zap.Logger
}

// NewMiddleware creates a new authentication middleware
func NewMiddleware(cfg *config.Config, tokens *TokenManager, users UserLookup, logger *zap.Logger) *Middleware {
	return &Middleware{
		tokens:     tokens,
		users:      users,
		apiKey:     cfg.ApiKey.Value,
		cookieName: cfg.Auth.CookieName,
		logger:     logger,
	}
}

// CookieName returns the name of the session cookie
func (m *Middleware) CookieName() string {
	return m.cookieName
}

// Authenticate requires an API key, a Bearer token or a session cookie
func (m *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		userCtx, err := m.authenticate(r)
		if err != nil && !isCredentialError(err) {
			m.logger.Error("authentication lookup failed", zap.String("path", r.URL.Path), zap.Error(err))
			writeError(w, http.StatusInternalServerError, "Internal Server Error", "authentication is temporarily unavailable")
			return
		}
		if err != nil {
			m.logger.Warn("authentication failed",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.String("remote_addr", r.RemoteAddr),
				zap.Error(err),
			)
			writeError(w, http.StatusUnauthorized, "Unauthorized", err.Error())
			return
		}

		m.logger.Debug("request authenticated",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("auth_type", string(userCtx.Method)),
			zap.String("user_id", userCtx.UserID.String()),
			zap.String("user_email", userCtx.Email),
			zap.Duration("auth_duration", time.Since(start)),
		)

		next.ServeHTTP(w, r.WithContext(WithUserContext(r.Context(), userCtx)))
	})
}

// RequireSession protects admin HTML pages; anonymous visitors are redirected to the login page
func (m *Middleware) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userCtx, err := m.fromCookie(r)
		if err != nil {
			target := LoginPath
			if r.Method == http.MethodGet {
				target += "?next=" + url.QueryEscape(r.URL.RequestURI())
			}
			http.Redirect(w, r, target, http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUserContext(r.Context(), userCtx)))
	})
}

// OptionalSession attaches the session user when a valid cookie is present
func (m *Middleware) OptionalSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if userCtx, err := m.fromCookie(r); err == nil {
			r = r.WithContext(WithUserContext(r.Context(), userCtx))
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRole middleware ensures user has one of the roles
func (m *Middleware) RequireRole(roles ...domain.AdminRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userCtx, ok := FromContext(r.Context())
			if !ok {
				writeError(w, http.StatusForbidden, "Forbidden", "no user context")
				return
			}
			if !userCtx.HasAnyRole(roles...) {
				writeError(w, http.StatusForbidden, "Forbidden", "insufficient permissions")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (m *Middleware) authenticate(r *http.Request) (*UserContext, error) {
	if apiKey := r.Header.Get("x-api-key"); apiKey != "" {
		if !m.validateAPIKey(apiKey) {
			return nil, ErrInvalidToken
		}
		return systemUser(), nil
	}

	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return nil, ErrInvalidToken
		}
		userCtx, err := m.tokens.ValidateToken(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, err
		}
		userCtx.Method = MethodBearer
		return m.refresh(r.Context(), userCtx)
	}

	return m.fromCookie(r)
}

func (m *Middleware) fromCookie(r *http.Request) (*UserContext, error) {
	cookie, err := r.Cookie(m.cookieName)
	if err != nil || cookie.Value == "" {
		return nil, ErrMissingCredentials
	}
	userCtx, err := m.tokens.ValidateToken(cookie.Value)
	if err != nil {
		return nil, err
	}
	userCtx.Method = MethodCookie
	return m.refresh(r.Context(), userCtx)
}

// refresh rejects tokens of deleted or deactivated users and applies the stored role and name
func (m *Middleware) refresh(ctx context.Context, userCtx *UserContext) (*UserContext, error) {
	user, err := m.users.GetByID(ctx, userCtx.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInactiveUser
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if !user.IsActive {
		return nil, ErrInactiveUser
	}
	userCtx.Email = user.Email
	userCtx.DisplayName = user.DisplayName
	userCtx.Role = user.Role
	return userCtx, nil
}

func isCredentialError(err error) bool {
	return errors.Is(err, ErrInvalidToken) || errors.Is(err, ErrExpiredToken) ||
		errors.Is(err, ErrMissingCredentials) || errors.Is(err, ErrInactiveUser)
}

func (m *Middleware) validateAPIKey(key string) bool {
	if m.apiKey == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(key), []byte(m.apiKey)) == 1
}

func writeError(w http.ResponseWriter, status int, errText, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(domain.ErrorResponse{Error: errText, Message: message})
}
