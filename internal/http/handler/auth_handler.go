package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/fjordrenovering/website/internal/auth"
	"github.com/fjordrenovering/website/internal/config"
	"github.com/fjordrenovering/website/internal/domain"
	"github.com/fjordrenovering/website/internal/service"
	"go.uber.org/zap"
)

// sessionCookies writes and clears the admin session cookie
type sessionCookies struct {
	name   string
	secure bool
}

func (c sessionCookies) set(w http.ResponseWriter, login *domain.LoginResponse) {
	expires, err := time.Parse(time.RFC3339, login.ExpiresAt)
	if err != nil {
		expires = time.Time{}
	}
	http.SetCookie(w, &http.Cookie{
		Name:     c.name,
		Value:    login.Token,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (c sessionCookies) clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// auditSession records a login or logout; failures are only logged
func auditSession(ctx context.Context, audit *service.AuditLogService, logger *zap.Logger, r *http.Request, action domain.AuditAction, user *domain.AdminUserDTO) {
	if audit == nil || user == nil {
		return
	}
	id := user.ID
	entry := service.LogEntry{
		Action:     action,
		EntityType: "admin_user",
		EntityID:   &id,
		UserEmail:  user.Email,
	}
	if err := audit.Log(ctx, r, entry); err != nil {
		logger.Warn("failed to audit session event", zap.String("action", string(action)), zap.Error(err))
	}
}

// AuthHandler handles admin authentication for the JSON API
type AuthHandler struct {
	authService  *service.AuthService
	auditService *service.AuditLogService
	cookies      sessionCookies
	logger       *zap.Logger
}

// NewAuthHandler creates a new auth handler instance
func NewAuthHandler(
	authService *service.AuthService,
	auditService *service.AuditLogService,
	cfg *config.AuthConfig,
	logger *zap.Logger,
) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		auditService: auditService,
		cookies:      sessionCookies{name: cfg.CookieName, secure: cfg.CookieSecure},
		logger:       logger,
	}
}

// Login godoc
// @Summary Log in
// @Description Returns a bearer token and sets the session cookie
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body domain.LoginRequest true "Credentials"
// @Success 200 {object} domain.LoginResponse
// @Failure 400 {object} domain.APIError
// @Failure 401 {object} domain.APIError
// @Router /admin/api/v1/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	resp, err := h.authService.Login(r.Context(), &req)
	if err != nil {
		if errorStatus(err) == http.StatusUnauthorized {
			// one message for unknown user, wrong password and disabled account
			respondWithError(w, http.StatusUnauthorized, service.ErrInvalidCredentials.Error())
			return
		}
		respondServiceError(w, h.logger, err, "log in")
		return
	}

	h.cookies.set(w, resp)
	auditSession(r.Context(), h.auditService, h.logger, r, domain.AuditActionLogin, &resp.User)
	respondJSON(w, http.StatusOK, resp)
}

// Me godoc
// @Summary Get current admin user
// @Tags Auth
// @Produce json
// @Success 200 {object} domain.AdminUserDTO
// @Failure 401 {object} domain.ErrorResponse
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/api/v1/auth/me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userCtx, ok := auth.FromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	if userCtx.Method == auth.MethodAPIKey {
		respondJSON(w, http.StatusOK, domain.AdminUserDTO{
			ID:          userCtx.UserID,
			Email:       userCtx.Email,
			DisplayName: userCtx.DisplayName,
			Role:        userCtx.Role,
			IsActive:    true,
		})
		return
	}

	user, err := h.authService.Me(r.Context(), userCtx.UserID)
	if err != nil {
		respondServiceError(w, h.logger, err, "get current user")
		return
	}
	respondJSON(w, http.StatusOK, user)
}

// Logout godoc
// @Summary Log out
// @Description Clears the session cookie. Bearer tokens stay valid until they expire.
// @Tags Auth
// @Success 204
// @Security BearerAuth
// @Router /admin/api/v1/auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.cookies.clear(w)
	if userCtx, ok := auth.FromContext(r.Context()); ok && userCtx.Method != auth.MethodAPIKey {
		auditSession(r.Context(), h.auditService, h.logger, r, domain.AuditActionLogout,
			&domain.AdminUserDTO{ID: userCtx.UserID, Email: userCtx.Email})
	}
	w.WriteHeader(http.StatusNoContent)
}
