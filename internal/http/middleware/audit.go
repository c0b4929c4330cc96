package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/fjordrenovering/website/internal/domain"
	"github.com/fjordrenovering/website/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// maxAuditBody caps how much of a request or response body is kept for the audit trail
const maxAuditBody = 64 << 10

// sensitiveFields are removed from audited request bodies
var sensitiveFields = []string{"password", "currentPassword", "newPassword", "secret", "token", "apiKey"}

// entityTypes maps route segments to audited entity types. The last matching
// segment wins, so /projects/{id}/pairs is audited as a before/after pair.
var entityTypes = map[string]string{
	"projects":     "project",
	"pairs":        "before_after_pair",
	"media":        "media",
	"tasks":        "task",
	"team":         "team_member",
	"testimonials": "testimonial",
	"services":     "service",
	"messages":     "message",
}

// AuditConfig holds configuration for audit middleware
type AuditConfig struct {
	// SkipPaths are path prefixes that are never audited
	SkipPaths []string
	// SkipMethods are HTTP methods that are never audited
	SkipMethods []string
}

// DefaultAuditConfig returns default audit configuration.
// Logins are audited by the auth handler itself.
func DefaultAuditConfig() *AuditConfig {
	return &AuditConfig{
		SkipPaths: []string{
			"/admin/api/v1/auth",
			"/admin/login",
			"/admin/logout",
		},
		SkipMethods: []string{
			http.MethodGet,
			http.MethodOptions,
			http.MethodHead,
		},
	}
}

// AuditMiddleware records successful admin mutations in the audit log
type AuditMiddleware struct {
	auditService *service.AuditLogService
	config       *AuditConfig
	logger       *zap.Logger
}

// NewAuditMiddleware creates a new audit middleware
func NewAuditMiddleware(auditService *service.AuditLogService, config *AuditConfig, logger *zap.Logger) *AuditMiddleware {
	if config == nil {
		config = DefaultAuditConfig()
	}
	return &AuditMiddleware{
		auditService: auditService,
		config:       config,
		logger:       logger,
	}
}

// Audit returns middleware that writes an audit entry after each successful mutation.
// It must be mounted after authentication so the acting user is known.
func (m *AuditMiddleware) Audit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !m.shouldAudit(r) {
			next.ServeHTTP(w, r)
			return
		}

		var requestBody []byte
		if r.Body != nil && isJSON(r.Header.Get("Content-Type")) {
			body, err := io.ReadAll(io.LimitReader(r.Body, maxAuditBody+1))
			if err == nil && len(body) <= maxAuditBody {
				requestBody = body
			}
			r.Body = io.NopCloser(io.MultiReader(bytes.NewReader(body), r.Body))
		}

		rw := &responseCapture{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		m.logAudit(r, rw, requestBody)
	})
}

func (m *AuditMiddleware) shouldAudit(r *http.Request) bool {
	for _, method := range m.config.SkipMethods {
		if r.Method == method {
			return false
		}
	}
	for _, skipPath := range m.config.SkipPaths {
		if strings.HasPrefix(r.URL.Path, skipPath) {
			return false
		}
	}
	return true
}

func (m *AuditMiddleware) logAudit(r *http.Request, rw *responseCapture, requestBody []byte) {
	if m.auditService == nil || rw.statusCode < 200 || rw.statusCode >= 300 {
		return
	}

	action := actionFor(r.Method, r.URL.Path)
	if action == "" {
		return
	}

	entityType, entityID := m.extractEntityInfo(r)
	if entityID == nil && action == domain.AuditActionCreate {
		entityID = idFromBody(rw.body.Bytes())
	}

	var values interface{}
	if len(requestBody) > 0 {
		var parsed map[string]interface{}
		if json.Unmarshal(requestBody, &parsed) == nil {
			for _, field := range sensitiveFields {
				delete(parsed, field)
			}
			values = parsed
		}
	}

	entry := service.LogEntry{
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		NewValues:  values,
	}
	if err := m.auditService.Log(r.Context(), r, entry); err != nil {
		m.logger.Warn("failed to create audit log entry",
			zap.String("path", r.URL.Path),
			zap.String("method", r.Method),
			zap.Error(err))
	}
}

// actionFor derives the audit action from the method and the final path segment
func actionFor(method, path string) domain.AuditAction {
	if strings.HasSuffix(path, "/reorder") {
		return domain.AuditActionReorder
	}
	switch method {
	case http.MethodPost:
		if strings.HasSuffix(path, "/move") || strings.HasSuffix(path, "/read") || strings.HasSuffix(path, "/archive") {
			return domain.AuditActionUpdate
		}
		return domain.AuditActionCreate
	case http.MethodPut, http.MethodPatch:
		return domain.AuditActionUpdate
	case http.MethodDelete:
		return domain.AuditActionDelete
	}
	return ""
}

func (m *AuditMiddleware) extractEntityInfo(r *http.Request) (string, *uuid.UUID) {
	routeCtx := chi.RouteContext(r.Context())
	if routeCtx == nil {
		return entityFromPath(r.URL.Path), nil
	}

	path := r.URL.Path
	if pattern := routeCtx.RoutePattern(); pattern != "" {
		path = pattern
	}
	entityType := entityFromPath(path)

	// pair routes carry the owning project as {id}
	key := "id"
	if entityType == "before_after_pair" {
		key = "pairId"
	}
	if id, err := uuid.Parse(routeCtx.URLParam(key)); err == nil {
		return entityType, &id
	}
	return entityType, nil
}

func entityFromPath(path string) string {
	entityType := "unknown"
	for _, part := range strings.Split(strings.Trim(path, "/"), "/") {
		if t, ok := entityTypes[part]; ok {
			entityType = t
		}
	}
	return entityType
}

func idFromBody(body []byte) *uuid.UUID {
	var payload struct {
		ID uuid.UUID `json:"id"`
	}
	if json.Unmarshal(body, &payload) != nil || payload.ID == uuid.Nil {
		return nil
	}
	return &payload.ID
}

func isJSON(contentType string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(contentType)), "application/json")
}

// responseCapture records the status code and the start of the response body
type responseCapture struct {
	http.ResponseWriter
	statusCode int
	body       bytes.Buffer
}

func (rw *responseCapture) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseCapture) Write(b []byte) (int, error) {
	if room := maxAuditBody - rw.body.Len(); room > 0 {
		if len(b) < room {
			room = len(b)
		}
		rw.body.Write(b[:room])
	}
	return rw.ResponseWriter.Write(b)
}
