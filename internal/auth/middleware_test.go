package auth_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/fjordrenovering/website/internal/auth"
	"github.com/fjordrenovering/website/internal/config"
	"github.com/fjordrenovering/website/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fakeUsers struct {
	mu    sync.Mutex
	users map[uuid.UUID]domain.AdminUser
	err   error
}

func (f *fakeUsers) GetByID(_ context.Context, id uuid.UUID) (*domain.AdminUser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	user, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &user, nil
}

func (f *fakeUsers) put(user *domain.AdminUser) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[user.ID] = *user
}

// sessions issues tokens for users it also stores in the lookup
type sessions struct {
	tokens *auth.TokenManager
	users  *fakeUsers
}

func (s *sessions) Issue(user *domain.AdminUser) (string, time.Time, error) {
	s.users.put(user)
	return s.tokens.Issue(user)
}

func createTestMiddleware(apiKey string) (*auth.Middleware, *sessions) {
	cfg := &config.Config{
		Auth:   *testAuthConfig(),
		ApiKey: config.ApiKeyConfig{Value: apiKey},
	}
	s := &sessions{
		tokens: auth.NewTokenManager(&cfg.Auth),
		users:  &fakeUsers{users: make(map[uuid.UUID]domain.AdminUser)},
	}
	return auth.NewMiddleware(cfg, s.tokens, s.users, zap.NewNop()), s
}

func captureUser(captured **auth.UserContext) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*captured, _ = auth.FromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestMiddleware_Authenticate_WithAPIKey(t *testing.T) {
	m, _ := createTestMiddleware("test-api-key-12345")
	var user *auth.UserContext

	req := httptest.NewRequest(http.MethodGet, "/admin/api/v1/projects", nil)
	req.Header.Set("x-api-key", "test-api-key-12345")
	w := httptest.NewRecorder()
	m.Authenticate(captureUser(&user)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, user)
	assert.Equal(t, auth.MethodAPIKey, user.Method)
	assert.True(t, user.IsAdmin())
}

func TestMiddleware_Authenticate_InvalidAPIKey(t *testing.T) {
	m, _ := createTestMiddleware("test-api-key-12345")
	var user *auth.UserContext

	req := httptest.NewRequest(http.MethodGet, "/admin/api/v1/projects", nil)
	req.Header.Set("x-api-key", "wrong")
	w := httptest.NewRecorder()
	m.Authenticate(captureUser(&user)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Nil(t, user)

	var body domain.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Unauthorized", body.Error)
}

func TestMiddleware_Authenticate_APIKeyDisabledWhenUnset(t *testing.T) {
	m, _ := createTestMiddleware("")
	var user *auth.UserContext

	req := httptest.NewRequest(http.MethodGet, "/admin/api/v1/projects", nil)
	req.Header.Set("x-api-key", "anything")
	w := httptest.NewRecorder()
	m.Authenticate(captureUser(&user)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMiddleware_Authenticate_Bearer(t *testing.T) {
	m, tokens := createTestMiddleware("")
	admin := testAdmin(domain.AdminRoleAdmin)
	token, _, err := tokens.Issue(admin)
	require.NoError(t, err)
	var user *auth.UserContext

	req := httptest.NewRequest(http.MethodGet, "/admin/api/v1/projects", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	m.Authenticate(captureUser(&user)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, user)
	assert.Equal(t, admin.ID, user.UserID)
	assert.Equal(t, auth.MethodBearer, user.Method)
}

func TestMiddleware_Authenticate_MalformedHeader(t *testing.T) {
	m, _ := createTestMiddleware("")
	var user *auth.UserContext

	req := httptest.NewRequest(http.MethodGet, "/admin/api/v1/projects", nil)
	req.Header.Set("Authorization", "Basic abc")
	w := httptest.NewRecorder()
	m.Authenticate(captureUser(&user)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMiddleware_Authenticate_Cookie(t *testing.T) {
	m, tokens := createTestMiddleware("")
	token, _, err := tokens.Issue(testAdmin(domain.AdminRoleEditor))
	require.NoError(t, err)
	var user *auth.UserContext

	req := httptest.NewRequest(http.MethodGet, "/admin/api/v1/projects", nil)
	req.AddCookie(&http.Cookie{Name: "admin_session", Value: token})
	w := httptest.NewRecorder()
	m.Authenticate(captureUser(&user)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, user)
	assert.Equal(t, auth.MethodCookie, user.Method)
}

func TestMiddleware_Authenticate_NoCredentials(t *testing.T) {
	m, _ := createTestMiddleware("key")
	var user *auth.UserContext

	req := httptest.NewRequest(http.MethodGet, "/admin/api/v1/projects", nil)
	w := httptest.NewRecorder()
	m.Authenticate(captureUser(&user)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Nil(t, user)
}

func TestMiddleware_RequireSession_RedirectsToLogin(t *testing.T) {
	m, _ := createTestMiddleware("")
	var user *auth.UserContext

	req := httptest.NewRequest(http.MethodGet, "/admin?tab=tasks", nil)
	w := httptest.NewRecorder()
	m.RequireSession(captureUser(&user)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin/login?next=%2Fadmin%3Ftab%3Dtasks", w.Header().Get("Location"))
}

func TestMiddleware_RequireSession_WithCookie(t *testing.T) {
	m, tokens := createTestMiddleware("")
	token, _, err := tokens.Issue(testAdmin(domain.AdminRoleAdmin))
	require.NoError(t, err)
	var user *auth.UserContext

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: m.CookieName(), Value: token})
	w := httptest.NewRecorder()
	m.RequireSession(captureUser(&user)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, user)
}

func TestMiddleware_RequireRole(t *testing.T) {
	m, _ := createTestMiddleware("")
	guarded := m.RequireRole(domain.AdminRoleAdmin)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name     string
		user     *auth.UserContext
		expected int
	}{
		{"no user", nil, http.StatusForbidden},
		{"editor", &auth.UserContext{Role: domain.AdminRoleEditor}, http.StatusForbidden},
		{"admin", &auth.UserContext{Role: domain.AdminRoleAdmin}, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin/api/v1/audit", nil)
			if tt.user != nil {
				req = req.WithContext(auth.WithUserContext(req.Context(), tt.user))
			}
			w := httptest.NewRecorder()
			guarded.ServeHTTP(w, req)
			assert.Equal(t, tt.expected, w.Code)
		})
	}
}

func TestMiddleware_RejectsInactiveUsers(t *testing.T) {
	m, tokens := createTestMiddleware("")
	admin := testAdmin(domain.AdminRoleAdmin)
	token, _, err := tokens.Issue(admin)
	require.NoError(t, err)

	bearer := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/admin/api/v1/projects", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		m.Authenticate(okHandler()).ServeHTTP(w, req)
		return w
	}
	session := func(mw func(http.Handler) http.Handler, user **auth.UserContext) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.AddCookie(&http.Cookie{Name: m.CookieName(), Value: token})
		w := httptest.NewRecorder()
		mw(captureUser(user)).ServeHTTP(w, req)
		return w
	}

	require.Equal(t, http.StatusOK, bearer().Code)

	admin.IsActive = false
	tokens.users.put(admin)

	assert.Equal(t, http.StatusUnauthorized, bearer().Code)

	var user *auth.UserContext
	w := session(m.RequireSession, &user)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Nil(t, user)

	w = session(m.OptionalSession, &user)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, user)

	t.Run("deleted user", func(t *testing.T) {
		tokens.users.mu.Lock()
		delete(tokens.users.users, admin.ID)
		tokens.users.mu.Unlock()
		assert.Equal(t, http.StatusUnauthorized, bearer().Code)
	})
}

func TestMiddleware_UsesStoredRole(t *testing.T) {
	m, tokens := createTestMiddleware("")
	user := testAdmin(domain.AdminRoleAdmin)
	token, _, err := tokens.Issue(user)
	require.NoError(t, err)

	user.Role = domain.AdminRoleEditor
	tokens.users.put(user)

	var captured *auth.UserContext
	req := httptest.NewRequest(http.MethodGet, "/admin/api/v1/audit", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	m.Authenticate(captureUser(&captured)).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, captured)
	assert.Equal(t, domain.AdminRoleEditor, captured.Role)
}

func TestMiddleware_LookupFailure(t *testing.T) {
	m, tokens := createTestMiddleware("")
	token, _, err := tokens.Issue(testAdmin(domain.AdminRoleAdmin))
	require.NoError(t, err)
	tokens.users.err = errors.New("connection refused")

	req := httptest.NewRequest(http.MethodGet, "/admin/api/v1/projects", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	m.Authenticate(okHandler()).ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection refused")
}
