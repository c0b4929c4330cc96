package handler_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/fjordrenovering/website/internal/auth"
	"github.com/fjordrenovering/website/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionCookie(rr *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rr.Result().Cookies() {
		if c.Name == testAuthConfig.CookieName {
			return c
		}
	}
	return nil
}

func asUser(req *http.Request, user *domain.AdminUser, method auth.Method) *http.Request {
	return req.WithContext(auth.WithUserContext(req.Context(), &auth.UserContext{
		UserID:      user.ID,
		DisplayName: user.DisplayName,
		Email:       user.Email,
		Role:        user.Role,
		Method:      method,
	}))
}

func TestAuthHandler_Login(t *testing.T) {
	f := setupFixture(t)
	user := f.createAdmin(t, "ola@fjordrenovering.no", "riktig-passord", domain.AdminRoleAdmin)

	rr := serve(f.auth.Login, newRequest(t, http.MethodPost, "/admin/api/v1/auth/login", domain.LoginRequest{
		Email:    "ola@fjordrenovering.no",
		Password: "riktig-passord",
	}, nil))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	resp := decode[domain.LoginResponse](t, rr)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, user.ID, resp.User.ID)

	cookie := sessionCookie(rr)
	require.NotNil(t, cookie)
	assert.Equal(t, resp.Token, cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)

	var logins int64
	require.NoError(t, f.db.Model(&domain.AuditLog{}).
		Where("action = ? AND entity_id = ?", domain.AuditActionLogin, user.ID).Count(&logins).Error)
	assert.Equal(t, int64(1), logins)
}

func TestAuthHandler_LoginFailuresShareOneMessage(t *testing.T) {
	f := setupFixture(t)
	f.createAdmin(t, "ola@fjordrenovering.no", "riktig-passord", domain.AdminRoleEditor)

	var details []string
	for _, req := range []domain.LoginRequest{
		{Email: "ola@fjordrenovering.no", Password: "feil"},
		{Email: "ukjent@fjordrenovering.no", Password: "riktig-passord"},
	} {
		rr := serve(f.auth.Login, newRequest(t, http.MethodPost, "/admin/api/v1/auth/login", req, nil))
		require.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Nil(t, sessionCookie(rr))
		details = append(details, decode[domain.APIError](t, rr).Detail)
	}
	assert.Equal(t, details[0], details[1])

	rr := serve(f.auth.Login, newRequest(t, http.MethodPost, "/admin/api/v1/auth/login", map[string]string{"email": "ola"}, nil))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestAuthHandler_MeAndLogout(t *testing.T) {
	f := setupFixture(t)
	user := f.createAdmin(t, "ola@fjordrenovering.no", "riktig-passord", domain.AdminRoleEditor)

	rr := serve(f.auth.Me, asUser(httptest.NewRequest(http.MethodGet, "/admin/api/v1/auth/me", nil), user, auth.MethodBearer))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	me := decode[domain.AdminUserDTO](t, rr)
	assert.Equal(t, "ola@fjordrenovering.no", me.Email)
	assert.Equal(t, domain.AdminRoleEditor, me.Role)

	apiKeyUser := &domain.AdminUser{BaseModel: domain.BaseModel{ID: uuid.Nil}, Email: "system@api-key", Role: domain.AdminRoleAdmin}
	rr = serve(f.auth.Me, asUser(httptest.NewRequest(http.MethodGet, "/admin/api/v1/auth/me", nil), apiKeyUser, auth.MethodAPIKey))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "system@api-key", decode[domain.AdminUserDTO](t, rr).Email)

	rr = serve(f.auth.Me, httptest.NewRequest(http.MethodGet, "/admin/api/v1/auth/me", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = serve(f.auth.Logout, asUser(httptest.NewRequest(http.MethodPost, "/admin/api/v1/auth/logout", nil), user, auth.MethodCookie))
	assert.Equal(t, http.StatusNoContent, rr.Code)
	cookie := sessionCookie(rr)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}

func postForm(target string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestAdminPageHandler_Login(t *testing.T) {
	f := setupFixture(t)
	f.createAdmin(t, "ola@fjordrenovering.no", "riktig-passord", domain.AdminRoleAdmin)

	rr := serve(f.adminPages.LoginPage, httptest.NewRequest(http.MethodGet, "/admin/login?next=/admin", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rr.Body.String(), `name="password"`)

	rr = serve(f.adminPages.Login, postForm("/admin/login", url.Values{
		"email":    {"ola@fjordrenovering.no"},
		"password": {"feil"},
	}))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Nil(t, sessionCookie(rr))

	rr = serve(f.adminPages.Login, postForm("/admin/login", url.Values{
		"email":    {"ola@fjordrenovering.no"},
		"password": {"riktig-passord"},
		"next":     {"https://evil.example/steal"},
	}))
	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/admin", rr.Header().Get("Location"))
	assert.NotNil(t, sessionCookie(rr))
}

func TestAdminPageHandler_DashboardAndLogout(t *testing.T) {
	f := setupFixture(t)
	user := f.createAdmin(t, "ola@fjordrenovering.no", "riktig-passord", domain.AdminRoleAdmin)

	rr := serve(f.adminPages.Dashboard, asUser(httptest.NewRequest(http.MethodGet, "/admin", nil), user, auth.MethodCookie))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Ola Nordmann")

	rr = serve(f.adminPages.LoginPage, asUser(httptest.NewRequest(http.MethodGet, "/admin/login", nil), user, auth.MethodCookie))
	assert.Equal(t, http.StatusSeeOther, rr.Code, "signed-in users skip the form")

	rr = serve(f.adminPages.Logout, asUser(httptest.NewRequest(http.MethodPost, "/admin/logout", nil), user, auth.MethodCookie))
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, auth.LoginPath, rr.Header().Get("Location"))
}
