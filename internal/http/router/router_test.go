package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/fjordrenovering/website/internal/auth"
	"github.com/fjordrenovering/website/internal/config"
	"github.com/fjordrenovering/website/internal/content"
	"github.com/fjordrenovering/website/internal/domain"
	"github.com/fjordrenovering/website/internal/http/handler"
	"github.com/fjordrenovering/website/internal/http/middleware"
	"github.com/fjordrenovering/website/internal/http/router"
	"github.com/fjordrenovering/website/internal/repository"
	"github.com/fjordrenovering/website/internal/service"
	"github.com/fjordrenovering/website/internal/storage"
	"github.com/fjordrenovering/website/internal/testutil"
	"github.com/fjordrenovering/website/internal/web"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testAPIKey = "router-test-api-key"

type app struct {
	handler http.Handler
	users   *repository.AdminUserRepository
	cfg     *config.Config
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Name: "Fjord Renovering", Environment: "development"},
		Site: config.SiteConfig{
			CompanyName: "Fjord Renovering AS",
			AdminHost:   "admin.fjordrenovering.no",
		},
		Auth: config.AuthConfig{
			JWTSecret:       "router-test-secret-0123456789abcdef",
			JWTIssuer:       "test",
			TokenTTLMinutes: 60,
			CookieName:      "fr_session",
		},
		ApiKey:           config.ApiKeyConfig{Value: testAPIKey},
		Server:           config.ServerConfig{RequestTimeout: 30, EnableSwagger: true},
		Security:         config.SecurityConfig{ContentTypeNosniff: true, FrameOptions: "DENY"},
		RateLimit:        config.RateLimitConfig{Enabled: false},
		ContactRateLimit: config.ContactRateLimitConfig{Enabled: true, Requests: 5, WindowMinutes: 10},
	}
}

func setupApp(t *testing.T, cfg *config.Config) *app {
	t.Helper()
	db := testutil.SetupTestDB(t)
	log := zap.NewNop()

	store, err := storage.NewLocalStorage(t.TempDir(), "")
	require.NoError(t, err)
	renderer, err := web.NewRenderer(&cfg.Site, log)
	require.NoError(t, err)

	projectRepo := repository.NewProjectRepository(db)
	mediaRepo := repository.NewMediaRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	teamRepo := repository.NewTeamMemberRepository(db)
	testimonialRepo := repository.NewTestimonialRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	userRepo := repository.NewAdminUserRepository(db)
	md := content.NewMarkdown()

	projectSvc := service.NewProjectService(projectRepo, mediaRepo, md, log)
	pairSvc := service.NewBeforeAfterPairService(repository.NewBeforeAfterPairRepository(db), projectRepo, mediaRepo, log)
	mediaSvc := service.NewMediaService(mediaRepo, projectRepo, store, 1<<20, log)
	taskSvc := service.NewTaskService(taskRepo, projectRepo, teamRepo, log)
	teamSvc := service.NewTeamService(teamRepo, taskRepo, mediaRepo, log)
	testimonialSvc := service.NewTestimonialService(testimonialRepo, projectRepo, log)
	catalogSvc := service.NewCatalogService(serviceRepo, md, log)
	messageSvc := service.NewMessageService(messageRepo, log)
	dashboardSvc := service.NewDashboardService(projectRepo, messageRepo, taskRepo, testimonialRepo, mediaRepo, log)
	auditSvc := service.NewAuditLogService(repository.NewAuditLogRepository(db), log)
	tokens := auth.NewTokenManager(&cfg.Auth)
	authSvc := service.NewAuthService(userRepo, tokens, log)
	siteSvc := service.NewSiteService(projectSvc, catalogSvc, testimonialSvc, log)

	handlers := router.Handlers{
		Site:        handler.NewSiteHandler(siteSvc, projectSvc, catalogSvc, teamSvc, testimonialSvc, messageSvc, renderer, log),
		Public:      handler.NewPublicHandler(projectSvc, catalogSvc, teamSvc, testimonialSvc, log),
		AdminPages:  handler.NewAdminPageHandler(authSvc, auditSvc, dashboardSvc, projectSvc, renderer, &cfg.Auth, log),
		Auth:        handler.NewAuthHandler(authSvc, auditSvc, &cfg.Auth, log),
		Project:     handler.NewProjectHandler(projectSvc, pairSvc, mediaSvc, log),
		Media:       handler.NewMediaHandler(mediaSvc, log),
		Task:        handler.NewTaskHandler(taskSvc, log),
		Team:        handler.NewTeamHandler(teamSvc, log),
		Testimonial: handler.NewTestimonialHandler(testimonialSvc, log),
		Catalog:     handler.NewCatalogHandler(catalogSvc, log),
		Message:     handler.NewMessageHandler(messageSvc, log),
		Dashboard:   handler.NewDashboardHandler(dashboardSvc, log),
		Audit:       handler.NewAuditHandler(auditSvc, log),
		Health:      handler.NewHealthHandler(db, store, log),
	}

	rt := router.NewRouter(
		cfg,
		log,
		auth.NewMiddleware(cfg, tokens, userRepo, log),
		middleware.NewRateLimiter(&cfg.RateLimit, log),
		middleware.NewAuditMiddleware(auditSvc, nil, log),
		handlers,
	)
	return &app{handler: rt.Setup(), users: userRepo, cfg: cfg}
}

func (a *app) do(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	a.handler.ServeHTTP(rr, req)
	return rr
}

func (a *app) createUser(t *testing.T, email, password string, role domain.AdminRole) {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	require.NoError(t, a.users.Create(context.Background(), &domain.AdminUser{
		Email:        email,
		DisplayName:  "Kari Nordmann",
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
	}))
}

func (a *app) login(t *testing.T, email, password string) (*domain.LoginResponse, *http.Cookie) {
	t.Helper()
	body, err := json.Marshal(domain.LoginRequest{Email: email, Password: password})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/admin/api/v1/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rr := a.do(req)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var resp domain.LoginResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	for _, c := range rr.Result().Cookies() {
		if c.Name == a.cfg.Auth.CookieName {
			return &resp, c
		}
	}
	t.Fatalf("login did not set the %s cookie", a.cfg.Auth.CookieName)
	return nil, nil
}

func TestRouter_HealthAndAssets(t *testing.T) {
	a := setupApp(t, testConfig())

	rr := a.do(httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "OK", rr.Body.String())

	rr = a.do(httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = a.do(httptest.NewRequest(http.MethodGet, "/static/css/site.css", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/css")
	assert.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))
}

func TestRouter_PublicPages(t *testing.T) {
	a := setupApp(t, testConfig())

	for _, path := range []string{"/", "/projects", "/services", "/about", "/testimonials", "/contact"} {
		t.Run(path, func(t *testing.T) {
			rr := a.do(httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))
		})
	}

	rr := a.do(httptest.NewRequest(http.MethodGet, "/finnes-ikke", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "Siden finnes ikke")
}

func TestRouter_Swagger(t *testing.T) {
	a := setupApp(t, testConfig())

	rr := a.do(httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Fjord Renovering API")
	assert.Contains(t, rr.Body.String(), "/api/v1/public/projects")

	cfg := testConfig()
	cfg.Server.EnableSwagger = false
	rr = setupApp(t, cfg).do(httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestRouter_PublicAPI_CORS(t *testing.T) {
	a := setupApp(t, testConfig())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/public/services", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rr := a.do(req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "http://localhost:3000", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_AdminAPI_RequiresAuthentication(t *testing.T) {
	a := setupApp(t, testConfig())

	rr := a.do(httptest.NewRequest(http.MethodGet, "/admin/api/v1/projects", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	req := httptest.NewRequest(http.MethodGet, "/admin/api/v1/projects", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	assert.Equal(t, http.StatusUnauthorized, a.do(req).Code)

	req = httptest.NewRequest(http.MethodGet, "/admin/api/v1/projects", nil)
	req.Header.Set("x-api-key", "wrong")
	assert.Equal(t, http.StatusUnauthorized, a.do(req).Code)
}

func TestRouter_AdminAPI_APIKey(t *testing.T) {
	a := setupApp(t, testConfig())

	req := httptest.NewRequest(http.MethodGet, "/admin/api/v1/auth/me", nil)
	req.Header.Set("x-api-key", testAPIKey)
	rr := a.do(req)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var me domain.AdminUserDTO
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &me))
	assert.Equal(t, domain.AdminRoleAdmin, me.Role)
}

func TestRouter_AdminSession(t *testing.T) {
	a := setupApp(t, testConfig())
	a.createUser(t, "kari@fjordrenovering.no", "hemmelig-passord", domain.AdminRoleAdmin)

	rr := a.do(httptest.NewRequest(http.MethodGet, "/admin", nil))
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.True(t, strings.HasPrefix(rr.Header().Get("Location"), auth.LoginPath))

	resp, cookie := a.login(t, "kari@fjordrenovering.no", "hemmelig-passord")
	assert.NotEmpty(t, resp.Token)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(cookie)
	rr = a.do(req)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Kari Nordmann")

	// the same cookie authenticates the JSON API
	req = httptest.NewRequest(http.MethodGet, "/admin/api/v1/dashboard", nil)
	req.AddCookie(cookie)
	assert.Equal(t, http.StatusOK, a.do(req).Code)
}

func TestRouter_AuditRequiresAdminRole(t *testing.T) {
	a := setupApp(t, testConfig())
	a.createUser(t, "editor@fjordrenovering.no", "redaktor-passord", domain.AdminRoleEditor)
	a.createUser(t, "admin@fjordrenovering.no", "admin-passord", domain.AdminRoleAdmin)

	editor, _ := a.login(t, "editor@fjordrenovering.no", "redaktor-passord")
	req := httptest.NewRequest(http.MethodGet, "/admin/api/v1/audit", nil)
	req.Header.Set("Authorization", "Bearer "+editor.Token)
	assert.Equal(t, http.StatusForbidden, a.do(req).Code)

	admin, _ := a.login(t, "admin@fjordrenovering.no", "admin-passord")
	req = httptest.NewRequest(http.MethodGet, "/admin/api/v1/audit", nil)
	req.Header.Set("Authorization", "Bearer "+admin.Token)
	rr := a.do(req)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), string(domain.AuditActionLogin))
}

func TestRouter_AdminMutationIsAudited(t *testing.T) {
	a := setupApp(t, testConfig())

	body := `{"name":"Kjøkken","slug":"kjokken","body":"## Kjøkken","published":true}`
	req := httptest.NewRequest(http.MethodPost, "/admin/api/v1/services", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", testAPIKey)
	rr := a.do(req)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/admin/api/v1/audit?entityType=service", nil)
	req.Header.Set("x-api-key", testAPIKey)
	rr = a.do(req)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"action":"create"`)

	rr = a.do(httptest.NewRequest(http.MethodGet, "/services/kjokken", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRouter_ContactLimiterIsShared(t *testing.T) {
	a := setupApp(t, testConfig())

	form := url.Values{"name": {""}, "email": {"ikke-en-epost"}, "message": {""}}
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		assert.NotEqual(t, http.StatusTooManyRequests, a.do(req).Code)
	}
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/contact", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		assert.NotEqual(t, http.StatusTooManyRequests, a.do(req).Code)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/contact", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rr := a.do(req)
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.Equal(t, "600", rr.Header().Get("Retry-After"))
	assert.Contains(t, rr.Header().Get("Content-Type"), "application/json")

	// the HTML form gets the contact page back, with the visitor's input kept
	form = url.Values{"name": {"Ola Nordmann"}, "email": {"ola@example.com"}, "message": {"Vi vil bytte tak."}}
	req = httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr = a.do(req)
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.Equal(t, "600", rr.Header().Get("Retry-After"))
	assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Body.String(), "Prøv igjen om litt")
	assert.Contains(t, rr.Body.String(), "Ola Nordmann")
}

func TestRouter_AdminHost(t *testing.T) {
	a := setupApp(t, testConfig())

	req := httptest.NewRequest(http.MethodGet, "http://admin.fjordrenovering.no/login", nil)
	rr := a.do(req)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "password")

	// shared paths are not rewritten
	req = httptest.NewRequest(http.MethodGet, "http://admin.fjordrenovering.no/health", nil)
	assert.Equal(t, http.StatusOK, a.do(req).Code)
}

func contactPost(forwardedFor string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/contact", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Forwarded-For", forwardedFor)
	return req
}

func TestRouter_ClientIPBehindProxy(t *testing.T) {
	t.Run("forwarded header ignored by default", func(t *testing.T) {
		a := setupApp(t, testConfig())
		for i := 0; i < 5; i++ {
			assert.NotEqual(t, http.StatusTooManyRequests, a.do(contactPost("198.51.100."+strconv.Itoa(i))).Code)
		}
		assert.Equal(t, http.StatusTooManyRequests, a.do(contactPost("198.51.100.99")).Code)
	})

	t.Run("trusted proxy buckets visitors separately", func(t *testing.T) {
		cfg := testConfig()
		cfg.Server.TrustProxy = true
		a := setupApp(t, cfg)
		for i := 0; i < 5; i++ {
			assert.NotEqual(t, http.StatusTooManyRequests, a.do(contactPost("198.51.100.1")).Code)
		}
		assert.Equal(t, http.StatusTooManyRequests, a.do(contactPost("198.51.100.1")).Code)
		assert.NotEqual(t, http.StatusTooManyRequests, a.do(contactPost("198.51.100.2")).Code)
	})

	t.Run("global whitelist cannot be spoofed", func(t *testing.T) {
		cfg := testConfig()
		cfg.RateLimit = config.RateLimitConfig{Enabled: true, RequestsPerMinute: 2, RequestsPerMinuteAuth: 2, WhitelistIPs: []string{"127.0.0.1"}}
		a := setupApp(t, cfg)
		codes := make([]int, 0, 4)
		for i := 0; i < 4; i++ {
			req := httptest.NewRequest(http.MethodGet, "/about", nil)
			req.Header.Set("X-Forwarded-For", "127.0.0.1")
			codes = append(codes, a.do(req).Code)
		}
		assert.Equal(t, []int{200, 200, 429, 429}, codes)
	})
}

func TestRouter_DeactivatedAdminLosesAccess(t *testing.T) {
	a := setupApp(t, testConfig())
	a.createUser(t, "kari@fjordrenovering.no", "hemmelig-passord", domain.AdminRoleAdmin)
	resp, cookie := a.login(t, "kari@fjordrenovering.no", "hemmelig-passord")

	bearer := httptest.NewRequest(http.MethodGet, "/admin/api/v1/projects", nil)
	bearer.Header.Set("Authorization", "Bearer "+resp.Token)
	require.Equal(t, http.StatusOK, a.do(bearer).Code)

	user, err := a.users.GetByEmail(context.Background(), "kari@fjordrenovering.no")
	require.NoError(t, err)
	user.IsActive = false
	require.NoError(t, a.users.Update(context.Background(), user))

	bearer = httptest.NewRequest(http.MethodGet, "/admin/api/v1/projects", nil)
	bearer.Header.Set("Authorization", "Bearer "+resp.Token)
	assert.Equal(t, http.StatusUnauthorized, a.do(bearer).Code)

	page := httptest.NewRequest(http.MethodGet, "/admin", nil)
	page.AddCookie(cookie)
	assert.Equal(t, http.StatusSeeOther, a.do(page).Code)
}
