package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fjordrenovering/website/internal/auth"
	"github.com/fjordrenovering/website/internal/config"
	"github.com/fjordrenovering/website/internal/content"
	"github.com/fjordrenovering/website/internal/domain"
	"github.com/fjordrenovering/website/internal/http/handler"
	"github.com/fjordrenovering/website/internal/repository"
	"github.com/fjordrenovering/website/internal/service"
	"github.com/fjordrenovering/website/internal/storage"
	"github.com/fjordrenovering/website/internal/testutil"
	"github.com/fjordrenovering/website/internal/web"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var testAuthConfig = &config.AuthConfig{
	JWTSecret:       "handler-test-secret-0123456789",
	JWTIssuer:       "test",
	TokenTTLMinutes: 60,
	CookieName:      "fr_session",
}

type fixture struct {
	db    *gorm.DB
	users *repository.AdminUserRepository

	projects    *handler.ProjectHandler
	media       *handler.MediaHandler
	tasks       *handler.TaskHandler
	team        *handler.TeamHandler
	reviews     *handler.TestimonialHandler
	catalog     *handler.CatalogHandler
	messages    *handler.MessageHandler
	auth        *handler.AuthHandler
	adminPages  *handler.AdminPageHandler
	dashboard   *handler.DashboardHandler
	audit       *handler.AuditHandler
	public      *handler.PublicHandler
	site        *handler.SiteHandler
	health      *handler.HealthHandler
	mediaSvc    *service.MediaService
	messagesSvc *service.MessageService
}

func setupFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.SetupTestDB(t)
	log := zap.NewNop()

	store, err := storage.NewLocalStorage(t.TempDir(), "")
	require.NoError(t, err)

	renderer, err := web.NewRenderer(&config.SiteConfig{CompanyName: "Fjord Renovering AS"}, log)
	require.NoError(t, err)

	projectRepo := repository.NewProjectRepository(db)
	mediaRepo := repository.NewMediaRepository(db)
	pairRepo := repository.NewBeforeAfterPairRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	teamRepo := repository.NewTeamMemberRepository(db)
	testimonialRepo := repository.NewTestimonialRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	auditRepo := repository.NewAuditLogRepository(db)
	userRepo := repository.NewAdminUserRepository(db)
	md := content.NewMarkdown()

	projectSvc := service.NewProjectService(projectRepo, mediaRepo, md, log)
	pairSvc := service.NewBeforeAfterPairService(pairRepo, projectRepo, mediaRepo, log)
	mediaSvc := service.NewMediaService(mediaRepo, projectRepo, store, 1<<20, log)
	taskSvc := service.NewTaskService(taskRepo, projectRepo, teamRepo, log)
	teamSvc := service.NewTeamService(teamRepo, taskRepo, mediaRepo, log)
	testimonialSvc := service.NewTestimonialService(testimonialRepo, projectRepo, log)
	catalogSvc := service.NewCatalogService(serviceRepo, md, log)
	messageSvc := service.NewMessageService(messageRepo, log)
	dashboardSvc := service.NewDashboardService(projectRepo, messageRepo, taskRepo, testimonialRepo, mediaRepo, log)
	auditSvc := service.NewAuditLogService(auditRepo, log)
	authSvc := service.NewAuthService(userRepo, auth.NewTokenManager(testAuthConfig), log)
	siteSvc := service.NewSiteService(projectSvc, catalogSvc, testimonialSvc, log)

	return &fixture{
		db:          db,
		users:       userRepo,
		projects:    handler.NewProjectHandler(projectSvc, pairSvc, mediaSvc, log),
		media:       handler.NewMediaHandler(mediaSvc, log),
		tasks:       handler.NewTaskHandler(taskSvc, log),
		team:        handler.NewTeamHandler(teamSvc, log),
		reviews:     handler.NewTestimonialHandler(testimonialSvc, log),
		catalog:     handler.NewCatalogHandler(catalogSvc, log),
		messages:    handler.NewMessageHandler(messageSvc, log),
		auth:        handler.NewAuthHandler(authSvc, auditSvc, testAuthConfig, log),
		adminPages:  handler.NewAdminPageHandler(authSvc, auditSvc, dashboardSvc, projectSvc, renderer, testAuthConfig, log),
		dashboard:   handler.NewDashboardHandler(dashboardSvc, log),
		audit:       handler.NewAuditHandler(auditSvc, log),
		public:      handler.NewPublicHandler(projectSvc, catalogSvc, teamSvc, testimonialSvc, log),
		site:        handler.NewSiteHandler(siteSvc, projectSvc, catalogSvc, teamSvc, testimonialSvc, messageSvc, renderer, log),
		health:      handler.NewHealthHandler(db, store, log),
		mediaSvc:    mediaSvc,
		messagesSvc: messageSvc,
	}
}

// createAdmin stores an active admin user with the given password
func (f *fixture) createAdmin(t *testing.T, email, password string, role domain.AdminRole) *domain.AdminUser {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	user := &domain.AdminUser{Email: email, DisplayName: "Ola Nordmann", PasswordHash: hash, Role: role, IsActive: true}
	require.NoError(t, f.users.Create(context.Background(), user))
	return user
}

func adminContext(role domain.AdminRole) context.Context {
	return auth.WithUserContext(context.Background(), &auth.UserContext{
		UserID:      uuid.New(),
		DisplayName: "Test Admin",
		Email:       "admin@fjordrenovering.no",
		Role:        role,
		Method:      auth.MethodBearer,
	})
}

// newRequest builds a request carrying chi URL params and an admin user context
func newRequest(t *testing.T, method, target string, body interface{}, params map[string]string) *http.Request {
	t.Helper()
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return withParams(req.WithContext(adminContext(domain.AdminRoleAdmin)), params)
}

// withParams attaches chi URL params to the request
func withParams(req *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func serve(h http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out), rr.Body.String())
	return out
}

func testNow() time.Time {
	return time.Now().UTC()
}
