package handler

import (
	"net/http"
	"strings"

	"github.com/fjordrenovering/website/internal/auth"
	"github.com/fjordrenovering/website/internal/config"
	"github.com/fjordrenovering/website/internal/domain"
	"github.com/fjordrenovering/website/internal/repository"
	"github.com/fjordrenovering/website/internal/service"
	"github.com/fjordrenovering/website/internal/web"
	"go.uber.org/zap"
)

// AdminPageHandler serves the HTML side of the admin area: login, logout and the dashboard shell
type AdminPageHandler struct {
	authService      *service.AuthService
	auditService     *service.AuditLogService
	dashboardService *service.DashboardService
	projectService   *service.ProjectService
	renderer         *web.Renderer
	cookies          sessionCookies
	logger           *zap.Logger
}

// NewAdminPageHandler creates a new admin page handler instance
func NewAdminPageHandler(
	authService *service.AuthService,
	auditService *service.AuditLogService,
	dashboardService *service.DashboardService,
	projectService *service.ProjectService,
	renderer *web.Renderer,
	cfg *config.AuthConfig,
	logger *zap.Logger,
) *AdminPageHandler {
	return &AdminPageHandler{
		authService:      authService,
		auditService:     auditService,
		dashboardService: dashboardService,
		projectService:   projectService,
		renderer:         renderer,
		cookies:          sessionCookies{name: cfg.CookieName, secure: cfg.CookieSecure},
		logger:           logger,
	}
}

// safeNext only allows redirects back into the admin area of this site
func safeNext(next string) string {
	if next == auth.LoginPath || strings.HasPrefix(next, "//") || strings.HasPrefix(next, `/\`) {
		return "/admin"
	}
	if next == "/admin" || strings.HasPrefix(next, "/admin/") || strings.HasPrefix(next, "/admin?") {
		return next
	}
	return "/admin"
}

// LoginPage renders the login form; signed-in users go straight to the dashboard
func (h *AdminPageHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.FromContext(r.Context()); ok {
		http.Redirect(w, r, safeNext(r.URL.Query().Get("next")), http.StatusSeeOther)
		return
	}
	h.renderer.Render(w, http.StatusOK, web.PageAdminLogin, web.Page{
		Title: "Logg inn",
		Data:  web.LoginForm{Next: r.URL.Query().Get("next")},
	})
}

// Login handles the login form
func (h *AdminPageHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderer.Render(w, http.StatusBadRequest, web.PageAdminLogin, web.Page{
			Title: "Logg inn",
			Data:  web.LoginForm{Error: "Ugyldig skjema"},
		})
		return
	}
	form := web.LoginForm{
		Email: strings.TrimSpace(r.PostFormValue("email")),
		Next:  r.PostFormValue("next"),
	}

	req := domain.LoginRequest{Email: form.Email, Password: r.PostFormValue("password")}
	if err := validate.Struct(req); err != nil {
		form.Error = "Fyll inn e-post og passord"
		h.renderer.Render(w, http.StatusBadRequest, web.PageAdminLogin, web.Page{Title: "Logg inn", Data: form})
		return
	}

	resp, err := h.authService.Login(r.Context(), &req)
	if err != nil {
		status := http.StatusUnauthorized
		form.Error = "Feil e-post eller passord"
		if errorStatus(err) != http.StatusUnauthorized {
			h.logger.Error("admin login failed", zap.Error(err))
			status = http.StatusInternalServerError
			form.Error = "Innlogging feilet, prøv igjen"
		}
		h.renderer.Render(w, status, web.PageAdminLogin, web.Page{Title: "Logg inn", Data: form})
		return
	}

	h.cookies.set(w, resp)
	auditSession(r.Context(), h.auditService, h.logger, r, domain.AuditActionLogin, &resp.User)
	http.Redirect(w, r, safeNext(form.Next), http.StatusSeeOther)
}

// Logout clears the session cookie and returns to the login page
func (h *AdminPageHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.cookies.clear(w)
	if userCtx, ok := auth.FromContext(r.Context()); ok {
		auditSession(r.Context(), h.auditService, h.logger, r, domain.AuditActionLogout,
			&domain.AdminUserDTO{ID: userCtx.UserID, Email: userCtx.Email})
	}
	http.Redirect(w, r, auth.LoginPath, http.StatusSeeOther)
}

// Dashboard renders the admin landing page
func (h *AdminPageHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardService.GetDashboard(r.Context())
	if err != nil {
		h.logger.Error("failed to load dashboard", zap.Error(err))
		h.renderer.Render(w, http.StatusInternalServerError, web.PageError, web.Page{Title: "Feil"})
		return
	}

	data := web.AdminDashboard{Stats: stats}
	projects, err := h.projectService.List(r.Context(), 1, repository.MaxPageSize, nil, repository.ManualOrderSortConfig())
	if err != nil {
		h.logger.Warn("failed to load projects for dashboard", zap.Error(err))
	} else if list, ok := projects.Data.([]domain.ProjectDTO); ok {
		data.Projects = list
	}

	page := web.Page{Title: "Oversikt", Data: data}
	if userCtx, ok := auth.FromContext(r.Context()); ok {
		page.AdminName = userCtx.DisplayName
	}
	h.renderer.Render(w, http.StatusOK, web.PageAdminDashboard, page)
}
