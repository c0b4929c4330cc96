package router

import (
	"net/http"

	"github.com/fjordrenovering/website/internal/auth"
	"github.com/fjordrenovering/website/internal/config"
	"github.com/fjordrenovering/website/internal/domain"
	"github.com/fjordrenovering/website/internal/http/handler"
	"github.com/fjordrenovering/website/internal/http/middleware"
	"github.com/fjordrenovering/website/internal/web"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"

	_ "github.com/fjordrenovering/website/docs" // Import generated swagger docs
)

// Handlers groups every HTTP handler mounted by the router
type Handlers struct {
	Site        *handler.SiteHandler
	Public      *handler.PublicHandler
	AdminPages  *handler.AdminPageHandler
	Auth        *handler.AuthHandler
	Project     *handler.ProjectHandler
	Media       *handler.MediaHandler
	Task        *handler.TaskHandler
	Team        *handler.TeamHandler
	Testimonial *handler.TestimonialHandler
	Catalog     *handler.CatalogHandler
	Message     *handler.MessageHandler
	Dashboard   *handler.DashboardHandler
	Audit       *handler.AuditHandler
	Health      *handler.HealthHandler
}

// Router mounts the public site, the public JSON API and the admin area
type Router struct {
	cfg             *config.Config
	logger          *zap.Logger
	authMiddleware  *auth.Middleware
	rateLimiter     *middleware.RateLimiter
	auditMiddleware *middleware.AuditMiddleware
	handlers        Handlers
}

func NewRouter(
	cfg *config.Config,
	logger *zap.Logger,
	authMiddleware *auth.Middleware,
	rateLimiter *middleware.RateLimiter,
	auditMiddleware *middleware.AuditMiddleware,
	handlers Handlers,
) *Router {
	return &Router{
		cfg:             cfg,
		logger:          logger,
		authMiddleware:  authMiddleware,
		rateLimiter:     rateLimiter,
		auditMiddleware: auditMiddleware,
		handlers:        handlers,
	}
}

// Setup builds the route tree
func (rt *Router) Setup() http.Handler {
	h := rt.handlers
	r := chi.NewRouter()

	// Global middleware; the admin host rewrite must run before routing
	if rt.cfg.Server.TrustProxy {
		r.Use(chimw.RealIP)
	}
	r.Use(middleware.AdminHost(&rt.cfg.Site))
	r.Use(middleware.Recovery(rt.logger))
	r.Use(middleware.Logging(rt.logger))
	r.Use(middleware.SecurityHeaders(&rt.cfg.Security))
	r.Use(rt.rateLimiter.LimitByIP)
	if timeout := rt.cfg.Server.RequestTimeoutDuration(); timeout > 0 {
		r.Use(chimw.Timeout(timeout))
	}

	// One limiter shared by the HTML form and the JSON endpoint
	contactLimit := middleware.ContactLimiter(&rt.cfg.ContactRateLimit, rt.logger, h.Site.ContactRateLimited)

	r.NotFound(h.Site.NotFound)

	// Health checks
	r.Get("/health", h.Health.Live)
	r.Get("/health/db", h.Health.Database)
	r.Get("/health/ready", h.Health.Ready)

	// Swagger documentation
	if rt.cfg.Server.EnableSwagger {
		r.Get("/swagger/*", httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
		))
	}

	// Assets
	r.Handle("/static/*", web.Static("/static/"))
	r.Get("/media/{id}", h.Media.Serve)

	// Public website
	r.Get("/", h.Site.Home)
	r.Get("/projects", h.Site.Projects)
	r.Get("/projects/{slug}", h.Site.Project)
	r.Get("/services", h.Site.Services)
	r.Get("/services/{slug}", h.Site.Service)
	r.Get("/about", h.Site.About)
	r.Get("/testimonials", h.Site.Testimonials)
	r.Get("/contact", h.Site.ContactPage)
	r.With(contactLimit).Post("/contact", h.Site.SubmitContact)

	// Public JSON API
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.CORS(&rt.cfg.CORS, rt.cfg.App.Environment, rt.logger))

		r.Route("/public", func(r chi.Router) {
			r.Get("/projects", h.Public.ListProjects)
			r.Get("/projects/{slug}", h.Public.GetProject)
			r.Get("/services", h.Public.ListServices)
			r.Get("/services/{slug}", h.Public.GetService)
			r.Get("/team", h.Public.ListTeam)
			r.Get("/testimonials", h.Public.ListTestimonials)
		})
		r.With(contactLimit).Post("/contact", h.Message.Submit)
	})

	// Admin panel pages
	r.Route("/admin", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(rt.authMiddleware.OptionalSession)
			r.Get("/login", h.AdminPages.LoginPage)
			r.Post("/login", h.AdminPages.Login)
			r.Post("/logout", h.AdminPages.Logout)
		})

		r.Group(func(r chi.Router) {
			r.Use(rt.authMiddleware.RequireSession)
			r.Get("/", h.AdminPages.Dashboard)
		})

		// Admin JSON API
		r.Route("/api/v1", func(r chi.Router) {
			r.Post("/auth/login", h.Auth.Login)

			r.Group(func(r chi.Router) {
				r.Use(rt.authMiddleware.Authenticate)
				r.Use(rt.rateLimiter.LimitByUser)
				r.Use(rt.auditMiddleware.Audit) // Audit all modifications

				r.Get("/auth/me", h.Auth.Me)
				r.Post("/auth/logout", h.Auth.Logout)

				r.Get("/dashboard", h.Dashboard.Get)

				r.Route("/audit", func(r chi.Router) {
					r.Use(rt.authMiddleware.RequireRole(domain.AdminRoleAdmin))
					r.Get("/", h.Audit.List)
					r.Get("/entity/{entityType}/{id}", h.Audit.GetByEntity)
				})

				r.Route("/projects", func(r chi.Router) {
					r.Get("/", h.Project.List)
					r.Post("/", h.Project.Create)
					r.Put("/reorder", h.Project.Reorder)
					r.Get("/{id}", h.Project.GetByID)
					r.Put("/{id}", h.Project.Update)
					r.Delete("/{id}", h.Project.Delete)

					r.Get("/{id}/pairs", h.Project.ListPairs)
					r.Post("/{id}/pairs", h.Project.AddPair)
					r.Put("/{id}/pairs/reorder", h.Project.ReorderPairs)
					r.Delete("/{id}/pairs/{pairId}", h.Project.DeletePair)
					r.Put("/{id}/media/reorder", h.Project.ReorderMedia)
				})

				r.Route("/media", func(r chi.Router) {
					r.Get("/", h.Media.List)
					r.Post("/upload", h.Media.Upload)
					r.Get("/{id}", h.Media.GetByID)
					r.Put("/{id}", h.Media.Update)
					r.Delete("/{id}", h.Media.Delete)
				})

				r.Route("/tasks", func(r chi.Router) {
					r.Get("/", h.Task.List)
					r.Post("/", h.Task.Create)
					r.Put("/reorder", h.Task.Reorder)
					r.Get("/{id}", h.Task.GetByID)
					r.Put("/{id}", h.Task.Update)
					r.Delete("/{id}", h.Task.Delete)
					r.Post("/{id}/move", h.Task.Move)
				})

				r.Route("/team", func(r chi.Router) {
					r.Get("/", h.Team.List)
					r.Post("/", h.Team.Create)
					r.Put("/reorder", h.Team.Reorder)
					r.Get("/{id}", h.Team.GetByID)
					r.Put("/{id}", h.Team.Update)
					r.Delete("/{id}", h.Team.Delete)
				})

				r.Route("/testimonials", func(r chi.Router) {
					r.Get("/", h.Testimonial.List)
					r.Post("/", h.Testimonial.Create)
					r.Put("/reorder", h.Testimonial.Reorder)
					r.Get("/{id}", h.Testimonial.GetByID)
					r.Put("/{id}", h.Testimonial.Update)
					r.Delete("/{id}", h.Testimonial.Delete)
				})

				r.Route("/services", func(r chi.Router) {
					r.Get("/", h.Catalog.List)
					r.Post("/", h.Catalog.Create)
					r.Put("/reorder", h.Catalog.Reorder)
					r.Get("/{id}", h.Catalog.GetByID)
					r.Put("/{id}", h.Catalog.Update)
					r.Delete("/{id}", h.Catalog.Delete)
				})

				r.Route("/messages", func(r chi.Router) {
					r.Get("/", h.Message.List)
					r.Get("/{id}", h.Message.GetByID)
					r.Post("/{id}/read", h.Message.MarkRead)
					r.Post("/{id}/archive", h.Message.Archive)
					r.Delete("/{id}", h.Message.Delete)
				})
			})
		})
	})

	return r
}
