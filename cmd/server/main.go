package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fjordrenovering/website/docs"
	"github.com/fjordrenovering/website/internal/auth"
	"github.com/fjordrenovering/website/internal/config"
	"github.com/fjordrenovering/website/internal/content"
	"github.com/fjordrenovering/website/internal/database"
	"github.com/fjordrenovering/website/internal/http/handler"
	"github.com/fjordrenovering/website/internal/http/middleware"
	"github.com/fjordrenovering/website/internal/http/router"
	"github.com/fjordrenovering/website/internal/jobs"
	"github.com/fjordrenovering/website/internal/logger"
	"github.com/fjordrenovering/website/internal/repository"
	"github.com/fjordrenovering/website/internal/service"
	"github.com/fjordrenovering/website/internal/storage"
	"github.com/fjordrenovering/website/internal/web"
	"go.uber.org/zap"
)

// @title Fjord Renovering API
// @version 1.0
// @description Public content API, contact form and admin CMS for the Fjord Renovering website

// @contact.name Fjord Renovering
// @contact.email post@fjordrenovering.no

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Admin session token

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name x-api-key
// @description API key for system integrations

const shutdownTimeout = 30 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// Basic configuration first, for logging setup
	basicCfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.NewLogger(&basicCfg.Logging, &basicCfg.App)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting application",
		zap.String("app", basicCfg.App.Name),
		zap.String("env", basicCfg.App.Environment),
		zap.Int("port", basicCfg.App.Port),
	)

	// In staging and production secrets come from Azure Key Vault
	cfg, err := config.LoadWithSecrets(ctx, log)
	if err != nil {
		return fmt.Errorf("failed to load secrets: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	docs.SwaggerInfo.Host = swaggerHost(cfg)

	db, err := database.NewDatabase(&cfg.Database, log)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Warn("Error closing database", zap.Error(err))
		}
	}()

	if cfg.Database.AutoMigrate {
		log.Warn("Running GORM auto-migration; use cmd/migrate outside development")
		if err := database.AutoMigrate(db); err != nil {
			return fmt.Errorf("failed to auto-migrate: %w", err)
		}
	}

	fileStorage, err := storage.NewStorage(&cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	log.Info("Storage initialized", zap.String("mode", cfg.Storage.Mode))

	renderer, err := web.NewRenderer(&cfg.Site, log)
	if err != nil {
		return fmt.Errorf("failed to load templates: %w", err)
	}

	// Repositories
	projectRepo := repository.NewProjectRepository(db)
	pairRepo := repository.NewBeforeAfterPairRepository(db)
	mediaRepo := repository.NewMediaRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	teamRepo := repository.NewTeamMemberRepository(db)
	testimonialRepo := repository.NewTestimonialRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	userRepo := repository.NewAdminUserRepository(db)
	auditLogRepo := repository.NewAuditLogRepository(db)

	// Services
	md := content.NewMarkdown()
	tokens := auth.NewTokenManager(&cfg.Auth)

	projectService := service.NewProjectService(projectRepo, mediaRepo, md, log)
	pairService := service.NewBeforeAfterPairService(pairRepo, projectRepo, mediaRepo, log)
	mediaService := service.NewMediaService(mediaRepo, projectRepo, fileStorage, cfg.Storage.MaxUploadBytes(), log)
	taskService := service.NewTaskService(taskRepo, projectRepo, teamRepo, log)
	teamService := service.NewTeamService(teamRepo, taskRepo, mediaRepo, log)
	testimonialService := service.NewTestimonialService(testimonialRepo, projectRepo, log)
	catalogService := service.NewCatalogService(serviceRepo, md, log)
	messageService := service.NewMessageService(messageRepo, log)
	dashboardService := service.NewDashboardService(projectRepo, messageRepo, taskRepo, testimonialRepo, mediaRepo, log)
	auditLogService := service.NewAuditLogService(auditLogRepo, log)
	authService := service.NewAuthService(userRepo, tokens, log)
	siteService := service.NewSiteService(projectService, catalogService, testimonialService, log)

	created, err := authService.EnsureBootstrapAdmin(ctx, &cfg.Auth)
	if err != nil {
		return fmt.Errorf("failed to bootstrap admin user: %w", err)
	}
	if created {
		log.Info("Bootstrap admin user created", zap.String("email", cfg.Auth.BootstrapEmail))
	}

	// Middleware
	authMiddleware := auth.NewMiddleware(cfg, tokens, userRepo, log)
	rateLimiter := middleware.NewRateLimiter(&cfg.RateLimit, log)
	auditMiddleware := middleware.NewAuditMiddleware(auditLogService, nil, log)

	handlers := router.Handlers{
		Site:        handler.NewSiteHandler(siteService, projectService, catalogService, teamService, testimonialService, messageService, renderer, log),
		Public:      handler.NewPublicHandler(projectService, catalogService, teamService, testimonialService, log),
		AdminPages:  handler.NewAdminPageHandler(authService, auditLogService, dashboardService, projectService, renderer, &cfg.Auth, log),
		Auth:        handler.NewAuthHandler(authService, auditLogService, &cfg.Auth, log),
		Project:     handler.NewProjectHandler(projectService, pairService, mediaService, log),
		Media:       handler.NewMediaHandler(mediaService, log),
		Task:        handler.NewTaskHandler(taskService, log),
		Team:        handler.NewTeamHandler(teamService, log),
		Testimonial: handler.NewTestimonialHandler(testimonialService, log),
		Catalog:     handler.NewCatalogHandler(catalogService, log),
		Message:     handler.NewMessageHandler(messageService, log),
		Dashboard:   handler.NewDashboardHandler(dashboardService, log),
		Audit:       handler.NewAuditHandler(auditLogService, log),
		Health:      handler.NewHealthHandler(db, fileStorage, log),
	}

	rt := router.NewRouter(cfg, log, authMiddleware, rateLimiter, auditMiddleware, handlers)

	// Maintenance jobs
	var scheduler *jobs.Scheduler
	if cfg.Jobs.Enabled {
		scheduler = jobs.NewScheduler(log, cfg.Jobs.JobTimeout())
		if err := jobs.RegisterMaintenanceJobs(scheduler, &cfg.Jobs, messageService, mediaService, log); err != nil {
			return fmt.Errorf("failed to register jobs: %w", err)
		}
		scheduler.Start()
	} else {
		log.Info("Maintenance jobs disabled")
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           rt.Setup(),
		ReadTimeout:       cfg.Server.ReadTimeoutDuration(),
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.WriteTimeoutDuration(),
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Info("Server starting",
			zap.String("addr", srv.Addr),
			zap.String("public_host", cfg.Site.PublicHost),
			zap.String("admin_host", cfg.Site.AdminHost),
		)
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Info("Shutdown signal received", zap.String("signal", sig.String()))

		if scheduler != nil {
			<-scheduler.Stop().Done()
			log.Info("Scheduler stopped")
		}

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Failed to shutdown gracefully", zap.Error(err))
			return err
		}
		log.Info("Server stopped gracefully")
	}

	return nil
}

// swaggerHost points the API docs at the configured base URL
func swaggerHost(cfg *config.Config) string {
	if u, err := url.Parse(cfg.Site.BaseURL); err == nil && u.Host != "" {
		return u.Host
	}
	return fmt.Sprintf("localhost:%d", cfg.App.Port)
}
