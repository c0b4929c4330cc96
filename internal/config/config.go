package config

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fjordrenovering/website/internal/secrets"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Config holds all application configuration
type Config struct {
	App              AppConfig
	Site             SiteConfig
	Database         DatabaseConfig
	Auth             AuthConfig
	ApiKey           ApiKeyConfig
	Storage          StorageConfig
	Secrets          SecretsConfig
	Logging          LoggingConfig
	Server           ServerConfig
	CORS             CORSConfig
	Security         SecurityConfig
	RateLimit        RateLimitConfig
	ContactRateLimit ContactRateLimitConfig
	Jobs             JobsConfig
}

type AppConfig struct {
	Name        string
	Environment string
	Port        int
}

// SiteConfig describes the public website and its admin subdomain
type SiteConfig struct {
	CompanyName  string
	BaseURL      string
	ContactEmail string
	ContactPhone string
	// PublicHost is the hostname of the marketing site (e.g. "fjordrenovering.no")
	PublicHost string
	// AdminHost is the hostname whose requests are rewritten onto /admin
	// (e.g. "admin.fjordrenovering.no"). Empty disables the rewrite.
	AdminHost string
	// EnforceAdminHost redirects /admin requests on other hosts to AdminHost
	EnforceAdminHost bool
}

type DatabaseConfig struct {
	Host            string
	Port            int
	Name            string
	User            string
	Password        string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime int
	AutoMigrate     bool
}

// AuthConfig holds admin session settings
type AuthConfig struct {
	JWTSecret         string
	JWTIssuer         string
	TokenTTLMinutes   int
	CookieName        string
	CookieSecure      bool
	BootstrapEmail    string
	BootstrapPassword string
	BootstrapName     string
}

type ApiKeyConfig struct {
	SecretName string
	Value      string // Loaded from secrets or environment
}

type StorageConfig struct {
	Mode                  string
	LocalBasePath         string
	CloudConnectionString string
	CloudContainer        string
	// PublicBaseURL is prefixed to storage paths to build media URLs.
	// Defaults to the site's /media route when empty.
	PublicBaseURL   string
	MaxUploadSizeMB int64
}

type SecretsConfig struct {
	// Source determines where secrets are loaded from: "environment", "vault", or "auto"
	Source       string
	KeyVaultName string
	CacheEnabled bool
	CacheTTL     int // seconds
}

type LoggingConfig struct {
	Level  string
	Format string
}

type ServerConfig struct {
	ReadTimeout    int
	WriteTimeout   int
	RequestTimeout int
	EnableSwagger  bool
	// TrustProxy takes the client IP from X-Forwarded-For and friends; only enable behind a proxy that sets them
	TrustProxy bool
}

// CORSConfig holds CORS configuration for the JSON APIs
type CORSConfig struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	ExposedHeaders   []string
	AllowCredentials bool
	MaxAge           int
}

// SecurityConfig holds security header configuration
type SecurityConfig struct {
	EnableHSTS            bool
	HSTSMaxAge            int
	HSTSIncludeSubdomains bool
	HSTSPreload           bool
	ContentSecurityPolicy string
	FrameOptions          string
	ContentTypeNosniff    bool
	ReferrerPolicy        string
	PermissionsPolicy     string
}

// RateLimitConfig holds global rate limiting configuration
type RateLimitConfig struct {
	Enabled bool
	// RequestsPerMinute is the limit per client IP
	RequestsPerMinute int
	// RequestsPerMinuteAuth is the limit per admin user on the admin API
	RequestsPerMinuteAuth int
	WhitelistIPs          []string
	// WhitelistPaths bypass rate limiting; entries ending in /* match by prefix
	WhitelistPaths []string
}

// ContactRateLimitConfig limits contact form submissions per client IP
type ContactRateLimitConfig struct {
	Enabled       bool
	Requests      int
	WindowMinutes int
}

// JobsConfig controls the maintenance scheduler
type JobsConfig struct {
	Enabled              bool
	MessageRetentionCron string
	MessageRetentionDays int
	OrphanMediaCron      string
	OrphanMediaHours     int
	JobTimeoutSeconds    int
}

// ConnectionString builds PostgreSQL connection string
func (d *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode,
	)
}

// ReadTimeoutDuration returns read timeout as duration
func (s *ServerConfig) ReadTimeoutDuration() time.Duration {
	return time.Duration(s.ReadTimeout) * time.Second
}

// WriteTimeoutDuration returns write timeout as duration
func (s *ServerConfig) WriteTimeoutDuration() time.Duration {
	return time.Duration(s.WriteTimeout) * time.Second
}

// RequestTimeoutDuration returns request timeout as duration
func (s *ServerConfig) RequestTimeoutDuration() time.Duration {
	return time.Duration(s.RequestTimeout) * time.Second
}

// ConnMaxLifetimeDuration returns connection max lifetime as duration
func (d *DatabaseConfig) ConnMaxLifetimeDuration() time.Duration {
	return time.Duration(d.ConnMaxLifetime) * time.Second
}

// TokenTTL returns the admin session lifetime
func (a *AuthConfig) TokenTTL() time.Duration {
	return time.Duration(a.TokenTTLMinutes) * time.Minute
}

// Window returns the contact rate limit window
func (c *ContactRateLimitConfig) Window() time.Duration {
	return time.Duration(c.WindowMinutes) * time.Minute
}

// JobTimeout returns the maximum run time of a single maintenance job
func (j *JobsConfig) JobTimeout() time.Duration {
	return time.Duration(j.JobTimeoutSeconds) * time.Second
}

// MaxUploadBytes returns the upload limit in bytes
func (s *StorageConfig) MaxUploadBytes() int64 {
	return s.MaxUploadSizeMB * 1024 * 1024
}

// Load loads configuration from file and environment variables
// This is a basic load that doesn't fetch secrets from vault
// Use LoadWithSecrets for full secret resolution
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Environment variables override config file
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.ApiKey.Value == "" {
		cfg.ApiKey.Value = v.GetString("ADMIN_API_KEY")
	}
	if cfg.Auth.JWTSecret == "" {
		cfg.Auth.JWTSecret = v.GetString("JWT_SECRET")
	}
	if cfg.Secrets.KeyVaultName == "" {
		cfg.Secrets.KeyVaultName = v.GetString("AZURE_KEY_VAULT_NAME")
	}

	return &cfg, nil
}

// Validate checks settings the server cannot start without
func (c *Config) Validate() error {
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("auth.jwtSecret (JWT_SECRET) is required")
	}
	if len(c.Auth.JWTSecret) < 32 && c.App.Environment == "production" {
		return fmt.Errorf("auth.jwtSecret must be at least 32 characters in production")
	}
	if c.Storage.MaxUploadSizeMB <= 0 {
		return fmt.Errorf("storage.maxUploadSizeMB must be positive")
	}
	if c.ContactRateLimit.Enabled && (c.ContactRateLimit.Requests <= 0 || c.ContactRateLimit.WindowMinutes <= 0) {
		return fmt.Errorf("contactRateLimit requires positive requests and windowMinutes")
	}
	return nil
}

// LoadWithSecrets loads configuration and resolves secrets from the configured source.
//
// Key Vault is used when BOTH conditions are met:
// 1. USE_AZURE_KEY_VAULT environment variable is set to "true"
// 2. Environment is "staging" or "production"
func LoadWithSecrets(ctx context.Context, logger *zap.Logger) (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}

	useKeyVault := strings.ToLower(os.Getenv("USE_AZURE_KEY_VAULT")) == "true"
	isValidEnv := cfg.App.Environment == "staging" || cfg.App.Environment == "production"

	if !useKeyVault {
		logger.Info("USE_AZURE_KEY_VAULT not enabled, using environment variables for secrets",
			zap.String("environment", cfg.App.Environment),
		)
		return cfg, nil
	}

	if !isValidEnv {
		logger.Warn("USE_AZURE_KEY_VAULT is enabled but environment is not staging or production, using environment variables",
			zap.String("environment", cfg.App.Environment),
		)
		return cfg, nil
	}

	if cfg.Secrets.KeyVaultName == "" {
		return nil, fmt.Errorf("AZURE_KEY_VAULT_NAME is required when USE_AZURE_KEY_VAULT=true")
	}

	logger.Info("Azure Key Vault enabled for secrets",
		zap.String("environment", cfg.App.Environment),
		zap.String("key_vault_name", cfg.Secrets.KeyVaultName),
	)

	provider, err := secrets.NewProvider(&secrets.ProviderConfig{
		Source:       secrets.SourceVault,
		VaultName:    cfg.Secrets.KeyVaultName,
		Environment:  cfg.App.Environment,
		CacheEnabled: cfg.Secrets.CacheEnabled,
		CacheTTL:     time.Duration(cfg.Secrets.CacheTTL) * time.Second,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize secrets provider: %w", err)
	}

	if err := applySecrets(ctx, cfg, provider); err != nil {
		return nil, err
	}

	logger.Info("Secrets loaded from vault successfully")
	return cfg, nil
}

// SecretSource is the subset of the secrets provider used to fill the config
type SecretSource interface {
	GetSecretOrEnv(ctx context.Context, secretName, envName string) (string, error)
}

func applySecrets(ctx context.Context, cfg *Config, provider SecretSource) error {
	if host, err := provider.GetSecretOrEnv(ctx, "POSTGRES-HOST", "DATABASE_HOST"); err == nil && host != "" {
		cfg.Database.Host = host
	}
	if user, err := provider.GetSecretOrEnv(ctx, "POSTGRES-USER", "DATABASE_USER"); err == nil && user != "" {
		cfg.Database.User = user
	}
	if password, err := provider.GetSecretOrEnv(ctx, "POSTGRES-PASSWORD", "DATABASE_PASSWORD"); err == nil && password != "" {
		cfg.Database.Password = password
	}
	if sslMode := os.Getenv("DATABASE_SSLMODE"); sslMode != "" {
		cfg.Database.SSLMode = sslMode
	}

	jwtSecret, err := provider.GetSecretOrEnv(ctx, "jwt-secret", "JWT_SECRET")
	if err != nil {
		return fmt.Errorf("failed to load jwt secret: %w", err)
	}
	cfg.Auth.JWTSecret = jwtSecret

	if apiKey, err := provider.GetSecretOrEnv(ctx, "admin-api-key", "ADMIN_API_KEY"); err == nil && apiKey != "" {
		cfg.ApiKey.Value = apiKey
	}
	if connStr, err := provider.GetSecretOrEnv(ctx, "storage-connection-string", "STORAGE_CLOUDCONNECTIONSTRING"); err == nil && connStr != "" {
		cfg.Storage.CloudConnectionString = connStr
	}
	if pw, err := provider.GetSecretOrEnv(ctx, "bootstrap-admin-password", "AUTH_BOOTSTRAPPASSWORD"); err == nil && pw != "" {
		cfg.Auth.BootstrapPassword = pw
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "Fjord Renovering")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.port", 8080)

	v.SetDefault("site.companyName", "Fjord Renovering AS")
	v.SetDefault("site.baseURL", "http://localhost:8080")
	v.SetDefault("site.contactEmail", "post@fjordrenovering.no")
	v.SetDefault("site.contactPhone", "+47 22 00 00 00")
	v.SetDefault("site.publicHost", "")
	v.SetDefault("site.adminHost", "")
	v.SetDefault("site.enforceAdminHost", false)

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.name", "website")
	v.SetDefault("database.user", "website_user")
	v.SetDefault("database.password", "website_password")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 5)
	v.SetDefault("database.connMaxLifetime", 300)
	v.SetDefault("database.autoMigrate", false)

	// Empty defaults register the keys so AUTH_* environment variables are picked up
	v.SetDefault("auth.jwtSecret", "")
	v.SetDefault("auth.bootstrapEmail", "")
	v.SetDefault("auth.bootstrapPassword", "")
	v.SetDefault("auth.jwtIssuer", "fjordrenovering-admin")
	v.SetDefault("auth.tokenTTLMinutes", 720)
	v.SetDefault("auth.cookieName", "admin_session")
	v.SetDefault("auth.cookieSecure", false)
	v.SetDefault("auth.bootstrapName", "Administrator")

	v.SetDefault("secrets.source", "auto")
	v.SetDefault("secrets.cacheEnabled", true)
	v.SetDefault("secrets.cacheTTL", 300)

	v.SetDefault("storage.mode", "local")
	v.SetDefault("storage.localBasePath", "./storage")
	v.SetDefault("storage.cloudConnectionString", "")
	v.SetDefault("storage.cloudContainer", "media")
	v.SetDefault("storage.publicBaseURL", "")
	v.SetDefault("storage.maxUploadSizeMB", 20)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("server.readTimeout", 30)
	v.SetDefault("server.writeTimeout", 60)
	v.SetDefault("server.requestTimeout", 60)
	v.SetDefault("server.enableSwagger", true)
	v.SetDefault("server.trustProxy", false)

	v.SetDefault("cors.allowedOrigins", []string{})
	v.SetDefault("cors.allowedMethods", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"})
	v.SetDefault("cors.allowedHeaders", []string{"Accept", "Authorization", "Content-Type", "X-API-Key", "X-Request-ID"})
	v.SetDefault("cors.exposedHeaders", []string{"Location", "X-Request-ID"})
	v.SetDefault("cors.allowCredentials", true)
	v.SetDefault("cors.maxAge", 300)

	v.SetDefault("security.enableHSTS", false)
	v.SetDefault("security.hstsMaxAge", 31536000)
	v.SetDefault("security.hstsIncludeSubdomains", true)
	v.SetDefault("security.hstsPreload", false)
	v.SetDefault("security.contentSecurityPolicy", "default-src 'self'; img-src 'self' data: https:; style-src 'self'; script-src 'self'")
	v.SetDefault("security.frameOptions", "DENY")
	v.SetDefault("security.contentTypeNosniff", true)
	v.SetDefault("security.referrerPolicy", "strict-origin-when-cross-origin")
	v.SetDefault("security.permissionsPolicy", "geolocation=(), microphone=(), camera=()")

	v.SetDefault("rateLimit.enabled", true)
	v.SetDefault("rateLimit.requestsPerMinute", 120)
	v.SetDefault("rateLimit.requestsPerMinuteAuth", 300)
	v.SetDefault("rateLimit.whitelistIPs", []string{"127.0.0.1", "::1"})
	v.SetDefault("rateLimit.whitelistPaths", []string{"/health", "/health/db", "/health/ready", "/static/*"})

	v.SetDefault("contactRateLimit.enabled", true)
	v.SetDefault("contactRateLimit.requests", 5)
	v.SetDefault("contactRateLimit.windowMinutes", 10)

	v.SetDefault("jobs.enabled", true)
	v.SetDefault("jobs.messageRetentionCron", "0 30 3 * * *")
	v.SetDefault("jobs.messageRetentionDays", 180)
	v.SetDefault("jobs.orphanMediaCron", "0 0 4 * * *")
	v.SetDefault("jobs.orphanMediaHours", 48)
	v.SetDefault("jobs.jobTimeoutSeconds", 300)
}
