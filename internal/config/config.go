package config

import "time"

// Environments accepted by server.environment.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test"
)

// Rate limits applied when security.rate_limit_max is left at zero.
const (
	DefaultRateLimit            = 100
	DefaultDevelopmentRateLimit = 1000
)

// DevelopmentCORSOrigins are allowed when no origins are configured
// and the server runs in development.
var DevelopmentCORSOrigins = []string{
	"http://localhost:3000",
	"http://localhost:3333",
	"http://127.0.0.1:3000",
}

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Security SecurityConfig `mapstructure:"security" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Host        string `mapstructure:"host" validate:"required"`
	Port        int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel    string `mapstructure:"log_level" validate:"required,oneof=trace debug info warn error fatal"`
	Environment string `mapstructure:"environment" validate:"required,oneof=development production test"`
	APIVersion  string `mapstructure:"api_version" validate:"required"`
	// LogFile, when set, receives a rotated copy of every log line.
	LogFile                string `mapstructure:"log_file"`
	ShutdownTimeoutSeconds int    `mapstructure:"shutdown_timeout_seconds" validate:"gt=0"`
}

// IsProduction reports whether the server runs in production.
func (c ServerConfig) IsProduction() bool { return c.Environment == EnvProduction }

// IsDevelopment reports whether the server runs in development.
func (c ServerConfig) IsDevelopment() bool { return c.Environment == EnvDevelopment }

// ShutdownTimeout returns the graceful shutdown deadline.
func (c ServerConfig) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL                    string `mapstructure:"url" validate:"required,url"`
	MaxOpenConns           int    `mapstructure:"max_open_conns" validate:"gte=1"`
	MaxIdleConns           int    `mapstructure:"max_idle_conns" validate:"gte=0"`
	ConnMaxLifetimeMinutes int    `mapstructure:"conn_max_lifetime_minutes" validate:"gte=0"`
}

// StorageConfig points at an S3-compatible bucket for character images.
// Storage is optional; Enabled reports whether it is configured.
type StorageConfig struct {
	Endpoint        string `mapstructure:"endpoint" validate:"omitempty,url"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	Bucket          string `mapstructure:"bucket"`
	Region          string `mapstructure:"region" validate:"required"`
	// PublicURL prefixes object keys in returned image URLs.
	// It defaults to Endpoint.
	PublicURL string `mapstructure:"public_url" validate:"omitempty,url"`
}

// Enabled reports whether enough settings are present to upload objects.
func (c StorageConfig) Enabled() bool {
	return c.Endpoint != "" && c.AccessKeyID != "" && c.SecretAccessKey != "" && c.Bucket != ""
}

// SecurityConfig contains CORS, rate limiting and request size settings.
type SecurityConfig struct {
	CORSOrigins            []string `mapstructure:"cors_origins"`
	RateLimitMax           int      `mapstructure:"rate_limit_max" validate:"gte=0"`
	RateLimitWindowSeconds int      `mapstructure:"rate_limit_window_seconds" validate:"gt=0"`
	BodyLimitBytes         int64    `mapstructure:"body_limit_bytes" validate:"gt=0"`
}

// RateLimitWindow returns the rate limit window.
func (c SecurityConfig) RateLimitWindow() time.Duration {
	return time.Duration(c.RateLimitWindowSeconds) * time.Second
}
