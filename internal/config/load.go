package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by Load,
// e.g. SWAPI_SERVER_PORT for server.port.
const EnvPrefix = "SWAPI"

// ConfigFileEnv names the variable holding an explicit config file path.
const ConfigFileEnv = "SWAPI_CONFIG"

// legacyEnv maps config keys to the unprefixed variable names used by
// existing deployments. Prefixed variables take precedence.
var legacyEnv = map[string]string{
	"server.host":               "HOST",
	"server.port":               "PORT",
	"server.environment":        "NODE_ENV",
	"server.log_level":          "LOG_LEVEL",
	"server.api_version":        "API_VERSION",
	"database.url":              "DATABASE_URL",
	"database.max_open_conns":   "DB_POOL_MAX",
	"security.cors_origins":     "CORS_ORIGINS",
	"security.rate_limit_max":   "RATE_LIMIT_MAX",
	"storage.endpoint":          "R2_ENDPOINT",
	"storage.access_key_id":     "R2_ACCESS_KEY_ID",
	"storage.secret_access_key": "R2_SECRET_ACCESS_KEY",
	"storage.bucket":            "R2_BUCKET_NAME",
}

// Load configuration from a .env file, an optional config file and
// environment variables. Environment variables take precedence over values
// from config files. Returns a populated Config struct or an error if
// loading/validation fails.
func Load() (*Config, error) {
	// A missing .env file is normal outside local development.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	if path := os.Getenv(ConfigFileEnv); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, legacy := range legacyEnv {
		prefixed := EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, prefixed, legacy); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	applyDerivedDefaults(&cfg)

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 3333)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.environment", EnvDevelopment)
	v.SetDefault("server.api_version", "1.0.0")
	v.SetDefault("server.log_file", "")
	v.SetDefault("server.shutdown_timeout_seconds", 10)

	v.SetDefault("database.url", "")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 2)
	v.SetDefault("database.conn_max_lifetime_minutes", 5)

	v.SetDefault("storage.endpoint", "")
	v.SetDefault("storage.access_key_id", "")
	v.SetDefault("storage.secret_access_key", "")
	v.SetDefault("storage.bucket", "")
	v.SetDefault("storage.region", "us-east-1")
	v.SetDefault("storage.public_url", "")

	v.SetDefault("security.cors_origins", []string{})
	v.SetDefault("security.rate_limit_max", 0)
	v.SetDefault("security.rate_limit_window_seconds", 60)
	v.SetDefault("security.body_limit_bytes", 1<<20)
}

// applyDerivedDefaults fills settings whose defaults depend on other settings.
func applyDerivedDefaults(cfg *Config) {
	origins := make([]string, 0, len(cfg.Security.CORSOrigins))
	for _, o := range cfg.Security.CORSOrigins {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 && cfg.Server.IsDevelopment() {
		origins = append(origins, DevelopmentCORSOrigins...)
	}
	cfg.Security.CORSOrigins = origins

	if cfg.Security.RateLimitMax == 0 {
		cfg.Security.RateLimitMax = DefaultRateLimit
		if cfg.Server.IsDevelopment() {
			cfg.Security.RateLimitMax = DefaultDevelopmentRateLimit
		}
	}

	if cfg.Storage.PublicURL == "" {
		cfg.Storage.PublicURL = cfg.Storage.Endpoint
	}
	cfg.Storage.PublicURL = strings.TrimRight(cfg.Storage.PublicURL, "/")
}
