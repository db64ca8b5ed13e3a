package config

import (
	"slices"
	"time"
)

// Store drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Store     StoreConfig     `yaml:"store"`
	Auth      AuthConfig      `yaml:"auth"`
	Lists     ListsConfig     `yaml:"lists"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// StoreConfig selects and configures the document store backend.
type StoreConfig struct {
	Driver   string         `yaml:"driver"   env:"STORE_DRIVER" env-default:"postgres"`
	Postgres DatabaseConfig `yaml:"postgres"`
	SQLite   SQLiteConfig   `yaml:"sqlite"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// SQLiteConfig holds settings for the embedded SQLite store.
type SQLiteConfig struct {
	Path        string        `yaml:"path"         env:"SQLITE_PATH"         env-default:"tourcrew.db"`
	BusyTimeout time.Duration `yaml:"busy_timeout" env:"SQLITE_BUSY_TIMEOUT" env-default:"5s"`
}

// AuthConfig holds authentication and OAuth settings.
type AuthConfig struct {
	JWTSecret          string        `yaml:"jwt_secret"           env:"AUTH_JWT_SECRET"           env-required:"true"`
	JWTIssuer          string        `yaml:"jwt_issuer"           env:"AUTH_JWT_ISSUER"           env-default:"tourcrew"`
	AccessTokenTTL     time.Duration `yaml:"access_token_ttl"     env:"AUTH_ACCESS_TOKEN_TTL"     env-default:"15m"`
	RefreshTokenTTL    time.Duration `yaml:"refresh_token_ttl"    env:"AUTH_REFRESH_TOKEN_TTL"    env-default:"720h"`
	PasswordHashCost   int           `yaml:"password_hash_cost"   env:"AUTH_PASSWORD_HASH_COST"   env-default:"12"`
	GoogleClientID     string        `yaml:"google_client_id"     env:"AUTH_GOOGLE_CLIENT_ID"`
	GoogleClientSecret string        `yaml:"google_client_secret" env:"AUTH_GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURI  string        `yaml:"google_redirect_uri"  env:"AUTH_GOOGLE_REDIRECT_URI"`
}

// ListsConfig holds limits for the category/entry list domains.
type ListsConfig struct {
	MaxCategoriesPerUser int `yaml:"max_categories_per_user" env:"LISTS_MAX_CATEGORIES_PER_USER" env-default:"200"`
	MaxEntriesPerList    int `yaml:"max_entries_per_list"    env:"LISTS_MAX_ENTRIES_PER_LIST"    env-default:"500"`
	MaxTitleLength       int `yaml:"max_title_length"        env:"LISTS_MAX_TITLE_LENGTH"        env-default:"100"`
	MaxTextLength        int `yaml:"max_text_length"         env:"LISTS_MAX_TEXT_LENGTH"         env-default:"500"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-IP limits for the public auth endpoints.
// AuthPerMinute 0 disables limiting.
type RateLimitConfig struct {
	AuthPerMinute   int           `yaml:"auth_per_minute"  env:"RATE_LIMIT_AUTH_PER_MINUTE" env-default:"20"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"RATE_LIMIT_CLEANUP"         env-default:"5m"`
}

// AllowedProviders returns the list of configured OAuth providers.
// A provider is considered configured if ALL its required credentials are present.
func (c AuthConfig) AllowedProviders() []string {
	var providers []string
	if c.GoogleClientID != "" && c.GoogleClientSecret != "" {
		providers = append(providers, "google")
	}
	return providers
}

// IsProviderAllowed checks if the given provider string is configured.
func (c AuthConfig) IsProviderAllowed(provider string) bool {
	return slices.Contains(c.AllowedProviders(), provider)
}
