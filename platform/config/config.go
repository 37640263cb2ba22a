// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// DatabaseConfig provides database connection settings.
type DatabaseConfig interface {
	GetDatabaseURL() string
}

// MigrationConfig provides the location of SQL migrations.
type MigrationConfig interface {
	DatabaseConfig
	GetMigrationsDir() string
}

// JWTConfig provides JWT validation settings for middleware.
type JWTConfig interface {
	GetJWTAccessSecret() string
}

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetCORSAllowCreds() bool
	GetRateLimitPerSecond() float64
	GetRateLimitBurst() int
	GetShutdownTimeout() time.Duration
}

// MinIOConfig provides settings for MinIO S3-compatible storage.
type MinIOConfig interface {
	GetMinIOEndpoint() string
	GetMinIOAccessKey() string
	GetMinIOSecretKey() string
	GetMinIOUseSSL() bool
	GetMinIOMaxFileSize() int64
	GetMinioBucketListingMedia() string
	IsMinIOEnabled() bool
}

// SchedulerConfig provides Redis and asynq settings for detached tasks.
type SchedulerConfig interface {
	GetRedisURL() string
	GetRedisTLSInsecure() bool
	GetAsynqQueueName() string
	GetAsynqConcurrency() int
}

// EmailConfig provides SMTP settings for outbound notifications.
type EmailConfig interface {
	GetEmailEnabled() bool
	GetSMTPHost() string
	GetSMTPPort() int
	GetSMTPUsername() string
	GetSMTPPassword() string
	GetEmailFromName() string
	GetEmailFromAddress() string
}

// ContactConfig provides settings for the contact inquiry module.
type ContactConfig interface {
	GetContactInbox() string
	GetContactRateLimitPerMinute() int
	GetPhoneDefaultRegion() string
}

// CatalogConfig provides paging and matching defaults for listing queries.
type CatalogConfig interface {
	GetPublicPageSize() int
	GetAdminPageSize() int
	GetMaxPageSize() int
	GetPublicSortFields() []string
	GetSimilarLimit() int
	GetSimilarPriceBand() float64
	GetFeaturedLimit() int
	GetViewIncrementTimeout() time.Duration
}

// StatsConfig provides defaults for dashboard aggregation.
type StatsConfig interface {
	GetStatsWindowDays() int
	GetStatsMaxWindowDays() int
	GetStatsTopCities() int
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env                       string
	HTTPAddr                  string
	DatabaseURL               string
	MigrationsDir             string
	JWTAccessSecret           string
	CORSAllowAll              bool
	CORSOrigins               []string
	CORSAllowCreds            bool
	RateLimitPerSecond        float64
	RateLimitBurst            int
	ShutdownTimeout           time.Duration
	MinIOEndpoint             string
	MinIOAccessKey            string
	MinIOSecretKey            string
	MinIOUseSSL               bool
	MinIOMaxFileSize          int64
	MinioBucketListingMedia   string
	RedisURL                  string
	RedisTLSInsecure          bool
	AsynqQueueName            string
	AsynqConcurrency          int
	EmailEnabled              bool
	SMTPHost                  string
	SMTPPort                  int
	SMTPUsername              string
	SMTPPassword              string
	EmailFromName             string
	EmailFromAddress          string
	ContactInbox              string
	ContactRateLimitPerMinute int
	PhoneDefaultRegion        string
	PublicPageSize            int
	AdminPageSize             int
	MaxPageSize               int
	PublicSortFields          []string
	SimilarLimit              int
	SimilarPriceBand          float64
	FeaturedLimit             int
	ViewIncrementTimeout      time.Duration
	StatsWindowDays           int
	StatsMaxWindowDays        int
	StatsTopCities            int
}

// =============================================================================
// Interface Implementations
// =============================================================================

// DatabaseConfig implementation
func (c *Config) GetDatabaseURL() string   { return c.DatabaseURL }
func (c *Config) GetMigrationsDir() string { return c.MigrationsDir }

// JWTConfig implementation
func (c *Config) GetJWTAccessSecret() string { return c.JWTAccessSecret }

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string               { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool             { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string          { return c.CORSOrigins }
func (c *Config) GetCORSAllowCreds() bool           { return c.CORSAllowCreds }
func (c *Config) GetRateLimitPerSecond() float64    { return c.RateLimitPerSecond }
func (c *Config) GetRateLimitBurst() int            { return c.RateLimitBurst }
func (c *Config) GetShutdownTimeout() time.Duration { return c.ShutdownTimeout }

// MinIOConfig implementation
func (c *Config) GetMinIOEndpoint() string           { return c.MinIOEndpoint }
func (c *Config) GetMinIOAccessKey() string          { return c.MinIOAccessKey }
func (c *Config) GetMinIOSecretKey() string          { return c.MinIOSecretKey }
func (c *Config) GetMinIOUseSSL() bool               { return c.MinIOUseSSL }
func (c *Config) GetMinIOMaxFileSize() int64         { return c.MinIOMaxFileSize }
func (c *Config) GetMinioBucketListingMedia() string { return c.MinioBucketListingMedia }
func (c *Config) IsMinIOEnabled() bool               { return c.MinIOEndpoint != "" }

// SchedulerConfig implementation
func (c *Config) GetRedisURL() string        { return c.RedisURL }
func (c *Config) GetRedisTLSInsecure() bool  { return c.RedisTLSInsecure }
func (c *Config) GetAsynqQueueName() string  { return c.AsynqQueueName }
func (c *Config) GetAsynqConcurrency() int   { return c.AsynqConcurrency }

// EmailConfig implementation
func (c *Config) GetEmailEnabled() bool       { return c.EmailEnabled }
func (c *Config) GetSMTPHost() string         { return c.SMTPHost }
func (c *Config) GetSMTPPort() int            { return c.SMTPPort }
func (c *Config) GetSMTPUsername() string     { return c.SMTPUsername }
func (c *Config) GetSMTPPassword() string     { return c.SMTPPassword }
func (c *Config) GetEmailFromName() string    { return c.EmailFromName }
func (c *Config) GetEmailFromAddress() string { return c.EmailFromAddress }

// ContactConfig implementation
func (c *Config) GetContactInbox() string            { return c.ContactInbox }
func (c *Config) GetContactRateLimitPerMinute() int  { return c.ContactRateLimitPerMinute }
func (c *Config) GetPhoneDefaultRegion() string      { return c.PhoneDefaultRegion }

// CatalogConfig implementation
func (c *Config) GetPublicPageSize() int                 { return c.PublicPageSize }
func (c *Config) GetAdminPageSize() int                  { return c.AdminPageSize }
func (c *Config) GetMaxPageSize() int                    { return c.MaxPageSize }
func (c *Config) GetPublicSortFields() []string          { return c.PublicSortFields }
func (c *Config) GetSimilarLimit() int                   { return c.SimilarLimit }
func (c *Config) GetSimilarPriceBand() float64           { return c.SimilarPriceBand }
func (c *Config) GetFeaturedLimit() int                  { return c.FeaturedLimit }
func (c *Config) GetViewIncrementTimeout() time.Duration { return c.ViewIncrementTimeout }

// StatsConfig implementation
func (c *Config) GetStatsWindowDays() int    { return c.StatsWindowDays }
func (c *Config) GetStatsMaxWindowDays() int { return c.StatsMaxWindowDays }
func (c *Config) GetStatsTopCities() int     { return c.StatsTopCities }

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:4200"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	smtpHost := getEnv("SMTP_HOST", "")
	emailEnabled := strings.EqualFold(getEnv("EMAIL_ENABLED", "true"), "true")

	cfg := &Config{
		Env:                       getEnv("APP_ENV", "development"),
		HTTPAddr:                  getEnv("HTTP_ADDR", ":8080"),
		DatabaseURL:               getEnv("DATABASE_URL", ""),
		MigrationsDir:             getEnv("MIGRATIONS_DIR", "migrations"),
		JWTAccessSecret:           getEnv("JWT_ACCESS_SECRET", ""),
		CORSAllowAll:              corsAllowAll,
		CORSOrigins:               corsOrigins,
		CORSAllowCreds:            strings.EqualFold(getEnv("CORS_ALLOW_CREDENTIALS", "true"), "true"),
		RateLimitPerSecond:        mustFloat(getEnv("RATE_LIMIT_PER_SECOND", "20")),
		RateLimitBurst:            mustInt(getEnv("RATE_LIMIT_BURST", "40")),
		ShutdownTimeout:           mustDuration(getEnv("SHUTDOWN_TIMEOUT", "10s")),
		MinIOEndpoint:             getEnv("MINIO_ENDPOINT", ""),
		MinIOAccessKey:            getEnv("MINIO_ACCESS_KEY", ""),
		MinIOSecretKey:            getEnv("MINIO_SECRET_KEY", ""),
		MinIOUseSSL:               strings.EqualFold(getEnv("MINIO_USE_SSL", "false"), "true"),
		MinIOMaxFileSize:          mustInt64(getEnv("MINIO_MAX_FILE_SIZE", "26214400")),
		MinioBucketListingMedia:   getEnv("MINIO_BUCKET_LISTING_MEDIA", "listing-media"),
		RedisURL:                  getEnv("REDIS_URL", ""),
		RedisTLSInsecure:          strings.EqualFold(getEnv("REDIS_TLS_INSECURE", "false"), "true"),
		AsynqQueueName:            getEnv("ASYNQ_QUEUE", "default"),
		AsynqConcurrency:          mustInt(getEnv("ASYNQ_CONCURRENCY", "10")),
		EmailEnabled:              emailEnabled && smtpHost != "",
		SMTPHost:                  smtpHost,
		SMTPPort:                  mustInt(getEnv("SMTP_PORT", "587")),
		SMTPUsername:              getEnv("SMTP_USERNAME", ""),
		SMTPPassword:              getEnv("SMTP_PASSWORD", ""),
		EmailFromName:             getEnv("EMAIL_FROM_NAME", "Property Catalog"),
		EmailFromAddress:          getEnv("EMAIL_FROM_ADDRESS", ""),
		ContactInbox:              getEnv("CONTACT_INBOX", ""),
		ContactRateLimitPerMinute: mustInt(getEnv("CONTACT_RATE_LIMIT_PER_MINUTE", "5")),
		PhoneDefaultRegion:        strings.ToUpper(getEnv("PHONE_DEFAULT_REGION", "US")),
		PublicPageSize:            mustInt(getEnv("CATALOG_PUBLIC_PAGE_SIZE", "12")),
		AdminPageSize:             mustInt(getEnv("CATALOG_ADMIN_PAGE_SIZE", "20")),
		MaxPageSize:               mustInt(getEnv("CATALOG_MAX_PAGE_SIZE", "100")),
		PublicSortFields:          splitCSV(getEnv("CATALOG_PUBLIC_SORT_FIELDS", "price,createdAt,sqft")),
		SimilarLimit:              mustInt(getEnv("CATALOG_SIMILAR_LIMIT", "4")),
		SimilarPriceBand:          mustFloat(getEnv("CATALOG_SIMILAR_PRICE_BAND", "0.3")),
		FeaturedLimit:             mustInt(getEnv("CATALOG_FEATURED_LIMIT", "6")),
		ViewIncrementTimeout:      mustDuration(getEnv("CATALOG_VIEW_INCREMENT_TIMEOUT", "5s")),
		StatsWindowDays:           mustInt(getEnv("STATS_WINDOW_DAYS", "30")),
		StatsMaxWindowDays:        mustInt(getEnv("STATS_MAX_WINDOW_DAYS", "3650")),
		StatsTopCities:            mustInt(getEnv("STATS_TOP_CITIES", "10")),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.JWTAccessSecret == "" {
		return fmt.Errorf("JWT_ACCESS_SECRET is required")
	}
	if c.EmailEnabled && c.EmailFromAddress == "" {
		return fmt.Errorf("EMAIL_FROM_ADDRESS is required when email is enabled")
	}
	if c.CORSAllowAll && c.CORSAllowCreds {
		return fmt.Errorf("CORS_ALLOW_CREDENTIALS cannot be true when CORS_ALLOW_ALL is true")
	}
	if c.PublicPageSize < 1 || c.AdminPageSize < 1 || c.MaxPageSize < 1 {
		return fmt.Errorf("catalog page sizes must be positive")
	}
	if c.SimilarPriceBand < 0 || c.SimilarPriceBand > 1 {
		return fmt.Errorf("CATALOG_SIMILAR_PRICE_BAND must be between 0 and 1")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func mustDuration(value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0
	}
	return d
}

func mustInt(value string) int {
	result, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0
	}
	return result
}

func mustInt64(value string) int64 {
	result, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0
	}
	return result
}

func mustFloat(value string) float64 {
	result, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0
	}
	return result
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}
