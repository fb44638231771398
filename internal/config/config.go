package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the whole application configuration, populated from
// environment variables.
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Auth     AuthConfig
	MinIO    MinIOConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	// PublicBaseURL overrides the public origin used in QR payloads and
	// shareable links. When empty the origin of the inbound request is used.
	PublicBaseURL string
	// MaxUploadBytes caps the body of admin form posts (file uploads).
	MaxUploadBytes int64
	TemplateGlob   string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
	MaxConns int32
	MinConns int32

	MaxRetries     int
	RetryDelay     time.Duration
	ConnectTimeout time.Duration
}

type AuthConfig struct {
	// AdminPassword is either the shared secret itself or a bcrypt hash of
	// it (detected by prefix at login time).
	AdminPassword string
	SessionSecret string
}

// MinIOConfig configures the asset-storage backend. Endpoint, access key and
// secret key are all required for uploads to be available; leaving any of
// them empty disables uploads without disabling the rest of the service.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// Configured reports whether the storage backend settings are present.
func (m MinIOConfig) Configured() bool {
	return m.Endpoint != "" && m.AccessKey != "" && m.SecretKey != ""
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:           getEnv("APP_NAME", "agentcard"),
			Environment:    getEnv("APP_ENV", "development"),
			Port:           getEnv("APP_PORT", "8080"),
			PublicBaseURL:  getEnv("PUBLIC_BASE_URL", ""),
			MaxUploadBytes: 20 << 20, // 20 MiB per request
			TemplateGlob:   getEnv("TEMPLATE_GLOB", "web/templates/*.html"),
		},
		Database: DatabaseConfig{
			Host:           getEnv("DB_HOST", "localhost"),
			Port:           getEnvInt("DB_PORT", 5432),
			User:           getEnv("DB_USER", "postgres"),
			Password:       getEnv("DB_PASSWORD", ""),
			Database:       getEnv("DB_NAME", "agentcard"),
			SSLMode:        getEnv("DB_SSLMODE", "disable"),
			MaxConns:       int32(getEnvInt("DB_MAX_CONNS", 10)),
			MinConns:       int32(getEnvInt("DB_MIN_CONNS", 2)),
			MaxRetries:     getEnvInt("DB_MAX_RETRIES", 3),
			RetryDelay:     time.Second,
			ConnectTimeout: 10 * time.Second,
		},
		Auth: AuthConfig{
			AdminPassword: getEnv("ADMIN_PASSWORD", "admin"),
			SessionSecret: getEnv("SESSION_SECRET", "change-me-in-production"),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", "agentcard"),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate rejects configurations that must never reach production.
func (c *Config) Validate() error {
	if c.App.Environment == "production" {
		if c.Auth.SessionSecret == "change-me-in-production" {
			return fmt.Errorf("SESSION_SECRET must be set in production")
		}
		if c.Auth.AdminPassword == "admin" {
			return fmt.Errorf("ADMIN_PASSWORD must be set in production")
		}
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
