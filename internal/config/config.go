package config

import (
	"flag"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Server     ServerConfig
	Preview    PreviewConfig
	Database   DatabaseConfig
	Logging    LoggingConfig
	Auth       AuthConfig
	Moderation ModerationConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	HTTPAddr      string
	UploadMinGap  time.Duration
	MaxUploadSize int64
}

// PreviewConfig holds preview store configuration
type PreviewConfig struct {
	Backend   string // "memory" or "redis"
	TTL       time.Duration
	RedisAddr string
}

// DatabaseConfig holds PostgreSQL configuration
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTSecret   string
	JWTIssuer   string
	JWTAudience string
}

// ModerationConfig holds media moderation settings.
type ModerationConfig struct {
	Backend   string // "gemini", "rekognition", or "mock"
	APIKey    string
	Model     string
	AWSRegion string
	Timeout   time.Duration
}

// Load parses flags and environment variables to build configuration
func Load() *Config {
	cfg := &Config{}

	// Define flags with defaults
	httpAddr := flag.String("http", ":8080", "HTTP server address")
	uploadMinGap := flag.Duration("upload-min-gap", 2*time.Second, "Minimum delay between uploads from the same user")
	maxUploadSize := flag.Int64("max-upload-size", 50<<20, "Maximum accepted upload size in bytes")
	previewBackend := flag.String("preview-backend", "memory", "Preview store backend: memory or redis")
	previewTTL := flag.Duration("preview-ttl", 30*time.Minute, "TTL for stored preview media")
	redisAddr := flag.String("redis-addr", "localhost:6379", "Redis server address")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	dbHost := flag.String("db-host", "localhost", "PostgreSQL host")
	dbPort := flag.Int("db-port", 5432, "PostgreSQL port")
	dbUser := flag.String("db-user", "postgres", "PostgreSQL user")
	dbPassword := flag.String("db-password", "postgres", "PostgreSQL password")
	dbName := flag.String("db-name", "storyshowcase", "PostgreSQL database name")
	dbSSLMode := flag.String("db-sslmode", "disable", "PostgreSQL SSL mode")

	flag.Parse()

	// Apply environment variable overrides
	applyEnvOverrides(httpAddr, uploadMinGap, maxUploadSize, previewBackend, previewTTL, redisAddr, logLevel, dbHost, dbPort, dbUser, dbPassword, dbName, dbSSLMode)

	// Build config struct
	cfg.Server = ServerConfig{
		HTTPAddr:      *httpAddr,
		UploadMinGap:  *uploadMinGap,
		MaxUploadSize: *maxUploadSize,
	}

	cfg.Preview = PreviewConfig{
		Backend:   *previewBackend,
		TTL:       *previewTTL,
		RedisAddr: *redisAddr,
	}

	cfg.Database = DatabaseConfig{
		Host:     *dbHost,
		Port:     *dbPort,
		User:     *dbUser,
		Password: *dbPassword,
		Database: *dbName,
		SSLMode:  *dbSSLMode,
	}

	cfg.Logging = LoggingConfig{
		Level: *logLevel,
	}

	// Load auth config from environment
	cfg.Auth = loadAuthConfig()

	// Load moderation config from environment
	cfg.Moderation = loadModerationConfig()

	return cfg
}

func loadAuthConfig() AuthConfig {
	return AuthConfig{
		JWTSecret:   getEnvOrDefault("AUTH_JWT_SECRET", "change-me-in-production"),
		JWTIssuer:   getEnvOrDefault("AUTH_JWT_ISSUER", "storyshowcase"),
		JWTAudience: getEnvOrDefault("AUTH_JWT_AUDIENCE", "storyshowcase-partners"),
	}
}

func loadModerationConfig() ModerationConfig {
	timeout := 30 * time.Second
	if v := os.Getenv("MODERATION_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil && parsed > 0 {
			timeout = parsed
		}
	}

	return ModerationConfig{
		Backend:   getEnvOrDefault("MODERATION_BACKEND", "gemini"),
		APIKey:    os.Getenv("GEMINI_API_KEY"),
		Model:     getEnvOrDefault("MODERATION_MODEL", "gemini-2.0-flash"),
		AWSRegion: os.Getenv("AWS_REGION"),
		Timeout:   timeout,
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func applyEnvOverrides(
	httpAddr *string,
	uploadMinGap *time.Duration,
	maxUploadSize *int64,
	previewBackend *string,
	previewTTL *time.Duration,
	redisAddr *string,
	logLevel *string,
	dbHost *string,
	dbPort *int,
	dbUser *string,
	dbPassword *string,
	dbName *string,
	dbSSLMode *string,
) {
	if v := os.Getenv("HTTP_ADDR"); v != "" {
		*httpAddr = v
	}
	if v := os.Getenv("UPLOAD_MIN_GAP"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			*uploadMinGap = d
		}
	}
	if v := os.Getenv("MAX_UPLOAD_SIZE"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			*maxUploadSize = n
		}
	}
	if v := os.Getenv("PREVIEW_BACKEND"); v != "" {
		*previewBackend = v
	}
	if v := os.Getenv("PREVIEW_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			*previewTTL = d
		}
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		*redisAddr = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		*logLevel = v
	}
	if v := os.Getenv("DB_HOST"); v != "" {
		*dbHost = v
	}
	if v := os.Getenv("DB_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			*dbPort = p
		}
	}
	if v := os.Getenv("DB_USER"); v != "" {
		*dbUser = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		*dbPassword = v
	}
	if v := os.Getenv("DB_NAME"); v != "" {
		*dbName = v
	}
	if v := os.Getenv("DB_SSLMODE"); v != "" {
		*dbSSLMode = v
	}
}
