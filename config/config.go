// Package config provides application configuration management.
// It loads configuration from environment variables with sensible defaults.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Ledger store backends.
const (
	LedgerStoreSQL   = "sql"
	LedgerStoreRedis = "redis"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Ledger   LedgerConfig
	Email    EmailConfig
	Chat     ChatConfig
	Reminder ReminderConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Environment  string
}

// DatabaseConfig holds the SQL database configuration.
// A postgres:// URL selects PostgreSQL, anything else is a SQLite DSN.
type DatabaseConfig struct {
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// RedisConfig holds Redis configuration.
type RedisConfig struct {
	URL       string
	Password  string
	DB        int
	KeyPrefix string
}

// LedgerConfig selects where goals and the plan are stored.
type LedgerConfig struct {
	Store string // "sql" or "redis"
}

// EmailConfig holds email service configuration.
type EmailConfig struct {
	ResendAPIKey  string
	ResendBaseURL string
	FromName      string
	FromEmail     string
	AppBaseURL    string
	WorkerEnabled bool
	PollInterval  time.Duration
	BatchSize     int
}

// ChatConfig holds the "Ask AI" configuration.
type ChatConfig struct {
	ReplyDelay     time.Duration
	GeminiAPIKey   string
	GeminiModel    string
	RequestTimeout time.Duration
	RateLimit      int // messages per minute
}

// ReminderConfig holds the monthly reminder scheduler configuration.
type ReminderConfig struct {
	Enabled       bool
	CheckInterval time.Duration
	Location      string
}

// Load loads configuration from environment variables.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			Port:         getEnvAsInt("SERVER_PORT", 8080),
			ReadTimeout:  getEnvAsDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getEnvAsDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
			Environment:  getEnv("ENV", "development"),
		},
		Database: DatabaseConfig{
			URL:             getEnv("DATABASE_URL", "file:mysavings.db"),
			MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvAsDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		},
		Redis: RedisConfig{
			URL:       getEnv("REDIS_URL", "redis://localhost:6379/0"),
			Password:  getEnv("REDIS_PASSWORD", ""),
			DB:        getEnvAsInt("REDIS_DB", 0),
			KeyPrefix: getEnv("REDIS_KEY_PREFIX", "mysavings"),
		},
		Ledger: LedgerConfig{
			Store: strings.ToLower(getEnv("LEDGER_STORE", LedgerStoreSQL)),
		},
		Email: EmailConfig{
			ResendAPIKey:  getEnv("RESEND_API_KEY", ""),
			ResendBaseURL: getEnv("RESEND_BASE_URL", ""),
			FromName:      getEnv("RESEND_FROM_NAME", "MySavings"),
			FromEmail:     getEnv("RESEND_FROM_EMAIL", "onboarding@resend.dev"),
			AppBaseURL:    getEnv("APP_BASE_URL", "http://localhost:5173"),
			WorkerEnabled: getEnvAsBool("EMAIL_WORKER_ENABLED", true),
			PollInterval:  getEnvAsDuration("EMAIL_WORKER_POLL_INTERVAL", 5*time.Second),
			BatchSize:     getEnvAsInt("EMAIL_WORKER_BATCH_SIZE", 10),
		},
		Chat: ChatConfig{
			ReplyDelay:     getEnvAsDuration("CHAT_REPLY_DELAY", 1500*time.Millisecond),
			GeminiAPIKey:   getEnv("GEMINI_API_KEY", ""),
			GeminiModel:    getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
			RequestTimeout: getEnvAsDuration("GEMINI_REQUEST_TIMEOUT", 30*time.Second),
			RateLimit:      getEnvAsInt("CHAT_RATE_LIMIT", 20),
		},
		Reminder: ReminderConfig{
			Enabled:       getEnvAsBool("REMINDER_ENABLED", true),
			CheckInterval: getEnvAsDuration("REMINDER_CHECK_INTERVAL", time.Hour),
			Location:      getEnv("REMINDER_TIMEZONE", "Asia/Kolkata"),
		},
	}
}

// IsPostgres reports whether the database URL points at PostgreSQL.
func (c DatabaseConfig) IsPostgres() bool {
	return strings.HasPrefix(c.URL, "postgres://") || strings.HasPrefix(c.URL, "postgresql://")
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
