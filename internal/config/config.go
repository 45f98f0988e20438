// Package config loads process configuration from the environment.
// A .env file is read first when present; real environment variables win.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultChatModel   = "gemini-2.5-flash"
	DefaultReportModel = "gemini-2.5-pro"
)

type Config struct {
	Server   ServerConfig
	Gemini   GeminiConfig
	Redis    RedisConfig
	SMTP     SMTPConfig
	Logger   LoggerConfig
	Reminder ReminderConfig
}

type ServerConfig struct {
	Port    int
	Version string
	Env     string
}

func (s ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", s.Port)
}

type GeminiConfig struct {
	APIKey      string
	BaseURL     string
	ChatModel   string
	ReportModel string
	Timeout     time.Duration
}

type RedisConfig struct {
	Addr       string
	Password   string
	DB         int
	TokenLimit int
}

// Enabled reports whether a Redis address was configured.
func (r RedisConfig) Enabled() bool {
	return r.Addr != ""
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func (s SMTPConfig) Enabled() bool {
	return s.Host != ""
}

type LoggerConfig struct {
	Level  string
	Format string
	Output string
}

type ReminderConfig struct {
	DefaultTo string
}

// Load reads the given env files (".env" when none are given) and builds a
// Config. A missing file is not an error.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	return &Config{
		Server: ServerConfig{
			Port:    getEnvAsInt("PORT", 8000),
			Version: getEnv("APP_VERSION", "dev"),
			Env:     getEnv("ENV", "development"),
		},
		Gemini: GeminiConfig{
			APIKey:      getEnv("GEMINI_API_KEY", ""),
			BaseURL:     getEnv("GEMINI_BASE_URL", ""),
			ChatModel:   getEnv("CHAT_MODEL", DefaultChatModel),
			ReportModel: getEnv("REPORT_MODEL", DefaultReportModel),
			Timeout:     getEnvAsDuration("COMPLETION_TIMEOUT", 60*time.Second),
		},
		Redis: RedisConfig{
			Addr:       getEnv("REDIS_ADDR", ""),
			Password:   getEnv("REDIS_PASSWORD", ""),
			DB:         getEnvAsInt("REDIS_DB", 0),
			TokenLimit: getEnvAsInt("USER_TOKEN_LIMIT", 50000),
		},
		SMTP: SMTPConfig{
			Host:     getEnv("SMTP_HOST", ""),
			Port:     getEnvAsInt("SMTP_PORT", 587),
			Username: getEnv("SMTP_USERNAME", ""),
			Password: getEnv("SMTP_PASSWORD", ""),
			From:     getEnv("SMTP_FROM", ""),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
			Output: getEnv("LOG_OUTPUT", "stdout"),
		},
		Reminder: ReminderConfig{
			DefaultTo: getEnv("REMINDER_DEFAULT_TO", ""),
		},
	}, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return value
}

// getEnvAsDuration accepts Go duration strings such as "30s" or "2m".
func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}
