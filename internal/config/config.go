package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/techblog-api/internal/markdown"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Server ServerConfig

	// Seed catalogue configuration
	Seed SeedConfig

	// Session configuration
	Session SessionConfig

	// Markdown rendering configuration
	Render RenderConfig

	// Import configuration
	Import ImportConfig

	// Logging configuration
	Log LogConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// SeedConfig selects where the startup catalogue comes from
type SeedConfig struct {
	Dir string // empty means the embedded catalogue
}

// SessionConfig holds sign-in settings
type SessionConfig struct {
	File       string // empty keeps sessions in memory only
	LoginDelay time.Duration
}

// RenderConfig holds formatter settings
type RenderConfig struct {
	Engine    string // "lite" or "goldmark"
	Escape    string // "none", "source" or "sanitize"
	WrapLists bool
}

// ImportConfig holds bulk import settings
type ImportConfig struct {
	MaxUploadSize int64 // in bytes
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string
	Format string // "json" or "pretty"
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 60*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second),
		},
		Seed: SeedConfig{
			Dir: getEnv("SEED_DIR", ""),
		},
		Session: SessionConfig{
			File:       getEnv("SESSION_FILE", ""),
			LoginDelay: getDurationEnv("LOGIN_DELAY", time.Second),
		},
		Render: RenderConfig{
			Engine:    getEnv("RENDER_ENGINE", "lite"),
			Escape:    getEnv("RENDER_ESCAPE", "source"),
			WrapLists: getBoolEnv("RENDER_WRAP_LISTS", false),
		},
		Import: ImportConfig{
			MaxUploadSize: getInt64Env("MAX_UPLOAD_SIZE", 10*1024*1024), // 10MB
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	// Validate required configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if _, err := markdown.ParseEngine(c.Render.Engine); err != nil {
		return fmt.Errorf("RENDER_ENGINE: %w", err)
	}
	if _, err := markdown.ParseEscapeMode(c.Render.Escape); err != nil {
		return fmt.Errorf("RENDER_ESCAPE: %w", err)
	}
	if c.Session.LoginDelay < 0 {
		return fmt.Errorf("LOGIN_DELAY must not be negative")
	}
	if c.Import.MaxUploadSize <= 0 {
		return fmt.Errorf("MAX_UPLOAD_SIZE must be positive")
	}
	return nil
}

// FormatterOptions returns formatter options for the given preset.
// Values are assumed to have passed Validate.
func (c *RenderConfig) FormatterOptions(caps markdown.Capabilities) markdown.Options {
	engine, _ := markdown.ParseEngine(c.Engine)
	escape, _ := markdown.ParseEscapeMode(c.Escape)
	caps.WrapLists = c.WrapLists
	return markdown.Options{
		Engine:       engine,
		Capabilities: caps,
		Escape:       escape,
	}
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt64Env(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
