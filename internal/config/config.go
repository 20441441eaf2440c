// Package config provides centralized configuration loaded from environment
// variables. Shared by cmd/api and cmd/leaguectl.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// --------------------------------------------------------------------------
// Table names — single source of truth, matches schema.sql
// --------------------------------------------------------------------------

const (
	PlayerTable     = "player"
	ParentTable     = "parent"
	RelativeTable   = "relative"
	TeamTable       = "team"
	InRoleTable     = "in_role"
	LeagueGameTable = "league_game"
)

// Import types accepted by the spreadsheet pipeline.
const (
	ImportTypePlayer   = "player"
	ImportTypeParent   = "parent"
	ImportTypeRelative = "relative"
)

// ValidImportType reports whether t is an accepted spreadsheet import type.
func ValidImportType(t string) bool {
	return t == ImportTypePlayer || t == ImportTypeParent || t == ImportTypeRelative
}

// --------------------------------------------------------------------------
// Config struct — populated from environment variables
// --------------------------------------------------------------------------

type Config struct {
	// Database
	DatabaseURL    string
	DBPoolMinConns int
	DBPoolMaxConns int
	DBPoolMaxLife  time.Duration

	// API server
	APIHost     string
	APIPort     int
	Environment string // development, staging, production
	Debug       bool

	// CORS
	CORSAllowOrigins []string

	// Rate limiting
	RateLimitEnabled  bool
	RateLimitRequests int
	RateLimitWindow   time.Duration

	// Spreadsheet import pipeline
	UploadDir        string
	ImportCommand    string // interpreter for the parser process
	ImportScript     string // parser script path, passed as first argument
	ImportTimeout    time.Duration
	ImportSessionTTL time.Duration

	// Cache
	CacheEnabled bool
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	dbURL := envOr("DATABASE_URL", "")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL must be set")
	}
	return load(dbURL), nil
}

// LoadTool reads configuration for commands that never touch the database,
// so a missing DATABASE_URL is not an error.
func LoadTool() *Config {
	return load(envOr("DATABASE_URL", ""))
}

func load(dbURL string) *Config {
	return &Config{
		DatabaseURL:    dbURL,
		DBPoolMinConns: envInt("DB_POOL_MIN_CONNS", 2),
		DBPoolMaxConns: envInt("DB_POOL_MAX_CONNS", 10),
		DBPoolMaxLife:  time.Duration(envInt("DB_POOL_MAX_LIFE_MINUTES", 30)) * time.Minute,

		APIHost:     envOr("API_HOST", "0.0.0.0"),
		APIPort:     envInt("API_PORT", envInt("PORT", 3000)),
		Environment: envOr("ENVIRONMENT", "development"),
		Debug:       envBool("DEBUG", false),

		CORSAllowOrigins: envList("CORS_ALLOW_ORIGINS", []string{
			"http://localhost:3000",
			"http://localhost:5173",
		}),

		RateLimitEnabled:  envBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequests: envInt("RATE_LIMIT_REQUESTS", 100),
		RateLimitWindow:   time.Duration(envInt("RATE_LIMIT_WINDOW", 60)) * time.Second,

		UploadDir:        envOr("UPLOAD_DIR", "uploads"),
		ImportCommand:    envOr("IMPORT_COMMAND", "python"),
		ImportScript:     envOr("IMPORT_SCRIPT", "import_script.py"),
		ImportTimeout:    time.Duration(envInt("IMPORT_TIMEOUT_SECONDS", 120)) * time.Second,
		ImportSessionTTL: time.Duration(envInt("IMPORT_SESSION_TTL_MINUTES", 30)) * time.Minute,

		CacheEnabled: envBool("CACHE_ENABLED", true),
	}
}

// IsProduction returns true if running in production environment.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// --------------------------------------------------------------------------
// Env helpers
// --------------------------------------------------------------------------

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envList(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return fallback
}
