package config

import (
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	Server  ServerConfig
	GitHub  GitHubConfig
	Logging LoggingConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port string
	Host string
	Env  string // "development" or "production"

	// ExposeInternalErrors controls whether 500 responses carry the raw
	// upstream error text in their "message" field. On by default for
	// parity with the original deployment.
	ExposeInternalErrors bool
}

// GitHubConfig holds the remote store coordinates and credential.
// The leaderboard file lives in a GitHub repository and is read and
// written through the contents API.
type GitHubConfig struct {
	Token          string
	APIBaseURL     string
	Owner          string
	Repo           string
	FilePath       string
	CommitterName  string
	CommitterEmail string
	UserAgent      string
}

// LoggingConfig holds logging-related configuration
type LoggingConfig struct {
	Level  string
	Format string // "json" or "text"
}

// Load loads configuration from environment variables with defaults
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:                 getEnv("PORT", "8080"),
			Host:                 getEnv("HOST", "0.0.0.0"),
			Env:                  getEnv("ENV", "development"),
			ExposeInternalErrors: getEnvBool("EXPOSE_INTERNAL_ERRORS", true),
		},
		GitHub: GitHubConfig{
			Token:          getEnv("GITHUB_TOKEN", ""),
			APIBaseURL:     getEnv("GITHUB_API_BASE_URL", "https://api.github.com"),
			Owner:          getEnv("GITHUB_REPO_OWNER", "sergei-tigrov"),
			Repo:           getEnv("GITHUB_REPO_NAME", "mousygame"),
			FilePath:       getEnv("GITHUB_FILE_PATH", "leaderboard.json"),
			CommitterName:  getEnv("GITHUB_COMMITTER_NAME", "Mousygame Leaderboard Bot"),
			CommitterEmail: getEnv("GITHUB_COMMITTER_EMAIL", "bot@mousygame.local"),
			UserAgent:      getEnv("GITHUB_USER_AGENT", "mousygame-leaderboard"),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
	}
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

// GetAddr returns the server address in host:port format
func (c *Config) GetAddr() string {
	return c.Server.Host + ":" + c.Server.Port
}

// getEnv returns an environment variable or a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvBool returns an environment variable as a bool or a default value
func getEnvBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
