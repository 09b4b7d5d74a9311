package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port        string
	Environment string

	// Database
	Database DatabaseConfig

	// Session
	Session SessionConfig

	// Security
	Security SecurityConfig
}

type DatabaseConfig struct {
	Type     string // "mongodb"
	URI      string
	Name     string
	Host     string
	Port     string
	Username string
	Password string

	// Connection pool settings
	MaxConnections int
	MinConnections int
	MaxIdleTime    time.Duration
}

type SessionConfig struct {
	// TTL evicts per-client conversational memory after this much
	// idle time. Zero disables eviction.
	TTL           time.Duration
	SweepInterval time.Duration
}

type SecurityConfig struct {
	AllowedOrigins []string
}

var cfg *Config

// Load initializes the configuration
func Load() error {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg = &Config{
		Port:        getEnv("PORT", "4000"),
		Environment: getEnv("ENVIRONMENT", "development"),

		Database: DatabaseConfig{
			Type:     getEnv("DB_TYPE", "mongodb"),
			URI:      getEnv("MONGO_URI", ""),
			Name:     getEnv("DB_NAME", "mediTime"),
			Host:     getEnv("DB_HOST", "127.0.0.1"),
			Port:     getEnv("DB_PORT", "27017"),
			Username: getEnv("DB_USERNAME", ""),
			Password: getEnv("DB_PASSWORD", ""),

			MaxConnections: getEnvAsInt("DB_MAX_CONNECTIONS", 10),
			MinConnections: getEnvAsInt("DB_MIN_CONNECTIONS", 1),
			MaxIdleTime:    getEnvAsDuration("DB_MAX_IDLE_TIME", "30m"),
		},

		Session: SessionConfig{
			TTL:           getEnvAsDuration("SESSION_TTL", "30m"),
			SweepInterval: getEnvAsDuration("SESSION_SWEEP_INTERVAL", "5m"),
		},

		Security: SecurityConfig{
			AllowedOrigins: getEnvAsSlice("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:19006"}),
		},
	}

	// Validate configuration
	if err := validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	return nil
}

// Get returns the loaded configuration
func Get() *Config {
	if cfg == nil {
		log.Fatal("Configuration not loaded. Call Load() first")
	}
	return cfg
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue
	}
	// Simple comma-separated parsing
	return strings.Split(value, ",")
}

func validate() error {
	// Validate required fields
	if cfg.Database.Type == "mongodb" && cfg.Database.URI == "" {
		if cfg.Database.Host == "" || cfg.Database.Port == "" {
			return fmt.Errorf("database URI or host/port must be provided")
		}
	}

	return nil
}

// BuildDatabaseURI constructs the database URI if not provided
func (c *Config) BuildDatabaseURI() string {
	if c.Database.URI != "" {
		return c.Database.URI
	}

	switch c.Database.Type {
	case "mongodb":
		if c.Database.Username != "" && c.Database.Password != "" {
			return fmt.Sprintf("mongodb://%s:%s@%s:%s/%s",
				c.Database.Username,
				c.Database.Password,
				c.Database.Host,
				c.Database.Port,
				c.Database.Name,
			)
		}
		return fmt.Sprintf("mongodb://%s:%s/%s",
			c.Database.Host,
			c.Database.Port,
			c.Database.Name,
		)
	default:
		return ""
	}
}
