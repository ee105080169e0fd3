package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultAllowedOrigins are the site origins allowed to call the newsletter
// proxy. The first entry is the default origin reported to unknown callers.
var DefaultAllowedOrigins = []string{
	"https://example.dev",
	"https://www.example.dev",
	"https://newsletter.example.dev",
	"http://localhost:3000",
}

// Config holds the newsletter proxy configuration
type Config struct {
	// Server configuration
	ServerAddress string
	Environment   string
	LogLevel      string

	// AWS configuration
	AWSRegion string

	// Lambda configuration
	IsLambda           bool
	LambdaFunctionName string

	// Upstream subscriber service
	NewsletterAPIKey       string
	NewsletterAPIURL       string
	NewsletterAPIKeyHeader string
	UpstreamTimeout        time.Duration // zero leaves the request bounded by the host platform

	// CORS
	AllowedOrigins []string

	// Feature flags
	EnableMetrics    bool
	EnableTracing    bool
	MetricsNamespace string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerAddress: getEnv("SERVER_ADDRESS", ":8080"),
		Environment:   getEnv("ENVIRONMENT", "development"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		AWSRegion:     getEnv("AWS_REGION", "us-east-1"),

		IsLambda:           getEnvBool("IS_LAMBDA", os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != ""),
		LambdaFunctionName: getEnv("AWS_LAMBDA_FUNCTION_NAME", ""),

		// A missing key is reported per request, not at startup.
		NewsletterAPIKey:       os.Getenv("NEWSLETTER_API_KEY"),
		NewsletterAPIURL:       getEnv("NEWSLETTER_API_URL", "https://api.kit.com/v4/subscribers"),
		NewsletterAPIKeyHeader: getEnv("NEWSLETTER_API_KEY_HEADER", "X-Kit-Api-Key"),
		UpstreamTimeout:        time.Duration(getEnvInt("UPSTREAM_TIMEOUT_MS", 0)) * time.Millisecond,

		AllowedOrigins: getEnvList("ALLOWED_ORIGINS", DefaultAllowedOrigins),

		EnableMetrics:    getEnvBool("ENABLE_METRICS", false),
		EnableTracing:    getEnvBool("ENABLE_TRACING", false),
		MetricsNamespace: getEnv("METRICS_NAMESPACE", "Portfolio/Newsletter"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if all required configuration is present
func (c *Config) Validate() error {
	if len(c.AllowedOrigins) == 0 {
		return fmt.Errorf("ALLOWED_ORIGINS must list at least one origin")
	}
	if c.NewsletterAPIURL == "" {
		return fmt.Errorf("NEWSLETTER_API_URL is required")
	}
	if c.UpstreamTimeout < 0 {
		return fmt.Errorf("UPSTREAM_TIMEOUT_MS must be non-negative")
	}
	if c.EnableMetrics && c.MetricsNamespace == "" {
		return fmt.Errorf("METRICS_NAMESPACE is required when metrics are enabled")
	}
	return nil
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

// getEnvInt gets an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// getEnvList gets a comma-separated environment variable with a default value
func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return append([]string(nil), defaultValue...)
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
