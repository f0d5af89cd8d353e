package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the process-wide configuration. It is loaded once at startup
// and never mutated afterwards; every handler receives it by reference.
type Config struct {
	Port        string
	Environment string // NODE_ENV: "development" or "production"
	LogLevel    string

	// Mail relay (Resend)
	MailAPIKey     string
	MailFrom       string // From header for relayed mail; must be a verified sender in Resend
	ContactEmailTo string // recipient of contact form submissions

	// Filesystem roots
	StaticDir    string // pre-built SPA assets, served with index fallback
	DownloadsDir string // publicly downloadable files

	// Extra origins allowed to call the API cross-origin
	AllowedOrigins []string
}

func LoadConfig() (*Config, error) {
	// .env only exists in local development; silently ignored elsewhere.
	_ = godotenv.Load()

	cfg := &Config{
		Port:         getEnv("PORT", "8080"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		StaticDir:    getEnv("STATIC_DIR", "./web/dist"),
		DownloadsDir: getEnv("DOWNLOADS_DIR", "./downloads"),
	}

	// Values without a usable default. The process must not start without
	// them: a missing mail key would turn /email into a guaranteed 5xx.
	var err error
	if cfg.Environment, err = requireEnv("NODE_ENV"); err != nil {
		return nil, err
	}
	if cfg.MailAPIKey, err = requireEnv("MAIL_API_KEY"); err != nil {
		return nil, err
	}
	if cfg.MailFrom, err = requireEnv("MAIL_FROM"); err != nil {
		return nil, err
	}
	if cfg.ContactEmailTo, err = requireEnv("CONTACT_EMAIL_TO"); err != nil {
		return nil, err
	}

	cfg.AllowedOrigins = splitOrigins(getEnv("ALLOWED_ORIGINS", ""))

	return cfg, nil
}

// IsProduction reports whether the server runs with production settings
// (release-mode router, JSON logs, strict CORS).
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func requireEnv(key string) (string, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return "", fmt.Errorf("missing environment variable: %s", key)
	}
	if value == "" {
		return "", fmt.Errorf("environment variable %s cannot be empty", key)
	}
	return value, nil
}

// splitOrigins parses the comma-separated ALLOWED_ORIGINS value. Trailing
// slashes are stripped so comparison against the Origin header stays exact.
func splitOrigins(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimRight(strings.TrimSpace(part), "/")
		if part != "" {
			origins = append(origins, part)
		}
	}
	return origins
}
