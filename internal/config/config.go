package config

import (
	"os"
	"strings"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	AppPort string
	AppEnv  string // "development" | "production"; controls error-detail verbosity

	// Email dispatch provider. "resend" (default) or "smtp". With the
	// resend provider and no API key, the service runs in development
	// mode: every send is simulated as successful.
	EmailProvider string
	ResendAPIKey  string
	EmailFrom     string

	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string

	AllowedOrigins []string // CORS allowed origins
}

// defaultOrigins is the fixed allow-list the web platform ships with.
const defaultOrigins = "https://learnnect.com,https://www.learnnect.com,http://localhost:5173,http://localhost:3000,https://learnnect-platform.netlify.app"

// Load reads all configuration from environment variables.
func Load() *Config {
	return &Config{
		AppPort: getEnv("APP_PORT", "3001"),
		AppEnv:  getEnv("APP_ENV", "development"),

		EmailProvider: getEnv("EMAIL_PROVIDER", "resend"),
		ResendAPIKey:  getEnv("RESEND_API_KEY", ""),
		EmailFrom:     getEnv("EMAIL_FROM", "support@learnnect.com"),

		SMTPHost:     getEnv("SMTP_HOST", "localhost"),
		SMTPPort:     getEnv("SMTP_PORT", "1025"),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),

		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", defaultOrigins), ","),
	}
}

// Production reports whether error details must be withheld from responses.
func (c *Config) Production() bool {
	return c.AppEnv == "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
