package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Named CORS policies selectable through CORS_POLICY.
const (
	CORSPolicyFrontend    = "AllowObsidianIQFrontend"
	CORSPolicyDevelopment = "DevelopmentCORS"
	CORSPolicyAllowAll    = "AllowAllOrigins"
)

// defaultFrontendOrigins is the allow-list used by the AllowObsidianIQFrontend policy
// when CORS_ALLOWED_ORIGINS is not set.
var defaultFrontendOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5000",
	"https://localhost:7000",
	"https://obsidianiq.com",
	"https://www.obsidianiq.com",
}

type Config struct {
	Port     string
	GinMode  string
	LogLevel string
	// SMTP Configuration
	SMTPHost      string
	SMTPPort      int
	SMTPUsername  string
	SMTPPassword  string
	SMTPFromEmail string
	SMTPEnableTLS bool
	SMTPTimeout   time.Duration
	// Recipient of every form notification
	ContactEmailTo string
	// CORS Configuration
	CORSPolicy         string
	CORSAllowedOrigins []string
	SwaggerEnabled     bool
}

func LoadConfig() (*Config, error) {
	// Load .env file (local only; ignored when the file is absent)
	_ = godotenv.Load()

	ginMode := getEnv("GIN_MODE", "")
	cfg := &Config{
		Port:     getEnv("PORT", "8080"),
		GinMode:  ginMode,
		LogLevel: getEnv("LOG_LEVEL", "info"),
		// SMTP Configuration
		SMTPHost:       strings.TrimSpace(getEnv("SMTP_HOST", "")),
		SMTPPort:       getEnvInt("SMTP_PORT", 465),
		SMTPUsername:   getEnv("SMTP_USERNAME", ""),
		SMTPPassword:   getEnv("SMTP_PASSWORD", ""),
		SMTPFromEmail:  strings.TrimSpace(getEnv("SMTP_FROM_EMAIL", "")),
		SMTPEnableTLS:  getEnvBool("SMTP_ENABLE_TLS", true),
		SMTPTimeout:    time.Duration(getEnvInt("SMTP_TIMEOUT_SECONDS", 30)) * time.Second,
		ContactEmailTo: strings.TrimSpace(getEnv("CONTACT_EMAIL_TO", "")),
		// CORS Configuration
		CORSPolicy:         getEnv("CORS_POLICY", CORSPolicyDevelopment),
		CORSAllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", defaultFrontendOrigins),
		SwaggerEnabled:     getEnvBool("SWAGGER_ENABLED", ginMode != "release"),
	}

	if cfg.SMTPTimeout <= 0 {
		cfg.SMTPTimeout = 30 * time.Second
	}

	// Missing addresses are reported per request as a transport failure, not at startup
	if cfg.SMTPFromEmail == "" || cfg.ContactEmailTo == "" {
		log.Println("WARNING: SMTP_FROM_EMAIL or CONTACT_EMAIL_TO is missing. Form notifications will fail.")
	}

	switch cfg.CORSPolicy {
	case CORSPolicyFrontend, CORSPolicyDevelopment, CORSPolicyAllowAll:
	default:
		log.Printf("WARNING: unknown CORS_POLICY %q, falling back to %s", cfg.CORSPolicy, CORSPolicyDevelopment)
		cfg.CORSPolicy = CORSPolicyDevelopment
	}

	return cfg, nil
}

// IsRelease reports whether gin runs in release mode.
func (c *Config) IsRelease() bool {
	return c.GinMode == "release"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(strings.TrimSpace(value)); err == nil {
			return boolVal
		}
	}
	return fallback
}

// getEnvList splits a comma separated variable, dropping blanks and trailing slashes
func getEnvList(key string, fallback []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(value) == "" {
		return append([]string(nil), fallback...)
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimRight(strings.TrimSpace(part), "/")
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
