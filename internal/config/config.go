package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config carries the environment-provided settings. DATABASE_URL,
// ADMIN_API_KEY and ADMIN_PANEL_PASSWORD are required; the process refuses
// to start without them.
type Config struct {
	DatabaseURL string
	Port        int

	// AdminAPIKey is the static shared secret accepted in the x-api-key header.
	AdminAPIKey string
	// AdminPanelPassword is the fallback panel password, used until a
	// persisted override exists.
	AdminPanelPassword string

	CORSAllowedOrigins []string

	ContactRateLimitPerMinute int

	SMTPHost   string
	SMTPPort   int
	NotifyFrom string
	NotifyTo   string
}

// Load reads configuration from the environment.
func Load() (Config, error) {
	cfg := Config{
		DatabaseURL:               os.Getenv("DATABASE_URL"),
		Port:                      envInt("PORT", 3000),
		AdminAPIKey:               os.Getenv("ADMIN_API_KEY"),
		AdminPanelPassword:        os.Getenv("ADMIN_PANEL_PASSWORD"),
		CORSAllowedOrigins:        envCSV("CORS_ALLOWED_ORIGINS"),
		ContactRateLimitPerMinute: envInt("CONTACT_RATE_LIMIT_PER_MINUTE", 10),
		SMTPHost:                  os.Getenv("SMTP_HOST"),
		SMTPPort:                  envInt("SMTP_PORT", 587),
		NotifyFrom:                env("NOTIFY_FROM", "noreply@localhost"),
		NotifyTo:                  os.Getenv("NOTIFY_TO"),
	}

	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.AdminAPIKey == "" {
		return Config{}, fmt.Errorf("ADMIN_API_KEY is required")
	}
	if cfg.AdminPanelPassword == "" {
		return Config{}, fmt.Errorf("ADMIN_PANEL_PASSWORD is required")
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("PORT must be a valid port number")
	}
	return cfg, nil
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func envCSV(key string) []string {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
