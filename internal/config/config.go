package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"
)

// Config carries everything the server reads from the environment. Defaults
// point at the hosted automation flow so a bare `go run` works against the
// real webhook.
type Config struct {
	Port string

	WebhookRetrieveURL string
	WebhookChangeURL   string
	WebhookTimeout     time.Duration

	OutboxWorkers    int
	OutboxMaxRetries int

	LogLevel string
}

func ProcessEnvironmentVariables() (*Config, error) {
	env := &Config{
		Port:               getEnv("PORT", "9446"),
		WebhookRetrieveURL: getEnv("WEBHOOK_RETRIEVE_URL", "https://thayneautomations.app.n8n.cloud/webhook/retrieve-ironforge-finances"),
		WebhookChangeURL:   getEnv("WEBHOOK_CHANGE_URL", "https://thayneautomations.app.n8n.cloud/webhook/change-ironforge-finances"),
		WebhookTimeout:     getEnvDuration("WEBHOOK_TIMEOUT", 15*time.Second),
		OutboxWorkers:      getEnvInt("OUTBOX_WORKERS", 2),
		OutboxMaxRetries:   getEnvInt("OUTBOX_MAX_RETRIES", 5),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
	}

	if err := env.validate(); err != nil {
		return nil, err
	}
	return env, nil
}

func (c *Config) validate() error {
	if port, err := strconv.Atoi(c.Port); err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("config: invalid port %q", c.Port)
	}
	for _, raw := range []string{c.WebhookRetrieveURL, c.WebhookChangeURL} {
		parsed, err := url.Parse(raw)
		if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
			return fmt.Errorf("config: invalid webhook URL %q", raw)
		}
	}
	if c.OutboxWorkers < 1 {
		return fmt.Errorf("config: outbox workers must be at least 1, got %d", c.OutboxWorkers)
	}
	if c.OutboxMaxRetries < 0 {
		return fmt.Errorf("config: outbox max retries must be non-negative, got %d", c.OutboxMaxRetries)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}
