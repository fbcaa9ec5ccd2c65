package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPort           = "8080"
	defaultDatabaseURL    = "sqlite://app.sqlite"
	defaultLogLevel       = "info"
	defaultRequestTimeout = 10 * time.Second
)

// Config agrupa la configuración necesaria para correr la aplicación.
type Config struct {
	Port           string
	DatabaseURL    string
	LogLevel       string
	AllowedOrigins []string
	RequestTimeout time.Duration
}

var loadDotenv = func() error {
	return godotenv.Load()
}

// Load lee variables de entorno (y un .env opcional) y valida lo mínimo indispensable.
func Load() (Config, error) {
	// El .env es opcional: si no existe seguimos con el entorno del proceso.
	if err := loadDotenv(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	port := envDefault("PORT", defaultPort)
	// Normalizamos por si alguien manda ":8080"
	port = strings.TrimPrefix(port, ":")

	timeout := defaultRequestTimeout
	if value := strings.TrimSpace(os.Getenv("REQUEST_TIMEOUT")); value != "" {
		parsed, err := time.ParseDuration(value)
		if err != nil || parsed <= 0 {
			return Config{}, fmt.Errorf("invalid env var REQUEST_TIMEOUT: %q", value)
		}
		timeout = parsed
	}

	origins := csv(os.Getenv("CORS_ALLOWED_ORIGINS"))
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return Config{
		Port:           port,
		DatabaseURL:    envDefault("DATABASE_URL", defaultDatabaseURL),
		LogLevel:       strings.ToLower(envDefault("LOG_LEVEL", defaultLogLevel)),
		AllowedOrigins: origins,
		RequestTimeout: timeout,
	}, nil
}

func envDefault(key, def string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return def
}

func csv(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
