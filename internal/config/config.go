package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// PublicAPIURL is the backend address reachable from a browser context,
	// InternalAPIURL the service-network address used when rendering on the
	// server. ServerContext picks between them.
	PublicAPIURL   string
	InternalAPIURL string
	ServerContext  bool

	TokenCookie string
	LogLevel    string
	HTTPTimeout time.Duration
}

func Load() Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	return Config{
		PublicAPIURL:   EnvDefault("PUBLIC_API_URL", "http://localhost:8000"),
		InternalAPIURL: EnvDefault("INTERNAL_API", "http://backend:8000"),
		ServerContext:  EnvBoolDefault("SERVER_CONTEXT", false),
		TokenCookie:    EnvDefault("TOKEN_COOKIE", "token"),
		LogLevel:       EnvDefault("LOG_LEVEL", "info"),
		HTTPTimeout:    time.Duration(EnvIntDefault("HTTP_TIMEOUT_SECONDS", 10)) * time.Second,
	}
}

// APIBase resolves the backend base URL for the current execution context.
func (c Config) APIBase() string {
	if c.ServerContext {
		return c.InternalAPIURL
	}
	return c.PublicAPIURL
}

func EnvDefault(key, def string) string {
	if os.Getenv(key) != "" {
		return os.Getenv(key)
	}
	return def
}

func EnvIntDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func EnvBoolDefault(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
