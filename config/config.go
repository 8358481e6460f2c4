package config

import (
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const DefaultItemCacheTTL = 30 * time.Second

type Config struct {
	Port           string
	LogLevel       string
	BackendBaseURL string
	ItemsAPIURL    string
	OrdersURL      string
	ReviewsURL     string
	ItemCacheTTL   time.Duration
	StaticDir      string
}

// Load reads configuration from the environment, after loading a local
// .env file when one exists.
func Load() *Config {
	_ = godotenv.Load()

	base := getEnv("BACKEND_BASE_URL", "http://localhost:8080")

	return &Config{
		Port:           getEnv("PORT", "3000"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		BackendBaseURL: base,
		ItemsAPIURL:    getEnv("ITEMS_API_URL", joinURL(base, "/api/items")),
		OrdersURL:      getEnv("UI_ORDERS_URL", joinURL(base, "/ui/orders")),
		ReviewsURL:     getEnv("UI_REVIEWS_URL", joinURL(base, "/ui/reviews")),
		ItemCacheTTL:   getEnvAsTTL("ITEM_CACHE_TTL_MS", DefaultItemCacheTTL),
		StaticDir:      getEnv("STATIC_DIR", "public"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsTTL parses a millisecond count. Non-numeric, zero, and negative
// values all fall back to the default; zero does not mean "never cache".
func getEnvAsTTL(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	ms, err := strconv.ParseFloat(valueStr, 64)
	if err != nil || ms <= 0 {
		return defaultValue
	}
	return time.Duration(ms * float64(time.Millisecond))
}

// joinURL resolves a path against a base URL, falling back to plain
// concatenation when the base does not parse.
func joinURL(base, path string) string {
	parsed, err := url.Parse(base)
	if err != nil {
		return base + path
	}
	ref, err := url.Parse(path)
	if err != nil {
		return base + path
	}
	return parsed.ResolveReference(ref).String()
}
