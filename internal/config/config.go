package config

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Config carries everything cmd/twodo needs to wire the app. Values come
// from the environment; a .env file is loaded by main before Load runs.
type Config struct {
	SecretKey    string
	DatabaseURL  string
	DBPath       string
	Port         string
	Location     *time.Location
	CookieSecure bool
	TemplatesDir string
	StaticDir    string
}

func Load() Config {
	return Config{
		SecretKey:    getEnv("SECRET_KEY", "change_me_in_production"),
		DatabaseURL:  NormalizeDatabaseURL(os.Getenv("DATABASE_URL")),
		DBPath:       getEnv("DB_PATH", filepath.Join("data", "twodo.db")),
		Port:         getEnv("PORT", "8080"),
		Location:     mustLoadLocation(getEnv("TZ", "UTC")),
		CookieSecure: getEnv("COOKIE_SECURE", "false") == "true",
		TemplatesDir: getEnv("TEMPLATES_DIR", filepath.Join("internal", "templates")),
		StaticDir:    getEnv("STATIC_DIR", filepath.Join("web", "static")),
	}
}

// NormalizeDatabaseURL accepts both URL schemes Postgres providers hand out
// and settles on postgresql:// before the DSN reaches the driver.
func NormalizeDatabaseURL(raw string) string {
	url := strings.TrimSpace(raw)
	if url == "" {
		return ""
	}
	if rest, found := strings.CutPrefix(url, "postgres://"); found {
		return "postgresql://" + rest
	}
	return url
}

func mustLoadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("invalid TZ %q, falling back to UTC", name)
		return time.UTC
	}
	return location
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
