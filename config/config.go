package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds every environment-sourced setting. It is built once in main
// and passed by reference; nothing reads the environment after startup.
type Config struct {
	Port           string
	DatabaseURL    string
	SecretKey      string
	Debug          bool
	AllowedOrigins []string
	MediaRoot      string

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPUseTLS   bool

	AdminEmail       string
	DefaultFromEmail string
}

func Load() *Config {
	if os.Getenv("DATABASE_URL") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println(err)
		}
	}

	return &Config{
		Port:           getenv("PORT", "8080"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		SecretKey:      getenv("SECRET_KEY", "insecure-dev-secret-key"),
		Debug:          getenv("DEBUG", "false") == "true",
		AllowedOrigins: splitList(getenv("ALLOWED_ORIGINS", "http://localhost:8080")),
		MediaRoot:      getenv("MEDIA_ROOT", "./media"),

		SMTPHost:     getenv("EMAIL_HOST", "smtp.gmail.com"),
		SMTPPort:     getenvInt("EMAIL_PORT", 587),
		SMTPUsername: os.Getenv("EMAIL_HOST_USER"),
		SMTPPassword: os.Getenv("EMAIL_HOST_PASSWORD"),
		SMTPUseTLS:   getenv("EMAIL_USE_TLS", "true") == "true",

		AdminEmail:       getenv("ADMIN_EMAIL", "info@mbtravels.com"),
		DefaultFromEmail: getenv("DEFAULT_FROM_EMAIL", "no-reply@mbtravels.com"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
