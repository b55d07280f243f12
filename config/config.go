package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Env            string
	Port           string
	DBURL          string
	JWTSecret      string
	TokenExpiryMin int
	FrontendURL    string
	SMTPHost       string
	SMTPPort       int
	SMTPUser       string
	SMTPPass       string
}

func Load() *Config {
	// Optional .env for local development; real deployments set the
	// environment directly.
	_ = godotenv.Load()

	return &Config{
		Env:            getEnv("ENV", "development"),
		Port:           getEnv("PORT", "3000"),
		DBURL:          mustGetEnv("DB_URL"),
		JWTSecret:      mustGetEnv("JWT_SECRET"),
		TokenExpiryMin: getEnvAsInt("TOKEN_EXPIRY_MIN", 1440),
		FrontendURL:    getEnv("FRONTEND_URL", "http://localhost:5173"),
		SMTPHost:       getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:       getEnvAsInt("SMTP_PORT", 587),
		SMTPUser:       getEnv("SMTP_USER", ""),
		SMTPPass:       getEnv("SMTP_PASS", ""),
	}
}

// MailConfigured reports whether SMTP credentials are present; without them
// the server falls back to logging reset links instead of sending mail.
func (c *Config) MailConfigured() bool {
	return c.SMTPUser != "" && c.SMTPPass != ""
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatalf("Missing required environment variable: %s", key)
	return ""
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}
