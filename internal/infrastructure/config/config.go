// internal/infrastructure/config/config.go
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// App
	AppVersion string

	// Server
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// MongoDB
	MongoURI      string
	MongoDB       string
	MongoUser     string
	MongoPassword string

	// PostgreSQL (archival task table)
	PostgresURI string

	// Gmail (outbound mail)
	GmailClientID     string
	GmailClientSecret string
	GmailRefreshToken string
	EmailFrom         string
	AdminEmail        string

	// Razorpay
	RazorpayKeyID     string
	RazorpayKeySecret string

	// Auth
	JWTSecret string
	OTPTTL    time.Duration

	// Archival
	ArchiveDelay        time.Duration
	ArchivePollInterval time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	config := &Config{
		AppVersion:   getEnv("APP_VERSION", "1.0.0"),
		Port:         getEnv("PORT", "8080"),
		ReadTimeout:  time.Duration(getEnvAsInt("READ_TIMEOUT", 30)) * time.Second,
		WriteTimeout: time.Duration(getEnvAsInt("WRITE_TIMEOUT", 30)) * time.Second,

		MongoURI:      getEnv("MONGODB_DSN", "mongodb://localhost:27017"),
		MongoDB:       getEnv("MONGO_DB", "prkservices"),
		MongoUser:     getEnv("MONGO_USER", ""),
		MongoPassword: getEnv("MONGO_PASSWORD", ""),

		PostgresURI: getEnv("POSTGRES_DSN", "postgres://localhost:5432/prkservices"),

		GmailClientID:     getEnv("GMAIL_CLIENT_ID", ""),
		GmailClientSecret: getEnv("GMAIL_CLIENT_SECRET", ""),
		GmailRefreshToken: getEnv("GMAIL_REFRESH_TOKEN", ""),
		EmailFrom:         getEnv("EMAIL_FROM", ""),
		AdminEmail:        getEnv("ADMIN_EMAIL", ""),

		RazorpayKeyID:     getEnv("RAZORPAY_KEY_ID", ""),
		RazorpayKeySecret: getEnv("RAZORPAY_KEY_SECRET", ""),

		JWTSecret: getEnv("JWT_SECRET", ""),
		OTPTTL:    time.Duration(getEnvAsInt("OTP_TTL_MINUTES", 5)) * time.Minute,

		ArchiveDelay:        time.Duration(getEnvAsInt("ARCHIVE_DELAY_HOURS", 24)) * time.Hour,
		ArchivePollInterval: time.Duration(getEnvAsInt("ARCHIVE_POLL_SECONDS", 60)) * time.Second,
	}

	return config, nil
}

// Helper functions to get environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
