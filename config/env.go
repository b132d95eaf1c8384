package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv            string
	Port              string
	SheetID           string
	CredentialsFile   string
	CredentialsJSON   string
	JWTSecret         string
	JWTExpiry         string
	StaffUsername     string
	StaffPasswordHash string
	OrdersCacheTTL    time.Duration
	CatalogCacheTTL   time.Duration
	NotifyEmail       string
}

var AppConfig *Config

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	ordersTTL, err := time.ParseDuration(getEnv("ORDERS_CACHE_TTL", "2m"))
	if err != nil {
		ordersTTL = 2 * time.Minute
	}
	catalogTTL, err := time.ParseDuration(getEnv("CATALOG_CACHE_TTL", "5m"))
	if err != nil {
		catalogTTL = 5 * time.Minute
	}

	AppConfig = &Config{
		AppEnv:            getEnv("APP_ENV", "development"),
		Port:              getEnv("APP_PORT", getEnv("PORT", "8082")),
		SheetID:           getEnv("SHEET_ID", ""),
		CredentialsFile:   getEnv("GOOGLE_CREDENTIALS_FILE", "./service-account.json"),
		CredentialsJSON:   getEnv("GOOGLE_CREDENTIALS_JSON", ""),
		JWTSecret:         getEnv("JWT_SECRET", "secret"),
		JWTExpiry:         getEnv("JWT_EXPIRY", "24h"),
		StaffUsername:     getEnv("STAFF_USERNAME", "staff"),
		StaffPasswordHash: getEnv("STAFF_PASSWORD_HASH", ""),
		OrdersCacheTTL:    ordersTTL,
		CatalogCacheTTL:   catalogTTL,
		NotifyEmail:       getEnv("ORDERS_NOTIFY_EMAIL", ""),
	}

	if AppConfig.SheetID == "" {
		log.Println("Warning: SHEET_ID is not set, spreadsheet operations will fail")
	}

	log.Println("Configuration loaded successfully")
	log.Printf("Environment: %s", AppConfig.AppEnv)
	log.Printf("Server will run on port: %s", AppConfig.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
