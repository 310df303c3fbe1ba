package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port             string
	DBConn           string
	LogLevel         string
	JWTSecret        string
	BalanceHubURL    string
	RefreshSchedule  string
	SnapshotSchedule string
}

// NewConfig loads configuration from environment variables
func NewConfig() (*Config, error) {
	// .env file is optional in production
	_ = godotenv.Load()

	cfg := &Config{
		Port:             getEnv("PORT", "8080"),
		DBConn:           getEnv("DB_CONN", "host=localhost port=5432 user=finwell password=finwell dbname=finwell sslmode=disable"),
		LogLevel:         getEnv("LOG_LEVEL", "INFO"),
		JWTSecret:        getEnv("JWT_SECRET", "secret"),
		BalanceHubURL:    getEnv("BALANCEHUB_URL", "https://api.balancehub.example.com/feeds/balances.asmx"),
		RefreshSchedule:  getEnv("REFRESH_SCHEDULE", "0 3 * * *"),
		SnapshotSchedule: getEnv("SNAPSHOT_SCHEDULE", "30 3 * * *"),
	}

	if cfg.DBConn == "" {
		return nil, fmt.Errorf("DB_CONN is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
