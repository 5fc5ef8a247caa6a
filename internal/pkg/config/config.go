package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/anqasa/smarttaxi/internal/pkg/models"
)

func InitConfig(configPath string) *models.Config {
	local := GetEnv("APP_ENV", "local")
	if local == "local" {
		// Load config from file
		err := godotenv.Load(configPath)
		if err != nil {
			log.Println("error loading config from file", err)
		}
	}
	// Create config from environment variables
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "smarttaxi-client")
	configs.App.Environment = GetEnv("APP_ENV", "local")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", true)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// Backend config
	configs.Backend.BaseURL = GetEnv("BACKEND_BASE_URL", "http://localhost:8000")
	configs.Backend.Timeout = GetEnvAsInt("BACKEND_TIMEOUT", 10)

	// UI bridge config
	configs.Bridge.Port = GetEnvAsInt("BRIDGE_PORT", 9920)

	// Tracker config: fallback coordinate when no device position is available
	configs.Tracker.DefaultLatitude = GetEnvAsFloat("TRACKER_DEFAULT_LAT", 24.7136)
	configs.Tracker.DefaultLongitude = GetEnvAsFloat("TRACKER_DEFAULT_LNG", 46.6753)

	// Polling config
	configs.Poll.NearbyIntervalSec = GetEnvAsInt("POLL_NEARBY_INTERVAL", 30)
	configs.Poll.ReportIntervalSec = GetEnvAsInt("POLL_REPORT_INTERVAL", 60)
	configs.Poll.NotificationTTLSec = GetEnvAsInt("NOTIFICATION_TTL", 5)
	configs.Poll.InfoRetryMaxRetries = GetEnvAsInt("INFO_RETRY_MAX_RETRIES", 3)

	// Storage config
	configs.Storage.Path = GetEnv("STORAGE_PATH", "smarttaxi.db")

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "")

	return configs
}

// Helper functions to get environment variables with different types
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}
