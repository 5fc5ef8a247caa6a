package models

// Config holds all configuration for the client runtime
type Config struct {
	App     AppConfig
	Backend BackendConfig
	Bridge  BridgeConfig
	Tracker TrackerConfig
	Poll    PollConfig
	Storage StorageConfig
	Logger  LoggerConfig
}

// AppConfig represents application information
type AppConfig struct {
	Name        string `json:"name"`
	Environment string `json:"environment"`
	Version     string `json:"version"`
	Debug       bool   `json:"debug"`
}

// BackendConfig holds the REST backend connection settings
type BackendConfig struct {
	BaseURL string `json:"base_url"`
	Timeout int    `json:"timeout"` // seconds
}

// BridgeConfig holds the local UI bridge server settings
type BridgeConfig struct {
	Port int `json:"port"`
}

// TrackerConfig holds geolocation settings. The default coordinate is the
// last-resort fallback when no device position can be obtained.
type TrackerConfig struct {
	DefaultLatitude  float64 `json:"default_latitude"`
	DefaultLongitude float64 `json:"default_longitude"`
}

// PollConfig holds the timer intervals for the polling loops
type PollConfig struct {
	NearbyIntervalSec   int `json:"nearby_interval_sec"`
	ReportIntervalSec   int `json:"report_interval_sec"`
	NotificationTTLSec  int `json:"notification_ttl_sec"`
	InfoRetryMaxRetries int `json:"info_retry_max_retries"`
}

// StorageConfig holds the local durable store settings
type StorageConfig struct {
	Path string `json:"path"`
}

// LoggerConfig represents logging configuration
type LoggerConfig struct {
	Level    string `json:"level"`
	FilePath string `json:"file_path"`
}
