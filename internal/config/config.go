package config

import (
	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	// Server
	Port int    `mapstructure:"PORT"`
	Env  string `mapstructure:"APP_ENV"` // development | production

	// Snapshot persistence
	SnapshotBackend string `mapstructure:"SNAPSHOT_BACKEND"` // file | redis | sqlite
	SnapshotPath    string `mapstructure:"SNAPSHOT_PATH"`
	SQLitePath      string `mapstructure:"SQLITE_PATH"`
	RedisURL        string `mapstructure:"REDIS_URL"`
	RedisKey        string `mapstructure:"REDIS_KEY"`

	// Scanner
	ScannerDevice string `mapstructure:"SCANNER_DEVICE"` // empty disables the hardware source

	// Exports
	PDFStoragePath string `mapstructure:"PDF_STORAGE_PATH"`
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Sensible defaults for development
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("SNAPSHOT_BACKEND", "file")
	viper.SetDefault("SNAPSHOT_PATH", "festival_inventory.json")
	viper.SetDefault("SQLITE_PATH", "festival_inventory.db")
	viper.SetDefault("REDIS_URL", "redis://localhost:6379/0")
	viper.SetDefault("REDIS_KEY", "festival:inventory:snapshot")
	viper.SetDefault("SCANNER_DEVICE", "")
	viper.SetDefault("PDF_STORAGE_PATH", "/tmp/festival/reports")

	// Optional .env file for local development — does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
