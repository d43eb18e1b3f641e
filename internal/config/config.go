// Package config loads server configuration from a config file and
// JUZJOURNEY_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Server holds scoring server configuration.
type Server struct {
	Addr          string  `mapstructure:"addr"`            // listen address
	RateLimit     float64 `mapstructure:"rate_limit"`      // score route requests per second per client
	RateBurst     int     `mapstructure:"rate_burst"`      // burst allowance per client
	MaxAudioBytes int64   `mapstructure:"max_audio_bytes"` // upload size cap
}

// Config is the full application configuration.
type Config struct {
	Env    string `mapstructure:"env"`    // current application environment (local, dev, prod etc)
	DBPath string `mapstructure:"-"`      // sqlite database path loaded from environment
	Server Server `mapstructure:"server"` // scoring server section
}

// LoadEnvFile loads a .env file into the process environment when one is
// present. A missing file is not an error.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// Load reads configuration from config files and environment variables.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// Set default values for configuration keys.
	v.SetDefault("env", "local")
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.rate_limit", 1.0)
	v.SetDefault("server.rate_burst", 5)
	v.SetDefault("server.max_audio_bytes", int64(10<<20))

	// Configure environment variable handling and key mapping.
	v.SetEnvPrefix("JUZJOURNEY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("env", "JUZJOURNEY_ENV")
	_ = v.BindEnv("db_path", "JUZJOURNEY_DB")
	_ = v.BindEnv("server.addr", "JUZJOURNEY_SERVER_ADDR")

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	cfg.DBPath = v.GetString("db_path")

	return &cfg, nil
}
