package config

import (
	"encoding/hex"
	"fmt"
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Env           string `mapstructure:"ENV"`
	LogLevel      string `mapstructure:"LOG_LEVEL"`
	EncryptionKey string `mapstructure:"ENCRYPTION_KEY"`
	RetentionDays int    `mapstructure:"RETENTION_DAYS"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("RETENTION_DAYS", 365)

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("ENV")
	v.BindEnv("LOG_LEVEL")
	v.BindEnv("ENCRYPTION_KEY")
	v.BindEnv("RETENTION_DAYS")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.IsDev() && cfg.EncryptionKey == "" {
		log.Println("WARNING: running in DEVELOPMENT mode without ENCRYPTION_KEY.")
		log.Println("WARNING: an ephemeral key will be generated; encrypted fields will not survive a restart.")
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// IsProduction returns true when configured for production mode.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Validate checks that the configuration is safe to run. In production
// ENCRYPTION_KEY is required; whenever it is set it must be a valid
// 64-character hex string (32 bytes when decoded). The retention window
// must be positive.
func (c *Config) Validate() error {
	if c.IsProduction() && c.EncryptionKey == "" {
		return fmt.Errorf("ENCRYPTION_KEY is required in production")
	}
	if c.EncryptionKey != "" {
		keyBytes, err := hex.DecodeString(c.EncryptionKey)
		if err != nil {
			return fmt.Errorf("ENCRYPTION_KEY is not valid hex: %w", err)
		}
		if len(keyBytes) != 32 {
			return fmt.Errorf("ENCRYPTION_KEY must be 32 bytes (64 hex chars), got %d bytes", len(keyBytes))
		}
	}
	if c.RetentionDays <= 0 {
		return fmt.Errorf("RETENTION_DAYS must be positive, got %d", c.RetentionDays)
	}
	return nil
}
