// Package config loads service settings from .env files and the environment.
package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds every runtime setting of the service
type Config struct {
	Port    string
	GinMode string

	// Gemini upstream
	GeminiAPIKey string
	GeminiModel  string
	AIEnabled    bool
	AITimeout    time.Duration

	LogLevel  string
	LogFormat string

	// Letter archive
	StorageType      string
	StorageLocalPath string
	S3Bucket         string
	S3Region         string
	AWSAccessKey     string
	AWSSecretKey     string
	DatabaseURL      string

	MetricsEnabled bool
}

const maxAITimeout = 30 * time.Second

var defaults = map[string]interface{}{
	"PORT":               "8080",
	"GIN_MODE":           "release",
	"GEMINI_MODEL":       "gemini-1.5-flash",
	"AI_ENABLED":         true,
	"AI_TIMEOUT":         "8s",
	"LOG_LEVEL":          "info",
	"LOG_FORMAT":         "json",
	"STORAGE_TYPE":       "local",
	"STORAGE_LOCAL_PATH": "./storage/letters",
	"AWS_REGION":         "ap-northeast-2",
	"METRICS_ENABLED":    true,
}

// Load reads .env (current directory first, then the project root relative to
// cmd/*) and builds a validated Config from the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../../.env"); err != nil {
			log.Printf("Warning: No .env file found, using environment variables")
		}
	}
	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	for key, val := range defaults {
		v.SetDefault(key, val)
	}
	return v
}

// FromViper builds a Config from an already populated viper instance
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Port:             v.GetString("PORT"),
		GinMode:          v.GetString("GIN_MODE"),
		GeminiAPIKey:     v.GetString("GEMINI_API_KEY"),
		GeminiModel:      v.GetString("GEMINI_MODEL"),
		AIEnabled:        v.GetBool("AI_ENABLED"),
		AITimeout:        v.GetDuration("AI_TIMEOUT"),
		LogLevel:         strings.ToLower(v.GetString("LOG_LEVEL")),
		LogFormat:        strings.ToLower(v.GetString("LOG_FORMAT")),
		StorageType:      strings.ToLower(v.GetString("STORAGE_TYPE")),
		StorageLocalPath: v.GetString("STORAGE_LOCAL_PATH"),
		S3Bucket:         v.GetString("AWS_S3_BUCKET"),
		S3Region:         v.GetString("AWS_REGION"),
		AWSAccessKey:     v.GetString("AWS_ACCESS_KEY_ID"),
		AWSSecretKey:     v.GetString("AWS_SECRET_ACCESS_KEY"),
		DatabaseURL:      v.GetString("DATABASE_URL"),
		MetricsEnabled:   v.GetBool("METRICS_ENABLED"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints
func (c *Config) Validate() error {
	if c.Port == "" {
		return errors.New("PORT must not be empty")
	}
	if c.AITimeout <= 0 || c.AITimeout > maxAITimeout {
		return fmt.Errorf("AI_TIMEOUT must be within (0, %s], got %s", maxAITimeout, c.AITimeout)
	}
	switch c.LogFormat {
	case "json", "console":
	default:
		return fmt.Errorf("unknown LOG_FORMAT: %s", c.LogFormat)
	}
	switch c.StorageType {
	case "local":
		if c.StorageLocalPath == "" {
			return errors.New("STORAGE_LOCAL_PATH is required for local storage")
		}
	case "s3":
		if c.S3Bucket == "" {
			return errors.New("AWS_S3_BUCKET environment variable is required for S3 storage")
		}
	default:
		return fmt.Errorf("unknown storage type: %s", c.StorageType)
	}
	return nil
}

// AIConfigured reports whether the Gemini upstream should be used at all
func (c *Config) AIConfigured() bool {
	return c.AIEnabled && c.GeminiAPIKey != ""
}

// ArchiveEnabled reports whether rendered letters can be archived
func (c *Config) ArchiveEnabled() bool {
	return c.DatabaseURL != ""
}
