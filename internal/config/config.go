package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the application configuration loaded from files and
// environment variables.
type Config struct {
	AppName  string `mapstructure:"app_name"`
	Env      string `mapstructure:"app_env"`
	LogLevel string `mapstructure:"log_level"`

	// MirrorsFile optionally points at a YAML mirror registry; empty means
	// the built-in mirrors.
	MirrorsFile string `mapstructure:"mirrors_file"`

	SearchEndpoint string `mapstructure:"search_endpoint"`

	MirrorTimeoutSeconds int64         `mapstructure:"mirror_timeout_seconds"`
	MirrorTimeout        time.Duration `mapstructure:"-"`

	// AdequateContentChars is the minimum container text length for a mirror
	// response to count as readable.
	AdequateContentChars int `mapstructure:"adequate_content_chars"`

	// RestrictionMarkers are the case-insensitive substrings that flag a page
	// as access-restricted.
	RestrictionMarkers []string `mapstructure:"restriction_markers"`
}

// Load reads configuration from environment variables and config files.
func Load() (*Config, error) {
	_ = godotenv.Load("configs/.env")

	v := viper.New()

	v.SetDefault("app_name", "medium-reader")
	v.SetDefault("app_env", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("mirrors_file", "")
	v.SetDefault("search_endpoint", "https://medium.com/search/posts")
	v.SetDefault("mirror_timeout_seconds", 15)
	v.SetDefault("adequate_content_chars", 500)
	v.SetDefault("restriction_markers", []string{"premium", "subscribe to read", "member only"})

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.MirrorTimeoutSeconds <= 0 {
		return nil, fmt.Errorf("invalid mirror_timeout_seconds (must be positive)")
	}
	cfg.MirrorTimeout = time.Duration(cfg.MirrorTimeoutSeconds) * time.Second

	if cfg.AdequateContentChars <= 0 {
		return nil, fmt.Errorf("invalid adequate_content_chars (must be positive)")
	}
	if cfg.SearchEndpoint == "" {
		return nil, fmt.Errorf("search_endpoint must not be empty")
	}

	return &cfg, nil
}
