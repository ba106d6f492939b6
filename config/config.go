package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Chat session manager specifics
	Remote    RemoteConfig
	Auth      AuthConfig
	Chat      ChatConfig
	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// RemoteConfig points at the question-answering service.
type RemoteConfig struct {
	BaseURL string
}

// AuthConfig points at the credential service and carries the fallback
// account used for transparent credential acquisition.
type AuthConfig struct {
	BaseURL          string
	FallbackUsername string
	FallbackPassword string
	VerifyCacheTTL   time.Duration
}

type ChatConfig struct {
	MaxHistory int
}

type RateLimitConfig struct {
	PerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Remote question-answering service
	cfg.Remote.BaseURL = viper.GetString("remote.base_url")
	if remoteURL := viper.GetString("remote_base_url"); remoteURL != "" {
		cfg.Remote.BaseURL = remoteURL
	}

	// Credential service
	cfg.Auth.BaseURL = viper.GetString("auth.base_url")
	cfg.Auth.FallbackUsername = viper.GetString("auth.fallback_username")
	cfg.Auth.FallbackPassword = viper.GetString("auth.fallback_password")
	cfg.Auth.VerifyCacheTTL = viper.GetDuration("auth.verify_cache_ttl")
	if authURL := viper.GetString("auth_base_url"); authURL != "" {
		cfg.Auth.BaseURL = authURL
	}
	if username := viper.GetString("auth_fallback_username"); username != "" {
		cfg.Auth.FallbackUsername = username
	}
	if password := viper.GetString("auth_fallback_password"); password != "" {
		cfg.Auth.FallbackPassword = password
	}
	// The auth service defaults to the QA service host when not set
	// separately.
	if cfg.Auth.BaseURL == "" {
		cfg.Auth.BaseURL = cfg.Remote.BaseURL
	}

	// Conversation window and throttling
	cfg.Chat.MaxHistory = viper.GetInt("chat.max_history")
	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.Remote.BaseURL == "" {
		return fmt.Errorf("remote.base_url is required")
	}
	if cfg.Auth.FallbackUsername == "" || cfg.Auth.FallbackPassword == "" {
		return fmt.Errorf("auth.fallback_username and auth.fallback_password are required")
	}
	if cfg.Chat.MaxHistory < 0 {
		return fmt.Errorf("chat.max_history must not be negative")
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("auth.verify_cache_ttl", "1m")
	viper.SetDefault("chat.max_history", 10)
	viper.SetDefault("rate_limit.per_min", 30)
}
