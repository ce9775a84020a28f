package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"

	sharedConfig "briefing/internal/shared/config"
)

type Config struct {
	Server    sharedConfig.ServerConfig    `mapstructure:"server"`
	Database  sharedConfig.DatabaseConfig  `mapstructure:"database"`
	Logger    sharedConfig.LoggerConfig    `mapstructure:"logger"`
	Auth      sharedConfig.AuthConfig      `mapstructure:"auth"`
	Redis     sharedConfig.RedisConfig     `mapstructure:"redis"`
	RateLimit sharedConfig.RateLimitConfig `mapstructure:"ratelimit"`
	Zendesk   sharedConfig.ZendeskConfig   `mapstructure:"zendesk"`
	Briefing  sharedConfig.BriefingConfig  `mapstructure:"briefing"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load loads configuration from file and environment variables
func Load(env string) (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("../configs")
	viper.AddConfigPath("../../configs")

	viper.SetEnvPrefix("BRIEFING")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Allow env parameter to override server mode if provided
	if env != "" && env != "default" {
		viper.Set("server.mode", env)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Get returns the loaded configuration
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

func setDefaults() {
	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.mode", "debug")

	// Database defaults
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 3306)
	viper.SetDefault("database.username", "root")
	viper.SetDefault("database.password", "password")
	viper.SetDefault("database.database", "briefing_dev")
	viper.SetDefault("database.max_idle_conns", 10)
	viper.SetDefault("database.max_open_conns", 100)
	viper.SetDefault("database.conn_max_lifetime", 60)

	// Logger defaults
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.format", "console")
	viper.SetDefault("logger.output_path", "stdout")

	// Auth defaults. An empty key disables auth, for local development only.
	viper.SetDefault("auth.api_key", "")

	// Redis defaults
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)

	// Rate limit defaults
	viper.SetDefault("ratelimit.enabled", false)
	viper.SetDefault("ratelimit.requests_per_minute", 120)
	viper.SetDefault("ratelimit.requests_per_hour", 2000)
	viper.SetDefault("ratelimit.requests_per_day", 20000)

	// Zendesk defaults. All three values must be set for ticket pushes
	// to work; reconciliation reports failures otherwise.
	viper.SetDefault("zendesk.subdomain", "")
	viper.SetDefault("zendesk.email", "")
	viper.SetDefault("zendesk.api_token", "")

	// Briefing defaults
	viper.SetDefault("briefing.stale_after_hours", 24)
	viper.SetDefault("briefing.gmail_retention_days", 30)
}
