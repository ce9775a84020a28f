package config

import "fmt"

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type AuthConfig struct {
	// APIKey protects the whole HTTP surface. Supplied by clients in the
	// X-API-Key header.
	APIKey string `mapstructure:"api_key"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type RateLimitConfig struct {
	Enabled           bool `mapstructure:"enabled"`
	RequestsPerMinute int  `mapstructure:"requests_per_minute"`
	RequestsPerHour   int  `mapstructure:"requests_per_hour"`
	RequestsPerDay    int  `mapstructure:"requests_per_day"`
}

type ZendeskConfig struct {
	Subdomain string `mapstructure:"subdomain"`
	Email     string `mapstructure:"email"`
	APIToken  string `mapstructure:"api_token"`
}

func (z *ZendeskConfig) IsConfigured() bool {
	return z.Subdomain != "" && z.Email != "" && z.APIToken != ""
}

type BriefingConfig struct {
	// StaleAfterHours controls when a channel counts as stale in the
	// summary view.
	StaleAfterHours int `mapstructure:"stale_after_hours"`
	// GmailRetentionDays bounds how long gmail seen records are kept.
	GmailRetentionDays int `mapstructure:"gmail_retention_days"`
}
