package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Database  DatabaseConfig
	Redis     RedisConfig
	Server    ServerConfig
	Content   ContentConfig
	News      NewsConfig
	AI        AIConfig
	Logging   LoggingConfig
	Telemetry TelemetryConfig
}

// DatabaseConfig holds persistence configuration. When RemoteDSN is set and
// reachable at startup the remote Postgres backend is used; otherwise the
// local SQLite file is the backing store.
type DatabaseConfig struct {
	RemoteDSN string
	LocalPath string
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	URL     string
	Enabled bool
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port int
	Host string
}

// ContentConfig holds the channel registry and the start date of the seeded
// quote sequence
type ContentConfig struct {
	Channels       []string
	QuoteStartDate string
}

// NewsConfig holds news ingestion configuration
type NewsConfig struct {
	FeedURLs     []string
	Keywords     []string
	PollInterval int // seconds; 0 disables the background poller
}

// AIConfig holds generative AI configuration
type AIConfig struct {
	APIKey string
	Model  string
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string
	Format string // "json" or "text"
}

// TelemetryConfig holds observability configuration
type TelemetryConfig struct {
	Enabled           bool
	JaegerURL         string
	PrometheusEnabled bool
	PrometheusPort    int
	ServiceName       string
}

// Load loads configuration from environment variables and config file
func Load() (*Config, error) {
	// Set defaults
	setDefaults()

	// Load from environment
	viper.SetEnvPrefix("POSTDECK")
	viper.AutomaticEnv()

	// Load from config file if exists
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.postdeck")
	viper.AddConfigPath("/etc/postdeck")

	if err := viper.ReadInConfig(); err != nil {
		// Config file not found; this is OK if we have env vars
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{
		Database: DatabaseConfig{
			RemoteDSN: getString("database_url", ""),
			LocalPath: getString("local_db_path", "postdeck.db"),
		},
		Redis: RedisConfig{
			URL:     getString("redis_url", ""),
			Enabled: getString("redis_url", "") != "",
		},
		Server: ServerConfig{
			Port: getInt("http_server_port", 8080),
			Host: getString("http_server_host", "0.0.0.0"),
		},
		Content: ContentConfig{
			Channels:       getStringSlice("channels", []string{"linkedin", "instagram_personal", "instagram_secondary"}),
			QuoteStartDate: getString("quote_start_date", ""),
		},
		News: NewsConfig{
			FeedURLs:     getStringSlice("feed_urls", nil),
			Keywords:     getStringSlice("keywords", []string{"AI", "artificial intelligence", "machine learning", "LLM"}),
			PollInterval: getInt("news_poll_interval", 0),
		},
		AI: AIConfig{
			APIKey: getString("gemini_api_key", ""),
			Model:  getString("gemini_model", "gemini-2.0-flash"),
		},
		Logging: LoggingConfig{
			Level:  getString("log_level", "INFO"),
			Format: getString("log_format", "json"),
		},
		Telemetry: TelemetryConfig{
			Enabled:           getBool("telemetry_enabled", false),
			JaegerURL:         getString("jaeger_url", ""),
			PrometheusEnabled: getBool("prometheus_enabled", false),
			PrometheusPort:    getInt("prometheus_port", 9090),
			ServiceName:       getString("service_name", "postdeck"),
		},
	}

	// Validate required fields
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("database_url", "")
	viper.SetDefault("local_db_path", "postdeck.db")
	viper.SetDefault("http_server_port", 8080)
	viper.SetDefault("http_server_host", "0.0.0.0")
	viper.SetDefault("log_level", "INFO")
	viper.SetDefault("log_format", "json")
	viper.SetDefault("channels", []string{"linkedin", "instagram_personal", "instagram_secondary"})
	viper.SetDefault("gemini_model", "gemini-2.0-flash")
	viper.SetDefault("news_poll_interval", 0)
	viper.SetDefault("telemetry_enabled", false)
	viper.SetDefault("prometheus_enabled", false)
	viper.SetDefault("prometheus_port", 9090)
	viper.SetDefault("service_name", "postdeck")
}

func getString(key, defaultValue string) string {
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	// Also check environment variable directly
	if val := os.Getenv("POSTDECK_" + toEnvKey(key)); val != "" {
		return val
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	if viper.IsSet(key) {
		return viper.GetInt(key)
	}
	if val := os.Getenv("POSTDECK_" + toEnvKey(key)); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultValue
}

func getBool(key string, defaultValue bool) bool {
	if viper.IsSet(key) {
		return viper.GetBool(key)
	}
	if val := os.Getenv("POSTDECK_" + toEnvKey(key)); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return defaultValue
}

func getStringSlice(key string, defaultValue []string) []string {
	if viper.IsSet(key) {
		return viper.GetStringSlice(key)
	}
	// Environment variables carry lists as comma-separated values
	if val := os.Getenv("POSTDECK_" + toEnvKey(key)); val != "" {
		parts := strings.Split(val, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		return out
	}
	return defaultValue
}

func toEnvKey(key string) string {
	// Convert snake_case to UPPER_SNAKE_CASE
	result := ""
	for _, r := range key {
		if r == '-' || r == '_' {
			result += "_"
		} else {
			result += string(r)
		}
	}
	return strings.ToUpper(result)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.RemoteDSN == "" && c.Database.LocalPath == "" {
		return fmt.Errorf("either database_url or local_db_path is required")
	}
	if len(c.Content.Channels) == 0 {
		return fmt.Errorf("at least one channel is required")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("http_server_port must be between 1 and 65535")
	}
	if c.News.PollInterval < 0 {
		return fmt.Errorf("news_poll_interval must not be negative")
	}
	if c.Content.QuoteStartDate != "" && len(c.Content.QuoteStartDate) != 10 {
		return fmt.Errorf("quote_start_date must be YYYY-MM-DD")
	}
	return nil
}
