package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration. It is built once at startup and
// passed by reference into the stateless handlers; nothing reads the
// environment after Load returns.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Telegram   TelegramConfig   `mapstructure:"telegram"`
	TMDB       TMDBConfig       `mapstructure:"tmdb"`
	Commentary CommentaryConfig `mapstructure:"commentary"`
	Mongo      MongoConfig      `mapstructure:"mongo"`
	News       NewsConfig       `mapstructure:"news"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// ServerConfig holds webhook HTTP server configuration.
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// TelegramConfig holds the bot credential and the allow-list.
type TelegramConfig struct {
	Token   string `mapstructure:"token"`
	OwnerID int64  `mapstructure:"owner_id"`
	GroupID int64  `mapstructure:"group_id"`
	// Mention is the bot's @handle, required on group messages.
	Mention string `mapstructure:"mention"`
}

// TMDBConfig holds the metadata API configuration.
type TMDBConfig struct {
	APIKey       string `mapstructure:"api_key"`
	BaseURL      string `mapstructure:"base_url"`
	ImageBaseURL string `mapstructure:"image_base_url"`
	Language     string `mapstructure:"language"`
	Timeout      int    `mapstructure:"timeout"`
}

// CommentaryConfig holds the LLM completion endpoint configuration.
type CommentaryConfig struct {
	APIKey      string  `mapstructure:"api_key"`
	BaseURL     string  `mapstructure:"base_url"`
	Model       string  `mapstructure:"model"`
	Temperature float64 `mapstructure:"temperature"`
	Timeout     int     `mapstructure:"timeout"`
}

// MongoConfig holds the optional session/dedup store configuration.
type MongoConfig struct {
	URI      string `mapstructure:"uri"`
	Database string `mapstructure:"database"`
}

// NewsConfig holds the news scraper and auto-poster configuration.
type NewsConfig struct {
	Enabled       bool   `mapstructure:"enabled"`
	URL           string `mapstructure:"url"`
	ItemSelector  string `mapstructure:"item_selector"`
	TitleSelector string `mapstructure:"title_selector"`
	LinkSelector  string `mapstructure:"link_selector"`
	Cron          string `mapstructure:"cron"`
	MaxPerRun     int    `mapstructure:"max_per_run"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Path   string `mapstructure:"path"`
}

// Load reads configuration from an optional YAML file and the environment.
// Priority: environment variables > config file > defaults.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
	}

	v.SetEnvPrefix("SKELETOR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// No config file: defaults + env vars.
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)

	v.SetDefault("telegram.token", "")
	v.SetDefault("telegram.owner_id", 0)
	v.SetDefault("telegram.group_id", 0)
	v.SetDefault("telegram.mention", "")

	v.SetDefault("tmdb.api_key", "")
	v.SetDefault("tmdb.base_url", "https://api.themoviedb.org/3")
	v.SetDefault("tmdb.image_base_url", "https://image.tmdb.org/t/p")
	v.SetDefault("tmdb.language", "es")
	v.SetDefault("tmdb.timeout", 9)

	v.SetDefault("commentary.api_key", "")
	v.SetDefault("commentary.base_url", "https://api.moonshot.cn")
	v.SetDefault("commentary.model", "moonshot-v1-8k")
	v.SetDefault("commentary.temperature", 0.7)
	v.SetDefault("commentary.timeout", 60)

	v.SetDefault("mongo.uri", "")
	v.SetDefault("mongo.database", "skeletor")

	v.SetDefault("news.enabled", false)
	v.SetDefault("news.url", "")
	v.SetDefault("news.item_selector", "article")
	v.SetDefault("news.title_selector", "h2")
	v.SetDefault("news.link_selector", "a")
	v.SetDefault("news.cron", "0 */6 * * *")
	v.SetDefault("news.max_per_run", 3)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.path", "")
}

// Address returns the server address string.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
