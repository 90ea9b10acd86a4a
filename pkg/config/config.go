// ABOUTME: Configuration management loaded from YAML and environment variables via cleanenv
// ABOUTME: Defines server, cache, news, logging and source settings with built-in source defaults

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"news-aggregator-api/core/domain"
)

// DefaultConfigFile is read from the working directory when no path is given
const DefaultConfigFile = "config.yaml"

// Config holds all application configuration.
// Source priority:
//  1. explicit path passed to Load;
//  2. the CONFIG_PATH environment variable;
//  3. ./config.yaml in the working directory;
//  4. environment variables only.
//
// Environment variables override file values in every case.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Cache   CacheConfig   `yaml:"cache"`
	News    NewsConfig    `yaml:"news"`
	Log     LogConfig     `yaml:"log"`
	Sources SourcesConfig `yaml:"sources"`
}

// ServerConfig holds HTTP server and refresh configuration
type ServerConfig struct {
	Port             string        `yaml:"port"              env:"PORT"              env-default:"8000"`
	RefreshInterval  time.Duration `yaml:"refresh_interval"  env:"REFRESH_INTERVAL"  env-default:"1h"`
	FetchTimeout     time.Duration `yaml:"fetch_timeout"     env:"FETCH_TIMEOUT"     env-default:"8s"`
	FetchConcurrency int           `yaml:"fetch_concurrency" env:"FETCH_CONCURRENCY" env-default:"8"`

	// RateLimit requests are allowed per client IP every RateWindow
	RateLimit  int           `yaml:"rate_limit"  env:"RATE_LIMIT"  env-default:"100"`
	RateWindow time.Duration `yaml:"rate_window" env:"RATE_WINDOW" env-default:"1m"`
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (memory/redis/sqlite)
	Type       string       `yaml:"type"        env:"CACHE_TYPE"        env-default:"memory"`
	TTLSeconds int          `yaml:"ttl_seconds" env:"CACHE_TTL_SECONDS" env-default:"3600"`
	Redis      RedisConfig  `yaml:"redis"`
	SQLite     SQLiteConfig `yaml:"sqlite"`
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	Address  string `yaml:"address"  env:"REDIS_ADDRESS"  env-default:"localhost:6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db"       env:"REDIS_DB"       env-default:"0"`
}

// SQLiteConfig holds SQLite-specific configuration
type SQLiteConfig struct {
	Path string `yaml:"path" env:"SQLITE_PATH" env-default:"data/news-cache.db"`
}

// NewsConfig holds aggregation and presentation settings
type NewsConfig struct {
	// MaxTotalItems bounds the aggregate; 0 means no bound
	MaxTotalItems     int    `yaml:"max_total_items"     env:"MAX_NEWS_ITEMS"      env-default:"50"`
	DefaultCoverImage string `yaml:"default_cover_image" env:"DEFAULT_COVER_IMAGE" env-default:"https://via.placeholder.com/800x450/1a1a1a/ffffff?text=GameHub+News"`
	UserAgent         string `yaml:"user_agent"          env:"USER_AGENT"          env-default:"GameHub-News-Aggregator/1.0"`
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
	File   string `yaml:"file"   env:"LOG_FILE"`
}

// SourcesConfig lists the configured upstream feeds per family
type SourcesConfig struct {
	Syndication []SyndicationSource `yaml:"syndication"`
	Release     []ReleaseSource     `yaml:"release"`
	Video       []VideoSource       `yaml:"video"`
}

// SyndicationSource is a plain RSS/Atom feed
type SyndicationSource struct {
	ID       string `yaml:"id"       json:"id"`
	URL      string `yaml:"url"      json:"url"`
	Title    string `yaml:"title"    json:"title"`
	Subtitle string `yaml:"subtitle" json:"subtitle"`
}

// ReleaseSource is a repository release feed
type ReleaseSource struct {
	ID       string `yaml:"id"       json:"id"`
	Owner    string `yaml:"owner"    json:"owner"`
	Repo     string `yaml:"repo"     json:"repo"`
	Subtitle string `yaml:"subtitle" json:"subtitle"`
}

// VideoSource is a video channel feed
type VideoSource struct {
	ID        string `yaml:"id"         json:"id"`
	ChannelID string `yaml:"channel_id" json:"channelId"`
	Title     string `yaml:"title"      json:"title"`
	Subtitle  string `yaml:"subtitle"   json:"subtitle"`
}

// IsEmpty reports whether no source of any family is configured
func (s SourcesConfig) IsEmpty() bool {
	return len(s.Syndication) == 0 && len(s.Release) == 0 && len(s.Video) == 0
}

// ToDomain converts the configured sources into domain feed sources
func (s SourcesConfig) ToDomain() domain.Sources {
	out := domain.Sources{
		Syndication: make([]domain.FeedSource, 0, len(s.Syndication)),
		Release:     make([]domain.FeedSource, 0, len(s.Release)),
		Video:       make([]domain.FeedSource, 0, len(s.Video)),
	}
	for _, src := range s.Syndication {
		out.Syndication = append(out.Syndication, domain.FeedSource{
			ID: src.ID, Kind: domain.KindSyndication, URL: src.URL, Title: src.Title, Subtitle: src.Subtitle,
		})
	}
	for _, src := range s.Release {
		out.Release = append(out.Release, domain.FeedSource{
			ID: src.ID, Kind: domain.KindRelease, Owner: src.Owner, Repo: src.Repo, Subtitle: src.Subtitle,
		})
	}
	for _, src := range s.Video {
		out.Video = append(out.Video, domain.FeedSource{
			ID: src.ID, Kind: domain.KindVideo, ChannelID: src.ChannelID, Title: src.Title, Subtitle: src.Subtitle,
		})
	}
	return out
}

// MustLoad wraps Load and panics on error
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load reads configuration by priority: explicit path, CONFIG_PATH, ./config.yaml, env only.
// Missing sources are replaced with the built-in defaults before validation.
func Load(path string) (*Config, error) {
	var cfg Config

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}

	switch {
	case path != "":
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file does not exist: %s", path)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	case fileExists(DefaultConfigFile):
		if err := cleanenv.ReadConfig(DefaultConfigFile, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", DefaultConfigFile, err)
		}
	default:
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	}

	if cfg.Sources.IsEmpty() {
		cfg.Sources = DefaultSources()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// CacheTTL returns the cache TTL as a duration
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.Cache.TTLSeconds) * time.Second
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.Server.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("port must be a number between 1 and 65535, got %q", c.Server.Port)
	}

	if c.Server.RefreshInterval < time.Minute {
		return errors.New("refresh interval must be at least 1m")
	}

	if c.Server.FetchTimeout <= 0 {
		return errors.New("fetch timeout must be positive")
	}

	if c.Server.FetchConcurrency < 1 {
		return errors.New("fetch concurrency must be at least 1")
	}

	if c.Server.RateLimit < 1 || c.Server.RateWindow <= 0 {
		return errors.New("rate limit and rate window must be positive")
	}

	switch c.Cache.Type {
	case "memory":
	case "redis":
		if c.Cache.Redis.Address == "" {
			return errors.New("redis address cannot be empty when using redis cache")
		}
	case "sqlite":
		if c.Cache.SQLite.Path == "" {
			return errors.New("sqlite path cannot be empty when using sqlite cache")
		}
	default:
		return errors.New("cache type must be 'memory', 'redis' or 'sqlite'")
	}

	if c.Cache.TTLSeconds < 1 {
		return errors.New("cache ttl must be at least 1 second")
	}

	if c.News.MaxTotalItems < 0 {
		return errors.New("max news items cannot be negative")
	}

	if c.News.UserAgent == "" {
		return errors.New("user agent cannot be empty")
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log level must be debug, info, warn or error, got %q", c.Log.Level)
	}

	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("log format must be 'text' or 'json', got %q", c.Log.Format)
	}

	return c.Sources.ToDomain().Validate()
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
