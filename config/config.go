package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
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
	Server     ServerConfig

	// Lists
	Store StoreConfig
	Cache CacheConfig
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

// ServerConfig tunes the store server.
type ServerConfig struct {
	RateLimitPerMin int
}

// StoreConfig describes the remote list collection. BaseURL and Timeout are
// used by clients, DataFile by the server.
type StoreConfig struct {
	BaseURL         string
	Timeout         time.Duration
	RateLimitPerSec float64
	DataFile        string
}

type CacheConfig struct {
	Enabled bool
	Path    string
	Key     string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/todolist/
func Load() (*Config, error) {
	return LoadFile("")
}

// LoadFile is Load with an explicit config file. An empty path falls back to
// the default search paths.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/todolist/")
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.Server.RateLimitPerMin = v.GetInt("server.rate_limit_per_min")

	// Store
	cfg.Store.BaseURL = v.GetString("store.base_url")
	cfg.Store.Timeout = v.GetDuration("store.timeout")
	cfg.Store.RateLimitPerSec = v.GetFloat64("store.rate_limit_per_sec")
	cfg.Store.DataFile = v.GetString("store.data_file")

	// Cache
	cfg.Cache.Enabled = v.GetBool("cache.enabled")
	cfg.Cache.Path = v.GetString("cache.path")
	cfg.Cache.Key = v.GetString("cache.key")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.HTTPServer.Port <= 0 {
		return fmt.Errorf("http_server.port must be positive, got %d", cfg.HTTPServer.Port)
	}
	u, err := url.Parse(cfg.Store.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("store.base_url %q is not an absolute URL", cfg.Store.BaseURL)
	}
	if cfg.Store.Timeout <= 0 {
		return fmt.Errorf("store.timeout must be positive, got %s", cfg.Store.Timeout)
	}
	if cfg.Store.RateLimitPerSec < 0 {
		return fmt.Errorf("store.rate_limit_per_sec must not be negative")
	}
	if cfg.Cache.Enabled && cfg.Cache.Path == "" {
		return errors.New("cache.path is required when cache.enabled is true")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 3000)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("server.rate_limit_per_min", 600)

	v.SetDefault("store.base_url", "http://localhost:3000")
	v.SetDefault("store.timeout", "10s")
	v.SetDefault("store.rate_limit_per_sec", 0)
	v.SetDefault("store.data_file", "data/lists.json")

	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.path", defaultCachePath())
	v.SetDefault("cache.key", "todoLists")
}

func defaultCachePath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join(".", ".todolist-cache.json")
	}
	return filepath.Join(dir, "todolist", "cache.json")
}
