package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

var ErrMissingAPIKey = errors.New("alphavantage api key is required")

type Server struct {
	Port              string `json:"port" toml:"port"`
	RequestTimeoutSec int    `json:"request_timeout_sec" toml:"request_timeout_sec"`
}

type AlphaVantage struct {
	APIKey                string `json:"api_key" toml:"api_key"`
	BaseURL               string `json:"base_url" toml:"base_url"`
	TimeoutSec            int    `json:"timeout_sec" toml:"timeout_sec"`
	MaxRequestsPerMinute  int    `json:"max_requests_per_minute" toml:"max_requests_per_minute"`
	Burst                 int    `json:"burst" toml:"burst"`
	MinRequestIntervalSec int    `json:"min_request_interval_sec" toml:"min_request_interval_sec"`
}

type Cache struct {
	// Backend is "memory", "redis" or empty to disable caching.
	Backend       string `json:"backend" toml:"backend"`
	TTLSeconds    int    `json:"ttl_sec" toml:"ttl_sec"`
	MaxItems      int    `json:"max_items" toml:"max_items"`
	RedisAddr     string `json:"redis_addr" toml:"redis_addr"`
	RedisPassword string `json:"redis_password" toml:"redis_password"`
}

type Log struct {
	Level       string `json:"level" toml:"level"`
	Development bool   `json:"development" toml:"development"`
	File        string `json:"file" toml:"file"`
	MaxSizeMB   int    `json:"max_size_mb" toml:"max_size_mb"`
}

type Config struct {
	Server       Server       `json:"server" toml:"server"`
	AlphaVantage AlphaVantage `json:"alphavantage" toml:"alphavantage"`
	Cache        Cache        `json:"cache" toml:"cache"`
	Log          Log          `json:"log" toml:"log"`
}

func Default() Config {
	return Config{
		Server: Server{Port: "8080", RequestTimeoutSec: 10},
		AlphaVantage: AlphaVantage{
			BaseURL:              "https://www.alphavantage.co",
			TimeoutSec:           10,
			MaxRequestsPerMinute: 5,
			Burst:                5,
		},
		Cache: Cache{
			TTLSeconds: 60,
			MaxItems:   10000,
			RedisAddr:  "localhost:6379",
		},
		Log: Log{Level: "info", MaxSizeMB: 100},
	}
}

// Load reads config from path, JSON unless the file ends in .toml. If path is
// empty it falls back to config.json when present. A missing file yields the
// defaults. Environment variables override select fields for secrecy.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		if _, err := os.Stat("config.json"); err == nil {
			path = "config.json"
		}
	}
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err == nil {
			if err := decode(path, b, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config: %w", err)
			}
		}
	}
	applyEnv(&cfg)
	return cfg, nil
}

func decode(path string, b []byte, cfg *Config) error {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		_, err := toml.Decode(string(b), cfg)
		return err
	}
	return json.Unmarshal(b, cfg)
}

// Validate reports settings the service cannot start without.
func (c Config) Validate() error {
	if strings.TrimSpace(c.AlphaVantage.APIKey) == "" {
		return ErrMissingAPIKey
	}
	switch c.Cache.Backend {
	case "", "memory", "redis":
	default:
		return fmt.Errorf("unknown cache backend %q", c.Cache.Backend)
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("PORT"); v != "" {
		cfg.Server.Port = v
	}
	if x, ok := envInt("REQUEST_TIMEOUT_SEC"); ok && x > 0 {
		cfg.Server.RequestTimeoutSec = x
	}
	if v := os.Getenv("ALPHAVANTAGE_API_KEY"); v != "" {
		cfg.AlphaVantage.APIKey = v
	}
	if v := os.Getenv("ALPHAVANTAGE_BASE_URL"); v != "" {
		cfg.AlphaVantage.BaseURL = v
	}
	if x, ok := envInt("ALPHAVANTAGE_MAX_RPM"); ok && x >= 0 {
		cfg.AlphaVantage.MaxRequestsPerMinute = x
	}
	if x, ok := envInt("ALPHAVANTAGE_BURST"); ok && x > 0 {
		cfg.AlphaVantage.Burst = x
	}
	if x, ok := envInt("ALPHAVANTAGE_MIN_INTERVAL_SEC"); ok && x >= 0 {
		cfg.AlphaVantage.MinRequestIntervalSec = x
	}
	if v, ok := os.LookupEnv("CACHE_BACKEND"); ok {
		cfg.Cache.Backend = strings.ToLower(strings.TrimSpace(v))
	}
	if x, ok := envInt("CACHE_TTL_SEC"); ok && x >= 0 {
		cfg.Cache.TTLSeconds = x
	}
	if x, ok := envInt("CACHE_MAX_ITEMS"); ok && x > 0 {
		cfg.Cache.MaxItems = x
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Cache.RedisAddr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Cache.RedisPassword = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
}

// envInt reports false when the variable is unset or not an integer.
func envInt(key string) (int, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	x, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, false
	}
	return x, true
}
