package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"isocity/internal/domain/city"
	"isocity/internal/domain/economy"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr          string `yaml:"addr"`
	DBDSN         string `yaml:"db_dsn"`
	Level         string `yaml:"level"`
	TilemapSize   int    `yaml:"tilemap_size"`
	StartingGold  int64  `yaml:"starting_gold"`
	UpkeepSeconds int    `yaml:"upkeep_seconds"`
	UpkeepRate    int64  `yaml:"upkeep_rate"`
	TickMillis    int    `yaml:"tick_millis"`
	RateLimit     Rate   `yaml:"rate_limit"`
	CORSOrigin    string `yaml:"cors_origin"`
}

type Rate struct {
	PerSecond float64 `yaml:"per_second"`
	Burst     int     `yaml:"burst"`
}

func Default() Config {
	return Config{
		Addr:          ":8080",
		TilemapSize:   32,
		StartingGold:  economy.DefaultStartingGold,
		UpkeepSeconds: int(economy.DefaultUpkeepInterval / time.Second),
		UpkeepRate:    economy.DefaultUpkeepRate,
		TickMillis:    100,
		RateLimit:     Rate{PerSecond: 20, Burst: 40},
	}
}

// Load starts from Default, applies the YAML file named by ISOCITY_CONFIG
// when set, then applies env overrides.
func Load() (Config, error) {
	cfg := Default()
	if path := strings.TrimSpace(os.Getenv("ISOCITY_CONFIG")); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("decode config %s: %w", path, err)
		}
	}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Addr = stringEnv("ISOCITY_ADDR", c.Addr)
	c.DBDSN = stringEnv("ISOCITY_DB_DSN", c.DBDSN)
	c.Level = stringEnv("ISOCITY_LEVEL", c.Level)
	c.TilemapSize = intEnv("ISOCITY_TILEMAP_SIZE", c.TilemapSize)
	c.StartingGold = int64(intEnv("ISOCITY_STARTING_GOLD", int(c.StartingGold)))
	c.UpkeepSeconds = intEnv("ISOCITY_UPKEEP_SECONDS", c.UpkeepSeconds)
	c.UpkeepRate = int64(intEnv("ISOCITY_UPKEEP_RATE", int(c.UpkeepRate)))
	c.TickMillis = intEnv("ISOCITY_TICK_MILLIS", c.TickMillis)
	c.RateLimit.PerSecond = floatEnv("ISOCITY_RATE_LIMIT", c.RateLimit.PerSecond)
	c.RateLimit.Burst = intEnv("ISOCITY_RATE_LIMIT_BURST", c.RateLimit.Burst)
	c.CORSOrigin = stringEnv("ISOCITY_CORS_ORIGIN", c.CORSOrigin)
}

func (c Config) Validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("config: addr is empty")
	case c.Level == "" && c.TilemapSize <= 0:
		return fmt.Errorf("config: tilemap_size must be positive, got %d", c.TilemapSize)
	case c.UpkeepSeconds <= 0:
		return fmt.Errorf("config: upkeep_seconds must be positive, got %d", c.UpkeepSeconds)
	case c.UpkeepRate < 0:
		return fmt.Errorf("config: upkeep_rate must not be negative, got %d", c.UpkeepRate)
	case c.TickMillis <= 0:
		return fmt.Errorf("config: tick_millis must be positive, got %d", c.TickMillis)
	case c.RateLimit.PerSecond <= 0:
		return fmt.Errorf("config: rate_limit.per_second must be positive, got %g", c.RateLimit.PerSecond)
	case c.RateLimit.Burst <= 0:
		return fmt.Errorf("config: rate_limit.burst must be positive, got %d", c.RateLimit.Burst)
	}
	return nil
}

func (c Config) City() city.Config {
	return city.Config{
		StartingGold:   c.StartingGold,
		UpkeepRate:     c.UpkeepRate,
		UpkeepInterval: time.Duration(c.UpkeepSeconds) * time.Second,
	}
}

func (c Config) Tick() time.Duration {
	return time.Duration(c.TickMillis) * time.Millisecond
}

func stringEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func intEnv(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func floatEnv(key string, fallback float64) float64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}
