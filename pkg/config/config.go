// Package config loads server configuration from a TOML file with
// environment variable overrides. A .env file in the working directory
// is honored when present, so local development and container
// deployments share the same override surface.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Defaults applied before the file and environment are consulted.
const (
	DefaultAddr          = ":8080"
	DefaultCacheBackend  = "file"
	DefaultStoreBackend  = "memory"
	DefaultRedisAddr     = "localhost:6379"
	DefaultMongoURI      = "mongodb://localhost:27017"
	DefaultMongoDatabase = "gridroute"
	DefaultCollection    = "solutions"
	DefaultBudget        = 1000000
	DefaultTTLSeconds    = 0 // no expiry; solve results never go stale
)

// Config holds the full application configuration.
type Config struct {
	Server ServerConfig `toml:"server"`
	Cache  CacheConfig  `toml:"cache"`
	Store  StoreConfig  `toml:"store"`
	Solver SolverConfig `toml:"solver"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr string `toml:"addr"` // listen address, e.g. ":8080"
}

// CacheConfig selects and configures the solve-result cache backend.
type CacheConfig struct {
	Backend       string `toml:"backend"` // "file", "redis", or "none"
	Dir           string `toml:"dir"`     // file backend; empty = XDG default
	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`
	TTLSeconds    int    `toml:"ttl_seconds"` // 0 = no expiry
}

// StoreConfig selects and configures solution persistence.
type StoreConfig struct {
	Backend    string `toml:"backend"` // "memory" or "mongo"
	MongoURI   string `toml:"mongo_uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

// SolverConfig carries solver defaults applied when a request omits them.
type SolverConfig struct {
	DefaultBudget uint32 `toml:"default_budget"`
}

// Default returns the configuration used when no file and no overrides
// are present.
func Default() Config {
	return Config{
		Server: ServerConfig{Addr: DefaultAddr},
		Cache: CacheConfig{
			Backend:    DefaultCacheBackend,
			RedisAddr:  DefaultRedisAddr,
			TTLSeconds: DefaultTTLSeconds,
		},
		Store: StoreConfig{
			Backend:    DefaultStoreBackend,
			MongoURI:   DefaultMongoURI,
			Database:   DefaultMongoDatabase,
			Collection: DefaultCollection,
		},
		Solver: SolverConfig{DefaultBudget: DefaultBudget},
	}
}

// Load builds the configuration from defaults, then the TOML file at
// path (skipped when path is empty), then environment variables. A .env
// file is loaded first when present; missing .env is not an error.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("decode config %s: %w", path, err)
		}
	}

	applyEnv(&cfg)

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyEnv overrides file values with GRIDROUTE_* environment variables.
func applyEnv(cfg *Config) {
	setString(&cfg.Server.Addr, "GRIDROUTE_ADDR")
	setString(&cfg.Cache.Backend, "GRIDROUTE_CACHE_BACKEND")
	setString(&cfg.Cache.Dir, "GRIDROUTE_CACHE_DIR")
	setString(&cfg.Cache.RedisAddr, "GRIDROUTE_REDIS_ADDR")
	setString(&cfg.Cache.RedisPassword, "GRIDROUTE_REDIS_PASSWORD")
	setInt(&cfg.Cache.RedisDB, "GRIDROUTE_REDIS_DB")
	setInt(&cfg.Cache.TTLSeconds, "GRIDROUTE_CACHE_TTL_SECONDS")
	setString(&cfg.Store.Backend, "GRIDROUTE_STORE_BACKEND")
	setString(&cfg.Store.MongoURI, "GRIDROUTE_MONGO_URI")
	setString(&cfg.Store.Database, "GRIDROUTE_MONGO_DATABASE")
	setString(&cfg.Store.Collection, "GRIDROUTE_MONGO_COLLECTION")

	if v, ok := os.LookupEnv("GRIDROUTE_DEFAULT_BUDGET"); ok {
		if n, err := strconv.ParseUint(v, 10, 32); err == nil {
			cfg.Solver.DefaultBudget = uint32(n)
		}
	}
}

func (c Config) validate() error {
	switch c.Cache.Backend {
	case "file", "redis", "none":
	default:
		return fmt.Errorf("invalid cache backend %q (must be file, redis, or none)", c.Cache.Backend)
	}
	switch c.Store.Backend {
	case "memory", "mongo":
	default:
		return fmt.Errorf("invalid store backend %q (must be memory or mongo)", c.Store.Backend)
	}
	if c.Solver.DefaultBudget == 0 {
		return fmt.Errorf("default budget must be positive")
	}
	return nil
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}
