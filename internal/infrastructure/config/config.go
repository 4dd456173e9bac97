package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Session backends.
const (
	SessionBackendMemory = "memory"
	SessionBackendRedis  = "redis"
)

type Config struct {
	Port     string `env:"PORT,     default=8080"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Store   StoreConfig
	Seed    SeedConfig
	Session SessionConfig
	Redis   RedisConfig
}

type StoreConfig struct {
	Path string `env:"SQLITE_PATH, default=database/app.db"`
}

type SeedConfig struct {
	Path string `env:"SEED_FILE, default=userauth.json"`
}

type SessionConfig struct {
	Backend string        `env:"SESSION_BACKEND, default=memory"`
	TTL     time.Duration `env:"SESSION_TTL, default=24h"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,  default=0"`
}

// Development reports whether the process runs in a development environment.
// Session cookies are only marked Secure outside development.
func (c *Config) Development() bool {
	return c.Env == "development"
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
