package config

import (
	"context"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port        string `env:"PORT,         default=8080"`
	BindAddr    string `env:"BIND_ADDR,    default=127.0.0.1"`
	Env         string `env:"ENV,          default=development"`
	LogLevel    string `env:"LOG_LEVEL,    default=info"`
	DesktopMode bool   `env:"DESKTOP_MODE, default=true"`

	DB     DBConfig
	Auth   AuthConfig
	Redis  RedisConfig
	Import ImportConfig
}

type DBConfig struct {
	Driver   string `env:"DB_DRIVER,    default=sqlite"`
	URL      string `env:"DATABASE_URL, default=gym.db"`
	LogLevel string `env:"DB_LOG_LEVEL, default=warn"`
	SeedFile string `env:"SEED_FILE"`
}

type AuthConfig struct {
	BcryptCost int           `env:"BCRYPT_COST, default=10"`
	SessionTTL time.Duration `env:"SESSION_TTL, default=0s"`
	LoginRate  float64       `env:"LOGIN_RATE,  default=1"`
	LoginBurst int           `env:"LOGIN_BURST, default=5"`
}

type RedisConfig struct {
	Addr       string        `env:"REDIS_ADDR"`
	Password   string        `env:"REDIS_PASSWORD"`
	DB         int           `env:"REDIS_DB,          default=0"`
	SessionTTL time.Duration `env:"SESSION_CACHE_TTL, default=15m"`
}

type ImportConfig struct {
	Workers int `env:"IMPORT_WORKERS, default=4"`
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return c.BindAddr + ":" + c.Port
}

// IsProduction disables pretty console logging.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads an optional .env file and then the process environment.
// Variables already set in the environment win over the file.
func Load(ctx context.Context) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.Auth.BcryptCost < 4 || cfg.Auth.BcryptCost > 31 {
		return nil, fmt.Errorf("config: BCRYPT_COST must be between 4 and 31, got %d", cfg.Auth.BcryptCost)
	}
	return &cfg, nil
}
