package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Env string

const (
	Env_Test = "test"
	Env_Dev  = "dev"
)

type Config struct {
	// server
	ApiServerPort string `env:"APISERVER_PORT" envDefault:"3000"`
	ApiServerHost string `env:"APISERVER_HOST" envDefault:"localhost"`

	// DB
	DatabasePath string `env:"DB_PATH" envDefault:"database.db"`

	// Test DB
	DatabasePathTest string `env:"DB_PATH_TEST" envDefault:":memory:"`

	// app
	AppName       string `env:"APP_NAME" envDefault:"library-catalog"`
	AppEnv        Env    `env:"APP_ENV" envDefault:"dev"`
	CorsWhiteList string `env:"CORS_WHITELIST"`

	// auth
	CookieSecure    bool          `env:"COOKIE_SECURE" envDefault:"true"`
	LoginRateLimit  int           `env:"LOGIN_RATE_LIMIT" envDefault:"5"`
	LoginRateWindow time.Duration `env:"LOGIN_RATE_WINDOW" envDefault:"60s"`
	BcryptCost      int           `env:"BCRYPT_COST" envDefault:"10"`
}

func New() (*Config, error) {
	var cfg Config
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return &cfg, fmt.Errorf("failed to load config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) DatabaseUrl() string {
	path := c.DatabasePath
	if c.AppEnv == Env_Test {
		path = c.DatabasePathTest
	}

	return fmt.Sprintf("file:%s?_busy_timeout=5000&_foreign_keys=1", path)
}

func (c *Config) GetApiServerHost() string { return c.ApiServerHost }
func (c *Config) GetApiServerPort() string { return c.ApiServerPort }
func (c *Config) GetAppEnv() Env           { return c.AppEnv }
func (c *Config) GetAppName() string       { return c.AppName }
