package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/docker/go-units"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

type Config struct {
	Port int `env:"PORT" envDefault:"3000"`

	MongoURI            string        `env:"MONGO_URI"`
	MongoDatabase       string        `env:"MONGO_DATABASE" envDefault:"test"`
	MongoCollection     string        `env:"MONGO_COLLECTION" envDefault:"images"`
	MongoConnectTimeout time.Duration `env:"MONGO_CONNECT_TIMEOUT" envDefault:"10s"`

	SQLitePath string `env:"SQLITE_DB_PATH" envDefault:"./fotos.db"`

	// MultipartMemory is how much of a multipart form is held in memory
	// before the parser spills file parts to disk, e.g. "32MB"
	MultipartMemory string `env:"MULTIPART_MEMORY" envDefault:"32MB"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`

	multipartMemoryBytes int64
	logLevel             zerolog.Level
}

// Load reads .env when present, then parses and validates the environment
func Load() (*Config, error) {
	// a missing .env is normal outside local development
	_ = godotenv.Load()

	return Parse()
}

// Parse reads configuration from the process environment only
func Parse() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT %d", c.Port)
	}

	size, err := units.RAMInBytes(c.MultipartMemory)
	if err != nil {
		return fmt.Errorf("invalid MULTIPART_MEMORY %q: %w", c.MultipartMemory, err)
	}
	if size <= 0 {
		return fmt.Errorf("invalid MULTIPART_MEMORY %q: must be positive", c.MultipartMemory)
	}
	c.multipartMemoryBytes = size

	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid LOG_LEVEL %q: %w", c.LogLevel, err)
	}
	c.logLevel = level

	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("invalid LOG_FORMAT %q: want console or json", c.LogFormat)
	}

	return nil
}

// UseMongo reports whether a MongoDB deployment is configured
func (c *Config) UseMongo() bool {
	return c.MongoURI != ""
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func (c *Config) MultipartMemoryBytes() int64 {
	return c.multipartMemoryBytes
}

func (c *Config) Level() zerolog.Level {
	return c.logLevel
}
