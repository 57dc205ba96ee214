package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Config holds everything the API binary reads from the environment.
// A missing GEMINI_API_KEY is not fatal: the assistant degrades to a fixed
// explanatory message instead of calling the service.
type Config struct {
	Port     string `env:"PORT,            default=8080"`
	Env      string `env:"ENV,             default=development"`
	LogLevel string `env:"LOG_LEVEL,       default=info"`
	DBPath   string `env:"DB_PATH,         default=./data/gymflow.db"`

	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	GeminiModel  string `env:"GEMINI_MODEL,  default=gemini-1.5-flash"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}

// Development reports whether we run in development mode (pretty logs,
// gin debug mode).
func (c *Config) Development() bool {
	return c.Env == "development"
}
