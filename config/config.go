// Package config loads runtime settings from the environment and an optional
// .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every runtime setting of the ledger server and CLI.
type Config struct {
	Port           string        `env:"PORT"                envDefault:"8080"`
	DatabasePath   string        `env:"LEDGER_DB_PATH"      envDefault:"dues_ledger.db"`
	RosterSheet    string        `env:"LEDGER_ROSTER_SHEET" envDefault:"Membership Roster"`
	LogLevel       string        `env:"LOG_LEVEL"           envDefault:"info"`
	LogDevelopment bool          `env:"LOG_DEVELOPMENT"     envDefault:"false"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"     envDefault:"60s"`
	OpenAI         OpenAIConfig
}

// OpenAIConfig configures the natural-language intent parser.
type OpenAIConfig struct {
	APIKey  string        `env:"OPENAI_API_KEY"`
	Model   string        `env:"OPENAI_MODEL"    envDefault:"gpt-3.5-turbo"`
	ChatURL string        `env:"OPENAI_CHAT_URL" envDefault:"https://api.openai.com/v1/chat/completions"`
	Timeout time.Duration `env:"OPENAI_TIMEOUT"  envDefault:"30s"`
}

// Enabled reports whether an API key was supplied.
func (c OpenAIConfig) Enabled() bool {
	return c.APIKey != ""
}

// Load reads the given .env files (".env" when none are named) and then
// parses the environment. Only a missing default .env file is tolerated.
func Load(files ...string) (*Config, error) {
	err := godotenv.Load(files...)
	if err != nil && (len(files) > 0 || !errors.Is(err, fs.ErrNotExist)) {
		return nil, fmt.Errorf("failed to load the env vars: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks settings that have no sensible fallback.
func (c *Config) Validate() error {
	if c.DatabasePath == "" {
		return errors.New("LEDGER_DB_PATH must not be empty")
	}
	if c.RosterSheet == "" {
		return errors.New("LEDGER_ROSTER_SHEET must not be empty")
	}
	if c.RequestTimeout <= 0 {
		return errors.New("REQUEST_TIMEOUT must be positive")
	}
	return nil
}
