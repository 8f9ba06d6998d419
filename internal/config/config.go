// Package config loads roster configuration from the environment.
// A .env file in the working directory is read first; real environment
// variables take precedence over it.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// EnvFile is the dotenv file name looked up by LoadConfig.
const EnvFile = ".env"

// ErrMissingBotToken is returned by RequireBotToken when no token is configured.
var ErrMissingBotToken = errors.New("DISCORD_BOT_TOKEN not found in environment")

// Config represents the roster configuration.
type Config struct {
	BotToken string `env:"DISCORD_BOT_TOKEN"`
	Logging  LoggingConfig
	Bot      BotConfig
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	Level  string `env:"ROSTER_LOG_LEVEL" envDefault:"info"`  // debug, info, warn, error
	Format string `env:"ROSTER_LOG_FORMAT" envDefault:"text"` // text, json
}

// BotConfig holds chat bot settings.
type BotConfig struct {
	MaxAttachmentBytes int64         `env:"ROSTER_MAX_ATTACHMENT_BYTES" envDefault:"1048576"`
	FetchTimeout       time.Duration `env:"ROSTER_FETCH_TIMEOUT" envDefault:"15s"`
}

// LoadConfig reads dir/.env (if present) and the process environment.
func LoadConfig(dir string) (*Config, error) {
	environ := map[string]string{}

	path := filepath.Join(dir, EnvFile)
	fileVars, err := godotenv.Read(path)
	switch {
	case err == nil:
		for k, v := range fileVars {
			environ[k] = v
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			environ[k] = v
		}
	}

	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns the configuration with every setting at its default value.
func Default() *Config {
	var cfg Config
	// Defaults are constants; parsing an empty environment cannot fail.
	_ = env.ParseWithOptions(&cfg, env.Options{Environment: map[string]string{}})
	return &cfg
}

// Validate checks settings that have a fixed set of legal values.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid ROSTER_LOG_LEVEL %q", c.Logging.Level)
	}

	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("invalid ROSTER_LOG_FORMAT %q", c.Logging.Format)
	}

	if c.Bot.MaxAttachmentBytes <= 0 {
		return fmt.Errorf("ROSTER_MAX_ATTACHMENT_BYTES must be positive, got %d", c.Bot.MaxAttachmentBytes)
	}
	if c.Bot.FetchTimeout <= 0 {
		return fmt.Errorf("ROSTER_FETCH_TIMEOUT must be positive, got %s", c.Bot.FetchTimeout)
	}

	return nil
}

// RequireBotToken returns the bot token or ErrMissingBotToken.
func (c *Config) RequireBotToken() (string, error) {
	if c.BotToken == "" {
		return "", ErrMissingBotToken
	}
	return c.BotToken, nil
}
