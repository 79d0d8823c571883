package config

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the bot configuration
type Config struct {
	// Redis connection
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	// Discord bot token
	DiscordToken string `env:"DISCORD_TOKEN,required"`

	// Application ID for the bot. Falls back to the session user.
	ApplicationID string `env:"APPLICATION_ID"`

	// Optional guild ID for development (server-specific commands)
	GuildID string `env:"GUILD_ID"`

	// LogMode is production or development
	LogMode string `env:"LOG_MODE" envDefault:"production"`

	// Draw settings
	MinParticipants int `env:"SANTA_MIN_PARTICIPANTS" envDefault:"3"`
	DrawAttempts    int `env:"SANTA_DRAW_ATTEMPTS" envDefault:"200"`

	// SealKey is a hex encoded 32 byte key for stored recipients. Empty stores them in the clear.
	SealKey string `env:"SANTA_SEAL_KEY"`

	// Notification delivery
	NotifyWorkers    int           `env:"NOTIFY_WORKERS" envDefault:"4"`
	NotifyRetries    int           `env:"NOTIFY_RETRIES" envDefault:"3"`
	NotifyRetryDelay time.Duration `env:"NOTIFY_RETRY_DELAY" envDefault:"2s"`

	// MetricsAddr serves /metrics when set
	MetricsAddr string `env:"METRICS_ADDR"`
}

// Load reads an optional .env file and parses the environment
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load env file: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.MinParticipants < 2 {
		return nil, fmt.Errorf("SANTA_MIN_PARTICIPANTS must be at least 2, got %d", cfg.MinParticipants)
	}

	if _, err := cfg.SealKeyBytes(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SealKeyBytes decodes the seal key
func (c *Config) SealKeyBytes() ([]byte, error) {
	if c.SealKey == "" {
		return nil, nil
	}

	key, err := hex.DecodeString(c.SealKey)
	if err != nil {
		return nil, fmt.Errorf("SANTA_SEAL_KEY must be hex: %w", err)
	}

	if len(key) != 32 {
		return nil, fmt.Errorf("SANTA_SEAL_KEY must decode to 32 bytes, got %d", len(key))
	}

	return key, nil
}
