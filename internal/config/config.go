package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"blackjackround/internal/game"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

// ErrMissingBotToken is returned by RequireBotToken
var ErrMissingBotToken = errors.New("BLACKJACK_BOT_TOKEN is not set")

// Config is loaded from .env, then config.yaml, then the environment
type Config struct {
	BotToken     string `yaml:"botToken" envconfig:"bot_token"`
	DatabasePath string `yaml:"databasePath" envconfig:"database_path"`
	TiePolicy    string `yaml:"tiePolicy" envconfig:"tie_policy"`
	Seed         int64  `yaml:"seed" envconfig:"seed"`
	HistoryLimit int    `yaml:"historyLimit" envconfig:"history_limit"`
	Log          struct {
		Level  string `yaml:"level" envconfig:"level"`
		Format string `yaml:"format" envconfig:"format"`
	} `yaml:"log"`

	tie game.TiePolicy
}

// Default returns the configuration used when nothing is set
func Default() *Config {
	return &Config{
		DatabasePath: "./blackjack.db",
		TiePolicy:    game.TieToPlayer.String(),
		HistoryLimit: 5,
	}
}

// Load reads the configuration
func Load() (*Config, error) {
	// a missing .env is fine
	_ = godotenv.Load()

	cfg := Default()

	configFile := getenv("BLACKJACK_CONFIG_FILE", "config.yaml")
	if err := cfg.loadFile(configFile); err != nil {
		return nil, err
	}

	if err := envconfig.Process("blackjack", cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	tie, err := game.ParseTiePolicy(cfg.TiePolicy)
	if err != nil {
		return nil, err
	}
	cfg.tie = tie

	if cfg.HistoryLimit <= 0 {
		return nil, fmt.Errorf("history limit must be > 0, got %d", cfg.HistoryLimit)
	}

	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	file, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	} else if err != nil {
		return fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	// an empty file decodes to io.EOF
	if err := yaml.NewDecoder(file).Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}

	return nil
}

// Tie returns the parsed tie policy
func (c *Config) Tie() game.TiePolicy {
	return c.tie
}

// RequireBotToken fails if the bot cannot be started
func (c *Config) RequireBotToken() error {
	if c.BotToken == "" {
		return ErrMissingBotToken
	}

	return nil
}

// SetupLogger applies the log level and format to the standard logrus logger
func (c *Config) SetupLogger() error {
	if lvl := c.Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			return fmt.Errorf("could not parse level: %w", err)
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(c.Log.Format) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	return nil
}

func getenv(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultValue
}
