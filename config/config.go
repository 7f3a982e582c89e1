package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/azrlmaster/sleeper-fan-helper/model"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	log "github.com/sirupsen/logrus"
)

type Config struct {
	Port        int    `envconfig:"PORT" default:"3000"`
	DatabaseURL string `envconfig:"DATABASE_URL" default:"sqlite://instance/sleeper.db"`

	SleeperURL     string        `envconfig:"SLEEPER_URL" default:"https://api.sleeper.app"`
	SleeperTimeout time.Duration `envconfig:"SLEEPER_TIMEOUT" default:"10s"`

	// Used by the roster endpoint when the request does not say which season
	// and week. Season defaults to the current year.
	Season string `envconfig:"SEASON"`
	Week   int    `envconfig:"WEEK" default:"1"`

	StarterWeight     float64 `envconfig:"STARTER_WEIGHT" default:"2.0"`
	BenchWeight       float64 `envconfig:"BENCH_WEIGHT" default:"1.0"`
	LeagueConcurrency int     `envconfig:"LEAGUE_CONCURRENCY" default:"4"`

	PlayerSyncInterval time.Duration `envconfig:"PLAYER_SYNC_INTERVAL" default:"24h"`
	PlayerSyncOnStart  bool          `envconfig:"PLAYER_SYNC_ON_START" default:"false"`

	// POST /admin/players is only served when ADMIN_PASSWORD is set.
	AdminUser     string `envconfig:"ADMIN_USER" default:"admin"`
	AdminPassword string `envconfig:"ADMIN_PASSWORD"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`
}

// Load reads the configuration from the environment, after loading a .env
// file from the working directory if there is one.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}
	return fromEnv(time.Now())
}

func fromEnv(now time.Time) (*Config, error) {
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return nil, err
	}

	if c.Season == "" {
		c.Season = strconv.Itoa(now.Year())
	}

	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port)
	}
	if c.DatabaseURL == "" {
		return errors.New("DATABASE_URL is required")
	}
	if c.StarterWeight < 0 || c.BenchWeight < 0 {
		return fmt.Errorf("ranking weights must not be negative, got %v and %v", c.StarterWeight, c.BenchWeight)
	}
	if c.LeagueConcurrency < 1 {
		return fmt.Errorf("LEAGUE_CONCURRENCY must be at least 1, got %d", c.LeagueConcurrency)
	}
	if c.PlayerSyncInterval <= 0 {
		return fmt.Errorf("PLAYER_SYNC_INTERVAL must be positive, got %v", c.PlayerSyncInterval)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("LOG_LEVEL: %w", err)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("LOG_FORMAT must be text or json, got %q", c.LogFormat)
	}
	return nil
}

func (c *Config) Weights() model.RankingWeights {
	return model.RankingWeights{Starter: c.StarterWeight, Bench: c.BenchWeight}
}

// ConfigureLogging sets the level and format of the standard logrus logger.
func (c *Config) ConfigureLogging() {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if c.LogFormat == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}
