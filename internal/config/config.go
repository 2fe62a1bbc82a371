package config

import (
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"scum-server/internal/util"
)

// Config provides configuration for the Scum server
type Config struct {
	loaded         bool
	PGDSN          string `yaml:"pgDsn" envconfig:"pg_dsn"`
	MigrationsPath string `yaml:"migrationsPath" envconfig:"migrations_path"`
	RedisAddr      string `yaml:"redisAddr" envconfig:"redis_addr"`
	Leaderboard    struct {
		// Driver is one of postgres, redis, or memory
		Driver string `yaml:"driver" envconfig:"driver"`
	}
	Game struct {
		// AISeats is the number of automated opponents per game
		AISeats int `yaml:"aiSeats" envconfig:"ai_seats"`
		// Rounds is the number of rounds per game
		Rounds int `yaml:"rounds" envconfig:"rounds"`
		// SessionTTLMinutes is how long an idle game survives before the sweeper reaps it
		SessionTTLMinutes int `yaml:"sessionTtlMinutes" envconfig:"session_ttl_minutes"`
	}
	Log struct {
		Level             string `yaml:"level" envconfig:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	}
}

var config Config

// DefaultConfig returns the configuration defaults
func DefaultConfig() Config {
	c := Config{}
	c.MigrationsPath = "./sql"
	c.Leaderboard.Driver = "memory"
	c.Game.AISeats = 3
	c.Game.Rounds = 1
	c.Game.SessionTTLMinutes = 60
	return c
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration. A missing config file is not an error;
// defaults and environment overrides still apply.
func Load() error {
	config = DefaultConfig()

	configFile := util.Getenv("SCUM_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("scum", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}
