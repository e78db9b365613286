package config

import (
	"errors"
	"os"
	"time"

	"drawpoker-server/internal/util"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for the draw poker server
type Config struct {
	loaded bool

	// ListenAddr is the address of the line based TCP listener
	ListenAddr string `yaml:"listenAddr" envconfig:"listen_addr"`

	// HTTPAddr is the address of the HTTP status and websocket server
	HTTPAddr string `yaml:"httpAddr" envconfig:"http_addr"`

	StartingChips int64 `yaml:"startingChips" envconfig:"starting_chips"`

	// TurnTimeout is in seconds, 0 disables it
	TurnTimeout  int `yaml:"turnTimeout" envconfig:"turn_timeout"`
	MaxIdleTurns int `yaml:"maxIdleTurns" envconfig:"max_idle_turns"`

	// ReadTimeout is in seconds, a TCP client that sends nothing for this long is disconnected
	ReadTimeout int `yaml:"readTimeout" envconfig:"read_timeout"`

	// PGDSN enables recording round history to PostgreSQL
	PGDSN          string `yaml:"pgDsn" envconfig:"pg_dsn"`
	MigrationsPath string `yaml:"migrationsPath" envconfig:"migrations_path"`

	Log struct {
		Level             string `yaml:"level"`
		Format            string `yaml:"format"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`
}

var config Config

// DefaultConfig returns the configuration used when nothing is overridden
func DefaultConfig() Config {
	cfg := Config{
		ListenAddr:     ":5000",
		HTTPAddr:       ":5080",
		StartingChips:  10000,
		TurnTimeout:    120,
		MaxIdleTurns:   3,
		ReadTimeout:    1800,
		MigrationsPath: "./sql",
	}

	cfg.Log.Level = "info"
	cfg.Log.Format = "text"

	return cfg
}

// TurnTimeoutDuration returns TurnTimeout as a duration
func (c Config) TurnTimeoutDuration() time.Duration {
	return time.Duration(c.TurnTimeout) * time.Second
}

// ReadTimeoutDuration returns ReadTimeout as a duration
func (c Config) ReadTimeoutDuration() time.Duration {
	return time.Duration(c.ReadTimeout) * time.Second
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

// Load will load the configuration
// A missing config file is not an error, the defaults are used instead
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("DPS_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	switch {
	case err == nil:
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return err
		}
	case !errors.Is(err, os.ErrNotExist):
		return err
	}

	if err := envconfig.Process("dps", &cfg); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}
