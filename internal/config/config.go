package config

import (
	"coinche-server/internal/util"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for the coinche server
type Config struct {
	loaded bool
	Addr   string `yaml:"addr" envconfig:"addr"`
	Log    struct {
		Level             string `yaml:"level" envconfig:"level"`
		Format            string `yaml:"format" envconfig:"format"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`
	Match struct {
		// Seed makes the deals reproducible. Zero uses crypto/rand
		Seed int64 `yaml:"seed" envconfig:"seed"`
	} `yaml:"match"`
	CORS struct {
		AllowedOrigins []string `yaml:"allowedOrigins" envconfig:"allowed_origins"`
	} `yaml:"cors"`
	Websocket struct {
		// seconds
		WriteWait int `yaml:"writeWait" envconfig:"write_wait"`
		PongWait  int `yaml:"pongWait" envconfig:"pong_wait"`
	} `yaml:"websocket"`
}

// WriteWait returns the websocket write deadline
func (c Config) WriteWait() time.Duration {
	return time.Second * time.Duration(c.Websocket.WriteWait)
}

// PongWait returns how long a websocket may stay silent
func (c Config) PongWait() time.Duration {
	return time.Second * time.Duration(c.Websocket.PongWait)
}

// DefaultConfig returns the configuration used when nothing is set
func DefaultConfig() Config {
	cfg := Config{Addr: ":5000"}
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.CORS.AllowedOrigins = []string{"*"}
	cfg.Websocket.WriteWait = 10
	cfg.Websocket.PongWait = 60

	return cfg
}

var config Config

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
// A missing configuration file is not an error
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("COINCHE_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	if file != nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return err
		}
	}

	if err := envconfig.Process("coinche", &cfg); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}
