package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds runtime settings for the dashboard client.
//
// Units: every duration is a time.Duration.
type Config struct {
	APIURL     string
	HealthAddr string

	StorageNamespace string
	DBPath           string
	SessionID        string
	SessionMaxAge    time.Duration

	OnlineCheckInterval time.Duration
	LoginTimeout        time.Duration

	LogLevel string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIURL = "http://127.0.0.1:8080/api/v1"
	c.HealthAddr = "127.0.0.1:50051"
	c.StorageNamespace = "vuetify"
	c.DBPath = "mantis.db"
	c.SessionID = fmt.Sprint(os.Getppid())
	c.SessionMaxAge = 24 * time.Hour
	c.OnlineCheckInterval = 3 * time.Second
	c.LoginTimeout = 15 * time.Second
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
