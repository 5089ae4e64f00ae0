// Package config handles configuration for the development API server:
// defaults, an optional JSON overlay and command-line flags.
package config

import "time"

// Config holds runtime settings for the API server.
//
// Fields:
//   - HTTPAddr: bind address for the JSON API.
//   - HealthAddrGRPC: bind address for the gRPC health service.
//   - DatabaseDSN: PostgreSQL DSN (pgx). Empty selects in-memory storage.
//   - SecretKey: HMAC secret for signing JWTs (HS256). Do not use the default in prod.
//   - AccessTokenValidityDuration: access token lifetime.
//   - AuthRatePerSecond / AuthBurst: throttling of the authenticate endpoint.
//   - FirstUser*: account created at startup when it does not exist yet.
type Config struct {
	HTTPAddr                    string
	HealthAddrGRPC              string
	DatabaseDSN                 string
	SecretKey                   string
	AccessTokenValidityDuration time.Duration
	AuthRatePerSecond           float64
	AuthBurst                   int
	FirstUserEmail              string
	FirstUserUsername           string
	FirstUserPassword           string
	FirstUserName               string
	LogLevel                    string
}

// LoadDefaults populates Config with development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.HTTPAddr = ":8080"
	c.HealthAddrGRPC = ":50051"
	c.DatabaseDSN = ""
	c.SecretKey = "secretKey"
	c.AccessTokenValidityDuration = 8 * 24 * time.Hour
	c.AuthRatePerSecond = 5
	c.AuthBurst = 10
	c.FirstUserEmail = "alice@example.com"
	c.FirstUserUsername = "alice"
	c.FirstUserPassword = "pw1"
	c.FirstUserName = "Alice"
	c.LogLevel = "info"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
