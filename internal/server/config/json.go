package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/mantis/internal/flagx"
	"github.com/dmitrijs2005/mantis/internal/timex"
)

// JsonConfig is the on-disk shape of the server configuration.
// AccessTokenValidityDuration accepts "15m" as well as nanoseconds.
type JsonConfig struct {
	HTTPAddr                    string         `json:"http_addr"`
	HealthAddrGRPC              string         `json:"health_addr_grpc"`
	DatabaseDSN                 string         `json:"database_dsn"`
	SecretKey                   string         `json:"secret_key"`
	AccessTokenValidityDuration timex.Duration `json:"access_token_validity_duration"`
	AuthRatePerSecond           float64        `json:"auth_rate_per_second"`
	AuthBurst                   int            `json:"auth_burst"`
	FirstUserEmail              string         `json:"first_user_email"`
	FirstUserUsername           string         `json:"first_user_username"`
	FirstUserPassword           string         `json:"first_user_password"`
	FirstUserName               string         `json:"first_user_name"`
	LogLevel                    string         `json:"log_level"`
}

// parseJson overlays config with the file named by -c/-config, if any.
// Keys missing from the file keep their current value. Read and decode
// errors panic.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	setString(&config.HTTPAddr, c.HTTPAddr)
	setString(&config.HealthAddrGRPC, c.HealthAddrGRPC)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	setString(&config.FirstUserEmail, c.FirstUserEmail)
	setString(&config.FirstUserUsername, c.FirstUserUsername)
	setString(&config.FirstUserPassword, c.FirstUserPassword)
	setString(&config.FirstUserName, c.FirstUserName)
	setString(&config.LogLevel, c.LogLevel)
	if c.AccessTokenValidityDuration.Duration > 0 {
		config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	}
	if c.AuthRatePerSecond > 0 {
		config.AuthRatePerSecond = c.AuthRatePerSecond
	}
	if c.AuthBurst > 0 {
		config.AuthBurst = c.AuthBurst
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
