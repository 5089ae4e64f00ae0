package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/mantis/internal/flagx"
	"github.com/dmitrijs2005/mantis/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Intervals
// are timex.Duration so they may be written as "3s" or as nanoseconds.
type JsonConfig struct {
	APIURL              string         `json:"api_url"`
	HealthAddr          string         `json:"health_addr"`
	StorageNamespace    string         `json:"storage_namespace"`
	DBPath              string         `json:"db_path"`
	SessionID           string         `json:"session_id"`
	SessionMaxAge       timex.Duration `json:"session_max_age"`
	OnlineCheckInterval timex.Duration `json:"online_check_interval"`
	LoginTimeout        timex.Duration `json:"login_timeout"`
	LogLevel            string         `json:"log_level"`
}

// parseJson overlays Config with values from the file named by -c/-config.
// Keys missing from the file keep their current value. Read and decode
// errors panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setString(&cfg.APIURL, jc.APIURL)
	setString(&cfg.HealthAddr, jc.HealthAddr)
	setString(&cfg.StorageNamespace, jc.StorageNamespace)
	setString(&cfg.DBPath, jc.DBPath)
	setString(&cfg.SessionID, jc.SessionID)
	setString(&cfg.LogLevel, jc.LogLevel)
	if jc.SessionMaxAge.Duration > 0 {
		cfg.SessionMaxAge = jc.SessionMaxAge.Duration
	}
	if jc.OnlineCheckInterval.Duration > 0 {
		cfg.OnlineCheckInterval = jc.OnlineCheckInterval.Duration
	}
	if jc.LoginTimeout.Duration > 0 {
		cfg.LoginTimeout = jc.LoginTimeout.Duration
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
