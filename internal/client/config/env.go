package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/dmitrijs2005/mantis/internal/flagx"
	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

// EnvConfig mirrors Config for the MANTIS_* environment variables.
type EnvConfig struct {
	APIURL              string        `env:"MANTIS_API_URL"`
	HealthAddr          string        `env:"MANTIS_HEALTH_ADDR"`
	StorageNamespace    string        `env:"MANTIS_STORAGE_NAMESPACE"`
	DBPath              string        `env:"MANTIS_DB_PATH"`
	SessionID           string        `env:"MANTIS_SESSION_ID"`
	SessionMaxAge       time.Duration `env:"MANTIS_SESSION_MAX_AGE"`
	OnlineCheckInterval time.Duration `env:"MANTIS_ONLINE_CHECK_INTERVAL"`
	LoginTimeout        time.Duration `env:"MANTIS_LOGIN_TIMEOUT"`
	LogLevel            string        `env:"MANTIS_LOG_LEVEL"`
}

// parseEnv loads the dotenv file named by -env (".env" by default, a
// missing file is fine) and overlays every MANTIS_* variable that is set.
// Variables already in the process environment win over the file.
func parseEnv(cfg *Config) {
	if err := godotenv.Load(flagx.EnvFileFlags()); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	var ec EnvConfig
	if err := envdecode.Decode(&ec); err != nil {
		if errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
			return
		}
		panic(err)
	}

	setString(&cfg.APIURL, ec.APIURL)
	setString(&cfg.HealthAddr, ec.HealthAddr)
	setString(&cfg.StorageNamespace, ec.StorageNamespace)
	setString(&cfg.DBPath, ec.DBPath)
	setString(&cfg.SessionID, ec.SessionID)
	setString(&cfg.LogLevel, ec.LogLevel)
	if ec.SessionMaxAge > 0 {
		cfg.SessionMaxAge = ec.SessionMaxAge
	}
	if ec.OnlineCheckInterval > 0 {
		cfg.OnlineCheckInterval = ec.OnlineCheckInterval
	}
	if ec.LoginTimeout > 0 {
		cfg.LoginTimeout = ec.LoginTimeout
	}
}
