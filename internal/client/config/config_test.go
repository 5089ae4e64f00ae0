package config

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:8080/api/v1", c.APIURL)
	assert.Equal(t, "127.0.0.1:50051", c.HealthAddr)
	assert.Equal(t, "vuetify", c.StorageNamespace)
	assert.Equal(t, "mantis.db", c.DBPath)
	assert.Equal(t, fmt.Sprint(os.Getppid()), c.SessionID)
	assert.Equal(t, 24*time.Hour, c.SessionMaxAge)
	assert.Equal(t, 3*time.Second, c.OnlineCheckInterval)
	assert.Equal(t, 15*time.Second, c.LoginTimeout)
	assert.Equal(t, "info", c.LogLevel)
}

func TestLoadConfig_Precedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	jsonPath := writeTempJSON(t, dir, "cfg.json", map[string]any{
		"api_url":           "http://json:1/api",
		"storage_namespace": "from-json",
		"db_path":           "json.db",
	})
	envPath := writeTempFile(t, dir, "test.env", "MANTIS_STORAGE_NAMESPACE=from-dotenv\n")
	t.Setenv("MANTIS_DB_PATH", "env.db")
	t.Cleanup(func() { os.Unsetenv("MANTIS_STORAGE_NAMESPACE") })

	os.Args = []string{"testbin", "-c", jsonPath, "-env", envPath, "-a", "http://flag:2/api"}
	cfg := LoadConfig()

	require.NotNil(t, cfg)
	assert.Equal(t, "http://flag:2/api", cfg.APIURL)
	assert.Equal(t, "from-dotenv", cfg.StorageNamespace)
	assert.Equal(t, "env.db", cfg.DBPath)
	assert.Equal(t, 15*time.Second, cfg.LoginTimeout)
}

func TestLoadConfig_SubSecondDurationsSurvive(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	jsonPath := writeTempJSON(t, dir, "cfg.json", map[string]any{
		"online_check_interval": "500ms",
	})
	t.Setenv("MANTIS_LOGIN_TIMEOUT", "750ms")

	os.Args = []string{"testbin", "-c", jsonPath, "-env", filepath.Join(dir, "none.env")}
	cfg := LoadConfig()

	assert.Equal(t, 500*time.Millisecond, cfg.OnlineCheckInterval)
	assert.Equal(t, 750*time.Millisecond, cfg.LoginTimeout)
}
