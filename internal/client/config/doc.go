// Package config loads runtime configuration for the dashboard client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Environment: a dotenv file (-env, default ".env") and MANTIS_* variables.
//  4. Command-line flags, which override everything else.
//
// # JSON schema
//
//	{
//	  "api_url": "http://127.0.0.1:8080/api/v1",
//	  "health_addr": "127.0.0.1:50051",
//	  "storage_namespace": "vuetify",
//	  "db_path": "mantis.db",
//	  "session_max_age": "24h",
//	  "online_check_interval": "3s",
//	  "login_timeout": "15s",
//	  "log_level": "info"
//	}
//
// # Environment
//
//	MANTIS_API_URL, MANTIS_HEALTH_ADDR, MANTIS_STORAGE_NAMESPACE,
//	MANTIS_DB_PATH, MANTIS_SESSION_ID, MANTIS_SESSION_MAX_AGE,
//	MANTIS_ONLINE_CHECK_INTERVAL, MANTIS_LOGIN_TIMEOUT, MANTIS_LOG_LEVEL
package config
