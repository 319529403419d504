// Package config provides application-wide configuration loaded from env vars (Task 1.2).
// Values can also come from an optional YAML file referenced by ATTIO_MCP_CONFIG;
// environment variables always win over the file, the file wins over defaults.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DefaultBaseURL is the production Attio API host.
const DefaultBaseURL = "https://api.attio.com"

// Transport names accepted by TRANSPORT. An unrecognized value falls back
// to TransportSSE at server startup (with a warning), not here.
const (
	TransportStdio = "stdio"
	TransportSSE   = "sse"
	TransportHTTP  = "http"
)

// Config holds runtime configuration for the Attio MCP server.
type Config struct {
	BaseURL   string // BASE_URL — default: "https://api.attio.com"
	APIKey    string // API_KEY — required at call time; empty means every call fails fast
	Port      int    // PORT — default: 8080 (HTTP transports only)
	Transport string // TRANSPORT — default: "sse"
	AuditDB   string // AUDIT_DB — SQLite path for the invocation audit trail; empty disables it
	LogLevel  string // LOG_LEVEL — default: "info"
}

const (
	envKeyBaseURL    = "BASE_URL"
	envKeyAPIKey     = "API_KEY"
	envKeyPort       = "PORT"
	envKeyTransport  = "TRANSPORT"
	envKeyAuditDB    = "AUDIT_DB"
	envKeyLogLevel   = "LOG_LEVEL"
	envKeyConfigFile = "ATTIO_MCP_CONFIG"
)

// fileConfig mirrors Config for the optional YAML file.
type fileConfig struct {
	BaseURL   string `yaml:"base_url"`
	APIKey    string `yaml:"api_key"`
	Port      int    `yaml:"port"`
	Transport string `yaml:"transport"`
	AuditDB   string `yaml:"audit_db"`
	LogLevel  string `yaml:"log_level"`
}

// Load reads configuration from environment variables, applying defaults for
// missing values. If ATTIO_MCP_CONFIG points at a YAML file, its values fill
// the gaps between env and defaults. A broken config file is an error: better
// to refuse startup than to silently run with defaults the operator did not ask for.
func Load() (Config, error) {
	var file fileConfig
	if path := os.Getenv(envKeyConfigFile); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &file); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	port, err := intEnvOr(envKeyPort, file.Port, 8080)
	if err != nil {
		return Config{}, err
	}

	return Config{
		BaseURL:   envOr(envKeyBaseURL, file.BaseURL, DefaultBaseURL),
		APIKey:    envOr(envKeyAPIKey, file.APIKey, ""),
		Port:      port,
		Transport: envOr(envKeyTransport, file.Transport, TransportSSE),
		AuditDB:   envOr(envKeyAuditDB, file.AuditDB, ""),
		LogLevel:  envOr(envKeyLogLevel, file.LogLevel, "info"),
	}, nil
}

// envOr returns the env value for key, then fileValue, then fallback.
func envOr(key, fileValue, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	if fileValue != "" {
		return fileValue
	}
	return fallback
}

// intEnvOr is envOr for integer values; a non-numeric env value is an error.
func intEnvOr(key string, fileValue, fallback int) (int, error) {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("config: %s must be an integer, got %q", key, v)
		}
		return n, nil
	}
	if fileValue != 0 {
		return fileValue, nil
	}
	return fallback, nil
}
