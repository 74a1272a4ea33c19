package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "/etc/transito"
	ConfigFileName    = "transito.yml"
)

// Config holds all service configuration. Values are resolved in order:
// built-in defaults, then the optional YAML config file, then environment
// variables. Environment always wins, so the service runs unconfigured
// inside a compose stack with nothing but DB_HOST set.
type Config struct {
	// BindAddress is the address the HTTP server listens on.
	BindAddress string `yaml:"bind_address"`

	// Port is the HTTP server port.
	Port int `yaml:"port"`

	// LogLevel is the application log level (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`

	// AuditEnabled controls the RFC5424 access trail on stdout.
	AuditEnabled bool `yaml:"audit_enabled"`

	// AuditPersist mirrors the access trail into the auditoria_consultas
	// table. Requires the audit migration to have been applied.
	AuditPersist bool `yaml:"audit_persist"`

	Database DatabaseConfig `yaml:"database"`
}

// DatabaseConfig holds the MySQL connection settings.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	Charset  string `yaml:"charset"`
}

// newDefault returns a config with default values, suitable for a co-located
// containerized MySQL ("mysql" is the conventional compose service name).
func newDefault() *Config {
	return &Config{
		BindAddress:  "0.0.0.0",
		Port:         8000,
		LogLevel:     "info",
		AuditEnabled: true,
		Database: DatabaseConfig{
			Host:     "mysql",
			Port:     3306,
			User:     "root",
			Password: "root",
			Name:     "transito_db",
			Charset:  "utf8mb4",
		},
	}
}

// Load loads configuration from file and environment variables.
// Environment variables take precedence over file values.
func Load() (*Config, error) {
	cfg := newDefault()

	configPath := os.Getenv("TRANSITO_CONFIG_PATH")
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	configFile := filepath.Join(configPath, ConfigFileName)

	if data, err := os.ReadFile(configFile); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", configFile, err)
		}
	}

	cfg.applyEnvConfig()

	return cfg, nil
}

func (c *Config) applyEnvConfig() {
	if val := os.Getenv("BIND_ADDRESS"); val != "" {
		c.BindAddress = val
	}
	if val := os.Getenv("PORT"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.Port = i
		}
	}
	if val := os.Getenv("TRANSITO_LOG_LEVEL"); val != "" {
		c.LogLevel = val
	}
	if val := os.Getenv("TRANSITO_AUDIT_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			c.AuditEnabled = b
		}
	}
	if val := os.Getenv("TRANSITO_AUDIT_PERSIST"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			c.AuditPersist = b
		}
	}
	if val := os.Getenv("DB_HOST"); val != "" {
		c.Database.Host = val
	}
	if val := os.Getenv("DB_PORT"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.Database.Port = i
		}
	}
	if val := os.Getenv("DB_USER"); val != "" {
		c.Database.User = val
	}
	if val := os.Getenv("DB_PASSWORD"); val != "" {
		c.Database.Password = val
	}
	if val := os.Getenv("DB_NAME"); val != "" {
		c.Database.Name = val
	}
	if val := os.Getenv("DB_CHARSET"); val != "" {
		c.Database.Charset = val
	}
}
