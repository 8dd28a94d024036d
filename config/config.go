package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	CONFIG_PATH = "./res/config.yaml"
)

// ServiceConfig holds the configuration for the service.
type ServiceConfig struct {
	ServiceName string    `yaml:"service_name" validate:"required"`
	LogLevel    string    `yaml:"loglevel" validate:"required"`
	Host        string    `yaml:"host" validate:"required"`
	Port        string    `yaml:"port" validate:"required"`
	RateLimit   RateLimit `yaml:"rate_limit"`
	Database    Database  `yaml:"database" validate:"required"`
}

// RateLimit configures the process-wide request rate limiter.
type RateLimit struct {
	RequestsPerSecond float64 `yaml:"requests_per_second" validate:"omitempty,gt=0"`
	Burst             int     `yaml:"burst" validate:"omitempty,gt=0"`
}

// Database selects and configures the relational backend.
type Database struct {
	Type string `yaml:"type" validate:"required,oneof=sqlite postgres"`
	// For SQLite
	Sqlite SqliteConfig `yaml:"sqlite_config" validate:"omitempty"`
	// For PostgreSQL
	Postgres PostgresConfig `yaml:"postgres_config" validate:"omitempty"`
}

// SqliteConfig holds the SQLite backend configuration.
type SqliteConfig struct {
	// Path is the database file path, or ":memory:" for an in-memory store.
	Path string `yaml:"path"`
}

// PostgresConfig holds the PostgreSQL backend configuration.
type PostgresConfig struct {
	DSN                 string `yaml:"dsn"`
	MaxOpenConns        int    `yaml:"max_open_conns"`
	MaxIdleConns        int    `yaml:"max_idle_conns"`
	ConnMaxLifetimeSecs int    `yaml:"conn_max_lifetime_secs"`
}

// ReadLocalConfig reads the service configuration from a YAML file at the specified path.
// It unmarshals the YAML content into a ServiceConfig struct and returns it.
// If there is an error reading the file or unmarshaling the content, it returns an error.
func ReadLocalConfig(configPath string) (*ServiceConfig, error) {
	config := &ServiceConfig{}

	yamlFile, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	err = yaml.Unmarshal(yamlFile, config)
	if err != nil {
		return nil, err
	}

	return config, nil
}
