// Package config loads service settings from an optional YAML file, an
// optional .env file and environment variables.
package config

import (
	"fmt"
	"time"
)

// Config is the main application configuration struct.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Registry RegistryConfig `mapstructure:"registry"`
	Journal  JournalConfig  `mapstructure:"journal"`
	Database DatabaseConfig `mapstructure:"database"`
}

type ServerConfig struct {
	Port            string        `mapstructure:"port"`
	StaticDir       string        `mapstructure:"static_dir"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Addr returns the listen address for http.Server.
func (s ServerConfig) Addr() string {
	return ":" + s.Port
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// RegistryConfig tunes the in-memory activity registry.
type RegistryConfig struct {
	// EnforceCapacity rejects signups once max_participants is reached.
	// Off by default: capacity is informational.
	EnforceCapacity bool `mapstructure:"enforce_capacity"`
}

// Journal drivers.
const (
	JournalNone     = "none"
	JournalPostgres = "postgres"
	JournalRedis    = "redis"
)

// JournalConfig selects where registration events are recorded.
type JournalConfig struct {
	Driver string `mapstructure:"driver"`
	Stream string `mapstructure:"stream"`
	MaxLen int64  `mapstructure:"max_len"`
}

type DatabaseConfig struct {
	Postgres PostgresConfig `mapstructure:"postgres"`
	Redis    RedisConfig    `mapstructure:"redis"`
}

type PostgresConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	Database       string `mapstructure:"database"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	SSLMode        string `mapstructure:"sslmode"`
	MaxConnections int32  `mapstructure:"max_connections"`
	MinConnections int32  `mapstructure:"min_connections"`
	ConnectRetries int    `mapstructure:"connect_retries"`
}

// DSN builds a libpq-compatible connection string.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}
