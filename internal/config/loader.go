package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Options controls where Load looks for its inputs. The zero value searches
// the working directory and ./configs.
type Options struct {
	ConfigPaths []string
	EnvFile     string
}

// Load reads .env (if present), the config.yaml file (if present) and
// environment overrides such as SERVER_PORT or JOURNAL_DRIVER.
func Load(opts Options) (*Config, error) {
	envFile := opts.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	paths := opts.ConfigPaths
	if len(paths) == 0 {
		paths = []string{"./configs", "."}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	// PORT is what most hosting platforms inject.
	if port := os.Getenv("PORT"); port != "" && os.Getenv("SERVER_PORT") == "" {
		cfg.Server.Port = port
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// setDefaults registers every key so AutomaticEnv can override it even when
// no config file is present.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.static_dir", "./static")
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 15*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	v.SetDefault("registry.enforce_capacity", false)

	v.SetDefault("journal.driver", JournalNone)
	v.SetDefault("journal.stream", "activity:registrations")
	v.SetDefault("journal.max_len", 10000)

	v.SetDefault("database.postgres.host", "localhost")
	v.SetDefault("database.postgres.port", 5432)
	v.SetDefault("database.postgres.database", "activities")
	v.SetDefault("database.postgres.user", "postgres")
	v.SetDefault("database.postgres.password", "postgres")
	v.SetDefault("database.postgres.sslmode", "disable")
	v.SetDefault("database.postgres.max_connections", 10)
	v.SetDefault("database.postgres.min_connections", 1)
	v.SetDefault("database.postgres.connect_retries", 5)

	v.SetDefault("database.redis.address", "localhost:6379")
	v.SetDefault("database.redis.password", "")
	v.SetDefault("database.redis.db", 0)
}

func validate(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server.port is required")
	}
	switch cfg.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", cfg.Logging.Format)
	}
	switch cfg.Journal.Driver {
	case JournalNone:
	case JournalPostgres:
		if cfg.Database.Postgres.Host == "" {
			return errors.New("database.postgres.host is required for the postgres journal")
		}
	case JournalRedis:
		if cfg.Database.Redis.Address == "" {
			return errors.New("database.redis.address is required for the redis journal")
		}
		if cfg.Journal.Stream == "" {
			return errors.New("journal.stream is required for the redis journal")
		}
	default:
		return fmt.Errorf("unknown journal.driver %q", cfg.Journal.Driver)
	}
	return nil
}
