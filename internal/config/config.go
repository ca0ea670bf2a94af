package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the data-access layer.
type Config struct {
	Database Database `mapstructure:"database"`
	Logger   Logger   `mapstructure:"logger"`
}

// Database holds the connection settings for the Postgres store.
type Database struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSL      bool   `mapstructure:"ssl"`
	Logging  bool   `mapstructure:"logging"`

	// Synchronize enables gorm schema auto-sync on connect. Never enable
	// this in a production deployment; ship SQL migrations instead.
	Synchronize bool `mapstructure:"synchronize"`

	// MigrationsRun applies pending SQL migrations on connect.
	MigrationsRun bool `mapstructure:"migrations_run"`

	Pool  Pool  `mapstructure:"pool"`
	Retry Retry `mapstructure:"retry"`
}

// Pool bounds the shared connection pool.
type Pool struct {
	MinConns       int           `mapstructure:"min_conns"`
	MaxConns       int           `mapstructure:"max_conns"`
	AcquireTimeout time.Duration `mapstructure:"acquire_timeout"`
	IdleTimeout    time.Duration `mapstructure:"idle_timeout"`
}

// Retry bounds the connect retry loop. Only transient connection errors
// are retried.
type Retry struct {
	Attempts int           `mapstructure:"attempts"`
	Delay    time.Duration `mapstructure:"delay"`
}

// Logger holds the configuration for the logger.
type Logger struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// LoadConfig reads configuration from an optional config file and the
// environment. Every key can be overridden by an environment variable with
// dots replaced by underscores, e.g. DATABASE_HOST, DATABASE_PORT,
// DATABASE_MIGRATIONS_RUN.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yml")

	// Allow environment variables to override config file
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set default values
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 5432)
	viper.SetDefault("database.username", "trader")
	viper.SetDefault("database.password", "safe")
	viper.SetDefault("database.name", "trading")
	viper.SetDefault("database.ssl", false)
	viper.SetDefault("database.logging", false)
	viper.SetDefault("database.synchronize", false)
	viper.SetDefault("database.migrations_run", false)
	viper.SetDefault("database.pool.min_conns", 5)
	viper.SetDefault("database.pool.max_conns", 20)
	viper.SetDefault("database.pool.acquire_timeout", 30*time.Second)
	viper.SetDefault("database.pool.idle_timeout", 10*time.Second)
	viper.SetDefault("database.retry.attempts", 3)
	viper.SetDefault("database.retry.delay", 3*time.Second)
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.format", "console")

	// A config file is optional; env-only operation is the common case.
	if err = viper.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return
		}
		err = nil
	}

	err = viper.Unmarshal(&config)
	return
}
