package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"shop-console/internal/validation"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	defaultConfigName = "shopctl"
	defaultEnvFile    = ".env"
)

type Config struct {
	App          AppConfig
	Database     DatabaseConfig
	CustomerList CustomerListConfig
	Metrics      MetricsConfig
}

type AppConfig struct {
	Environment string `validate:"oneof=development testing production"`
	LogLevel    string `validate:"omitempty,oneof=debug info warn error"`
}

type DatabaseConfig struct {
	Driver          string `validate:"oneof=postgres sqlite"`
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	SQLitePath      string
	MaxConnections  int `validate:"min=1"`
	MaxIdleConns    int `validate:"min=0"`
	ConnMaxLifetime time.Duration
	AutoMigrate     bool
	Seed            bool
}

type CustomerListConfig struct {
	DefaultFormat string `validate:"required,output_format"`
	PageSize      int    `validate:"min=0"`
}

type MetricsConfig struct {
	PushgatewayURL string `validate:"omitempty,url"`
	JobName        string `validate:"required_with=PushgatewayURL"`
}

// LoadEnvFile loads variables from an env file without overriding ones already set.
// An empty path loads ./.env when it exists.
func LoadEnvFile(path string) error {
	if path == "" {
		if _, err := os.Stat(defaultEnvFile); err != nil {
			return nil
		}
		path = defaultEnvFile
	}

	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

// Load reads configuration from the optional config file and the environment.
// Environment variables win over the file, e.g. DB_HOST overrides db.host.
// The result is checked with validate, whose output_format rule knows the composed formats.
func Load(v *viper.Viper, configFile string, validate *validation.Validator) (*Config, error) {
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", configFile, err)
		}
	} else {
		v.SetConfigName(defaultConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	config := &Config{
		App: AppConfig{
			Environment: v.GetString("app.env"),
			LogLevel:    v.GetString("log.level"),
		},
		Database: DatabaseConfig{
			Driver:          v.GetString("db.driver"),
			Host:            v.GetString("db.host"),
			Port:            v.GetString("db.port"),
			User:            v.GetString("db.user"),
			Password:        v.GetString("db.password"),
			Name:            v.GetString("db.name"),
			SSLMode:         v.GetString("db.ssl_mode"),
			SQLitePath:      v.GetString("db.sqlite_path"),
			MaxConnections:  v.GetInt("db.max_connections"),
			MaxIdleConns:    v.GetInt("db.max_idle_conns"),
			ConnMaxLifetime: v.GetDuration("db.conn_max_lifetime"),
			AutoMigrate:     v.GetBool("auto_migrate"),
			Seed:            v.GetBool("seed_database"),
		},
		CustomerList: CustomerListConfig{
			DefaultFormat: v.GetString("customer_list.format"),
			PageSize:      v.GetInt("customer_list.page_size"),
		},
		Metrics: MetricsConfig{
			PushgatewayURL: v.GetString("metrics.pushgateway_url"),
			JobName:        v.GetString("metrics.job_name"),
		},
	}

	if err := config.Validate(validate); err != nil {
		return nil, err
	}

	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.env", "development")
	v.SetDefault("log.level", "")
	v.SetDefault("db.driver", DriverPostgres)
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", "5432")
	v.SetDefault("db.user", "shop_user")
	v.SetDefault("db.password", "shop_password")
	v.SetDefault("db.name", "shop_db")
	v.SetDefault("db.ssl_mode", "disable")
	v.SetDefault("db.sqlite_path", "shop.db")
	v.SetDefault("db.max_connections", 5)
	v.SetDefault("db.max_idle_conns", 2)
	v.SetDefault("db.conn_max_lifetime", time.Hour)
	v.SetDefault("auto_migrate", false)
	v.SetDefault("seed_database", false)
	v.SetDefault("customer_list.format", "table")
	v.SetDefault("customer_list.page_size", 0)
	v.SetDefault("metrics.pushgateway_url", "")
	v.SetDefault("metrics.job_name", "shopctl")
}

// Validate checks the configuration against its struct rules
func (c *Config) Validate(validate *validation.Validator) error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func (c *DatabaseConfig) DSN() string {
	if c.Driver == DriverSQLite {
		return c.SQLitePath
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}
