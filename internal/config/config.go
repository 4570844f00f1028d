package config

import (
	"fmt"
	"time"

	"github.com/wb-go/wbf/config"
	"github.com/wb-go/wbf/retry"
)

type Config struct {
	Env           string         `yaml:"env" env:"ENV"`
	AdminToken    string         `yaml:"admin_token" env:"ADMIN_TOKEN"`
	Server        ServerConfig   `env-prefix:"SERVER_"`
	Database      PostgresConfig `env-prefix:"POSTGRES_"`
	Redis         RedisConfig    `env-prefix:"REDIS_"`
	Email         EmailConfig    `env-prefix:"EMAIL_"`
	Check         CheckConfig    `env-prefix:"CHECK_"`
	StoreRetry    RetryConfig    `env-prefix:"RETRY_STORE_"`
	NotifierRetry RetryConfig    `env-prefix:"RETRY_NOTIFIER_"`
}

func NewConfig(envFilePath string, configFilePath string) (*Config, error) {
	myConfig := &Config{}

	cfg := config.New()

	if envFilePath != "" {
		if err := cfg.LoadEnvFiles(envFilePath); err != nil {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	}
	cfg.EnableEnv("")

	if configFilePath != "" {
		if err := cfg.LoadConfigFiles(configFilePath); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	myConfig.Env = cfg.GetString("ENV")
	myConfig.AdminToken = cfg.GetString("EMAIL_REMINDER_ADMIN_TOKEN")

	// HTTP server
	myConfig.Server.Address = cfg.GetString("EMAIL_REMINDER_SERVER_ADDRESS")
	myConfig.Server.MetricsAddress = cfg.GetString("EMAIL_REMINDER_SERVER_METRICS_ADDRESS")

	// Postgres
	myConfig.Database.MasterDSN = cfg.GetString("EMAIL_REMINDER_POSTGRES_MASTER_DSN")
	myConfig.Database.SlaveDSNs = cfg.GetStringSlice("EMAIL_REMINDER_POSTGRES_SLAVE_DSNS")
	myConfig.Database.MaxOpenConnections = cfg.GetInt("EMAIL_REMINDER_POSTGRES_MAX_OPEN_CONNECTIONS")
	myConfig.Database.MaxIdleConnections = cfg.GetInt("EMAIL_REMINDER_POSTGRES_MAX_IDLE_CONNECTIONS")
	myConfig.Database.ConnectionMaxLifetimeSeconds = cfg.GetInt("EMAIL_REMINDER_POSTGRES_CONNECTION_MAX_LIFETIME_SECONDS")

	// Redis
	myConfig.Redis.Address = cfg.GetString("EMAIL_REMINDER_REDIS_ADDRESS")
	myConfig.Redis.Password = cfg.GetString("EMAIL_REMINDER_REDIS_PASSWORD")
	myConfig.Redis.DB = cfg.GetInt("EMAIL_REMINDER_REDIS_DB")
	myConfig.Redis.ExpirationSeconds = cfg.GetInt("EMAIL_REMINDER_REDIS_EXPIRATION_SECONDS")

	// Email provider
	myConfig.Email.Service = cfg.GetString("EMAIL_REMINDER_EMAIL_SERVICE")
	myConfig.Email.From = cfg.GetString("EMAIL_REMINDER_EMAIL_FROM")
	myConfig.Email.APIKey = cfg.GetString("EMAIL_REMINDER_EMAIL_API_KEY")

	// Check loop
	myConfig.Check.Period = cfg.GetString("EMAIL_REMINDER_CHECK_PERIOD")
	myConfig.Check.ItemTimeout = cfg.GetString("EMAIL_REMINDER_CHECK_ITEM_TIMEOUT")

	// Retry strategies
	myConfig.StoreRetry.Attempts = cfg.GetInt("EMAIL_REMINDER_RETRY_STORE_ATTEMPTS")
	myConfig.StoreRetry.DelayMilliseconds = cfg.GetInt("EMAIL_REMINDER_RETRY_STORE_DELAY_MS")
	myConfig.StoreRetry.Backoff = cfg.GetFloat64("EMAIL_REMINDER_RETRY_STORE_BACKOFF")

	myConfig.NotifierRetry.Attempts = cfg.GetInt("EMAIL_REMINDER_RETRY_NOTIFIER_ATTEMPTS")
	myConfig.NotifierRetry.DelayMilliseconds = cfg.GetInt("EMAIL_REMINDER_RETRY_NOTIFIER_DELAY_MS")
	myConfig.NotifierRetry.Backoff = cfg.GetFloat64("EMAIL_REMINDER_RETRY_NOTIFIER_BACKOFF")

	myConfig.applyDefaults()

	return myConfig, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Address == "" {
		c.Server.Address = ":8080"
	}
	if c.Server.MetricsAddress == "" {
		c.Server.MetricsAddress = ":9090"
	}
	if c.Email.Service == "" {
		c.Email.Service = "mailchannels"
	}
	if c.Email.From == "" {
		c.Email.From = "noreply@example.com"
	}
	if c.Check.Period == "" {
		c.Check.Period = "1m"
	}
	if c.Check.ItemTimeout == "" {
		c.Check.ItemTimeout = "30s"
	}
	if c.StoreRetry.Attempts == 0 {
		c.StoreRetry = RetryConfig{Attempts: 3, DelayMilliseconds: 100, Backoff: 2}
	}
	if c.NotifierRetry.Attempts == 0 {
		c.NotifierRetry = RetryConfig{Attempts: 1, DelayMilliseconds: 500, Backoff: 2}
	}
}

func MakeStrategy(c RetryConfig) retry.Strategy {
	return retry.Strategy{
		Attempts: c.Attempts,
		Delay:    time.Duration(c.DelayMilliseconds) * time.Millisecond,
		Backoff:  c.Backoff,
	}
}
