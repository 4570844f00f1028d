package config

type ServerConfig struct {
	Address        string `yaml:"address" env:"ADDRESS"`                 // API listen address, e.g. ":8080"
	MetricsAddress string `yaml:"metrics_address" env:"METRICS_ADDRESS"` // prometheus listen address
}

type PostgresConfig struct {
	MasterDSN                    string   `yaml:"master_dsn" env:"MASTER_DSN"`
	SlaveDSNs                    []string `yaml:"slave_dsns" env:"SLAVE_DSNS" envSeparator:","`
	MaxOpenConnections           int      `yaml:"max_open_connections" env:"MAX_OPEN_CONNECTIONS" envDefault:"3"`
	MaxIdleConnections           int      `yaml:"max_idle_connections" env:"MAX_IDLE_CONNECTIONS" envDefault:"5"`
	ConnectionMaxLifetimeSeconds int      `yaml:"connection_max_lifetime_seconds" env:"CONNECTION_MAX_LIFETIME_SECONDS" envDefault:"0"`
}

type RedisConfig struct {
	Address           string `yaml:"address" env:"ADDRESS"`                       // host:port; empty disables the cache
	Password          string `yaml:"password" env:"PASSWORD"`                     // auth password, if configured
	DB                int    `yaml:"db" env:"DB"`                                 // database number, 0 by default
	ExpirationSeconds int    `yaml:"expiration_seconds" env:"EXPIRATION_SECONDS"` // key TTL
}

type EmailConfig struct {
	Service string `yaml:"service" env:"SERVICE"` // mailchannels / resend / brevo / console
	From    string `yaml:"from" env:"FROM"`       // sender address
	APIKey  string `yaml:"api_key" env:"API_KEY"` // provider API key (resend, brevo)
}

type CheckConfig struct {
	Period      string `yaml:"period" env:"PERIOD"`             // duration between scheduled cycles, e.g. "1m"
	ItemTimeout string `yaml:"item_timeout" env:"ITEM_TIMEOUT"` // per-item send deadline, e.g. "30s"
}

type RetryConfig struct {
	Attempts          int     `yaml:"attempts" env:"ATTEMPTS"`
	DelayMilliseconds int     `yaml:"delay_milliseconds" env:"DELAY_MS"`
	Backoff           float64 `yaml:"backoff" env:"BACKOFF"`
}
