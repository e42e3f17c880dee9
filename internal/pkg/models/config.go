package models

// Config holds all application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	NATS      NATSConfig
	JWT       JWTConfig
	APIKey    APIKeyConfig
	Logger    LoggerConfig
	NewRelic  NewRelicConfig
	Chain     ChainConfig
	Scheduler SchedulerConfig
}

// AppConfig holds application metadata
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig holds PostgreSQL configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig holds NATS configuration
type NATSConfig struct {
	URL string
}

// JWTConfig holds user token validation configuration
type JWTConfig struct {
	Secret     string
	Expiration int
	Issuer     string
}

// APIKeyConfig holds the key protecting internal endpoints
type APIKeyConfig struct {
	InternalKey string
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}

// NewRelicConfig holds New Relic configuration
type NewRelicConfig struct {
	LicenseKey string
	AppName    string
	Enabled    bool
}

// ChainConfig holds the EVM network and contract configuration
type ChainConfig struct {
	RPCURL           string
	ChainID          int64
	RideShareAddress string
	TokenAddress     string
	PrivateKey       string
	TokenDecimals    int
}

// SchedulerConfig holds cron schedules for background jobs
type SchedulerConfig struct {
	SweepProvisional string
	StaleAfterMin    int
}
