package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"`
}

// NATSConfig holds NATS JetStream configuration
type NATSConfig struct {
	URL            string        `mapstructure:"url"`
	StreamName     string        `mapstructure:"stream_name"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName string        `mapstructure:"connection_name"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTPublicKey  string   `mapstructure:"jwt_public_key"`
	APIKeys       []string `mapstructure:"api_keys"`
	FounderIDs    []string `mapstructure:"founder_ids"`
	WebhookSecret string   `mapstructure:"webhook_secret"` // HMAC secret for signed service callbacks
}

// RateLimitConfig bounds calls to one external collaborator
type RateLimitConfig struct {
	RequestsPerSecond int           `mapstructure:"requests_per_second"`
	Burst             int           `mapstructure:"burst"`
	MaxQueueTime      time.Duration `mapstructure:"max_queue_time"`
}

// RateLimiterConfig holds the outbound collaborator rate limiter configuration
type RateLimiterConfig struct {
	MaxWorkers   int                        `mapstructure:"max_workers"`
	MaxQueueSize int                        `mapstructure:"max_queue_size"`
	Providers    map[string]RateLimitConfig `mapstructure:"providers"`
}

// AnchorConfig holds configuration for the external ledger anchor and
// time-attestation collaborators
type AnchorConfig struct {
	ChainName          string        `mapstructure:"chain_name"`
	RPCURL             string        `mapstructure:"rpc_url"`
	PrivateKey         string        `mapstructure:"private_key"` // hex key of the anchoring account
	GasLimit           uint64        `mapstructure:"gas_limit"`
	TimestampURL       string        `mapstructure:"timestamp_url"`
	TimestampAuthority string        `mapstructure:"timestamp_authority"`
	CollaboratorWait   time.Duration `mapstructure:"collaborator_wait"` // bounded timeout per external call
}

// LedgerConfig holds the policy constants of the revenue and payout ledger.
// SettlementDelay and WithdrawalMinimum are frozen onto entries/requests at
// ingestion time; changing them later never rewrites history.
type LedgerConfig struct {
	SettlementDelay     time.Duration `mapstructure:"settlement_delay"`
	WithdrawalMinimum   int64         `mapstructure:"withdrawal_minimum"` // minor currency units
	CertificateValidity time.Duration `mapstructure:"certificate_validity"`
	MaxContentSize      int64         `mapstructure:"max_content_size"` // bytes
}

// GovernanceConfig holds governance tally parameters
type GovernanceConfig struct {
	QuorumFraction float64 `mapstructure:"quorum_fraction"` // participating weight / total eligible weight
	WeightCapBps   int64   `mapstructure:"weight_cap_bps"`  // per-voter cap in basis points of total
	IdentityURL    string  `mapstructure:"identity_url"`    // identity service resolving voting power
}

// APIConfig holds configuration for the API server
type APIConfig struct {
	BaseConfig `mapstructure:",squash"`
	Server     ServerConfig      `mapstructure:"server"`
	Database   DatabaseConfig    `mapstructure:"database"`
	NATS       NATSConfig        `mapstructure:"nats"`
	Auth       AuthConfig        `mapstructure:"auth"`
	Anchor     AnchorConfig      `mapstructure:"anchor"`
	Ledger     LedgerConfig      `mapstructure:"ledger"`
	Governance GovernanceConfig  `mapstructure:"governance"`
	RateLimit  RateLimiterConfig `mapstructure:"rate_limit"`
}

// SweeperConfig holds configuration for the sweeper program
type SweeperConfig struct {
	BaseConfig `mapstructure:",squash"`
	Database   DatabaseConfig   `mapstructure:"database"`
	NATS       NATSConfig       `mapstructure:"nats"`
	Ledger     LedgerConfig     `mapstructure:"ledger"`
	Governance GovernanceConfig `mapstructure:"governance"`
	BatchSize  int              `mapstructure:"batch_size"`
	SweepEvery time.Duration    `mapstructure:"sweep_every"`
}

// LoadAPIConfig loads configuration for the API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	// Set defaults
	v.SetDefault("debug", false)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("server.idle_timeout", 120)
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.stream_name", "PLATFORM_EVENTS")
	v.SetDefault("anchor.chain_name", "eip155:1")
	v.SetDefault("anchor.collaborator_wait", "10s")
	setLedgerDefaults(v)
	v.SetDefault("governance.quorum_fraction", 0.1)
	v.SetDefault("governance.weight_cap_bps", 500)
	v.SetDefault("rate_limit.providers.anchor.requests_per_second", 5)
	v.SetDefault("rate_limit.providers.anchor.max_queue_time", "30s")
	v.SetDefault("rate_limit.providers.timestamp.requests_per_second", 10)
	v.SetDefault("rate_limit.providers.timestamp.max_queue_time", "30s")
	v.SetDefault("rate_limit.providers.identity.requests_per_second", 50)
	v.SetDefault("rate_limit.providers.identity.max_queue_time", "10s")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found, use environment variables
	}

	var config APIConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// LoadSweeperConfig loads configuration for the sweeper program
func LoadSweeperConfig(configFile string, envPath string) (*SweeperConfig, error) {
	v := configureViper("sweeper", configFile, envPath)

	// Set defaults
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_open_conns", 5)
	v.SetDefault("database.max_idle_conns", 2)
	v.SetDefault("database.conn_max_lifetime", "1h")
	v.SetDefault("database.conn_max_idle_time", "10m")
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.stream_name", "PLATFORM_EVENTS")
	setLedgerDefaults(v)
	v.SetDefault("governance.quorum_fraction", 0.1)
	v.SetDefault("governance.weight_cap_bps", 500)
	v.SetDefault("batch_size", 500)
	v.SetDefault("sweep_every", "1m")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg SweeperConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Database.Host == "" {
		return nil, errors.New("database.host is required")
	}
	if cfg.Database.DBName == "" {
		return nil, errors.New("database.dbname is required")
	}

	return &cfg, nil
}

func setLedgerDefaults(v *viper.Viper) {
	v.SetDefault("ledger.settlement_delay", "168h") // T+7 settlement
	v.SetDefault("ledger.withdrawal_minimum", 100)
	v.SetDefault("ledger.certificate_validity", "175200h") // 20 years
	v.SetDefault("ledger.max_content_size", 32*1024*1024)
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	// Load environment variables
	loadEnv(envPath, service)

	// Set config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// Search for config.yaml in multiple locations:
		// 1. Current directory
		v.AddConfigPath(".")
		// 2. Service-specific directory (e.g., cmd/api/, cmd/sweeper/)
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		// 3. Config directory
		v.AddConfigPath("config/")
	}

	// Set environment variables
	v.SetEnvPrefix("RIGHTS_LEDGER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind all environment variables
	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables
// This is required for viper to map env vars to config struct fields when no config file exists
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		// Database
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		// NATS
		"nats.url",
		"nats.stream_name",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		"nats.connection_name",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		// Auth
		"auth.jwt_public_key",
		"auth.api_keys",
		"auth.founder_ids",
		"auth.webhook_secret",
		// Collaborator rate limiter
		"rate_limit.max_workers",
		"rate_limit.max_queue_size",
		"rate_limit.providers.anchor.requests_per_second",
		"rate_limit.providers.anchor.burst",
		"rate_limit.providers.anchor.max_queue_time",
		"rate_limit.providers.timestamp.requests_per_second",
		"rate_limit.providers.timestamp.burst",
		"rate_limit.providers.timestamp.max_queue_time",
		"rate_limit.providers.identity.requests_per_second",
		"rate_limit.providers.identity.burst",
		"rate_limit.providers.identity.max_queue_time",
		// Anchor collaborators
		"anchor.chain_name",
		"anchor.rpc_url",
		"anchor.private_key",
		"anchor.gas_limit",
		"anchor.timestamp_url",
		"anchor.timestamp_authority",
		"anchor.collaborator_wait",
		// Ledger policy
		"ledger.settlement_delay",
		"ledger.withdrawal_minimum",
		"ledger.certificate_validity",
		"ledger.max_content_size",
		// Governance
		"governance.quorum_fraction",
		"governance.weight_cap_bps",
		"governance.identity_url",
		// Sweeper specific
		"batch_size",
		"sweep_every",
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	// Shared base first, then local, then optional per-service local.
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // Overload lets later files override earlier ones
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}
