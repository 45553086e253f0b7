package config

import (
	"errors"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/feral-file/rustaceans/internal/domain"
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
	MaxOpenConns    int           `mapstructure:"max_open_conns"`     // Maximum number of open connections to the database
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`     // Maximum number of idle connections in the pool
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`  // Maximum amount of time a connection may be reused (e.g., "5m", "1h")
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"` // Maximum amount of time a connection may be idle (e.g., "10m", "30m")
}

// NATSConfig holds NATS JetStream configuration
type NATSConfig struct {
	URL            string        `mapstructure:"url"`
	SubjectPrefix  string        `mapstructure:"subject_prefix"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName string        `mapstructure:"connection_name"`
	PublishTimeout time.Duration `mapstructure:"publish_timeout"`
}

// EthereumConfig holds the RPC endpoint used to read the Crane collection
type EthereumConfig struct {
	RPCURL      string        `mapstructure:"rpc_url"`
	DialTimeout time.Duration `mapstructure:"dial_timeout"`
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
	JWTPublicKey string   `mapstructure:"jwt_public_key"`
	APIKeys      []string `mapstructure:"api_keys"` // each key authenticates as the contract owner
}

// ContractConfig holds the deployment parameters of the collection.
// They seed the stored state on first start and are ignored afterwards.
type ContractConfig struct {
	Address          string `mapstructure:"address"`
	Owner            string `mapstructure:"owner"`
	Cranes           string `mapstructure:"cranes"`
	BasePrice        string `mapstructure:"base_price"`      // wei, decimal
	DevelopmentFee   string `mapstructure:"development_fee"` // wei, decimal
	EarlySupply      uint64 `mapstructure:"early_supply"`
	EarlyDiscountBps uint64 `mapstructure:"early_discount_bps"`
	// LocalCranes seeds the in-memory companion collection when no RPC
	// endpoint is configured. One entry per Crane.
	LocalCranes []string `mapstructure:"local_cranes"`
}

// RasterizerConfig holds PNG preview configuration
type RasterizerConfig struct {
	Width int `mapstructure:"width"`
}

// WorkerConfig holds worker configuration
type WorkerConfig struct {
	WorkerPoolSize  int `mapstructure:"pool_size"`
	WorkerQueueSize int `mapstructure:"queue_size"`
}

// APIConfig holds configuration for the API server
type APIConfig struct {
	BaseConfig `mapstructure:",squash"`
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	NATS       NATSConfig       `mapstructure:"nats"`
	Ethereum   EthereumConfig   `mapstructure:"ethereum"`
	Auth       AuthConfig       `mapstructure:"auth"`
	Contract   ContractConfig   `mapstructure:"contract"`
	Rasterizer RasterizerConfig `mapstructure:"rasterizer"`
}

// RenderConfig holds configuration for the render CLI
type RenderConfig struct {
	BaseConfig `mapstructure:",squash"`
	Worker     WorkerConfig     `mapstructure:"worker"`
	Rasterizer RasterizerConfig `mapstructure:"rasterizer"`
	OutputDir  string           `mapstructure:"output_dir"`
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
	v.SetDefault("nats.subject_prefix", "rustaceans")
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.connection_name", "rustaceans-api")
	v.SetDefault("nats.publish_timeout", "10s")
	v.SetDefault("ethereum.dial_timeout", "10s")
	v.SetDefault("contract.address", domain.ETHEREUM_ZERO_ADDRESS)
	v.SetDefault("contract.base_price", domain.DefaultBasePrice().String())
	v.SetDefault("contract.development_fee", domain.DefaultDevelopmentFee().String())
	v.SetDefault("rasterizer.width", 800)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var config APIConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// LoadRenderConfig loads configuration for the render CLI
func LoadRenderConfig(configFile string, envPath string) (*RenderConfig, error) {
	v := configureViper("render", configFile, envPath)

	// Set defaults
	v.SetDefault("debug", false)
	v.SetDefault("worker.pool_size", 8)
	v.SetDefault("worker.queue_size", 1000)
	v.SetDefault("rasterizer.width", 800)
	v.SetDefault("output_dir", "out")

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var config RenderConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

func readConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
			// Config file not found, use environment variables
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

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
		// 2. Service-specific directory (e.g., cmd/api/)
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		// 3. Config directory
		v.AddConfigPath("config/")
	}

	// Set environment variables
	v.SetEnvPrefix("RUSTACEANS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind all environment variables
	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars binds nested keys so Unmarshal sees env-only values
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
		"nats.subject_prefix",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		"nats.connection_name",
		"nats.publish_timeout",
		// Ethereum
		"ethereum.rpc_url",
		"ethereum.dial_timeout",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		// Auth
		"auth.jwt_public_key",
		"auth.api_keys",
		// Contract
		"contract.address",
		"contract.owner",
		"contract.cranes",
		"contract.base_price",
		"contract.development_fee",
		"contract.early_supply",
		"contract.early_discount_bps",
		"contract.local_cranes",
		// Render
		"rasterizer.width",
		"worker.pool_size",
		"worker.queue_size",
		"output_dir",
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from .env files
func loadEnv(envPath string, service string) {
	// Always try shared base first, then local, then optional per-service local.
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	// Default to config directory
	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // Overload lets later files override earlier ones
	}
}

// ChdirRepoRoot walks up from the working directory until it finds config/,
// so binaries started from cmd/<name> resolve the same relative paths.
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

// Addresses parses the configured addresses
func (c *ContractConfig) Addresses() (contract, owner, cranes common.Address, err error) {
	for _, a := range []struct {
		name  string
		value string
		dst   *common.Address
	}{
		{"contract.address", c.Address, &contract},
		{"contract.owner", c.Owner, &owner},
		{"contract.cranes", c.Cranes, &cranes},
	} {
		if a.value == "" {
			continue
		}
		if !common.IsHexAddress(a.value) {
			return contract, owner, cranes, fmt.Errorf("%s: invalid address %q", a.name, a.value)
		}
		*a.dst = common.HexToAddress(a.value)
	}

	if domain.IsZeroAddress(owner) {
		return contract, owner, cranes, fmt.Errorf("contract.owner is required")
	}
	return contract, owner, cranes, nil
}

// LocalCraneHolders parses contract.local_cranes
func (c *ContractConfig) LocalCraneHolders() ([]common.Address, error) {
	holders := make([]common.Address, 0, len(c.LocalCranes))
	for _, h := range c.LocalCranes {
		if !common.IsHexAddress(h) {
			return nil, fmt.Errorf("contract.local_cranes: invalid address %q", h)
		}
		holders = append(holders, common.HexToAddress(h))
	}
	return holders, nil
}

// Pricing parses the configured price components. Empty values use the defaults.
func (c *ContractConfig) Pricing() (domain.Pricing, error) {
	p := domain.Pricing{
		EarlySupply:      c.EarlySupply,
		EarlyDiscountBps: c.EarlyDiscountBps,
	}

	var err error
	if p.BasePrice, err = parseWei("contract.base_price", c.BasePrice); err != nil {
		return p, err
	}
	if p.DevelopmentFee, err = parseWei("contract.development_fee", c.DevelopmentFee); err != nil {
		return p, err
	}
	if p.EarlyDiscountBps > 10_000 {
		return p, fmt.Errorf("contract.early_discount_bps must be at most 10000, got %d", p.EarlyDiscountBps)
	}
	return p, nil
}

func parseWei(key, s string) (*big.Int, error) {
	if s == "" {
		return nil, nil
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok || v.Sign() < 0 {
		return nil, fmt.Errorf("%s: invalid wei amount %q", key, s)
	}
	return v, nil
}
