package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/theanh098/sei-market-oxide/internal/domain"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// URIConfig holds URI resolver configuration
type URIConfig struct {
	IPFSGateways    []string `mapstructure:"ipfs_gateways"`
	ArweaveGateways []string `mapstructure:"arweave_gateways"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadHost        string        `mapstructure:"read_host"`
	ReadPort        int           `mapstructure:"read_port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"`
}

// ChainConfig holds the node endpoints
type ChainConfig struct {
	RPCURL       string `mapstructure:"rpc_url"`       // e.g. https://rpc.sei-apis.com
	WebSocketURL string `mapstructure:"websocket_url"` // e.g. wss://rpc.sei-apis.com/websocket
	ChainID      string `mapstructure:"chain_id"`
}

// MarketplaceConfig holds marketplace contract and API settings
type MarketplaceConfig struct {
	PalletContractAddress string `mapstructure:"pallet_contract_address"`
	PalletAPIURL          string `mapstructure:"pallet_api_url"`
	Denom                 string `mapstructure:"denom"`
	BlacklistPath         string `mapstructure:"blacklist_path"` // optional JSON of chain id -> contract addresses to ignore
}

// RetryConfig holds the reconnect policy of the subscription loop
type RetryConfig struct {
	InitialInterval time.Duration `mapstructure:"initial_interval"`
	MaxInterval     time.Duration `mapstructure:"max_interval"`
	Multiplier      float64       `mapstructure:"multiplier"`
	ResetAfter      time.Duration `mapstructure:"reset_after"` // a session that stayed up this long resets the backoff
}

// HTTPConfig holds outbound HTTP settings
type HTTPConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
	// Per host limits, 0 requests per second disables limiting
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	Burst             int     `mapstructure:"burst"`
}

// ServerConfig holds the ops HTTP server configuration
type ServerConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds
	// The /v1 routes require a credential when either of these is set
	APIKeys      []string `mapstructure:"api_keys"`
	JWTPublicKey string   `mapstructure:"jwt_public_key"`
}

// StreamConfig holds configuration for the market-stream service
type StreamConfig struct {
	BaseConfig  `mapstructure:",squash"`
	Database    DatabaseConfig    `mapstructure:"database"`
	Chain       ChainConfig       `mapstructure:"chain"`
	Marketplace MarketplaceConfig `mapstructure:"marketplace"`
	URI         URIConfig         `mapstructure:"uri"`
	Retry       RetryConfig       `mapstructure:"retry"`
	HTTP        HTTPConfig        `mapstructure:"http"`
	Server      ServerConfig      `mapstructure:"server"`
	Streams     []string          `mapstructure:"streams"`
}

// Protocols returns the configured streams as validated protocols
func (c *StreamConfig) Protocols() ([]domain.Protocol, error) {
	seen := make(map[domain.Protocol]bool, len(c.Streams))
	protocols := make([]domain.Protocol, 0, len(c.Streams))
	for _, s := range c.Streams {
		p, err := domain.ParseProtocol(s)
		if err != nil {
			return nil, err
		}
		if seen[p] {
			continue
		}
		seen[p] = true
		protocols = append(protocols, p)
	}

	if len(protocols) == 0 {
		return nil, errors.New("no streams configured")
	}

	return protocols, nil
}

// LoadStreamConfig loads configuration for market-stream
func LoadStreamConfig(configFile string, envPath string) (*StreamConfig, error) {
	v := configureViper("market-stream", configFile, envPath)

	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("chain.chain_id", "pacific-1")
	v.SetDefault("marketplace.pallet_contract_address", domain.PALLET_CONTRACT_ADDRESS)
	v.SetDefault("marketplace.pallet_api_url", domain.PALLET_API_URL)
	v.SetDefault("marketplace.denom", domain.DENOM_USEI)
	v.SetDefault("uri.ipfs_gateways", []string{domain.DEFAULT_IPFS_GATEWAY, "https://cloudflare-ipfs.com"})
	v.SetDefault("uri.arweave_gateways", []string{domain.DEFAULT_ARWEAVE_GATEWAY})
	v.SetDefault("retry.initial_interval", "1s")
	v.SetDefault("retry.max_interval", "30s")
	v.SetDefault("retry.multiplier", 2.0)
	v.SetDefault("retry.reset_after", "1m")
	v.SetDefault("http.timeout", "30s")
	v.SetDefault("http.requests_per_second", 10)
	v.SetDefault("http.burst", 20)
	v.SetDefault("server.enabled", true)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8098)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("server.idle_timeout", 120)
	v.SetDefault("streams", []string{string(domain.ProtocolCw721), string(domain.ProtocolPallet)})

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found, use environment variables
	}

	var cfg StreamConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Streams = splitCommaList(cfg.Streams)
	cfg.Server.APIKeys = splitCommaList(cfg.Server.APIKeys)

	if cfg.Chain.RPCURL == "" {
		return nil, errors.New("chain.rpc_url is required")
	}
	if cfg.Chain.WebSocketURL == "" {
		return nil, errors.New("chain.websocket_url is required")
	}
	if cfg.Database.Host == "" {
		return nil, errors.New("database.host is required")
	}

	return &cfg, nil
}

// splitCommaList normalizes list values that arrive from env as comma separated text
func splitCommaList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		for _, v := range strings.Split(value, ",") {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	loadEnv(envPath, service)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		v.AddConfigPath("config/")
	}

	v.SetEnvPrefix("SEI_MARKET")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables
// This is required for viper to map env vars to config struct fields when no config file exists
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		"streams",
		// Database
		"database.host",
		"database.port",
		"database.read_host",
		"database.read_port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		// Chain
		"chain.rpc_url",
		"chain.websocket_url",
		"chain.chain_id",
		// Marketplace
		"marketplace.pallet_contract_address",
		"marketplace.pallet_api_url",
		"marketplace.denom",
		"marketplace.blacklist_path",
		// URI
		"uri.ipfs_gateways",
		"uri.arweave_gateways",
		// Retry
		"retry.initial_interval",
		"retry.max_interval",
		"retry.multiplier",
		"retry.reset_after",
		// HTTP
		"http.timeout",
		"http.requests_per_second",
		"http.burst",
		// Server
		"server.enabled",
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		"server.api_keys",
		"server.jwt_public_key",
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		_ = godotenv.Overload(filepath.Join(envPath, envFile)) // later files override earlier ones
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

// ReadDSN returns the read-replica database connection string.
// If ReadPort is not configured, it falls back to Port.
func (c *DatabaseConfig) ReadDSN() string {
	port := c.ReadPort
	if port == 0 {
		port = c.Port
	}

	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.ReadHost, port, c.User, c.Password, c.DBName, c.SSLMode)
}
