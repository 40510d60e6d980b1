package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theanh098/sei-market-oxide/internal/domain"
)

func TestLoadStreamConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *StreamConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: true
sentry_dsn: "https://sentry.example.com"
streams: ["pallet"]
database:
  host: localhost
  port: 5432
  read_host: replica
  user: testuser
  password: testpass
  dbname: testdb
  sslmode: require
chain:
  rpc_url: "http://localhost:26657"
  websocket_url: "ws://localhost:26657/websocket"
  chain_id: "atlantic-2"
marketplace:
  pallet_contract_address: "sei1pallet"
  pallet_api_url: "http://localhost:9000/api"
retry:
  initial_interval: "2s"
  max_interval: "1m"
  multiplier: 3
server:
  port: 9999
`,
			expectError: false,
			validate: func(t *testing.T, cfg *StreamConfig) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, "https://sentry.example.com", cfg.SentryDSN)
				assert.Equal(t, []string{"pallet"}, cfg.Streams)
				assert.Equal(t, "localhost", cfg.Database.Host)
				assert.Equal(t, "replica", cfg.Database.ReadHost)
				assert.Equal(t, "testuser", cfg.Database.User)
				assert.Equal(t, "require", cfg.Database.SSLMode)
				assert.Equal(t, "http://localhost:26657", cfg.Chain.RPCURL)
				assert.Equal(t, "ws://localhost:26657/websocket", cfg.Chain.WebSocketURL)
				assert.Equal(t, "atlantic-2", cfg.Chain.ChainID)
				assert.Equal(t, "sei1pallet", cfg.Marketplace.PalletContractAddress)
				assert.Equal(t, "http://localhost:9000/api", cfg.Marketplace.PalletAPIURL)
				assert.Equal(t, 2*time.Second, cfg.Retry.InitialInterval)
				assert.Equal(t, time.Minute, cfg.Retry.MaxInterval)
				assert.Equal(t, 3.0, cfg.Retry.Multiplier)
				assert.Equal(t, 9999, cfg.Server.Port)
			},
		},
		{
			name: "config with defaults",
			configFile: `
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: testdb
chain:
  rpc_url: "http://localhost:26657"
  websocket_url: "ws://localhost:26657/websocket"
`,
			expectError: false,
			validate: func(t *testing.T, cfg *StreamConfig) {
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, "pacific-1", cfg.Chain.ChainID)
				assert.Equal(t, domain.PALLET_CONTRACT_ADDRESS, cfg.Marketplace.PalletContractAddress)
				assert.Equal(t, domain.PALLET_API_URL, cfg.Marketplace.PalletAPIURL)
				assert.Equal(t, domain.DENOM_USEI, cfg.Marketplace.Denom)
				assert.Equal(t, time.Second, cfg.Retry.InitialInterval)
				assert.Equal(t, 30*time.Second, cfg.Retry.MaxInterval)
				assert.Equal(t, 2.0, cfg.Retry.Multiplier)
				assert.Equal(t, time.Minute, cfg.Retry.ResetAfter)
				assert.Equal(t, 30*time.Second, cfg.HTTP.Timeout)
				assert.Equal(t, 10.0, cfg.HTTP.RequestsPerSecond)
				assert.Equal(t, 20, cfg.HTTP.Burst)
				assert.True(t, cfg.Server.Enabled)
				assert.Equal(t, 8098, cfg.Server.Port)
				assert.Equal(t, []string{"cw721", "pallet"}, cfg.Streams)
				assert.Contains(t, cfg.URI.IPFSGateways, domain.DEFAULT_IPFS_GATEWAY)
			},
		},
		{
			name: "missing chain endpoints",
			configFile: `
database:
  host: localhost
`,
			expectError: true,
		},
		{
			name: "invalid yaml",
			configFile: `
				database:
				  host: localhost
				  port: invalid
			`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			configFile := filepath.Join(tmpDir, "config.yaml")
			err := os.WriteFile(configFile, []byte(tt.configFile), 0600)
			require.NoError(t, err)

			cfg, err := LoadStreamConfig(configFile, tmpDir)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, cfg)
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestStreamConfig_Protocols(t *testing.T) {
	tests := []struct {
		name        string
		streams     []string
		expected    []domain.Protocol
		expectError bool
	}{
		{
			name:     "both protocols",
			streams:  []string{"cw721", "pallet"},
			expected: []domain.Protocol{domain.ProtocolCw721, domain.ProtocolPallet},
		},
		{
			name:     "duplicates and casing",
			streams:  []string{" Pallet", "pallet"},
			expected: []domain.Protocol{domain.ProtocolPallet},
		},
		{
			name:        "unknown protocol",
			streams:     []string{"cw1155"},
			expectError: true,
		},
		{
			name:        "empty",
			streams:     nil,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &StreamConfig{Streams: tt.streams}
			protocols, err := cfg.Protocols()
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, protocols)
		})
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	tests := []struct {
		name     string
		config   DatabaseConfig
		expected string
		read     string
	}{
		{
			name: "complete config",
			config: DatabaseConfig{
				Host:     "localhost",
				Port:     5432,
				ReadHost: "replica",
				ReadPort: 5433,
				User:     "testuser",
				Password: "testpass",
				DBName:   "testdb",
				SSLMode:  "require",
			},
			expected: "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=require",
			read:     "host=replica port=5433 user=testuser password=testpass dbname=testdb sslmode=require",
		},
		{
			name: "read port falls back",
			config: DatabaseConfig{
				Host:     "localhost",
				Port:     5432,
				ReadHost: "replica",
				User:     "user",
				Password: "p@ssw0rd!",
				DBName:   "db",
				SSLMode:  "disable",
			},
			expected: "host=localhost port=5432 user=user password=p@ssw0rd! dbname=db sslmode=disable",
			read:     "host=replica port=5432 user=user password=p@ssw0rd! dbname=db sslmode=disable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.config.DSN())
			assert.Equal(t, tt.read, tt.config.ReadDSN())
		})
	}
}

func TestConfigWithEnvironmentVariables(t *testing.T) {
	tmpDir := t.TempDir()

	envDir := filepath.Join(tmpDir, "env")
	err := os.MkdirAll(envDir, 0750)
	require.NoError(t, err)

	// Viper uses the SEI_MARKET_ prefix
	envContent := `SEI_MARKET_DEBUG=true
SEI_MARKET_DATABASE_HOST=env-host
SEI_MARKET_DATABASE_PORT=3306
SEI_MARKET_CHAIN_RPC_URL=http://env-node:26657
SEI_MARKET_CHAIN_WEBSOCKET_URL=ws://env-node:26657/websocket
SEI_MARKET_STREAMS=cw721
SEI_MARKET_SERVER_API_KEYS=key-a, key-b
`
	err = os.WriteFile(filepath.Join(envDir, ".env"), []byte(envContent), 0600)
	require.NoError(t, err)
	for _, key := range []string{
		"SEI_MARKET_DEBUG",
		"SEI_MARKET_DATABASE_HOST",
		"SEI_MARKET_DATABASE_PORT",
		"SEI_MARKET_CHAIN_RPC_URL",
		"SEI_MARKET_CHAIN_WEBSOCKET_URL",
		"SEI_MARKET_STREAMS",
		"SEI_MARKET_SERVER_API_KEYS",
	} {
		t.Cleanup(func() { _ = os.Unsetenv(key) })
	}

	configPath := filepath.Join(tmpDir, "config.yaml")
	configFile := `
debug: false
database:
  host: file-host
  port: 5432
chain:
  rpc_url: "http://file-node:26657"
  websocket_url: "ws://file-node:26657/websocket"
`
	err = os.WriteFile(configPath, []byte(configFile), 0600)
	require.NoError(t, err)

	cfg, err := LoadStreamConfig(configPath, envDir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.True(t, cfg.Debug)
	assert.Equal(t, "env-host", cfg.Database.Host)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, "http://env-node:26657", cfg.Chain.RPCURL)
	assert.Equal(t, "ws://env-node:26657/websocket", cfg.Chain.WebSocketURL)
	assert.Equal(t, []string{"cw721"}, cfg.Streams)
	assert.Equal(t, []string{"key-a", "key-b"}, cfg.Server.APIKeys)
}
