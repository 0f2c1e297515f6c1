package configloader

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// APIKeyEnv is the environment variable carrying the indexing API credential.
const APIKeyEnv = "ALCHEMY_API_KEY"

// ErrMissingAPIKey is returned when no indexing API credential is configured.
var ErrMissingAPIKey = errors.New("indexing API key is not set")

// ServerConfig holds server-specific configurations.
type ServerConfig struct {
	Port         string   `yaml:"port"`
	ReadTimeout  int      `yaml:"readTimeout"`
	WriteTimeout int      `yaml:"writeTimeout"`
	IdleTimeout  int      `yaml:"idleTimeout"`
	EnablePprof  bool     `yaml:"enablePprof"`
	AllowOrigins []string `yaml:"allowOrigins"`
}

// LoggingConfig holds logging-specific configurations.
type LoggingConfig struct {
	Level string `yaml:"level"` // e.g., "debug", "info", "warn", "error"
}

// NetworkConfig selects the single network the indexer queries.
type NetworkConfig struct {
	Identifier string `yaml:"identifier"` // e.g., "eth-mainnet"
}

// IndexerConfig holds the indexing API specific configurations.
type IndexerConfig struct {
	APIKey                  string `yaml:"apiKey"`
	BaseURL                 string `yaml:"baseURL"` // overrides the network default when set
	RequestTimeoutMillis    int64  `yaml:"requestTimeoutMillis"`
	MaxBalancePages         int    `yaml:"maxBalancePages"`
	MaxConcurrentMetadata   int    `yaml:"maxConcurrentMetadata"` // 0 means unbounded
	RateLimit               int    `yaml:"rateLimit"`             // requests per second, 0 means unlimited
	BurstLimit              int    `yaml:"burstLimit"`
	MetadataCacheTTLMinutes int    `yaml:"metadataCacheTTLMinutes"` // 0 disables the cache
}

// EthereumConfig holds the read-only JSON-RPC node used for ENS resolution.
type EthereumConfig struct {
	RPCURL              string   `yaml:"rpcURL"`
	FallbackRPCURLs     []string `yaml:"fallbackRPCURLs"`
	RPCTimeoutMs        int64    `yaml:"rpcTimeoutMs"`
	ConnectionTimeoutMs int64    `yaml:"connectionTimeoutMs"`
}

// WalletConfig holds the optional wallet provider endpoint.
type WalletConfig struct {
	RPCURL           string `yaml:"rpcURL"` // empty means no wallet provider
	RequestTimeoutMs int64  `yaml:"requestTimeoutMs"`
}

// QueryConfig bounds a single balance query.
type QueryConfig struct {
	TimeoutSeconds int `yaml:"timeoutSeconds"`
}

// SessionConfig holds the in-memory page session settings.
type SessionConfig struct {
	TTLMinutes int    `yaml:"ttlMinutes"`
	CookieName string `yaml:"cookieName"`
}

// Config is the top-level configuration structure.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Logging  LoggingConfig  `yaml:"logging"`
	Network  NetworkConfig  `yaml:"network"`
	Indexer  IndexerConfig  `yaml:"indexer"`
	Ethereum EthereumConfig `yaml:"ethereum"`
	Wallet   WalletConfig   `yaml:"wallet"`
	Query    QueryConfig    `yaml:"query"`
	Session  SessionConfig  `yaml:"session"`
}

// Load reads the YAML configuration file from the given path, applies the
// environment override for the API key and fills in defaults.
func Load(path string) (*Config, error) {
	logrus.Infof("Loading configuration from path: %s", path)
	data, err := os.ReadFile(path)
	if err != nil {
		logrus.Errorf("Failed to read config file %s: %v", path, err)
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse unmarshals raw YAML into a Config and fills in defaults.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config data: %w", err)
	}

	if key := os.Getenv(APIKeyEnv); key != "" {
		cfg.Indexer.APIKey = key
		logrus.Infof("Indexing API key taken from %s", APIKeyEnv)
	}
	if cfg.Indexer.APIKey == "" {
		return nil, fmt.Errorf("%w: set %s or indexer.apiKey", ErrMissingAPIKey, APIKeyEnv)
	}

	applyDefaults(&cfg)

	logrus.Info("Configuration loaded successfully.")
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
		logrus.Infof("Server.Port not set, defaulting to %s", cfg.Server.Port)
	}
	cfg.Server.Port = strings.TrimPrefix(cfg.Server.Port, ":")
	if cfg.Server.ReadTimeout <= 0 {
		cfg.Server.ReadTimeout = 15
	}
	if cfg.Server.WriteTimeout <= 0 {
		cfg.Server.WriteTimeout = 60
	}
	if cfg.Server.IdleTimeout <= 0 {
		cfg.Server.IdleTimeout = 120
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}

	if cfg.Network.Identifier == "" {
		cfg.Network.Identifier = "eth-mainnet"
		logrus.Infof("Network.Identifier not set, defaulting to %s", cfg.Network.Identifier)
	}

	if cfg.Indexer.RequestTimeoutMillis <= 0 {
		cfg.Indexer.RequestTimeoutMillis = 10000 // 10 seconds
		logrus.Infof("Indexer.RequestTimeoutMillis not set, defaulting to %d ms", cfg.Indexer.RequestTimeoutMillis)
	}
	if cfg.Indexer.MaxBalancePages <= 0 {
		cfg.Indexer.MaxBalancePages = 10
	}
	if cfg.Indexer.MaxConcurrentMetadata < 0 {
		cfg.Indexer.MaxConcurrentMetadata = 0
	}
	if cfg.Indexer.RateLimit > 0 && cfg.Indexer.BurstLimit <= 0 {
		cfg.Indexer.BurstLimit = cfg.Indexer.RateLimit
		logrus.Infof("Indexer.BurstLimit not set, defaulting to rate limit %d", cfg.Indexer.BurstLimit)
	}
	if cfg.Indexer.MetadataCacheTTLMinutes < 0 {
		cfg.Indexer.MetadataCacheTTLMinutes = 0
	}

	if cfg.Ethereum.RPCTimeoutMs <= 0 {
		cfg.Ethereum.RPCTimeoutMs = 10000
	}
	if cfg.Ethereum.ConnectionTimeoutMs <= 0 {
		cfg.Ethereum.ConnectionTimeoutMs = 10000
	}
	if cfg.Ethereum.RPCURL == "" && cfg.Wallet.RPCURL != "" {
		// Names resolve through the wallet's own connection, as a browser provider would.
		cfg.Ethereum.RPCURL = cfg.Wallet.RPCURL
		logrus.Infof("Ethereum.RPCURL not set, using wallet provider endpoint for name resolution")
	}
	if cfg.Ethereum.RPCURL == "" {
		logrus.Warn("No Ethereum RPC endpoint configured. ENS names will not resolve.")
	}

	if cfg.Wallet.RequestTimeoutMs <= 0 {
		cfg.Wallet.RequestTimeoutMs = 60000 // user approval can take a while
	}

	if cfg.Query.TimeoutSeconds <= 0 {
		cfg.Query.TimeoutSeconds = 60
	}

	if cfg.Session.TTLMinutes <= 0 {
		cfg.Session.TTLMinutes = 30
	}
	if cfg.Session.CookieName == "" {
		cfg.Session.CookieName = "erc20_indexer_session"
	}
}
