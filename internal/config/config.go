// Package config loads bookstream's YAML configuration, following
// rahjooh-CryptoTrade/internal/config/config.go's os.ReadFile+yaml.Unmarshal
// shape and cmd/CryptoFlow/main.go's flag+godotenv+yaml wiring, with
// per-field environment overrides in the style of
// IRIO-ORG-Trading-System/common/env.go's generic GetEnv[T].
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration resource recognized at startup,
// covering every option named in spec §6 plus the ambient/domain
// supplements (book capacity, auth, logging, metrics).
type Config struct {
	// RPC transport.
	GRPCPort    int `yaml:"grpc_port"`
	MetricsPort int `yaml:"metrics_port"`
	DepthMax    int `yaml:"depth_max"`

	// Broadcast fan-out.
	BroadcastCapacity int `yaml:"broadcast_capacity"`

	// Circuit breaker tuning (seconds).
	ErrorThresholdCount int     `yaml:"error_threshold"`
	ErrorWindowSeconds  int     `yaml:"error_window"`
	OpenDurationSeconds int `yaml:"open_duration"`
	LogSampleRate       int `yaml:"log_sample_rate"`

	// Validator ceilings.
	MaxPrice string `yaml:"max_price"`
	MaxSize  string `yaml:"max_size"`

	// Book capacity safeguards (supplemented from original_source/src/config.rs).
	MaxOrdersPerLevel int `yaml:"max_orders_per_level"`
	MaxLevelsPerSide  int `yaml:"max_levels_per_side"`
	MaxTotalOrders    int `yaml:"max_total_orders"`

	// Market universe.
	MarketUniverseSize int    `yaml:"market_universe_size"`
	MarketUniverseFile string `yaml:"market_universe_file"`

	// Ingress.
	IngressFile         string `yaml:"ingress_file"`
	IngressFollow       bool   `yaml:"ingress_follow"`
	IngressFromStart    bool   `yaml:"ingress_from_start"`
	IngressPollMs       int    `yaml:"ingress_poll_ms"`

	// Auth.
	RequireAuth        bool     `yaml:"require_auth"`
	APIKeys            []string `yaml:"api_keys"`
	JWTKey             string   `yaml:"jwt_key"`
	RateLimitPerMinute int      `yaml:"rate_limit_per_minute"`

	// Transport security (external collaborator; fields only passed through).
	TLSCert string `yaml:"tls_cert"`
	TLSKey  string `yaml:"tls_key"`
	TLSCA   string `yaml:"tls_ca"`

	// Ambient logging.
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	LogOutput string `yaml:"log_output"`
	LogMaxAge int    `yaml:"log_max_age_days"`

	// Subscription server.
	SubscriberOutboundCapacity int `yaml:"subscriber_outbound_capacity"`
}

// Default returns the documented defaults, applied before the YAML
// decode so a missing file section is not an error.
func Default() Config {
	return Config{
		GRPCPort:                   50052,
		MetricsPort:                9090,
		DepthMax:                   500,
		BroadcastCapacity:          100_000,
		ErrorThresholdCount:        100,
		ErrorWindowSeconds:         60,
		OpenDurationSeconds:        30,
		LogSampleRate:              10,
		MaxPrice:                   "10000000",
		MaxSize:                    "1000000",
		MaxOrdersPerLevel:          100,
		MaxLevelsPerSide:           1000,
		MaxTotalOrders:             10000,
		MarketUniverseSize:         199,
		IngressPollMs:              200,
		RateLimitPerMinute:         0,
		LogLevel:                   "info",
		LogFormat:                  "json",
		LogOutput:                  "stdout",
		LogMaxAge:                  14,
		SubscriberOutboundCapacity: 1000,
	}
}

// Load reads path (YAML), falling back to Default() for any field the
// file doesn't set, then applies environment variable overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			applyEnvOverrides(&cfg)
			return cfg, nil
		}
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	applyEnvOverrides(&cfg)
	return cfg, nil
}

// GetEnv looks up key and parses it as T, returning defaultValue if the
// variable is unset or fails to parse. Adapted from
// IRIO-ORG-Trading-System/common/env.go, generalized to cover string, bool
// and int; for any other T (a string slice, for one) it returns
// defaultValue.
func GetEnv[T any](key string, defaultValue T) T {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}

	switch any(defaultValue).(type) {
	case string:
		return any(raw).(T)
	case bool:
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return defaultValue
		}
		return any(v).(T)
	case int:
		v, err := strconv.Atoi(raw)
		if err != nil {
			return defaultValue
		}
		return any(v).(T)
	default:
		return defaultValue
	}
}

func applyEnvOverrides(cfg *Config) {
	cfg.GRPCPort = GetEnv("BOOKSTREAM_GRPC_PORT", cfg.GRPCPort)
	cfg.MetricsPort = GetEnv("BOOKSTREAM_METRICS_PORT", cfg.MetricsPort)
	cfg.LogLevel = GetEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.RequireAuth = GetEnv("BOOKSTREAM_REQUIRE_AUTH", cfg.RequireAuth)
	cfg.JWTKey = GetEnv("BOOKSTREAM_JWT_KEY", cfg.JWTKey)
	cfg.IngressFile = GetEnv("BOOKSTREAM_INGRESS_FILE", cfg.IngressFile)
}
