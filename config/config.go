package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config struct to hold the configuration settings
type Config struct {
	Postgres      PostgresConfig      `yaml:"postgres"`
	NATS          NATSConfig          `yaml:"nats"`
	HTTP          HTTPConfig          `yaml:"http"`
	JWT           JWTConfig           `yaml:"jwt"`
	AccessCodes   AccessCodeConfig    `yaml:"access_codes"`
	Voting        VotingConfig        `yaml:"voting"`
	Observability ObservabilityConfig `yaml:"observability"`
}

// PostgresConfig holds Postgres configuration.
type PostgresConfig struct {
	DSN string `yaml:"dsn"`
}

// NATSConfig holds NATS configuration. An empty URL selects the in-process bus.
type NATSConfig struct {
	URL        string `yaml:"url"`
	QueueGroup string `yaml:"queue_group"`
}

// HTTPConfig holds the HTTP listener configuration.
type HTTPConfig struct {
	Addr            string        `yaml:"addr"`
	AllowedOrigins  []string      `yaml:"allowed_origins"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	// RedeemRatePerSecond and RedeemBurst bound code validation/redemption per client IP.
	RedeemRatePerSecond float64 `yaml:"redeem_rate_per_second"`
	RedeemBurst         int     `yaml:"redeem_burst"`
}

// JWTConfig holds JWT configuration.
type JWTConfig struct {
	Secret     string        `yaml:"secret"`
	Issuer     string        `yaml:"issuer"`
	DefaultTTL time.Duration `yaml:"default_ttl"`
}

// AccessCodeConfig holds access code generation settings.
type AccessCodeConfig struct {
	Length      int `yaml:"length"`
	MaxQuantity int `yaml:"max_quantity"`
}

// VotingConfig holds the optional voting rules and the reconciliation schedule.
type VotingConfig struct {
	PreventSelfVote   bool          `yaml:"prevent_self_vote"`
	ExclusiveRanks    bool          `yaml:"exclusive_ranks"`
	ReconcileInterval time.Duration `yaml:"reconcile_interval"`
}

// ObservabilityConfig holds configuration for observability components
type ObservabilityConfig struct {
	MetricsAddress string `yaml:"metrics_address"`
	Environment    string `yaml:"environment"`
	LogLevel       string `yaml:"log_level"`
}

// LoadConfig loads the configuration from a YAML file.
func LoadConfig(filename string) (*Config, error) {
	// Try reading configuration from the file first
	data, err := os.ReadFile(filename)
	if err != nil {
		// If the file is not found, try loading from environment variables
		return loadConfigFromEnv()
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyEnvOverrides(&cfg)
	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func loadConfigFromEnv() (*Config, error) {
	var cfg Config
	applyEnvOverrides(&cfg)
	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Postgres.DSN = v
	}
	if v := os.Getenv("NATS_URL"); v != "" {
		cfg.NATS.URL = v
	}
	if v := os.Getenv("HTTP_ADDR"); v != "" {
		cfg.HTTP.Addr = v
	}
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		cfg.HTTP.AllowedOrigins = splitList(v)
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.JWT.Secret = v
	}
	if v := os.Getenv("JWT_ISSUER"); v != "" {
		cfg.JWT.Issuer = v
	}
	if v := os.Getenv("JWT_DEFAULT_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.JWT.DefaultTTL = d
		}
	}
	if v := os.Getenv("ACCESS_CODE_LENGTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.AccessCodes.Length = n
		}
	}
	if v := os.Getenv("VOTING_PREVENT_SELF_VOTE"); v != "" {
		cfg.Voting.PreventSelfVote = v == "true"
	}
	if v := os.Getenv("VOTING_EXCLUSIVE_RANKS"); v != "" {
		cfg.Voting.ExclusiveRanks = v == "true"
	}
	if v := os.Getenv("RECONCILE_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Voting.ReconcileInterval = d
		}
	}
	if v := os.Getenv("METRICS_ADDRESS"); v != "" {
		cfg.Observability.MetricsAddress = v
	}
	if v := os.Getenv("ENV"); v != "" {
		cfg.Observability.Environment = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Observability.LogLevel = v
	}
}

func applyDefaults(cfg *Config) {
	if cfg.HTTP.Addr == "" {
		cfg.HTTP.Addr = ":8080"
	}
	if cfg.HTTP.ShutdownTimeout == 0 {
		cfg.HTTP.ShutdownTimeout = 10 * time.Second
	}
	if cfg.HTTP.RedeemRatePerSecond == 0 {
		cfg.HTTP.RedeemRatePerSecond = 1
	}
	if cfg.HTTP.RedeemBurst == 0 {
		cfg.HTTP.RedeemBurst = 5
	}
	if cfg.NATS.QueueGroup == "" {
		cfg.NATS.QueueGroup = "clip-arena"
	}
	if cfg.JWT.DefaultTTL == 0 {
		cfg.JWT.DefaultTTL = 24 * time.Hour
	}
	if cfg.AccessCodes.Length == 0 {
		cfg.AccessCodes.Length = 8
	}
	if cfg.AccessCodes.MaxQuantity == 0 {
		cfg.AccessCodes.MaxQuantity = 500
	}
	if cfg.Voting.ReconcileInterval == 0 {
		cfg.Voting.ReconcileInterval = 15 * time.Minute
	}
	if cfg.Observability.Environment == "" {
		cfg.Observability.Environment = "production"
	}
}

// Validate reports missing required settings.
func (c *Config) Validate() error {
	var errs []error
	if c.Postgres.DSN == "" {
		errs = append(errs, errors.New("postgres.dsn (DATABASE_URL) is required"))
	}
	if c.JWT.Secret == "" {
		errs = append(errs, errors.New("jwt.secret (JWT_SECRET) is required"))
	}
	if c.AccessCodes.Length < 6 {
		errs = append(errs, fmt.Errorf("access_codes.length must be at least 6, got %d", c.AccessCodes.Length))
	}
	return errors.Join(errs...)
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
