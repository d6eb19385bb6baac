package goAuthClient

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config carries everything a Client needs beyond its injected dependencies.
// Configure during initialization and treat as immutable afterwards.
type Config struct {
	// BaseURL is the backend origin, e.g. "https://accounts.example.com".
	// The "/api" prefix is part of the endpoint paths, not of BaseURL.
	BaseURL string `yaml:"base_url"`
	// RequestTimeout bounds each single-attempt request when the Builder
	// constructs the default HTTP client. It is ignored when a custom
	// *http.Client is supplied.
	RequestTimeout time.Duration `yaml:"request_timeout"`

	Credentials CredentialConfig `yaml:"credentials"`
	Audit       AuditConfig      `yaml:"audit"`
	Metrics     MetricsConfig    `yaml:"metrics"`
}

// CredentialConfig selects and tunes the credential store the Builder creates
// when none is injected.
type CredentialConfig struct {
	// FilePath, when set, selects a file-backed store at that path.
	// Otherwise the Builder defaults to an in-memory store.
	FilePath string `yaml:"file_path"`
	// RedisPrefix namespaces the three session slots for WithRedis stores.
	RedisPrefix string `yaml:"redis_prefix"`
	// RedisTTL expires the slots for WithRedis stores; zero means no expiry.
	RedisTTL time.Duration `yaml:"redis_ttl"`
}

// AuditConfig controls the audit dispatcher.
type AuditConfig struct {
	Enabled    bool `yaml:"enabled"`
	BufferSize int  `yaml:"buffer_size"`
	DropIfFull bool `yaml:"drop_if_full"`
}

// MetricsConfig controls in-process counters.
type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

func defaultConfig() Config {
	return Config{
		RequestTimeout: 15 * time.Second,
		Credentials: CredentialConfig{
			RedisPrefix: "goauthclient",
		},
		Audit: AuditConfig{
			Enabled:    true,
			BufferSize: 256,
			DropIfFull: true,
		},
		Metrics: MetricsConfig{
			Enabled: true,
		},
	}
}

// UnmarshalYAML accepts Go duration strings ("15s") for request_timeout,
// which plain decoding into time.Duration would reject. Absent fields keep
// the values already in c, so a file only names what it changes.
func (c *Config) UnmarshalYAML(value *yaml.Node) error {
	type rawConfig struct {
		BaseURL        string           `yaml:"base_url"`
		RequestTimeout string           `yaml:"request_timeout"`
		Credentials    CredentialConfig `yaml:"credentials"`
		Audit          AuditConfig      `yaml:"audit"`
		Metrics        MetricsConfig    `yaml:"metrics"`
	}
	raw := rawConfig{
		BaseURL:     c.BaseURL,
		Credentials: c.Credentials,
		Audit:       c.Audit,
		Metrics:     c.Metrics,
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	c.BaseURL = raw.BaseURL
	c.Credentials = raw.Credentials
	c.Audit = raw.Audit
	c.Metrics = raw.Metrics
	if raw.RequestTimeout != "" {
		d, err := time.ParseDuration(raw.RequestTimeout)
		if err != nil {
			return fmt.Errorf("request_timeout: %w", err)
		}
		c.RequestTimeout = d
	}
	return nil
}

// UnmarshalYAML accepts a duration string for redis_ttl.
func (cc *CredentialConfig) UnmarshalYAML(value *yaml.Node) error {
	type rawCredentials struct {
		FilePath    string `yaml:"file_path"`
		RedisPrefix string `yaml:"redis_prefix"`
		RedisTTL    string `yaml:"redis_ttl"`
	}
	raw := rawCredentials{
		FilePath:    cc.FilePath,
		RedisPrefix: cc.RedisPrefix,
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	cc.FilePath = raw.FilePath
	cc.RedisPrefix = raw.RedisPrefix
	if raw.RedisTTL != "" {
		d, err := time.ParseDuration(raw.RedisTTL)
		if err != nil {
			return fmt.Errorf("redis_ttl: %w", err)
		}
		cc.RedisTTL = d
	}
	return nil
}

// Validate reports the first configuration problem.
func (c Config) Validate() error {
	if c.BaseURL == "" {
		return ErrBaseURLMissing
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("base url %q: scheme and host required", c.BaseURL)
	}
	return nil
}

// LoadConfig reads a YAML config file over the defaults, so a file only needs
// to name the fields it changes.
func LoadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
