package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the hooprelay proxy configuration.
type Config struct {
	HTTP      HTTPConfig      `yaml:"http"`
	Quota     QuotaConfig     `yaml:"quota"`
	Upstreams UpstreamsConfig `yaml:"upstreams"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// HTTPConfig holds HTTP server settings.
type HTTPConfig struct {
	Port            int `yaml:"port"`
	ReadTimeoutSec  int `yaml:"read_timeout_sec"`
	WriteTimeoutSec int `yaml:"write_timeout_sec"`
	ShutdownSec     int `yaml:"shutdown_timeout_sec"`
}

// QuotaConfig holds the advisory daily call quota.
type QuotaConfig struct {
	DailyLimit int `yaml:"daily_limit"`
}

// UpstreamsConfig holds settings for both upstream providers.
type UpstreamsConfig struct {
	Stats StatsConfig `yaml:"stats"`
	Odds  OddsConfig  `yaml:"odds"`
}

// StatsConfig holds the statistics provider settings. An empty api_key is
// valid: the affected endpoints answer with a configuration error.
type StatsConfig struct {
	APIKey        string `yaml:"api_key"`
	BaseURL       string `yaml:"base_url"`
	TimeoutSec    int    `yaml:"timeout_sec"`
	DefaultSeason string `yaml:"default_season"`
}

// OddsConfig holds the odds provider settings.
type OddsConfig struct {
	APIKey     string `yaml:"api_key"`
	BaseURL    string `yaml:"base_url"`
	Sport      string `yaml:"sport"`
	Regions    string `yaml:"regions"`
	Markets    string `yaml:"markets"`
	OddsFormat string `yaml:"odds_format"`
	TimeoutSec int    `yaml:"timeout_sec"`
}

// Load reads configuration from a YAML file by environment name (local, dev, prod).
func Load(env string) (Config, error) {
	configPath := findConfigPath(env)

	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	// Substitute env variables of the form ${VAR}
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// GetEnv returns the current environment from the ENV variable, defaulting to "local".
func GetEnv() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.HTTP.Port <= 0 {
		c.HTTP.Port = 8080
	}
	if c.HTTP.ReadTimeoutSec <= 0 {
		c.HTTP.ReadTimeoutSec = 10
	}
	// Write timeout must cover a full upstream round trip.
	if c.HTTP.WriteTimeoutSec <= 0 {
		c.HTTP.WriteTimeoutSec = 60
	}
	if c.HTTP.ShutdownSec <= 0 {
		c.HTTP.ShutdownSec = 10
	}
	if c.Quota.DailyLimit <= 0 {
		c.Quota.DailyLimit = 100
	}
	if c.Upstreams.Stats.TimeoutSec <= 0 {
		c.Upstreams.Stats.TimeoutSec = 30
	}
	if c.Upstreams.Stats.DefaultSeason == "" {
		c.Upstreams.Stats.DefaultSeason = "2026"
	}
	if c.Upstreams.Odds.TimeoutSec <= 0 {
		c.Upstreams.Odds.TimeoutSec = 30
	}
}

// Validate checks the configuration for correctness. Missing credentials are
// deliberately not an error: the proxy starts and reports them per request.
func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http.port must be between 1 and 65535, got %d", c.HTTP.Port)
	}
	if c.Quota.DailyLimit <= 0 {
		return fmt.Errorf("quota.daily_limit must be positive, got %d", c.Quota.DailyLimit)
	}
	return nil
}

// findConfigPath locates the config file.
func findConfigPath(env string) string {
	filename := fmt.Sprintf("%s.yaml", env)

	// 1. Check ./config/
	if path := filepath.Join("config", filename); fileExists(path) {
		return path
	}

	// 2. Check relative to the source file
	_, b, _, _ := runtime.Caller(0)
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(b))) // internal/config -> project root
	if path := filepath.Join(projectRoot, "config", filename); fileExists(path) {
		return path
	}

	// 3. Fallback to ./config/
	return filepath.Join("config", filename)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
