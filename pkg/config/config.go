package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/japaniel/punderer/pkg/rhyme"
)

// Config holds all punderer configuration.
type Config struct {
	Rhyme   RhymeConfig   `yaml:"rhyme"`
	Corpus  CorpusConfig  `yaml:"corpus"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// RhymeConfig configures the rhyme lookup.
type RhymeConfig struct {
	Provider string `yaml:"provider"` // datamuse, rhymebrain
	BaseURL  string `yaml:"base_url"`
	Timeout  string `yaml:"timeout"`
	Filter   string `yaml:"filter"` // single, best
}

// CorpusConfig configures where phrases are read from.
type CorpusConfig struct {
	Dir      string `yaml:"dir"`
	Ext      string `yaml:"ext"`
	Database string `yaml:"database"`
	Workers  int    `yaml:"workers"`
}

// OutputConfig configures the printed table.
type OutputConfig struct {
	Count int `yaml:"count"`
}

// LoggingConfig configures the logger.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Rhyme: RhymeConfig{
			Provider: string(rhyme.Datamuse),
			Timeout:  "30s",
			Filter:   string(rhyme.PolicySingle),
		},
		Corpus: CorpusConfig{
			Dir:     "phrases",
			Ext:     ".txt",
			Workers: 4,
		},
		Output: OutputConfig{
			Count: 10,
		},
		Logging: LoggingConfig{
			Level: "warn",
		},
	}
}

// Load loads configuration from a YAML file. An empty path or a missing
// file yields the defaults. Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("PUNDERER_PROVIDER"); v != "" {
		c.Rhyme.Provider = v
	}
	if v := os.Getenv("PUNDERER_PHRASES_DIR"); v != "" {
		c.Corpus.Dir = v
	}
	if v := os.Getenv("PUNDERER_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// Validate checks that every value is usable.
func (c *Config) Validate() error {
	if _, err := rhyme.ParseProvider(c.Rhyme.Provider); err != nil {
		return err
	}
	if _, err := rhyme.ParsePolicy(c.Rhyme.Filter); err != nil {
		return err
	}
	if c.Rhyme.Timeout != "" {
		d, err := time.ParseDuration(c.Rhyme.Timeout)
		if err != nil {
			return fmt.Errorf("invalid rhyme timeout %q: %w", c.Rhyme.Timeout, err)
		}
		if d <= 0 {
			return fmt.Errorf("rhyme timeout must be positive, got %s", d)
		}
	}
	if c.Corpus.Dir == "" && c.Corpus.Database == "" {
		return fmt.Errorf("no phrase corpus configured")
	}
	if c.Corpus.Ext != "" && !strings.HasPrefix(c.Corpus.Ext, ".") {
		return fmt.Errorf("corpus extension must start with '.', got %q", c.Corpus.Ext)
	}
	if c.Corpus.Workers < 0 {
		return fmt.Errorf("corpus workers must not be negative, got %d", c.Corpus.Workers)
	}
	if c.Output.Count < 0 {
		return fmt.Errorf("output count must not be negative, got %d", c.Output.Count)
	}
	switch strings.ToLower(c.Logging.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Logging.Level)
	}
	return nil
}

// GetRhymeTimeout returns the rhyme request timeout, defaulting to 30s.
func (c *Config) GetRhymeTimeout() time.Duration {
	if d, err := time.ParseDuration(c.Rhyme.Timeout); err == nil && d > 0 {
		return d
	}
	return 30 * time.Second
}

// Endpoint returns the rhyme endpoint described by the config.
// Call Validate first; an invalid provider falls back to Datamuse.
func (c *Config) Endpoint() rhyme.Endpoint {
	p, err := rhyme.ParseProvider(c.Rhyme.Provider)
	if err != nil {
		p = rhyme.Datamuse
	}
	return rhyme.Endpoint{Provider: p, BaseURL: c.Rhyme.BaseURL}
}

// Policy returns the configured rhyme filter.
func (c *Config) Policy() rhyme.Policy {
	p, err := rhyme.ParsePolicy(c.Rhyme.Filter)
	if err != nil {
		return rhyme.PolicySingle
	}
	return p
}
