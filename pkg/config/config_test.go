package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/japaniel/punderer/pkg/rhyme"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "phrases", cfg.Corpus.Dir)
	assert.Equal(t, ".txt", cfg.Corpus.Ext)
	assert.Equal(t, 10, cfg.Output.Count)
	assert.Equal(t, rhyme.Endpoint{Provider: rhyme.Datamuse}, cfg.Endpoint())
	assert.Equal(t, rhyme.PolicySingle, cfg.Policy())
	assert.Equal(t, 30*time.Second, cfg.GetRhymeTimeout())
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "punderer.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "punderer.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
rhyme:
  provider: rhymebrain
  timeout: 5s
  filter: best
corpus:
  dir: titles
  database: titles.db
output:
  count: 3
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, rhyme.RhymeBrain, cfg.Endpoint().Provider)
	assert.Equal(t, rhyme.PolicyBest, cfg.Policy())
	assert.Equal(t, 5*time.Second, cfg.GetRhymeTimeout())
	assert.Equal(t, "titles", cfg.Corpus.Dir)
	assert.Equal(t, "titles.db", cfg.Corpus.Database)
	assert.Equal(t, 3, cfg.Output.Count)
	// Untouched keys keep their defaults.
	assert.Equal(t, ".txt", cfg.Corpus.Ext)
	assert.Equal(t, 4, cfg.Corpus.Workers)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "punderer.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rhyme: [unclosed"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("PUNDERER_PROVIDER", "rhymebrain")
	t.Setenv("PUNDERER_PHRASES_DIR", "/srv/phrases")
	t.Setenv("PUNDERER_LOG_LEVEL", "debug")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "rhymebrain", cfg.Rhyme.Provider)
	assert.Equal(t, "/srv/phrases", cfg.Corpus.Dir)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"provider", func(c *Config) { c.Rhyme.Provider = "rhymezone" }},
		{"filter", func(c *Config) { c.Rhyme.Filter = "fuzzy" }},
		{"timeout syntax", func(c *Config) { c.Rhyme.Timeout = "soon" }},
		{"timeout sign", func(c *Config) { c.Rhyme.Timeout = "-1s" }},
		{"no corpus", func(c *Config) { c.Corpus.Dir = "" }},
		{"ext", func(c *Config) { c.Corpus.Ext = "txt" }},
		{"workers", func(c *Config) { c.Corpus.Workers = -1 }},
		{"count", func(c *Config) { c.Output.Count = -2 }},
		{"log level", func(c *Config) { c.Logging.Level = "loud" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
