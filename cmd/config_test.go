package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults without a file", func(t *testing.T) {
		cfg, err := LoadConfig("")
		require.NoError(t, err)

		assert.Equal(t, 4, cfg.Concurrency)
		assert.Equal(t, 30*time.Second, cfg.FetchTimeout)
		assert.Equal(t, "https://edstem.org/us/join/", cfg.TargetPrefix)
		assert.Equal(t, StoreFile, cfg.Store.Kind)
		assert.Equal(t, "edstem_links.txt", cfg.Store.Path)
	})
	t.Run("yaml overrides the defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
concurrency: 8
fetch_timeout: 5s
run_timeout: 10m
max_pages: 200
requests_per_second: 2.5
non_html_extensions: [pdf, mp4]
seeds:
  urls:
    - https://econ.berkeley.edu/
    - https://www.stat.berkeley.edu/
store:
  kind: memory
kafka:
  broker: localhost:9092
  topic: join-links
`), 0o644))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)

		assert.Equal(t, 8, cfg.Concurrency)
		assert.Equal(t, 5*time.Second, cfg.FetchTimeout)
		assert.Equal(t, 10*time.Minute, cfg.RunTimeout)
		assert.Equal(t, 200, cfg.MaxPages)
		assert.Equal(t, 2.5, cfg.RequestsPerSecond)
		assert.Equal(t, []string{"pdf", "mp4"}, cfg.NonHTMLExtensions)
		assert.Equal(t, []string{"https://econ.berkeley.edu/", "https://www.stat.berkeley.edu/"}, cfg.Seeds.URLs)
		assert.Equal(t, StoreMemory, cfg.Store.Kind)
		assert.Equal(t, "join-links", cfg.Kafka.Topic)
		assert.NoError(t, cfg.Validate())
	})
	t.Run("environment supplies service addresses", func(t *testing.T) {
		t.Setenv("REDIS_ADDR", "redis:6379")

		cfg, err := LoadConfig("")
		require.NoError(t, err)
		assert.Equal(t, "redis:6379", cfg.Store.RedisAddr)
	})
	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("concurrency: [oops"), 0o644))

		_, err := LoadConfig(path)
		assert.Error(t, err)
	})
}

func TestAppConfig_Validate(t *testing.T) {
	valid := func() AppConfig {
		cfg := DefaultConfig()
		cfg.Seeds.URLs = []string{"https://a.edu/"}
		return cfg
	}

	assert.NoError(t, valid().Validate())

	for name, mutate := range map[string]func(*AppConfig){
		"no seeds":            func(c *AppConfig) { c.Seeds.URLs = nil },
		"zero concurrency":    func(c *AppConfig) { c.Concurrency = 0 },
		"zero timeout":        func(c *AppConfig) { c.FetchTimeout = 0 },
		"empty prefix":        func(c *AppConfig) { c.TargetPrefix = "" },
		"unknown store":       func(c *AppConfig) { c.Store.Kind = "s3" },
		"redis without addr":  func(c *AppConfig) { c.Store.Kind = StoreRedis },
		"kafka without topic": func(c *AppConfig) { c.Kafka.Broker = "localhost:9092" },
	} {
		cfg := valid()
		mutate(&cfg)
		assert.Error(t, cfg.Validate(), name)
	}
}

func TestFlagsApply(t *testing.T) {
	f, err := parseFlags([]string{"-concurrency", "6", "-store", "memory", "-out", "links.txt", "-seeds", "https://a.edu/,https://b.edu/"})
	require.NoError(t, err)

	cfg := DefaultConfig()
	f.apply(&cfg)

	assert.Equal(t, 6, cfg.Concurrency)
	assert.Equal(t, StoreMemory, cfg.Store.Kind)
	assert.Equal(t, "links.txt", cfg.Store.Path)
	assert.Equal(t, []string{"https://a.edu/", "https://b.edu/"}, cfg.Seeds.URLs)

	f, err = parseFlags([]string{"-seeds", "@departments.txt"})
	require.NoError(t, err)
	f.apply(&cfg)
	assert.Equal(t, "departments.txt", cfg.Seeds.File)
}
