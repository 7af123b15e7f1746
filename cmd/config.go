package main

import (
	"fmt"
	"os"
	"time"

	"cloudeng.io/errors"
	"gopkg.in/yaml.v3"

	"inviteCrawler/domain/adapters/urlClassifier"
	"inviteCrawler/domain/adapters/urlFetcherExtractor"
	"inviteCrawler/domain/crawlerPool"
	"inviteCrawler/domain/store"
)

const (
	StoreFile   = "file"
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

type AppConfig struct {
	CrawlerPoolConfig `yaml:",inline"`
	CrawlerConfig     `yaml:",inline"`

	Seeds SeedConfig  `yaml:"seeds"`
	Store StoreConfig `yaml:"store"`
	Kafka KafkaConfig `yaml:"kafka"`

	FailedSitesFile string `yaml:"failed_sites_file"`
	LogLevel        string `yaml:"log_level"`
}

type CrawlerPoolConfig struct {
	Concurrency int           `yaml:"concurrency"`
	RunTimeout  time.Duration `yaml:"run_timeout"`
}

type CrawlerConfig struct {
	FetchTimeout      time.Duration `yaml:"fetch_timeout"`
	MaxBodyBytes      int64         `yaml:"max_body_bytes"`
	UserAgent         string        `yaml:"user_agent"`
	NonHTMLExtensions []string      `yaml:"non_html_extensions"`
	TargetPrefix      string        `yaml:"target_prefix"`
	MaxPages          int           `yaml:"max_pages"`
	RequestsPerSecond float64       `yaml:"requests_per_second"`
}

type SeedConfig struct {
	URLs            []string `yaml:"urls"`
	File            string   `yaml:"file"`
	DirectoryURL    string   `yaml:"directory_url"`
	DirectorySuffix string   `yaml:"directory_suffix"`
}

type StoreConfig struct {
	Kind        string `yaml:"kind"`
	Path        string `yaml:"path"`
	RedisAddr   string `yaml:"redis_addr"`
	RedisPrefix string `yaml:"redis_prefix"`
}

type KafkaConfig struct {
	Broker string `yaml:"broker"`
	Topic  string `yaml:"topic"`
}

func DefaultConfig() AppConfig {
	return AppConfig{
		CrawlerPoolConfig: CrawlerPoolConfig{
			Concurrency: crawlerPool.DefaultSize,
		},
		CrawlerConfig: CrawlerConfig{
			FetchTimeout:      30 * time.Second,
			MaxBodyBytes:      urlFetcherExtractor.DefaultMaxBodyBytes,
			UserAgent:         urlFetcherExtractor.DefaultUserAgent,
			NonHTMLExtensions: urlClassifier.DefaultNonHTMLExtensions,
			TargetPrefix:      urlClassifier.DefaultTargetPrefix,
		},
		Seeds: SeedConfig{
			DirectorySuffix: ".berkeley.edu/",
		},
		Store: StoreConfig{
			Kind: StoreFile,
			Path: store.DefaultPath,
		},
		LogLevel: "info",
	}
}

// LoadConfig reads the YAML file at path over the defaults. An empty path
// yields the defaults. Service addresses fall back to the environment.
func LoadConfig(path string) (AppConfig, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing %s: %w", path, err)
		}
	}
	cfg.Store.RedisAddr = GetEnv("REDIS_ADDR", cfg.Store.RedisAddr)
	cfg.Kafka.Broker = GetEnv("KAFKA_BROKER", cfg.Kafka.Broker)
	cfg.Kafka.Topic = GetEnv("KAFKA_TOPIC", cfg.Kafka.Topic)
	return cfg, nil
}

func (c AppConfig) Validate() error {
	errs := errors.M{}
	if c.Concurrency < 1 {
		errs.Append(errors.New("concurrency must be at least 1"))
	}
	if c.FetchTimeout <= 0 {
		errs.Append(errors.New("fetch_timeout must be positive"))
	}
	if c.TargetPrefix == "" {
		errs.Append(errors.New("target_prefix is required"))
	}
	if len(c.Seeds.URLs) == 0 && c.Seeds.File == "" && c.Seeds.DirectoryURL == "" {
		errs.Append(errors.New("one of seeds.urls, seeds.file or seeds.directory_url is required"))
	}
	switch c.Store.Kind {
	case StoreFile, StoreMemory:
	case StoreRedis:
		if c.Store.RedisAddr == "" {
			errs.Append(errors.New("store.redis_addr is required for the redis store"))
		}
	default:
		errs.Append(fmt.Errorf("unknown store kind %q", c.Store.Kind))
	}
	if (c.Kafka.Broker == "") != (c.Kafka.Topic == "") {
		errs.Append(errors.New("kafka.broker and kafka.topic must be set together"))
	}
	return errs.Err()
}

// GetEnv returns the environment variable value or a fallback if unset.
func GetEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
