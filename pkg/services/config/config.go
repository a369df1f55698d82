package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/de-tools/video-curator/pkg/services/batch"
	"github.com/spf13/viper"
)

const envPrefix = "CURATOR"

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	YouTube  YouTubeConfig  `mapstructure:"youtube"`
	Batch    BatchConfig    `mapstructure:"batch"`
	Worker   WorkerConfig   `mapstructure:"worker"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	// APIKey guards /api/v1 with a bearer token when set.
	APIKey string `mapstructure:"api_key"`
}

type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

type YouTubeConfig struct {
	APIKey      string        `mapstructure:"api_key"`
	BaseURL     string        `mapstructure:"base_url"`
	MaxResults  int           `mapstructure:"max_results"`
	QueryPrefix string        `mapstructure:"query_prefix"`
	QuerySuffix string        `mapstructure:"query_suffix"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

type BatchConfig struct {
	Delay       time.Duration `mapstructure:"delay"`
	Concurrency int           `mapstructure:"concurrency"`
	Pacing      string        `mapstructure:"pacing"`
	// RecordLimit caps how many syllabus rows one batch reads. The deployed
	// service has always read a single row, so that is the default; 0 reads all.
	RecordLimit int `mapstructure:"record_limit"`
}

type WorkerConfig struct {
	URL     string        `mapstructure:"url"`
	Token   string        `mapstructure:"token"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

func (c ServerConfig) Addr() string {
	return c.Host + ":" + c.Port
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("server.api_key", "")

	v.SetDefault("database.url", "")

	v.SetDefault("youtube.api_key", "")
	v.SetDefault("youtube.base_url", "https://www.googleapis.com/youtube/v3")
	v.SetDefault("youtube.max_results", 5)
	v.SetDefault("youtube.query_prefix", "mathematics")
	v.SetDefault("youtube.query_suffix", "tutorial")
	v.SetDefault("youtube.timeout", 15*time.Second)

	policy := batch.DefaultPolicy()
	v.SetDefault("batch.delay", policy.Delay)
	v.SetDefault("batch.concurrency", policy.Concurrency)
	v.SetDefault("batch.pacing", batch.PacingFixed)
	v.SetDefault("batch.record_limit", 1)

	v.SetDefault("worker.url", "http://localhost:8080/api/v1/curate")
	v.SetDefault("worker.token", "")
	v.SetDefault("worker.timeout", 60*time.Second)

	v.SetDefault("log.level", "info")
}

// Load reads configuration from the optional file at path and from
// CURATOR_* environment variables, which take precedence.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if c.YouTube.MaxResults <= 0 {
		errs = append(errs, fmt.Errorf("youtube.max_results must be positive, got %d", c.YouTube.MaxResults))
	}
	if c.Batch.Delay < 0 {
		errs = append(errs, fmt.Errorf("batch.delay must not be negative, got %s", c.Batch.Delay))
	}
	if c.Batch.Concurrency != 1 {
		errs = append(errs, fmt.Errorf("batch.concurrency must be 1, got %d", c.Batch.Concurrency))
	}
	if c.Batch.RecordLimit < 0 {
		errs = append(errs, fmt.Errorf("batch.record_limit must not be negative, got %d", c.Batch.RecordLimit))
	}
	switch c.Batch.Pacing {
	case batch.PacingFixed, batch.PacingTokenBucket:
	default:
		errs = append(errs, fmt.Errorf("unknown batch.pacing %q", c.Batch.Pacing))
	}
	return errors.Join(errs...)
}
