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

const (
	ResponderMock = "mock"
	ResponderLLM  = "llm"
)

// Config is the effective server configuration
type Config struct {
	Server struct {
		Addr       string `yaml:"addr"`
		SwaggerURL string `yaml:"swagger_url"`
	} `yaml:"server"`
	Redis struct {
		Enabled   bool   `yaml:"enabled"`
		Host      string `yaml:"host"`
		Port      int    `yaml:"port"`
		Password  string `yaml:"password"`
		DB        int    `yaml:"db"`
		PoolSize  int    `yaml:"pool_size"`
		KeyPrefix string `yaml:"key_prefix"`
	} `yaml:"redis"`
	Dispatch struct {
		Responder string        `yaml:"responder"`
		MinDelay  time.Duration `yaml:"min_delay"`
		MaxDelay  time.Duration `yaml:"max_delay"`
	} `yaml:"dispatch"`
	LLM struct {
		BaseURL string        `yaml:"base_url"`
		Model   string        `yaml:"model"`
		Timeout time.Duration `yaml:"timeout"`
	} `yaml:"llm"`
	Documents struct {
		ProcessingDelay time.Duration `yaml:"processing_delay"`
		Workers         int           `yaml:"workers"`
		QueueSize       int           `yaml:"queue_size"`
	} `yaml:"documents"`
	Logging struct {
		Level       string `yaml:"level"`
		Development bool   `yaml:"development"`
	} `yaml:"logging"`
	ClaimsFile string `yaml:"claims_file"`
}

// Default returns the configuration used when no file or env is present
func Default() *Config {
	cfg := &Config{}
	cfg.Server.Addr = ":8080"
	cfg.Server.SwaggerURL = "http://localhost:8080/swagger/doc.json"
	cfg.Redis.Enabled = true
	cfg.Redis.Host = "localhost"
	cfg.Redis.Port = 6379
	cfg.Redis.PoolSize = 10
	cfg.Redis.KeyPrefix = "claims-assistant:library"
	cfg.Dispatch.Responder = ResponderMock
	cfg.Dispatch.MinDelay = 800 * time.Millisecond
	cfg.Dispatch.MaxDelay = 1200 * time.Millisecond
	cfg.LLM.BaseURL = "http://localhost:1234/v1"
	cfg.LLM.Model = "llama-3.2-3b-instruct"
	cfg.LLM.Timeout = 120 * time.Second
	cfg.Documents.ProcessingDelay = 2 * time.Second
	cfg.Documents.Workers = 3
	cfg.Documents.QueueSize = 100
	cfg.Logging.Level = "info"
	return cfg
}

// Load builds the effective config: defaults, then the YAML file at path
// (skipped when path is empty or missing), then environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		b, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(b, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config YAML: %w", err)
			}
		case errors.Is(err, os.ErrNotExist):
		default:
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if err := ApplyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnvOverrides copies set environment variables onto cfg
func ApplyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("CLAIMS_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("SWAGGER_URL"); v != "" {
		cfg.Server.SwaggerURL = v
	}
	if v := os.Getenv("CLAIMS_FILE"); v != "" {
		cfg.ClaimsFile = v
	}

	if v := os.Getenv("REDIS_ENABLED"); v != "" {
		enabled, err := parseBool("REDIS_ENABLED", v)
		if err != nil {
			return err
		}
		cfg.Redis.Enabled = enabled
	}
	if v := os.Getenv("REDIS_HOST"); v != "" {
		cfg.Redis.Host = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if err := envInt("REDIS_PORT", &cfg.Redis.Port); err != nil {
		return err
	}
	if err := envInt("REDIS_DB", &cfg.Redis.DB); err != nil {
		return err
	}
	if err := envInt("REDIS_POOL_SIZE", &cfg.Redis.PoolSize); err != nil {
		return err
	}
	if v := os.Getenv("LIBRARY_KEY_PREFIX"); v != "" {
		cfg.Redis.KeyPrefix = v
	}

	if v := os.Getenv("RESPONDER"); v != "" {
		cfg.Dispatch.Responder = strings.ToLower(strings.TrimSpace(v))
	}
	if err := envDuration("DISPATCH_MIN_DELAY", &cfg.Dispatch.MinDelay); err != nil {
		return err
	}
	if err := envDuration("DISPATCH_MAX_DELAY", &cfg.Dispatch.MaxDelay); err != nil {
		return err
	}

	if v := os.Getenv("LLM_BASE_URL"); v != "" {
		cfg.LLM.BaseURL = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		cfg.LLM.Model = v
	}
	if err := envDuration("LLM_TIMEOUT", &cfg.LLM.Timeout); err != nil {
		return err
	}

	if err := envDuration("DOCUMENT_PROCESSING_DELAY", &cfg.Documents.ProcessingDelay); err != nil {
		return err
	}
	if err := envInt("DOCUMENT_WORKERS", &cfg.Documents.Workers); err != nil {
		return err
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Logging.Level = strings.ToLower(strings.TrimSpace(v))
	}
	if v := os.Getenv("LOG_DEVELOPMENT"); v != "" {
		dev, err := parseBool("LOG_DEVELOPMENT", v)
		if err != nil {
			return err
		}
		cfg.Logging.Development = dev
	}
	return nil
}

// Validate rejects configurations the server cannot run with
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return errors.New("server address cannot be empty")
	}
	if c.Dispatch.MinDelay < 0 || c.Dispatch.MaxDelay < 0 {
		return errors.New("dispatch delays cannot be negative")
	}
	if c.Dispatch.MinDelay > c.Dispatch.MaxDelay {
		return fmt.Errorf("dispatch min delay %s exceeds max delay %s", c.Dispatch.MinDelay, c.Dispatch.MaxDelay)
	}
	switch c.Dispatch.Responder {
	case ResponderMock, ResponderLLM:
	default:
		return fmt.Errorf("unknown responder %q (want %s or %s)", c.Dispatch.Responder, ResponderMock, ResponderLLM)
	}
	if c.Documents.ProcessingDelay < 0 {
		return errors.New("document processing delay cannot be negative")
	}
	if c.Documents.Workers <= 0 {
		return errors.New("document workers must be positive")
	}
	if c.Redis.Enabled && (c.Redis.Port <= 0 || c.Redis.Port > 65535) {
		return fmt.Errorf("invalid redis port %d", c.Redis.Port)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Logging.Level)
	}
	return nil
}

func envInt(key string, dst *int) error {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*dst = n
	return nil
}

func envDuration(key string, dst *time.Duration) error {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*dst = d
	return nil
}

func parseBool(key, v string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes":
		return true, nil
	case "0", "false", "no":
		return false, nil
	default:
		return false, fmt.Errorf("invalid %s: %q", key, v)
	}
}
