// Package config loads settings for the numerize binaries.
//
// Values are layered: the defaults embedded from data/numerize.yaml, then an
// optional YAML file, then environment variables. LoadDotenv reads a .env
// file into the environment first, so it takes part in the last layer.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/az-ai-labs/numerizer/data"
	"github.com/az-ai-labs/numerizer/numerize"
)

// Config holds the settings shared by the numerize binaries.
type Config struct {
	Locale   string `yaml:"locale"`
	System   string `yaml:"system"`
	LogLevel string `yaml:"log_level"`
	Env      string `yaml:"env"`

	Server    Server    `yaml:"server"`
	Smoketest Smoketest `yaml:"smoketest"`
}

// Server configures the HTTP API served by numerized.
type Server struct {
	Addr            string        `yaml:"addr"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"`
	CORSOrigins     []string      `yaml:"cors_origins"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// Smoketest configures the corpus smoke test.
type Smoketest struct {
	Workers int `yaml:"workers"`
}

// Default returns the embedded defaults.
func Default() (*Config, error) {
	var cfg Config
	if err := decode(data.DefaultConfig, &cfg); err != nil {
		return nil, fmt.Errorf("config: embedded defaults: %w", err)
	}
	return &cfg, nil
}

// Load builds the configuration from the embedded defaults, the YAML file at
// path when path is not empty, and the environment, then validates it.
func Load(path string) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		if err := decode(raw, cfg); err != nil {
			return nil, fmt.Errorf("config: %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadDotenv loads the given .env files (".env" when none are named) into
// the process environment. Missing files are not an error.
func LoadDotenv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config: %s: %w", f, err)
		}
	}
	return nil
}

// decode unmarshals YAML into cfg, rejecting unknown keys. An empty
// document leaves cfg unchanged.
func decode(raw []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (c *Config) applyEnv() error {
	c.Locale = getEnv("NUMERIZE_LOCALE", c.Locale)
	c.System = getEnv("NUMERIZE_SYSTEM", c.System)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.Env = getEnv("APP_ENV", c.Env)
	c.Server.Addr = getEnv("NUMERIZE_ADDR", c.Server.Addr)

	if v := os.Getenv("NUMERIZE_CORS_ORIGINS"); v != "" {
		c.Server.CORSOrigins = splitList(v)
	}

	var err error
	if c.Server.MaxBodyBytes, err = getEnvInt64("NUMERIZE_MAX_BODY_BYTES", c.Server.MaxBodyBytes); err != nil {
		return err
	}
	if c.Smoketest.Workers, err = getEnvInt("NUMERIZE_WORKERS", c.Smoketest.Workers); err != nil {
		return err
	}
	return nil
}

// Validate checks that every value is usable.
func (c *Config) Validate() error {
	if _, err := numerize.ParseLocale(c.Locale); err != nil {
		return fmt.Errorf("config: locale: %w", err)
	}
	if _, err := numerize.ParseNumberingSystem(c.System); err != nil {
		return fmt.Errorf("config: system: %w", err)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: log_level %q must be debug, info, warn or error", c.LogLevel)
	}
	if c.Server.Addr == "" {
		return errors.New("config: server.addr is required")
	}
	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("config: server.max_body_bytes must be positive, got %d", c.Server.MaxBodyBytes)
	}
	if c.Server.ReadTimeout < 0 || c.Server.WriteTimeout < 0 || c.Server.ShutdownTimeout < 0 {
		return errors.New("config: server timeouts must not be negative")
	}
	if c.Smoketest.Workers < 1 {
		return fmt.Errorf("config: smoketest.workers must be at least 1, got %d", c.Smoketest.Workers)
	}
	return nil
}

// IsDevelopment reports whether the binaries run in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Numerizer builds the Numerizer selected by Locale and System.
func (c *Config) Numerizer() (*numerize.Numerizer, error) {
	loc, err := numerize.ParseLocale(c.Locale)
	if err != nil {
		return nil, err
	}
	sys, err := numerize.ParseNumberingSystem(c.System)
	if err != nil {
		return nil, err
	}
	return numerize.New(numerize.WithLocale(loc), numerize.WithNumberingSystem(sys))
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config: invalid %s: %w", key, err)
	}
	return n, nil
}

func getEnvInt64(key string, defaultValue int64) (int64, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("config: invalid %s: %w", key, err)
	}
	return n, nil
}

func splitList(s string) []string {
	var out []string
	for part := range strings.SplitSeq(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
