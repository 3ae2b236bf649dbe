package app

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/Pomi44/OIB/internal/services/search"
	"github.com/Pomi44/OIB/internal/services/search/coordinator"
	"github.com/Pomi44/OIB/internal/services/search/digest"
	"github.com/Pomi44/OIB/internal/services/search/notifier"
	"github.com/Pomi44/OIB/internal/services/search/searchservice"
	"github.com/Pomi44/OIB/pkg/logging"
	"gopkg.in/yaml.v3"
)

const defaultUnknownDigits = 6

// SearchConfig keeps the keys of the original JSON config at the top level.
type SearchConfig struct {
	Hash          string   `yaml:"hash"`
	Algorithm     string   `yaml:"algorithm"`
	Bins          []string `yaml:"bins"`
	LastNumbers   string   `yaml:"last_numbers"`
	UnknownDigits *int     `yaml:"unknown_digits"`
}

type Config struct {
	SearchConfig                `yaml:",inline"`
	notifier.FileNotifierConfig `yaml:",inline"`

	Logger      *logging.LoggerConfig        `yaml:"logger"`
	Service     *searchservice.Config        `yaml:"service"`
	Coordinator *coordinator.Config          `yaml:"coordinator"`
	Notifier    *notifier.HTTPNotifierConfig `yaml:"notifier"`
}

func (c *Config) applyDefaults() {
	if c.Algorithm == "" {
		c.Algorithm = digest.DefaultAlgorithm
	}

	if c.UnknownDigits == nil {
		digits := defaultUnknownDigits
		c.UnknownDigits = &digits
	}

	if c.Logger == nil {
		c.Logger = &logging.LoggerConfig{Level: "info"}
	}

	if c.Service == nil {
		c.Service = &searchservice.Config{}
	}

	if c.Coordinator == nil {
		c.Coordinator = &coordinator.Config{}
	}
}

func (c *Config) Validate() error {
	if c.Hash == "" {
		return fmt.Errorf("hash is required")
	}

	if len(c.Bins) == 0 {
		return fmt.Errorf("at least one bin is required")
	}

	if c.DataPath == "" {
		return fmt.Errorf("data_path is required")
	}

	if *c.UnknownDigits < 0 || *c.UnknownDigits > search.MaxUnknownDigits {
		return fmt.Errorf("unknown_digits must be in [0, %d]", search.MaxUnknownDigits)
	}

	if c.Service.Workers < 0 {
		return fmt.Errorf("service workers must not be negative")
	}

	if c.Notifier != nil && c.Notifier.NotifyURL == "" {
		return fmt.Errorf("notifier notify_url is required when notifier is set")
	}

	if _, err := digest.Lookup(c.Algorithm); err != nil {
		return err
	}

	return nil
}

// Request turns the config into a search request, decoding the target digest.
func (c *Config) Request(workers int) (*search.Request, digest.Algorithm, error) {
	alg, err := digest.Lookup(c.Algorithm)
	if err != nil {
		return nil, digest.Algorithm{}, err
	}

	target, err := digest.ParseTarget(alg, c.Hash)
	if err != nil {
		return nil, digest.Algorithm{}, err
	}

	return &search.Request{
		Prefixes:      c.Bins,
		Suffix:        c.LastNumbers,
		UnknownDigits: *c.UnknownDigits,
		TargetDigest:  target,
		Workers:       workers,
	}, alg, nil
}

func loadConfig(cfgPath string) (*Config, error) {
	slog.Info("parsing config...", slog.String("path", cfgPath))

	bytes, err := os.ReadFile(cfgPath)
	if err != nil {
		slog.Error("read file failed", slog.Any("error", err))
		return nil, err
	}

	cfg := &Config{}

	if err := yaml.Unmarshal(bytes, cfg); err != nil {
		slog.Error("parse config failed", slog.Any("error", err))
		return nil, err
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		slog.Error("validate config failed", slog.Any("error", err))
		return nil, err
	}

	slog.Info("config validated")

	return cfg, nil
}
