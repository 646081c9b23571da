package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"github.com/sirupsen/logrus"

	"github.com/AnkaWorks/kulturharita/boundaries"
	"github.com/AnkaWorks/kulturharita/catalog"
	"github.com/AnkaWorks/kulturharita/httpserver"
	"github.com/AnkaWorks/kulturharita/logging"
	"github.com/AnkaWorks/kulturharita/provinces"
	"github.com/AnkaWorks/kulturharita/pyroscope"
	"github.com/AnkaWorks/kulturharita/stats_collector"
)

type Config struct {
	Provinces  provinces.Config  `koanf:"provinces"`
	Boundaries boundaries.Config `koanf:"boundaries"`
	Catalog    catalog.Config    `koanf:"catalog"`

	Logging logging.Config    `koanf:"logging"`
	HTTP    httpserver.Config `koanf:"http"`

	Prometheus stats_collector.PrometheusConfig `koanf:"prometheus"`
	Pyroscope  pyroscope.Config                 `koanf:"pyroscope"`
}

func (cfg *Config) CreateLogger(rotate bool) *logrus.Logger {
	return cfg.Logging.CreateLogger(rotate, true)
}

func (cfg *Config) GetPrometheusConfig() stats_collector.PrometheusConfig {
	return cfg.Prometheus
}

func (cfg *Config) Validate() error {
	if err := cfg.Provinces.Validate(); err != nil {
		return err
	}

	if err := cfg.Boundaries.Validate(); err != nil {
		return err
	}

	if err := cfg.Catalog.Validate(); err != nil {
		return err
	}

	if err := cfg.Logging.Validate(); err != nil {
		return err
	}

	if err := cfg.HTTP.Validate(); err != nil {
		return err
	}

	if err := cfg.Prometheus.Validate(); err != nil {
		return err
	}

	if err := cfg.Pyroscope.Validate(); err != nil {
		return err
	}

	return nil
}

func GetDefaultConfig() Config {
	return Config{
		Provinces:  provinces.GetDefaultConfig(),
		Boundaries: boundaries.GetDefaultConfig(),
		Catalog:    catalog.GetDefaultConfig(),

		Logging: logging.Config{
			Filename:   filepath.FromSlash("logs/kulturharita.log"),
			MaxSizeMB:  500,
			MaxAgeDays: 7,
			MaxBackups: 20,
			Compress:   true,
		},

		HTTP: httpserver.GetDefaultConfig(),

		Prometheus: stats_collector.GetDefaultPrometheusConfig(),
		Pyroscope:  pyroscope.GetDefaultConfig("kulturharita"),
	}
}

func LoadConfig(filename string, defaultConfig Config) (*Config, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("couldn't open '%s': %w", filename, err)
	}
	defer f.Close()

	k := koanf.New(".")
	err = k.Load(structs.Provider(defaultConfig, "koanf"), nil)
	if err != nil {
		return nil, fmt.Errorf("couldn't load default config: %w", err)
	}

	err = k.Load(file.Provider(filename), toml.Parser())
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	var cfg Config

	err = k.Unmarshal("", &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	err = cfg.Validate()
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}
