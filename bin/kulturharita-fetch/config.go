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
	"github.com/AnkaWorks/kulturharita/logging"
	"github.com/AnkaWorks/kulturharita/provinces"
)

type Config struct {
	Provinces  provinces.Config  `koanf:"provinces"`
	Boundaries boundaries.Config `koanf:"boundaries"`
	Catalog    catalog.Config    `koanf:"catalog"`

	Logging logging.Config `koanf:"logging"`
}

func (cfg *Config) CreateLogger(rotate bool) *logrus.Logger {
	return cfg.Logging.CreateLogger(rotate, true)
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

	return nil
}

var defaultConfig = Config{
	Provinces:  provinces.GetDefaultConfig(),
	Boundaries: boundaries.GetDefaultConfig(),
	Catalog:    catalog.GetDefaultConfig(),

	Logging: logging.Config{
		Filename:   filepath.FromSlash("logs/kulturharita-fetch.log"),
		MaxSizeMB:  100,
		MaxAgeDays: 7,
		MaxBackups: 20,
		Compress:   false,
	},
}

func LoadConfig(filename string) (*Config, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
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
