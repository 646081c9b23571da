package provinces

import (
	"errors"
	"path/filepath"
)

type Config struct {
	Filename string `koanf:"filename"`
}

func (cfg *Config) Validate() error {
	if cfg.Filename == "" {
		return errors.New("no 'provinces.filename' configured")
	}
	return nil
}

func GetDefaultConfig() Config {
	return Config{
		Filename: filepath.FromSlash("data/provinces.json"),
	}
}
