package httpserver

import "errors"

const DEFAULT_ADDR = "127.0.0.1:9081"

type Config struct {
	Addr string `koanf:"addr"`
}

func (cfg *Config) Validate() error {
	if cfg.Addr == "" {
		return errors.New("no 'http.addr' configured")
	}
	return nil
}

func GetDefaultConfig() Config {
	return Config{
		Addr: DEFAULT_ADDR,
	}
}
