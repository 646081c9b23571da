package pyroscope

import "errors"

type Config struct {
	ApplicationName      string `koanf:"application_name"`
	ServerAddress        string `koanf:"server_address"`
	ApiKey               string `koanf:"api_key"`
	MutexProfileFraction int    `koanf:"mutex_profile_fraction"`
	BlockProfileRate     int    `koanf:"block_profile_rate"`
}

// Enabled reports whether a collector address is configured. Profiling
// is off otherwise.
func (cfg *Config) Enabled() bool {
	return cfg.ServerAddress != ""
}

func (cfg *Config) Validate() error {
	if !cfg.Enabled() {
		return nil
	}
	if cfg.ApplicationName == "" {
		return errors.New("pyroscope requires an 'application_name'")
	}
	return nil
}

func GetDefaultConfig(applicationName string) Config {
	return Config{
		ApplicationName: applicationName,
	}
}
