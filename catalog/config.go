package catalog

import "fmt"

const DEFAULT_MATCH_WARN_PERCENT = 90

type Config struct {
	// MatchWarnPercent is the smallest share of content rows (in percent)
	// that must match a boundary feature before the post-join check stays
	// quiet. 0 disables the check.
	MatchWarnPercent int `koanf:"match_warn_percent"`
}

func (cfg *Config) Validate() error {
	if cfg.MatchWarnPercent < 0 || cfg.MatchWarnPercent > 100 {
		return fmt.Errorf("invalid 'catalog.match_warn_percent' %d: must be between 0 and 100", cfg.MatchWarnPercent)
	}
	return nil
}

func GetDefaultConfig() Config {
	return Config{
		MatchWarnPercent: DEFAULT_MATCH_WARN_PERCENT,
	}
}
