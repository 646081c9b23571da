package boundaries

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"
)

const DEFAULT_FETCH_TIMEOUT_SECONDS = 20

// The upstream dataset lives in a repo whose default branch has moved over
// time, so both spellings are tried in order.
var defaultMirrorURLs = []string{
	"https://raw.githubusercontent.com/cihadturhan/geojson/main/tr-81-il.geojson",
	"https://raw.githubusercontent.com/cihadturhan/geojson/master/tr-81-il.geojson",
}

type Config struct {
	// Filename, when set, loads the feature collection straight from a local
	// file and the mirror list is never consulted.
	Filename string `koanf:"filename"`

	CacheDir      string   `koanf:"cache_dir"`
	CacheFilename string   `koanf:"cache_filename"`
	MirrorURLs    []string `koanf:"mirror_urls"`

	FetchTimeoutSeconds int `koanf:"fetch_timeout_seconds"`
}

func (cfg *Config) FetchTimeout() time.Duration {
	return time.Second * time.Duration(cfg.FetchTimeoutSeconds)
}

func (cfg *Config) Validate() error {
	if cfg.Filename != "" {
		f, err := os.Open(cfg.Filename)
		if err != nil {
			return fmt.Errorf("'boundaries.filename' is '%s', which is missing or not accessible: %w", cfg.Filename, err)
		}
		f.Close()
		return nil
	}

	if cfg.CacheDir == "" {
		return errors.New("no 'boundaries.cache_dir' configured")
	}
	if cfg.CacheFilename == "" {
		return errors.New("no 'boundaries.cache_filename' configured")
	}
	if len(cfg.MirrorURLs) == 0 {
		return errors.New("no 'boundaries.mirror_urls' configured")
	}
	for _, mirror := range cfg.MirrorURLs {
		uri, err := url.Parse(mirror)
		if err != nil || uri.Scheme == "" || uri.Host == "" {
			return fmt.Errorf("'boundaries.mirror_urls' entry '%s' looks malformed", mirror)
		}
	}
	if cfg.FetchTimeoutSeconds <= 0 {
		return fmt.Errorf("invalid 'boundaries.fetch_timeout_seconds' %d: must be > 0", cfg.FetchTimeoutSeconds)
	}

	return nil
}

func GetDefaultConfig() Config {
	return Config{
		CacheDir:            filepath.FromSlash("./data"),
		CacheFilename:       "tr-81-il.geojson",
		MirrorURLs:          append([]string(nil), defaultMirrorURLs...),
		FetchTimeoutSeconds: DEFAULT_FETCH_TIMEOUT_SECONDS,
	}
}
