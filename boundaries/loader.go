// Package boundaries obtains and indexes the province boundary dataset: a
// GeoJSON feature collection with one polygon (or multipolygon) per region,
// each carrying the region's display name in its property bag.
package boundaries

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/paulmach/orb/geojson"
	"github.com/sirupsen/logrus"
)

// LoadOrigin names where a load was satisfied from.
type LoadOrigin string

const (
	OriginMemory LoadOrigin = "memory"
	OriginFile   LoadOrigin = "file"
	OriginCache  LoadOrigin = "cache"
	OriginMirror LoadOrigin = "mirror"
)

// Loader produces the session's feature collection. Resolution order: the
// in-memory copy, then the local cache file, then the mirror list (first
// success is persisted to the cache). The collection is read-only for
// everyone downstream.
//
// The cache file is shared between processes. Concurrent first runs may race
// to create it; the write goes through a temp file plus rename so the last
// writer wins with a complete file, and readers that find junk treat it as a
// miss and go back to the mirrors.
type Loader struct {
	logger        *logrus.Logger
	fetcher       *mirrorFetcher
	filename      string
	cacheDir      string
	cacheFilename string
	collection    atomic.Pointer[geojson.FeatureCollection]
}

func NewLoader(logger *logrus.Logger, config Config) (*Loader, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	loader := &Loader{
		logger:        logger,
		filename:      config.Filename,
		cacheDir:      config.CacheDir,
		cacheFilename: config.CacheFilename,
	}

	if config.Filename == "" {
		loader.fetcher = newMirrorFetcher(logger, config.MirrorURLs, config.FetchTimeout())
	}

	return loader, nil
}

func (loader *Loader) FullCachePath() string {
	return filepath.Join(loader.cacheDir, loader.cacheFilename)
}

// Load returns the session's feature collection, obtaining it on first call.
func (loader *Loader) Load(ctx context.Context) (*geojson.FeatureCollection, LoadOrigin, error) {
	if fc := loader.collection.Load(); fc != nil {
		return fc, OriginMemory, nil
	}
	return loader.Reload(ctx)
}

// Reload bypasses the in-memory copy. The cache file is still honored; only
// a missing or unparseable cache goes out to the mirrors.
func (loader *Loader) Reload(ctx context.Context) (*geojson.FeatureCollection, LoadOrigin, error) {
	if loader.filename != "" {
		fc, err := loadCollectionFile(loader.filename)
		if err != nil {
			return nil, OriginFile, fmt.Errorf("boundary file '%s' cannot be loaded: %w", loader.filename, err)
		}
		loader.logger.Infof("BOUNDARIES: loaded %d feature(s) from file '%s'", len(fc.Features), loader.filename)
		loader.collection.Store(fc)
		return fc, OriginFile, nil
	}

	cachePath := loader.FullCachePath()

	fc, err := loadCollectionFile(cachePath)
	if err == nil {
		loader.logger.Infof("BOUNDARIES: loaded %d feature(s) from cache '%s'", len(fc.Features), cachePath)
		loader.collection.Store(fc)
		return fc, OriginCache, nil
	}
	if !os.IsNotExist(err) {
		loader.logger.Warnf("BOUNDARIES: ignoring unusable cache '%s': %v", cachePath, err)
	}

	raw, fc, err := loader.fetcher.Fetch(ctx)
	if err != nil {
		return nil, OriginMirror, err
	}

	loader.collection.Store(fc)

	if err := loader.writeCache(raw); err == nil {
		loader.logger.Infof("BOUNDARIES: cached boundary geojson at '%s'", cachePath)
	} else {
		loader.logger.Warnf("BOUNDARIES: failed to write cache file: %v", err)
	}

	return fc, OriginMirror, nil
}

// writeCache persists the raw mirror body via temp-file-plus-rename so a
// crash mid-write never leaves a half file under the cache name.
func (loader *Loader) writeCache(raw []byte) error {
	if err := os.MkdirAll(loader.cacheDir, 0o755); err != nil {
		return err
	}

	f, err := os.CreateTemp(loader.cacheDir, loader.cacheFilename+".*")
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.Write(raw); err != nil {
		if unlinkErr := os.Remove(f.Name()); unlinkErr != nil {
			loader.logger.Warnf("BOUNDARIES: failed to remove tmpfile '%s': %v", f.Name(), unlinkErr)
		}
		return err
	}

	if err := os.Rename(f.Name(), loader.FullCachePath()); err != nil {
		return fmt.Errorf("failed to rename tmp cache file: %s -> %s: %v", f.Name(), loader.cacheFilename, err)
	}

	return nil
}

func loadCollectionFile(filename string) (*geojson.FeatureCollection, error) {
	raw, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return geojson.UnmarshalFeatureCollection(raw)
}
