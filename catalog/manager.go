package catalog

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/AnkaWorks/kulturharita/boundaries"
	"github.com/AnkaWorks/kulturharita/provinces"
	"github.com/AnkaWorks/kulturharita/stats_collector"
)

type ManagerConfig struct {
	Logger           *logrus.Logger
	ProvincesLoader  *provinces.Loader
	BoundariesLoader *boundaries.Loader
	StatsCollector   stats_collector.StatsCollector
}

// Manager owns the dataset loaders and the current catalog. The catalog is
// swapped wholesale on (re)load, so request handlers always see a complete,
// internally consistent table.
type Manager struct {
	logger           *logrus.Logger
	provincesLoader  *provinces.Loader
	boundariesLoader *boundaries.Loader
	statsCollector   stats_collector.StatsCollector

	reloadMutex sync.Mutex

	catalogMutex sync.Mutex
	catalog      *Catalog
	config       Config
}

func NewManager(config ManagerConfig) (*Manager, error) {
	if config.ProvincesLoader == nil {
		return nil, fmt.Errorf("manager requires a provinces loader")
	}
	if config.BoundariesLoader == nil {
		return nil, fmt.Errorf("manager requires a boundaries loader")
	}

	mgr := &Manager{
		logger:           config.Logger,
		provincesLoader:  config.ProvincesLoader,
		boundariesLoader: config.BoundariesLoader,
		statsCollector:   config.StatsCollector,
	}
	return mgr, nil
}

// GetCatalog returns the current catalog. It may be stale as soon as it is
// retrieved if a reload happens, which is fine: the snapshot stays
// consistent for the remainder of the request using it.
func (mgr *Manager) GetCatalog() *Catalog {
	mgr.catalogMutex.Lock()
	defer mgr.catalogMutex.Unlock()
	return mgr.catalog
}

func (mgr *Manager) GetConfig() Config {
	mgr.catalogMutex.Lock()
	defer mgr.catalogMutex.Unlock()
	return mgr.config
}

// LoadCatalog re-reads both datasets and swaps in a freshly built catalog.
// It serves the initial load and SIGHUP/API reloads alike; when a reload
// fails, the previous catalog stays in service.
func (mgr *Manager) LoadCatalog(ctx context.Context, config Config) error {
	mgr.reloadMutex.Lock()
	defer mgr.reloadMutex.Unlock()

	if err := config.Validate(); err != nil {
		return err
	}

	records, err := mgr.provincesLoader.Reload(ctx)
	if err != nil {
		return fmt.Errorf("failed to load province records: %w", err)
	}

	collection, origin, err := mgr.boundariesLoader.Reload(ctx)
	if err != nil {
		return fmt.Errorf("failed to load boundaries: %w", err)
	}
	mgr.statsCollector.AddBoundariesLoaded(string(origin))

	catalog, err := New(mgr.logger, records, collection, config)
	if err != nil {
		return fmt.Errorf("failed to build catalog: %w", err)
	}

	mgr.statsCollector.SetRegionsMatched(uint64(catalog.MatchedCount()), uint64(catalog.Len()))

	mgr.catalogMutex.Lock()
	defer mgr.catalogMutex.Unlock()
	mgr.catalog = catalog
	mgr.config = config

	return nil
}

// Select resolves a click/list input pair against the current catalog and
// counts the served selection by source.
func (mgr *Manager) Select(click, list string) (Selection, Row, error) {
	selection, row, err := mgr.GetCatalog().Select(click, list)
	if err != nil {
		return selection, row, err
	}

	mgr.statsCollector.AddSelectionServed(string(selection.Source))
	return selection, row, nil
}

// Locate finds the region containing a coordinate and counts the outcome.
func (mgr *Manager) Locate(lat, lon float64) (Row, bool) {
	row, ok := mgr.GetCatalog().Locate(lat, lon)
	if ok {
		mgr.statsCollector.AddLocateHit(1)
	} else {
		mgr.statsCollector.AddLocateMiss(1)
	}
	return row, ok
}
