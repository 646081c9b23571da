package catalog

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnkaWorks/kulturharita/boundaries"
	"github.com/AnkaWorks/kulturharita/provinces"
	"github.com/AnkaWorks/kulturharita/stats_collector"
)

func writeTestDatasets(t *testing.T, records []provinces.Province) (string, string) {
	t.Helper()
	dir := t.TempDir()

	recordsJSON, err := json.Marshal(records)
	require.NoError(t, err)

	provincesFile := filepath.Join(dir, "provinces.json")
	require.NoError(t, os.WriteFile(provincesFile, recordsJSON, 0644))

	collectionJSON, err := testCollection().MarshalJSON()
	require.NoError(t, err)

	boundariesFile := filepath.Join(dir, "il.geojson")
	require.NoError(t, os.WriteFile(boundariesFile, collectionJSON, 0644))

	return provincesFile, boundariesFile
}

func newTestManager(t *testing.T, provincesFile, boundariesFile string) *Manager {
	t.Helper()
	logger := testLogger()

	provincesLoader, err := provinces.NewLoader(logger, provinces.Config{Filename: provincesFile})
	require.NoError(t, err)

	boundariesConfig := boundaries.GetDefaultConfig()
	boundariesConfig.Filename = boundariesFile
	boundariesConfig.CacheDir = t.TempDir()

	boundariesLoader, err := boundaries.NewLoader(logger, boundariesConfig)
	require.NoError(t, err)

	mgr, err := NewManager(ManagerConfig{
		Logger:           logger,
		ProvincesLoader:  provincesLoader,
		BoundariesLoader: boundariesLoader,
		StatsCollector:   stats_collector.NewNoopStatsCollector(),
	})
	require.NoError(t, err)
	return mgr
}

func TestManagerLoadCatalog(t *testing.T) {
	provincesFile, boundariesFile := writeTestDatasets(t, testRecords())
	mgr := newTestManager(t, provincesFile, boundariesFile)
	ctx := context.Background()

	require.Nil(t, mgr.GetCatalog())
	require.NoError(t, mgr.LoadCatalog(ctx, GetDefaultConfig()))

	catalog := mgr.GetCatalog()
	require.NotNil(t, catalog)
	assert.Equal(t, 3, catalog.Len())
	assert.Equal(t, 2, catalog.MatchedCount())
	assert.Equal(t, GetDefaultConfig(), mgr.GetConfig())
}

func TestManagerDefaultSelection(t *testing.T) {
	provincesFile, boundariesFile := writeTestDatasets(t, testRecords())
	mgr := newTestManager(t, provincesFile, boundariesFile)
	require.NoError(t, mgr.LoadCatalog(context.Background(), GetDefaultConfig()))

	// no interaction: the first record is selected
	selection, row, err := mgr.Select("", "")
	require.NoError(t, err)
	assert.Equal(t, SelectionSourceDefault, selection.Source)
	assert.Equal(t, "Adana", row.Name)
	assert.Equal(t, "kebap", row.Culture)
}

func TestManagerSelectEndToEnd(t *testing.T) {
	// content and boundary spell the name differently; the normalizer
	// bridges them and selection returns the content row.
	records := []provinces.Province{{Name: "Adana", Culture: "X"}}
	provincesFile, boundariesFile := writeTestDatasets(t, records)
	mgr := newTestManager(t, provincesFile, boundariesFile)
	require.NoError(t, mgr.LoadCatalog(context.Background(), GetDefaultConfig()))

	row, err := mgr.GetCatalog().Row("Adana")
	require.NoError(t, err)
	assert.Equal(t, Row{Name: "Adana", FeatureName: "ADANA", Culture: "X", Matched: true}, row)

	selection, row, err := mgr.Select("", "Adana")
	require.NoError(t, err)
	assert.Equal(t, SelectionSourceList, selection.Source)
	assert.Equal(t, "X", row.Culture)
}

func TestManagerLocate(t *testing.T) {
	provincesFile, boundariesFile := writeTestDatasets(t, testRecords())
	mgr := newTestManager(t, provincesFile, boundariesFile)
	require.NoError(t, mgr.LoadCatalog(context.Background(), GetDefaultConfig()))

	row, ok := mgr.Locate(41.0, 29.0)
	require.True(t, ok)
	assert.Equal(t, "İstanbul", row.Name)

	_, ok = mgr.Locate(34.0, 30.0)
	assert.False(t, ok)
}

func TestManagerReloadPicksUpDatasetChanges(t *testing.T) {
	provincesFile, boundariesFile := writeTestDatasets(t, testRecords())
	mgr := newTestManager(t, provincesFile, boundariesFile)
	ctx := context.Background()

	require.NoError(t, mgr.LoadCatalog(ctx, GetDefaultConfig()))
	require.Equal(t, 3, mgr.GetCatalog().Len())

	extended := append(testRecords(), provinces.Province{Name: "Ankara", Culture: "başkent"})
	extendedJSON, err := json.Marshal(extended)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(provincesFile, extendedJSON, 0644))

	require.NoError(t, mgr.LoadCatalog(ctx, GetDefaultConfig()))
	assert.Equal(t, 4, mgr.GetCatalog().Len())
}

func TestManagerFailedReloadKeepsPreviousCatalog(t *testing.T) {
	provincesFile, boundariesFile := writeTestDatasets(t, testRecords())
	mgr := newTestManager(t, provincesFile, boundariesFile)
	ctx := context.Background()

	require.NoError(t, mgr.LoadCatalog(ctx, GetDefaultConfig()))
	previous := mgr.GetCatalog()

	require.NoError(t, os.WriteFile(provincesFile, []byte("{broken"), 0644))

	err := mgr.LoadCatalog(ctx, GetDefaultConfig())
	require.Error(t, err)

	var loadErr *provinces.DataLoadError
	assert.ErrorAs(t, err, &loadErr)

	// the session keeps serving the previous table
	assert.Same(t, previous, mgr.GetCatalog())
}

func TestNewManagerRequiresLoaders(t *testing.T) {
	logger := testLogger()

	_, err := NewManager(ManagerConfig{Logger: logger})
	assert.Error(t, err)

	provincesLoader, err := provinces.NewLoader(logger, provinces.Config{Filename: "x.json"})
	require.NoError(t, err)

	_, err = NewManager(ManagerConfig{Logger: logger, ProvincesLoader: provincesLoader})
	assert.Error(t, err)
}
