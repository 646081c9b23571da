package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnkaWorks/kulturharita/boundaries"
	"github.com/AnkaWorks/kulturharita/catalog"
	"github.com/AnkaWorks/kulturharita/provinces"
	"github.com/AnkaWorks/kulturharita/stats_collector"
)

const testProvincesJSON = `[
	{"name": "Adana", "culture": "Kebap şehri."},
	{"name": "İstanbul", "culture": "İki kıtanın şehri."},
	{"name": "Nazilli", "culture": "Aslında bir ilçe."}
]`

const testBoundariesJSON = `{
	"type": "FeatureCollection",
	"features": [
		{
			"type": "Feature",
			"properties": {"name": "ADANA"},
			"geometry": {"type": "Polygon", "coordinates": [[[35.0,36.5],[36.0,36.5],[36.0,37.5],[35.0,37.5],[35.0,36.5]]]}
		},
		{
			"type": "Feature",
			"properties": {"name": "İSTANBUL"},
			"geometry": {"type": "Polygon", "coordinates": [[[28.0,40.8],[29.5,40.8],[29.5,41.5],[28.0,41.5],[28.0,40.8]]]}
		}
	]
}`

type testServer struct {
	srv      *HTTPServer
	reloaded int
	reloadFn func() error
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(os.Stdout)

	dir := t.TempDir()
	provincesFile := filepath.Join(dir, "provinces.json")
	require.NoError(t, os.WriteFile(provincesFile, []byte(testProvincesJSON), 0644))

	boundariesFile := filepath.Join(dir, "il.geojson")
	require.NoError(t, os.WriteFile(boundariesFile, []byte(testBoundariesJSON), 0644))

	provincesLoader, err := provinces.NewLoader(logger, provinces.Config{Filename: provincesFile})
	require.NoError(t, err)

	boundariesConfig := boundaries.GetDefaultConfig()
	boundariesConfig.Filename = boundariesFile
	boundariesConfig.CacheDir = t.TempDir()
	boundariesLoader, err := boundaries.NewLoader(logger, boundariesConfig)
	require.NoError(t, err)

	statsCollector := stats_collector.NewNoopStatsCollector()

	mgr, err := catalog.NewManager(catalog.ManagerConfig{
		Logger:           logger,
		ProvincesLoader:  provincesLoader,
		BoundariesLoader: boundariesLoader,
		StatsCollector:   statsCollector,
	})
	require.NoError(t, err)
	require.NoError(t, mgr.LoadCatalog(context.Background(), catalog.GetDefaultConfig()))

	ts := &testServer{}

	srv, err := NewHTTPServer(logger, mgr, statsCollector, func() error {
		ts.reloaded++
		return ts.reloadFn()
	})
	require.NoError(t, err)

	ts.srv = srv
	ts.reloadFn = func() error { return nil }
	return ts
}

func (ts *testServer) request(t *testing.T, method, url string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(method, url, nil)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	ts.srv.ginRouter.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func TestGetProvinces(t *testing.T) {
	ts := newTestServer(t)

	w := ts.request(t, http.MethodGet, "/api/provinces")
	require.Equal(t, http.StatusOK, w.Code)

	var resp getProvincesResponse
	decodeBody(t, w, &resp)

	require.Len(t, resp.Provinces, 3)
	assert.Equal(t, "Adana", resp.Provinces[0].Name)
	assert.Equal(t, "ADANA", resp.Provinces[0].FeatureName)
	assert.True(t, resp.Provinces[0].Matched)
	assert.NotEmpty(t, resp.Provinces[0].Color)
	assert.Equal(t, "Nazilli", resp.Provinces[2].FeatureName)
	assert.False(t, resp.Provinces[2].Matched)

	assert.Equal(t, "Adana", resp.DefaultSelection)
	assert.Equal(t, "properties.name", resp.FeatureKey)
	assert.Equal(t, 2, resp.Matched)
	assert.Equal(t, 3, resp.Total)
}

func TestGetOneProvince(t *testing.T) {
	ts := newTestServer(t)

	w := ts.request(t, http.MethodGet, "/api/provinces/Adana")
	require.Equal(t, http.StatusOK, w.Code)

	var resp getOneProvinceResponse
	decodeBody(t, w, &resp)

	assert.Equal(t, "Kebap şehri.", resp.Province.Culture)
	require.NotNil(t, resp.Focus)
	assert.InDelta(t, 37.0, resp.Focus.Lat, 0.0001)
	assert.InDelta(t, 35.5, resp.Focus.Lon, 0.0001)
	require.NotNil(t, resp.Bound)
	assert.Equal(t, 36.5, resp.Bound.MinLat)
	assert.Equal(t, 36.0, resp.Bound.MaxLon)

	// unmatched rows exist but carry no focus
	w = ts.request(t, http.MethodGet, "/api/provinces/Nazilli")
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &resp)
	assert.Nil(t, resp.Focus)
	assert.Nil(t, resp.Bound)
}

func TestGetOneProvinceNotFound(t *testing.T) {
	ts := newTestServer(t)

	w := ts.request(t, http.MethodGet, "/api/provinces/Atlantis")
	require.Equal(t, http.StatusNotFound, w.Code)

	var resp APIErrorResponse
	decodeBody(t, w, &resp)
	assert.NotEmpty(t, resp.Error)
}

func TestGetBoundaries(t *testing.T) {
	ts := newTestServer(t)

	w := ts.request(t, http.MethodGet, "/api/boundaries")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		FeatureProperty string   `json:"feature_property"`
		FeatureKey      string   `json:"feature_key"`
		Bound           APIBound `json:"bound"`
		Collection      struct {
			Features []json.RawMessage `json:"features"`
		} `json:"collection"`
	}
	decodeBody(t, w, &resp)

	assert.Equal(t, "name", resp.FeatureProperty)
	assert.Equal(t, "properties.name", resp.FeatureKey)
	assert.Len(t, resp.Collection.Features, 2)
	assert.Equal(t, 36.5, resp.Bound.MinLat)
	assert.Equal(t, 28.0, resp.Bound.MinLon)
	assert.Equal(t, 41.5, resp.Bound.MaxLat)
	assert.Equal(t, 36.0, resp.Bound.MaxLon)
}

func TestGetSelection(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name       string
		url        string
		wantSource string
		wantName   string
	}{
		{name: "default", url: "/api/selection", wantSource: "default", wantName: "Adana"},
		{name: "list", url: "/api/selection?list=%C4%B0stanbul", wantSource: "list", wantName: "İstanbul"},
		{name: "click wins", url: "/api/selection?click=Adana&list=%C4%B0stanbul", wantSource: "click", wantName: "Adana"},
		{name: "empty click defers to list", url: "/api/selection?click=&list=Adana", wantSource: "list", wantName: "Adana"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ts.request(t, http.MethodGet, tt.url)
			require.Equal(t, http.StatusOK, w.Code)

			var resp getSelectionResponse
			decodeBody(t, w, &resp)

			assert.Equal(t, tt.wantSource, string(resp.Selection.Source))
			assert.Equal(t, tt.wantName, resp.Selection.Name)
			assert.Equal(t, tt.wantName, resp.Province.Name)
		})
	}
}

func TestGetSelectionUnknownName(t *testing.T) {
	ts := newTestServer(t)

	w := ts.request(t, http.MethodGet, "/api/selection?click=Atlantis")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLocate(t *testing.T) {
	ts := newTestServer(t)

	w := ts.request(t, http.MethodGet, "/api/locate?lat=37.0&lon=35.5")
	require.Equal(t, http.StatusOK, w.Code)

	var resp locateResponse
	decodeBody(t, w, &resp)
	require.NotNil(t, resp.Province)
	assert.Equal(t, "Adana", resp.Province.Name)
	assert.Equal(t, "ADANA", resp.FeatureName.ValueOrZero())

	// open sea: a miss, still 200
	w = ts.request(t, http.MethodGet, "/api/locate?lat=34.0&lon=30.0")
	require.Equal(t, http.StatusOK, w.Code)

	resp = locateResponse{}
	decodeBody(t, w, &resp)
	assert.Nil(t, resp.Province)
	assert.False(t, resp.FeatureName.Valid)
}

func TestLocateMalformedCoordinates(t *testing.T) {
	ts := newTestServer(t)

	w := ts.request(t, http.MethodGet, "/api/locate?lat=abc&lon=30.0")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = ts.request(t, http.MethodGet, "/api/locate?lat=37.0")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetConfig(t *testing.T) {
	ts := newTestServer(t)

	w := ts.request(t, http.MethodGet, "/api/config")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Config struct {
			Catalog catalog.Config `json:"catalog"`
		} `json:"config"`
	}
	decodeBody(t, w, &resp)
	assert.Equal(t, catalog.GetDefaultConfig(), resp.Config.Catalog)
}

func TestReload(t *testing.T) {
	ts := newTestServer(t)

	w := ts.request(t, http.MethodPut, "/api/config/reload")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, ts.reloaded)

	ts.reloadFn = func() error { return errors.New("boom") }
	w = ts.request(t, http.MethodGet, "/api/config/reload")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, 2, ts.reloaded)
}

func TestIndexPage(t *testing.T) {
	ts := newTestServer(t)

	w := ts.request(t, http.MethodGet, "/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), pageTitle)
	assert.Contains(t, w.Body.String(), "province-select")

	w = ts.request(t, http.MethodGet, "/static/app.js")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "api/selection")
}
