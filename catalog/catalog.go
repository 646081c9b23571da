// Package catalog derives the session's region table: the province content
// records joined against the boundary features, plus the structures the
// viewer needs to render and select regions (fill colors, the overall
// bound, per-region label points, a point-in-polygon locator).
package catalog

import (
	"errors"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/sirupsen/logrus"

	"github.com/AnkaWorks/kulturharita/boundaries"
	"github.com/AnkaWorks/kulturharita/geo"
	"github.com/AnkaWorks/kulturharita/provinces"
)

// Catalog is one session's joined region table together with everything
// derived from it. Built once per load; read-only afterwards, so handlers
// may hold a snapshot across a whole request without locking.
type Catalog struct {
	rows          []Row
	colors        []string
	rowsByName    map[string]int
	rowsByFeature map[string]int

	featureKey    boundaries.FeatureKey
	collection    *geojson.FeatureCollection
	bound         orb.Bound
	locator       *geo.RegionLocator
	labelPoints   map[string]orb.Point
	featureBounds map[string]orb.Bound

	matchedCount int
}

// New builds a catalog from already-loaded datasets: resolves which feature
// property carries region names, indexes the features, joins the content
// records against them, and prepares the rendering and lookup structures.
func New(logger *logrus.Logger, records []provinces.Province, fc *geojson.FeatureCollection, config Config) (*Catalog, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, errors.New("cannot build a catalog from an empty content dataset")
	}

	featureKey := boundaries.ResolveFeatureKey(fc)
	logger.Infof("CATALOG: region names come from feature property '%s'", featureKey.Property)

	index := boundaries.BuildNameIndex(logger, fc, featureKey)
	rows := BuildRows(records, index)

	catalog := &Catalog{
		rows:          rows,
		colors:        RowColors(rows),
		rowsByName:    make(map[string]int, len(rows)),
		rowsByFeature: make(map[string]int, len(rows)),
		featureKey:    featureKey,
		collection:    fc,
		bound:         geo.CollectionBound(fc),
		locator:       geo.NewRegionLocator(logger, fc, featureKey.Property),
		labelPoints:   make(map[string]orb.Point, len(fc.Features)),
		featureBounds: make(map[string]orb.Bound, len(fc.Features)),
	}

	for idx, row := range rows {
		catalog.rowsByName[row.Name] = idx
		catalog.rowsByFeature[row.FeatureName] = idx
		if row.Matched {
			catalog.matchedCount++
		}
	}

	for _, feature := range fc.Features {
		name := feature.Properties.MustString(featureKey.Property, "")
		if name == "" || feature.Geometry == nil || !geo.GeometrySupported(feature.Geometry) {
			continue
		}
		catalog.labelPoints[name] = geo.LabelPoint(feature.Geometry)
		catalog.featureBounds[name] = feature.Geometry.Bound()
	}

	catalog.logMatchRate(logger, config)

	return catalog, nil
}

// logMatchRate is the post-join sanity check: a low match rate means the
// feature key guess or the normalization is off for this pair of datasets.
func (c *Catalog) logMatchRate(logger *logrus.Logger, config Config) {
	matchPercent := 100 * c.matchedCount / len(c.rows)
	if config.MatchWarnPercent > 0 && matchPercent < config.MatchWarnPercent {
		logger.Warnf("CATALOG: only %d of %d region(s) matched a boundary feature (%d%% < %d%%): check the datasets",
			c.matchedCount, len(c.rows), matchPercent, config.MatchWarnPercent)
		return
	}
	logger.Infof("CATALOG: %d of %d region(s) matched a boundary feature", c.matchedCount, len(c.rows))
}

// Rows returns the joined table in content-dataset order. Treat as read-only.
func (c *Catalog) Rows() []Row {
	return c.rows
}

// Colors returns each row's categorical fill color, parallel to Rows.
func (c *Catalog) Colors() []string {
	return c.colors
}

func (c *Catalog) Len() int {
	return len(c.rows)
}

// MatchedCount returns how many rows matched a boundary feature.
func (c *Catalog) MatchedCount() int {
	return c.matchedCount
}

// DefaultName returns the selection used before any interaction: the first
// row's name. There is no unselected state.
func (c *Catalog) DefaultName() string {
	return c.rows[0].Name
}

// Row returns the row for a display name.
func (c *Catalog) Row(name string) (Row, error) {
	idx, ok := c.rowsByName[name]
	if !ok {
		return Row{}, &SelectionNotFoundError{Name: name}
	}
	return c.rows[idx], nil
}

// ColorOf returns the fill color assigned to a row, or "" for names outside
// the table.
func (c *Catalog) ColorOf(name string) string {
	if idx, ok := c.rowsByName[name]; ok {
		return c.colors[idx]
	}
	return ""
}

// RowByFeatureName maps a boundary feature's name property value back to
// its row. Features no content row matched report false.
func (c *Catalog) RowByFeatureName(featureName string) (Row, bool) {
	idx, ok := c.rowsByFeature[featureName]
	if !ok {
		return Row{}, false
	}
	return c.rows[idx], true
}

func (c *Catalog) FeatureKey() boundaries.FeatureKey {
	return c.featureKey
}

// Collection returns the boundary feature collection the catalog was built
// from. Treat as read-only.
func (c *Catalog) Collection() *geojson.FeatureCollection {
	return c.collection
}

// Bound returns the box enclosing every boundary feature, for fitting the
// viewport to the data.
func (c *Catalog) Bound() orb.Bound {
	return c.bound
}

// Locate returns the row whose boundary polygon contains the coordinate.
// Clicks that land on no feature, or on a feature no content row matched,
// report false.
func (c *Catalog) Locate(lat, lon float64) (Row, bool) {
	featureName, ok := c.locator.Locate(lat, lon)
	if !ok {
		return Row{}, false
	}
	return c.RowByFeatureName(featureName)
}

// LabelPoint returns a point inside the row's boundary feature, for panning
// the viewport to a region chosen from the list. Unmatched rows have none.
func (c *Catalog) LabelPoint(row Row) (orb.Point, bool) {
	point, ok := c.labelPoints[row.FeatureName]
	return point, ok
}

// FeatureBound returns the box enclosing the row's boundary feature.
// Unmatched rows have none.
func (c *Catalog) FeatureBound(row Row) (orb.Bound, bool) {
	bound, ok := c.featureBounds[row.FeatureName]
	return bound, ok
}

// Select resolves a click/list input pair to a row. The empty string means
// "no input" on either side; both empty yields the default selection.
func (c *Catalog) Select(click, list string) (Selection, Row, error) {
	selection := ResolveSelection(click, list, c.DefaultName())

	row, err := c.Row(selection.Name)
	if err != nil {
		return Selection{}, Row{}, err
	}

	return selection, row, nil
}
