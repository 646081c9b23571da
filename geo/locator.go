package geo

import (
	"github.com/paulmach/orb/geojson"
	"github.com/sirupsen/logrus"
)

// RegionLocator answers point-in-region queries against a boundary
// collection. Lookups run against an r-tree over the feature bounding
// boxes, so only a handful of containment tests happen per query.
type RegionLocator struct {
	rtree *RegionRTree[string]
	count int
}

// NewRegionLocator indexes every feature carrying a non-empty name
// under the given property. Features with unsupported geometry are
// logged and skipped.
func NewRegionLocator(logger *logrus.Logger, fc *geojson.FeatureCollection, nameProperty string) *RegionLocator {
	locator := &RegionLocator{
		rtree: NewRegionRTree[string](),
	}

	for _, feature := range fc.Features {
		name := feature.Properties.MustString(nameProperty, "")
		if name == "" {
			continue
		}

		if feature.Geometry == nil || !GeometrySupported(feature.Geometry) {
			logger.Warnf("GEO: region '%s' has no usable polygon, it will not be locatable", name)
			continue
		}

		if err := locator.rtree.InsertFeature(feature, name); err != nil {
			logger.Warnf("GEO: could not index region '%s': %v", name, err)
			continue
		}

		locator.count++
	}

	return locator
}

// Len returns the number of locatable regions.
func (l *RegionLocator) Len() int {
	return l.count
}

// Locate returns the boundary name of the region containing the given
// coordinate. Points on a shared border resolve to one of the touching
// regions.
func (l *RegionLocator) Locate(lat, lon float64) (string, bool) {
	matches := l.rtree.GetMatches(lat, lon)
	if len(matches) == 0 {
		return "", false
	}
	return matches[0], true
}
