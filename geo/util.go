package geo

import (
	venise_geo "github.com/dernise/venise/geo"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"
)

// GeometrySupported reports whether the geometry is a polygonal type
// we can index and label.
func GeometrySupported(geometry orb.Geometry) bool {
	switch geometry.GeoJSONType() {
	case "Polygon":
	case "MultiPolygon":
	default:
		return false
	}
	return true
}

// CollectionBound returns the bounding box enclosing every feature in
// the collection.
func CollectionBound(fc *geojson.FeatureCollection) orb.Bound {
	var bound orb.Bound

	first := true
	for _, feature := range fc.Features {
		if feature == nil || feature.Geometry == nil {
			continue
		}
		if first {
			bound = feature.Geometry.Bound()
			first = false
			continue
		}
		bound = bound.Union(feature.Geometry.Bound())
	}

	return bound
}

// LargestPolygon returns the member polygon with the largest geodesic
// area.
func LargestPolygon(mp orb.MultiPolygon) orb.Polygon {
	switch len(mp) {
	case 0:
		return nil
	case 1:
		return mp[0]
	}

	bestPoly := mp[0]
	maxArea := geo.Area(bestPoly)

	for _, poly := range mp[1:] {
		area := geo.Area(poly)
		if area > maxArea {
			maxArea = area
			bestPoly = poly
		}
	}

	return bestPoly
}

func convertToVenisePolygon(orbPolygon orb.Polygon) venise_geo.Polygon {
	polygon := venise_geo.Polygon{
		Rings: make([][]venise_geo.Point, len(orbPolygon)),
	}
	for ringIdx, ring := range orbPolygon {
		ringPoints := make([]venise_geo.Point, len(ring))
		for ptsIdx, coord := range ring {
			ringPoints[ptsIdx] = venise_geo.Point(coord)
		}
		polygon.Rings[ringIdx] = ringPoints
	}
	return polygon
}

func poleOfInaccessibility(polygon orb.Polygon) orb.Point {
	point := venise_geo.Polylabel(convertToVenisePolygon(polygon), 0.000001, false)
	return orb.Point(point)
}

// LabelPoint returns a point guaranteed to lie inside the geometry,
// suitable for anchoring a label or focusing a viewport. The area
// centroid is used when it falls inside; concave shapes fall back to
// the pole of inaccessibility.
func LabelPoint(geometry orb.Geometry) orb.Point {
	center, _ := planar.CentroidArea(geometry)

	switch typed := geometry.(type) {
	case orb.Polygon:
		if !planar.PolygonContains(typed, center) {
			return poleOfInaccessibility(typed)
		}
	case orb.MultiPolygon:
		if len(typed) > 0 && !planar.MultiPolygonContains(typed, center) {
			return poleOfInaccessibility(LargestPolygon(typed))
		}
	}

	return center
}
