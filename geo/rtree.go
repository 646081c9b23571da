package geo

import (
	"fmt"
	"sync"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"
	"github.com/tidwall/rtree"
)

type regionEntry[V any] struct {
	value    V
	contains func(orb.Point) bool
}

// RegionRTree indexes polygonal fences by bounding box and refines
// candidate hits with an exact containment test.
type RegionRTree[V any] struct {
	mutex sync.RWMutex
	rtree rtree.RTreeG[regionEntry[V]]
}

func NewRegionRTree[V any]() *RegionRTree[V] {
	return &RegionRTree[V]{}
}

func (rt *RegionRTree[V]) insert(bbox orb.Bound, entry regionEntry[V]) {
	rt.mutex.Lock()
	defer rt.mutex.Unlock()
	rt.rtree.Insert(bbox.Min, bbox.Max, entry)
}

func (rt *RegionRTree[V]) InsertGeometry(geometry orb.Geometry, value V) error {
	switch typed := geometry.(type) {
	case orb.Polygon:
		rt.insert(typed.Bound(), regionEntry[V]{
			value: value,
			contains: func(p orb.Point) bool {
				return planar.PolygonContains(typed, p)
			},
		})
	case orb.MultiPolygon:
		rt.insert(typed.Bound(), regionEntry[V]{
			value: value,
			contains: func(p orb.Point) bool {
				return planar.MultiPolygonContains(typed, p)
			},
		})
	default:
		return fmt.Errorf("geometry type %s is not supported", geometry.GeoJSONType())
	}
	return nil
}

func (rt *RegionRTree[V]) InsertFeature(feature *geojson.Feature, value V) error {
	return rt.InsertGeometry(feature.Geometry, value)
}

// GetMatches returns the values of all indexed fences containing the
// given coordinate.
func (rt *RegionRTree[V]) GetMatches(lat, lon float64) []V {
	p := orb.Point{lon, lat}

	matches := make([]V, 0, 2)

	rt.mutex.RLock()
	defer rt.mutex.RUnlock()
	rt.rtree.Search(p, p, func(min, max [2]float64, entry regionEntry[V]) bool {
		if entry.contains(p) {
			matches = append(matches, entry.value)
		}
		return true
	})

	return matches
}
