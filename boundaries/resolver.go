package boundaries

import (
	"github.com/paulmach/orb/geojson"
)

// featureKeyCandidates is the priority order of property names known to
// carry a region's display name across the boundary datasets in the wild.
var featureKeyCandidates = []string{"name", "NAME_1", "NAME", "province"}

// FeatureKey identifies which property bag entry holds the display name for
// one collection. Resolved once per collection, not per feature.
type FeatureKey struct {
	Property string
}

// FeatureIDKey returns the GeoJSON property-path form, e.g. "properties.name".
func (k FeatureKey) FeatureIDKey() string {
	return "properties." + k.Property
}

// ResolveFeatureKey samples the first feature only (collections are assumed
// homogeneous) and picks the first candidate present in its property bag.
// A collection matching no candidate still yields the default key instead of
// an error; the join downstream then degrades to fallback names.
func ResolveFeatureKey(fc *geojson.FeatureCollection) FeatureKey {
	if fc != nil && len(fc.Features) > 0 {
		props := fc.Features[0].Properties
		for _, candidate := range featureKeyCandidates {
			if _, ok := props[candidate]; ok {
				return FeatureKey{Property: candidate}
			}
		}
	}
	return FeatureKey{Property: featureKeyCandidates[0]}
}
