package boundaries

import (
	"github.com/paulmach/orb/geojson"
	"github.com/sirupsen/logrus"

	"github.com/AnkaWorks/kulturharita/turkish"
)

// NameIndex maps normalized region names to the original-cased property
// value found on the boundary feature.
type NameIndex map[string]string

// Get returns the original feature name stored under a normalized key.
func (idx NameIndex) Get(normalized string) (string, bool) {
	original, ok := idx[normalized]
	return original, ok
}

// BuildNameIndex indexes every feature's name property under its normalized
// form. Features with an empty or missing name are skipped, not errored.
// When two distinct originals normalize to the same key, the later feature
// wins and the collision is logged: two regions sharing a key means one of
// them can never be matched.
func BuildNameIndex(logger *logrus.Logger, fc *geojson.FeatureCollection, key FeatureKey) NameIndex {
	index := make(NameIndex, len(fc.Features))

	for _, feature := range fc.Features {
		original := feature.Properties.MustString(key.Property, "")
		if original == "" {
			continue
		}

		normalized := turkish.Normalize(original)
		if previous, ok := index[normalized]; ok && previous != original {
			logger.Warnf("BOUNDARIES: feature names '%s' and '%s' both normalize to '%s'; keeping '%s'",
				previous, original, normalized, original)
		}
		index[normalized] = original
	}

	return index
}
