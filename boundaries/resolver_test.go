package boundaries

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
)

func featureWithProperties(props map[string]interface{}) *geojson.Feature {
	feature := geojson.NewFeature(orb.Polygon{
		{{35, 36.5}, {36, 36.5}, {36, 37.5}, {35, 37.5}, {35, 36.5}},
	})
	feature.Properties = props
	return feature
}

func collectionWithProperties(props ...map[string]interface{}) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, p := range props {
		fc.Append(featureWithProperties(p))
	}
	return fc
}

func TestResolveFeatureKey(t *testing.T) {
	tests := []struct {
		name     string
		props    map[string]interface{}
		expected string
	}{
		{"lowercase name wins", map[string]interface{}{"name": "Adana", "NAME": "ADANA"}, "name"},
		{"gadm style", map[string]interface{}{"NAME_1": "Adana", "NAME": "ADANA"}, "NAME_1"},
		{"uppercase fallback", map[string]interface{}{"NAME": "ADANA"}, "NAME"},
		{"province key", map[string]interface{}{"province": "Adana"}, "province"},
		{"no candidate present", map[string]interface{}{"plaka": 1}, "name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := ResolveFeatureKey(collectionWithProperties(tt.props))
			assert.Equal(t, tt.expected, key.Property)
		})
	}
}

func TestResolveFeatureKeyEmptyCollection(t *testing.T) {
	assert.Equal(t, "name", ResolveFeatureKey(nil).Property)
	assert.Equal(t, "name", ResolveFeatureKey(geojson.NewFeatureCollection()).Property)
}

func TestFeatureIDKey(t *testing.T) {
	key := FeatureKey{Property: "NAME_1"}
	assert.Equal(t, "properties.NAME_1", key.FeatureIDKey())
}
