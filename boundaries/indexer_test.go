package boundaries

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildNameIndex(t *testing.T) {
	fc := collectionWithProperties(
		map[string]interface{}{"name": "ADANA"},
		map[string]interface{}{"name": "İSTANBUL"},
		map[string]interface{}{"name": "Şanlıurfa"},
	)

	idx := BuildNameIndex(testLogger(), fc, FeatureKey{Property: "name"})
	require.Len(t, idx, 3)

	original, ok := idx.Get("adana")
	require.True(t, ok)
	assert.Equal(t, "ADANA", original)

	original, ok = idx.Get("istanbul")
	require.True(t, ok)
	assert.Equal(t, "İSTANBUL", original)

	original, ok = idx.Get("sanliurfa")
	require.True(t, ok)
	assert.Equal(t, "Şanlıurfa", original)

	_, ok = idx.Get("ankara")
	assert.False(t, ok)
}

func TestBuildNameIndexSkipsUnnamedFeatures(t *testing.T) {
	fc := collectionWithProperties(
		map[string]interface{}{"name": "ADANA"},
		map[string]interface{}{"name": ""},
		map[string]interface{}{"plaka": 6},
	)

	idx := BuildNameIndex(testLogger(), fc, FeatureKey{Property: "name"})
	assert.Len(t, idx, 1)
}

func TestBuildNameIndexCollisionKeepsLast(t *testing.T) {
	fc := collectionWithProperties(
		map[string]interface{}{"name": "İzmir"},
		map[string]interface{}{"name": "IZMIR"},
	)

	idx := BuildNameIndex(testLogger(), fc, FeatureKey{Property: "name"})
	require.Len(t, idx, 1)

	original, ok := idx.Get("izmir")
	require.True(t, ok)
	assert.Equal(t, "IZMIR", original)
}
