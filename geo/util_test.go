package geo

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectionBound(t *testing.T) {
	bound := CollectionBound(testCollection())
	assert.Equal(t, orb.Point{28, 36.5}, bound.Min)
	assert.Equal(t, orb.Point{36, 41.5}, bound.Max)
}

func TestLargestPolygon(t *testing.T) {
	small := squarePolygon(26, 40, 26.5, 40.5)
	big := squarePolygon(29, 40, 31, 42)

	assert.Nil(t, LargestPolygon(orb.MultiPolygon{}))
	assert.Equal(t, small, LargestPolygon(orb.MultiPolygon{small}))
	assert.Equal(t, big, LargestPolygon(orb.MultiPolygon{small, big}))
	assert.Equal(t, big, LargestPolygon(orb.MultiPolygon{big, small}))
}

func TestLabelPointConvex(t *testing.T) {
	square := squarePolygon(35, 36, 36, 37)

	point := LabelPoint(square)
	assert.InDelta(t, 35.5, point[0], 0.0001)
	assert.InDelta(t, 36.5, point[1], 0.0001)
}

func TestLabelPointConcave(t *testing.T) {
	// a U shape whose centroid falls in the notch
	u := orb.Polygon{
		{
			{0, 0}, {10, 0}, {10, 10}, {8, 10}, {8, 2}, {2, 2}, {2, 10}, {0, 10}, {0, 0},
		},
	}

	centroid, _ := planar.CentroidArea(u)
	require.False(t, planar.PolygonContains(u, centroid))

	point := LabelPoint(u)
	assert.True(t, planar.PolygonContains(u, point))
}

func TestLabelPointMultiPolygon(t *testing.T) {
	// the combined centroid lands in the gap between the two parts
	mp := orb.MultiPolygon{
		squarePolygon(0, 0, 2, 2),
		squarePolygon(10, 0, 12, 2),
	}

	centroid, _ := planar.CentroidArea(mp)
	require.False(t, planar.MultiPolygonContains(mp, centroid))

	point := LabelPoint(mp)
	assert.True(t, planar.MultiPolygonContains(mp, point))
}

func TestGeometrySupported(t *testing.T) {
	assert.True(t, GeometrySupported(squarePolygon(0, 0, 1, 1)))
	assert.True(t, GeometrySupported(orb.MultiPolygon{squarePolygon(0, 0, 1, 1)}))
	assert.False(t, GeometrySupported(orb.Point{0, 0}))
	assert.False(t, GeometrySupported(orb.LineString{{0, 0}, {1, 1}}))
}
