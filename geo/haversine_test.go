package geo_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvtsp/geo"
	"github.com/stretchr/testify/require"
)

// tolMeters is the absolute tolerance used for reference distances.
const tolMeters = 1.0

func TestHaversine_ReferenceDistances(t *testing.T) {
	cases := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		want                   float64
	}{
		{"porto-lisbon", 41.1579, -8.6291, 38.7223, -9.1393, 274295.506},
		{"one degree of longitude on the equator", 0, 0, 0, 1, 111194.927},
		{"equator to pole", 0, 0, 90, 0, 10007543.398},
		{"same known point", 41.1579, -8.6291, 41.1579, -8.6291, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := geo.Haversine(tc.lat1, tc.lon1, tc.lat2, tc.lon2)
			require.InDelta(t, tc.want, got, tolMeters)
		})
	}
}

func TestHaversine_Symmetric(t *testing.T) {
	a := geo.Haversine(41.1579, -8.6291, 38.7223, -9.1393)
	b := geo.Haversine(38.7223, -9.1393, 41.1579, -8.6291)
	require.InDelta(t, a, b, 1e-6)
}

// Both points unknown ⇒ 0, which is a marker and not a measurement.
func TestHaversine_BothUnknown(t *testing.T) {
	require.Equal(t, 0.0, geo.Haversine(0, 0, 0, 0))

	// Only one side unknown is still computed from (0,0).
	d := geo.Haversine(0, 0, 0, 1)
	require.False(t, math.IsNaN(d))
	require.Greater(t, d, 0.0)
}

func TestPoint_KnownAndDistance(t *testing.T) {
	var unknown geo.Point
	require.False(t, unknown.Known())

	porto := geo.Point{Lat: 41.1579, Long: -8.6291}
	lisbon := geo.Point{Lat: 38.7223, Long: -9.1393}
	require.True(t, porto.Known())
	require.InDelta(t, 274295.506, porto.DistanceTo(lisbon), tolMeters)
	require.Equal(t, 0.0, unknown.DistanceTo(geo.Point{}))
}
