// SPDX-License-Identifier: MIT
// Package: lvtsp/builder
//
// impl_geo.go - geographic constructors: GeoScatter(n, box) and GeoComplete(points).
//
// Contract:
//   • Vertices carry positions; every unordered pair {i,j} with i<j becomes
//     an edge weighted by the haversine distance in metres.
//   • Weights satisfy the triangle inequality, so the approximation bounds of
//     the tree-based solvers apply to these fixtures.
//   • GeoScatter requires cfg.rng (ErrNeedRandSource) and draws latitude
//     then longitude per vertex in ascending index order.
//
// Complexity: O(n) vertices + O(n²) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvtsp/core"
	"github.com/katalvlaran/lvtsp/geo"
)

const (
	methodGeoScatter  = "GeoScatter"
	methodGeoComplete = "GeoComplete"
	minGeoNodes       = 1
)

// Box is an axis-aligned latitude/longitude rectangle in degrees.
type Box struct {
	MinLat, MaxLat   float64
	MinLong, MaxLong float64
}

// DefaultBox covers mainland Portugal.
var DefaultBox = Box{MinLat: 37.0, MaxLat: 42.0, MinLong: -9.5, MaxLong: -6.2}

// Valid reports whether b is non-inverted and inside [-90,90]×[-180,180].
func (b Box) Valid() bool {
	return b.MinLat <= b.MaxLat && b.MinLong <= b.MaxLong &&
		b.MinLat >= -90 && b.MaxLat <= 90 && b.MinLong >= -180 && b.MaxLong <= 180
}

// GeoScatter returns a Constructor placing n vertices uniformly at random in
// box and connecting them as a complete haversine-weighted graph.
func GeoScatter(n int, box Box) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodGeoScatter, n, minGeoNodes); err != nil {
			return err
		}
		if !box.Valid() {
			return fmt.Errorf("%s: %+v: %w", methodGeoScatter, box, ErrInvalidBox)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodGeoScatter, ErrNeedRandSource)
		}

		points := make([]geo.Point, n)
		for i := range points {
			points[i].Lat = box.MinLat + cfg.rng.Float64()*(box.MaxLat-box.MinLat)
			points[i].Long = box.MinLong + cfg.rng.Float64()*(box.MaxLong-box.MinLong)
		}

		return addGeoComplete(g, cfg, methodGeoScatter, points)
	}
}

// GeoComplete returns a Constructor for a complete haversine-weighted graph
// over fixed positions; vertex i sits at points[i].
func GeoComplete(points []geo.Point) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodGeoComplete, len(points), minGeoNodes); err != nil {
			return err
		}

		return addGeoComplete(g, cfg, methodGeoComplete, points)
	}
}

func addGeoComplete(g *core.Graph, cfg builderConfig, method string, points []geo.Point) error {
	n := len(points)
	ids := make([]int, n)
	for i, p := range points {
		ids[i] = cfg.id(i)
		if err := g.AddVertex(ids[i], p.Lat, p.Long, cfg.labelFn(i)); err != nil {
			return fmt.Errorf("%s: AddVertex(%d): %w", method, ids[i], err)
		}
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			w := points[i].DistanceTo(points[j])
			if err := g.AddEdge(ids[i], ids[j], w); err != nil {
				return fmt.Errorf("%s: AddEdge(%d→%d, w=%g): %w", method, ids[i], ids[j], w, err)
			}
			if g.Directed() {
				if err := g.AddEdge(ids[j], ids[i], w); err != nil {
					return fmt.Errorf("%s: AddEdge(%d→%d, w=%g): %w", method, ids[j], ids[i], w, err)
				}
			}
		}
	}

	return nil
}
