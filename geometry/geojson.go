package geometry

import (
	"github.com/paulmach/orb"
	"github.com/venicegeo/geojson-go/geojson"
)

// ToGeoJSON converts a normalized planar geometry into its GeoJSON
// representation, for attaching to features and map layers. Nil input yields
// a nil geometry.
func ToGeoJSON(geom orb.Geometry) interface{} {
	switch g := geom.(type) {
	case orb.Point:
		return geojson.NewPoint([]float64{g[0], g[1]})
	case orb.LineString:
		coords := make([][]float64, len(g))
		for i, p := range g {
			coords[i] = []float64{p[0], p[1]}
		}
		return geojson.NewLineString(coords)
	case orb.Ring:
		return ToGeoJSON(orb.Polygon{g})
	case orb.Polygon:
		rings := make([][][]float64, len(g))
		for i, ring := range g {
			coords := make([][]float64, len(ring))
			for j, p := range ring {
				coords[j] = []float64{p[0], p[1]}
			}
			rings[i] = coords
		}
		return geojson.NewPolygon(rings)
	case orb.Bound:
		return ToGeoJSON(g.ToPolygon())
	default:
		return nil
	}
}
