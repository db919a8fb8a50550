// Package geometry converts between user-drawn map shapes, CMR spatial
// metadata and normalized planar geometries in EPSG:4326.
package geometry

import (
	"errors"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/venicegeo/geojson-go/geojson"

	"github.com/earthdata-tools/granule-broker/log"
)

// ErrUnsupportedGeometry indicates a drawn shape of a kind that cannot be
// turned into search parameters
var ErrUnsupportedGeometry = errors.New("unsupported drawn geometry type")

// ParamSetter receives the spatial search parameter extracted from a drawn
// region. Implemented by cmr.SearchParams.
type ParamSetter interface {
	SetPolygon(ring orb.Ring)
	SetPoint(point orb.Point)
	SetLine(line orb.LineString)
}

// DrawnRegion is a user-drawn search region: a point, a line or a polygon
type DrawnRegion interface {
	// ApplyTo writes the region into the spatial key of a search parameter set
	ApplyTo(params ParamSetter)
}

// PointRegion is a drawn point
type PointRegion struct {
	Coordinates orb.Point
}

// ApplyTo implements the DrawnRegion interface
func (r PointRegion) ApplyTo(params ParamSetter) {
	params.SetPoint(r.Coordinates)
}

// LineRegion is a drawn line
type LineRegion struct {
	Coordinates orb.LineString
}

// ApplyTo implements the DrawnRegion interface
func (r LineRegion) ApplyTo(params ParamSetter) {
	params.SetLine(r.Coordinates)
}

// PolygonRegion is a drawn polygon, held as its exterior ring with
// counter-clockwise winding
type PolygonRegion struct {
	Ring orb.Ring
}

// ApplyTo implements the DrawnRegion interface
func (r PolygonRegion) ApplyTo(params ParamSetter) {
	params.SetPolygon(r.Ring)
}

// NormalizeDrawnRegion converts a drawn GeoJSON geometry into a DrawnRegion.
// Polygons get a canonical counter-clockwise exterior ring; points and lines
// pass through unchanged. Shapes of any other kind are reported and no region
// is returned.
func NormalizeDrawnRegion(shape interface{}) (DrawnRegion, error) {
	switch geom := shape.(type) {
	case *geojson.Point:
		return PointRegion{Coordinates: orb.Point{geom.Coordinates[0], geom.Coordinates[1]}}, nil
	case *geojson.LineString:
		line := make(orb.LineString, len(geom.Coordinates))
		for i, coord := range geom.Coordinates {
			line[i] = orb.Point{coord[0], coord[1]}
		}
		return LineRegion{Coordinates: line}, nil
	case *geojson.Polygon:
		if len(geom.Coordinates) == 0 {
			return nil, fmt.Errorf("drawn polygon has no rings")
		}
		ring := make(orb.Ring, len(geom.Coordinates[0]))
		for i, coord := range geom.Coordinates[0] {
			ring[i] = orb.Point{coord[0], coord[1]}
		}
		return PolygonRegion{Ring: OrientRing(ring)}, nil
	default:
		log.Warn(fmt.Sprintf("Unsupported geometry type: %T", shape))
		return nil, ErrUnsupportedGeometry
	}
}

// OrientRing returns a closed copy of ring wound counter-clockwise. Calling
// it on an already-normalized ring returns the same ring.
func OrientRing(ring orb.Ring) orb.Ring {
	normalized := make(orb.Ring, len(ring))
	copy(normalized, ring)
	if !normalized.Closed() && len(normalized) > 0 {
		normalized = append(normalized, normalized[0])
	}
	if normalized.Orientation() == orb.CW {
		normalized.Reverse()
	}
	return normalized
}
