package geometry

import (
	"errors"

	"github.com/paulmach/orb"

	"github.com/earthdata-tools/granule-broker/model"
)

// ErrNoSpatialMetadata indicates a granule record carrying neither bounding
// rectangles nor polygon boundaries
var ErrNoSpatialMetadata = errors.New("granule does not contain bounding rectangles or polygons")

// ToGeometry converts CMR spatial metadata into a normalized planar geometry.
// Bounding rectangles become axis-aligned boxes with counter-clockwise
// winding; polygon boundaries become polygons over their ordered point lists.
func ToGeometry(geo model.SpatialGeometry) (orb.Geometry, error) {
	switch {
	case len(geo.BoundingRectangles) > 0:
		rect := geo.BoundingRectangles[0]
		bound := orb.Bound{
			Min: orb.Point{rect.WestBoundingCoordinate, rect.SouthBoundingCoordinate},
			Max: orb.Point{rect.EastBoundingCoordinate, rect.NorthBoundingCoordinate},
		}
		return bound.ToPolygon(), nil
	case len(geo.GPolygons) > 0:
		points := geo.GPolygons[0].Boundary.Points
		ring := make(orb.Ring, len(points))
		for i, p := range points {
			ring[i] = orb.Point{p.Longitude, p.Latitude}
		}
		if !ring.Closed() && len(ring) > 0 {
			ring = append(ring, ring[0])
		}
		return orb.Polygon{ring}, nil
	default:
		return nil, ErrNoSpatialMetadata
	}
}

// GranuleGeometry extracts the normalized geometry of a single granule record
func GranuleGeometry(g model.Granule) (orb.Geometry, error) {
	return ToGeometry(g.UMM.SpatialExtent.HorizontalSpatialDomain.Geometry)
}
