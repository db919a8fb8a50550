package db

import (
	"encoding/json"

	"github.com/paulmach/orb"
	geojsongo "github.com/venicegeo/geojson-go/geojson"

	"github.com/earthdata-tools/granule-broker/geometry"
)

func marshalFootprint(geom orb.Geometry) ([]byte, error) {
	return json.Marshal(geometry.ToGeoJSON(geom))
}

// ParseFootprint decodes a stored footprint back into a GeoJSON geometry
func ParseFootprint(footprint []byte) (interface{}, error) {
	return geojsongo.Parse(footprint)
}
