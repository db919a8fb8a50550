package db

import (
	"time"

	"go.uber.org/zap"

	"github.com/earthdata-tools/granule-broker/geometry"
	"github.com/earthdata-tools/granule-broker/log"
	"github.com/earthdata-tools/granule-broker/model"
)

// IndexedGranule is one flattened granule row of the local index
type IndexedGranule struct {
	ConceptID  string
	NativeID   string
	ProviderID string
	DatasetID  string
	SizeMB     float64
	BeginTime  time.Time
	EndTime    time.Time
	DataURL    string
	BrowseURL  string
	West       float64
	South      float64
	East       float64
	North      float64
	Footprint  []byte // GeoJSON geometry
}

// FromGranule flattens a CMR granule record into an index row. Records
// without usable spatial metadata cannot be indexed.
func FromGranule(g model.Granule) (*IndexedGranule, error) {
	geom, err := geometry.GranuleGeometry(g)
	if err != nil {
		return nil, err
	}
	bound := geom.Bound()

	result := model.NewGranuleResult(g)

	row := &IndexedGranule{
		ConceptID:  result.ConceptID,
		NativeID:   result.NativeID,
		ProviderID: result.ProviderID,
		DatasetID:  result.DatasetID,
		SizeMB:     result.SizeMB,
		BeginTime:  result.BeginningDateTime,
		EndTime:    result.EndingDateTime,
		West:       bound.Min[0],
		South:      bound.Min[1],
		East:       bound.Max[0],
		North:      bound.Max[1],
	}

	if links := g.DataLinks(); len(links) > 0 {
		row.DataURL = links[0]
	}
	if links := g.DatavizLinks(); len(links) > 0 {
		row.BrowseURL = links[0]
	}

	footprint, err := marshalFootprint(geom)
	if err != nil {
		log.Warn("Could not marshal granule footprint", zap.String("conceptID", row.ConceptID), zap.Error(err))
		return nil, err
	}
	row.Footprint = footprint

	return row, nil
}
