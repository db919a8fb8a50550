package localindex

import (
	"database/sql"
	"time"

	"github.com/venicegeo/geojson-go/geojson"

	"github.com/earthdata-tools/granule-broker/localindex/db"
	"github.com/earthdata-tools/granule-broker/model"
)

// worldBounds is the search box used when no bbox filter is given
var worldBounds = [4]float64{-180, -90, 180, 90}

func discoverGranules(tx *sql.Tx, bbox geojson.BoundingBox, datasetID string, minTime time.Time, maxTime time.Time) (model.GeoJSONFeatureCollectionCreator, error) {
	granules, err := db.SearchGranules(tx, searchBounds(bbox), datasetID, minTime, maxTime)
	if err != nil {
		return nil, err
	}

	multiResult := model.MultiGranuleResult{
		FeatureCreators: make([]model.GeoJSONFeatureCreator, len(granules)),
	}
	for i, granule := range granules {
		if multiResult.FeatureCreators[i], err = resultFromIndexedGranule(granule); err != nil {
			return nil, err
		}
	}

	return multiResult, nil
}

func searchBounds(bbox geojson.BoundingBox) [4]float64 {
	if len(bbox) < 4 {
		return worldBounds
	}
	return [4]float64{bbox[0], bbox[1], bbox[2], bbox[3]}
}

// resultFromIndexedGranule rehydrates an index row into a display result.
// The stored footprint becomes the result geometry, and the stored link
// columns become related URLs of their original CMR link types.
func resultFromIndexedGranule(granule *db.IndexedGranule) (model.GranuleResult, error) {
	geom, err := db.ParseFootprint(granule.Footprint)
	if err != nil {
		return model.GranuleResult{}, err
	}

	var relatedUrls []model.RelatedURL
	if granule.DataURL != "" {
		relatedUrls = append(relatedUrls, model.RelatedURL{URL: granule.DataURL, Type: string(model.GetData)})
	}
	if granule.BrowseURL != "" {
		relatedUrls = append(relatedUrls, model.RelatedURL{URL: granule.BrowseURL, Type: string(model.GetRelatedVisualization)})
	}

	return model.GranuleResult{
		ConceptID:         granule.ConceptID,
		NativeID:          granule.NativeID,
		ProviderID:        granule.ProviderID,
		DatasetID:         granule.DatasetID,
		SizeMB:            granule.SizeMB,
		BeginningDateTime: granule.BeginTime,
		EndingDateTime:    granule.EndTime,
		RelatedUrls:       relatedUrls,
		Geometry:          geom,
	}, nil
}
