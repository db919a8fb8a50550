package table

import (
	"github.com/venicegeo/geojson-go/geojson"

	"github.com/earthdata-tools/granule-broker/geometry"
	"github.com/earthdata-tools/granule-broker/model"
)

// GeoJSONFeatureCollection implements the GeoJSONFeatureCollectionCreator
// interface. Rows without a geometry stay in the table but are skipped here,
// since a feature without a geometry cannot be drawn.
func (t *ResultTable) GeoJSONFeatureCollection() (*geojson.FeatureCollection, error) {
	return rowsToFeatureCollection(t.Rows)
}

func rowsToFeatureCollection(rows []Row) (*geojson.FeatureCollection, error) {
	var creators []model.GeoJSONFeatureCreator
	for _, row := range rows {
		if row.Geometry == nil {
			continue
		}
		result := row.Result
		result.Geometry = geometry.ToGeoJSON(row.Geometry)
		creators = append(creators, result)
	}

	return model.MultiGranuleResult{FeatureCreators: creators}.GeoJSONFeatureCollection()
}

// FeatureCollectionForDataset renders the rows of one dataset id as a
// GeoJSON feature collection
func (t *ResultTable) FeatureCollectionForDataset(datasetID string) (*geojson.FeatureCollection, error) {
	return rowsToFeatureCollection(t.RowsForDataset(datasetID))
}
