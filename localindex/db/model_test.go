package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	geojsongo "github.com/venicegeo/geojson-go/geojson"

	"github.com/earthdata-tools/granule-broker/model"
)

var mockIndexableGranule = model.Granule{
	Meta: model.Meta{
		ConceptID:  "G1234-PROV",
		NativeID:   "granule.001",
		ProviderID: "PROV",
	},
	UMM: model.UMM{
		TemporalExtent: model.TemporalExtent{
			RangeDateTime: model.RangeDateTime{
				BeginningDateTime: "2020-01-01T00:00:00.000Z",
				EndingDateTime:    "2020-01-02T00:00:00.000Z",
			},
		},
		SpatialExtent: model.SpatialExtent{
			HorizontalSpatialDomain: model.HorizontalSpatialDomain{
				Geometry: model.SpatialGeometry{
					BoundingRectangles: []model.BoundingRectangle{
						{
							WestBoundingCoordinate:  -10,
							SouthBoundingCoordinate: -5,
							EastBoundingCoordinate:  10,
							NorthBoundingCoordinate: 5,
						},
					},
				},
			},
		},
		DataGranule: model.DataGranuleInfo{
			ArchiveAndDistributionInformation: []model.ArchiveInfo{
				{Name: "granule.001.h5", Size: 12.5, SizeUnit: "MB"},
			},
		},
		CollectionReference: model.CollectionReference{ShortName: "MOCK_DATASET"},
		RelatedUrls: []model.RelatedURL{
			{URL: "https://example.com/granule.001.h5", Type: "GET DATA"},
			{URL: "https://example.com/granule.001.png", Type: "GET RELATED VISUALIZATION"},
		},
	},
}

func TestFromGranule(t *testing.T) {
	// Tested code
	row, err := FromGranule(mockIndexableGranule)

	// Asserts
	assert.Nil(t, err)
	assert.Equal(t, "G1234-PROV", row.ConceptID)
	assert.Equal(t, "granule.001", row.NativeID)
	assert.Equal(t, "PROV", row.ProviderID)
	assert.Equal(t, "MOCK_DATASET", row.DatasetID)
	assert.Equal(t, 12.5, row.SizeMB)
	assert.Equal(t, "https://example.com/granule.001.h5", row.DataURL)
	assert.Equal(t, "https://example.com/granule.001.png", row.BrowseURL)
	assert.Equal(t, -10.0, row.West)
	assert.Equal(t, -5.0, row.South)
	assert.Equal(t, 10.0, row.East)
	assert.Equal(t, 5.0, row.North)
	assert.Equal(t, 2020, row.BeginTime.Year())
	assert.Equal(t, 2, row.EndTime.Day())
}

func TestFromGranule_NoSpatialMetadata(t *testing.T) {
	// Mock
	granule := mockIndexableGranule
	granule.UMM.SpatialExtent = model.SpatialExtent{}

	// Tested code
	row, err := FromGranule(granule)

	// Asserts
	assert.NotNil(t, err)
	assert.Nil(t, row)
}

func TestFootprintRoundTrip(t *testing.T) {
	// Mock
	row, err := FromGranule(mockIndexableGranule)
	assert.Nil(t, err)

	// Tested code
	footprint, err := ParseFootprint(row.Footprint)

	// Asserts
	assert.Nil(t, err)
	polygon, ok := footprint.(*geojsongo.Polygon)
	assert.True(t, ok)
	assert.Len(t, polygon.Coordinates, 1)
	assert.Len(t, polygon.Coordinates[0], 5)
}
