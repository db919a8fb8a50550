package localindex

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	geojsongo "github.com/venicegeo/geojson-go/geojson"

	"github.com/earthdata-tools/granule-broker/localindex/db"
	"github.com/earthdata-tools/granule-broker/model"
)

func TestDiscoverHandler_BadBBox(t *testing.T) {
	// Mock
	handler := DiscoverHandler{}
	request := httptest.NewRequest("GET", "/localindex/discover?bbox=a,b,c,d", nil)
	recorder := httptest.NewRecorder()

	// Tested code
	handler.ServeHTTP(recorder, request)

	// Asserts
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "bbox")
}

func TestDiscoverHandler_BadStart(t *testing.T) {
	// Mock
	handler := DiscoverHandler{}
	request := httptest.NewRequest("GET", "/localindex/discover?bbox=-10,-5,10,5&start=yesterday", nil)
	recorder := httptest.NewRecorder()

	// Tested code
	handler.ServeHTTP(recorder, request)

	// Asserts
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "start")
}

func TestDiscoverHandler_BadEnd(t *testing.T) {
	// Mock
	handler := DiscoverHandler{}
	request := httptest.NewRequest("GET", "/localindex/discover?bbox=-10,-5,10,5&end=2020-13-45", nil)
	recorder := httptest.NewRecorder()

	// Tested code
	handler.ServeHTTP(recorder, request)

	// Asserts
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "end")
}

func TestSearchBounds(t *testing.T) {
	bbox, err := geojsongo.NewBoundingBox("-10,-5,10,5")
	assert.Nil(t, err)
	assert.Equal(t, [4]float64{-10, -5, 10, 5}, searchBounds(bbox))
}

func TestSearchBounds_EmptyMeansWorld(t *testing.T) {
	assert.Equal(t, worldBounds, searchBounds(geojsongo.BoundingBox{}))
}

func TestResultFromIndexedGranule(t *testing.T) {
	// Mock
	row, err := db.FromGranule(mockIngestGranule("G100-PROV", "DATASET_A"))
	assert.Nil(t, err)

	// Tested code
	result, err := resultFromIndexedGranule(row)

	// Asserts
	assert.Nil(t, err)
	assert.Equal(t, "G100-PROV", result.ConceptID)
	assert.Equal(t, "DATASET_A", result.DatasetID)
	assert.NotNil(t, result.Geometry)
	assert.Len(t, result.RelatedUrls, 2)
	assert.Equal(t, string(model.GetData), result.RelatedUrls[0].Type)
	assert.Equal(t, string(model.GetRelatedVisualization), result.RelatedUrls[1].Type)

	feature, err := result.GeoJSONFeature()
	assert.Nil(t, err)
	assert.Equal(t, "G100-PROV", feature.IDStr())
	assert.Len(t, feature.Bbox, 4)
}

func TestResultFromIndexedGranule_NoLinks(t *testing.T) {
	// Mock
	row, err := db.FromGranule(mockIngestGranule("G101-PROV", "DATASET_A"))
	assert.Nil(t, err)
	row.DataURL = ""
	row.BrowseURL = ""

	// Tested code
	result, err := resultFromIndexedGranule(row)

	// Asserts
	assert.Nil(t, err)
	assert.Empty(t, result.RelatedUrls)
}

func mockIngestGranule(conceptID, datasetID string) model.Granule {
	return model.Granule{
		Meta: model.Meta{
			ConceptID:  conceptID,
			NativeID:   conceptID + ".native",
			ProviderID: "PROV",
		},
		UMM: model.UMM{
			TemporalExtent: model.TemporalExtent{
				RangeDateTime: model.RangeDateTime{
					BeginningDateTime: "2021-06-01T00:00:00.000Z",
					EndingDateTime:    "2021-06-02T00:00:00.000Z",
				},
			},
			SpatialExtent: model.SpatialExtent{
				HorizontalSpatialDomain: model.HorizontalSpatialDomain{
					Geometry: model.SpatialGeometry{
						BoundingRectangles: []model.BoundingRectangle{
							{
								WestBoundingCoordinate:  -120,
								SouthBoundingCoordinate: 30,
								EastBoundingCoordinate:  -110,
								NorthBoundingCoordinate: 40,
							},
						},
					},
				},
			},
			DataGranule: model.DataGranuleInfo{
				ArchiveAndDistributionInformation: []model.ArchiveInfo{
					{Size: 10, SizeUnit: "MB"},
				},
			},
			CollectionReference: model.CollectionReference{ShortName: datasetID},
			RelatedUrls: []model.RelatedURL{
				{URL: "https://example.com/" + conceptID + ".h5", Type: "GET DATA"},
				{URL: "https://example.com/" + conceptID + ".png", Type: "GET RELATED VISUALIZATION"},
			},
		},
	}
}
