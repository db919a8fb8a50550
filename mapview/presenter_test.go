package mapview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/venicegeo/geojson-go/geojson"

	"github.com/earthdata-tools/granule-broker/cmr"
	"github.com/earthdata-tools/granule-broker/model"
)

// General test mocks and utils

func granuleForDataset(conceptID, datasetID string, sizeMB float64) model.Granule {
	g := model.Granule{}
	g.Meta.ConceptID = conceptID
	g.Meta.NativeID = "SC:" + conceptID
	g.Meta.ProviderID = "TESTPROV"
	g.UMM.CollectionReference.ConceptID = datasetID
	g.UMM.DataGranule.ArchiveAndDistributionInformation = []model.ArchiveInfo{{Size: sizeMB, SizeUnit: "MB"}}
	g.UMM.TemporalExtent.RangeDateTime = model.RangeDateTime{
		BeginningDateTime: "2021-06-01T00:00:00Z",
		EndingDateTime:    "2021-06-01T01:00:00Z",
	}
	g.UMM.RelatedUrls = []model.RelatedURL{
		{URL: "https://data.example.localhost/" + conceptID + ".h5", Type: string(model.GetData)},
		{URL: "http://data.example.localhost/insecure.h5", Type: string(model.GetData)},
		{URL: "https://browse.example.localhost/" + conceptID + ".png", Type: string(model.GetRelatedVisualization)},
	}
	g.UMM.SpatialExtent.HorizontalSpatialDomain.Geometry.BoundingRectangles = []model.BoundingRectangle{
		{WestBoundingCoordinate: -1, SouthBoundingCoordinate: -1, EastBoundingCoordinate: 1, NorthBoundingCoordinate: 1},
	}
	return g
}

func newTestPresenter(t *testing.T) (*Presenter, *cmr.SearchParams) {
	params := &cmr.SearchParams{}
	presenter, err := NewPresenter(params, GlobalPreset, nil)
	assert.Nil(t, err)
	return presenter, params
}

var drawnSquare = geojson.NewPolygon([][][]float64{{
	{0, 0}, {0, 10}, {10, 10}, {10, 0}, {0, 0},
}})

// Actual tests

func TestNewPresenter_FreshSurface(t *testing.T) {
	presenter, _ := newTestPresenter(t)

	surface := presenter.Surface()
	assert.Equal(t, "Esri.WorldImagery", surface.Preset.Basemap)
	assert.Equal(t, "EPSG:3857", surface.Preset.CRS)
	for _, control := range []Control{ZoomControl, LayersControl, FullScreenControl, MeasureControl, DrawControl} {
		assert.True(t, surface.HasControl(control), "missing control: %v", control)
	}
}

func TestNewPresenter_ReusedSurfaceControlsReset(t *testing.T) {
	// Mock
	existing := NewSurface(presets[SouthPolarPreset])
	existing.AddControl(Control("stale"))

	// Tested code
	presenter, err := NewPresenter(&cmr.SearchParams{}, GlobalPreset, existing)

	// Asserts
	assert.Nil(t, err)
	assert.Same(t, existing, presenter.Surface())
	assert.False(t, existing.HasControl(Control("stale")))
	assert.True(t, existing.HasControl(ZoomControl))
}

func TestNewPresenter_PolarPresets(t *testing.T) {
	north, err := PresetFor(NorthPolarPreset)
	assert.Nil(t, err)
	assert.Equal(t, "NASAGIBS.BlueMarble3413", north.Basemap)
	assert.Equal(t, [2]float64{90, 0}, north.Center)

	south, err := PresetFor(SouthPolarPreset)
	assert.Nil(t, err)
	assert.Equal(t, "EPSG:3031", south.CRS)
	assert.Equal(t, [2]float64{-90, 0}, south.Center)

	_, err = PresetFor("mercator")
	assert.NotNil(t, err)
}

func TestHandleDraw_SetsRegionAndParams(t *testing.T) {
	presenter, params := newTestPresenter(t)

	// Tested code
	presenter.HandleDraw(drawnSquare)

	// Asserts
	assert.NotNil(t, presenter.Region())
	assert.NotNil(t, presenter.Surface().RegionOverlay())
	assert.Equal(t, regionOverlayName, presenter.Surface().RegionOverlay().Name)
	assert.NotEmpty(t, params.Polygon)
}

func TestHandleDraw_UnsupportedShapeLeavesRegionUnset(t *testing.T) {
	presenter, params := newTestPresenter(t)

	presenter.HandleDraw(geojson.NewMultiPolygon(nil))

	assert.Nil(t, presenter.Region())
	assert.Empty(t, params.Polygon)
	assert.Empty(t, params.Point)
	assert.Empty(t, params.Line)
}

func TestHandleDraw_ClearsPreviousResults(t *testing.T) {
	// Mock
	presenter, _ := newTestPresenter(t)
	presenter.HandleDraw(drawnSquare)
	_, err := presenter.Explore([]model.Granule{granuleForDataset("G1", "C1", 10)})
	assert.Nil(t, err)
	assert.Len(t, presenter.Surface().Layers(), 1)

	// Tested code
	presenter.HandleDraw(geojson.NewPoint([]float64{5, 5}))

	// Asserts
	assert.Len(t, presenter.Surface().Layers(), 0)
	assert.NotNil(t, presenter.Surface().RegionOverlay())
}

func TestExplore_OneLayerPerDataset(t *testing.T) {
	// Mock
	presenter, _ := newTestPresenter(t)
	results := []model.Granule{
		granuleForDataset("G1", "C1", 10),
		granuleForDataset("G2", "C1", 10),
		granuleForDataset("G3", "C1", 10),
		granuleForDataset("G4", "C2", 5),
		granuleForDataset("G5", "C2", 5),
	}

	// Tested code
	surface, err := presenter.Explore(results)

	// Asserts
	assert.Nil(t, err)
	layers := surface.Layers()
	assert.Len(t, layers, 2)

	assert.Equal(t, "C1", layers[0].DatasetID)
	assert.Equal(t, 3, layers[0].GranuleCount)
	assert.Equal(t, 0.03, layers[0].TotalSizeGB)
	assert.Len(t, layers[0].Features.Features, 3)

	assert.Equal(t, "C2", layers[1].DatasetID)
	assert.Equal(t, 2, layers[1].GranuleCount)
	assert.Equal(t, 0.01, layers[1].TotalSizeGB)

	assert.NotEqual(t, layers[0].Color, layers[1].Color)
	assert.Contains(t, layers[0].Name, "C1 [Count: 3 | Size: 0.03 GB]")
}

func TestExplore_PaletteCycles(t *testing.T) {
	assert.Equal(t, Palette[0], ColorFor(0))
	assert.Equal(t, Palette[0], ColorFor(len(Palette)))
	assert.Equal(t, Palette[3], ColorFor(len(Palette)+3))
}

func TestHandleHover_PopulatesInfoPanel(t *testing.T) {
	// Mock
	presenter, _ := newTestPresenter(t)
	surface, err := presenter.Explore([]model.Granule{granuleForDataset("G1", "C1", 12.3456)})
	assert.Nil(t, err)
	layer := surface.Layers()[0]
	feature := layer.Features.Features[0]

	// Tested code
	layer.Hover(feature)

	// Asserts
	panel := surface.InfoPanel()
	assert.NotNil(t, panel)
	assert.Equal(t, "SC:G1", panel.Title)
	assert.Equal(t, 12.35, panel.SizeMB)
	assert.Equal(t, "2021-06-01T00:00:00Z", panel.Start)
	// the insecure http link is excluded
	assert.Equal(t, []string{"https://data.example.localhost/G1.h5"}, panel.DataLinks)
	assert.Equal(t, []string{"https://browse.example.localhost/G1.png"}, panel.BrowseImages)
	assert.Contains(t, panel.HTML(), "<h4>SC:G1</h4>")
}

func TestHandleHover_ReplacesPreviousPanel(t *testing.T) {
	// Mock
	presenter, _ := newTestPresenter(t)
	surface, err := presenter.Explore([]model.Granule{
		granuleForDataset("G1", "C1", 10),
		granuleForDataset("G2", "C1", 20),
	})
	assert.Nil(t, err)
	layer := surface.Layers()[0]

	// Tested code
	layer.Hover(layer.Features.Features[0])
	first := surface.InfoPanel()
	layer.Hover(layer.Features.Features[1])
	second := surface.InfoPanel()

	// Asserts
	assert.NotSame(t, first, second)
	assert.Equal(t, "SC:G2", second.Title)
}

func TestHandleHover_JSONRoundTripProperties(t *testing.T) {
	// Mock
	presenter, _ := newTestPresenter(t)
	feature := geojson.NewFeature(nil, "G1", map[string]interface{}{
		"native_id": "SC:G1",
		"size":      10.0,
		"related_urls": []interface{}{
			map[string]interface{}{"URL": "https://data.example.localhost/G1.h5", "Type": "GET DATA"},
		},
	})

	// Tested code
	presenter.HandleHover(feature)

	// Asserts
	panel := presenter.Surface().InfoPanel()
	assert.Equal(t, []string{"https://data.example.localhost/G1.h5"}, panel.DataLinks)
}
